package ingest

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/telemetry"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/logging"
	"github.com/diwise/iot-landslide-monitor/pkg/types"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestDroppedMessageCausesNoProcessing(t *testing.T) {
	is := is.New(t)

	buf := &bytes.Buffer{}
	ctx := logging.NewContextWithLogger(context.Background(), zerolog.New(buf))

	p := &ProcessorMock{}
	i := New(p, 2, 10)

	messages := make(chan []byte, 1)
	messages <- []byte(`{"readings": "not-an-array"}`)
	close(messages)

	is.NoErr(i.Run(ctx, messages))

	is.Equal(0, len(p.ProcessCalls()))
	is.Equal(1, bytes.Count(buf.Bytes(), []byte("dropping message")))
}

func TestReadingsOfOneDeviceKeepArrivalOrder(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	var mu sync.Mutex
	seen := map[string][]float64{}

	p := &ProcessorMock{
		ProcessFunc: func(ctx context.Context, reading types.Reading) error {
			mu.Lock()
			defer mu.Unlock()
			seen[reading.DeviceCode] = append(seen[reading.DeviceCode], reading.Value)
			return nil
		},
	}

	i := New(p, 4, 2)

	messages := make(chan []byte)
	done := make(chan error)
	go func() { done <- i.Run(ctx, messages) }()

	for n := 0; n < 50; n++ {
		for _, device := range []string{"DEV001", "DEV002", "DEV003"} {
			messages <- []byte(fmt.Sprintf(`{"device_id":"%s","readings":[{"sensor_id":"A","value":%d},{"sensor_id":"B","value":%d}]}`, device, 2*n, 2*n+1))
		}
	}
	close(messages)
	is.NoErr(<-done)

	is.Equal(300, len(p.ProcessCalls()))

	for _, values := range seen {
		is.Equal(100, len(values))
		for n, v := range values {
			is.Equal(float64(n), v)
		}
	}
}

func TestFailedReadingDoesNotStopTheBatch(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	p := &ProcessorMock{
		ProcessFunc: func(ctx context.Context, reading types.Reading) error {
			if reading.SensorCode == "NOPE" {
				return telemetry.ErrSensorNotFound
			}
			return nil
		},
	}

	i := New(p, 1, 10)

	messages := make(chan []byte, 1)
	messages <- []byte(`{"device_id":"DEV001","readings":[{"sensor_id":"NOPE","value":1},{"sensor_id":"RAIN01","value":2}]}`)
	close(messages)

	is.NoErr(i.Run(ctx, messages))

	is.Equal(2, len(p.ProcessCalls()))
	is.Equal("RAIN01", p.ProcessCalls()[1].Reading.SensorCode)
}

func TestRunDrainsQueuedReadingsOnShutdown(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{}, 3)
	release := make(chan struct{})
	p := &ProcessorMock{
		ProcessFunc: func(ctx context.Context, reading types.Reading) error {
			started <- struct{}{}
			<-release
			return ctx.Err()
		},
	}

	i := New(p, 1, 10)

	messages := make(chan []byte, 1)
	messages <- []byte(`{"device_id":"DEV001","readings":[{"sensor_id":"A","value":1},{"sensor_id":"B","value":2},{"sensor_id":"C","value":3}]}`)

	done := make(chan error)
	go func() { done <- i.Run(ctx, messages) }()

	// one reading is being processed and the other two are queued
	<-started
	for len(i.queues[0]) < 2 {
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	close(release)

	is.NoErr(<-done)
	is.Equal(3, len(p.ProcessCalls()))
}
