package ingest

import (
	"context"
	"errors"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/telemetry"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/logging"
	"github.com/diwise/iot-landslide-monitor/pkg/types"
)

//go:generate moq -rm -out ingest_mock.go . Processor

type Processor interface {
	Process(ctx context.Context, reading types.Reading) error
}

// Ingestor decodes incoming messages and hands their readings to a fixed set
// of workers. All readings of a device go to the same worker, so they are
// processed one at a time and in arrival order.
type Ingestor struct {
	processor Processor
	queues    []chan types.Reading
	wg        sync.WaitGroup
}

func New(p Processor, workers, queueSize int) *Ingestor {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	i := &Ingestor{
		processor: p,
		queues:    make([]chan types.Reading, workers),
	}

	for n := range i.queues {
		i.queues[n] = make(chan types.Reading, queueSize)
	}

	return i
}

// Run consumes messages until ctx is done or messages is closed. Before
// returning it waits for the workers to finish the readings already queued.
func (i *Ingestor) Run(ctx context.Context, messages <-chan []byte) error {
	log := logging.GetFromContext(ctx)

	// queued readings are still processed after ctx is done
	workerCtx := context.WithoutCancel(ctx)

	for n, q := range i.queues {
		i.wg.Add(1)
		go i.work(workerCtx, log.With().Int("worker", n).Logger(), q)
	}

	defer func() {
		for _, q := range i.queues {
			close(q)
		}
		i.wg.Wait()
		log.Info().Msg("ingest workers drained")
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			i.Handle(ctx, msg)
		}
	}
}

// Handle validates one message and queues its readings. Invalid messages are
// dropped and logged.
func (i *Ingestor) Handle(ctx context.Context, payload []byte) {
	log := logging.GetFromContext(ctx)

	env, err := Decode(payload)
	if err != nil {
		log.Warn().Err(err).Int("size", len(payload)).Msg("dropping message")
		return
	}

	log = log.With().Str("device_code", env.DeviceCode).Logger()

	if env.Skipped > 0 {
		log.Warn().Int("skipped", env.Skipped).Msg("skipped invalid readings in message")
	}

	q := i.queues[i.partition(env.DeviceCode)]

	for _, r := range env.Readings {
		select {
		case q <- r:
		case <-ctx.Done():
			log.Warn().Msg("shutting down, dropping remaining readings in message")
			return
		}
	}
}

func (i *Ingestor) partition(deviceCode string) int {
	return int(xxhash.Sum64String(deviceCode) % uint64(len(i.queues)))
}

func (i *Ingestor) work(ctx context.Context, log zerolog.Logger, queue <-chan types.Reading) {
	defer i.wg.Done()

	for r := range queue {
		err := i.processor.Process(logging.NewContextWithLogger(ctx, log), r)
		if err == nil {
			continue
		}

		l := log.With().Str("device_code", r.DeviceCode).Str("sensor_code", r.SensorCode).Logger()

		if errors.Is(err, telemetry.ErrSensorNotFound) {
			l.Warn().Err(err).Msg("skipping reading for unknown sensor")
		} else {
			l.Error().Err(err).Msg("failed to process reading")
		}
	}
}
