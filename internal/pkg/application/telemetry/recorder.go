package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/logging"
	"github.com/diwise/iot-landslide-monitor/pkg/types"
)

var ErrPersistence = errors.New("failed to persist reading")

//go:generate moq -rm -out recorder_mock.go . ReadingStore LivePublisher Publisher

type ReadingStore interface {
	InsertReading(ctx context.Context, sensorID uint, value float64, recordedAt time.Time) (types.SensorReading, error)
	UpdateDeviceSnapshot(ctx context.Context, deviceID uint, sensorType string, value float64, seenAt time.Time) (types.Device, bool, error)
}

type LivePublisher interface {
	Publish(event string, data any) error
}

type Publisher interface {
	PublishOnTopic(ctx context.Context, message messaging.TopicMessage) error
}

// Recorder appends readings to the history and keeps the live snapshot of
// the owning device current.
type Recorder struct {
	store     ReadingStore
	live      LivePublisher
	publisher Publisher
	now       func() time.Time
}

func NewRecorder(s ReadingStore, live LivePublisher, p Publisher) *Recorder {
	return &Recorder{
		store:     s,
		live:      live,
		publisher: p,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Record stores the reading and updates the device. Only a failure to store
// the reading is returned. A failed device update is logged since the reading
// is already part of the history.
func (r *Recorder) Record(ctx context.Context, sensor types.Sensor, value float64, timestamp *time.Time) (types.SensorReading, error) {
	log := logging.GetFromContext(ctx)

	recordedAt := r.now()
	if timestamp != nil {
		recordedAt = timestamp.UTC()
	}

	reading, err := r.store.InsertReading(ctx, sensor.ID, value, recordedAt)
	if err != nil {
		return types.SensorReading{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	device, reconnected, err := r.store.UpdateDeviceSnapshot(ctx, sensor.Device.ID, sensor.Type, value, recordedAt)
	if err != nil {
		log.Error().Err(err).Msg("failed to update device snapshot")
	} else if reconnected {
		log.Info().Msg("device is back online")
		r.statusUpdated(ctx, device)
	}

	err = r.live.Publish(types.EventSensorDataUpdate, types.SensorDataUpdate{
		DeviceID:   sensor.Device.ID,
		DeviceCode: sensor.Device.Code,
		SensorID:   sensor.ID,
		SensorCode: sensor.Code,
		SensorName: sensor.Name,
		SensorType: sensor.Type,
		Value:      value,
		Unit:       sensor.Unit,
		RecordedAt: reading.RecordedAt,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to publish sensor data update")
	}

	return reading, nil
}

func (r *Recorder) statusUpdated(ctx context.Context, device types.Device) {
	log := logging.GetFromContext(ctx)
	now := r.now()

	err := r.live.Publish(types.EventDeviceStatusUpdated, types.DeviceStatusUpdate{
		DeviceID:   device.ID,
		DeviceCode: device.Code,
		Status:     device.Status,
		LastSeen:   device.LastSeen,
		UpdatedAt:  now,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to publish device status update")
	}

	err = r.publisher.PublishOnTopic(ctx, &types.DeviceStatusUpdated{
		DeviceID:   device.ID,
		DeviceCode: device.Code,
		Status:     device.Status,
		LastSeen:   device.LastSeen,
		Timestamp:  now,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to publish device status updated")
	}
}
