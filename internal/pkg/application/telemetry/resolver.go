package telemetry

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/logging"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/iot-landslide-monitor/pkg/types"
)

var ErrSensorNotFound = errors.New("sensor not found")

//go:generate moq -rm -out resolver_mock.go . SensorLookup SensorCache

type SensorLookup interface {
	FindSensor(ctx context.Context, deviceCode, sensorCode string) (types.Sensor, error)
}

type SensorCache interface {
	Get(ctx context.Context, deviceCode, sensorCode string) (types.Sensor, bool, error)
	Set(ctx context.Context, sensor types.Sensor) error
}

// Resolver maps external device and sensor codes to the catalog sensor and
// its thresholds. The cache is optional.
type Resolver struct {
	catalog SensorLookup
	cache   SensorCache
}

func NewResolver(c SensorLookup, cache SensorCache) *Resolver {
	return &Resolver{
		catalog: c,
		cache:   cache,
	}
}

func (r *Resolver) Resolve(ctx context.Context, deviceCode, sensorCode string) (types.Sensor, error) {
	log := logging.GetFromContext(ctx)

	if r.cache != nil {
		sensor, found, err := r.cache.Get(ctx, deviceCode, sensorCode)
		if err != nil {
			log.Warn().Err(err).Msg("sensor cache lookup failed")
		} else if found {
			return sensor, nil
		}
	}

	sensor, err := r.catalog.FindSensor(ctx, deviceCode, sensorCode)
	if errors.Is(err, database.ErrNotFound) {
		return types.Sensor{}, fmt.Errorf("%w: %s/%s", ErrSensorNotFound, deviceCode, sensorCode)
	} else if err != nil {
		return types.Sensor{}, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, sensor); err != nil {
			log.Warn().Err(err).Msg("failed to cache sensor")
		}
	}

	return sensor, nil
}
