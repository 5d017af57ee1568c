package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/iot-landslide-monitor/pkg/types"
	"github.com/go-redis/redis/v8"
)

const keyPrefix string = "landslide:sensor:"

// SensorCache keeps resolved sensors in redis keyed by device and sensor code.
// Only identity and threshold fields are stored, never device status or
// latest data.
type SensorCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(ctx context.Context, addr, password string, ttl time.Duration) (*SensorCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return NewWithClient(client, ttl), nil
}

func NewWithClient(client *redis.Client, ttl time.Duration) *SensorCache {
	return &SensorCache{client: client, ttl: ttl}
}

// Get returns the cached sensor and true, or false on a cache miss.
func (c *SensorCache) Get(ctx context.Context, deviceCode, sensorCode string) (types.Sensor, bool, error) {
	val, err := c.client.Get(ctx, key(deviceCode, sensorCode)).Bytes()
	if errors.Is(err, redis.Nil) {
		return types.Sensor{}, false, nil
	} else if err != nil {
		return types.Sensor{}, false, err
	}

	var sensor types.Sensor
	if err := json.Unmarshal(val, &sensor); err != nil {
		return types.Sensor{}, false, fmt.Errorf("failed to unmarshal cached sensor: %w", err)
	}

	return sensor, true, nil
}

func (c *SensorCache) Set(ctx context.Context, sensor types.Sensor) error {
	sensor.Device = types.Device{
		ID:         sensor.Device.ID,
		Code:       sensor.Device.Code,
		Name:       sensor.Device.Name,
		ProvinceID: sensor.Device.ProvinceID,
		Province:   sensor.Device.Province,
	}

	b, err := json.Marshal(sensor)
	if err != nil {
		return fmt.Errorf("failed to marshal sensor: %w", err)
	}

	return c.client.Set(ctx, key(sensor.Device.Code, sensor.Code), b, c.ttl).Err()
}

func (c *SensorCache) Close() error {
	return c.client.Close()
}

func key(deviceCode, sensorCode string) string {
	return keyPrefix + deviceCode + ":" + sensorCode
}
