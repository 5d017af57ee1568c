package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diwise/iot-landslide-monitor/pkg/types"
)

var (
	ErrMalformedPayload = errors.New("malformed payload")
	ErrMissingDeviceID  = errors.New("missing device_id")
	ErrInvalidReadings  = errors.New("readings missing or not a list")
)

// Envelope is a validated telemetry message. Readings that lacked a sensor_id
// or a numeric value have been left out and are counted in Skipped.
type Envelope struct {
	DeviceCode string
	Timestamp  *time.Time
	Readings   []types.Reading
	Skipped    int
}

type envelope struct {
	DeviceID  any             `json:"device_id"`
	Timestamp any             `json:"timestamp"`
	Readings  json.RawMessage `json:"readings"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// Decode validates a raw message of the form
//
//	{"device_id": "DEV001", "timestamp": "2024-05-01T10:00:00Z", "readings": [{"sensor_id": "RAIN01", "value": 12.5}]}
//
// A timestamp that is absent or cannot be parsed leaves Timestamp nil so the
// reading is recorded at server time.
func Decode(payload []byte) (Envelope, error) {
	var raw envelope

	if err := json.Unmarshal(payload, &raw); err != nil {
		return Envelope{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	deviceCode, ok := raw.DeviceID.(string)
	deviceCode = strings.TrimSpace(deviceCode)
	if !ok || deviceCode == "" {
		return Envelope{}, ErrMissingDeviceID
	}

	var items []json.RawMessage
	if len(raw.Readings) == 0 || json.Unmarshal(raw.Readings, &items) != nil || items == nil {
		return Envelope{}, ErrInvalidReadings
	}

	env := Envelope{
		DeviceCode: deviceCode,
		Timestamp:  parseTimestamp(raw.Timestamp),
	}

	for _, item := range items {
		var r struct {
			SensorID any `json:"sensor_id"`
			Value    any `json:"value"`
		}

		if json.Unmarshal(item, &r) != nil {
			env.Skipped++
			continue
		}

		sensorCode, ok := r.SensorID.(string)
		sensorCode = strings.TrimSpace(sensorCode)
		if !ok || sensorCode == "" {
			env.Skipped++
			continue
		}

		value, ok := r.Value.(float64)
		if !ok {
			env.Skipped++
			continue
		}

		env.Readings = append(env.Readings, types.Reading{
			DeviceCode: deviceCode,
			SensorCode: sensorCode,
			Value:      value,
			Timestamp:  env.Timestamp,
		})
	}

	return env, nil
}

func parseTimestamp(v any) *time.Time {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}

	return nil
}
