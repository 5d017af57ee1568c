package ingest

import (
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestDecodeValidMessage(t *testing.T) {
	is := is.New(t)

	env, err := Decode([]byte(`{"device_id":"DEV001","timestamp":"2024-05-01T17:00:00+07:00","readings":[{"sensor_id":"RAIN01","value":160},{"sensor_id":"TILT01","value":-1.5}]}`))
	is.NoErr(err)

	is.Equal("DEV001", env.DeviceCode)
	is.Equal(0, env.Skipped)
	is.Equal(2, len(env.Readings))
	is.True(env.Timestamp.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))

	is.Equal("RAIN01", env.Readings[0].SensorCode)
	is.Equal(160.0, env.Readings[0].Value)
	is.Equal("TILT01", env.Readings[1].SensorCode)
	is.Equal(-1.5, env.Readings[1].Value)
	is.Equal("DEV001", env.Readings[1].DeviceCode)
}

func TestDecodeDropsMessageWithNonListReadings(t *testing.T) {
	is := is.New(t)

	_, err := Decode([]byte(`{"readings": "not-an-array"}`))
	is.True(errors.Is(err, ErrMissingDeviceID))

	_, err = Decode([]byte(`{"device_id":"DEV001","readings": "not-an-array"}`))
	is.True(errors.Is(err, ErrInvalidReadings))
}

func TestDecodeDropsMessageWithoutReadings(t *testing.T) {
	is := is.New(t)

	_, err := Decode([]byte(`{"device_id":"DEV001"}`))
	is.True(errors.Is(err, ErrInvalidReadings))

	_, err = Decode([]byte(`{"device_id":"DEV001","readings":null}`))
	is.True(errors.Is(err, ErrInvalidReadings))
}

func TestDecodeDropsMessageWithoutDeviceID(t *testing.T) {
	is := is.New(t)

	for _, payload := range []string{
		`{"readings":[{"sensor_id":"RAIN01","value":1}]}`,
		`{"device_id":"","readings":[]}`,
		`{"device_id":42,"readings":[]}`,
	} {
		_, err := Decode([]byte(payload))
		is.True(errors.Is(err, ErrMissingDeviceID))
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	is := is.New(t)

	for _, payload := range []string{`{"device_id":`, `[1,2,3]`, ``} {
		_, err := Decode([]byte(payload))
		is.True(errors.Is(err, ErrMalformedPayload))
	}
}

func TestDecodeSkipsInvalidReadingsIndividually(t *testing.T) {
	is := is.New(t)

	env, err := Decode([]byte(`{"device_id":"DEV001","readings":[
		{"sensor_id":"RAIN01","value":"12"},
		{"value":3},
		{"sensor_id":"TILT01"},
		{"sensor_id":"TILT01","value":null},
		42,
		{"sensor_id":"HUM01","value":0}
	]}`))
	is.NoErr(err)

	is.Equal(5, env.Skipped)
	is.Equal(1, len(env.Readings))
	is.Equal("HUM01", env.Readings[0].SensorCode)
	is.Equal(0.0, env.Readings[0].Value)
}

func TestDecodeIgnoresBadTimestamp(t *testing.T) {
	is := is.New(t)

	env, err := Decode([]byte(`{"device_id":"DEV001","timestamp":"yesterday","readings":[{"sensor_id":"RAIN01","value":1}]}`))
	is.NoErr(err)
	is.True(env.Timestamp == nil)
	is.True(env.Readings[0].Timestamp == nil)
}

func TestDecodeAcceptsTimestampWithoutZone(t *testing.T) {
	is := is.New(t)

	env, err := Decode([]byte(`{"device_id":"DEV001","timestamp":"2024-05-01T10:00:00","readings":[]}`))
	is.NoErr(err)
	is.True(env.Timestamp.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))
	is.Equal(0, len(env.Readings))
}
