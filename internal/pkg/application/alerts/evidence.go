package alerts

import (
	"math"
	"time"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/thresholds"
	"github.com/diwise/iot-landslide-monitor/pkg/types"
)

type BreachEvidence struct {
	DeviceID      uint             `json:"deviceID"`
	DeviceCode    string           `json:"deviceCode"`
	DeviceName    string           `json:"deviceName"`
	SensorID      uint             `json:"sensorID"`
	SensorCode    string           `json:"sensorCode"`
	SensorName    string           `json:"sensorName"`
	SensorType    string           `json:"sensorType"`
	Value         float64          `json:"value"`
	Unit          string           `json:"unit"`
	ThresholdType thresholds.Bound `json:"thresholdType"`
	Threshold     float64          `json:"threshold"`
	PercentOver   *float64         `json:"percentOver,omitempty"`
	RecordedAt    time.Time        `json:"recordedAt"`
}

type SilenceEvidence struct {
	DeviceID       uint      `json:"deviceID"`
	DeviceCode     string    `json:"deviceCode"`
	DeviceName     string    `json:"deviceName"`
	LastSeen       time.Time `json:"lastSeen"`
	MinutesSilent  int       `json:"minutesSilent"`
	TimeoutMinutes int       `json:"timeoutMinutes"`
	Province       string    `json:"province,omitempty"`
	DetectedAt     time.Time `json:"detectedAt"`
}

func ThresholdEvidence(sensor types.Sensor, value float64, breach thresholds.Breach, recordedAt time.Time) BreachEvidence {
	e := BreachEvidence{
		DeviceID:      sensor.Device.ID,
		DeviceCode:    sensor.Device.Code,
		DeviceName:    sensor.Device.Name,
		SensorID:      sensor.ID,
		SensorCode:    sensor.Code,
		SensorName:    sensor.Name,
		SensorType:    sensor.Type,
		Value:         value,
		Unit:          sensor.Unit,
		ThresholdType: breach.Bound,
		Threshold:     breach.Threshold,
		RecordedAt:    recordedAt.UTC(),
	}

	// json cannot encode infinity
	if breach.Bound == thresholds.BoundMax && !math.IsInf(breach.PercentOver, 0) {
		over := math.Round(breach.PercentOver*100) / 100
		e.PercentOver = &over
	}

	return e
}

// LivenessEvidence describes a device that has been silent since its last
// seen time.
func LivenessEvidence(device types.Device, now time.Time, timeout time.Duration) SilenceEvidence {
	e := SilenceEvidence{
		DeviceID:       device.ID,
		DeviceCode:     device.Code,
		DeviceName:     device.Name,
		TimeoutMinutes: int(timeout.Minutes()),
		Province:       device.Province,
		DetectedAt:     now.UTC(),
	}

	if device.LastSeen != nil {
		e.LastSeen = device.LastSeen.UTC()
		e.MinutesSilent = int(now.Sub(*device.LastSeen).Minutes())
	}

	return e
}
