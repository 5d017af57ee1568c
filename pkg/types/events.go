package types

import (
	"encoding/json"
	"time"
)

// Names of the events pushed to connected live clients.
const (
	EventSensorDataUpdate    string = "sensor_data_update"
	EventNewAlert            string = "new_alert"
	EventDeviceStatusUpdated string = "device_status_updated"
)

type SensorDataUpdate struct {
	DeviceID   uint      `json:"deviceID"`
	DeviceCode string    `json:"deviceCode"`
	SensorID   uint      `json:"sensorID"`
	SensorCode string    `json:"sensorCode"`
	SensorName string    `json:"sensorName"`
	SensorType string    `json:"sensorType"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
	RecordedAt time.Time `json:"recordedAt"`
}

type DeviceStatusUpdate struct {
	DeviceID   uint         `json:"deviceID"`
	DeviceCode string       `json:"deviceCode"`
	Status     DeviceStatus `json:"status"`
	LastSeen   *time.Time   `json:"lastSeen,omitempty"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

type DeviceStatusUpdated struct {
	DeviceID   uint         `json:"deviceID"`
	DeviceCode string       `json:"deviceCode"`
	Status     DeviceStatus `json:"status"`
	LastSeen   *time.Time   `json:"lastSeen,omitempty"`
	Timestamp  time.Time    `json:"timestamp"`
}

func (d *DeviceStatusUpdated) ContentType() string {
	return "application/json"
}
func (d *DeviceStatusUpdated) TopicName() string {
	return "device.statusUpdated"
}
func (d *DeviceStatusUpdated) Body() []byte {
	b, _ := json.Marshal(d)
	return b
}

type AlertCreated struct {
	Alert     Alert     `json:"alert"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AlertCreated) ContentType() string {
	return "application/json"
}
func (a *AlertCreated) TopicName() string {
	return "alerts.alertCreated"
}
func (a *AlertCreated) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}
