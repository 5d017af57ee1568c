package types

import (
	"encoding/json"
	"time"
)

type DeviceStatus string

const (
	DeviceStatusOnline       DeviceStatus = "online"
	DeviceStatusOffline      DeviceStatus = "offline"
	DeviceStatusDisconnected DeviceStatus = "disconnected"
	DeviceStatusMaintenance  DeviceStatus = "maintenance"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

type Category string

const (
	CategoryThreshold  Category = "threshold"
	CategoryHardware   Category = "hardware"
	CategoryPrediction Category = "prediction"
	CategorySystem     Category = "system"
)

type AlertStatus string

const (
	AlertStatusActive       AlertStatus = "active"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
)

const RoleSuperAdmin string = "superAdmin"

type Province struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type Device struct {
	ID         uint               `json:"id"`
	Code       string             `json:"code"`
	Name       string             `json:"name"`
	Status     DeviceStatus       `json:"status"`
	LastSeen   *time.Time         `json:"lastSeen,omitempty"`
	LatestData map[string]float64 `json:"latestData,omitempty"`
	ProvinceID *uint              `json:"provinceID,omitempty"`
	Province   string             `json:"province,omitempty"`
}

type Sensor struct {
	ID           uint     `json:"id"`
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Unit         string   `json:"unit"`
	MinThreshold *float64 `json:"minThreshold,omitempty"`
	MaxThreshold *float64 `json:"maxThreshold,omitempty"`

	Device Device `json:"device"`
}

// Reading is a single measurement handed from the ingest adapter to the pipeline.
type Reading struct {
	DeviceCode string     `json:"deviceCode"`
	SensorCode string     `json:"sensorCode"`
	Value      float64    `json:"value"`
	Timestamp  *time.Time `json:"timestamp,omitempty"`
}

type SensorReading struct {
	ID         uint      `json:"id"`
	SensorID   uint      `json:"sensorID"`
	Value      float64   `json:"value"`
	RecordedAt time.Time `json:"recordedAt"`
}

type User struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email,omitempty"`
	Role     string  `json:"role"`
}

// Alert is the persisted alert joined with the display fields of its
// device, sensor and province.
type Alert struct {
	ID             string          `json:"id"`
	DeviceID       uint            `json:"deviceID"`
	SensorID       *uint           `json:"sensorID,omitempty"`
	Title          string          `json:"title"`
	Message        string          `json:"message"`
	Severity       Severity        `json:"severity"`
	Category       Category        `json:"category"`
	Status         AlertStatus     `json:"status"`
	TriggeredValue *float64        `json:"triggeredValue,omitempty"`
	EvidenceData   json.RawMessage `json:"evidenceData,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`

	DeviceCode   string `json:"deviceCode"`
	DeviceName   string `json:"deviceName"`
	SensorCode   string `json:"sensorCode,omitempty"`
	SensorName   string `json:"sensorName,omitempty"`
	SensorType   string `json:"sensorType,omitempty"`
	SensorUnit   string `json:"sensorUnit,omitempty"`
	ProvinceID   *uint  `json:"provinceID,omitempty"`
	ProvinceName string `json:"provinceName,omitempty"`
}
