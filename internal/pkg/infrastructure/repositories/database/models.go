package database

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Province struct {
	gorm.Model
	Code string `gorm:"uniqueIndex"`
	Name string
}

type User struct {
	gorm.Model
	Username  string `gorm:"uniqueIndex"`
	Email     *string
	Role      string
	Provinces []Province `gorm:"many2many:user_provinces;"`
}

type Device struct {
	gorm.Model
	Code       string `gorm:"uniqueIndex"`
	Name       string
	Status     string     `gorm:"index;default:online"`
	LastSeen   *time.Time `gorm:"index"`
	LatestData datatypes.JSONMap
	ProvinceID *uint
	Province   *Province
}

type Sensor struct {
	gorm.Model
	DeviceID     uint   `gorm:"uniqueIndex:idx_sensor_device_code"`
	Code         string `gorm:"uniqueIndex:idx_sensor_device_code"`
	Name         string
	Type         string
	Unit         string
	MinThreshold *float64
	MaxThreshold *float64
	Device       Device
}

type SensorReading struct {
	ID         uint `gorm:"primarykey"`
	SensorID   uint `gorm:"index"`
	Value      float64
	RecordedAt time.Time `gorm:"index"`
	CreatedAt  time.Time
	Sensor     Sensor
}

type Alert struct {
	ID             string `gorm:"primaryKey"`
	DeviceID       uint   `gorm:"index"`
	SensorID       *uint  `gorm:"index"`
	Title          string
	Message        string
	Severity       string
	Category       string
	Status         string `gorm:"index"`
	TriggeredValue *float64
	EvidenceData   datatypes.JSON
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Device         Device
	Sensor         *Sensor
}
