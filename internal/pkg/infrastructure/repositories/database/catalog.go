package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/iot-landslide-monitor/pkg/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("not found")

// Catalog is the relational store of provinces, users, devices, sensors,
// readings and alerts.
type Catalog struct {
	db *gorm.DB
}

func NewCatalog(ctx context.Context, connect ConnectorFunc) (*Catalog, error) {
	db, err := connect()
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).AutoMigrate(
		&Province{}, &User{}, &Device{}, &Sensor{}, &SensorReading{}, &Alert{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Catalog{db: db}, nil
}

func (c *Catalog) FindSensor(ctx context.Context, deviceCode, sensorCode string) (types.Sensor, error) {
	var device Device
	result := c.db.WithContext(ctx).Preload("Province").Where("code = ?", deviceCode).First(&device)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return types.Sensor{}, ErrNotFound
	} else if result.Error != nil {
		return types.Sensor{}, result.Error
	}

	var sensor Sensor
	result = c.db.WithContext(ctx).Where("device_id = ? AND code = ?", device.ID, sensorCode).First(&sensor)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return types.Sensor{}, ErrNotFound
	} else if result.Error != nil {
		return types.Sensor{}, result.Error
	}

	sensor.Device = device

	return toSensor(sensor), nil
}

func (c *Catalog) InsertReading(ctx context.Context, sensorID uint, value float64, recordedAt time.Time) (types.SensorReading, error) {
	reading := SensorReading{
		SensorID:   sensorID,
		Value:      value,
		RecordedAt: recordedAt.UTC(),
	}

	err := c.db.WithContext(ctx).Omit(clause.Associations).Create(&reading).Error
	if err != nil {
		return types.SensorReading{}, err
	}

	return types.SensorReading{
		ID:         reading.ID,
		SensorID:   reading.SensorID,
		Value:      reading.Value,
		RecordedAt: reading.RecordedAt,
	}, nil
}

// UpdateDeviceSnapshot merges value into the latest data of the device under
// the given sensor type and moves last seen forward to seenAt. A device that
// was disconnected is brought back online, which is reported by the returned
// bool.
func (c *Catalog) UpdateDeviceSnapshot(ctx context.Context, deviceID uint, sensorType string, value float64, seenAt time.Time) (types.Device, bool, error) {
	var device Device
	reconnected := false
	seenAt = seenAt.UTC()

	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&device, deviceID).Error; err != nil {
			return err
		}

		latest := datatypes.JSONMap{}
		for k, v := range device.LatestData {
			latest[k] = v
		}
		latest[sensorType] = value

		result := tx.Model(&Device{}).
			Where("id = ? AND status = ?", deviceID, string(types.DeviceStatusDisconnected)).
			Update("status", string(types.DeviceStatusOnline))
		if result.Error != nil {
			return result.Error
		}
		reconnected = result.RowsAffected == 1

		result = tx.Model(&Device{}).Where("id = ?", deviceID).Updates(map[string]any{
			"latest_data": latest,
			"last_seen":   gorm.Expr("CASE WHEN last_seen IS NULL OR last_seen < ? THEN ? ELSE last_seen END", seenAt, seenAt),
		})
		if result.Error != nil {
			return result.Error
		}

		return tx.Preload("Province").First(&device, deviceID).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return types.Device{}, false, ErrNotFound
	} else if err != nil {
		return types.Device{}, false, err
	}

	return toDevice(device), reconnected, nil
}

// ListDevicesSilentSince returns the devices that are still considered
// reachable but have not been seen since cutoff. Devices that have never
// reported are not included.
func (c *Catalog) ListDevicesSilentSince(ctx context.Context, cutoff time.Time) ([]types.Device, error) {
	var devices []Device

	excluded := []string{
		string(types.DeviceStatusOffline),
		string(types.DeviceStatusDisconnected),
		string(types.DeviceStatusMaintenance),
	}

	err := c.db.WithContext(ctx).
		Preload("Province").
		Where("last_seen IS NOT NULL AND last_seen < ? AND status NOT IN ?", cutoff.UTC(), excluded).
		Order("id").
		Find(&devices).Error
	if err != nil {
		return nil, err
	}

	result := make([]types.Device, 0, len(devices))
	for _, d := range devices {
		result = append(result, toDevice(d))
	}

	return result, nil
}

// TransitionDeviceStatus moves a device from expected to next, but only if it
// still has the expected status and has not been seen since seenBefore. The
// returned bool reports whether this call made the transition.
func (c *Catalog) TransitionDeviceStatus(ctx context.Context, deviceID uint, expected, next types.DeviceStatus, seenBefore time.Time) (bool, error) {
	result := c.db.WithContext(ctx).Model(&Device{}).
		Where("id = ? AND status = ? AND last_seen < ?", deviceID, string(expected), seenBefore.UTC()).
		Update("status", string(next))
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

func (c *Catalog) GetDevice(ctx context.Context, deviceID uint) (types.Device, error) {
	var device Device
	result := c.db.WithContext(ctx).Preload("Province").First(&device, deviceID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return types.Device{}, ErrNotFound
	} else if result.Error != nil {
		return types.Device{}, result.Error
	}

	return toDevice(device), nil
}

func (c *Catalog) InsertAlert(ctx context.Context, alert types.Alert) error {
	a := Alert{
		ID:             alert.ID,
		DeviceID:       alert.DeviceID,
		SensorID:       alert.SensorID,
		Title:          alert.Title,
		Message:        alert.Message,
		Severity:       string(alert.Severity),
		Category:       string(alert.Category),
		Status:         string(alert.Status),
		TriggeredValue: alert.TriggeredValue,
		EvidenceData:   datatypes.JSON(alert.EvidenceData),
	}

	return c.db.WithContext(ctx).Omit(clause.Associations).Create(&a).Error
}

type alertRow struct {
	ID             string
	DeviceID       uint
	SensorID       *uint
	Title          string
	Message        string
	Severity       string
	Category       string
	Status         string
	TriggeredValue *float64
	EvidenceData   datatypes.JSON
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeviceCode     string
	DeviceName     string
	SensorCode     *string
	SensorName     *string
	SensorType     *string
	SensorUnit     *string
	ProvinceID     *uint
	ProvinceName   *string
}

// GetAlert returns the alert with the display fields of its device, sensor
// and province joined in.
func (c *Catalog) GetAlert(ctx context.Context, alertID string) (types.Alert, error) {
	var row alertRow

	result := c.db.WithContext(ctx).Table("alerts").
		Select(`alerts.*,
			devices.code AS device_code, devices.name AS device_name,
			sensors.code AS sensor_code, sensors.name AS sensor_name,
			sensors.type AS sensor_type, sensors.unit AS sensor_unit,
			provinces.id AS province_id, provinces.name AS province_name`).
		Joins("JOIN devices ON devices.id = alerts.device_id").
		Joins("LEFT JOIN sensors ON sensors.id = alerts.sensor_id").
		Joins("LEFT JOIN provinces ON provinces.id = devices.province_id").
		Where("alerts.id = ?", alertID).
		Scan(&row)
	if result.Error != nil {
		return types.Alert{}, result.Error
	}
	if result.RowsAffected == 0 {
		return types.Alert{}, ErrNotFound
	}

	return types.Alert{
		ID:             row.ID,
		DeviceID:       row.DeviceID,
		SensorID:       row.SensorID,
		Title:          row.Title,
		Message:        row.Message,
		Severity:       types.Severity(row.Severity),
		Category:       types.Category(row.Category),
		Status:         types.AlertStatus(row.Status),
		TriggeredValue: row.TriggeredValue,
		EvidenceData:   json.RawMessage(row.EvidenceData),
		CreatedAt:      row.CreatedAt.UTC(),
		UpdatedAt:      row.UpdatedAt.UTC(),
		DeviceCode:     row.DeviceCode,
		DeviceName:     row.DeviceName,
		SensorCode:     deref(row.SensorCode),
		SensorName:     deref(row.SensorName),
		SensorType:     deref(row.SensorType),
		SensorUnit:     deref(row.SensorUnit),
		ProvinceID:     row.ProvinceID,
		ProvinceName:   deref(row.ProvinceName),
	}, nil
}

// ListNotificationRecipients returns the users assigned to the province
// together with every super admin.
func (c *Catalog) ListNotificationRecipients(ctx context.Context, provinceID uint) ([]types.User, error) {
	var users []User

	db := c.db.WithContext(ctx)
	assigned := db.Table("user_provinces").Select("user_id").Where("province_id = ?", provinceID)

	err := db.
		Where("role = ? OR id IN (?)", types.RoleSuperAdmin, assigned).
		Order("id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	result := make([]types.User, 0, len(users))
	for _, u := range users {
		result = append(result, types.User{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			Role:     u.Role,
		})
	}

	return result, nil
}

func toDevice(d Device) types.Device {
	device := types.Device{
		ID:         d.ID,
		Code:       d.Code,
		Name:       d.Name,
		Status:     types.DeviceStatus(d.Status),
		ProvinceID: d.ProvinceID,
	}

	if d.LastSeen != nil {
		ls := d.LastSeen.UTC()
		device.LastSeen = &ls
	}

	if len(d.LatestData) > 0 {
		device.LatestData = map[string]float64{}
		for k, v := range d.LatestData {
			if f, ok := toFloat(v); ok {
				device.LatestData[k] = f
			}
		}
	}

	if d.Province != nil {
		device.Province = d.Province.Name
	}

	return device
}

func toSensor(s Sensor) types.Sensor {
	return types.Sensor{
		ID:           s.ID,
		Code:         s.Code,
		Name:         s.Name,
		Type:         s.Type,
		Unit:         s.Unit,
		MinThreshold: s.MinThreshold,
		MaxThreshold: s.MaxThreshold,
		Device:       toDevice(s.Device),
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
