package database

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/diwise/iot-landslide-monitor/pkg/types"
	"github.com/matryer/is"
)

func TestFindSensor(t *testing.T) {
	is, ctx, c := testSetupCatalog(t)

	sensor, err := c.FindSensor(ctx, "DEV001", "RAIN01")
	is.NoErr(err)
	is.Equal("rainfall_24h", sensor.Type)
	is.Equal("mm", sensor.Unit)
	is.True(sensor.MinThreshold == nil)
	is.Equal(100.0, *sensor.MaxThreshold)
	is.Equal("DEV001", sensor.Device.Code)
	is.Equal("Lao Cai", sensor.Device.Province)
	is.True(sensor.Device.ProvinceID != nil)
}

func TestFindSensorReturnsNotFoundForUnknownCodes(t *testing.T) {
	is, ctx, c := testSetupCatalog(t)

	_, err := c.FindSensor(ctx, "DEV001", "NOPE")
	is.True(errors.Is(err, ErrNotFound))

	_, err = c.FindSensor(ctx, "NOPE", "RAIN01")
	is.True(errors.Is(err, ErrNotFound))
}

func TestThatSensorCodesAreScopedToTheirDevice(t *testing.T) {
	is, ctx, c := testSetupCatalog(t)

	s1, err := c.FindSensor(ctx, "DEV001", "TILT01")
	is.NoErr(err)
	s2, err := c.FindSensor(ctx, "DEV002", "TILT01")
	is.NoErr(err)

	is.True(s1.ID != s2.ID)
	is.Equal("DEV002", s2.Device.Code)
}

func TestThatReplayedReadingsAreStoredTwice(t *testing.T) {
	is, ctx, c := testSetupCatalog(t)

	sensor, _ := c.FindSensor(ctx, "DEV001", "RAIN01")
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	r1, err := c.InsertReading(ctx, sensor.ID, 42.0, at)
	is.NoErr(err)
	r2, err := c.InsertReading(ctx, sensor.ID, 42.0, at)
	is.NoErr(err)
	is.True(r1.ID != r2.ID)

	var count int64
	c.db.Model(&SensorReading{}).Where("sensor_id = ?", sensor.ID).Count(&count)
	is.Equal(int64(2), count)
}

func TestUpdateDeviceSnapshotBringsDisconnectedDeviceOnline(t *testing.T) {
	is, ctx, c := testSetupCatalog(t)

	sensor, _ := c.FindSensor(ctx, "DEV001", "RAIN01")
	c.db.Model(&Device{}).Where("id = ?", sensor.Device.ID).Update("status", "disconnected")

	seen := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	device, reconnected, err := c.UpdateDeviceSnapshot(ctx, sensor.Device.ID, sensor.Type, 160, seen)
	is.NoErr(err)
	is.True(reconnected)
	is.Equal(types.DeviceStatusOnline, device.Status)
	is.Equal(160.0, device.LatestData["rainfall_24h"])
	is.True(device.LastSeen.Equal(seen))

	_, reconnected, err = c.UpdateDeviceSnapshot(ctx, sensor.Device.ID, sensor.Type, 170, seen.Add(time.Minute))
	is.NoErr(err)
	is.True(!reconnected)
}

func TestUpdateDeviceSnapshotKeepsOneSlotPerSensorType(t *testing.T) {
	is, ctx, c := testSetupCatalog(t)

	rain, _ := c.FindSensor(ctx, "DEV001", "RAIN01")
	tilt, _ := c.FindSensor(ctx, "DEV001", "TILT01")
	seen := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	_, _, err := c.UpdateDeviceSnapshot(ctx, rain.Device.ID, rain.Type, 12.5, seen)
	is.NoErr(err)
	_, _, err = c.UpdateDeviceSnapshot(ctx, tilt.Device.ID, tilt.Type, 1.5, seen)
	is.NoErr(err)
	device, _, err := c.UpdateDeviceSnapshot(ctx, rain.Device.ID, rain.Type, 20, seen)
	is.NoErr(err)

	is.Equal(2, len(device.LatestData))
	is.Equal(20.0, device.LatestData["rainfall_24h"])
	is.Equal(1.5, device.LatestData["tilt"])
}

func TestUpdateDeviceSnapshotNeverMovesLastSeenBackwards(t *testing.T) {
	is, ctx, c := testSetupCatalog(t)

	sensor, _ := c.FindSensor(ctx, "DEV001", "RAIN01")
	seen := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	_, _, err := c.UpdateDeviceSnapshot(ctx, sensor.Device.ID, sensor.Type, 10, seen)
	is.NoErr(err)

	device, _, err := c.UpdateDeviceSnapshot(ctx, sensor.Device.ID, sensor.Type, 11, seen.Add(-time.Hour))
	is.NoErr(err)
	is.True(device.LastSeen.Equal(seen))
	is.Equal(11.0, device.LatestData["rainfall_24h"])
}

func TestUpdateDeviceSnapshotLeavesMaintenanceAlone(t *testing.T) {
	is, ctx, c := testSetupCatalog(t)

	sensor, _ := c.FindSensor(ctx, "DEV001", "RAIN01")
	c.db.Model(&Device{}).Where("id = ?", sensor.Device.ID).Update("status", "maintenance")

	device, reconnected, err := c.UpdateDeviceSnapshot(ctx, sensor.Device.ID, sensor.Type, 10, time.Now().UTC())
	is.NoErr(err)
	is.True(!reconnected)
	is.Equal(types.DeviceStatusMaintenance, device.Status)
}

func TestUpdateDeviceSnapshotReturnsNotFoundForUnknownDevice(t *testing.T) {
	is, ctx, c := testSetupCatalog(t)

	_, _, err := c.UpdateDeviceSnapshot(ctx, 4711, "rainfall_24h", 10, time.Now().UTC())
	is.True(errors.Is(err, ErrNotFound))
}

func TestListDevicesSilentSince(t *testing.T) {
	is, ctx, c := testSetupCatalog(t)

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	stale := now.Add(-10 * time.Minute)
	fresh := now.Add(-1 * time.Minute)

	createDevice(c, "SILENT", types.DeviceStatusOnline, &stale)
	createDevice(c, "FRESH", types.DeviceStatusOnline, &fresh)
	createDevice(c, "SERVICE", types.DeviceStatusMaintenance, &stale)
	createDevice(c, "GONE", types.DeviceStatusDisconnected, &stale)
	createDevice(c, "OFF", types.DeviceStatusOffline, &stale)
	createDevice(c, "NEVER", types.DeviceStatusOnline, nil)

	devices, err := c.ListDevicesSilentSince(ctx, now.Add(-5*time.Minute))
	is.NoErr(err)
	is.Equal(1, len(devices))
	is.Equal("SILENT", devices[0].Code)
}

func TestTransitionDeviceStatusIsConditional(t *testing.T) {
	is, ctx, c := testSetupCatalog(t)

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	stale := now.Add(-10 * time.Minute)
	cutoff := now.Add(-5 * time.Minute)

	id := createDevice(c, "SILENT", types.DeviceStatusOnline, &stale)

	ok, err := c.TransitionDeviceStatus(ctx, id, types.DeviceStatusOnline, types.DeviceStatusDisconnected, cutoff)
	is.NoErr(err)
	is.True(ok)

	ok, err = c.TransitionDeviceStatus(ctx, id, types.DeviceStatusOnline, types.DeviceStatusDisconnected, cutoff)
	is.NoErr(err)
	is.True(!ok)

	device, err := c.GetDevice(ctx, id)
	is.NoErr(err)
	is.Equal(types.DeviceStatusDisconnected, device.Status)
}

func TestTransitionDeviceStatusDoesNotClobberFreshReading(t *testing.T) {
	is, ctx, c := testSetupCatalog(t)

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	stale := now.Add(-10 * time.Minute)
	cutoff := now.Add(-5 * time.Minute)

	id := createDevice(c, "RACE", types.DeviceStatusOnline, &stale)

	silent, err := c.ListDevicesSilentSince(ctx, cutoff)
	is.NoErr(err)
	is.Equal(1, len(silent))

	// a reading lands between the select and the status write
	_, _, err = c.UpdateDeviceSnapshot(ctx, id, "tilt", 1.0, now)
	is.NoErr(err)

	ok, err := c.TransitionDeviceStatus(ctx, id, types.DeviceStatusOnline, types.DeviceStatusDisconnected, cutoff)
	is.NoErr(err)
	is.True(!ok)

	device, _ := c.GetDevice(ctx, id)
	is.Equal(types.DeviceStatusOnline, device.Status)
}

func TestInsertAndGetAlert(t *testing.T) {
	is, ctx, c := testSetupCatalog(t)

	sensor, _ := c.FindSensor(ctx, "DEV001", "RAIN01")
	value := 160.0

	err := c.InsertAlert(ctx, types.Alert{
		ID:             "0b9d7a2e-4a7c-4a7e-9d7e-3f0c1d2e3f40",
		DeviceID:       sensor.Device.ID,
		SensorID:       &sensor.ID,
		Title:          "Rain gauge exceeds maximum threshold",
		Message:        "Rain gauge exceeds maximum threshold",
		Severity:       types.SeverityCritical,
		Category:       types.CategoryThreshold,
		Status:         types.AlertStatusActive,
		TriggeredValue: &value,
		EvidenceData:   json.RawMessage(`{"value":160,"threshold":100}`),
	})
	is.NoErr(err)

	alert, err := c.GetAlert(ctx, "0b9d7a2e-4a7c-4a7e-9d7e-3f0c1d2e3f40")
	is.NoErr(err)
	is.Equal(types.SeverityCritical, alert.Severity)
	is.Equal(types.AlertStatusActive, alert.Status)
	is.Equal(160.0, *alert.TriggeredValue)
	is.Equal("DEV001", alert.DeviceCode)
	is.Equal("Slope station 1", alert.DeviceName)
	is.Equal("RAIN01", alert.SensorCode)
	is.Equal("Rain gauge", alert.SensorName)
	is.Equal("rainfall_24h", alert.SensorType)
	is.Equal("mm", alert.SensorUnit)
	is.Equal("Lao Cai", alert.ProvinceName)
	is.True(alert.ProvinceID != nil)

	evidence := map[string]float64{}
	is.NoErr(json.Unmarshal(alert.EvidenceData, &evidence))
	is.Equal(100.0, evidence["threshold"])
}

func TestGetAlertWithoutSensor(t *testing.T) {
	is, ctx, c := testSetupCatalog(t)

	sensor, _ := c.FindSensor(ctx, "DEV002", "TILT01")

	err := c.InsertAlert(ctx, types.Alert{
		ID:       "5e0f7c43-7a57-4b55-8a8b-7f4cb7a0e1aa",
		DeviceID: sensor.Device.ID,
		Title:    "Device disconnected",
		Severity: types.SeverityWarning,
		Category: types.CategorySystem,
		Status:   types.AlertStatusActive,
	})
	is.NoErr(err)

	alert, err := c.GetAlert(ctx, "5e0f7c43-7a57-4b55-8a8b-7f4cb7a0e1aa")
	is.NoErr(err)
	is.Equal("DEV002", alert.DeviceCode)
	is.Equal("", alert.SensorCode)
	is.True(alert.SensorID == nil)
	is.True(alert.ProvinceID == nil)
}

func TestGetAlertReturnsNotFound(t *testing.T) {
	is, ctx, c := testSetupCatalog(t)

	_, err := c.GetAlert(ctx, "does-not-exist")
	is.True(errors.Is(err, ErrNotFound))
}

func TestListNotificationRecipients(t *testing.T) {
	is, ctx, c := testSetupCatalog(t)

	var laoCai, yenBai Province
	is.NoErr(c.db.Where("code = ?", "LC").First(&laoCai).Error)
	yenBai = Province{Code: "YB", Name: "Yen Bai"}
	is.NoErr(c.db.Create(&yenBai).Error)

	email := "operator@example.org"

	is.NoErr(c.db.Create(&User{Username: "operator", Email: &email, Role: "user", Provinces: []Province{laoCai}}).Error)
	is.NoErr(c.db.Create(&User{Username: "elsewhere", Role: "user", Provinces: []Province{yenBai}}).Error)
	is.NoErr(c.db.Create(&User{Username: "both", Role: "user", Provinces: []Province{laoCai, yenBai}}).Error)
	is.NoErr(c.db.Create(&User{Username: "root", Role: types.RoleSuperAdmin}).Error)

	users, err := c.ListNotificationRecipients(ctx, laoCai.ID)
	is.NoErr(err)
	is.Equal(3, len(users))

	names := map[string]bool{}
	for _, u := range users {
		names[u.Username] = true
	}
	is.True(names["operator"])
	is.True(names["both"])
	is.True(names["root"])
	is.True(!names["elsewhere"])
}

func TestListNotificationRecipientsHonoursCancelledContext(t *testing.T) {
	is, ctx, c := testSetupCatalog(t)

	var laoCai Province
	is.NoErr(c.db.Where("code = ?", "LC").First(&laoCai).Error)
	is.NoErr(c.db.Create(&User{Username: "operator", Role: "user", Provinces: []Province{laoCai}}).Error)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	users, err := c.ListNotificationRecipients(cancelled, laoCai.ID)
	is.True(errors.Is(err, context.Canceled))
	is.Equal(0, len(users))
}

func testSetupCatalog(t *testing.T) (*is.I, context.Context, *Catalog) {
	is := is.New(t)
	ctx := context.Background()

	c, err := NewCatalog(ctx, NewSQLiteConnector(ctx))
	is.NoErr(err)

	err = c.Seed(ctx, bytes.NewBufferString(devicesCsv))
	is.NoErr(err)

	return is, ctx, c
}

func createDevice(c *Catalog, code string, status types.DeviceStatus, lastSeen *time.Time) uint {
	d := Device{
		Code:     code,
		Name:     code,
		Status:   string(status),
		LastSeen: lastSeen,
	}
	c.db.Create(&d)
	return d.ID
}

const devicesCsv string = `province_code;province_name;device_code;device_name;sensor_code;sensor_name;sensor_type;unit;min_threshold;max_threshold
LC;Lao Cai;DEV001;Slope station 1;RAIN01;Rain gauge;rainfall_24h;mm;;100
LC;Lao Cai;DEV001;Slope station 1;TILT01;Tiltmeter;tilt;deg;-5;5
;;DEV002;Slope station 2;TILT01;Tiltmeter;tilt;deg;-5;5`
