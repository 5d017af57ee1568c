package watchdog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/alerts"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/notifications"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/iot-landslide-monitor/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
)

var now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func TestSilentDeviceIsDisconnectedAndAlerted(t *testing.T) {
	is, ctx, c, f, d, live, pub := testSetup(t)

	lastSeen := now.Add(-10 * time.Minute)
	c.ListDevicesSilentSinceFunc = func(ctx context.Context, cutoff time.Time) ([]types.Device, error) {
		return []types.Device{{ID: 1, Code: "DEV001", Name: "Slope station 1", Status: types.DeviceStatusOnline, LastSeen: &lastSeen, Province: "Lao Cai"}}, nil
	}

	w := New(Config{Timeout: 5 * time.Minute}, c, f, d, live, pub).(*watchdogImpl)

	is.Equal(1, w.sweep(ctx, now))

	is.Equal(now.Add(-5*time.Minute), c.ListDevicesSilentSinceCalls()[0].Cutoff)

	transition := c.TransitionDeviceStatusCalls()[0]
	is.Equal(uint(1), transition.DeviceID)
	is.Equal(types.DeviceStatusOnline, transition.Expected)
	is.Equal(types.DeviceStatusDisconnected, transition.Next)
	is.Equal(now.Add(-5*time.Minute), transition.SeenBefore)

	is.Equal(1, len(f.CreateCalls()))
	draft := f.CreateCalls()[0].Draft
	is.Equal(types.CategorySystem, draft.Category)
	is.Equal(types.SeverityWarning, draft.Severity)
	is.Equal(types.DeviceStatusDisconnected, draft.Device.Status)
	is.True(draft.Sensor == nil)

	evidence := draft.Evidence.(alerts.SilenceEvidence)
	is.Equal(10, evidence.MinutesSilent)
	is.Equal(5, evidence.TimeoutMinutes)
	is.Equal("Lao Cai", evidence.Province)

	is.Equal(1, len(d.DispatchCalls()))
	is.Equal("alert-1", d.DispatchCalls()[0].Alert.ID)

	is.Equal(1, len(live.PublishCalls()))
	is.Equal(types.EventDeviceStatusUpdated, live.PublishCalls()[0].Event)
	update := live.PublishCalls()[0].Data.(types.DeviceStatusUpdate)
	is.Equal(types.DeviceStatusDisconnected, update.Status)
	is.Equal(now, update.UpdatedAt)

	is.Equal(1, len(pub.PublishOnTopicCalls()))
	is.Equal("device.statusUpdated", pub.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestDeviceThatReportedDuringSweepIsLeftOnline(t *testing.T) {
	is, ctx, c, f, d, live, pub := testSetup(t)

	lastSeen := now.Add(-10 * time.Minute)
	c.ListDevicesSilentSinceFunc = func(ctx context.Context, cutoff time.Time) ([]types.Device, error) {
		return []types.Device{{ID: 1, Code: "DEV001", Status: types.DeviceStatusOnline, LastSeen: &lastSeen}}, nil
	}
	c.TransitionDeviceStatusFunc = func(ctx context.Context, deviceID uint, expected, next types.DeviceStatus, seenBefore time.Time) (bool, error) {
		return false, nil
	}

	w := New(Config{}, c, f, d, live, pub).(*watchdogImpl)

	is.Equal(0, w.sweep(ctx, now))
	is.Equal(0, len(f.CreateCalls()))
	is.Equal(0, len(d.DispatchCalls()))
	is.Equal(0, len(live.PublishCalls()))
	is.Equal(0, len(pub.PublishOnTopicCalls()))
}

func TestFailureOnOneDeviceDoesNotAbortSweep(t *testing.T) {
	is, ctx, c, f, d, live, pub := testSetup(t)

	lastSeen := now.Add(-10 * time.Minute)
	c.ListDevicesSilentSinceFunc = func(ctx context.Context, cutoff time.Time) ([]types.Device, error) {
		return []types.Device{
			{ID: 1, Code: "DEV001", Status: types.DeviceStatusOnline, LastSeen: &lastSeen},
			{ID: 2, Code: "DEV002", Status: types.DeviceStatusOnline, LastSeen: &lastSeen},
			{ID: 3, Code: "DEV003", Status: types.DeviceStatusOnline, LastSeen: &lastSeen},
		}, nil
	}
	c.TransitionDeviceStatusFunc = func(ctx context.Context, deviceID uint, expected, next types.DeviceStatus, seenBefore time.Time) (bool, error) {
		if deviceID == 2 {
			return false, errors.New("database is locked")
		}
		return true, nil
	}

	w := New(Config{}, c, f, d, live, pub).(*watchdogImpl)

	is.Equal(2, w.sweep(ctx, now))
	is.Equal(3, len(c.TransitionDeviceStatusCalls()))
	is.Equal(2, len(f.CreateCalls()))
	is.Equal(uint(3), f.CreateCalls()[1].Draft.Device.ID)
}

func TestFailedAlertStillReportsStatusChange(t *testing.T) {
	is, ctx, c, f, d, live, pub := testSetup(t)

	lastSeen := now.Add(-10 * time.Minute)
	c.ListDevicesSilentSinceFunc = func(ctx context.Context, cutoff time.Time) ([]types.Device, error) {
		return []types.Device{{ID: 1, Code: "DEV001", Status: types.DeviceStatusOnline, LastSeen: &lastSeen}}, nil
	}
	f.CreateFunc = func(ctx context.Context, draft alerts.Draft) (types.Alert, error) {
		return types.Alert{}, errors.New("insert failed")
	}

	w := New(Config{}, c, f, d, live, pub).(*watchdogImpl)

	is.Equal(1, w.sweep(ctx, now))
	is.Equal(0, len(d.DispatchCalls()))
	is.Equal(1, len(live.PublishCalls()))
	is.Equal(1, len(pub.PublishOnTopicCalls()))
}

func TestSweepAgainstCatalog(t *testing.T) {
	is, ctx, _, f, d, live, pub := testSetup(t)

	catalog, err := database.NewCatalog(ctx, database.NewSQLiteConnector(ctx))
	is.NoErr(err)
	is.NoErr(catalog.Seed(ctx, bytes.NewBufferString(devicesCsv)))

	rain, err := catalog.FindSensor(ctx, "DEV001", "RAIN01")
	is.NoErr(err)
	tilt, err := catalog.FindSensor(ctx, "DEV002", "TILT01")
	is.NoErr(err)
	hum, err := catalog.FindSensor(ctx, "DEV003", "HUM01")
	is.NoErr(err)

	_, _, err = catalog.UpdateDeviceSnapshot(ctx, rain.Device.ID, rain.Type, 12, now.Add(-10*time.Minute))
	is.NoErr(err)
	_, _, err = catalog.UpdateDeviceSnapshot(ctx, tilt.Device.ID, tilt.Type, 1, now.Add(-2*time.Minute))
	is.NoErr(err)
	_, _, err = catalog.UpdateDeviceSnapshot(ctx, hum.Device.ID, hum.Type, 80, now.Add(-30*time.Minute))
	is.NoErr(err)
	_, err = catalog.TransitionDeviceStatus(ctx, hum.Device.ID, types.DeviceStatusOnline, types.DeviceStatusMaintenance, now)
	is.NoErr(err)

	w := New(Config{Timeout: 5 * time.Minute}, catalog, f, d, live, pub).(*watchdogImpl)

	is.Equal(1, w.sweep(ctx, now))

	silent, err := catalog.GetDevice(ctx, rain.Device.ID)
	is.NoErr(err)
	is.Equal(types.DeviceStatusDisconnected, silent.Status)

	fresh, err := catalog.GetDevice(ctx, tilt.Device.ID)
	is.NoErr(err)
	is.Equal(types.DeviceStatusOnline, fresh.Status)

	maintained, err := catalog.GetDevice(ctx, hum.Device.ID)
	is.NoErr(err)
	is.Equal(types.DeviceStatusMaintenance, maintained.Status)

	// a second sweep leaves the already disconnected device alone
	is.Equal(0, w.sweep(ctx, now.Add(time.Minute)))
	is.Equal(1, len(f.CreateCalls()))
}

func TestStartAndStop(t *testing.T) {
	is, ctx, c, f, d, live, pub := testSetup(t)

	swept := make(chan struct{}, 10)
	c.ListDevicesSilentSinceFunc = func(ctx context.Context, cutoff time.Time) ([]types.Device, error) {
		swept <- struct{}{}
		return nil, nil
	}

	w := New(Config{Interval: 10 * time.Millisecond}, c, f, d, live, pub)
	w.Start(ctx)

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("no sweep was run")
	}

	w.Stop()

	for len(swept) > 0 {
		<-swept
	}
	time.Sleep(50 * time.Millisecond)
	is.Equal(0, len(swept))
}

func TestStopWithoutStartReturns(t *testing.T) {
	is, _, c, f, d, live, pub := testSetup(t)

	w := New(Config{}, c, f, d, live, pub)

	stopped := make(chan struct{})
	go func() {
		w.Stop()
		w.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		is.Fail() // Stop blocked without a running sweep
	}

	is.Equal(0, len(c.ListDevicesSilentSinceCalls()))
}

func testSetup(t *testing.T) (*is.I, context.Context, *CatalogMock, *alerts.FactoryMock, *notifications.DispatcherMock, *LivePublisherMock, *PublisherMock) {
	is := is.New(t)
	ctx := context.Background()

	c := &CatalogMock{
		ListDevicesSilentSinceFunc: func(ctx context.Context, cutoff time.Time) ([]types.Device, error) {
			return nil, nil
		},
		TransitionDeviceStatusFunc: func(ctx context.Context, deviceID uint, expected, next types.DeviceStatus, seenBefore time.Time) (bool, error) {
			return true, nil
		},
	}

	f := &alerts.FactoryMock{
		CreateFunc: func(ctx context.Context, draft alerts.Draft) (types.Alert, error) {
			evidence, _ := json.Marshal(draft.Evidence)
			return types.Alert{
				ID:           "alert-1",
				DeviceID:     draft.Device.ID,
				Title:        draft.Title,
				Severity:     draft.Severity,
				Category:     draft.Category,
				Status:       types.AlertStatusActive,
				EvidenceData: evidence,
			}, nil
		},
	}

	d := &notifications.DispatcherMock{
		DispatchFunc: func(ctx context.Context, alert types.Alert) {},
		WaitFunc:     func() {},
	}

	live := &LivePublisherMock{
		PublishFunc: func(event string, data any) error {
			return nil
		},
	}

	pub := &PublisherMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	return is, ctx, c, f, d, live, pub
}

const devicesCsv string = `province_code;province_name;device_code;device_name;sensor_code;sensor_name;sensor_type;unit;min_threshold;max_threshold
LC;Lao Cai;DEV001;Slope station 1;RAIN01;Rain gauge;rainfall_24h;mm;;100
LC;Lao Cai;DEV002;Slope station 2;TILT01;Tiltmeter;tilt;deg;-5;5
YB;Yen Bai;DEV003;Slope station 3;HUM01;Soil moisture;soil_moisture;%;;95`
