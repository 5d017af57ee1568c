package watchdog

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/alerts"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/notifications"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/logging"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/tracing"
	"github.com/diwise/iot-landslide-monitor/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
)

var tracer = otel.Tracer("iot-landslide-monitor/watchdog")

const (
	DefaultInterval = 1 * time.Minute
	DefaultTimeout  = 5 * time.Minute
)

type Config struct {
	Interval time.Duration
	Timeout  time.Duration
}

//go:generate moq -rm -out watchdog_mock.go . Catalog LivePublisher Publisher

type Catalog interface {
	ListDevicesSilentSince(ctx context.Context, cutoff time.Time) ([]types.Device, error)
	TransitionDeviceStatus(ctx context.Context, deviceID uint, expected, next types.DeviceStatus, seenBefore time.Time) (bool, error)
}

type LivePublisher interface {
	Publish(event string, data any) error
}

type Publisher interface {
	PublishOnTopic(ctx context.Context, message messaging.TopicMessage) error
}

type Watchdog interface {
	Start(ctx context.Context)
	Stop()
}

type watchdogImpl struct {
	cfg        Config
	catalog    Catalog
	alerts     alerts.Factory
	dispatcher notifications.Dispatcher
	live       LivePublisher
	publisher  Publisher

	done     chan struct{}
	stopped  chan struct{}
	started  atomic.Bool
	stopOnce sync.Once
	now      func() time.Time
}

func New(cfg Config, c Catalog, f alerts.Factory, d notifications.Dispatcher, live LivePublisher, p Publisher) Watchdog {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &watchdogImpl{
		cfg:        cfg,
		catalog:    c,
		alerts:     f,
		dispatcher: d,
		live:       live,
		publisher:  p,
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (w *watchdogImpl) Start(ctx context.Context) {
	if w.started.CompareAndSwap(false, true) {
		go w.backgroundWorker(ctx)
	}
}

// Stop cancels the sweep timer and waits for a sweep in progress to finish.
// It is safe to call more than once and without a prior Start.
func (w *watchdogImpl) Stop() {
	w.stopOnce.Do(func() { close(w.done) })

	if w.started.Load() {
		<-w.stopped
	}
}

func (w *watchdogImpl) backgroundWorker(ctx context.Context) {
	defer close(w.stopped)

	log := logging.GetFromContext(ctx)
	log.Info().Msgf("liveness sweep every %s with a timeout of %s", w.cfg.Interval, w.cfg.Timeout)

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			w.sweep(ctx, w.now())
		}
	}
}

// sweep marks every device that has been silent for longer than the timeout
// as disconnected and returns the number of devices it transitioned.
func (w *watchdogImpl) sweep(ctx context.Context, now time.Time) (count int) {
	var err error

	ctx, span := tracer.Start(ctx, "liveness-sweep")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	cutoff := now.Add(-w.cfg.Timeout)

	devices, err := w.catalog.ListDevicesSilentSince(ctx, cutoff)
	if err != nil {
		log.Error().Err(err).Msg("could not list silent devices")
		return 0
	}

	for _, d := range devices {
		l := log.With().Uint("device_id", d.ID).Str("device_code", d.Code).Logger()

		ok, err := w.disconnect(logging.NewContextWithLogger(ctx, l), d, now, cutoff)
		if err != nil {
			l.Error().Err(err).Msg("failed to disconnect silent device")
			continue
		}

		if ok {
			count++
		}
	}

	span.SetAttributes(attribute.Int("disconnected", count))

	if len(devices) > 0 {
		log.Info().Msgf("liveness sweep disconnected %d of %d silent devices", count, len(devices))
	}

	return count
}

func (w *watchdogImpl) disconnect(ctx context.Context, device types.Device, now, cutoff time.Time) (bool, error) {
	log := logging.GetFromContext(ctx)

	ok, err := w.catalog.TransitionDeviceStatus(ctx, device.ID, device.Status, types.DeviceStatusDisconnected, cutoff)
	if err != nil {
		return false, err
	}

	if !ok {
		log.Debug().Msg("device changed since it was listed, leaving it as is")
		return false, nil
	}

	device.Status = types.DeviceStatusDisconnected
	evidence := alerts.LivenessEvidence(device, now, w.cfg.Timeout)

	log.Warn().Int("minutes_silent", evidence.MinutesSilent).Msg("device disconnected")

	alert, err := w.alerts.Create(ctx, alerts.Draft{
		Device:   device,
		Title:    fmt.Sprintf("Device %s disconnected", deviceName(device)),
		Message:  fmt.Sprintf("No data received for %d minutes", evidence.MinutesSilent),
		Severity: types.SeverityWarning,
		Category: types.CategorySystem,
		Evidence: evidence,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create disconnect alert")
	} else {
		w.dispatcher.Dispatch(ctx, alert)
	}

	w.statusUpdated(ctx, device, now)

	return true, nil
}

func (w *watchdogImpl) statusUpdated(ctx context.Context, device types.Device, now time.Time) {
	log := logging.GetFromContext(ctx)

	err := w.live.Publish(types.EventDeviceStatusUpdated, types.DeviceStatusUpdate{
		DeviceID:   device.ID,
		DeviceCode: device.Code,
		Status:     device.Status,
		LastSeen:   device.LastSeen,
		UpdatedAt:  now,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to publish device status update")
	}

	err = w.publisher.PublishOnTopic(ctx, &types.DeviceStatusUpdated{
		DeviceID:   device.ID,
		DeviceCode: device.Code,
		Status:     device.Status,
		LastSeen:   device.LastSeen,
		Timestamp:  now,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to publish device status updated")
	}
}

func deviceName(d types.Device) string {
	if d.Name != "" {
		return d.Name
	}
	return d.Code
}
