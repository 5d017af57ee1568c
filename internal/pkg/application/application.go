package application

import (
	"context"
	"sync"

	"github.com/diwise/messaging-golang/pkg/messaging"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/alerts"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/events"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/ingest"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/notifications"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/telemetry"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/watchdog"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/logging"
)

// Catalog is everything the pipeline and the liveness monitor need from the
// relational store.
type Catalog interface {
	telemetry.SensorLookup
	telemetry.ReadingStore
	alerts.Catalog
	notifications.Catalog
	watchdog.Catalog
}

type LivePublisher interface {
	Publish(event string, data any) error
}

type Publisher interface {
	PublishOnTopic(ctx context.Context, message messaging.TopicMessage) error
}

//go:generate moq -rm -out application_mock.go . App

type App interface {
	Start(ctx context.Context, messages <-chan []byte)
	Stop()
}

type app struct {
	ingestor   *ingest.Ingestor
	watchdog   watchdog.Watchdog
	dispatcher notifications.Dispatcher

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New wires the telemetry pipeline and the liveness monitor. The sensor cache
// is optional and may be nil.
func New(cfg *Config, c Catalog, cache telemetry.SensorCache, m notifications.Mailer, sender events.EventSender, live LivePublisher, bus Publisher) App {
	dispatcher := notifications.New(notifications.Config{
		EmailDomain:      cfg.Notifications.EmailDomain,
		DefaultRecipient: cfg.Notifications.DefaultRecipient,
		SendTimeout:      cfg.Notifications.SendTimeout,
	}, c, m, live, sender)

	factory := alerts.New(c, bus)

	pipeline := telemetry.NewPipeline(
		telemetry.NewResolver(c, cache),
		telemetry.NewRecorder(c, live, bus),
		factory,
		dispatcher,
	)

	return &app{
		ingestor: ingest.New(pipeline, cfg.Ingest.Workers, cfg.Ingest.QueueSize),
		watchdog: watchdog.New(watchdog.Config{
			Interval: cfg.Watchdog.Interval,
			Timeout:  cfg.Watchdog.Timeout,
		}, c, factory, dispatcher, live, bus),
		dispatcher: dispatcher,
	}
}

// Start consumes messages until Stop is called or messages is closed, and
// starts the liveness sweep.
func (a *app) Start(ctx context.Context, messages <-chan []byte) {
	ctx, a.cancel = context.WithCancel(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		if err := a.ingestor.Run(ctx, messages); err != nil {
			log := logging.GetFromContext(ctx)
			log.Error().Err(err).Msg("ingest stopped")
		}
	}()

	a.watchdog.Start(ctx)
}

// Stop stops the sweep, drains queued readings and waits for notifications
// that are still being delivered.
func (a *app) Stop() {
	a.watchdog.Stop()

	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()

	a.dispatcher.Wait()
}
