package notifications

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/logging"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/tracing"
	"github.com/diwise/iot-landslide-monitor/pkg/types"
)

var tracer = otel.Tracer("iot-landslide-monitor/notifications")

type Config struct {
	EmailDomain      string
	DefaultRecipient string
	SendTimeout      time.Duration
}

//go:generate moq -rm -out dispatcher_mock.go . Dispatcher

// Dispatcher fans a new alert out to live clients, webhook subscribers and
// email recipients.
type Dispatcher interface {
	Dispatch(ctx context.Context, alert types.Alert)
	Wait()
}

//go:generate moq -rm -out collaborators_mock.go . Catalog Mailer LivePublisher EventSender

type Catalog interface {
	ListNotificationRecipients(ctx context.Context, provinceID uint) ([]types.User, error)
}

type Mailer interface {
	Send(ctx context.Context, to []string, subject, html string) error
}

type LivePublisher interface {
	Publish(event string, data any) error
}

type EventSender interface {
	Send(ctx context.Context, alert types.Alert) error
}

type dispatcher struct {
	cfg     Config
	catalog Catalog
	mailer  Mailer
	live    LivePublisher
	sender  EventSender
	wg      sync.WaitGroup
}

func New(cfg Config, c Catalog, m Mailer, live LivePublisher, sender EventSender) Dispatcher {
	if cfg.SendTimeout == 0 {
		cfg.SendTimeout = 30 * time.Second
	}

	return &dispatcher{
		cfg:     cfg,
		catalog: c,
		mailer:  m,
		live:    live,
		sender:  sender,
	}
}

// Dispatch pushes new_alert to live clients right away and hands email and
// webhook delivery to a detached background task. Delivery is attempted once
// and failures are only logged.
func (d *dispatcher) Dispatch(ctx context.Context, alert types.Alert) {
	log := logging.GetFromContext(ctx).With().Str("alert_id", alert.ID).Logger()

	if err := d.live.Publish(types.EventNewAlert, alert); err != nil {
		log.Error().Err(err).Msg("failed to publish new_alert")
	}

	d.wg.Add(1)

	go func() {
		defer d.wg.Done()

		bg, cancel := context.WithTimeout(logging.NewContextWithLogger(context.Background(), log), d.cfg.SendTimeout)
		defer cancel()

		d.deliver(bg, alert)
	}()
}

// Wait blocks until every background delivery started by Dispatch is done.
func (d *dispatcher) Wait() {
	d.wg.Wait()
}

func (d *dispatcher) deliver(ctx context.Context, alert types.Alert) {
	var err error

	ctx, span := tracer.Start(ctx, "deliver-alert")
	span.SetAttributes(attribute.String("alert_id", alert.ID))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	if d.sender != nil {
		if sendErr := d.sender.Send(ctx, alert); sendErr != nil {
			log.Warn().Err(sendErr).Msg("failed to deliver alert to one or more subscribers")
		}
	}

	recipients := d.ResolveRecipients(ctx, alert)
	if len(recipients) == 0 {
		log.Warn().Msg("no email recipients for alert")
		return
	}

	body, err := renderEmail(alert)
	if err != nil {
		log.Error().Err(err).Msg("failed to render alert email")
		return
	}

	err = d.mailer.Send(ctx, recipients, subject(alert), body)
	if err != nil {
		log.Error().Err(err).Int("recipients", len(recipients)).Msg("failed to send alert email")
		return
	}

	log.Info().Int("recipients", len(recipients)).Msg("alert email sent")
}
