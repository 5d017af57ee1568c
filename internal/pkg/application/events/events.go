package events

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	cehttp "github.com/cloudevents/sdk-go/v2/protocol/http"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sys/unix"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/logging"
	"github.com/diwise/iot-landslide-monitor/pkg/types"
)

const (
	EventSource           string = "github.com/diwise/iot-landslide-monitor"
	EventTypeAlertCreated string = "landslide.alert.created"
)

type SubscriberConfig struct {
	Endpoint string `yaml:"endpoint"`
}

//go:generate moq -rm -out events_mock.go . EventSender

type EventSender interface {
	Send(ctx context.Context, alert types.Alert) error
}

type eventSender struct {
	client      cloudevents.Client
	subscribers []SubscriberConfig
}

func New(subscribers []SubscriberConfig) (EventSender, error) {
	c, err := cloudevents.NewClientHTTP(
		cehttp.WithRoundTripper(otelhttp.NewTransport(http.DefaultTransport)),
	)
	if err != nil {
		return nil, err
	}

	return &eventSender{
		client:      c,
		subscribers: subscribers,
	}, nil
}

// Send posts the alert as a cloud event to every configured subscriber. A
// failing subscriber does not stop delivery to the others.
func (e *eventSender) Send(ctx context.Context, alert types.Alert) error {
	if len(e.subscribers) == 0 {
		return nil
	}

	event := cloudevents.NewEvent()
	event.SetID(alert.ID)
	event.SetTime(alert.CreatedAt)
	event.SetSource(EventSource)
	event.SetType(EventTypeAlertCreated)
	event.SetSubject(alert.DeviceCode)

	err := event.SetData(cloudevents.ApplicationJSON, alert)
	if err != nil {
		return err
	}

	logger := logging.GetFromContext(ctx)

	var errs []error

	for _, s := range e.subscribers {
		ctxWithTarget := cloudevents.ContextWithTarget(ctx, s.Endpoint)

		result := e.client.Send(ctxWithTarget, event)
		if cloudevents.IsUndelivered(result) || errors.Is(result, unix.ECONNREFUSED) {
			logger.Error().Err(result).Msgf("failed to send event to %s", s.Endpoint)
			errs = append(errs, fmt.Errorf("%s: %w", s.Endpoint, result))
		} else if cloudevents.IsNACK(result) {
			logger.Warn().Err(result).Msgf("event was not accepted by %s", s.Endpoint)
		}
	}

	return errors.Join(errs...)
}
