package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/alerts"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/notifications"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/thresholds"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/logging"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/tracing"
	"github.com/diwise/iot-landslide-monitor/pkg/types"
)

var tracer = otel.Tracer("iot-landslide-monitor/telemetry")

// Pipeline takes a single reading through resolve, record, evaluate and,
// on a breach, alert and notify.
type Pipeline struct {
	resolver   *Resolver
	recorder   *Recorder
	alerts     alerts.Factory
	dispatcher notifications.Dispatcher
}

func NewPipeline(r *Resolver, rec *Recorder, f alerts.Factory, d notifications.Dispatcher) *Pipeline {
	return &Pipeline{
		resolver:   r,
		recorder:   rec,
		alerts:     f,
		dispatcher: d,
	}
}

// Process handles one reading. Errors only concern this reading and are
// returned for logging by the caller.
func (p *Pipeline) Process(ctx context.Context, reading types.Reading) (err error) {
	ctx, span := tracer.Start(ctx, "process-reading")
	span.SetAttributes(
		attribute.String("device_code", reading.DeviceCode),
		attribute.String("sensor_code", reading.SensorCode),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx).With().
		Str("device_code", reading.DeviceCode).
		Str("sensor_code", reading.SensorCode).
		Logger()
	ctx = logging.NewContextWithLogger(ctx, log)

	sensor, err := p.resolver.Resolve(ctx, reading.DeviceCode, reading.SensorCode)
	if err != nil {
		return err
	}

	stored, err := p.recorder.Record(ctx, sensor, reading.Value, reading.Timestamp)
	if err != nil {
		return err
	}

	log.Debug().Float64("value", reading.Value).Msg("reading recorded")

	breach, ok := thresholds.Evaluate(sensor, reading.Value)
	if !ok {
		return nil
	}

	value := reading.Value

	alert, err := p.alerts.Create(ctx, alerts.Draft{
		Device:         sensor.Device,
		Sensor:         &sensor,
		Title:          fmt.Sprintf("Threshold breach on %s", deviceName(sensor.Device)),
		Message:        breach.Message,
		Severity:       breach.Severity,
		Category:       breach.Category,
		TriggeredValue: &value,
		Evidence:       alerts.ThresholdEvidence(sensor, value, breach, stored.RecordedAt),
	})
	if err != nil {
		return fmt.Errorf("could not create threshold alert: %w", err)
	}

	p.dispatcher.Dispatch(ctx, alert)

	return nil
}

func deviceName(d types.Device) string {
	if d.Name != "" {
		return d.Name
	}
	return d.Code
}
