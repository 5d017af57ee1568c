package alerts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/logging"
	"github.com/diwise/iot-landslide-monitor/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/google/uuid"
)

var ErrNoDevice = errors.New("alert must reference a device")

// Draft holds everything needed to raise an alert. Evidence is stored as JSON
// and must be marshallable.
type Draft struct {
	Device         types.Device
	Sensor         *types.Sensor
	Title          string
	Message        string
	Severity       types.Severity
	Category       types.Category
	TriggeredValue *float64
	Evidence       any
}

//go:generate moq -rm -out alerts_mock.go . Factory

type Factory interface {
	Create(ctx context.Context, draft Draft) (types.Alert, error)
}

//go:generate moq -rm -out catalog_mock.go . Catalog Publisher

type Catalog interface {
	InsertAlert(ctx context.Context, alert types.Alert) error
	GetAlert(ctx context.Context, alertID string) (types.Alert, error)
}

type Publisher interface {
	PublishOnTopic(ctx context.Context, message messaging.TopicMessage) error
}

type factory struct {
	catalog   Catalog
	publisher Publisher
}

func New(c Catalog, p Publisher) Factory {
	return &factory{
		catalog:   c,
		publisher: p,
	}
}

// Create persists a new active alert and returns it joined with the display
// fields of its device, sensor and province. Every call creates a new alert.
func (f *factory) Create(ctx context.Context, draft Draft) (types.Alert, error) {
	if draft.Device.ID == 0 {
		return types.Alert{}, ErrNoDevice
	}

	alert := types.Alert{
		ID:             uuid.NewString(),
		DeviceID:       draft.Device.ID,
		Title:          draft.Title,
		Message:        draft.Message,
		Severity:       draft.Severity,
		Category:       draft.Category,
		Status:         types.AlertStatusActive,
		TriggeredValue: draft.TriggeredValue,
	}

	if draft.Sensor != nil {
		sensorID := draft.Sensor.ID
		alert.SensorID = &sensorID
	}

	if draft.Evidence != nil {
		b, err := json.Marshal(draft.Evidence)
		if err != nil {
			return types.Alert{}, fmt.Errorf("could not marshal evidence: %w", err)
		}
		alert.EvidenceData = b
	}

	if err := f.catalog.InsertAlert(ctx, alert); err != nil {
		return types.Alert{}, fmt.Errorf("could not insert alert: %w", err)
	}

	log := logging.GetFromContext(ctx).With().Str("alert_id", alert.ID).Logger()

	enriched, err := f.catalog.GetAlert(ctx, alert.ID)
	if err != nil {
		return types.Alert{}, fmt.Errorf("could not read back alert %s: %w", alert.ID, err)
	}

	log.Info().Str("severity", string(enriched.Severity)).Str("category", string(enriched.Category)).Msg("alert created")

	err = f.publisher.PublishOnTopic(ctx, &types.AlertCreated{
		Alert:     enriched,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to publish alert created")
	}

	return enriched, nil
}
