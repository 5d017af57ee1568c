package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/logging"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/tracing"
	"github.com/diwise/iot-landslide-monitor/pkg/types"
)

var ErrNotFound = errors.New("not found")

type LandslideMonitorClient interface {
	GetDevice(ctx context.Context, deviceID uint) (types.Device, error)
	GetAlert(ctx context.Context, alertID string) (types.Alert, error)
}

type monitorClient struct {
	url        string
	httpClient http.Client
}

var tracer = otel.Tracer("landslide-monitor-client")

func New(monitorUrl string) LandslideMonitorClient {
	return &monitorClient{
		url: monitorUrl,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *monitorClient) GetDevice(ctx context.Context, deviceID uint) (types.Device, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-device")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	result := struct {
		Data types.Device `json:"data"`
	}{}

	err = c.get(ctx, "/api/v0/devices/"+strconv.FormatUint(uint64(deviceID), 10), &result)
	if err != nil {
		return types.Device{}, err
	}

	return result.Data, nil
}

func (c *monitorClient) GetAlert(ctx context.Context, alertID string) (types.Alert, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-alert")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	result := struct {
		Data types.Alert `json:"data"`
	}{}

	err = c.get(ctx, "/api/v0/alerts/"+url.PathEscape(alertID), &result)
	if err != nil {
		return types.Alert{}, err
	}

	return result.Data, nil
}

func (c *monitorClient) get(ctx context.Context, path string, result any) error {
	log := logging.GetFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to retrieve %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		log.Error().Msgf("request failed with status code %d", resp.StatusCode)
		return fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	err = json.Unmarshal(respBody, result)
	if err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}
