package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/logging"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/tracing"
	"github.com/diwise/iot-landslide-monitor/pkg/types"
)

var tracer = otel.Tracer("iot-landslide-monitor/api")

//go:generate moq -rm -out api_mock.go . Catalog

type Catalog interface {
	GetDevice(ctx context.Context, deviceID uint) (types.Device, error)
	GetAlert(ctx context.Context, alertID string) (types.Alert, error)
}

func RegisterHandlers(ctx context.Context, router *chi.Mux, events http.Handler, c Catalog) *chi.Mux {
	log := logging.GetFromContext(ctx)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v0", func(r chi.Router) {
		r.Get("/events", events.ServeHTTP)
		r.Get("/devices/{deviceID}", getDeviceHandler(log, c))
		r.Get("/alerts/{alertID}", getAlertHandler(log, c))
	})

	return router
}

func getDeviceHandler(log zerolog.Logger, c Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		deviceID, err := strconv.ParseUint(chi.URLParam(r, "deviceID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		requestLogger := log.With().Uint64("device_id", deviceID).Logger()

		device, err := c.GetDevice(ctx, uint(deviceID))
		if errors.Is(err, database.ErrNotFound) {
			requestLogger.Debug().Msg("device not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error().Err(err).Msg("could not fetch device")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(ApiResponse{Data: device}.Byte())
	}
}

func getAlertHandler(log zerolog.Logger, c Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		alertID := chi.URLParam(r, "alertID")
		requestLogger := log.With().Str("alert_id", alertID).Logger()

		alert, err := c.GetAlert(ctx, alertID)
		if errors.Is(err, database.ErrNotFound) {
			requestLogger.Debug().Msg("alert not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error().Err(err).Msg("could not fetch alert")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(ApiResponse{Data: alert}.Byte())
	}
}
