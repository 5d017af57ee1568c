package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/router"
	"github.com/diwise/iot-landslide-monitor/pkg/types"
)

func TestHealthEndpointReturns204(t *testing.T) {
	is, server, _ := testSetup(t)
	defer server.Close()

	resp, _ := testRequest(is, server, "/health")
	is.Equal(http.StatusNoContent, resp.StatusCode)
}

func TestEventsAreServedFromTheEventsHandler(t *testing.T) {
	is, server, _ := testSetup(t)
	defer server.Close()

	resp, body := testRequest(is, server, "/api/v0/events")
	is.Equal(http.StatusOK, resp.StatusCode)
	is.Equal("text/event-stream", resp.Header.Get("Content-Type"))
	is.Equal("event: ping\n\n", body)
}

func TestGetDevice(t *testing.T) {
	is, server, c := testSetup(t)
	defer server.Close()

	resp, body := testRequest(is, server, "/api/v0/devices/1")
	is.Equal(http.StatusOK, resp.StatusCode)
	is.Equal(uint(1), c.GetDeviceCalls()[0].DeviceID)

	var response struct {
		Data types.Device `json:"data"`
	}
	is.NoErr(json.Unmarshal([]byte(body), &response))
	is.Equal("DEV001", response.Data.Code)
	is.Equal(types.DeviceStatusDisconnected, response.Data.Status)
}

func TestGetUnknownDeviceReturns404(t *testing.T) {
	is, server, _ := testSetup(t)
	defer server.Close()

	resp, _ := testRequest(is, server, "/api/v0/devices/2")
	is.Equal(http.StatusNotFound, resp.StatusCode)
}

func TestGetDeviceWithBadIDReturns400(t *testing.T) {
	is, server, c := testSetup(t)
	defer server.Close()

	resp, _ := testRequest(is, server, "/api/v0/devices/DEV001")
	is.Equal(http.StatusBadRequest, resp.StatusCode)
	is.Equal(0, len(c.GetDeviceCalls()))
}

func TestGetAlert(t *testing.T) {
	is, server, _ := testSetup(t)
	defer server.Close()

	resp, body := testRequest(is, server, "/api/v0/alerts/a1")
	is.Equal(http.StatusOK, resp.StatusCode)

	var response struct {
		Data types.Alert `json:"data"`
	}
	is.NoErr(json.Unmarshal([]byte(body), &response))
	is.Equal(types.SeverityCritical, response.Data.Severity)

	resp, _ = testRequest(is, server, "/api/v0/alerts/a2")
	is.Equal(http.StatusNotFound, resp.StatusCode)
}

func testSetup(t *testing.T) (*is.I, *httptest.Server, *CatalogMock) {
	is := is.New(t)
	ctx := context.Background()

	c := &CatalogMock{
		GetDeviceFunc: func(ctx context.Context, deviceID uint) (types.Device, error) {
			if deviceID != 1 {
				return types.Device{}, database.ErrNotFound
			}
			return types.Device{ID: 1, Code: "DEV001", Status: types.DeviceStatusDisconnected}, nil
		},
		GetAlertFunc: func(ctx context.Context, alertID string) (types.Alert, error) {
			if alertID != "a1" {
				return types.Alert{}, database.ErrNotFound
			}
			return types.Alert{ID: "a1", DeviceID: 1, Severity: types.SeverityCritical}, nil
		},
	}

	events := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte("event: ping\n\n"))
	})

	r := RegisterHandlers(ctx, router.New("test"), events, c)

	return is, httptest.NewServer(r), c
}

func testRequest(is *is.I, ts *httptest.Server, path string) (*http.Response, string) {
	req, _ := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	return resp, string(respBody)
}
