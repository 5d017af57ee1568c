package webevents

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	gosse "github.com/alexandrevicenzi/go-sse"
	"github.com/rs/zerolog"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/logging"
)

// WebEvents pushes named json events to every connected live client.
type WebEvents struct {
	s *gosse.Server
}

func New(ctx context.Context) *WebEvents {
	logger := logging.GetFromContext(ctx).With().Str("component", "webevents").Logger()

	return &WebEvents{
		s: gosse.NewServer(&gosse.Options{
			Headers: map[string]string{
				"Cache-Control": "no-cache",
			},
			// every client listens on the same stream regardless of path
			ChannelNameFunc: func(*http.Request) string {
				return "events"
			},
			Logger: log.New(debugWriter{logger}, "", 0),
		}),
	}
}

func (we *WebEvents) Handler() http.Handler {
	return we.s
}

func (we *WebEvents) Shutdown() {
	we.s.Shutdown()
}

// Publish broadcasts data, encoded as json, as an event with the given name.
func (we *WebEvents) Publish(event string, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}

	message := gosse.NewMessage("", string(b), event)
	we.s.SendMessage("", message)

	return nil
}

type debugWriter struct {
	log zerolog.Logger
}

func (w debugWriter) Write(p []byte) (int, error) {
	w.log.Debug().Msg(strings.TrimSpace(string(p)))
	return len(p), nil
}
