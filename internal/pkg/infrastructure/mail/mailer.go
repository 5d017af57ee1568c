package mail

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"gopkg.in/gomail.v2"
)

var ErrNoRecipients = errors.New("no recipients")

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func LoadConfigFromEnv(ctx context.Context, from string) Config {
	log := logging.GetFromContext(ctx)

	port, err := strconv.Atoi(env.GetVariableOrDefault(log, "SMTP_PORT", "587"))
	if err != nil {
		log.Warn().Err(err).Msg("invalid SMTP_PORT, using 587")
		port = 587
	}

	return Config{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     from,
	}
}

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send delivers one html message to all recipients. It gives up waiting when
// ctx is done, but a dial already in progress is not interrupted.
func (m *Mailer) Send(ctx context.Context, to []string, subject, html string) error {
	msg, err := m.compose(to, subject, html)
	if err != nil {
		return err
	}

	result := make(chan error, 1)
	go func() {
		result <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-result:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Mailer) compose(to []string, subject, html string) (*gomail.Message, error) {
	if len(to) == 0 {
		return nil, ErrNoRecipients
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	return msg, nil
}
