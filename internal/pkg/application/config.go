package application

import (
	"io"
	"time"

	yaml "gopkg.in/yaml.v2"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/application/events"
)

type IngestConfig struct {
	Topic     string `yaml:"topic"`
	Workers   int    `yaml:"workers"`
	QueueSize int    `yaml:"queueSize"`
}

type WatchdogConfig struct {
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
}

type NotificationConfig struct {
	EmailDomain      string                    `yaml:"emailDomain"`
	DefaultRecipient string                    `yaml:"defaultRecipient"`
	From             string                    `yaml:"from"`
	SendTimeout      time.Duration             `yaml:"sendTimeout"`
	Subscribers      []events.SubscriberConfig `yaml:"subscribers"`
}

type CacheConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

type Config struct {
	Ingest        IngestConfig       `yaml:"ingest"`
	Watchdog      WatchdogConfig     `yaml:"watchdog"`
	Notifications NotificationConfig `yaml:"notifications"`
	Cache         CacheConfig        `yaml:"cache"`
}

func DefaultConfig() Config {
	return Config{
		Ingest: IngestConfig{
			Topic:     "landslide/telemetry",
			Workers:   8,
			QueueSize: 100,
		},
		Watchdog: WatchdogConfig{
			Interval: 1 * time.Minute,
			Timeout:  5 * time.Minute,
		},
		Notifications: NotificationConfig{
			EmailDomain:      "landslide.local",
			DefaultRecipient: "alerts@landslide.local",
			From:             "noreply@landslide.local",
			SendTimeout:      30 * time.Second,
		},
		Cache: CacheConfig{
			TTL: 5 * time.Minute,
		},
	}
}

// LoadConfiguration reads a yaml configuration on top of the defaults. Keys
// that are left out keep their default values.
func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
