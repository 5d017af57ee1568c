package mqtt

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
)

type Config struct {
	Broker   string
	ClientID string
	Username string
	Password string
	Topic    string
	QoS      byte
}

func LoadConfigFromEnv(ctx context.Context, defaultTopic string) Config {
	log := logging.GetFromContext(ctx)

	hostname, _ := os.Hostname()

	return Config{
		Broker:   env.GetVariableOrDefault(log, "MQTT_BROKER", "tcp://localhost:1883"),
		ClientID: env.GetVariableOrDefault(log, "MQTT_CLIENT_ID", "iot-landslide-monitor-"+hostname),
		Username: os.Getenv("MQTT_USERNAME"),
		Password: os.Getenv("MQTT_PASSWORD"),
		Topic:    env.GetVariableOrDefault(log, "MQTT_TOPIC", defaultTopic),
		QoS:      1,
	}
}

// Subscriber owns the broker connection and feeds every payload received on
// the configured topic into a buffered channel. The broker client reconnects
// on its own and the subscription is renewed on every connect.
//
// Delivery is ordered, so the broker client hands over one message at a time.
// While the buffer is full the handler blocks, which holds back the broker
// client (keepalives included) until the consumer catches up or Close is
// called. Consumers must keep draining Messages for the connection to stay
// healthy.
type Subscriber struct {
	client   paho.Client
	topic    string
	qos      byte
	messages chan []byte
	done     chan struct{}
	once     sync.Once
	log      zerolog.Logger
}

func NewSubscriber(ctx context.Context, cfg Config, bufferSize int) (*Subscriber, error) {
	log := logging.GetFromContext(ctx).With().Str("broker", cfg.Broker).Str("topic", cfg.Topic).Logger()

	s := &Subscriber{
		topic:    cfg.Topic,
		qos:      cfg.QoS,
		messages: make(chan []byte, bufferSize),
		done:     make(chan struct{}),
		log:      log,
	}

	opts := paho.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(5 * time.Second)
	opts.SetMaxReconnectInterval(time.Minute)
	opts.SetCleanSession(true)
	opts.SetOrderMatters(true)

	opts.SetOnConnectHandler(s.onConnect)
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		log.Warn().Err(err).Msg("connection to broker lost")
	})
	opts.SetReconnectingHandler(func(_ paho.Client, _ *paho.ClientOptions) {
		log.Info().Msg("reconnecting to broker")
	})

	s.client = paho.NewClient(opts)

	token := s.client.Connect()
	if !token.WaitTimeout(30*time.Second) {
		s.client.Disconnect(0)
		return nil, fmt.Errorf("timed out connecting to mqtt broker %s", cfg.Broker)
	}
	if token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to mqtt broker: %w", token.Error())
	}

	return s, nil
}

func (s *Subscriber) onConnect(client paho.Client) {
	s.log.Info().Msg("connected to broker, subscribing")

	token := client.Subscribe(s.topic, s.qos, s.receive)
	if token.Wait() && token.Error() != nil {
		s.log.Error().Err(token.Error()).Msg("failed to subscribe to topic")
	}
}

// receive waits for room in the buffer rather than dropping the payload.
func (s *Subscriber) receive(_ paho.Client, msg paho.Message) {
	select {
	case s.messages <- msg.Payload():
	case <-s.done:
	}
}

// Messages returns the channel payloads are delivered on, in the order the
// broker delivered them.
func (s *Subscriber) Messages() <-chan []byte {
	return s.messages
}

// Close unsubscribes and disconnects from the broker. Payloads already
// buffered stay readable from Messages.
func (s *Subscriber) Close() {
	s.once.Do(func() {
		close(s.done)

		if s.client.IsConnected() {
			s.client.Unsubscribe(s.topic).WaitTimeout(2 * time.Second)
		}

		s.client.Disconnect(250)
		s.log.Info().Msg("disconnected from broker")
	})
}
