package irbridge

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTTConfig configures the command-publish client, narrowed from the
// teacher's MQTTOutConfig to the fields this decoder actually needs:
// one broker, one topic prefix, no per-message topic/LWT overrides.
type MQTTConfig struct {
	Broker   string
	ClientID string
	Topic    string // prefix; published to "<Topic>/<protocol>"
	QoS      byte
	Retain   bool
}

// MQTTPublisher publishes decoded-command envelopes to an MQTT broker,
// connecting lazily on first publish exactly as the teacher's
// MQTTOutExecutor.connect does.
type MQTTPublisher struct {
	cfg       MQTTConfig
	client    mqtt.Client
	mu        sync.RWMutex
	connected bool
}

// NewMQTTPublisher constructs a publisher. No network I/O happens until
// the first Publish call.
func NewMQTTPublisher(cfg MQTTConfig) *MQTTPublisher {
	if cfg.ClientID == "" {
		cfg.ClientID = fmt.Sprintf("irdecode_%d", time.Now().UnixNano())
	}
	if cfg.QoS > 2 {
		cfg.QoS = 2
	}
	return &MQTTPublisher{cfg: cfg}
}

// Publish marshals env to JSON and publishes it to "<Topic>/<protocol>".
func (p *MQTTPublisher) Publish(env Envelope) error {
	if !p.isConnected() {
		if err := p.connect(); err != nil {
			return fmt.Errorf("irbridge: mqtt connect failed: %w", err)
		}
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("irbridge: failed to marshal envelope: %w", err)
	}

	topic := fmt.Sprintf("%s/%s", p.cfg.Topic, env.Protocol)
	token := p.client.Publish(topic, p.cfg.QoS, p.cfg.Retain, payload)
	token.Wait()

	if token.Error() != nil {
		return fmt.Errorf("irbridge: publish failed: %w", token.Error())
	}

	return nil
}

func (p *MQTTPublisher) connect() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.connected {
		return nil
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(p.cfg.Broker)
	opts.SetClientID(p.cfg.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetConnectTimeout(30 * time.Second)

	opts.SetOnConnectHandler(func(mqtt.Client) {
		p.mu.Lock()
		p.connected = true
		p.mu.Unlock()
	})
	opts.SetConnectionLostHandler(func(mqtt.Client, error) {
		p.mu.Lock()
		p.connected = false
		p.mu.Unlock()
	})

	p.client = mqtt.NewClient(opts)
	token := p.client.Connect()
	token.Wait()

	if token.Error() != nil {
		return token.Error()
	}
	return nil
}

func (p *MQTTPublisher) isConnected() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.connected && p.client != nil && p.client.IsConnected()
}

// Close disconnects the MQTT client if connected.
func (p *MQTTPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
		p.connected = false
	}
	return nil
}
