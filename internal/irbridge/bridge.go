package irbridge

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Bridge wires a decoded-command stream out to every configured transport:
// MQTT publish, websocket dashboard fan-out, Redis repeat dedup, SQLite
// history, and cron-driven stats. Each transport is optional; a nil field
// is simply skipped, so cmd/ir-bridge can build a Bridge with only the
// transports irconfig enables.
type Bridge struct {
	MQTT    *MQTTPublisher
	Hub     *Hub
	Repeats *RepeatCache
	History *History
	Stats   *Stats

	RepeatWindow time.Duration
	Log          *zap.Logger
}

// Publish routes one decoded-command envelope through every configured
// transport. A repeat frame that the dedup cache judges redundant is
// recorded in Stats but not otherwise published, matching spec.md's
// RepeatDone collapse behavior at the transport layer.
func (b *Bridge) Publish(ctx context.Context, env Envelope) {
	if b.Stats != nil {
		b.Stats.RecordDecoded(env.Protocol)
	}

	publish := true
	if b.Repeats != nil {
		window := b.RepeatWindow
		if window == 0 {
			window = 250 * time.Millisecond
		}

		ok, err := b.Repeats.ShouldPublish(ctx, env, window)
		if err != nil && b.Log != nil {
			b.Log.Warn("irbridge: repeat cache error", zap.Error(err))
		}
		publish = ok
	}

	if !publish {
		return
	}

	if b.Hub != nil {
		b.Hub.Broadcast(env)
	}

	if b.MQTT != nil {
		if err := b.MQTT.Publish(env); err != nil && b.Log != nil {
			b.Log.Warn("irbridge: mqtt publish failed", zap.Error(err))
		}
	}

	if b.History != nil {
		if err := b.History.Append(env); err != nil && b.Log != nil {
			b.Log.Warn("irbridge: history append failed", zap.Error(err))
		}
	}
}

// RecordError tells Stats a decode attempt on protocol ended in
// StatusError, so the periodic flush's error counters stay meaningful even
// though rejected frames never reach Publish.
func (b *Bridge) RecordError(protocol string) {
	if b.Stats != nil {
		b.Stats.RecordError(protocol)
	}
}

// Close releases every transport resource the Bridge owns.
func (b *Bridge) Close() error {
	if b.MQTT != nil {
		b.MQTT.Close()
	}
	if b.Repeats != nil {
		b.Repeats.Close()
	}
	if b.History != nil {
		b.History.Close()
	}
	return nil
}
