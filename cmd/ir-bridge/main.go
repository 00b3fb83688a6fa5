// Command ir-bridge is the always-on host daemon: it samples one GPIO pin,
// decodes it against a configured protocol pair, and fans the decoded
// commands out to MQTT/websocket/SQLite/Redis/InfluxDB while serving the
// decode history and live stream over HTTP. Construction order is grounded
// on the teacher's cmd/edgeflow/main.go: config, then logger, then storage,
// then the node/transport layer, then the HTTP server, in that order.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/edgeflow/irdecode/internal/irapi"
	"github.com/edgeflow/irdecode/internal/irbridge"
	"github.com/edgeflow/irdecode/internal/irconfig"
	"github.com/edgeflow/irdecode/internal/irlog"
	"github.com/edgeflow/irdecode/internal/ironode"
	"github.com/edgeflow/irdecode/internal/node"
	"github.com/edgeflow/irdecode/pkg/irdecode"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: ./configs/config.yaml)")
	issueToken := flag.String("issue-token", "", "print a signed bearer token for the given client id and exit")
	flag.Parse()

	cfg, err := irconfig.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ir-bridge: failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := irlog.Init(irlog.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		LogDir: cfg.Logger.LogDir,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "ir-bridge: failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer irlog.Sync()

	log := irlog.Get()

	jwtCfg := irapi.JWTConfig{SecretKey: cfg.Server.JWTSecret}
	if *issueToken != "" {
		if jwtCfg.SecretKey == "" {
			fmt.Fprintln(os.Stderr, "ir-bridge: -issue-token requires server.jwt_secret to be set")
			os.Exit(1)
		}
		token, err := irapi.GenerateToken(*issueToken, jwtCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ir-bridge: failed to issue token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	bridge, stop, err := buildBridge(cfg, log)
	if err != nil {
		log.Fatal("ir-bridge: failed to build bridge", zap.Error(err))
	}
	defer stop()

	exec, err := buildReceiver(cfg, bridge, log)
	if err != nil {
		log.Fatal("ir-bridge: failed to build receiver", zap.Error(err))
	}
	defer func() {
		if err := exec.Cleanup(); err != nil {
			log.Warn("ir-bridge: receiver cleanup error", zap.Error(err))
		}
	}()

	server := irapi.NewServer(bridge.History, bridge.Hub, irapi.Config{JWT: jwtCfg})
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	go func() {
		log.Info("ir-bridge: server starting", zap.String("addr", addr))
		if err := server.Listen(addr); err != nil {
			log.Error("ir-bridge: server stopped", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go pump(ctx, exec, bridge, log)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Info("ir-bridge: shutting down")
	cancel()
	if err := server.Shutdown(); err != nil {
		log.Warn("ir-bridge: server shutdown error", zap.Error(err))
	}
}

// buildBridge constructs every configured transport. Each is optional: an
// empty SQLite path or Redis address, or MQTT left disabled, leaves the
// corresponding Bridge field nil, and Bridge.Publish skips nil transports.
// irconfig's default SQLite path is non-empty, so history is on by default.
func buildBridge(cfg *irconfig.Config, log *zap.Logger) (*irbridge.Bridge, func(), error) {
	hub := irbridge.NewHub()
	go hub.Run()

	b := &irbridge.Bridge{
		Hub:          hub,
		Stats:        irbridge.NewStats(),
		RepeatWindow: time.Duration(cfg.Storage.RepeatTTLMS) * time.Millisecond,
		Log:          log,
	}

	if cfg.Storage.SQLitePath != "" {
		history, err := irbridge.NewHistory(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("ir-bridge: sqlite history: %w", err)
		}
		b.History = history
	}

	if cfg.Storage.RedisAddr != "" {
		repeats, err := irbridge.NewRepeatCache(irbridge.RepeatCacheConfig{
			Addr: cfg.Storage.RedisAddr,
			DB:   cfg.Storage.RedisDB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("ir-bridge: redis repeat cache: %w", err)
		}
		b.Repeats = repeats
	}

	if cfg.MQTT.Enabled {
		b.MQTT = irbridge.NewMQTTPublisher(irbridge.MQTTConfig{
			Broker:   cfg.MQTT.Broker,
			ClientID: cfg.MQTT.ClientID,
			Topic:    cfg.MQTT.Topic,
			QoS:      cfg.MQTT.QoS,
			Retain:   cfg.MQTT.Retain,
		})
	}

	flusher := irbridge.NewStatsFlusher(b.Stats, irbridge.InfluxConfig{
		Addr:   cfg.Influx.Addr,
		Token:  cfg.Influx.Token,
		Org:    cfg.Influx.Org,
		Bucket: cfg.Influx.Bucket,
	}, log)
	if err := flusher.Start(); err != nil {
		return nil, nil, fmt.Errorf("ir-bridge: stats flusher: %w", err)
	}

	stop := func() {
		flusher.Stop()
		if err := b.Close(); err != nil {
			log.Warn("ir-bridge: bridge close error", zap.Error(err))
		}
	}

	return b, stop, nil
}

func buildReceiver(cfg *irconfig.Config, bridge *irbridge.Bridge, log *zap.Logger) (*ironode.IRInExecutor, error) {
	protocols := cfg.Receiver.Protocols
	if len(protocols) < 2 {
		protocols = []string{"nec", "rc5"}
	}

	executor := ironode.NewIRInExecutor()
	irExec, ok := executor.(*ironode.IRInExecutor)
	if !ok {
		return nil, fmt.Errorf("ir-bridge: unexpected executor type %T", executor)
	}

	config := map[string]interface{}{
		"pin_bcm":    cfg.Receiver.PinBCM,
		"sampler_hz": float64(cfg.Receiver.SamplerHz),
		"protocols":  []interface{}{protocols[0], protocols[1]},
		"backend":    cfg.Receiver.Backend,
	}

	if err := irExec.Init(config); err != nil {
		return nil, err
	}

	log.Info("ir-bridge: receiver started",
		zap.Int("pin_bcm", cfg.Receiver.PinBCM),
		zap.Uint32("sampler_hz", cfg.Receiver.SamplerHz),
		zap.Strings("protocols", protocols),
		zap.String("backend", cfg.Receiver.Backend),
	)

	return irExec, nil
}

// pump drains the executor's decoded-command channel and routes each into
// the bridge, the host-process analogue of the teacher's flow engine
// pulling an input node's Execute in a loop.
func pump(ctx context.Context, exec *ironode.IRInExecutor, bridge *irbridge.Bridge, log *zap.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg, err := exec.Execute(ctx, node.Message{})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Warn("ir-bridge: receiver execute error", zap.Error(err))
			continue
		}

		env, ok := envelopeFromMessage(msg)
		if !ok {
			continue
		}

		bridge.Publish(ctx, env)
	}
}

// envelopeFromMessage extracts the decoded protocol/command pair ironode's
// emit populates and converts it into the transport envelope irbridge
// publishes, an empty Execute poll (the push-source "nothing decoded
// this tick" result) reports ok=false.
func envelopeFromMessage(msg node.Message) (irbridge.Envelope, bool) {
	if msg.Payload == nil {
		return irbridge.Envelope{}, false
	}

	pinBCM, _ := msg.Payload["pin_bcm"].(int)
	cmd, ok := msg.Payload["command"].(irdecode.CmdUnion)
	if !ok {
		return irbridge.Envelope{}, false
	}

	return irbridge.FromCmdUnion(pinBCM, cmd, time.Now())
}
