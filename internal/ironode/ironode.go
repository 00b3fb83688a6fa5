// Package ironode adapts pkg/irdecode into the teacher's flow-engine node
// model, grounded on internal/node/node.go's Executor interface and
// pkg/modules/gpio/module.go's GPIO node registration, and on
// pkg/nodes/network/watch.go's push-source Execute pattern: an input node
// owns a background producer and Execute drains its channel with a short
// timeout rather than computing a result synchronously.
package ironode

import (
	"context"
	"fmt"
	"time"

	"github.com/edgeflow/irdecode/internal/irhal"
	"github.com/edgeflow/irdecode/internal/node"
	"github.com/edgeflow/irdecode/pkg/irdecode"
)

// IRInExecutor implements node.Executor, decoding one pin's IR waveform
// into node.Message values - the "ir-in" input node counterpart to the
// teacher's "gpio-in" node. The arity (how many protocols run
// concurrently against the same pin) is fixed at 2 for this adapter: the
// multi-receiver's arity is compile-time-picked per spec.md's Non-goal
// against data-driven registration, so a wider fan-out needs a new
// Executor type rather than a config knob.
type IRInExecutor struct {
	pinBCM    int
	samplerHz uint32
	protocols [2]string

	reader  irhal.PinReader
	sampler *irhal.PinSampler
	recv    *irdecode.MultiReceiver2

	msgChan chan node.Message
	cancel  context.CancelFunc

	haveTick bool
	lastTick uint32
}

// NewIRInExecutor constructs an uninitialized executor; Init supplies the
// pin/protocol configuration exactly as the teacher's node factories do.
func NewIRInExecutor() node.Executor {
	return &IRInExecutor{}
}

// Init reads "pin_bcm" (int), "sampler_hz" (number, default 1_000_000) and
// "protocols" (a 2-element string list, e.g. []interface{}{"nec", "rc5"})
// from config, then starts sampling.
func (e *IRInExecutor) Init(config map[string]interface{}) error {
	e.pinBCM = 17
	if v, ok := config["pin_bcm"].(int); ok {
		e.pinBCM = v
	} else if v, ok := config["pin_bcm"].(float64); ok {
		e.pinBCM = int(v)
	}

	e.samplerHz = 1_000_000
	if v, ok := config["sampler_hz"].(float64); ok {
		e.samplerHz = uint32(v)
	}

	e.protocols = [2]string{"nec", "rc5"}
	if list, ok := config["protocols"].([]interface{}); ok && len(list) >= 2 {
		for i := 0; i < 2; i++ {
			if s, ok := list[i].(string); ok {
				e.protocols[i] = s
			}
		}
	}

	reader, err := e.openReader(config)
	if err != nil {
		return fmt.Errorf("ironode: failed to open pin reader: %w", err)
	}
	e.reader = reader

	recv, err := BuildMultiReceiver2(e.protocols, e.samplerHz)
	if err != nil {
		return fmt.Errorf("ironode: %w", err)
	}
	e.recv = recv

	e.msgChan = make(chan node.Message, 100)

	_, cancel := context.WithCancel(context.Background())
	e.cancel = cancel

	e.sampler = irhal.NewPinSampler(reader, samplePeriod(e.samplerHz), e.onTick)
	go e.sampler.Run()

	return nil
}

func (e *IRInExecutor) openReader(config map[string]interface{}) (irhal.PinReader, error) {
	backend, _ := config["backend"].(string)

	switch backend {
	case "mock":
		levels, _ := config["mock_levels"].([]bool)
		return irhal.NewMockReader(levels), nil
	case "rpio":
		return irhal.NewRpioReader(e.pinBCM)
	default:
		return irhal.NewGpiocdevReader(irhal.DetectChipName(), e.pinBCM)
	}
}

func samplePeriod(samplerHz uint32) time.Duration {
	if samplerHz == 0 {
		samplerHz = 1_000_000
	}
	return time.Second / time.Duration(samplerHz)
}

// onTick converts the sampler's (tick, level) report into the (dt, edge)
// pair pkg/irdecode decoders expect: dt is the number of sampler ticks
// since the previous level change, the same tick-delta derivation
// irdecode.PinReceiver.Event performs for a single decoder.
func (e *IRInExecutor) onTick(tick uint32, level bool) {
	if !e.haveTick {
		e.haveTick = true
		e.lastTick = tick
		return
	}

	dt := tick - e.lastTick
	e.lastTick = tick

	results := e.recv.Event(dt, level)
	for i, cmd := range results {
		if cmd == nil {
			continue
		}
		e.emit(e.protocols[i], *cmd)
	}
}

func (e *IRInExecutor) emit(protocol string, cmd irdecode.CmdUnion) {
	em := node.NewEnhancedMessage(map[string]interface{}{
		"protocol": protocol,
		"command":  cmd,
		"pin_bcm":  e.pinBCM,
	})
	em.Topic = "ir-command"

	select {
	case e.msgChan <- em.ToLegacyMessage():
	default:
		// downstream is backed up; drop rather than block the sampler
	}
}

// Execute drains one queued decoded command, or returns an empty message
// after a short timeout - the same pull-with-timeout shape as
// network.WatchNode.Execute.
func (e *IRInExecutor) Execute(ctx context.Context, msg node.Message) (node.Message, error) {
	select {
	case out := <-e.msgChan:
		return out, nil
	case <-ctx.Done():
		return node.Message{}, ctx.Err()
	case <-time.After(100 * time.Millisecond):
		return node.Message{}, nil
	}
}

// Cleanup stops the sampler and closes the pin reader.
func (e *IRInExecutor) Cleanup() error {
	if e.cancel != nil {
		e.cancel()
	}
	if e.sampler != nil {
		e.sampler.Stop()
	}
	if e.reader != nil {
		return e.reader.Close()
	}
	return nil
}
