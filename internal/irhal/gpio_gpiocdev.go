//go:build linux
// +build linux

package irhal

import (
	"fmt"
	"sync"

	"github.com/warthog618/go-gpiocdev"
)

// GpiocdevReader reads one input line through the Linux GPIO character
// device, watching both edges the way the teacher's GpiocdevGPIO does, and
// caches the most recent level so Read never blocks on hardware I/O -
// PinSampler polls it on a fixed tick instead of waiting on an
// interrupt.
type GpiocdevReader struct {
	mu    sync.RWMutex
	line  *gpiocdev.Line
	level bool
}

// NewGpiocdevReader opens chipName (e.g. "gpiochip4" on a Pi 5's RP1
// southbridge, "gpiochip0" on earlier boards) and watches pin for both
// edges.
func NewGpiocdevReader(chipName string, pin int) (*GpiocdevReader, error) {
	r := &GpiocdevReader{}

	line, err := gpiocdev.RequestLine(chipName, pin,
		gpiocdev.AsInput,
		gpiocdev.WithBothEdges,
		gpiocdev.WithEventHandler(r.onEvent),
	)
	if err != nil {
		return nil, fmt.Errorf("irhal: failed to request pin %d on %s: %w", pin, chipName, err)
	}
	r.line = line

	initial, err := line.Value()
	if err != nil {
		line.Close()
		return nil, fmt.Errorf("irhal: failed to read initial value of pin %d: %w", pin, err)
	}
	r.level = initial != 0

	return r, nil
}

func (r *GpiocdevReader) onEvent(evt gpiocdev.LineEvent) {
	r.mu.Lock()
	r.level = evt.Type == gpiocdev.LineEventRisingEdge
	r.mu.Unlock()
}

func (r *GpiocdevReader) Read() (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.level, nil
}

func (r *GpiocdevReader) Close() error {
	if r.line == nil {
		return nil
	}
	return r.line.Close()
}
