package irhal

import (
	"sync"
	"time"
)

// PinSampler polls a PinReader on a fixed period and reports observed level
// changes as (tick, level) pairs, using the same time.Ticker poll-loop
// shape as the teacher's internal/hal/gpio_monitor.go GPIOMonitor - but
// sampling one IR receiver line instead of broadcasting every active GPIO
// pin's state. Callers derive (dt, edge) from consecutive reports
// themselves (pkg/irdecode.PinReceiver does this for a single decoder;
// internal/ironode does it directly for a MultiReceiverN).
type PinSampler struct {
	mu       sync.Mutex
	reader   PinReader
	period   time.Duration
	onChange func(tick uint32, level bool)
	stopChan chan struct{}
	tick     uint32
	have     bool
	last     bool
}

// NewPinSampler constructs a sampler that polls reader every period and
// calls onChange whenever the observed level differs from the previous
// poll.
func NewPinSampler(reader PinReader, period time.Duration, onChange func(tick uint32, level bool)) *PinSampler {
	return &PinSampler{
		reader:   reader,
		period:   period,
		onChange: onChange,
		stopChan: make(chan struct{}),
	}
}

// Run blocks, polling until Stop is called. Intended to run in its own
// goroutine.
func (s *PinSampler) Run() {
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.poll()
		}
	}
}

// Stop ends the polling loop started by Run.
func (s *PinSampler) Stop() {
	close(s.stopChan)
}

func (s *PinSampler) poll() {
	level, err := s.reader.Read()
	if err != nil {
		return
	}

	s.mu.Lock()
	s.tick++
	tick := s.tick
	fire := s.have && level != s.last
	s.have = true
	s.last = level
	s.mu.Unlock()

	if fire {
		s.onChange(tick, level)
	}
}
