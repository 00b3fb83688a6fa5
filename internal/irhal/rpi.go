package irhal

import (
	"fmt"
	"sync"

	"github.com/stianeikeland/go-rpio/v4"
	"periph.io/x/host/v3"
)

// RpioReader reads one input pin through go-rpio's direct /dev/mem register
// access, grounded on the teacher's internal/hal/rpi.go RaspberryPiHAL. Only
// the digital-read path is carried over - this decoder never writes a pin,
// so the PWM/I2C/SPI surface RaspberryPiHAL also exposes has no caller here.
type RpioReader struct {
	mu  sync.Mutex
	pin rpio.Pin
}

// NewRpioReader opens the rpio register map (calling periph.io/x/host's
// platform init first, exactly as the teacher does, so the board-detection
// path it depends on runs once per process) and configures pin as input.
func NewRpioReader(pin int) (*RpioReader, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("irhal: failed to initialize periph.io: %w", err)
	}
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("irhal: failed to open gpio register map: %w", err)
	}

	p := rpio.Pin(pin)
	p.Input()

	return &RpioReader{pin: p}, nil
}

func (r *RpioReader) Read() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pin.Read() == rpio.High, nil
}

func (r *RpioReader) Close() error {
	return rpio.Close()
}
