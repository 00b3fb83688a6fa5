// Package irhal abstracts the single GPIO input line an IR receiver module
// drives, so pkg/irdecode never has to import a GPIO library directly. It
// is a deliberately narrow slice of the teacher's HAL surface
// (internal/hal): this decoder only ever reads one pin's level, it never
// writes, PWMs, or talks I2C/SPI, so those provider interfaces are not
// carried over.
package irhal

import (
	"fmt"
	"sync"
)

// PinReader is the minimal pin-level abstraction pkg/irdecode.PinReceiver
// needs: a single digital read that can fail.
type PinReader interface {
	Read() (bool, error)
	Close() error
}

// BoardModel mirrors the teacher's board-detection enum (internal/hal's
// BoardInfo.Model), kept so irconfig and logging can report which GPIO
// backend was auto-selected.
type BoardModel int

const (
	BoardUnknown BoardModel = iota
	BoardRaspberryPi4
	BoardRaspberryPi5
	BoardGeneric
)

func (m BoardModel) String() string {
	switch m {
	case BoardRaspberryPi4:
		return "raspberry-pi-4"
	case BoardRaspberryPi5:
		return "raspberry-pi-5"
	case BoardGeneric:
		return "generic-linux"
	default:
		return "unknown"
	}
}

var (
	globalReader PinReader
	mu           sync.RWMutex
)

// SetGlobalReader installs the process-wide PinReader, mirroring the
// teacher's SetGlobalHAL/GetGlobalHAL singleton pattern.
func SetGlobalReader(r PinReader) {
	mu.Lock()
	defer mu.Unlock()
	globalReader = r
}

// GetGlobalReader returns the process-wide PinReader, or an error if none
// has been installed yet.
func GetGlobalReader() (PinReader, error) {
	mu.RLock()
	defer mu.RUnlock()
	if globalReader == nil {
		return nil, fmt.Errorf("irhal: pin reader not initialized")
	}
	return globalReader, nil
}
