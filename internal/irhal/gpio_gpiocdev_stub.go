//go:build !linux
// +build !linux

package irhal

import "fmt"

// GpiocdevReader is a stub for non-Linux platforms, where the GPIO
// character device interface does not exist.
type GpiocdevReader struct{}

func NewGpiocdevReader(chipName string, pin int) (*GpiocdevReader, error) {
	return nil, fmt.Errorf("irhal: gpiocdev is only supported on linux")
}

func (r *GpiocdevReader) Read() (bool, error) {
	return false, fmt.Errorf("irhal: gpio not supported on this platform")
}

func (r *GpiocdevReader) Close() error { return nil }
