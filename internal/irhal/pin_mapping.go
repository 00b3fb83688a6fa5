package irhal

// validBCMPins is the set of BCM GPIO numbers broken out on the standard
// 40-pin header, queried through ValidBCMPin and PinName. Reader backends
// do not consult it before opening a pin. Narrowed from the teacher's
// internal/hal/pin_mapping.go RaspberryPiPinMap, which also carried PWM/I2C/
// SPI/UART capability metadata this decoder - a single GPIO input line -
// never needs.
var validBCMPins = map[int]string{
	2: "GPIO2 (SDA1)", 3: "GPIO3 (SCL1)", 4: "GPIO4 (GPCLK0)",
	14: "GPIO14 (TXD0)", 15: "GPIO15 (RXD0)", 17: "GPIO17",
	18: "GPIO18 (PWM0)", 27: "GPIO27", 22: "GPIO22", 23: "GPIO23",
	24: "GPIO24", 10: "GPIO10 (MOSI)", 9: "GPIO9 (MISO)", 25: "GPIO25",
	11: "GPIO11 (SCLK)", 8: "GPIO8 (CE0)", 7: "GPIO7 (CE1)", 5: "GPIO5",
	6: "GPIO6", 12: "GPIO12 (PWM0)", 13: "GPIO13 (PWM1)", 19: "GPIO19 (PWM1)",
	16: "GPIO16", 26: "GPIO26", 20: "GPIO20", 21: "GPIO21",
}

// ValidBCMPin reports whether bcm names a broken-out GPIO on the standard
// 40-pin header.
func ValidBCMPin(bcm int) bool {
	_, ok := validBCMPins[bcm]
	return ok
}

// PinName returns the header silkscreen label for a BCM pin number, or ""
// if bcm is not broken out.
func PinName(bcm int) string {
	return validBCMPins[bcm]
}
