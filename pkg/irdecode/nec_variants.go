package irdecode

// Nec is the standard NEC decoder: 8-bit address + its one's-complement,
// 8-bit command + its one's-complement, packed LSB-first as
// addrLow, addrHigh(=~addrLow), cmdLow, cmdHigh(=~cmdLow).
type Nec struct {
	*necState[NecCommand]
}

// NewNec constructs a standard NEC decoder for the given sampler frequency.
func NewNec(samplerHz uint32) (*Nec, error) {
	s, err := newNecState(StandardNecPulses, samplerHz, unpackNec)
	if err != nil {
		return nil, err
	}
	return &Nec{s}, nil
}

func unpackNec(addr, cmd uint16, repeat bool) (NecCommand, bool) {
	addrLow := uint8(addr)
	addrHigh := uint8(addr >> 8)
	cmdLow := uint8(cmd)
	cmdHigh := uint8(cmd >> 8)

	if addrHigh != ^addrLow || cmdHigh != ^cmdLow {
		return NecCommand{}, false
	}
	return NecCommand{Address: addrLow, Command: cmdLow, Repeat: repeat}, true
}

// Nec16 is the extended-address NEC variant: all 16 address bits are
// significant, with no complement check on the address field (only the
// command field is validated).
type Nec16 struct {
	*necState[Nec16Command]
}

// NewNec16 constructs a 16-bit-address NEC decoder.
func NewNec16(samplerHz uint32) (*Nec16, error) {
	s, err := newNecState(StandardNecPulses, samplerHz, unpackNec16)
	if err != nil {
		return nil, err
	}
	return &Nec16{s}, nil
}

func unpackNec16(addr, cmd uint16, repeat bool) (Nec16Command, bool) {
	cmdLow := uint8(cmd)
	cmdHigh := uint8(cmd >> 8)
	if cmdHigh != ^cmdLow {
		return Nec16Command{}, false
	}
	return Nec16Command{Address: addr, Command: cmdLow, Repeat: repeat}, true
}

// NecSamsung is the Samsung NEC variant: the address byte is transmitted
// twice (no complement) instead of address+complement.
type NecSamsung struct {
	*necState[NecSamsungCommand]
}

// NewNecSamsung constructs a Samsung NEC-family decoder.
func NewNecSamsung(samplerHz uint32) (*NecSamsung, error) {
	s, err := newNecState(StandardNecPulses, samplerHz, unpackNecSamsung)
	if err != nil {
		return nil, err
	}
	return &NecSamsung{s}, nil
}

func unpackNecSamsung(addr, cmd uint16, repeat bool) (NecSamsungCommand, bool) {
	addrLow := uint8(addr)
	addrHigh := uint8(addr >> 8)
	cmdLow := uint8(cmd)
	cmdHigh := uint8(cmd >> 8)
	if addrHigh != addrLow || cmdHigh != ^cmdLow {
		return NecSamsungCommand{}, false
	}
	return NecSamsungCommand{Address: addrLow, Command: cmdLow, Repeat: repeat}, true
}

// NecApple is the Apple remote NEC variant: the address field packs an
// 8-bit device ID in its high byte alongside the 8-bit address in the low
// byte, with no complement check (Apple remotes use that byte for a
// pairing nibble instead).
type NecApple struct {
	*necState[NecAppleCommand]
}

// NewNecApple constructs an Apple-remote NEC-family decoder.
func NewNecApple(samplerHz uint32) (*NecApple, error) {
	s, err := newNecState(NecAppleNecPulses, samplerHz, unpackNecApple)
	if err != nil {
		return nil, err
	}
	return &NecApple{s}, nil
}

func unpackNecApple(addr, cmd uint16, repeat bool) (NecAppleCommand, bool) {
	cmdLow := uint8(cmd)
	cmdHigh := uint8(cmd >> 8)
	if cmdHigh != ^cmdLow {
		return NecAppleCommand{}, false
	}
	return NecAppleCommand{
		DeviceID: uint8(addr >> 8),
		Address:  uint8(addr),
		Command:  cmdLow,
		Repeat:   repeat,
	}, true
}
