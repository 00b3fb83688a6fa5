package irdecode

// necSymbol enumerates the NEC pulse-distance alphabet, matching the
// original decoder's PulseWidth ordering exactly (Sync=0, Repeat=1,
// Zero=2, One=3; anything else fails Classify).
type necSymbol = SymbolID

const (
	necSync necSymbol = iota
	necRepeat
	necZero
	necOne
)

// NecPulses is the pulse-distance timing table for one NEC-family
// variant, in microseconds.
type NecPulses struct {
	HeaderHigh  uint32
	HeaderLow   uint32
	RepeatLow   uint32
	DataHigh    uint32
	DataZeroLow uint32
	DataOneLow  uint32
}

// StandardNecPulses is the timing used by NEC, Nec16, and NecSamsung.
var StandardNecPulses = NecPulses{
	HeaderHigh:  9000,
	HeaderLow:   4500,
	RepeatLow:   2250,
	DataHigh:    560,
	DataZeroLow: 560,
	DataOneLow:  1690,
}

// NecAppleNecPulses is the timing used by the Apple remote variant; it is
// identical to the standard table.
var NecAppleNecPulses = StandardNecPulses

func necTolerances(p NecPulses) []Tolerance {
	return []Tolerance{
		{NominalUS: p.HeaderHigh + p.HeaderLow, PercentTol: 5},
		{NominalUS: p.HeaderHigh + p.RepeatLow, PercentTol: 5},
		{NominalUS: p.DataHigh + p.DataZeroLow, PercentTol: 5},
		{NominalUS: p.DataHigh + p.DataOneLow, PercentTol: 5},
	}
}

// necInternalStatus is the decoder's internal state, richer than the
// externally observable Status (spec's Init/ReceivingAddr/ReceivingCmd/
// Done/RepeatDone/Err).
type necInternalStatus int

const (
	necInit necInternalStatus = iota
	necReceivingAddr
	necReceivingCmd
	necDone
	necRepeatDone
	necErr
)

func (s necInternalStatus) observable() Status {
	switch s {
	case necInit:
		return StatusIdle
	case necDone, necRepeatDone:
		return StatusDone
	case necErr:
		return StatusError
	default:
		return StatusReceiving
	}
}

// NecCommand is a decoded standard NEC frame: 8-bit address with its
// complement in the high byte, 8-bit command with its complement.
type NecCommand struct {
	Address uint8
	Command uint8
	Repeat  bool
}

// Nec16Command is a decoded Nec16 frame: the full 16 bits of the address
// field are significant (no complement check), used by remotes that need
// more than 256 addresses.
type Nec16Command struct {
	Address uint16
	Command uint8
	Repeat  bool
}

// NecSamsungCommand mirrors NecCommand timing-wise but the Samsung variant
// repeats the address byte instead of complementing it.
type NecSamsungCommand struct {
	Address uint8
	Command uint8
	Repeat  bool
}

// NecAppleCommand carries an 8-bit device ID alongside address/command,
// which Apple remotes pack into the normally-complemented address byte.
type NecAppleCommand struct {
	DeviceID uint8
	Address  uint8
	Command  uint8
	Repeat   bool
}

// necState is the shared state machine for every NEC-family variant. The
// variant-specific behavior (command unpacking and integrity checks) is
// supplied by the unpack closure passed at construction, which is exactly
// the "generic over address/command width" parameterization spec.md §4.2
// asks for, expressed as a function value instead of a type parameter
// because the last decoded frame must be cached as raw bits regardless of
// variant.
type necState[Cmd any] struct {
	status           necInternalStatus
	bitbufAddr       uint16
	bitbufCmd        uint16
	addrBitsReceived uint16
	cmdBitsReceived  uint16
	ranges           RangeSet

	// lastAddr/lastCmd retain the most recently *successfully* decoded
	// frame so a repeat code (which carries no data bits of its own) can
	// be resolved. Per the documented policy (spec.md §9 Open Question),
	// this is updated only when a frame reaches Done and unpack succeeds
	// - never on Err, and never on a bare Reset of an aborted frame.
	lastAddr uint16
	lastCmd  uint16
	haveLast bool

	dtSave uint32
	unpack func(addr, cmd uint16, repeat bool) (Cmd, bool)
}

func newNecState[Cmd any](pulses NecPulses, samplerHz uint32, unpack func(addr, cmd uint16, repeat bool) (Cmd, bool)) (*necState[Cmd], error) {
	ranges, err := NewRangeSet(necTolerances(pulses), samplerHz)
	if err != nil {
		return nil, err
	}
	return &necState[Cmd]{ranges: ranges, unpack: unpack}, nil
}

func (s *necState[Cmd]) Reset() {
	s.status = necInit
	s.bitbufAddr = 0
	s.bitbufCmd = 0
	s.addrBitsReceived = 0
	s.cmdBitsReceived = 0
	s.dtSave = 0
}

// Event implements the transition table from spec.md §4.2. Falling edges
// only save dt; rising edges classify on dtSave+dt (the canonical trick
// that halves the event rate the state machine must handle).
func (s *necState[Cmd]) Event(edge bool, dt uint32) Status {
	if !edge {
		s.dtSave = dt
		return s.status.observable()
	}

	sym, ok := s.ranges.Classify(s.dtSave + dt)
	s.dtSave = 0
	if !ok {
		sym = necSymbol(-1)
	}

	switch s.status {
	case necInit:
		switch sym {
		case necSync:
			s.status = necReceivingAddr
			s.bitbufAddr = 0
			s.bitbufCmd = 0
			s.addrBitsReceived = 0
		case necRepeat:
			s.status = necRepeatDone
		default:
			s.status = necInit
		}

	case necReceivingAddr:
		switch sym {
		case necZero, necOne:
			if sym == necOne {
				s.bitbufAddr |= 1 << s.addrBit()
			}
			s.advanceAddrBit()
		default:
			s.status = necErr
		}

	case necReceivingCmd:
		switch sym {
		case necZero, necOne:
			if sym == necOne {
				s.bitbufCmd |= 1 << s.cmdBit()
			}
			s.advanceCmdBit()
		default:
			s.status = necErr
		}

	case necDone, necRepeatDone, necErr:
		// absorb - consumer owns the reset

	default:
		s.status = necErr
	}

	return s.status.observable()
}

// addrBit/cmdBit track how many bits of each field have been received so
// far, folded into the bitbuf width (16 bits covers every NEC variant;
// 8-bit fields simply never use the high byte).
func (s *necState[Cmd]) addrBit() uint16 {
	return s.addrBitsReceived
}

func (s *necState[Cmd]) cmdBit() uint16 {
	return s.cmdBitsReceived
}

func (s *necState[Cmd]) advanceAddrBit() {
	s.addrBitsReceived++
	if s.addrBitsReceived == 16 {
		s.status = necReceivingCmd
		s.cmdBitsReceived = 0
	}
}

func (s *necState[Cmd]) advanceCmdBit() {
	s.cmdBitsReceived++
	if s.cmdBitsReceived == 16 {
		s.status = necDone
	}
}

func (s *necState[Cmd]) Command() (Cmd, bool) {
	var zero Cmd
	switch s.status {
	case necDone:
		cmd, ok := s.unpack(s.bitbufAddr, s.bitbufCmd, false)
		if ok {
			s.lastAddr, s.lastCmd, s.haveLast = s.bitbufAddr, s.bitbufCmd, true
		}
		return cmd, ok
	case necRepeatDone:
		if !s.haveLast {
			return zero, false
		}
		return s.unpack(s.lastAddr, s.lastCmd, true)
	default:
		return zero, false
	}
}
