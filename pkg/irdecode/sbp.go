package irdecode

// SbpPulses is the Samsung Blu-ray Player timing table: same pulse-distance
// shape as NEC (header mark+space, 560-class data bits), but the 32 data
// bits are a flat 16-bit address and 16-bit command with no complement
// check - Samsung Blu-ray remotes don't carry NEC's redundancy byte.
var SbpPulses = NecPulses{
	HeaderHigh:  4500,
	HeaderLow:   4500,
	RepeatLow:   2250,
	DataHigh:    500,
	DataZeroLow: 500,
	DataOneLow:  1500,
}

// SbpCommand is a decoded Samsung-Blu-ray-Player frame.
type SbpCommand struct {
	Address uint16
	Command uint16
	Repeat  bool
}

// Sbp is the SBP decoder. It reuses the NEC-family state machine (same
// pulse-distance framing and dt-sum classification) parameterized with
// SBP's own timing table and a complement-free unpack.
type Sbp struct {
	*necState[SbpCommand]
}

// NewSbp constructs an SBP decoder for the given sampler frequency.
func NewSbp(samplerHz uint32) (*Sbp, error) {
	s, err := newNecState(SbpPulses, samplerHz, unpackSbp)
	if err != nil {
		return nil, err
	}
	return &Sbp{s}, nil
}

func unpackSbp(addr, cmd uint16, repeat bool) (SbpCommand, bool) {
	return SbpCommand{Address: addr, Command: cmd, Repeat: repeat}, true
}
