package irdecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeflow/irdecode/pkg/irdecode/internal/wave"
)

const rc5SamplerHz = 1_000_000

// buildRc5Frame encodes S1(fixed 1) S2(fixed 1) Toggle Address(5) Command(6)
// as one edge per bit after the first (S1 is consumed without an edge
// check by the decoder's Init state), each edge a single half-bit-period
// pulse whose polarity carries the bit value (falling=1, rising=0).
func buildRc5Frame(toggle bool, address uint8, command uint8) []wave.Event {
	bits := []bool{true, toggle} // S2=1, Toggle
	for i := 4; i >= 0; i-- {
		bits = append(bits, (address>>uint(i))&1 == 1)
	}
	for i := 5; i >= 0; i-- {
		bits = append(bits, (command>>uint(i))&1 == 1)
	}

	events := []wave.Event{{Edge: true, DtUS: 0}} // S1, Init doesn't inspect it
	dt := wave.Ticks(rc5HalfBitUS, rc5SamplerHz)
	for _, one := range bits {
		events = append(events, wave.Event{Edge: !one, DtUS: dt})
	}
	return events
}

func TestRc5_DecodesReferenceFrame(t *testing.T) {
	d, err := NewRc5(rc5SamplerHz)
	require.NoError(t, err)

	events := buildRc5Frame(true, 0x05, 0x10)
	var status Status
	for _, e := range events {
		status = d.Event(e.Edge, e.DtUS)
	}
	require.Equal(t, StatusDone, status)

	cmd, ok := d.Command()
	require.True(t, ok)
	assert.Equal(t, Rc5Command{Address: 0x05, Command: 0x10, Toggle: true}, cmd)
}

func TestRc5_BadWidthIsDataError(t *testing.T) {
	d, err := NewRc5(rc5SamplerHz)
	require.NoError(t, err)

	events := buildRc5Frame(false, 0x05, 0x10)
	// Corrupt the 3rd bit-carrying edge's width well outside both windows.
	events[3].DtUS = wave.Ticks(rc5HalfBitUS*5, rc5SamplerHz)

	var sawErr bool
	for _, e := range events {
		if d.Event(e.Edge, e.DtUS) == StatusError {
			sawErr = true
			break
		}
	}
	assert.True(t, sawErr)
}
