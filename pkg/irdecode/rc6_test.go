package irdecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeflow/irdecode/pkg/irdecode/internal/wave"
)

const rc6SamplerHz = 1_000_000

// buildRc6Frame encodes the leader (a mark+space pair classified like NEC's
// sync symbol) followed by mode(3) + toggle(1, double-width) + address(8) +
// command(8), one edge per bit, polarity carrying the value.
func buildRc6Frame(mode uint8, toggle bool, address uint8, command uint8) []wave.Event {
	events := []wave.Event{
		{Edge: false, DtUS: wave.Ticks(rc6LeaderHighUS, rc6SamplerHz)},
		{Edge: true, DtUS: wave.Ticks(rc6LeaderLowUS, rc6SamplerHz)},
	}

	var bits []bool
	for i := 2; i >= 0; i-- {
		bits = append(bits, (mode>>uint(i))&1 == 1)
	}
	bits = append(bits, toggle)
	for i := 7; i >= 0; i-- {
		bits = append(bits, (address>>uint(i))&1 == 1)
	}
	for i := 7; i >= 0; i-- {
		bits = append(bits, (command>>uint(i))&1 == 1)
	}

	for i, one := range bits {
		dt := uint32(rc6HalfBitUS)
		if i == rc6ToggleIndex-1 { // the toggle bit's transition is double-width
			dt = 2 * rc6HalfBitUS
		}
		events = append(events, wave.Event{Edge: !one, DtUS: wave.Ticks(dt, rc6SamplerHz)})
	}
	return events
}

func TestRc6_DecodesReferenceFrame(t *testing.T) {
	d, err := NewRc6(rc6SamplerHz)
	require.NoError(t, err)

	events := buildRc6Frame(0, true, 0x12, 0xA5)
	var status Status
	for _, e := range events {
		status = d.Event(e.Edge, e.DtUS)
	}
	require.Equal(t, StatusDone, status)

	cmd, ok := d.Command()
	require.True(t, ok)
	assert.Equal(t, Rc6Command{Mode: 0, Toggle: true, Address: 0x12, Command: 0xA5}, cmd)
}

func TestRc6_LeaderMismatchStaysIdle(t *testing.T) {
	d, err := NewRc6(rc6SamplerHz)
	require.NoError(t, err)

	status := d.Event(false, wave.Ticks(rc6LeaderHighUS, rc6SamplerHz))
	assert.Equal(t, StatusIdle, status)
	// Space far too short to sum into the leader window.
	status = d.Event(true, wave.Ticks(100, rc6SamplerHz))
	assert.Equal(t, StatusIdle, status)
}
