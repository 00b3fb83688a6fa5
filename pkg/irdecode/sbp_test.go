package irdecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeflow/irdecode/pkg/irdecode/internal/wave"
)

const sbpSamplerHz = 1_000_000

func sbpFrameBits(address, command uint16) []bool {
	var bits []bool
	for i := 0; i < 16; i++ {
		bits = append(bits, (address>>uint(i))&1 == 1)
	}
	for i := 0; i < 16; i++ {
		bits = append(bits, (command>>uint(i))&1 == 1)
	}
	return bits
}

func buildSbpFrame(address, command uint16) []wave.Event {
	b := &wave.Builder{}
	b.Mark(SbpPulses.HeaderHigh).Space(SbpPulses.HeaderLow)
	for _, one := range sbpFrameBits(address, command) {
		b.Bit(SbpPulses.DataHigh, SbpPulses.DataZeroLow, SbpPulses.DataOneLow, one)
	}
	return b.Events(sbpSamplerHz)
}

func TestSbp_DecodesReferenceFrame(t *testing.T) {
	d, err := NewSbp(sbpSamplerHz)
	require.NoError(t, err)

	events := buildSbpFrame(0x1234, 0xABCD)
	var status Status
	for _, e := range events {
		status = d.Event(e.Edge, e.DtUS)
	}
	require.Equal(t, StatusDone, status)

	cmd, ok := d.Command()
	require.True(t, ok)
	assert.Equal(t, SbpCommand{Address: 0x1234, Command: 0xABCD, Repeat: false}, cmd)
}

func TestSbp_NoComplementCheckAcceptsAnyCommand(t *testing.T) {
	d, err := NewSbp(sbpSamplerHz)
	require.NoError(t, err)

	// Unlike standard NEC, SBP has no redundancy byte to violate; any
	// 16-bit address/command pair decodes successfully.
	events := buildSbpFrame(0xFFFF, 0x0000)
	var status Status
	for _, e := range events {
		status = d.Event(e.Edge, e.DtUS)
	}
	require.Equal(t, StatusDone, status)

	cmd, ok := d.Command()
	require.True(t, ok)
	assert.Equal(t, SbpCommand{Address: 0xFFFF, Command: 0x0000, Repeat: false}, cmd)
}
