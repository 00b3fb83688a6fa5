package irdecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeflow/irdecode/pkg/irdecode/internal/wave"
)

const denonSamplerHz = 1_000_000

func denonFrameBitSeq(address uint8, command uint8) []bool {
	var bits []bool
	for i := denonAddrBits - 1; i >= 0; i-- {
		bits = append(bits, (address>>uint(i))&1 == 1)
	}
	for i := denonCmdBits - 1; i >= 0; i-- {
		bits = append(bits, (command>>uint(i))&1 == 1)
	}
	return bits
}

func buildDenonFrame(address uint8, command uint8) []wave.Event {
	b := &wave.Builder{}
	for _, one := range denonFrameBitSeq(address, command) {
		b.Bit(denonMarkUS, denonZeroLowUS, denonOneLowUS, one)
	}
	b.Mark(denonMarkUS).Space(denonGapUS)
	for _, one := range denonFrameBitSeq(address, ^command) {
		b.Bit(denonMarkUS, denonZeroLowUS, denonOneLowUS, one)
	}
	return b.Events(denonSamplerHz)
}

func TestDenon_DecodesReferencePair(t *testing.T) {
	d, err := NewDenon(denonSamplerHz)
	require.NoError(t, err)

	events := buildDenonFrame(0x0A, 0x5C)
	var status Status
	for _, e := range events {
		status = d.Event(e.Edge, e.DtUS)
	}
	require.Equal(t, StatusDone, status)

	cmd, ok := d.Command()
	require.True(t, ok)
	assert.Equal(t, DenonCommand{Address: 0x0A, Command: 0x5C}, cmd)
}

func TestDenon_MismatchedComplementFailsIntegrity(t *testing.T) {
	d, err := NewDenon(denonSamplerHz)
	require.NoError(t, err)

	b := &wave.Builder{}
	for _, one := range denonFrameBitSeq(0x0A, 0x5C) {
		b.Bit(denonMarkUS, denonZeroLowUS, denonOneLowUS, one)
	}
	b.Mark(denonMarkUS).Space(denonGapUS)
	// Second frame's command is NOT the bitwise complement of the first.
	for _, one := range denonFrameBitSeq(0x0A, 0x5C) {
		b.Bit(denonMarkUS, denonZeroLowUS, denonOneLowUS, one)
	}
	events := b.Events(denonSamplerHz)

	var status Status
	for _, e := range events {
		status = d.Event(e.Edge, e.DtUS)
	}
	require.Equal(t, StatusDone, status)

	_, ok := d.Command()
	assert.False(t, ok)
}

func TestDenon_MissingGapIsDataError(t *testing.T) {
	d, err := NewDenon(denonSamplerHz)
	require.NoError(t, err)

	b := &wave.Builder{}
	for _, one := range denonFrameBitSeq(0x0A, 0x5C) {
		b.Bit(denonMarkUS, denonZeroLowUS, denonOneLowUS, one)
	}
	// No gap: frame 2 starts immediately, so the expected-gap symbol never appears.
	for _, one := range denonFrameBitSeq(0x0A, 0x5C) {
		b.Bit(denonMarkUS, denonZeroLowUS, denonOneLowUS, one)
	}
	events := b.Events(denonSamplerHz)

	var sawErr bool
	for _, e := range events {
		if d.Event(e.Edge, e.DtUS) == StatusError {
			sawErr = true
			break
		}
	}
	assert.True(t, sawErr)
}
