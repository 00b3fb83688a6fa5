package irdecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiReceiver2_NecWaveformLeavesOtherSlotNone(t *testing.T) {
	nec, err := NewNec(necSamplerHz)
	require.NoError(t, err)
	rc5, err := NewRc5(necSamplerHz)
	require.NoError(t, err)

	m := NewMultiReceiver2(NecSlot(nec), Rc5Slot(rc5))

	events := buildNecFrame(necFrameBits(0x04, 0xFB, 0x08, 0xF7))
	var necHits int
	var lastResults [2]*CmdUnion
	for _, e := range events {
		lastResults = m.Event(e.DtUS, e.Edge)
		assert.Nil(t, lastResults[1], "rc5 slot must never decode an nec waveform")
		if lastResults[0] != nil {
			necHits++
			assert.Equal(t, CmdNec, lastResults[0].Kind)
			assert.Equal(t, NecCommand{Address: 0x04, Command: 0x08, Repeat: false}, lastResults[0].Nec)
		}
	}
	assert.Equal(t, 1, necHits, "exactly one event should complete the nec frame")

	// After Done, the next event yields no command in either slot.
	results := m.Event(1, true)
	assert.Nil(t, results[0])
	assert.Nil(t, results[1])
}

func TestMultiReceiver2_EachSlotDecodesItsOwnProtocol(t *testing.T) {
	nec, err := NewNec(necSamplerHz)
	require.NoError(t, err)
	rc5, err := NewRc5(rc5SamplerHz)
	require.NoError(t, err)

	m := NewMultiReceiver2(NecSlot(nec), Rc5Slot(rc5))

	necEvents := buildNecFrame(necFrameBits(0x04, 0xFB, 0x08, 0xF7))
	var sawNec bool
	for _, e := range necEvents {
		r := m.Event(e.DtUS, e.Edge)
		if r[0] != nil {
			sawNec = true
		}
	}
	assert.True(t, sawNec)

	rc5Events := buildRc5Frame(true, 0x05, 0x10)
	var sawRc5 bool
	for _, e := range rc5Events {
		r := m.Event(e.DtUS, e.Edge)
		if r[1] != nil {
			sawRc5 = true
			assert.Equal(t, CmdRc5, r[1].Kind)
			assert.Equal(t, Rc5Command{Address: 0x05, Command: 0x10, Toggle: true}, r[1].Rc5)
		}
	}
	assert.True(t, sawRc5)
}
