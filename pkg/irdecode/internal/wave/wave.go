// Package wave builds synthetic (edge, dt) event sequences from
// microsecond mark/space durations, so decoder tests can express fixtures
// as waveforms instead of hand-computed tick counts.
package wave

// Event is one edge transition as a decoder's Event method expects it.
type Event struct {
	Edge bool // true = rising (space ends, mark begins)
	DtUS uint32
}

// Ticks converts a microsecond duration to sampler ticks.
func Ticks(us, samplerHz uint32) uint32 {
	return uint32(uint64(us) * uint64(samplerHz) / 1_000_000)
}

// Builder accumulates a waveform as alternating mark/space durations,
// starting from an idle (low) line, and renders it to a tick sequence for
// a chosen sampler frequency.
type Builder struct {
	usSeq []uint32 // alternating mark, space, mark, space, ...
}

// Mark appends a mark (carrier-on) interval of the given microsecond
// length.
func (b *Builder) Mark(us uint32) *Builder {
	b.usSeq = append(b.usSeq, us)
	return b
}

// Space appends a space (carrier-off) interval of the given microsecond
// length.
func (b *Builder) Space(us uint32) *Builder {
	b.usSeq = append(b.usSeq, us)
	return b
}

// Bit appends one pulse-distance-coded bit: a fixed mark followed by
// either the zero-space or one-space duration.
func (b *Builder) Bit(markUS, zeroUS, oneUS uint32, one bool) *Builder {
	b.Mark(markUS)
	if one {
		b.Space(oneUS)
	} else {
		b.Space(zeroUS)
	}
	return b
}

// Events renders the accumulated mark/space sequence into (edge, dt)
// events at samplerHz. The sequence always starts on a mark, so the first
// event is a rising edge; Events emits a falling edge at the end of every
// mark and a rising edge at the end of every following space.
func (b *Builder) Events(samplerHz uint32) []Event {
	events := make([]Event, 0, len(b.usSeq)+1)
	// The very first edge starts the mark; its own dt is irrelevant to
	// every decoder in this package (there is no preceding symbol to sum
	// it against), so it is reported as 0.
	events = append(events, Event{Edge: true, DtUS: 0})

	for i, us := range b.usSeq {
		edge := i%2 != 0 // mark(i even) ends on a falling edge, space ends on rising
		events = append(events, Event{Edge: edge, DtUS: Ticks(us, samplerHz)})
	}
	return events
}
