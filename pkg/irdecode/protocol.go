package irdecode

// Decoder is the capability every protocol state machine satisfies: feed it
// edge events, poll Status, extract a command once Status is Done, Reset to
// go again. Cmd is the protocol's decoded command record.
//
// This mirrors the source's generic receiver capability (state machine +
// command type) from a language with monomorphized generics; Go expresses
// the same shape as an interface implemented by one concrete type per
// protocol instead of a trait bound.
type Decoder[Cmd any] interface {
	// Event feeds one edge transition. edge=true is a rising edge (space
	// ends, mark begins); edge=false is falling (mark ends, space
	// begins). dt is the sampler-tick delta since the previous edge.
	Event(edge bool, dt uint32) Status

	// Command extracts the decoded command iff Status is StatusDone.
	// Returns (zero, false) otherwise, or when an integrity check fails.
	Command() (Cmd, bool)

	// Reset returns the decoder to its initial state. Callers must Reset
	// after consuming a command and after any StatusError.
	Reset()
}

// anyEventer is the edge/dt-only subset of Decoder, used by MultiReceiver
// to drive heterogeneous decoders without naming each Cmd type parameter.
type anyEventer interface {
	Event(edge bool, dt uint32) Status
	Reset()
}
