package irdecode

// Receiver wraps a single protocol Decoder with the event-driven contract
// from spec.md §4.4: feed an edge, get back a decoded command as soon as
// the decoder reaches Done or RepeatDone, with reset handled for the
// caller in both the success and error paths.
type Receiver[Cmd any] struct {
	decoder Decoder[Cmd]
}

// NewReceiver wraps an already-constructed decoder (e.g. from NewNec).
func NewReceiver[Cmd any](decoder Decoder[Cmd]) *Receiver[Cmd] {
	return &Receiver[Cmd]{decoder: decoder}
}

// Event feeds one edge transition to the wrapped decoder. On StatusDone it
// extracts the command and resets the decoder, returning (cmd, nil). If the
// frame reached Done but failed a protocol integrity check (Command()
// returns ok=false - e.g. NEC's address/complement mismatch), that is not a
// hard error: it surfaces as (nil, nil), matching multireceiver.go's
// slot.step and spec.md's "integrity failure is Ok(None), not Err" rule. On
// StatusError it resets and returns (nil, err). Otherwise it returns
// (nil, nil) - the frame is still in progress.
func (r *Receiver[Cmd]) Event(dt uint32, edge bool) (*Cmd, error) {
	status := r.decoder.Event(edge, dt)

	switch status {
	case StatusDone:
		cmd, ok := r.decoder.Command()
		r.decoder.Reset()
		if !ok {
			return nil, nil
		}
		return &cmd, nil

	case StatusError:
		r.decoder.Reset()
		return nil, newDataErr()

	default:
		return nil, nil
	}
}

// PinReader is the minimal pin-level abstraction the pin-polled Receiver
// needs: a single digital read that can fail (spec.md §7's Hardware error
// kind is this error, propagated verbatim). internal/irhal provides the
// concrete GPIO-backed implementations; tests use a scripted fake.
type PinReader interface {
	Read() (bool, error)
}

// PinReceiver layers pin-level polling over a Receiver: the caller supplies
// a monotonically increasing tick counter, and the adapter derives
// (dt, edge) from observed level changes on the wrapped pin.
type PinReceiver[Cmd any] struct {
	recv      *Receiver[Cmd]
	pin       PinReader
	haveLevel bool
	lastLevel bool
	lastTick  uint32
}

// NewPinReceiver wraps a decoder and a pin reader into a tick-polled
// receiver.
func NewPinReceiver[Cmd any](decoder Decoder[Cmd], pin PinReader) *PinReceiver[Cmd] {
	return &PinReceiver[Cmd]{recv: NewReceiver(decoder), pin: pin}
}

// Event samples the pin at the given tick. It returns (nil, nil)
// until a level change is observed; on a hardware read failure it returns
// the error verbatim without touching the decoder.
func (p *PinReceiver[Cmd]) Event(tick uint32) (*Cmd, error) {
	level, err := p.pin.Read()
	if err != nil {
		return nil, err
	}

	if !p.haveLevel {
		p.haveLevel = true
		p.lastLevel = level
		p.lastTick = tick
		return nil, nil
	}

	if level == p.lastLevel {
		return nil, nil
	}

	dt := tick - p.lastTick
	p.lastTick = tick
	// A rising edge (edge=true) is observed when the pin transitions to
	// high; IR photodiodes are typically active-low, but the polarity is
	// the receiver's concern, not the decoder's - irhal normalizes it
	// before this point.
	edge := level
	p.lastLevel = level

	return p.recv.Event(dt, edge)
}
