package irdecode

// CmdKind tags which protocol a CmdUnion value holds.
type CmdKind int

const (
	CmdNone CmdKind = iota
	CmdNec
	CmdNec16
	CmdNecSamsung
	CmdNecApple
	CmdRc5
	CmdRc6
	CmdDenon
	CmdSbp
)

// CmdUnion is the tagged union every multi-receiver slot returns, carrying
// whichever protocol command was decoded. This mirrors the source's
// CmdEnum and its per-protocol From impls; Go has no sum types, so the
// union is a struct with a discriminant plus one field per variant.
type CmdUnion struct {
	Kind       CmdKind
	Nec        NecCommand
	Nec16      Nec16Command
	NecSamsung NecSamsungCommand
	NecApple   NecAppleCommand
	Rc5        Rc5Command
	Rc6        Rc6Command
	Denon      DenonCommand
	Sbp        SbpCommand
}

func FromNec(c NecCommand) CmdUnion               { return CmdUnion{Kind: CmdNec, Nec: c} }
func FromNec16(c Nec16Command) CmdUnion           { return CmdUnion{Kind: CmdNec16, Nec16: c} }
func FromNecSamsung(c NecSamsungCommand) CmdUnion { return CmdUnion{Kind: CmdNecSamsung, NecSamsung: c} }
func FromNecApple(c NecAppleCommand) CmdUnion     { return CmdUnion{Kind: CmdNecApple, NecApple: c} }
func FromRc5(c Rc5Command) CmdUnion               { return CmdUnion{Kind: CmdRc5, Rc5: c} }
func FromRc6(c Rc6Command) CmdUnion               { return CmdUnion{Kind: CmdRc6, Rc6: c} }
func FromDenon(c DenonCommand) CmdUnion           { return CmdUnion{Kind: CmdDenon, Denon: c} }
func FromSbp(c SbpCommand) CmdUnion               { return CmdUnion{Kind: CmdSbp, Sbp: c} }

// slot is a type-erased (Decoder + From-conversion) pair: the function-
// pointer-table strategy spec.md §9 names for languages without
// monomorphized generics. Each decoder's Cmd type is erased behind the
// closure captured at construction, which is what lets MultiReceiverN hold
// a homogeneous array of heterogeneous decoders.
type slot struct {
	recv anyEventer
	pull func() (CmdUnion, bool)
}

func newSlot[Cmd any](decoder Decoder[Cmd], from func(Cmd) CmdUnion) slot {
	return slot{
		recv: decoder,
		pull: func() (CmdUnion, bool) {
			cmd, ok := decoder.Command()
			if !ok {
				return CmdUnion{}, false
			}
			return from(cmd), true
		},
	}
}

// step feeds one event to the slot's decoder and returns a decoded command
// if this event completed a frame. A decoder's own Err is swallowed here -
// concurrent decoders legitimately reject frames belonging to other
// protocols on the same wire, and that rejection is not actionable at the
// multi-receiver layer (spec.md §4.5). After resetting an errored decoder
// the slot offers it the same event again, so the edge that broke a stale
// partial frame can still start a new one.
func (s *slot) step(edge bool, dt uint32) *CmdUnion {
	status := s.recv.Event(edge, dt)
	if status == StatusError {
		s.recv.Reset()
		status = s.recv.Event(edge, dt)
	}
	switch status {
	case StatusDone:
		cmd, ok := s.pull()
		s.recv.Reset()
		if !ok {
			return nil
		}
		return &cmd
	case StatusError:
		s.recv.Reset()
		return nil
	default:
		return nil
	}
}

// MultiReceiver2 drives 2 heterogeneous decoders from one edge stream.
type MultiReceiver2 struct{ slots [2]slot }

// NewMultiReceiver2 constructs a 2-decoder multi-receiver from two slots.
// Each slot's decoder is already built with its own sampler frequency.
func NewMultiReceiver2(s0, s1 slot) *MultiReceiver2 {
	return &MultiReceiver2{slots: [2]slot{s0, s1}}
}

// Event feeds dt/edge to every slot and returns one optional command per
// slot, in construction order.
func (m *MultiReceiver2) Event(dt uint32, edge bool) [2]*CmdUnion {
	return [2]*CmdUnion{
		m.slots[0].step(edge, dt),
		m.slots[1].step(edge, dt),
	}
}

// MultiReceiver3 drives 3 heterogeneous decoders from one edge stream.
type MultiReceiver3 struct{ slots [3]slot }

func NewMultiReceiver3(s0, s1, s2 slot) *MultiReceiver3 {
	return &MultiReceiver3{slots: [3]slot{s0, s1, s2}}
}

func (m *MultiReceiver3) Event(dt uint32, edge bool) [3]*CmdUnion {
	return [3]*CmdUnion{
		m.slots[0].step(edge, dt),
		m.slots[1].step(edge, dt),
		m.slots[2].step(edge, dt),
	}
}

// MultiReceiver4 drives 4 heterogeneous decoders from one edge stream.
type MultiReceiver4 struct{ slots [4]slot }

func NewMultiReceiver4(s0, s1, s2, s3 slot) *MultiReceiver4 {
	return &MultiReceiver4{slots: [4]slot{s0, s1, s2, s3}}
}

func (m *MultiReceiver4) Event(dt uint32, edge bool) [4]*CmdUnion {
	return [4]*CmdUnion{
		m.slots[0].step(edge, dt),
		m.slots[1].step(edge, dt),
		m.slots[2].step(edge, dt),
		m.slots[3].step(edge, dt),
	}
}

// MultiReceiver5 drives 5 heterogeneous decoders from one edge stream.
type MultiReceiver5 struct{ slots [5]slot }

func NewMultiReceiver5(s0, s1, s2, s3, s4 slot) *MultiReceiver5 {
	return &MultiReceiver5{slots: [5]slot{s0, s1, s2, s3, s4}}
}

func (m *MultiReceiver5) Event(dt uint32, edge bool) [5]*CmdUnion {
	return [5]*CmdUnion{
		m.slots[0].step(edge, dt),
		m.slots[1].step(edge, dt),
		m.slots[2].step(edge, dt),
		m.slots[3].step(edge, dt),
		m.slots[4].step(edge, dt),
	}
}

// MultiReceiver6 drives 6 heterogeneous decoders from one edge stream -
// the maximum arity spec.md §4.5 allows.
type MultiReceiver6 struct{ slots [6]slot }

func NewMultiReceiver6(s0, s1, s2, s3, s4, s5 slot) *MultiReceiver6 {
	return &MultiReceiver6{slots: [6]slot{s0, s1, s2, s3, s4, s5}}
}

func (m *MultiReceiver6) Event(dt uint32, edge bool) [6]*CmdUnion {
	return [6]*CmdUnion{
		m.slots[0].step(edge, dt),
		m.slots[1].step(edge, dt),
		m.slots[2].step(edge, dt),
		m.slots[3].step(edge, dt),
		m.slots[4].step(edge, dt),
		m.slots[5].step(edge, dt),
	}
}

// NecSlot, Nec16Slot, ... build a slot for each protocol so callers can
// write e.g. NewMultiReceiver2(NecSlot(nec), Rc5Slot(rc5)) without naming
// the unexported slot type or From* functions themselves.
func NecSlot(d *Nec) slot        { return newSlot[NecCommand](d, FromNec) }
func Nec16Slot(d *Nec16) slot    { return newSlot[Nec16Command](d, FromNec16) }
func NecSamsungSlot(d *NecSamsung) slot {
	return newSlot[NecSamsungCommand](d, FromNecSamsung)
}
func NecAppleSlot(d *NecApple) slot { return newSlot[NecAppleCommand](d, FromNecApple) }
func Rc5Slot(d *Rc5) slot            { return newSlot[Rc5Command](d, FromRc5) }
func Rc6Slot(d *Rc6) slot            { return newSlot[Rc6Command](d, FromRc6) }
func DenonSlot(d *Denon) slot         { return newSlot[DenonCommand](d, FromDenon) }
func SbpSlot(d *Sbp) slot             { return newSlot[SbpCommand](d, FromSbp) }
