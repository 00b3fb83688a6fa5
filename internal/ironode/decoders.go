package ironode

import (
	"fmt"

	"github.com/edgeflow/irdecode/pkg/irdecode"
)

// BuildMultiReceiver2 constructs a 2-slot multi-receiver from protocol
// names, so a flow config can pick "which 2 protocols" without ironode
// hard-coding one fixed pair. pkg/irdecode's slot type is unexported by
// design (construction only happens through the NecSlot/Rc5Slot/... family
// in the same call that builds the MultiReceiverN), so the supported
// pairs are enumerated here rather than built through a generic lookup -
// the same fixed-at-construction arity spec.md's Non-goal on data-driven
// registration describes, just with the pair chosen by config instead of
// hard-coded literally in source.
func BuildMultiReceiver2(protocols [2]string, samplerHz uint32) (*irdecode.MultiReceiver2, error) {
	a, b := protocols[0], protocols[1]

	switch {
	case pair(a, b, "nec", "rc5"):
		return pairNecRc5(samplerHz, a == "nec")
	case pair(a, b, "nec", "rc6"):
		return pairNecRc6(samplerHz, a == "nec")
	case pair(a, b, "nec", "denon"):
		return pairNecDenon(samplerHz, a == "nec")
	case pair(a, b, "nec", "sbp"):
		return pairNecSbp(samplerHz, a == "nec")
	case pair(a, b, "rc5", "rc6"):
		return pairRc5Rc6(samplerHz, a == "rc5")
	case pair(a, b, "rc5", "denon"):
		return pairRc5Denon(samplerHz, a == "rc5")
	case pair(a, b, "rc5", "sbp"):
		return pairRc5Sbp(samplerHz, a == "rc5")
	case pair(a, b, "rc6", "denon"):
		return pairRc6Denon(samplerHz, a == "rc6")
	case pair(a, b, "rc6", "sbp"):
		return pairRc6Sbp(samplerHz, a == "rc6")
	case pair(a, b, "denon", "sbp"):
		return pairDenonSbp(samplerHz, a == "denon")
	default:
		return nil, fmt.Errorf("unsupported protocol pair %q/%q", a, b)
	}
}

func pair(a, b, x, y string) bool {
	return (a == x && b == y) || (a == y && b == x)
}

func pairNecRc5(samplerHz uint32, necFirst bool) (*irdecode.MultiReceiver2, error) {
	nec, err := irdecode.NewNec(samplerHz)
	if err != nil {
		return nil, err
	}
	rc5, err := irdecode.NewRc5(samplerHz)
	if err != nil {
		return nil, err
	}
	if necFirst {
		return irdecode.NewMultiReceiver2(irdecode.NecSlot(nec), irdecode.Rc5Slot(rc5)), nil
	}
	return irdecode.NewMultiReceiver2(irdecode.Rc5Slot(rc5), irdecode.NecSlot(nec)), nil
}

func pairNecRc6(samplerHz uint32, necFirst bool) (*irdecode.MultiReceiver2, error) {
	nec, err := irdecode.NewNec(samplerHz)
	if err != nil {
		return nil, err
	}
	rc6, err := irdecode.NewRc6(samplerHz)
	if err != nil {
		return nil, err
	}
	if necFirst {
		return irdecode.NewMultiReceiver2(irdecode.NecSlot(nec), irdecode.Rc6Slot(rc6)), nil
	}
	return irdecode.NewMultiReceiver2(irdecode.Rc6Slot(rc6), irdecode.NecSlot(nec)), nil
}

func pairNecDenon(samplerHz uint32, necFirst bool) (*irdecode.MultiReceiver2, error) {
	nec, err := irdecode.NewNec(samplerHz)
	if err != nil {
		return nil, err
	}
	denon, err := irdecode.NewDenon(samplerHz)
	if err != nil {
		return nil, err
	}
	if necFirst {
		return irdecode.NewMultiReceiver2(irdecode.NecSlot(nec), irdecode.DenonSlot(denon)), nil
	}
	return irdecode.NewMultiReceiver2(irdecode.DenonSlot(denon), irdecode.NecSlot(nec)), nil
}

func pairNecSbp(samplerHz uint32, necFirst bool) (*irdecode.MultiReceiver2, error) {
	nec, err := irdecode.NewNec(samplerHz)
	if err != nil {
		return nil, err
	}
	sbp, err := irdecode.NewSbp(samplerHz)
	if err != nil {
		return nil, err
	}
	if necFirst {
		return irdecode.NewMultiReceiver2(irdecode.NecSlot(nec), irdecode.SbpSlot(sbp)), nil
	}
	return irdecode.NewMultiReceiver2(irdecode.SbpSlot(sbp), irdecode.NecSlot(nec)), nil
}

func pairRc5Rc6(samplerHz uint32, rc5First bool) (*irdecode.MultiReceiver2, error) {
	rc5, err := irdecode.NewRc5(samplerHz)
	if err != nil {
		return nil, err
	}
	rc6, err := irdecode.NewRc6(samplerHz)
	if err != nil {
		return nil, err
	}
	if rc5First {
		return irdecode.NewMultiReceiver2(irdecode.Rc5Slot(rc5), irdecode.Rc6Slot(rc6)), nil
	}
	return irdecode.NewMultiReceiver2(irdecode.Rc6Slot(rc6), irdecode.Rc5Slot(rc5)), nil
}

func pairRc5Denon(samplerHz uint32, rc5First bool) (*irdecode.MultiReceiver2, error) {
	rc5, err := irdecode.NewRc5(samplerHz)
	if err != nil {
		return nil, err
	}
	denon, err := irdecode.NewDenon(samplerHz)
	if err != nil {
		return nil, err
	}
	if rc5First {
		return irdecode.NewMultiReceiver2(irdecode.Rc5Slot(rc5), irdecode.DenonSlot(denon)), nil
	}
	return irdecode.NewMultiReceiver2(irdecode.DenonSlot(denon), irdecode.Rc5Slot(rc5)), nil
}

func pairRc5Sbp(samplerHz uint32, rc5First bool) (*irdecode.MultiReceiver2, error) {
	rc5, err := irdecode.NewRc5(samplerHz)
	if err != nil {
		return nil, err
	}
	sbp, err := irdecode.NewSbp(samplerHz)
	if err != nil {
		return nil, err
	}
	if rc5First {
		return irdecode.NewMultiReceiver2(irdecode.Rc5Slot(rc5), irdecode.SbpSlot(sbp)), nil
	}
	return irdecode.NewMultiReceiver2(irdecode.SbpSlot(sbp), irdecode.Rc5Slot(rc5)), nil
}

func pairRc6Denon(samplerHz uint32, rc6First bool) (*irdecode.MultiReceiver2, error) {
	rc6, err := irdecode.NewRc6(samplerHz)
	if err != nil {
		return nil, err
	}
	denon, err := irdecode.NewDenon(samplerHz)
	if err != nil {
		return nil, err
	}
	if rc6First {
		return irdecode.NewMultiReceiver2(irdecode.Rc6Slot(rc6), irdecode.DenonSlot(denon)), nil
	}
	return irdecode.NewMultiReceiver2(irdecode.DenonSlot(denon), irdecode.Rc6Slot(rc6)), nil
}

func pairRc6Sbp(samplerHz uint32, rc6First bool) (*irdecode.MultiReceiver2, error) {
	rc6, err := irdecode.NewRc6(samplerHz)
	if err != nil {
		return nil, err
	}
	sbp, err := irdecode.NewSbp(samplerHz)
	if err != nil {
		return nil, err
	}
	if rc6First {
		return irdecode.NewMultiReceiver2(irdecode.Rc6Slot(rc6), irdecode.SbpSlot(sbp)), nil
	}
	return irdecode.NewMultiReceiver2(irdecode.SbpSlot(sbp), irdecode.Rc6Slot(rc6)), nil
}

func pairDenonSbp(samplerHz uint32, denonFirst bool) (*irdecode.MultiReceiver2, error) {
	denon, err := irdecode.NewDenon(samplerHz)
	if err != nil {
		return nil, err
	}
	sbp, err := irdecode.NewSbp(samplerHz)
	if err != nil {
		return nil, err
	}
	if denonFirst {
		return irdecode.NewMultiReceiver2(irdecode.DenonSlot(denon), irdecode.SbpSlot(sbp)), nil
	}
	return irdecode.NewMultiReceiver2(irdecode.SbpSlot(sbp), irdecode.DenonSlot(denon)), nil
}
