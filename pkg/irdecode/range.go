package irdecode

import "fmt"

// SymbolID identifies a recognized pulse-width window within a protocol's
// tolerance table. Concrete decoders define their own symbol orderings
// (e.g. NEC's Sync/Repeat/Zero/One); SymbolID is just the table index.
type SymbolID int

// Tolerance is one row of a protocol's pulse-distance timing table: a
// nominal duration in microseconds and the acceptance band around it,
// expressed as a percentage.
type Tolerance struct {
	NominalUS  uint32
	PercentTol uint32
}

// window is a closed integer interval of sampler ticks, [Low, High].
type window struct {
	Low, High uint32
}

func (w window) contains(ticks uint32) bool {
	return ticks >= w.Low && ticks <= w.High
}

// RangeSet is an ordered, fixed-size set of tolerance windows built once
// per decoder instance from its protocol's Tolerance table and the sampler
// frequency. Classification is a linear scan; K is always small (<=6), so
// this stays O(1) in practice.
type RangeSet struct {
	windows [6]window
	n       int
}

// ErrDegenerateRange is returned by NewRangeSet when the sampler frequency
// is too coarse to keep a tolerance window non-empty, or too fine/loose to
// keep two windows disjoint.
var ErrDegenerateRange = fmt.Errorf("irdecode: degenerate tolerance range for this sampler frequency")

// NewRangeSet builds the acceptance windows for tolerances at samplerHz.
// low = nominal*ticksPerUS*(100-tol)/100, high = nominal*ticksPerUS*(100+tol)/100.
func NewRangeSet(tolerances []Tolerance, samplerHz uint32) (RangeSet, error) {
	if len(tolerances) == 0 || len(tolerances) > 6 {
		return RangeSet{}, fmt.Errorf("irdecode: tolerance table must have 1-6 rows, got %d", len(tolerances))
	}

	var rs RangeSet
	rs.n = len(tolerances)

	for i, t := range tolerances {
		// ticks = nominal_us * samplerHz / 1_000_000, kept in one division
		// per bound to preserve integer precision the way the tolerance
		// expansion is applied before the unit conversion.
		low := mulDiv(t.NominalUS*(100-t.PercentTol), samplerHz, 100*1_000_000)
		high := mulDiv(t.NominalUS*(100+t.PercentTol), samplerHz, 100*1_000_000)
		if high <= low {
			return RangeSet{}, ErrDegenerateRange
		}
		rs.windows[i] = window{Low: low, High: high}
	}

	for i := 0; i < rs.n; i++ {
		for j := i + 1; j < rs.n; j++ {
			if rangesOverlap(rs.windows[i], rs.windows[j]) {
				return RangeSet{}, ErrDegenerateRange
			}
		}
	}

	return rs, nil
}

func rangesOverlap(a, b window) bool {
	return a.Low <= b.High && b.Low <= a.High
}

// mulDiv computes a*b/c using uint64 intermediates to avoid overflow on
// 32-bit microcontroller word sizes while keeping the public API in u32.
func mulDiv(a, b, c uint32) uint32 {
	return uint32((uint64(a) * uint64(b)) / uint64(c))
}

// Classify returns the symbol whose window contains ticks, or (0, false)
// if no window matches.
func (rs RangeSet) Classify(ticks uint32) (SymbolID, bool) {
	for i := 0; i < rs.n; i++ {
		if rs.windows[i].contains(ticks) {
			return SymbolID(i), true
		}
	}
	return 0, false
}
