// Package bddset: construction-time validation of set-variable bound
// specifications.
//
// A bound specification is a pair of value sets - glb, the values the
// variable must contain, and lub, the values it may contain - plus a
// cardinality window [cardMin, cardMax]. CheckConsistency establishes
// the invariants every later diagram construction depends on:
// glb within lub, both within the global value limits, and an ordered
// cardinality window within the global cardinality limit.
//
// Violations are reported as one of three sentinel error kinds, wrapped
// with context. They are unrecoverable where raised: the caller aborts
// the variable or constraint under construction and surfaces the
// failure as model infeasibility, never as something to retry or clamp.
package bddset

import "github.com/cockroachdb/errors"

// The three error kinds raised during construction-time validation.
// Test with errors.Is.
var (
	// ErrFailedDomain signals an internally contradictory bound
	// specification: disordered bounds, glb not contained in lub, or an
	// inverted cardinality window.
	ErrFailedDomain = errors.New("failed domain")

	// ErrOutOfRangeDomain signals a bound value outside the global
	// representable value range.
	ErrOutOfRangeDomain = errors.New("domain bound out of range")

	// ErrOutOfRangeCardinality signals a requested maximum cardinality
	// beyond the global cardinality limit.
	ErrOutOfRangeCardinality = errors.New("cardinality out of range")
)

// CheckConsistency validates a bound specification. It returns nil when
// the specification is consistent, otherwise a wrap of one of the three
// sentinel kinds. Each listed condition is checked independently.
func CheckConsistency(glb, lub IntSet, cardMin, cardMax int) error {
	if glb.Size() > 0 {
		glbMin, glbMax := glb.Min(), glb.Max()
		if lub.Size() == 0 {
			return errors.Wrapf(ErrFailedDomain,
				"CheckConsistency: required values %s with empty upper bound", glb)
		}
		if glbMin > glbMax {
			return errors.Wrapf(ErrFailedDomain,
				"CheckConsistency: disordered required bounds [%d..%d]", glbMin, glbMax)
		}
		if glbMin < ValueMin || glbMax > ValueMax {
			return errors.Wrapf(ErrOutOfRangeDomain,
				"CheckConsistency: required bounds [%d..%d] exceed [%d..%d]",
				glbMin, glbMax, ValueMin, ValueMax)
		}
		lubMin, lubMax := lub.Min(), lub.Max()
		if glbMin < lubMin || glbMin > lubMax || glbMax > lubMax || glbMax < lubMin {
			return errors.Wrapf(ErrFailedDomain,
				"CheckConsistency: required bounds [%d..%d] not contained in allowed [%d..%d]",
				glbMin, glbMax, lubMin, lubMax)
		}
	}

	if lub.Size() > 0 {
		lubMin, lubMax := lub.Min(), lub.Max()
		if lubMin < ValueMin || lubMax > ValueMax {
			return errors.Wrapf(ErrOutOfRangeDomain,
				"CheckConsistency: allowed bounds [%d..%d] exceed [%d..%d]",
				lubMin, lubMax, ValueMin, ValueMax)
		}
		if lubMin > lubMax {
			return errors.Wrapf(ErrFailedDomain,
				"CheckConsistency: disordered allowed bounds [%d..%d]", lubMin, lubMax)
		}
	}

	if cardMax < 0 {
		return errors.Wrapf(ErrFailedDomain,
			"CheckConsistency: negative maximum cardinality %d", cardMax)
	}
	if cardMax > CardMax {
		return errors.Wrapf(ErrOutOfRangeCardinality,
			"CheckConsistency: maximum cardinality %d exceeds limit %d", cardMax, CardMax)
	}
	if cardMin > cardMax || cardMin < 0 {
		return errors.Wrapf(ErrFailedDomain,
			"CheckConsistency: cardinality window [%d..%d] not within [0..%d]",
			cardMin, cardMax, cardMax)
	}
	return nil
}
