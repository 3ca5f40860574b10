package bddset

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestCheckConsistency_Valid(t *testing.T) {
	err := CheckConsistency(NewIntSet(2, 5), NewIntSet(0, 10), 1, 3)
	require.NoError(t, err)
}

func TestCheckConsistency_RequiredNotContained(t *testing.T) {
	err := CheckConsistency(NewIntSet(2, 5), NewIntSet(3, 4), 1, 3)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrFailedDomain))
}

func TestCheckConsistency_RequiredWithEmptyAllowed(t *testing.T) {
	err := CheckConsistency(NewIntSet(1, 2), IntSet{}, 0, 2)
	require.True(t, errors.Is(err, ErrFailedDomain))
}

func TestCheckConsistency_RequiredOutOfRange(t *testing.T) {
	err := CheckConsistency(NewIntSet(ValueMin-1, 0), NewIntSet(ValueMin-1, 0), 0, 1)
	require.True(t, errors.Is(err, ErrOutOfRangeDomain))
}

func TestCheckConsistency_AllowedOutOfRange(t *testing.T) {
	err := CheckConsistency(IntSet{}, NewIntSet(0, ValueMax+1), 0, 1)
	require.True(t, errors.Is(err, ErrOutOfRangeDomain))
}

func TestCheckConsistency_CardinalityBeyondLimit(t *testing.T) {
	err := CheckConsistency(NewIntSet(2, 5), NewIntSet(0, 10), 0, CardMax+1)
	require.True(t, errors.Is(err, ErrOutOfRangeCardinality))
}

func TestCheckConsistency_NegativeCardMax(t *testing.T) {
	err := CheckConsistency(IntSet{}, NewIntSet(0, 10), 0, -1)
	require.True(t, errors.Is(err, ErrFailedDomain))
}

func TestCheckConsistency_InvertedCardWindow(t *testing.T) {
	err := CheckConsistency(NewIntSet(2, 5), NewIntSet(0, 10), 4, 2)
	require.True(t, errors.Is(err, ErrFailedDomain))
}

func TestCheckConsistency_NegativeCardMin(t *testing.T) {
	err := CheckConsistency(IntSet{}, NewIntSet(0, 10), -1, 2)
	require.True(t, errors.Is(err, ErrFailedDomain))
}

func TestCheckConsistency_BothEmpty(t *testing.T) {
	// An unconstrained specification with a sane window is consistent.
	require.NoError(t, CheckConsistency(IntSet{}, IntSet{}, 0, 0))
}
