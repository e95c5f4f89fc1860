package valueobject

import (
	"errors"
	"fmt"
)

// ErrUnknownInterestType is returned when an interest type string is outside
// the supported set.
var ErrUnknownInterestType = errors.New("unknown interest type")

// ---------------------------------------------------------------------------
// InterestType – immutable value object
// ---------------------------------------------------------------------------

// InterestType selects how interest accrues over the term.
type InterestType struct {
	value string
}

const (
	interestFlat     = "flat"
	interestReducing = "reducing"
	interestCompound = "compound"
)

var (
	// InterestTypeFlat charges interest once on the full principal.
	InterestTypeFlat = InterestType{value: interestFlat}
	// InterestTypeReducing charges interest on the outstanding balance.
	InterestTypeReducing = InterestType{value: interestReducing}
	// InterestTypeCompound charges interest on principal plus accrued interest.
	InterestTypeCompound = InterestType{value: interestCompound}
)

var validInterestTypes = map[string]InterestType{
	interestFlat:     InterestTypeFlat,
	interestReducing: InterestTypeReducing,
	interestCompound: InterestTypeCompound,
}

// NewInterestType creates an InterestType from its wire name.
func NewInterestType(s string) (InterestType, error) {
	v, ok := validInterestTypes[s]
	if !ok {
		return InterestType{}, fmt.Errorf("%w: %q", ErrUnknownInterestType, s)
	}
	return v, nil
}

// String returns the wire name of the interest type.
func (t InterestType) String() string { return t.value }

// IsZero returns true if the interest type has not been initialised.
func (t InterestType) IsZero() bool { return t.value == "" }

// Equal returns true when both interest types carry the same value.
func (t InterestType) Equal(other InterestType) bool {
	return t.value == other.value
}
