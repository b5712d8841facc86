package space

import "errors"

// Sentinel errors for registry operations.
var (
	// ErrDuplicateSpace is returned when a label is re-registered or an
	// index name is already owned by another space.
	ErrDuplicateSpace = errors.New("space: duplicate space or index name")

	// ErrUnknownSpace is returned when a label was never registered.
	ErrUnknownSpace = errors.New("space: unknown space label")

	// ErrFrozenRegistry is returned when a frozen registry is mutated.
	ErrFrozenRegistry = errors.New("space: registry is frozen")

	// ErrBadSpace is returned for a malformed space declaration.
	ErrBadSpace = errors.New("space: invalid space declaration")

	// ErrNoDecomposition is returned when a General space with no
	// declared elementary components is asked to decompose.
	ErrNoDecomposition = errors.New("space: general space has no elementary components")
)

// FieldType selects the operator statistics of a space.
//
//   - Fermion — operators anticommute; transpositions flip the sign.
//   - Boson   — operators commute; transpositions are sign-free.
type FieldType uint8

const (
	// Fermion operators anticommute.
	Fermion FieldType = iota
	// Boson operators commute.
	Boson
)

// String returns the lowercase name used in dumps and errors.
func (f FieldType) String() string {
	if f == Boson {
		return "boson"
	}

	return "fermion"
}

// SpaceType declares a space's occupation relative to the reference vacuum.
//
//   - Occupied   — fully occupied in the vacuum: a hole contraction
//     (creation left of annihilation) is nonzero.
//   - Unoccupied — empty in the vacuum: a particle contraction
//     (annihilation left of creation) is nonzero.
//   - General    — partially occupied: no contraction is implied by
//     occupation alone; the space must decompose into elementary
//     Occupied/Unoccupied components before contracting.
type SpaceType uint8

const (
	// Occupied in the reference vacuum.
	Occupied SpaceType = iota
	// Unoccupied in the reference vacuum.
	Unoccupied
	// General (partially occupied) relative to the reference vacuum.
	General
)

// String returns the lowercase name used in dumps and errors.
func (s SpaceType) String() string {
	switch s {
	case Occupied:
		return "occupied"
	case Unoccupied:
		return "unoccupied"
	default:
		return "general"
	}
}

// Space describes one registered orbital space.
//
// Label is the single-character handle all indices carry; Indices are
// the declared pretty names, in order, used for display; Elementary
// lists the component labels of a composite General space.
type Space struct {
	Label      byte
	Field      FieldType
	Kind       SpaceType
	Indices    []string
	Elementary []byte
}
