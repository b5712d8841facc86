// Package space provides the orbital-space registry: a caller-owned
// catalog mapping single-character labels to orbital-space descriptors
// (statistics, vacuum occupation, declared index names).
//
// What
//
//   - Register spaces with AddSpace: label, FieldType (Fermion/Boson),
//     SpaceType (Occupied/Unoccupied/General), pretty index names, and
//     optional elementary components for composite General spaces.
//   - Resolve labels to Space descriptors; enumerate with NumSpaces/Label.
//   - Decompose a General space into its elementary occupied/unoccupied
//     components with Elementary (used by the Wick engine).
//   - Freeze the registry before handing it to derivations; Reset to
//     rebuild it for an independent derivation.
//
// Why
//
//	Every other secondq package resolves operator and tensor indices
//	through a Registry: statistics decide signs under reordering, and
//	vacuum occupation decides which Wick contractions are nonzero.
//	The registry is an explicit value, not ambient global state, so
//	concurrent derivations can each hold a frozen snapshot.
//
// Lifecycle
//
//	reg := space.NewRegistry()        // create
//	err := reg.AddSpace('o', ...)     // mutate
//	reg.Freeze()                      // freeze-for-use
//	... run derivations (read-only) ...
//	reg.Reset()                       // rebuild for the next derivation
//
// Concurrency
//
//	A Registry is not safe for concurrent mutation. After Freeze all
//	methods are read-only and safe to share. Callers must serialize
//	Reset/AddSpace against every derivation using the registry.
//
// Errors
//
//   - ErrDuplicateSpace  label reuse, or index-name collision with another space.
//   - ErrUnknownSpace    label was never registered.
//   - ErrFrozenRegistry  mutation after Freeze.
//   - ErrBadSpace        malformed declaration (empty index list,
//     elementary components on a non-General space, or a component
//     that is unknown or itself General).
//   - ErrNoDecomposition General space without declared components
//     asked to decompose.
package space
