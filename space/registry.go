package space

import (
	"fmt"
	"strconv"
	"strings"
)

// Registry is the caller-owned catalog of orbital spaces.
//
// The zero value is not usable; construct with NewRegistry. A Registry
// is mutated with AddSpace/Reset, frozen with Freeze, and read by every
// other secondq package. See the package documentation for the
// lifecycle and concurrency contract.
type Registry struct {
	spaces  []Space
	byLabel map[byte]int
	owner   map[string]byte // index name -> owning space label
	frozen  bool
}

// NewRegistry returns an empty, unfrozen registry.
func NewRegistry() *Registry {
	return &Registry{
		byLabel: make(map[byte]int),
		owner:   make(map[string]byte),
	}
}

// Reset clears all registered spaces and unfreezes the registry.
func (r *Registry) Reset() {
	r.spaces = r.spaces[:0]
	r.byLabel = make(map[byte]int)
	r.owner = make(map[string]byte)
	r.frozen = false
}

// Freeze marks the registry read-only. Subsequent AddSpace calls fail
// with ErrFrozenRegistry until Reset.
func (r *Registry) Freeze() { r.frozen = true }

// Frozen reports whether Freeze has been called since the last Reset.
func (r *Registry) Frozen() bool { return r.frozen }

// AddSpace registers a space under label.
//
// indices are the declared pretty index names, in order; they must be
// nonempty and globally unique across spaces. elementary optionally
// lists component labels for a composite General space; components
// must be distinct, already registered, and themselves Occupied or
// Unoccupied.
//
// Returns ErrFrozenRegistry, ErrDuplicateSpace (label or index-name
// collision), or ErrBadSpace (malformed declaration).
func (r *Registry) AddSpace(label byte, field FieldType, kind SpaceType, indices []string, elementary ...byte) error {
	if r.frozen {
		return fmt.Errorf("%w: cannot add space %q", ErrFrozenRegistry, label)
	}
	if _, ok := r.byLabel[label]; ok {
		return fmt.Errorf("%w: label %q already registered", ErrDuplicateSpace, label)
	}
	if len(indices) == 0 {
		return fmt.Errorf("%w: space %q declares no index names", ErrBadSpace, label)
	}
	seen := make(map[string]bool, len(indices))
	for _, name := range indices {
		if name == "" {
			return fmt.Errorf("%w: space %q declares an empty index name", ErrBadSpace, label)
		}
		if seen[name] {
			return fmt.Errorf("%w: space %q repeats index name %q", ErrBadSpace, label, name)
		}
		seen[name] = true
		if other, taken := r.owner[name]; taken {
			return fmt.Errorf("%w: index name %q already owned by space %q", ErrDuplicateSpace, name, other)
		}
	}
	if len(elementary) > 0 && kind != General {
		return fmt.Errorf("%w: space %q is %s but declares elementary components", ErrBadSpace, label, kind)
	}
	seenComp := make(map[byte]bool, len(elementary))
	for _, comp := range elementary {
		if seenComp[comp] {
			return fmt.Errorf("%w: space %q repeats elementary component %q", ErrBadSpace, label, comp)
		}
		seenComp[comp] = true
		ci, ok := r.byLabel[comp]
		if !ok {
			return fmt.Errorf("%w: elementary component %q of space %q is not registered", ErrBadSpace, comp, label)
		}
		if r.spaces[ci].Kind == General {
			return fmt.Errorf("%w: elementary component %q of space %q is itself general", ErrBadSpace, comp, label)
		}
		if r.spaces[ci].Field != field {
			return fmt.Errorf("%w: elementary component %q of space %q has different statistics", ErrBadSpace, comp, label)
		}
	}

	sp := Space{
		Label:      label,
		Field:      field,
		Kind:       kind,
		Indices:    append([]string(nil), indices...),
		Elementary: append([]byte(nil), elementary...),
	}
	r.byLabel[label] = len(r.spaces)
	r.spaces = append(r.spaces, sp)
	for _, name := range indices {
		r.owner[name] = label
	}

	return nil
}

// Resolve returns the descriptor registered under label, or
// ErrUnknownSpace.
func (r *Registry) Resolve(label byte) (Space, error) {
	i, ok := r.byLabel[label]
	if !ok {
		return Space{}, fmt.Errorf("%w: %q", ErrUnknownSpace, label)
	}

	return r.spaces[i], nil
}

// NumSpaces returns the number of registered spaces.
func (r *Registry) NumSpaces() int { return len(r.spaces) }

// Label returns the label of the i-th registered space, in
// registration order.
func (r *Registry) Label(i int) (byte, error) {
	if i < 0 || i >= len(r.spaces) {
		return 0, fmt.Errorf("%w: space #%d of %d", ErrUnknownSpace, i, len(r.spaces))
	}

	return r.spaces[i].Label, nil
}

// Indices returns the declared pretty index names of a space.
func (r *Registry) Indices(label byte) ([]string, error) {
	sp, err := r.Resolve(label)
	if err != nil {
		return nil, err
	}

	return append([]string(nil), sp.Indices...), nil
}

// Elementary returns the contraction decomposition of a space: an
// Occupied or Unoccupied space decomposes into itself; a General space
// returns its declared components in declaration order.
//
// Returns ErrUnknownSpace for unregistered labels and ErrNoDecomposition
// for a General space declared without components.
func (r *Registry) Elementary(label byte) ([]byte, error) {
	sp, err := r.Resolve(label)
	if err != nil {
		return nil, err
	}
	if sp.Kind != General {
		return []byte{label}, nil
	}
	if len(sp.Elementary) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoDecomposition, label)
	}

	return append([]byte(nil), sp.Elementary...), nil
}

// IndexName maps an index ordinal to a pretty name: the ordinal-th
// declared name of the space, cycling with a numeric suffix once the
// declared list is exhausted (i, j, i1, j1, ...). Unregistered labels
// fall back to the raw "<label><ord>" form.
func (r *Registry) IndexName(label byte, ord int) string {
	sp, err := r.Resolve(label)
	if err != nil || ord < 0 {
		return string(label) + strconv.Itoa(ord)
	}
	n := len(sp.Indices)
	if ord < n {
		return sp.Indices[ord]
	}

	return sp.Indices[ord%n] + strconv.Itoa(ord/n)
}

// String renders a diagnostic dump of the registry state, one space
// per line in registration order.
func (r *Registry) String() string {
	var b strings.Builder
	for i, sp := range r.spaces {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "space %c: %s %s [%s]", sp.Label, sp.Field, sp.Kind, strings.Join(sp.Indices, ","))
		if len(sp.Elementary) > 0 {
			comps := make([]string, len(sp.Elementary))
			for j, c := range sp.Elementary {
				comps[j] = string(c)
			}
			fmt.Fprintf(&b, " = %s", strings.Join(comps, "+"))
		}
	}

	return b.String()
}
