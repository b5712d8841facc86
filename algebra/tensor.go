package algebra

import "strings"

// Symmetry declares how a tensor behaves under permutations within its
// upper index list and, independently, within its lower index list.
type Symmetry uint8

const (
	// Nonsymmetric tensors treat their index order as a rigid label.
	Nonsymmetric Symmetry = iota
	// Symmetric tensors are invariant under same-side permutations.
	Symmetric
	// Antisymmetric tensors pick up the permutation's sign.
	Antisymmetric
)

// String returns the lowercase name used in dumps and errors.
func (s Symmetry) String() string {
	switch s {
	case Symmetric:
		return "symmetric"
	case Antisymmetric:
		return "antisymmetric"
	default:
		return "nonsymmetric"
	}
}

// Tensor is one labeled factor of a term: ordered upper and lower
// index lists with a declared permutation symmetry.
type Tensor struct {
	Label    string
	Upper    []Index
	Lower    []Index
	Symmetry Symmetry
}

// NewTensor builds a tensor, copying both index lists.
func NewTensor(label string, upper, lower []Index, sym Symmetry) Tensor {
	return Tensor{
		Label:    label,
		Upper:    append([]Index(nil), upper...),
		Lower:    append([]Index(nil), lower...),
		Symmetry: sym,
	}
}

// Clone returns a deep copy.
func (t Tensor) Clone() Tensor {
	return NewTensor(t.Label, t.Upper, t.Lower, t.Symmetry)
}

// String renders the compact form "f^{o0,o1}_{v0}". Empty index lists
// render as empty braces, matching the display contract.
func (t Tensor) String() string {
	var b strings.Builder
	b.WriteString(t.Label)
	b.WriteString("^{")
	writeIndexList(&b, t.Upper)
	b.WriteString("}_{")
	writeIndexList(&b, t.Lower)
	b.WriteString("}")

	return b.String()
}

func writeIndexList(b *strings.Builder, list []Index) {
	for i, idx := range list {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(idx.String())
	}
}
