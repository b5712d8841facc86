package algebra

import (
	"math/big"
	"strings"
)

// Rat returns the exact rational p/q. It is a thin convenience over
// big.NewRat for building coefficients.
func Rat(p, q int64) *big.Rat { return big.NewRat(p, q) }

// Term is a single algebraic term: an exact rational coefficient, an
// ordered list of tensor factors, and an ordered operator product.
// Every index in a term is a summation dummy owned by the term.
type Term struct {
	Coef    *big.Rat
	Tensors []Tensor
	Ops     []Operator
}

// NewTerm builds a term, copying its factors. A nil coefficient means 1.
func NewTerm(coef *big.Rat, tensors []Tensor, ops []Operator) Term {
	t := Term{
		Coef:    new(big.Rat).SetInt64(1),
		Tensors: make([]Tensor, 0, len(tensors)),
		Ops:     append([]Operator(nil), ops...),
	}
	if coef != nil {
		t.Coef.Set(coef)
	}
	for _, f := range tensors {
		t.Tensors = append(t.Tensors, f.Clone())
	}

	return t
}

// ScalarTerm returns a term with no tensors and no operators.
func ScalarTerm(coef *big.Rat) Term { return NewTerm(coef, nil, nil) }

// Clone returns a deep copy.
func (t Term) Clone() Term { return NewTerm(t.Coef, t.Tensors, t.Ops) }

// IsZero reports whether the coefficient is exactly zero.
func (t Term) IsZero() bool { return t.Coef.Sign() == 0 }

// Key is the coefficient-free structural representation: tensor
// factors then operator factors, space-separated. Two terms with equal
// keys are merged by Expression addition.
func (t Term) Key() string {
	parts := make([]string, 0, len(t.Tensors)+len(t.Ops))
	for _, f := range t.Tensors {
		parts = append(parts, f.String())
	}
	for _, op := range t.Ops {
		parts = append(parts, op.String())
	}

	return strings.Join(parts, " ")
}

// String renders the term with an explicit sign and coefficient:
// "-1/2 f^{v0}_{o0} a+(v0) a-(o0)". A unit coefficient is omitted
// unless the term is a pure scalar.
func (t Term) String() string {
	key := t.Key()
	coef := ratString(t.Coef)
	switch {
	case key == "":
		return coef
	case coef == "1":
		return key
	case coef == "-1":
		return "-" + key
	default:
		return coef + " " + key
	}
}

// ratString renders a rational without a denominator when integral.
func ratString(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}

	return r.RatString()
}

// Indices returns every distinct index of the term, in first-appearance
// order: tensors first (upper before lower, per tensor), then operators.
func (t Term) Indices() []Index { return t.indices() }

func (t Term) indices() []Index {
	seen := make(map[Index]bool)
	var out []Index
	add := func(idx Index) {
		if !seen[idx] {
			seen[idx] = true
			out = append(out, idx)
		}
	}
	for _, f := range t.Tensors {
		for _, idx := range f.Upper {
			add(idx)
		}
		for _, idx := range f.Lower {
			add(idx)
		}
	}
	for _, op := range t.Ops {
		add(op.Index)
	}

	return out
}

// Reindex returns a copy of the term with every index substituted
// through m; indices absent from m are kept.
func (t Term) Reindex(m map[Index]Index) Term {
	sub := func(idx Index) Index {
		if to, ok := m[idx]; ok {
			return to
		}

		return idx
	}
	out := t.Clone()
	for i := range out.Tensors {
		for j, idx := range out.Tensors[i].Upper {
			out.Tensors[i].Upper[j] = sub(idx)
		}
		for j, idx := range out.Tensors[i].Lower {
			out.Tensors[i].Lower[j] = sub(idx)
		}
	}
	for i, op := range out.Ops {
		out.Ops[i].Index = sub(op.Index)
	}

	return out
}

// Adjoint returns the Hermitian conjugate: operator order reversed,
// creation and annihilation swapped, tensor upper/lower roles swapped.
// Coefficients are rational, so conjugation leaves them unchanged.
func (t Term) Adjoint() Term {
	out := t.Clone()
	for i := range out.Tensors {
		out.Tensors[i].Upper, out.Tensors[i].Lower = out.Tensors[i].Lower, out.Tensors[i].Upper
	}
	for i, j := 0, len(out.Ops)-1; i < j; i, j = i+1, j-1 {
		out.Ops[i], out.Ops[j] = out.Ops[j], out.Ops[i]
	}
	for i, op := range out.Ops {
		if op.Kind == Create {
			out.Ops[i].Kind = Annihilate
		} else {
			out.Ops[i].Kind = Create
		}
	}

	return out
}

// Mul returns the noncommutative product t·u: coefficients multiplied,
// tensor lists and operator products concatenated in order. The right
// factor's dummy indices are shifted past the left factor's ordinals
// first, so equal dummy names in the two factors are never captured.
func (t Term) Mul(u Term) Term {
	base := make(map[byte]int)
	for _, idx := range t.indices() {
		if idx.Ord+1 > base[idx.Space] {
			base[idx.Space] = idx.Ord + 1
		}
	}
	shift := make(map[Index]Index)
	for _, idx := range u.indices() {
		if off := base[idx.Space]; off > 0 {
			shift[idx] = NewIndex(idx.Space, idx.Ord+off)
		}
	}
	rhs := u.Reindex(shift)

	out := t.Clone()
	out.Coef.Mul(out.Coef, u.Coef)
	out.Tensors = append(out.Tensors, rhs.Tensors...)
	out.Ops = append(out.Ops, rhs.Ops...)

	return out
}
