package algebra

import (
	"fmt"
	"math/big"
	"strings"
)

// Expression is a sum of terms, stored as a mapping from the
// coefficient-free structural key of each term to its accumulated
// exact coefficient. Insertion order is preserved for display; it is
// irrelevant for correctness.
type Expression struct {
	keys  []string
	terms map[string]*Term
	arity map[string][2]int // tensor label -> declared (upper, lower)
}

// NewExpression returns the empty expression (the zero of addition).
func NewExpression() *Expression {
	return &Expression{
		terms: make(map[string]*Term),
		arity: make(map[string][2]int),
	}
}

// FromTerms builds an expression from terms, merging equal keys.
func FromTerms(ts ...Term) (*Expression, error) {
	e := NewExpression()
	for _, t := range ts {
		if err := e.Add(t); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Len returns the number of stored terms.
func (e *Expression) Len() int { return len(e.keys) }

// Terms returns deep copies of the stored terms in insertion order.
func (e *Expression) Terms() []Term {
	out := make([]Term, 0, len(e.keys))
	for _, k := range e.keys {
		out = append(out, e.terms[k].Clone())
	}

	return out
}

// Coef returns the accumulated coefficient of the term with the given
// structural key, or nil if the key is absent.
func (e *Expression) Coef(key string) *big.Rat {
	t, ok := e.terms[key]
	if !ok {
		return nil
	}

	return new(big.Rat).Set(t.Coef)
}

// checkArity enforces that a tensor label is always used at one arity.
func (e *Expression) checkArity(t Term) error {
	for _, f := range t.Tensors {
		ar := [2]int{len(f.Upper), len(f.Lower)}
		if prev, ok := e.arity[f.Label]; ok && prev != ar {
			return fmt.Errorf("%w: tensor %q used as (%d,%d) and (%d,%d)",
				ErrIndexArityMismatch, f.Label, prev[0], prev[1], ar[0], ar[1])
		}
	}

	return nil
}

// Add merges a term into the expression by structural key, summing
// coefficients exactly and dropping the term if the sum is zero.
// Returns ErrIndexArityMismatch if the term reuses a tensor label at a
// different arity than previously seen in this expression.
func (e *Expression) Add(t Term) error {
	if t.IsZero() {
		return nil
	}
	if err := e.checkArity(t); err != nil {
		return err
	}
	for _, f := range t.Tensors {
		e.arity[f.Label] = [2]int{len(f.Upper), len(f.Lower)}
	}
	key := t.Key()
	if have, ok := e.terms[key]; ok {
		have.Coef.Add(have.Coef, t.Coef)
		if have.Coef.Sign() == 0 {
			e.remove(key)
		}

		return nil
	}
	e.keys = append(e.keys, key)
	e.terms[key] = ptr(t.Clone())

	return nil
}

func ptr(t Term) *Term { return &t }

func (e *Expression) remove(key string) {
	delete(e.terms, key)
	for i, k := range e.keys {
		if k == key {
			e.keys = append(e.keys[:i], e.keys[i+1:]...)

			return
		}
	}
}

// AddExpr adds every term of o into e.
func (e *Expression) AddExpr(o *Expression) error {
	if o == nil {
		return ErrNilExpression
	}
	for _, k := range o.keys {
		if err := e.Add(*o.terms[k]); err != nil {
			return err
		}
	}

	return nil
}

// Scale multiplies every coefficient by c and returns e.
func (e *Expression) Scale(c *big.Rat) *Expression {
	if c.Sign() == 0 {
		e.keys = e.keys[:0]
		e.terms = make(map[string]*Term)

		return e
	}
	for _, t := range e.terms {
		t.Coef.Mul(t.Coef, c)
	}

	return e
}

// Neg negates every coefficient and returns e.
func (e *Expression) Neg() *Expression {
	for _, t := range e.terms {
		t.Coef.Neg(t.Coef)
	}

	return e
}

// Clone returns a deep copy.
func (e *Expression) Clone() *Expression {
	out := NewExpression()
	out.keys = append(out.keys, e.keys...)
	for k, t := range e.terms {
		out.terms[k] = ptr(t.Clone())
	}
	for l, ar := range e.arity {
		out.arity[l] = ar
	}

	return out
}

// Mul returns the noncommutative product e·o: the sum over all term
// pairs of Term.Mul, left factors first.
func (e *Expression) Mul(o *Expression) (*Expression, error) {
	if o == nil {
		return nil, ErrNilExpression
	}
	out := NewExpression()
	for _, lk := range e.keys {
		for _, rk := range o.keys {
			if err := out.Add(e.terms[lk].Mul(*o.terms[rk])); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Reindex returns a copy with every index of every term substituted
// through m. The map must be injective (ErrBadIndexMap otherwise);
// this aligns external indices between expressions and must not be
// confused with canonical dummy relabeling.
func (e *Expression) Reindex(m map[Index]Index) (*Expression, error) {
	targets := make(map[Index]Index, len(m))
	for from, to := range m {
		if prev, ok := targets[to]; ok {
			return nil, fmt.Errorf("%w: %s and %s both map to %s", ErrBadIndexMap, prev, from, to)
		}
		targets[to] = from
	}
	out := NewExpression()
	for _, k := range e.keys {
		if err := out.Add(e.terms[k].Reindex(m)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Adjoint returns the Hermitian conjugate of the expression.
func (e *Expression) Adjoint() *Expression {
	out := NewExpression()
	for _, k := range e.keys {
		// Adjoint cannot create an arity conflict: arities are preserved
		// with roles swapped uniformly.
		if err := out.Add(e.terms[k].Adjoint()); err != nil {
			panic("algebra: adjoint arity invariant violated: " + err.Error())
		}
	}

	return out
}

// Equal reports whether two expressions hold identical term sets with
// identical coefficients. Compare canonicalized expressions: equality
// of representations, not of the underlying algebra, is tested.
func (e *Expression) Equal(o *Expression) bool {
	if o == nil || len(e.keys) != len(o.keys) {
		return false
	}
	for k, t := range e.terms {
		ot, ok := o.terms[k]
		if !ok || t.Coef.Cmp(ot.Coef) != 0 {
			return false
		}
	}

	return true
}

// Dot treats the stored terms as an orthonormal basis and returns the
// exact inner product: the sum over shared keys of coefficient
// products. Canonicalize both operands first for a meaningful result.
func (e *Expression) Dot(o *Expression) *big.Rat {
	out := new(big.Rat)
	if o == nil {
		return out
	}
	prod := new(big.Rat)
	for k, t := range e.terms {
		if ot, ok := o.terms[k]; ok {
			out.Add(out, prod.Mul(t.Coef, ot.Coef))
		}
	}

	return out
}

// String renders one line per term in insertion order, with an
// explicit sign on every term after the first:
//
//	3/2 f^{v0}_{o0} a+(v0) a-(o0)
//	+t^{o0}_{v0} a+(v0) a-(o0)
func (e *Expression) String() string {
	var b strings.Builder
	for i, k := range e.keys {
		s := e.terms[k].String()
		if i > 0 {
			b.WriteByte('\n')
			if !strings.HasPrefix(s, "-") {
				b.WriteByte('+')
			}
		}
		b.WriteString(s)
	}

	return b.String()
}
