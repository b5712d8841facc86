package manybody

import (
	"github.com/katalvlaran/secondq/algebra"
	"github.com/katalvlaran/secondq/space"
)

// Equations groups every term of expr by residual signature and wraps
// each as an Equation under the given result-tensor label. The
// expression should already be contracted and canonicalized; residual
// creation indices become the result's upper list (left to right),
// annihilation indices its lower list, both kept verbatim. Group order
// within a signature follows the expression's term order.
func Equations(reg *space.Registry, expr *algebra.Expression, label string) (map[string][]Equation, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if expr == nil {
		return nil, ErrNilExpression
	}
	if label == "" {
		return nil, ErrEmptyLabel
	}

	out := make(map[string][]Equation)
	for _, t := range expr.Terms() {
		q, err := equationOf(reg, t, label)
		if err != nil {
			return nil, err
		}
		sig := q.Signature()
		out[sig] = append(out[sig], q)
	}

	return out, nil
}

// equationOf projects one term: operators off, residual indices onto
// the result tensor.
func equationOf(reg *space.Registry, t algebra.Term, label string) (Equation, error) {
	var upper, lower []algebra.Index
	for _, op := range t.Ops {
		if _, err := reg.Resolve(op.Index.Space); err != nil {
			return Equation{}, err
		}
		if op.Kind == algebra.Create {
			upper = append(upper, op.Index)
		} else {
			lower = append(lower, op.Index)
		}
	}
	rhs := t.Clone()
	rhs.Ops = nil

	return Equation{
		Result: algebra.NewTensor(label, upper, lower, algebra.Nonsymmetric),
		Rhs:    rhs,
	}, nil
}
