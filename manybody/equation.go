package manybody

import (
	"errors"
	"strings"

	"github.com/katalvlaran/secondq/algebra"
)

// Sentinel errors for equation extraction.
var (
	// ErrEmptyLabel is returned when no result-tensor label is given.
	ErrEmptyLabel = errors.New("manybody: empty result label")

	// ErrNilRegistry is returned if a nil registry is passed.
	ErrNilRegistry = errors.New("manybody: registry is nil")

	// ErrNilExpression is returned if a nil expression is passed.
	ErrNilExpression = errors.New("manybody: expression is nil")
)

// Equation is one projected working equation: the result tensor on the
// left, a single operator-free term on the right. Terms contributing to
// the same result accumulate as separate equations sharing a Result
// shape; summing their right-hand sides gives the full residual.
type Equation struct {
	Result algebra.Tensor
	Rhs    algebra.Term
}

// Signature is the residual shape key of the equation: the space
// labels of the result's lower (annihilated) indices, a '|', then the
// labels of its upper (created) indices. The scalar equation's
// signature is "|".
func (q Equation) Signature() string {
	var b strings.Builder
	for _, idx := range q.Result.Lower {
		b.WriteByte(idx.Space)
	}
	b.WriteByte('|')
	for _, idx := range q.Result.Upper {
		b.WriteByte(idx.Space)
	}

	return b.String()
}

// String renders "R^{v0,v1}_{o0,o1} = 1/2 f^{v0}_{o0} t^{o1}_{v1}".
func (q Equation) String() string {
	return q.Result.String() + " = " + q.Rhs.String()
}
