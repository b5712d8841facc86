package algebra

import (
	"math/big"
	"strconv"
	"strings"
)

// LatexIndex renders an index for LaTeX output: "o_{0}".
func LatexIndex(i Index) string {
	return string(i.Space) + "_{" + strconv.Itoa(i.Ord) + "}"
}

// LatexOperator renders an operator in \hat{a} notation:
// "\hat{a}^{\dagger}_{v_{0}}" for creation, "\hat{a}_{o_{0}}" for
// annihilation.
func LatexOperator(o Operator) string {
	if o.Kind == Create {
		return `\hat{a}^{\dagger}_{` + LatexIndex(o.Index) + `}`
	}

	return `\hat{a}_{` + LatexIndex(o.Index) + `}`
}

// LatexTensor renders a tensor with superscript/subscript index lists:
// "f^{v_{0}}_{o_{0}}".
func LatexTensor(t Tensor) string {
	upper := make([]string, len(t.Upper))
	for i, idx := range t.Upper {
		upper[i] = LatexIndex(idx)
	}
	lower := make([]string, len(t.Lower))
	for i, idx := range t.Lower {
		lower[i] = LatexIndex(idx)
	}

	return t.Label + "^{" + strings.Join(upper, " ") + "}_{" + strings.Join(lower, " ") + "}"
}

// latexCoef renders sign and magnitude; a unit magnitude is omitted
// unless the term is a pure scalar.
func latexCoef(c *big.Rat, scalar bool) string {
	sign := "+"
	abs := new(big.Rat).Abs(c)
	if c.Sign() < 0 {
		sign = "-"
	}
	if abs.Cmp(big.NewRat(1, 1)) == 0 && !scalar {
		return sign
	}
	if abs.IsInt() {
		return sign + abs.Num().String()
	}

	return sign + `\frac{` + abs.Num().String() + `}{` + abs.Denom().String() + `}`
}

// Latex renders the term: coefficient, tensor factors, operator factors.
// A bare sign glues to the first factor ("-f^{...}"), a magnitude is
// space-separated.
func (t Term) Latex() string {
	var parts []string
	for _, f := range t.Tensors {
		parts = append(parts, LatexTensor(f))
	}
	for _, op := range t.Ops {
		parts = append(parts, LatexOperator(op))
	}
	coef := latexCoef(t.Coef, len(parts) == 0)
	if len(parts) == 0 {
		return coef
	}
	rest := strings.Join(parts, " ")
	if coef == "+" || coef == "-" {
		return coef + rest
	}

	return coef + " " + rest
}

// Latex renders the expression as term renderings joined by sep (for
// example " \\\\\n" for an aligned display), terms in insertion order.
// The first term drops a leading plus sign.
func (e *Expression) Latex(sep string) string {
	var b strings.Builder
	for i, k := range e.keys {
		s := e.terms[k].Latex()
		if i == 0 {
			s = strings.TrimPrefix(s, "+")
		} else {
			b.WriteString(sep)
		}
		b.WriteString(s)
	}

	return b.String()
}
