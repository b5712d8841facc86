// Package manybody turns a contracted, canonicalized operator
// expression into many-body working equations: terms are grouped by
// the shape of their residual operator block and each group is read as
// the right-hand side of one projected equation.
//
// What
//
//	Equations(reg, expr, label) groups every term of expr by its
//	residual signature, the space labels of the annihilated indices,
//	a '|', then the space labels of the created indices ("oo|vv" for a
//	doubles residual, "|" for the scalar part), and wraps each term as
//	an Equation: a result tensor carrying the residual indices and the
//	term's tensor factors as the right-hand side.
//
// Index identity
//
//	Residual indices are carried over verbatim, never relabeled: the
//	same dummies appear on the result tensor and inside the right-hand
//	side, so the equation can be read off (or code-generated) directly.
//
// Errors
//
//   - ErrEmptyLabel        a result tensor needs a nonempty label.
//   - ErrNilRegistry, ErrNilExpression guards.
//   - space.ErrUnknownSpace a residual operator over an unregistered space.
package manybody
