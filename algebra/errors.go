package algebra

import "errors"

// Sentinel errors for expression construction and manipulation.
var (
	// ErrIndexArityMismatch is returned when a tensor label is used
	// with a different number of upper/lower indices than before.
	ErrIndexArityMismatch = errors.New("algebra: tensor arity mismatch")

	// ErrBadIndexMap is returned by Reindex for a non-injective map.
	ErrBadIndexMap = errors.New("algebra: reindex map is not injective")

	// ErrBadOperatorToken is returned for a malformed operator
	// mini-language token.
	ErrBadOperatorToken = errors.New("algebra: malformed operator token")

	// ErrNilExpression is returned when a nil expression operand is passed.
	ErrNilExpression = errors.New("algebra: expression is nil")
)
