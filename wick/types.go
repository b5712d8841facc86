package wick

import (
	"errors"
	"fmt"
)

// Sentinel errors for contraction calls.
var (
	// ErrInvalidRankWindow is returned when minrank < 0 or minrank > maxrank.
	ErrInvalidRankWindow = errors.New("wick: invalid rank window")

	// ErrTooManyOperators is returned for a term with more operator
	// slots than fit the search bitset.
	ErrTooManyOperators = errors.New("wick: term exceeds 64 operators")

	// ErrBadOption is returned when an invalid Option is supplied.
	ErrBadOption = errors.New("wick: invalid option supplied")

	// ErrNilRegistry is returned if a nil registry is passed.
	ErrNilRegistry = errors.New("wick: registry is nil")

	// ErrNilExpression is returned if a nil expression is passed.
	ErrNilExpression = errors.New("wick: expression is nil")
)

// maxSlots is the search bitset width: one machine word of operator slots.
const maxSlots = 64

// Option configures contraction via functional arguments. An invalid
// option is recorded internally and surfaced as ErrBadOption when
// Contract is invoked.
type Option func(*Options)

// Options holds contraction tunables.
type Options struct {
	// Workers is the number of goroutines contracting terms; 1 means
	// the single-threaded reference semantics. The result is identical
	// either way: per-term results merge in input order.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the reference configuration: one worker.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// WithWorkers sets the worker-pool size for per-term fan-out.
//
//	n == 1: single-threaded reference semantics
//	n > 1:  n concurrent term searches
//	n < 1:  invalid option → ErrBadOption
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1, got %d", ErrBadOption, n)

			return
		}
		o.Workers = n
	}
}
