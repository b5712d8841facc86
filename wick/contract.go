package wick

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/secondq/algebra"
	"github.com/katalvlaran/secondq/space"
)

// Contract applies Wick's theorem to every term of expr and returns
// the canonicalized sum of all contractions whose residual operator
// count lies in [minrank, maxrank]. The input expression is read as
// constructed: contract first, canonicalize after (the result already
// is). minrank = maxrank = 0 asks for the full vacuum expectation
// value; see NormalOrder for the widest window.
func Contract(reg *space.Registry, expr *algebra.Expression, minrank, maxrank int, opts ...Option) (*algebra.Expression, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if expr == nil {
		return nil, ErrNilExpression
	}
	if minrank < 0 || minrank > maxrank {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRankWindow, minrank, maxrank)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	terms := expr.Terms()
	results := make([][]algebra.Term, len(terms))
	errs := make([]error, len(terms))
	if o.Workers == 1 || len(terms) < 2 {
		for i, t := range terms {
			results[i], errs[i] = contractTerm(reg, t, minrank, maxrank)
		}
	} else {
		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < o.Workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					results[i], errs[i] = contractTerm(reg, terms[i], minrank, maxrank)
				}
			}()
		}
		for i := range terms {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	// Merge in input order so the worker count never shows in the output.
	out := algebra.NewExpression()
	for i := range terms {
		if errs[i] != nil {
			return nil, errs[i]
		}
		for _, t := range results[i] {
			if err := out.Add(t); err != nil {
				return nil, err
			}
		}
	}

	return out.Canonicalize(reg)
}

// NormalOrder is Contract with the widest rank window: every
// contraction from the fully contracted part up to the bare residual,
// which is the vacuum normal-ordered form of the expression.
func NormalOrder(reg *space.Registry, expr *algebra.Expression, opts ...Option) (*algebra.Expression, error) {
	if expr == nil {
		return nil, ErrNilExpression
	}
	maxrank := 0
	for _, t := range expr.Terms() {
		if len(t.Ops) > maxrank {
			maxrank = len(t.Ops)
		}
	}

	return Contract(reg, expr, 0, maxrank, opts...)
}

// contractTerm runs the matching search for one input term: general
// operator indices are branched over their elementary components, then
// each branch is enumerated independently.
func contractTerm(reg *space.Registry, t algebra.Term, minrank, maxrank int) ([]algebra.Term, error) {
	split, err := splitGeneral(reg, t)
	if err != nil {
		return nil, err
	}
	var out []algebra.Term
	for _, branch := range split {
		st, err := newSearchState(reg, branch, minrank, maxrank)
		if err != nil {
			return nil, err
		}
		out = append(out, st.run(branch)...)
	}

	return out, nil
}
