package algebra

import "github.com/katalvlaran/secondq/space"

// OperatorExpr builds the many-body operator with the given tensor
// label from mini-language components: one term per component,
//
//	label^{annihilated indices}_{created indices} · operator product
//
// with coefficient 1. Following the usual excitation-operator
// convention, annihilation operators carry their per-space ordinals in
// reverse token order and the tensor's upper list reads the
// annihilated indices right to left, so for example "v+ v+ o o" yields
//
//	T^{o0,o1}_{v0,v1} a+(v0) a+(v1) a-(o1) a-(o0)
//
// The symmetry is declared on the tensor (Antisymmetric for
// antisymmetrized amplitudes and integrals).
func OperatorExpr(reg *space.Registry, label string, components []string, sym Symmetry) (*Expression, error) {
	e := NewExpression()
	for _, comp := range components {
		t, err := operatorTerm(reg, label, comp, sym)
		if err != nil {
			return nil, err
		}
		if err = e.Add(t); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// operatorTerm builds one component term of OperatorExpr.
func operatorTerm(reg *space.Registry, label, component string, sym Symmetry) (Term, error) {
	tokens, err := parseOpTokens(reg, component)
	if err != nil {
		return Term{}, err
	}

	next := make(map[byte]int)
	idxs := make([]Index, len(tokens))
	// Creation tokens take per-space ordinals in token order.
	for i, tok := range tokens {
		if tok.cre {
			idxs[i] = NewIndex(tok.label, next[tok.label])
			next[tok.label]++
		}
	}
	// Annihilation tokens take the following ordinals in reverse token
	// order within each space.
	annPos := make(map[byte][]int)
	var annOrder []byte
	for i, tok := range tokens {
		if !tok.cre {
			if _, ok := annPos[tok.label]; !ok {
				annOrder = append(annOrder, tok.label)
			}
			annPos[tok.label] = append(annPos[tok.label], i)
		}
	}
	for _, lab := range annOrder {
		positions := annPos[lab]
		n := len(positions)
		for k, pos := range positions {
			idxs[pos] = NewIndex(lab, next[lab]+n-1-k)
		}
		next[lab] += n
	}

	ops := make([]Operator, len(tokens))
	var lower []Index
	for i, tok := range tokens {
		if tok.cre {
			ops[i] = Cre(idxs[i])
			lower = append(lower, idxs[i])
		} else {
			ops[i] = Ann(idxs[i])
		}
	}
	var upper []Index
	for i := len(tokens) - 1; i >= 0; i-- {
		if !tokens[i].cre {
			upper = append(upper, idxs[i])
		}
	}

	return NewTerm(nil, []Tensor{NewTensor(label, upper, lower, sym)}, ops), nil
}
