package algebra

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/secondq/space"
)

// OpKind distinguishes creation from annihilation operators.
type OpKind uint8

const (
	// Annihilate is the a⁻ (unsuffixed) operator kind.
	Annihilate OpKind = iota
	// Create is the a⁺ operator kind.
	Create
)

// Operator is a single second-quantized operator over an index.
// Its statistics (fermion/boson) are those of the index's space and
// are resolved through the registry by whichever algorithm needs them.
type Operator struct {
	Kind  OpKind
	Index Index
}

// Cre returns a creation operator over idx.
func Cre(idx Index) Operator { return Operator{Kind: Create, Index: idx} }

// Ann returns an annihilation operator over idx.
func Ann(idx Index) Operator { return Operator{Kind: Annihilate, Index: idx} }

// String renders "a+(o0)" for creation and "a-(o0)" for annihilation.
func (o Operator) String() string {
	if o.Kind == Create {
		return "a+(" + o.Index.String() + ")"
	}

	return "a-(" + o.Index.String() + ")"
}

// opToken is one parsed mini-language token: a space label with the
// creation flag from the '+' suffix.
type opToken struct {
	label byte
	cre   bool
}

// parseOpTokens splits an operator mini-language string into tokens
// and validates every label against the registry.
func parseOpTokens(reg *space.Registry, s string) ([]opToken, error) {
	fields := strings.Fields(s)
	tokens := make([]opToken, 0, len(fields))
	for _, f := range fields {
		cre := strings.HasSuffix(f, "+")
		label := strings.TrimSuffix(f, "+")
		if len(label) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrBadOperatorToken, f)
		}
		if _, err := reg.Resolve(label[0]); err != nil {
			return nil, err
		}
		tokens = append(tokens, opToken{label: label[0], cre: cre})
	}

	return tokens, nil
}

// ParseOperators parses the operator mini-language: a whitespace-
// separated token sequence where each token is a registered space
// label, suffixed with '+' for creation ("v+ v+ o o"). Index ordinals
// are assigned per space in token order; the empty string is the
// identity (no operators).
func ParseOperators(reg *space.Registry, s string) ([]Operator, error) {
	tokens, err := parseOpTokens(reg, s)
	if err != nil {
		return nil, err
	}
	next := make(map[byte]int)
	ops := make([]Operator, 0, len(tokens))
	for _, tok := range tokens {
		idx := NewIndex(tok.label, next[tok.label])
		next[tok.label]++
		if tok.cre {
			ops = append(ops, Cre(idx))
		} else {
			ops = append(ops, Ann(idx))
		}
	}

	return ops, nil
}
