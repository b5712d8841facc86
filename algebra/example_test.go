package algebra_test

import (
	"fmt"

	"github.com/katalvlaran/secondq/algebra"
	"github.com/katalvlaran/secondq/space"
)

// ExampleOperatorExpr builds an antisymmetrized doubles excitation
// operator from the mini-language.
func ExampleOperatorExpr() {
	reg := space.NewRegistry()
	_ = reg.AddSpace('o', space.Fermion, space.Occupied, []string{"i", "j"})
	_ = reg.AddSpace('v', space.Fermion, space.Unoccupied, []string{"a", "b"})
	reg.Freeze()

	t2, err := algebra.OperatorExpr(reg, "T", []string{"v+ v+ o o"}, algebra.Antisymmetric)
	if err != nil {
		fmt.Println("build:", err)

		return
	}
	fmt.Println(t2)
	// Output:
	// T^{o0,o1}_{v0,v1} a+(v0) a+(v1) a-(o1) a-(o0)
}

// ExampleExpression_Canonicalize shows the exact anticommutator rewrite
// a⁻(p)a⁺(p) = 1 − a⁺(p)a⁻(p) firing during canonicalization.
func ExampleExpression_Canonicalize() {
	reg := space.NewRegistry()
	_ = reg.AddSpace('o', space.Fermion, space.Occupied, []string{"i", "j"})
	reg.Freeze()

	p := algebra.NewIndex('o', 0)
	e, _ := algebra.FromTerms(algebra.NewTerm(nil, nil,
		[]algebra.Operator{algebra.Ann(p), algebra.Cre(p)}))

	c, err := e.Canonicalize(reg)
	if err != nil {
		fmt.Println("canonicalize:", err)

		return
	}
	fmt.Println(c)
	// Output:
	// -a+(o0) a-(o0)
	// +1
}
