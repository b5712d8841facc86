package wick_test

import (
	"fmt"

	"github.com/katalvlaran/secondq/algebra"
	"github.com/katalvlaran/secondq/space"
	"github.com/katalvlaran/secondq/wick"
)

// ExampleContract evaluates the reference expectation value <f·t1>:
// only the deexcitation block of the one-body operator survives against
// the singles excitation.
func ExampleContract() {
	reg := space.NewRegistry()
	_ = reg.AddSpace('o', space.Fermion, space.Occupied, []string{"i", "j"})
	_ = reg.AddSpace('v', space.Fermion, space.Unoccupied, []string{"a", "b"})
	reg.Freeze()

	f, _ := algebra.OperatorExpr(reg, "f", []string{"o+ o", "o+ v", "v+ o", "v+ v"}, algebra.Nonsymmetric)
	t1, _ := algebra.OperatorExpr(reg, "t", []string{"v+ o"}, algebra.Nonsymmetric)
	prod, _ := f.Mul(t1)

	vev, err := wick.Contract(reg, prod, 0, 0)
	if err != nil {
		fmt.Println("contract:", err)

		return
	}
	fmt.Println(vev)
	// Output:
	// f^{v0}_{o0} t^{o0}_{v0}
}
