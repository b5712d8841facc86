package bch_test

import (
	"fmt"

	"github.com/katalvlaran/secondq/algebra"
	"github.com/katalvlaran/secondq/bch"
	"github.com/katalvlaran/secondq/space"
)

// ExampleCommutator commutes the deexcitation block of a one-body
// operator with a singles excitation; the blocks do not commute, so
// both orderings survive with opposite signs.
func ExampleCommutator() {
	reg := space.NewRegistry()
	_ = reg.AddSpace('o', space.Fermion, space.Occupied, []string{"i", "j"})
	_ = reg.AddSpace('v', space.Fermion, space.Unoccupied, []string{"a", "b"})
	reg.Freeze()

	f, _ := algebra.OperatorExpr(reg, "f", []string{"o+ v"}, algebra.Nonsymmetric)
	t1, _ := algebra.OperatorExpr(reg, "t", []string{"v+ o"}, algebra.Nonsymmetric)

	c, err := bch.Commutator(reg, f, t1)
	if err != nil {
		fmt.Println("commutator:", err)

		return
	}
	fmt.Println(c)
	// Output:
	// f^{v0}_{o0} t^{o1}_{v1} a+(o0) a-(v0) a+(v1) a-(o1)
	// -f^{v0}_{o0} t^{o1}_{v1} a+(v1) a-(o1) a+(o0) a-(v0)
}
