// Package secondq derives algebraic equations for many-body quantum
// theories by symbolic manipulation of second-quantized operators:
// from operator strings to canonical tensor-contraction equations.
//
// 🚀 What is secondq?
//
//	An exact, in-memory symbolic engine that brings together:
//		• Orbital spaces: fermion/boson spaces with vacuum occupation and pretty index names
//		• Operator algebra: creation/annihilation strings, tensors, exact rational coefficients
//		• Canonical forms: sign-tracked reordering, symmetry reduction, dummy relabeling
//		• Wick's theorem: all contractions within a requested rank window
//		• Commutators: nested commutators and the truncated BCH series
//		• Many-body equations: contracted terms grouped by external-index signature
//
// ✨ Why choose secondq?
//
//   - Exact by construction – big.Rat coefficients, no floating point anywhere
//   - Deterministic – canonical representatives make equal terms merge and cancel
//   - Pure Go – stdlib + testify only, no cgo, no hidden deps
//   - Bounded search – rank-window pruning inside the contraction enumeration
//
// Everything is organized under five subpackages:
//
//	space/    — orbital-space registry (labels, statistics, occupation, index names)
//	algebra/  — indices, operators, tensors, terms, expressions & canonicalization
//	wick/     — the Wick contraction engine
//	bch/      — commutator and Baker–Campbell–Hausdorff expansion
//	manybody/ — extraction of per-signature many-body equations
//
// Quick flavor:
//
//	reg := space.NewRegistry()
//	_ = reg.AddSpace('o', space.Fermion, space.Occupied, []string{"i", "j"})
//	_ = reg.AddSpace('v', space.Fermion, space.Unoccupied, []string{"a", "b"})
//	reg.Freeze()
//
//	f, _ := algebra.OperatorExpr(reg, "f", []string{"o+ o", "o+ v", "v+ o", "v+ v"}, algebra.Nonsymmetric)
//	t, _ := algebra.OperatorExpr(reg, "t", []string{"v+ o"}, algebra.Antisymmetric)
//	ft, _ := f.Mul(t)
//	energy, _ := wick.Contract(reg, ft, 0, 0) // f^{v0}_{o0} t^{o0}_{v0}
//
// Dive into each package's doc.go for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/secondq
package secondq
