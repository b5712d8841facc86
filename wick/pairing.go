package wick

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/katalvlaran/secondq/algebra"
	"github.com/katalvlaran/secondq/space"
)

// searchState is the per-term matching search: the operator slots of
// one elementary-space term with their resolved statistics, occupation
// kinds and automorphism classes, plus the rank window.
type searchState struct {
	ops     []algebra.Operator
	fermion []bool
	kind    []space.SpaceType
	class   []int // interchangeable-slot class id, -1 for none
	minrank int
	maxrank int
}

// choice is one branch at a slot: leave it uncontracted (partner -1)
// or pair it with a later slot, weighted by the size of the partner's
// interchangeable class.
type choice struct {
	partner int
	weight  int
}

// newSearchState resolves every operator slot through the registry.
// The caller has already branched general spaces away.
func newSearchState(reg *space.Registry, t algebra.Term, minrank, maxrank int) (*searchState, error) {
	if len(t.Ops) > maxSlots {
		return nil, fmt.Errorf("%w: %d slots in %q", ErrTooManyOperators, len(t.Ops), t.Key())
	}
	st := &searchState{
		ops:     t.Ops,
		fermion: make([]bool, len(t.Ops)),
		kind:    make([]space.SpaceType, len(t.Ops)),
		minrank: minrank,
		maxrank: maxrank,
	}
	for i, op := range t.Ops {
		sp, err := reg.Resolve(op.Index.Space)
		if err != nil {
			return nil, err
		}
		st.fermion[i] = sp.Field == space.Fermion
		st.kind[i] = sp.Kind
	}
	st.class = st.operatorClasses(t)

	return st, nil
}

// canPair reports whether slots i < j form a vacuum contraction: one
// space, opposite kinds, in the order the occupation makes nonzero
// (creation left over an occupied space, annihilation left over an
// unoccupied one).
func (st *searchState) canPair(i, j int) bool {
	a, b := st.ops[i], st.ops[j]
	if a.Index.Space != b.Index.Space || a.Kind == b.Kind {
		return false
	}
	switch st.kind[i] {
	case space.Occupied:
		return a.Kind == algebra.Create
	case space.Unoccupied:
		return a.Kind == algebra.Annihilate
	default:
		panic("wick: general-space operator survived component splitting")
	}
}

// choices enumerates the branches at slot s given the consumed-slot
// bitset and the committed residual size. The rank window prunes here:
// a branch appears only if some completion can land inside the window.
// Eligible partners sharing an interchangeable class collapse to their
// lowest member, weighted by the class's unused size.
func (st *searchState) choices(s int, used uint64, freeCount int) []choice {
	n := len(st.ops)
	d := 0
	for p := s + 1; p < n; p++ {
		if used&(1<<uint(p)) == 0 {
			d++
		}
	}
	var out []choice
	if freeCount+1 <= st.maxrank && freeCount+1+d >= st.minrank {
		out = append(out, choice{partner: -1, weight: 1})
	}
	if freeCount+d-1 < st.minrank {
		return out
	}
	counted := make(map[int]bool)
	for p := s + 1; p < n; p++ {
		if used&(1<<uint(p)) != 0 || !st.canPair(s, p) {
			continue
		}
		cls := st.class[p]
		if cls < 0 {
			out = append(out, choice{partner: p, weight: 1})

			continue
		}
		if counted[cls] {
			continue
		}
		counted[cls] = true
		w := 0
		for q := s + 1; q < n; q++ {
			if used&(1<<uint(q)) == 0 && st.class[q] == cls && st.canPair(s, q) {
				w++
			}
		}
		out = append(out, choice{partner: p, weight: w})
	}

	return out
}

// run enumerates every matching of base's operator slots whose residual
// lands in the rank window, on an explicit frame stack. Slots are
// decided left to right, so the left members of committed pairs are
// strictly increasing and the free list stays in slot order.
func (st *searchState) run(base algebra.Term) []algebra.Term {
	n := len(st.ops)
	full := uint64(0)
	if n > 0 {
		full = ^uint64(0) >> uint(64-n)
	}

	var (
		out    []algebra.Term
		used   uint64
		pairs  [][2]int
		free   []int
		weight = 1
	)

	type frame struct {
		slot    int
		choices []choice
		next    int
		applied int
	}
	var stack []frame

	push := func() bool {
		s := bits.TrailingZeros64(^used & full)
		if s >= n {
			return false
		}
		stack = append(stack, frame{
			slot:    s,
			choices: st.choices(s, used, len(free)),
			applied: -1,
		})

		return true
	}
	emit := func() {
		if st.minrank <= len(free) && len(free) <= st.maxrank {
			out = append(out, st.emit(base, pairs, free, weight))
		}
	}

	if !push() {
		emit()

		return out
	}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.applied >= 0 {
			c := f.choices[f.applied]
			if c.partner < 0 {
				free = free[:len(free)-1]
				used &^= 1 << uint(f.slot)
			} else {
				pairs = pairs[:len(pairs)-1]
				used &^= 1<<uint(f.slot) | 1<<uint(c.partner)
			}
			weight /= c.weight
			f.applied = -1
		}
		if f.next >= len(f.choices) {
			stack = stack[:len(stack)-1]

			continue
		}
		c := f.choices[f.next]
		f.applied = f.next
		f.next++
		if c.partner < 0 {
			free = append(free, f.slot)
			used |= 1 << uint(f.slot)
		} else {
			pairs = append(pairs, [2]int{f.slot, c.partner})
			used |= 1<<uint(f.slot) | 1<<uint(c.partner)
		}
		weight *= c.weight
		if !push() {
			emit()
		}
	}

	return out
}

// wickSign is the parity of fermion-only inversions in the target slot
// sequence: committed pairs (already sorted by left slot, left member
// first), then the free slots in order. Transpositions past bosons are
// sign-free.
func wickSign(fermion []bool, pairs [][2]int, free []int) int {
	seq := make([]int, 0, 2*len(pairs)+len(free))
	for _, p := range pairs {
		seq = append(seq, p[0], p[1])
	}
	seq = append(seq, free...)
	inv := 0
	for i := 0; i < len(seq); i++ {
		if !fermion[seq[i]] {
			continue
		}
		for j := i + 1; j < len(seq); j++ {
			if fermion[seq[j]] && seq[j] < seq[i] {
				inv++
			}
		}
	}
	if inv%2 == 1 {
		return -1
	}

	return 1
}

// emit realizes one matching as a term: residual operators in original
// order, contracted index pairs merged to their smallest representative
// everywhere, and a delta trace appended for every merged chain whose
// representative survives nowhere else.
func (st *searchState) emit(base algebra.Term, pairs [][2]int, free []int, weight int) algebra.Term {
	parent := make(map[algebra.Index]algebra.Index)
	find := func(x algebra.Index) algebra.Index {
		for {
			p, ok := parent[x]
			if !ok {
				return x
			}
			x = p
		}
	}
	for _, p := range pairs {
		ra, rb := find(st.ops[p[0]].Index), find(st.ops[p[1]].Index)
		if ra == rb {
			continue
		}
		if rb.Less(ra) {
			ra, rb = rb, ra
		}
		parent[rb] = ra
	}

	sub := make(map[algebra.Index]algebra.Index)
	var roots []algebra.Index
	seenRoot := make(map[algebra.Index]bool)
	for _, p := range pairs {
		for _, s := range [2]int{p[0], p[1]} {
			idx := st.ops[s].Index
			r := find(idx)
			if r != idx {
				sub[idx] = r
			}
			if !seenRoot[r] {
				seenRoot[r] = true
				roots = append(roots, r)
			}
		}
	}

	res := make([]algebra.Operator, 0, len(free))
	for _, s := range free {
		res = append(res, st.ops[s])
	}
	sign := wickSign(st.fermion, pairs, free)
	coef := new(big.Rat).Mul(base.Coef, big.NewRat(int64(sign*weight), 1))
	out := algebra.NewTerm(coef, base.Tensors, res).Reindex(sub)

	present := make(map[algebra.Index]bool)
	for _, idx := range out.Indices() {
		present[idx] = true
	}
	for _, r := range roots {
		if !present[r] {
			out.Tensors = append(out.Tensors,
				algebra.NewTensor("delta", []algebra.Index{r}, []algebra.Index{r}, algebra.Nonsymmetric))
			present[r] = true
		}
	}

	return out
}

// operatorClasses groups the term's operator slots into interchangeable
// classes: slots whose transposition is a sign-preserving automorphism
// of the whole term. Two slots qualify when they share kind and space
// and their indices sit as single occurrences on the same side of the
// same antisymmetric tensor (fermions) or symmetric tensor (bosons);
// a bare boson slot pairs with other bare slots of its space. Bare
// fermion slots never qualify: their transposition flips the sign.
//
// Pairing eligibility depends on slot order, so index interchangeability
// alone is not enough: members separated by a foreign slot can sit on
// opposite sides of an eligible opposite-kind slot, and their branches
// then complete differently. Only maximal runs of consecutive slots are
// kept as classes; everything else is enumerated in full.
func (st *searchState) operatorClasses(t algebra.Term) []int {
	type key struct {
		kind   algebra.OpKind
		space  byte
		tensor int
		side   int
	}

	opCount := make(map[algebra.Index]int)
	for _, op := range t.Ops {
		opCount[op.Index]++
	}
	type placement struct {
		tensor, side, count int
	}
	where := make(map[algebra.Index]placement)
	for ti, f := range t.Tensors {
		for _, idx := range f.Upper {
			p := where[idx]
			where[idx] = placement{tensor: ti, side: 0, count: p.count + 1}
		}
		for _, idx := range f.Lower {
			p := where[idx]
			where[idx] = placement{tensor: ti, side: 1, count: p.count + 1}
		}
	}

	ids := make(map[key]int)
	class := make([]int, len(t.Ops))
	for i, op := range t.Ops {
		class[i] = -1
		if opCount[op.Index] != 1 {
			continue
		}
		p, bound := where[op.Index]
		if bound && p.count != 1 {
			continue
		}
		k := key{kind: op.Kind, space: op.Index.Space, tensor: -1, side: 0}
		switch {
		case !bound:
			if st.fermion[i] {
				continue
			}
		case t.Tensors[p.tensor].Symmetry == algebra.Antisymmetric:
			if !st.fermion[i] {
				continue
			}
			k.tensor, k.side = p.tensor, p.side
		case t.Tensors[p.tensor].Symmetry == algebra.Symmetric:
			if st.fermion[i] {
				continue
			}
			k.tensor, k.side = p.tensor, p.side
		default:
			continue
		}
		id, ok := ids[k]
		if !ok {
			id = len(ids)
			ids[k] = id
		}
		class[i] = id
	}

	return splitRuns(class)
}

// splitRuns rewrites a class assignment so that only maximal runs of
// consecutive equally-classed slots survive, each run under a fresh id.
// Runs of length one carry no weight and are dropped to -1.
func splitRuns(class []int) []int {
	out := make([]int, len(class))
	next := 0
	for i := 0; i < len(class); {
		if class[i] < 0 {
			out[i] = -1
			i++

			continue
		}
		j := i
		for j+1 < len(class) && class[j+1] == class[i] {
			j++
		}
		id := -1
		if j > i {
			id = next
			next++
		}
		for k := i; k <= j; k++ {
			out[k] = id
		}
		i = j + 1
	}

	return out
}
