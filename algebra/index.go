package algebra

import "strconv"

// Index is a handle to one summation index of an orbital space:
// the space label plus an ordinal within the term that uses it.
// Index is a comparable value; terms own their indices and rename
// them freely as long as the renaming is a per-space bijection.
type Index struct {
	Space byte
	Ord   int
}

// NewIndex returns the ordinal-th index of the given space.
func NewIndex(space byte, ord int) Index {
	return Index{Space: space, Ord: ord}
}

// Less orders indices by space label, then ordinal.
func (i Index) Less(j Index) bool {
	if i.Space != j.Space {
		return i.Space < j.Space
	}

	return i.Ord < j.Ord
}

// String renders the compact form used everywhere in dumps: "o0".
func (i Index) String() string {
	return string(i.Space) + strconv.Itoa(i.Ord)
}
