package index

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/fockspace/binary"
	"github.com/hupe1980/fockspace/internal/conv"
)

// Positions answers "where is state s in this list" in O(log n).
// It is immutable after construction and safe for concurrent use.
type Positions struct {
	rb    *roaring.Bitmap
	byVal map[binary.SpinState]int // only for lists that are not strictly increasing
	n     int
}

// New indexes states. States must fit into 32 bits.
func New(states []binary.SpinState) (*Positions, error) {
	rb := roaring.New()
	increasing := true
	for i, s := range states {
		v, err := conv.StateToUint32(s)
		if err != nil {
			return nil, err
		}
		if i > 0 && states[i-1] >= s {
			increasing = false
		}
		rb.Add(v)
	}
	rb.RunOptimize()

	p := &Positions{rb: rb, n: len(states)}
	if !increasing {
		p.byVal = make(map[binary.SpinState]int, len(states))
		for i, s := range states {
			if _, dup := p.byVal[s]; !dup {
				p.byVal[s] = i
			}
		}
	}
	return p, nil
}

// Position returns the index of s in the indexed list.
func (p *Positions) Position(s binary.SpinState) (int, bool) {
	if uint64(s) > uint64(^uint32(0)) {
		return 0, false
	}
	v := uint32(s)
	if !p.rb.Contains(v) {
		return 0, false
	}
	if p.byVal != nil {
		i, ok := p.byVal[s]
		return i, ok
	}
	return int(p.rb.Rank(v)) - 1, true
}

// Contains reports whether s is in the indexed list.
func (p *Positions) Contains(s binary.SpinState) bool {
	if uint64(s) > uint64(^uint32(0)) {
		return false
	}
	return p.rb.Contains(uint32(s))
}

// Len returns the length of the indexed list.
func (p *Positions) Len() int {
	return p.n
}

// Cardinality returns the number of distinct indexed states.
func (p *Positions) Cardinality() uint64 {
	return p.rb.GetCardinality()
}

// Iterator yields the distinct indexed states in ascending order.
func (p *Positions) Iterator() iter.Seq[binary.SpinState] {
	return func(yield func(binary.SpinState) bool) {
		it := p.rb.Iterator()
		for it.HasNext() {
			if !yield(binary.SpinState(it.Next())) {
				return
			}
		}
	}
}
