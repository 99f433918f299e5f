package vmath

import "math/bits"

// CellSet is a dense bitmap of cells inside fixed bounds
// Index = (y-MinY)*Width + (x-MinX); points outside bounds are never members
type CellSet struct {
	bounds Bounds
	width  int
	words  []uint64
	count  int
}

// NewCellSet creates an empty set over bounds
func NewCellSet(bounds Bounds) *CellSet {
	size := bounds.Size()
	return &CellSet{
		bounds: bounds,
		width:  max(bounds.Width(), 0),
		words:  make([]uint64, (size+63)/64),
	}
}

// FullCellSet creates a set holding every cell in bounds
func FullCellSet(bounds Bounds) *CellSet {
	s := NewCellSet(bounds)
	size := bounds.Size()
	for i := range s.words {
		s.words[i] = ^uint64(0)
	}
	if rem := size % 64; rem != 0 {
		s.words[len(s.words)-1] = (uint64(1) << rem) - 1
	}
	s.count = size
	return s
}

// Bounds returns the rectangle the set covers
func (s *CellSet) Bounds() Bounds {
	return s.bounds
}

func (s *CellSet) index(p Point) (int, bool) {
	if !s.bounds.Contains(p) {
		return 0, false
	}
	return (p.Y-s.bounds.MinY)*s.width + (p.X - s.bounds.MinX), true
}

// Add inserts p, ignoring points outside bounds
func (s *CellSet) Add(p Point) {
	i, ok := s.index(p)
	if !ok {
		return
	}
	w, b := i/64, uint64(1)<<(i%64)
	if s.words[w]&b == 0 {
		s.words[w] |= b
		s.count++
	}
}

// AddAll inserts every point
func (s *CellSet) AddAll(points []Point) {
	for _, p := range points {
		s.Add(p)
	}
}

// Has reports membership
func (s *CellSet) Has(p Point) bool {
	i, ok := s.index(p)
	if !ok {
		return false
	}
	return s.words[i/64]&(uint64(1)<<(i%64)) != 0
}

// Len returns the number of members
func (s *CellSet) Len() int {
	return s.count
}

// Equal reports whether both sets hold the same cells over the same bounds
func (s *CellSet) Equal(o *CellSet) bool {
	if o == nil || s.bounds != o.bounds || s.count != o.count {
		return false
	}
	for i := range s.words {
		if s.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

// Difference returns s minus o as a new set; bounds must match
func (s *CellSet) Difference(o *CellSet) *CellSet {
	out := NewCellSet(s.bounds)
	for i := range s.words {
		w := s.words[i]
		if o != nil && o.bounds == s.bounds {
			w &^= o.words[i]
		}
		out.words[i] = w
		out.count += bits.OnesCount64(w)
	}
	return out
}

// Clone returns an independent copy
func (s *CellSet) Clone() *CellSet {
	out := &CellSet{bounds: s.bounds, width: s.width, count: s.count, words: make([]uint64, len(s.words))}
	copy(out.words, s.words)
	return out
}

// Each calls fn for every member in row-major order
func (s *CellSet) Each(fn func(Point)) {
	for wi, w := range s.words {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			i := wi*64 + bit
			fn(Point{Y: s.bounds.MinY + i/s.width, X: s.bounds.MinX + i%s.width})
			w &= w - 1
		}
	}
}

// Points returns members in row-major order
func (s *CellSet) Points() []Point {
	out := make([]Point, 0, s.count)
	s.Each(func(p Point) { out = append(out, p) })
	return out
}
