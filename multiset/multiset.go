// Package multiset provides counted sets used as sliding-window aggregates.
package multiset

// Multiset counts occurrences of comparable elements. A key whose count
// drops to zero is deleted, so the key set only ever holds present elements.
type Multiset[T comparable] struct {
	counts map[T]int
	size   int
}

func New[T comparable]() *Multiset[T] {
	return &Multiset[T]{counts: make(map[T]int)}
}

// Of builds a multiset holding every item, duplicates counted.
func Of[T comparable](items ...T) *Multiset[T] {
	m := New[T]()
	for _, x := range items {
		m.Add(x)
	}
	return m
}

// FromString counts the bytes of s.
func FromString(s string) *Multiset[byte] {
	m := New[byte]()
	for i := 0; i < len(s); i++ {
		m.Add(s[i])
	}
	return m
}

func (m *Multiset[T]) Add(x T) {
	m.counts[x]++
	m.size++
}

// Remove decrements x and drops the key at zero. Removing an absent element
// is a no-op.
func (m *Multiset[T]) Remove(x T) {
	c, ok := m.counts[x]
	if !ok {
		return
	}
	if c == 1 {
		delete(m.counts, x)
	} else {
		m.counts[x] = c - 1
	}
	m.size--
}

func (m *Multiset[T]) Count(x T) int {
	return m.counts[x]
}

func (m *Multiset[T]) Contains(x T) bool {
	_, ok := m.counts[x]
	return ok
}

// Len returns the total number of elements, duplicates included.
func (m *Multiset[T]) Len() int {
	return m.size
}

// Distinct returns the number of distinct elements.
func (m *Multiset[T]) Distinct() int {
	return len(m.counts)
}

// Equal reports whether both multisets hold the same elements with the same
// counts. It runs in O(Distinct).
func (m *Multiset[T]) Equal(o *Multiset[T]) bool {
	if m.size != o.size || len(m.counts) != len(o.counts) {
		return false
	}
	for x, c := range m.counts {
		if o.counts[x] != c {
			return false
		}
	}
	return true
}

// Covers reports whether every element of o appears in m at least as often.
func (m *Multiset[T]) Covers(o *Multiset[T]) bool {
	if m.size < o.size {
		return false
	}
	for x, c := range o.counts {
		if m.counts[x] < c {
			return false
		}
	}
	return true
}

// Each calls fn for every distinct element in unspecified order.
func (m *Multiset[T]) Each(fn func(x T, count int)) {
	for x, c := range m.counts {
		fn(x, c)
	}
}

func (m *Multiset[T]) Reset() {
	clear(m.counts)
	m.size = 0
}

func (m *Multiset[T]) Clone() *Multiset[T] {
	c := &Multiset[T]{counts: make(map[T]int, len(m.counts)), size: m.size}
	for x, n := range m.counts {
		c.counts[x] = n
	}
	return c
}
