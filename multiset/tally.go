package multiset

// Tally is a window multiset measured against a fixed requirement.
//
// Every Add and Remove updates three counters in O(1), so equality with the
// requirement, coverage of it, and overflow past it are answered without
// walking either map.
type Tally[T comparable] struct {
	need *Multiset[T]
	have *Multiset[T]

	unmatched int // keys where have != need
	uncovered int // required keys where have < need
	surplus   int // keys where have > need
}

// NewTally copies need; later changes to need do not affect the tally.
func NewTally[T comparable](need *Multiset[T]) *Tally[T] {
	t := &Tally[T]{
		need: need.Clone(),
		have: New[T](),
	}
	t.Reset()
	return t
}

func (t *Tally[T]) Add(x T) {
	h, n := t.have.Count(x), t.need.Count(x)
	switch {
	case h == n:
		t.unmatched++
		t.surplus++
	case h+1 == n:
		t.unmatched--
		t.uncovered--
	}
	t.have.Add(x)
}

// Remove takes one x out of the window. Removing an absent element is a
// no-op.
func (t *Tally[T]) Remove(x T) {
	h, n := t.have.Count(x), t.need.Count(x)
	if h == 0 {
		return
	}
	switch {
	case h == n:
		t.unmatched++
		t.uncovered++
	case h-1 == n:
		t.unmatched--
		t.surplus--
	}
	t.have.Remove(x)
}

// Matches reports whether the window equals the requirement exactly.
func (t *Tally[T]) Matches() bool {
	return t.unmatched == 0
}

// Covered reports whether the window holds at least every required element.
func (t *Tally[T]) Covered() bool {
	return t.uncovered == 0
}

// Exceeded reports whether any element appears more often than required.
// Elements that are not required at all count as exceeding.
func (t *Tally[T]) Exceeded() bool {
	return t.surplus > 0
}

// Required reports whether x is part of the requirement.
func (t *Tally[T]) Required(x T) bool {
	return t.need.Contains(x)
}

// Len is the number of elements currently in the window.
func (t *Tally[T]) Len() int {
	return t.have.Len()
}

// Reset empties the window and keeps the requirement.
func (t *Tally[T]) Reset() {
	t.have.Reset()
	t.unmatched = t.need.Distinct()
	t.uncovered = t.need.Distinct()
	t.surplus = 0
}

// Window returns a copy of the current window contents.
func (t *Tally[T]) Window() *Multiset[T] {
	return t.have.Clone()
}
