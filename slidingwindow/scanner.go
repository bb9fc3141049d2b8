// Package slidingwindow solves contiguous-window puzzles with one shared
// single-pass scanner.
package slidingwindow

import "fmt"

// Policy selects how the left edge of the window follows the right edge.
type Policy int

const (
	// FixedWidth visits every window of exactly Width elements.
	FixedWidth Policy = iota
	// ShrinkWhileInvalid drops elements from the left until Valid holds,
	// then visits the window. Used for violation budgets.
	ShrinkWhileInvalid
	// ShrinkWhileValid visits and drops from the left for as long as Valid
	// holds. Used for coverage requirements.
	ShrinkWhileValid
	// ResetOnMiss empties the window when Admit rejects an element, and
	// otherwise behaves like ShrinkWhileInvalid.
	ResetOnMiss
)

func (p Policy) String() string {
	switch p {
	case FixedWidth:
		return "fixed-width"
	case ShrinkWhileInvalid:
		return "shrink-while-invalid"
	case ShrinkWhileValid:
		return "shrink-while-valid"
	case ResetOnMiss:
		return "reset-on-miss"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// Window is the aggregate kept in step with the scanned range. It must
// reflect exactly the elements added and not yet removed.
type Window[T any] interface {
	Add(x T)
	Remove(x T)
}

type resetter interface {
	Reset()
}

// Scanner walks a sequence once, left to right.
type Scanner[T any] struct {
	Policy Policy

	// Width is the window size for FixedWidth.
	Width int
	// Valid reports whether the current window is acceptable. Required by
	// every policy except FixedWidth. An empty window is expected to be valid
	// under ShrinkWhileInvalid and ResetOnMiss.
	Valid func() bool
	// Admit decides whether an element may enter the window under
	// ResetOnMiss.
	Admit func(x T) bool
}

// Scan feeds seq through w and calls visit with the half-open range
// [left, right) of each window the policy yields. A false return from visit
// stops the scan.
func (s Scanner[T]) Scan(seq []T, w Window[T], visit func(left, right int) bool) error {
	if err := s.check(); err != nil {
		return err
	}

	switch s.Policy {
	case FixedWidth:
		s.fixed(seq, w, visit)
	case ShrinkWhileInvalid:
		s.shrinkInvalid(seq, w, visit)
	case ShrinkWhileValid:
		s.shrinkValid(seq, w, visit)
	case ResetOnMiss:
		s.resetOnMiss(seq, w, visit)
	}
	return nil
}

func (s Scanner[T]) check() error {
	switch s.Policy {
	case FixedWidth:
		if s.Width <= 0 {
			return fmt.Errorf("%s: width %d: %w", s.Policy, s.Width, ErrInvalidWidth)
		}
	case ShrinkWhileInvalid, ShrinkWhileValid:
		if s.Valid == nil {
			return fmt.Errorf("%s: %w", s.Policy, ErrMissingPredicate)
		}
	case ResetOnMiss:
		if s.Valid == nil {
			return fmt.Errorf("%s: %w", s.Policy, ErrMissingPredicate)
		}
		if s.Admit == nil {
			return fmt.Errorf("%s: %w", s.Policy, ErrMissingAdmit)
		}
	default:
		return fmt.Errorf("%s: %w", s.Policy, ErrUnknownPolicy)
	}
	return nil
}

func (s Scanner[T]) fixed(seq []T, w Window[T], visit func(left, right int) bool) {
	left := 0
	for right := range seq {
		w.Add(seq[right])
		if right-left+1 < s.Width {
			continue
		}
		if !visit(left, right+1) {
			return
		}
		w.Remove(seq[left])
		left++
	}
}

func (s Scanner[T]) shrinkInvalid(seq []T, w Window[T], visit func(left, right int) bool) {
	left := 0
	for right := range seq {
		w.Add(seq[right])
		for left <= right && !s.Valid() {
			w.Remove(seq[left])
			left++
		}
		if !visit(left, right+1) {
			return
		}
	}
}

func (s Scanner[T]) shrinkValid(seq []T, w Window[T], visit func(left, right int) bool) {
	left := 0
	for right := range seq {
		w.Add(seq[right])
		for left <= right && s.Valid() {
			if !visit(left, right+1) {
				return
			}
			w.Remove(seq[left])
			left++
		}
	}
}

func (s Scanner[T]) resetOnMiss(seq []T, w Window[T], visit func(left, right int) bool) {
	left := 0
	for right := range seq {
		if !s.Admit(seq[right]) {
			clearWindow(seq[left:right], w)
			left = right + 1
			continue
		}
		w.Add(seq[right])
		for left <= right && !s.Valid() {
			w.Remove(seq[left])
			left++
		}
		if !visit(left, right+1) {
			return
		}
	}
}

// clearWindow empties w, which currently holds exactly inside.
func clearWindow[T any](inside []T, w Window[T]) {
	if r, ok := w.(resetter); ok {
		r.Reset()
		return
	}
	for _, x := range inside {
		w.Remove(x)
	}
}
