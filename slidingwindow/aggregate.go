package slidingwindow

// Number is any value a running Sum can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Sum is a running total of the window.
type Sum[N Number] struct {
	Total N
}

func (s *Sum[N]) Add(x N)    { s.Total += x }
func (s *Sum[N]) Remove(x N) { s.Total -= x }
func (s *Sum[N]) Reset()     { s.Total = 0 }

// Count tracks how many window elements satisfy Match.
type Count[T any] struct {
	Match func(x T) bool
	N     int
}

func (c *Count[T]) Add(x T) {
	if c.Match(x) {
		c.N++
	}
}

func (c *Count[T]) Remove(x T) {
	if c.Match(x) {
		c.N--
	}
}

func (c *Count[T]) Reset() { c.N = 0 }
