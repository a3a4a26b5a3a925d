package kaanon

// Limit caps how many items Take collects.
// The zero value is Count(0).
type Limit struct {
	n         int
	unbounded bool
}

// Unbounded makes Take drain the iterator.
var Unbounded = Limit{unbounded: true}

// Count limits Take to at most n items. Negative n is treated as 0.
func Count(n int) Limit {
	return Limit{n: max(n, 0)}
}

// IsUnbounded reports whether l drains the iterator.
func (l Limit) IsUnbounded() bool {
	return l.unbounded
}

// N returns the item cap. It is meaningless when l is unbounded.
func (l Limit) N() int {
	return l.n
}

func (l Limit) allows(taken int) bool {
	return l.unbounded || taken < l.n
}
