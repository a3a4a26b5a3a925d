package kaanon

// Mapper converts a pulled entry key into the iterator's result type.
// ok is false once the iterator is exhausted, in which case key is empty
// and the mapper must return the exhaustion value. Mappers have to be
// total: they are called with ok == false and must not panic on it.
type Mapper[T any] func(key string, ok bool) T

// IdentityMapper returns the key unchanged and "" when exhausted.
func IdentityMapper(key string, ok bool) string {
	if !ok {
		return ""
	}
	return key
}

// Iterator is a pull-based cursor over one shuffled candidate list.
// Running past the end is not an error: Next keeps returning the mapped
// exhaustion value. An Iterator must not be used from several goroutines
// at once.
type Iterator[T any] struct {
	candidates []string
	mapper     Mapper[T]
	done       bool
}

// New builds an iterator over d with its own random permutation of the
// matching entries. It panics when d or mapper is nil.
func New[T any](d *Dataset, mapper Mapper[T], opts ...Option) *Iterator[T] {
	return newIterator(d, mapper, nil, opts)
}

// Strings builds an iterator yielding raw entry keys.
func Strings(d *Dataset, opts ...Option) *Iterator[string] {
	return New[string](d, IdentityMapper, opts...)
}

func newIterator[T any](d *Dataset, mapper Mapper[T], base, opts []Option) *Iterator[T] {
	if d == nil {
		panic(ErrNilDataset)
	}
	if mapper == nil {
		panic(ErrNilMapper)
	}

	o := applyOptions(base, opts)

	return &Iterator[T]{
		candidates: Candidates(d, o.categories, o.source),
		mapper:     mapper,
	}
}

// Next returns the next mapped entry. When nothing is left it marks the
// iterator done and returns the mapper's exhaustion value, on every call.
func (it *Iterator[T]) Next() T {
	key, ok := it.pull()
	if !ok {
		return it.mapper("", false)
	}
	return it.mapper(key, true)
}

// Take collects up to limit mapped entries. It returns fewer when the
// candidates run out and never includes the exhaustion value.
// Count(0) returns an empty slice and leaves the iterator untouched.
func (it *Iterator[T]) Take(limit Limit) []T {
	items := make([]T, 0, it.capacity(limit))
	for limit.allows(len(items)) {
		key, ok := it.pull()
		if !ok {
			break
		}
		items = append(items, it.mapper(key, true))
	}
	return items
}

// Done reports whether a previous Next or Take ran into the end of the
// candidates. A fresh iterator is never done, even if it has nothing to
// yield.
func (it *Iterator[T]) Done() bool {
	return it.done
}

// pull pops the last candidate. An empty list flips done.
func (it *Iterator[T]) pull() (string, bool) {
	n := len(it.candidates)
	if n == 0 {
		it.done = true
		return "", false
	}
	key := it.candidates[n-1]
	it.candidates = it.candidates[:n-1]
	return key, true
}

func (it *Iterator[T]) capacity(limit Limit) int {
	if limit.unbounded {
		return len(it.candidates)
	}
	return min(limit.n, len(it.candidates))
}
