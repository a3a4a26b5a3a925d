package kaanon

import "math/rand/v2"

// Source shuffles n elements through swap. *rand.Rand from math/rand/v2
// satisfies it, which lets tests inject a seeded generator.
type Source interface {
	Shuffle(n int, swap func(i, j int))
}

type globalSource struct{}

func (globalSource) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// DefaultSource returns the process-wide math/rand/v2 generator.
// It is not suitable for anything security related.
func DefaultSource() Source {
	return globalSource{}
}

// Candidates returns the keys of d whose tags intersect tags (every key when
// tags is empty) in uniformly random order. Each call produces its own
// slice and permutation. A nil src means DefaultSource.
func Candidates(d *Dataset, tags []string, src Source) []string {
	if d == nil {
		panic(ErrNilDataset)
	}
	if src == nil {
		src = DefaultSource()
	}

	keys := make([]string, 0, len(d.keys))
	for _, key := range d.keys {
		if d.matches(key, tags) {
			keys = append(keys, key)
		}
	}

	src.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	return keys
}
