package kaanon

import "iter"

// Sample returns up to limit random entry keys.
func Sample(d *Dataset, limit Limit, opts ...Option) []string {
	return Strings(d, opts...).Take(limit)
}

// SampleNames returns up to limit formatted names.
func SampleNames(d *Dataset, limit Limit, opts ...Option) []string {
	return NewNames(d, opts...).Take(limit)
}

// SampleEmails returns up to limit email addresses at domain.
func SampleEmails(d *Dataset, limit Limit, domain string, opts ...Option) []string {
	return NewEmails(d, domain, opts...).Take(limit)
}

// Seq returns a single-use sequence of random entry keys. Unlike Iterator
// there is no exhaustion value: ranging simply stops.
func Seq(d *Dataset, opts ...Option) iter.Seq[string] {
	it := Strings(d, opts...)
	return func(yield func(string) bool) {
		for {
			key, ok := it.pull()
			if !ok || !yield(key) {
				return
			}
		}
	}
}
