package kaanon

import (
	"slices"
)

// Dataset is an immutable mapping from entry key to its category tags.
// It is safe for concurrent use once constructed.
type Dataset struct {
	entries map[string][]string
	keys    []string
}

// NewDataset copies m into a new Dataset. Duplicate tags of an entry are
// collapsed keeping the order of first appearance. A nil map is rejected
// with ErrNilDataset; an empty map yields an empty dataset.
func NewDataset(m map[string][]string) (*Dataset, error) {
	if m == nil {
		return nil, ErrNilDataset
	}

	d := &Dataset{
		entries: make(map[string][]string, len(m)),
		keys:    make([]string, 0, len(m)),
	}
	for key, tags := range m {
		d.entries[key] = uniqueTags(tags)
		d.keys = append(d.keys, key)
	}
	slices.Sort(d.keys)

	return d, nil
}

// MustDataset works like NewDataset but panics on error.
func MustDataset(m map[string][]string) *Dataset {
	d, err := NewDataset(m)
	if err != nil {
		panic(err)
	}
	return d
}

// Len returns the number of entries.
func (d *Dataset) Len() int {
	return len(d.keys)
}

// Keys returns all entry keys in sorted order.
func (d *Dataset) Keys() []string {
	return slices.Clone(d.keys)
}

// Tags returns a copy of the tags of key.
func (d *Dataset) Tags(key string) ([]string, bool) {
	tags, ok := d.entries[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(tags), true
}

// HasTag reports whether the entry key carries tag.
func (d *Dataset) HasTag(key, tag string) bool {
	return slices.Contains(d.entries[key], tag)
}

// matches reports whether key carries at least one of tags.
// An empty tags slice matches every entry.
func (d *Dataset) matches(key string, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, t := range d.entries[key] {
		if slices.Contains(tags, t) {
			return true
		}
	}
	return false
}

func uniqueTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}
