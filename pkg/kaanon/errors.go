package kaanon

import "errors"

var (
	// ErrNilDataset is returned (or panicked with) when a dataset is missing.
	ErrNilDataset = errors.New("kaanon: dataset is nil")

	// ErrNilMapper is panicked with when an iterator is built without a mapper.
	ErrNilMapper = errors.New("kaanon: mapper is nil")
)
