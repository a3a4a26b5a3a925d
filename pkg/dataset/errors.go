package dataset

import "errors"

var (
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON dataset")

	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML dataset")

	ErrNotAMapping = errors.New("dataset must be a mapping of entry to tag list")

	ErrUnsupportedFormat = errors.New("unsupported dataset file format")
	ErrNilParser         = errors.New("parser is nil")
	ErrEmptyPath         = errors.New("dataset path is empty")
	ErrLoadingCancelled  = errors.New("loading dataset cancelled")
	ErrFailedToReadFile  = errors.New("failed to read dataset file")
	ErrEmptyFile         = errors.New("dataset file is empty")
	ErrFailedToParseFile = errors.New("failed to parse dataset file")
	ErrInvalidDataset    = errors.New("invalid dataset")
)
