package dataset

import "errors"

var (
	ErrFetch         = errors.New("fetching source failed")
	ErrEmptyData     = errors.New("source is empty")
	ErrMalformedData = errors.New("source is malformed")
	ErrNotLoaded     = errors.New("data not loaded yet")
)
