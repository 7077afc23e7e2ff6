package news

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMode = errors.New("unknown source mode")
	ErrMissingURL  = errors.New("custom URL is empty")
)

type FailureKind string

const (
	FailureNetwork  FailureKind = "network"
	FailureStatus   FailureKind = "status"
	FailureParse    FailureKind = "parse"
	FailureNotFound FailureKind = "not_found"
)

// FetchError reports why a page could not be turned into an Item.
type FetchError struct {
	Kind FailureKind
	URL  string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s (%s): %v", e.URL, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func fetchErr(kind FailureKind, url string, err error) *FetchError {
	return &FetchError{Kind: kind, URL: url, Err: err}
}
