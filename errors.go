package subspedia

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a FetchError.
type ErrorKind int

const (
	// KindHTTP is a transport-level failure: connection, TLS, non-2xx status.
	KindHTTP ErrorKind = iota + 1
	// KindJSON means the body did not decode as the expected record sequence.
	KindJSON
	// KindNotFound means a search matched no records.
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindHTTP:
		return "http"
	case KindJSON:
		return "json"
	case KindNotFound:
		return "not_found"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels for use with errors.Is. A *FetchError matches the sentinel of its Kind.
var (
	ErrHTTP     = errors.New("subspedia: http error")
	ErrJSON     = errors.New("subspedia: json parsing error")
	ErrNotFound = errors.New("subspedia: not found")
)

// FetchError is the error returned by every operation in this package.
// HTTP and JSON errors carry the underlying cause in Err; NotFound errors
// carry only a Message built from the failed query.
type FetchError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("HTTP error: %v", e.Err)
	case KindJSON:
		return fmt.Sprintf("JSON parsing error: %v", e.Err)
	default:
		return e.Message
	}
}

// Unwrap returns the underlying transport or parse error, if any.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e.Kind, or a *FetchError of the same kind.
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrHTTP:
		return e.Kind == KindHTTP
	case ErrJSON:
		return e.Kind == KindJSON
	case ErrNotFound:
		return e.Kind == KindNotFound
	}
	var fe *FetchError
	if errors.As(target, &fe) {
		return fe.Kind == e.Kind
	}
	return false
}

func httpError(err error) *FetchError {
	return &FetchError{Kind: KindHTTP, Err: err}
}

func jsonError(err error) *FetchError {
	return &FetchError{Kind: KindJSON, Err: err}
}

func notFoundError(format string, args ...any) *FetchError {
	return &FetchError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}
