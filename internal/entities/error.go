package entities

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDate       = errors.New("no date entered")
	ErrInvalidDate     = errors.New("invalid date format, expected yyyy-MM-dd")
	ErrFutureDate      = errors.New("date cannot be in the future")
	ErrInvalidCurrency = errors.New("invalid currency code")
)

type SourceErrorKind int

const (
	SourceTimeout SourceErrorKind = iota + 1
	SourceTransport
	SourceFormat
)

func (k SourceErrorKind) String() string {
	switch k {
	case SourceTimeout:
		return "timeout"
	case SourceTransport:
		return "transport"
	case SourceFormat:
		return "format"
	default:
		return "unknown"
	}
}

// SourceError is the only error a rate source returns. Kind tells why the
// daily rates could not be obtained, Err keeps the original cause.
type SourceError struct {
	Kind SourceErrorKind
	Err  error
}

// Kind sentinels, errors.Is(err, ErrSourceTimeout) matches any SourceError of
// that kind.
var (
	ErrSourceTimeout   = &SourceError{Kind: SourceTimeout}
	ErrSourceTransport = &SourceError{Kind: SourceTransport}
	ErrSourceFormat    = &SourceError{Kind: SourceFormat}
)

func NewSourceError(kind SourceErrorKind, err error) *SourceError {
	return &SourceError{Kind: kind, Err: err}
}

func (e *SourceError) Error() string {
	var msg string
	switch e.Kind {
	case SourceTimeout:
		msg = "rate source request timed out"
	case SourceTransport:
		msg = "failed to retrieve exchange rates from rate source"
	case SourceFormat:
		msg = "invalid response format from rate source"
	default:
		msg = "rate source failed"
	}

	if e.Err == nil {
		return msg
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func (e *SourceError) Is(target error) bool {
	t, ok := target.(*SourceError)
	if !ok {
		return false
	}
	return t.Err == nil && t.Kind == e.Kind
}
