package contract

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories when no contract has the requested id.
var ErrNotFound = errors.New("contract not found")

type ErrorKind string

const (
	KindInvalidArgument ErrorKind = "InvalidArgument"
	KindNotFound        ErrorKind = "NotFound"
)

// Error is a rule violation surfaced to callers. Message is client-facing and passed through verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func InvalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func IsInvalidArgument(err error) bool { return hasKind(err, KindInvalidArgument) }

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || hasKind(err, KindNotFound)
}

func hasKind(err error, k ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
