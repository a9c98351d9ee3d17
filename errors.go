package strsplit

import "errors"

// SplitError is an error type for the strsplit module
type SplitError string

func (e SplitError) Error() string {
	return string(e)
}

// ErrTooShort is flagged whenever the input text or the delimiter of a split
// is empty.
const ErrTooShort = SplitError("input or delimiter too short")

// ErrNotFound is flagged for a lookup of a list index which does not exist.
// It is a regular query result rather than a failure.
const ErrNotFound = SplitError("no fragment at index")

// ErrUnimplemented is reserved for delimiter classes a splitter does not support.
const ErrUnimplemented = SplitError("unimplemented delimiter class")

// ErrBufferExceeded is flagged by a splitter with bounded fragment capacity, if a
// fragment would exceed this capacity.
const ErrBufferExceeded = SplitError("fragment exceeds buffer capacity")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SplitError("illegal arguments")

// Kind classifies the outcome of an operation.
type Kind int8

// Outcome kinds of strsplit operations.
const (
	Success Kind = iota
	TooShort
	NotFound
	Unimplemented
	BufferExceeded
	InvalidArgument
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "SUCCESS"
	case TooShort:
		return "TOO_SHORT"
	case NotFound:
		return "NOT_FOUND"
	case Unimplemented:
		return "UNIMPLEMENTED"
	case BufferExceeded:
		return "BUFF_EXCEEDED"
	case InvalidArgument:
		return "INVALID_ARGUMENT"
	}
	return "UNKNOWN"
}

// KindOf returns the outcome kind of an error returned by this package.
// Wrapped errors are unwrapped. Any error not originating from this package
// is classified as InvalidArgument.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrTooShort):
		return TooShort
	case errors.Is(err, ErrNotFound):
		return NotFound
	case errors.Is(err, ErrUnimplemented):
		return Unimplemented
	case errors.Is(err, ErrBufferExceeded):
		return BufferExceeded
	}
	return InvalidArgument
}
