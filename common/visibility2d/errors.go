package visibility2d

import (
	"strconv"

	"github.com/pkg/errors"
)

type ErrorKind int

const (
	DegenerateGeometry ErrorKind = iota + 1
	InternalInvariantViolation
)

func (k ErrorKind) String() string {
	switch k {
	case DegenerateGeometry:
		return "degenerate geometry"
	case InternalInvariantViolation:
		return "internal invariant violation"
	}

	return "unknown error"
}

type Error struct {
	Kind    ErrorKind
	Segment int // -1 when no segment is involved
	Message string
}

func (e *Error) Error() string {
	msg := e.Kind.String() + ": " + e.Message
	if e.Segment >= 0 {
		msg += " (segment #" + strconv.Itoa(e.Segment) + ")"
	}

	return msg
}

func degenerate(segment int, message string) error {
	return errors.WithStack(&Error{Kind: DegenerateGeometry, Segment: segment, Message: message})
}

func invariantViolation(segment int, message string) error {
	return errors.WithStack(&Error{Kind: InternalInvariantViolation, Segment: segment, Message: message})
}

func kindOf(err error) ErrorKind {
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Kind
	}

	return 0
}

func IsDegenerate(err error) bool {
	return kindOf(err) == DegenerateGeometry
}

func IsInvariantViolation(err error) bool {
	return kindOf(err) == InternalInvariantViolation
}
