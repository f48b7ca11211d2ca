package probe

import (
	"errors"
)

type Kind int

const (
	// ImportFailure means the target enumeration could not be resolved.
	ImportFailure Kind = iota + 1
	// AssertionFailure means the enumeration resolved but the member is
	// missing or holds another value.
	AssertionFailure
	// UnexpectedFailure covers anything else, including panics raised by
	// the enumeration.
	UnexpectedFailure
)

func (k Kind) String() string {
	switch k {
	case ImportFailure:
		return "import failure"
	case AssertionFailure:
		return "assertion failure"
	case UnexpectedFailure:
		return "unexpected failure"
	default:
		return "unknown"
	}
}

const (
	ExitOK      = 0
	ExitFailure = 1
)

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ImportFailure:
		return "Import error: " + e.Err.Error()
	case AssertionFailure:
		return "Assertion failed: " + e.Err.Error()
	default:
		return "Error: " + e.Err.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of a probe error, or 0 when err is not one.
func KindOf(err error) Kind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return 0
}

// ExitCode maps the result of Run to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return ExitFailure
}
