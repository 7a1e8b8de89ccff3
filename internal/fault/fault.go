// Package fault defines the typed faults raised by the todo core and the
// classifier that turns any of them into a StructuredError.
//
// Every fault carries its Kind from the point it is first raised, so the
// classifier switches on a closed set instead of probing concrete types.
package fault

import (
	"errors"
	"time"
)

// Kind is the closed set of fault classifications.
type Kind int

const (
	KindService Kind = iota
	KindValidation
	KindParse
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindParse:
		return "parse"
	case KindIO:
		return "io"
	default:
		return "service"
	}
}

// ErrNotFound is raised by mutations that require an existing item.
var ErrNotFound = errors.New("Todo not found")

// Error is a fault raised by the core. Only the fields relevant to Kind are set.
type Error struct {
	Kind       Kind
	Message    string
	Violations []string // validation
	Op         string   // io: read_todos, write_todos, ensure_dir
	Path       string   // io
	Time       time.Time
	Err        error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String() + " fault"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Validation creates a validation fault listing every broken rule.
func Validation(message string, violations []string) error {
	v := make([]string, len(violations))
	copy(v, violations)
	return &Error{Kind: KindValidation, Message: message, Violations: v}
}

// Parse wraps a decoder error for a document that is not valid JSON.
func Parse(err error) error {
	return &Error{Kind: KindParse, Message: err.Error(), Err: err}
}

// IO wraps a file system error with the operation and path that failed.
func IO(op, path string, err error) error {
	return &Error{
		Kind:    KindIO,
		Message: err.Error(),
		Op:      op,
		Path:    path,
		Time:    time.Now().UTC(),
		Err:     err,
	}
}

// Service creates a domain fault; cause may be nil.
func Service(message string, cause error) error {
	return &Error{Kind: KindService, Message: message, Err: cause}
}

// NotFound is the service fault raised when update/delete misses.
func NotFound() error {
	return &Error{Kind: KindService, Message: ErrNotFound.Error(), Err: ErrNotFound}
}

// KindOf reports the kind of the outermost fault in err's chain.
// Errors that carry no fault are service faults.
func KindOf(err error) Kind {
	var f *Error
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindService
}

// Is reports whether err is a fault of kind k.
func Is(err error, k Kind) bool {
	var f *Error
	return errors.As(err, &f) && f.Kind == k
}
