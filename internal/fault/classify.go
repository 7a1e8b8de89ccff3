package fault

import (
	"errors"
	"io/fs"
	"regexp"
	"strings"
	"syscall"
	"time"
)

// Code is the closed taxonomy of classified errors.
type Code string

const (
	CodeValidation Code = "VALIDATION_ERROR"
	CodeParse      Code = "PARSE_ERROR"
	CodeIO         Code = "IO_ERROR"
	CodeService    Code = "SERVICE_ERROR"
	CodeUnknown    Code = "UNKNOWN_ERROR"
)

// Severity tiers reported by StructuredError.Severity.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Detail type tags.
const (
	TypeJSONParse        = "json_parse_error"
	TypeFileNotFound     = "file_not_found"
	TypePermissionDenied = "permission_denied"
	TypeDiskFull         = "disk_full"
	TypeIO               = "io_error"
	TypeNotFound         = "not_found"
	TypeOperationFailed  = "operation_failed"
	TypeUnknown          = "unknown"
)

const (
	msgParse   = "data file is corrupted"
	msgIO      = "file system operation failed"
	msgUnknown = "an unexpected error occurred"
)

var transientPattern = regexp.MustCompile(`(?i)(EAGAIN|ETIMEDOUT|EBUSY|resource temporarily unavailable|timed out|resource busy)`)

// StructuredError is the uniform result of Classify.
type StructuredError struct {
	Code    Code    `json:"code"`
	Message string  `json:"message"`
	Details Details `json:"details"`
}

// Details carries whatever context the originating fault had.
type Details struct {
	OriginalError string           `json:"originalError,omitempty"`
	Type          string           `json:"type,omitempty"`
	Violations    []string         `json:"errors,omitempty"`
	FieldCount    int              `json:"fieldCount,omitempty"`
	Path          string           `json:"path,omitempty"`
	Operation     string           `json:"operation,omitempty"`
	Context       *Context         `json:"context,omitempty"`
	Cause         *StructuredError `json:"cause,omitempty"`
	Raw           any              `json:"originalValue,omitempty"`
}

// Context records where and when an I/O fault happened.
type Context struct {
	Operation string    `json:"operation"`
	Timestamp time.Time `json:"timestamp"`
}

// Classify converts any value into a StructuredError. Errors without a
// fault in their chain are service faults; anything that is not an error
// at all (including nil and recovered panic values) is unknown.
func Classify(v any) StructuredError {
	err, ok := v.(error)
	if !ok || err == nil {
		return StructuredError{
			Code:    CodeUnknown,
			Message: msgUnknown,
			Details: Details{Type: TypeUnknown, Raw: v},
		}
	}

	var f *Error
	if !errors.As(err, &f) {
		return classifyService(err.Error(), err, errors.Unwrap(err))
	}

	switch f.Kind {
	case KindValidation:
		return StructuredError{
			Code:    CodeValidation,
			Message: f.Message,
			Details: Details{
				Violations: append([]string{}, f.Violations...),
				FieldCount: len(f.Violations),
			},
		}
	case KindParse:
		return StructuredError{
			Code:    CodeParse,
			Message: msgParse,
			Details: Details{OriginalError: f.Message, Type: TypeJSONParse},
		}
	case KindIO:
		return classifyIO(f)
	default:
		return classifyService(f.Error(), f, f.Err)
	}
}

func classifyIO(f *Error) StructuredError {
	d := Details{
		OriginalError: f.Error(),
		Type:          ioType(f.Err),
		Path:          f.Path,
	}
	if f.Op != "" || !f.Time.IsZero() {
		d.Context = &Context{Operation: f.Op, Timestamp: f.Time}
	}
	var inner *Error
	if f.Err != nil && errors.As(f.Err, &inner) {
		c := Classify(inner)
		d.Cause = &c
	}
	return StructuredError{Code: CodeIO, Message: msgIO, Details: d}
}

func ioType(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return TypeFileNotFound
	case errors.Is(err, fs.ErrPermission):
		return TypePermissionDenied
	case errors.Is(err, syscall.ENOSPC):
		return TypeDiskFull
	default:
		return TypeIO
	}
}

func classifyService(message string, err, cause error) StructuredError {
	d := Details{Type: TypeOperationFailed, Operation: "repository_operation"}
	if errors.Is(err, ErrNotFound) || strings.Contains(strings.ToLower(message), "not found") {
		d.Type = TypeNotFound
		d.Operation = "todo_operation"
	}
	if cause != nil && !errors.Is(cause, ErrNotFound) {
		c := Classify(cause)
		d.Cause = &c
	}
	return StructuredError{Code: CodeService, Message: message, Details: d}
}

// IsRetryable reports whether repeating the operation may succeed. Only
// unclassified I/O faults with a transient message qualify.
func (e StructuredError) IsRetryable() bool {
	return e.Code == CodeIO &&
		e.Details.Type == TypeIO &&
		transientPattern.MatchString(e.Details.OriginalError)
}

// Severity ranks the error for logging and display.
func (e StructuredError) Severity() Severity {
	switch {
	case e.Code == CodeIO && e.Details.Type == TypeDiskFull:
		return SeverityCritical
	case e.Code == CodeIO && e.Details.Type == TypePermissionDenied:
		return SeverityHigh
	case e.Code == CodeService && e.Details.Type == TypeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}

// FormatForUser returns the fixed human copy for the error's code.
func (e StructuredError) FormatForUser() string {
	switch e.Code {
	case CodeIO:
		return "Unable to access the file. Please check if the file exists and you have permission to read it."
	case CodeValidation:
		if len(e.Details.Violations) == 0 {
			return "Invalid input: " + e.Message
		}
		return "Invalid input: " + strings.Join(e.Details.Violations, ", ")
	case CodeParse:
		return "The data file appears to be corrupted. Please check the file format or restore from backup."
	case CodeService:
		if e.Details.Type == TypeNotFound {
			return "The requested todo item could not be found."
		}
		return "The operation could not be completed: " + e.Message
	default:
		return "An unexpected error occurred. Please try again or contact support if the problem persists."
	}
}
