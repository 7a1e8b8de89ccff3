package model

import (
	"strings"
)

// Violation messages reported by ValidateAll.
const (
	MsgTitleRequired = "Title cannot be empty"
	MsgInvalidStatus = "Status must be either 'pending' or 'completed'"
)

// ValidationResult lists every rule a snapshot breaks, in rule order.
type ValidationResult struct {
	Valid      bool
	Violations []string
}

// ValidTitle reports whether title has content once surrounding whitespace is trimmed.
func ValidTitle(title string) bool {
	return len(strings.TrimSpace(title)) > 0
}

// ValidStatus is an exact, case-sensitive membership check.
func ValidStatus(status string) bool {
	switch Status(status) {
	case StatusPending, StatusCompleted:
		return true
	}
	return false
}

// ValidateAll runs every rule without stopping at the first failure.
func ValidateAll(s Snapshot) ValidationResult {
	var violations []string
	if !ValidTitle(s.Title) {
		violations = append(violations, MsgTitleRequired)
	}
	if !ValidStatus(string(s.Status)) {
		violations = append(violations, MsgInvalidStatus)
	}
	return ValidationResult{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}
