package model

import (
	"github.com/idilsaglam/todo/internal/fault"
)

// Status is the completion state of a Todo.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

const (
	msgInvalidData   = "Invalid Todo data"
	msgInvalidStatus = "Invalid status"
)

// Snapshot is the plain, serializable form of a Todo.
// It is a value: changing a copy never touches the Todo it came from.
type Snapshot struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// Todo is the domain entity. Only status can change after construction,
// and only to a valid value, so an invalid Todo is never observable.
type Todo struct {
	id          string
	title       string
	description string
	status      Status
}

// New validates s and builds a Todo from it.
func New(s Snapshot) (*Todo, error) {
	if res := ValidateAll(s); !res.Valid {
		return nil, fault.Validation(msgInvalidData, res.Violations)
	}
	return &Todo{
		id:          s.ID,
		title:       s.Title,
		description: s.Description,
		status:      s.Status,
	}, nil
}

func (t *Todo) ID() string          { return t.id }
func (t *Todo) Title() string       { return t.title }
func (t *Todo) Description() string { return t.description }
func (t *Todo) Status() Status      { return t.status }

// UpdateStatus replaces the status after checking it is one of the known values.
func (t *Todo) UpdateStatus(s Status) error {
	if !ValidStatus(string(s)) {
		return fault.Validation(msgInvalidStatus, []string{MsgInvalidStatus})
	}
	t.status = s
	return nil
}

func (t *Todo) IsCompleted() bool { return t.status == StatusCompleted }

// MarkCompleted is a no-op on an already completed Todo.
func (t *Todo) MarkCompleted() error { return t.UpdateStatus(StatusCompleted) }

// MarkPending is a no-op on an already pending Todo.
func (t *Todo) MarkPending() error { return t.UpdateStatus(StatusPending) }

// Snapshot copies the current fields out of t.
func (t *Todo) Snapshot() Snapshot {
	return Snapshot{
		ID:          t.id,
		Title:       t.title,
		Description: t.description,
		Status:      t.status,
	}
}
