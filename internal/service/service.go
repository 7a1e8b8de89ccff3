// Package service is the façade the console drives. Each operation runs
// one full read-modify-write against the repository and reports the
// outcome as a Result; no operation returns an error or panics.
package service

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todo/internal/fault"
	"github.com/idilsaglam/todo/internal/idgen"
	"github.com/idilsaglam/todo/internal/model"
)

// Repository is the persistence the façade needs.
type Repository interface {
	Save(t *model.Todo) error
	FindByID(id string) (*model.Todo, bool, error)
	FindAll() ([]*model.Todo, error)
	Update(t *model.Todo) error
	Delete(id string) error
}

// Service orchestrates id generation, lookups and merges over a Repository.
type Service struct {
	repo   Repository
	ids    idgen.Generator
	logger *log.Logger
}

// New returns a Service. A nil logger discards output.
func New(repo Repository, ids idgen.Generator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{repo: repo, ids: ids, logger: logger}
}

// Create stores a new pending todo.
func (s *Service) Create(title, description string) (res Result[*model.Todo]) {
	defer recoverInto(s.logger, "create", &res)

	id, err := s.ids.Generate()
	if err != nil {
		return failure[*model.Todo](s.logger, "create", err)
	}
	t, err := model.New(model.Snapshot{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      model.StatusPending,
	})
	if err != nil {
		return failure[*model.Todo](s.logger, "create", err)
	}
	if err := s.repo.Save(t); err != nil {
		return failure[*model.Todo](s.logger, "create", err)
	}
	s.logger.Info("todo created", "id", id)
	return ok(t)
}

// List returns every todo, possibly none.
func (s *Service) List() (res Result[[]*model.Todo]) {
	defer recoverInto(s.logger, "list", &res)

	all, err := s.repo.FindAll()
	if err != nil {
		return failure[[]*model.Todo](s.logger, "list", err)
	}
	return ok(all)
}

// Get returns the todo with id.
func (s *Service) Get(id string) (res Result[*model.Todo]) {
	defer recoverInto(s.logger, "get", &res)

	t, found, err := s.repo.FindByID(id)
	if err != nil {
		return failure[*model.Todo](s.logger, "get", err)
	}
	if !found {
		return notFound[*model.Todo]()
	}
	return ok(t)
}

// Update merges req over the stored todo and persists the result.
// Nothing is written when the merged todo fails validation.
func (s *Service) Update(id string, req UpdateRequest) (res Result[*model.Todo]) {
	defer recoverInto(s.logger, "update", &res)

	existing, found, err := s.repo.FindByID(id)
	if err != nil {
		return failure[*model.Todo](s.logger, "update", err)
	}
	if !found {
		return notFound[*model.Todo]()
	}
	updated, err := model.New(model.Snapshot{
		ID:          existing.ID(),
		Title:       req.Title.Or(existing.Title()),
		Description: req.Description.Or(existing.Description()),
		Status:      req.Status.Or(existing.Status()),
	})
	if err != nil {
		return failure[*model.Todo](s.logger, "update", err)
	}
	if err := s.repo.Update(updated); err != nil {
		return failure[*model.Todo](s.logger, "update", err)
	}
	s.logger.Info("todo updated", "id", id)
	return ok(updated)
}

// Delete removes the todo with id.
func (s *Service) Delete(id string) (res Result[struct{}]) {
	defer recoverInto(s.logger, "delete", &res)

	_, found, err := s.repo.FindByID(id)
	if err != nil {
		return failure[struct{}](s.logger, "delete", err)
	}
	if !found {
		return notFound[struct{}]()
	}
	if err := s.repo.Delete(id); err != nil {
		return failure[struct{}](s.logger, "delete", err)
	}
	s.logger.Info("todo deleted", "id", id)
	return ok(struct{}{})
}

// MarkCompleted sets the todo's status to completed.
func (s *Service) MarkCompleted(id string) Result[*model.Todo] {
	return s.setStatus("complete", id, (*model.Todo).MarkCompleted)
}

// MarkPending sets the todo's status to pending.
func (s *Service) MarkPending(id string) Result[*model.Todo] {
	return s.setStatus("pending", id, (*model.Todo).MarkPending)
}

func (s *Service) setStatus(op, id string, mark func(*model.Todo) error) (res Result[*model.Todo]) {
	defer recoverInto(s.logger, op, &res)

	t, found, err := s.repo.FindByID(id)
	if err != nil {
		return failure[*model.Todo](s.logger, op, err)
	}
	if !found {
		return notFound[*model.Todo]()
	}
	if err := mark(t); err != nil {
		return failure[*model.Todo](s.logger, op, err)
	}
	if err := s.repo.Update(t); err != nil {
		return failure[*model.Todo](s.logger, op, err)
	}
	s.logger.Info("todo status changed", "id", id, "status", t.Status())
	return ok(t)
}

// failure classifies v, logs it, and returns only the classified message.
func failure[T any](logger *log.Logger, op string, v any) Result[T] {
	se := fault.Classify(v)
	kv := []any{
		"op", op,
		"code", se.Code,
		"severity", se.Severity(),
		"retryable", se.IsRetryable(),
		"err", fmt.Sprint(v),
	}
	switch se.Severity() {
	case fault.SeverityCritical, fault.SeverityHigh:
		logger.Error("operation failed", kv...)
	default:
		logger.Warn("operation failed", kv...)
	}
	return Result[T]{Error: se.Message, Code: se.Code, UserMessage: se.FormatForUser()}
}

// recoverInto turns a panic into an UNKNOWN_ERROR result.
func recoverInto[T any](logger *log.Logger, op string, res *Result[T]) {
	if r := recover(); r != nil {
		if err, isErr := r.(error); isErr {
			r = err.Error()
		}
		*res = failure[T](logger, op, r)
	}
}
