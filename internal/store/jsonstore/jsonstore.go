package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todo/internal/fault"
	"github.com/idilsaglam/todo/internal/model"
)

// JSON-backed storage. Single file holding one array, human-readable.
// Every call re-reads the whole document and rewrites it on mutation.
// No locking: concurrent writers race and the last one wins.

// DefaultPath is used when Config.Path is empty.
const DefaultPath = "data/todos.json"

// Config configures a Store.
type Config struct {
	Path   string
	FS     FileSystem
	Logger *log.Logger
}

// Store is the todo repository over a single JSON document.
type Store struct {
	path   string
	fs     FileSystem
	logger *log.Logger
}

// New builds a Store, filling zero Config fields with defaults.
func New(cfg Config) *Store {
	s := &Store{path: cfg.Path, fs: cfg.FS, logger: cfg.Logger}
	if s.path == "" {
		s.path = DefaultPath
	}
	if s.fs == nil {
		s.fs = OSFileSystem{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// Path is the location of the backing document.
func (s *Store) Path() string { return s.path }

// Save appends t. Ids are not checked for collisions.
func (s *Store) Save(t *model.Todo) error {
	items, err := s.load()
	if err != nil {
		return err
	}
	items = append(items, t.Snapshot())
	if err := s.write(items); err != nil {
		return err
	}
	s.logger.Debug("saved todo", "id", t.ID(), "count", len(items))
	return nil
}

// FindByID returns the todo with id. A missing document or id is
// reported as found=false, not as an error.
func (s *Store) FindByID(id string) (*model.Todo, bool, error) {
	items, err := s.load()
	if err != nil {
		return nil, false, err
	}
	i := indexOf(items, id)
	if i < 0 {
		return nil, false, nil
	}
	t, err := model.New(items[i])
	if err != nil {
		return nil, false, fmt.Errorf("todo %s: %w", id, err)
	}
	return t, true, nil
}

// FindAll returns every todo in document order.
func (s *Store) FindAll() ([]*model.Todo, error) {
	items, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]*model.Todo, 0, len(items))
	for _, it := range items {
		t, err := model.New(it)
		if err != nil {
			return nil, fmt.Errorf("todo %s: %w", it.ID, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// Update replaces the stored entry with t's id, keeping its position.
func (s *Store) Update(t *model.Todo) error {
	items, err := s.load()
	if err != nil {
		return err
	}
	i := indexOf(items, t.ID())
	if i < 0 {
		return fault.NotFound()
	}
	items[i] = t.Snapshot()
	if err := s.write(items); err != nil {
		return err
	}
	s.logger.Debug("updated todo", "id", t.ID(), "status", t.Status())
	return nil
}

// Delete removes the entry with id.
func (s *Store) Delete(id string) error {
	items, err := s.load()
	if err != nil {
		return err
	}
	i := indexOf(items, id)
	if i < 0 {
		return fault.NotFound()
	}
	items = append(items[:i], items[i+1:]...)
	if err := s.write(items); err != nil {
		return err
	}
	s.logger.Debug("deleted todo", "id", id, "count", len(items))
	return nil
}

// -------------- document I/O ----------------

// load reads the whole collection. An absent document is empty; a
// document that is not valid JSON is always a parse fault; valid JSON
// that is not an array is treated as empty.
func (s *Store) load() ([]model.Snapshot, error) {
	b, err := s.fs.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []model.Snapshot{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	if !json.Valid(b) {
		var v any
		decodeErr := json.Unmarshal(b, &v)
		if decodeErr == nil {
			decodeErr = errors.New("invalid JSON document")
		}
		s.logger.Error("data file is not valid JSON", "path", s.path, "err", decodeErr)
		return nil, fault.Parse(decodeErr)
	}
	if !isArray(b) {
		s.logger.Warn("data file is not a JSON array, treating as empty", "path", s.path)
		return []model.Snapshot{}, nil
	}
	var items []model.Snapshot
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fault.Parse(err)
	}
	if items == nil {
		items = []model.Snapshot{}
	}
	return items, nil
}

func (s *Store) write(items []model.Snapshot) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := s.fs.EnsureDir(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	if err := s.fs.WriteFile(s.path, b); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func isArray(b []byte) bool {
	b = bytes.TrimLeft(b, " \t\r\n")
	return len(b) > 0 && b[0] == '['
}

func indexOf(items []model.Snapshot, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
