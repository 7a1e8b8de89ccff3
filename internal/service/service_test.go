package service

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/idilsaglam/todo/internal/fault"
	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/store/jsonstore"
)

// seqIDs hands out "1", "2", ... so tests can predict ids.
type seqIDs struct{ n int }

func (g *seqIDs) Generate() (string, error) {
	g.n++
	return strconv.Itoa(g.n), nil
}

type failingIDs struct{ err error }

func (g failingIDs) Generate() (string, error) { return "", g.err }

func newFileService(t *testing.T) (*Service, *jsonstore.Store) {
	t.Helper()
	store := jsonstore.New(jsonstore.Config{Path: filepath.Join(t.TempDir(), "data", "todos.json")})
	return New(store, &seqIDs{}, nil), store
}

func seed(t *testing.T, store *jsonstore.Store, s model.Snapshot) {
	t.Helper()
	todo, err := model.New(s)
	require.NoError(t, err)
	require.NoError(t, store.Save(todo))
}

func TestCreateThenList(t *testing.T) {
	t.Parallel()
	svc, _ := newFileService(t)

	created := svc.Create("Buy milk", "2%")
	require.True(t, created.Success, created.Error)
	assert.Equal(t, model.StatusPending, created.Data.Status())

	listed := svc.List()
	require.True(t, listed.Success)
	require.Len(t, listed.Data, 1)
	assert.Equal(t, model.Snapshot{ID: "1", Title: "Buy milk", Description: "2%", Status: model.StatusPending}, listed.Data[0].Snapshot())
}

func testCreateAlwaysPending(t *rapid.T, dir string) {
	path := filepath.Join(dir, strconv.Itoa(rapid.IntRange(0, 1<<30).Draw(t, "file"))+".json")
	defer os.Remove(path)
	svc := New(jsonstore.New(jsonstore.Config{Path: path}), &seqIDs{}, nil)

	title := rapid.StringMatching(`\s{0,2}[A-Za-z0-9][A-Za-z0-9 ]{0,30}`).Draw(t, "title")
	desc := rapid.String().Draw(t, "description")

	res := svc.Create(title, desc)
	if !res.Success {
		t.Fatalf("Create(%q, %q) failed: %s", title, desc, res.Error)
	}
	if res.Data.Status() != model.StatusPending {
		t.Fatalf("new todo status = %q", res.Data.Status())
	}
}

func TestCreate_AlwaysPending(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	rapid.Check(t, func(t *rapid.T) { testCreateAlwaysPending(t, dir) })
}

func TestCreate_ValidationFailure(t *testing.T) {
	t.Parallel()
	svc, store := newFileService(t)

	res := svc.Create("   ", "x")
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid Todo data", res.Error)
	assert.Equal(t, fault.CodeValidation, res.Code)
	assert.Equal(t, "Invalid input: Title cannot be empty", res.UserMessage)

	_, err := os.Stat(store.Path())
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestCreate_IDGenerationFailure(t *testing.T) {
	t.Parallel()
	store := jsonstore.New(jsonstore.Config{Path: filepath.Join(t.TempDir(), "todos.json")})
	svc := New(store, failingIDs{err: errors.New("entropy exhausted")}, nil)

	res := svc.Create("A", "")
	assert.False(t, res.Success)
	assert.Equal(t, fault.CodeService, res.Code)
	assert.Equal(t, "entropy exhausted", res.Error)
}

func TestGet(t *testing.T) {
	t.Parallel()
	svc, store := newFileService(t)
	seed(t, store, model.Snapshot{ID: "1", Title: "A", Description: "B", Status: model.StatusPending})

	res := svc.Get("1")
	require.True(t, res.Success)
	assert.Equal(t, "A", res.Data.Title())

	missing := svc.Get("nope")
	assert.False(t, missing.Success)
	assert.Equal(t, "Todo not found", missing.Error)
	assert.Empty(t, missing.Code)
}

func TestUpdate_MergesSuppliedFields(t *testing.T) {
	t.Parallel()
	svc, store := newFileService(t)
	seed(t, store, model.Snapshot{ID: "1", Title: "A", Description: "B", Status: model.StatusPending})

	res := svc.Update("1", UpdateRequest{Title: Some("C")})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, model.Snapshot{ID: "1", Title: "C", Description: "B", Status: model.StatusPending}, res.Data.Snapshot())

	stored, found, err := store.FindByID("1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, res.Data.Snapshot(), stored.Snapshot())

	res = svc.Update("1", UpdateRequest{Description: Some(""), Status: Some(model.StatusCompleted)})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, model.Snapshot{ID: "1", Title: "C", Description: "", Status: model.StatusCompleted}, res.Data.Snapshot())
}

func TestUpdate_InvalidMergePersistsNothing(t *testing.T) {
	t.Parallel()
	svc, store := newFileService(t)
	seed(t, store, model.Snapshot{ID: "1", Title: "A", Description: "B", Status: model.StatusPending})
	before, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	res := svc.Update("1", UpdateRequest{Title: Some(" "), Status: Some(model.Status("archived"))})
	assert.False(t, res.Success)
	assert.Equal(t, fault.CodeValidation, res.Code)
	assert.Equal(t, "Invalid input: Title cannot be empty, Status must be either 'pending' or 'completed'", res.UserMessage)

	after, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()
	svc, _ := newFileService(t)

	res := svc.Update("nope", UpdateRequest{Title: Some("x")})
	assert.Equal(t, Result[*model.Todo]{Error: "Todo not found"}, res)
}

func TestDelete(t *testing.T) {
	t.Parallel()
	svc, store := newFileService(t)
	seed(t, store, model.Snapshot{ID: "1", Title: "A", Status: model.StatusPending})
	before, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	missing := svc.Delete("nope")
	assert.False(t, missing.Success)
	assert.Equal(t, "Todo not found", missing.Error)
	after, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)

	res := svc.Delete("1")
	assert.True(t, res.Success)
	assert.Empty(t, svc.List().Data)
}

func TestMarkCompletedAndPending(t *testing.T) {
	t.Parallel()
	svc, store := newFileService(t)
	seed(t, store, model.Snapshot{ID: "1", Title: "A", Status: model.StatusPending})

	for i := 0; i < 2; i++ {
		res := svc.MarkCompleted("1")
		require.True(t, res.Success, res.Error)
		assert.Equal(t, model.StatusCompleted, res.Data.Status())
	}
	stored, _, err := store.FindByID("1")
	require.NoError(t, err)
	assert.True(t, stored.IsCompleted())

	for i := 0; i < 2; i++ {
		res := svc.MarkPending("1")
		require.True(t, res.Success, res.Error)
		assert.Equal(t, model.StatusPending, res.Data.Status())
	}

	assert.Equal(t, "Todo not found", svc.MarkCompleted("nope").Error)
	assert.Equal(t, "Todo not found", svc.MarkPending("nope").Error)
}

func TestCorruptedStore(t *testing.T) {
	t.Parallel()
	svc, store := newFileService(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	res := svc.List()
	assert.False(t, res.Success)
	assert.Nil(t, res.Data)
	assert.Equal(t, fault.CodeParse, res.Code)
	assert.Equal(t, "data file is corrupted", res.Error)

	assert.Equal(t, fault.CodeParse, svc.Get("1").Code)
	assert.Equal(t, fault.CodeParse, svc.Create("A", "").Code)
}

func TestAbsentStore(t *testing.T) {
	t.Parallel()
	svc, _ := newFileService(t)

	res := svc.List()
	require.True(t, res.Success)
	assert.Empty(t, res.Data)
	assert.Equal(t, "Todo not found", svc.Get("anything").Error)
}

// stubRepo lets tests inject repository faults and panics.
type stubRepo struct {
	items     map[string]model.Snapshot
	updateErr error
	panicWith any
}

func (r *stubRepo) Save(t *model.Todo) error {
	r.items[t.ID()] = t.Snapshot()
	return nil
}

func (r *stubRepo) FindByID(id string) (*model.Todo, bool, error) {
	if r.panicWith != nil {
		panic(r.panicWith)
	}
	s, found := r.items[id]
	if !found {
		return nil, false, nil
	}
	t, err := model.New(s)
	return t, err == nil, err
}

func (r *stubRepo) FindAll() ([]*model.Todo, error) { return nil, nil }

func (r *stubRepo) Update(t *model.Todo) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.items[t.ID()] = t.Snapshot()
	return nil
}

func (r *stubRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func TestRepositoryFaultsAreClassified(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{
		items:     map[string]model.Snapshot{"1": {ID: "1", Title: "A", Status: model.StatusPending}},
		updateErr: fault.IO("write_todos", "todos.json", &fs.PathError{Op: "open", Path: "todos.json", Err: syscall.EACCES}),
	}
	svc := New(repo, &seqIDs{}, nil)

	res := svc.MarkCompleted("1")
	assert.False(t, res.Success)
	assert.Equal(t, fault.CodeIO, res.Code)
	assert.Equal(t, "file system operation failed", res.Error)
	assert.NotContains(t, res.Error, "todos.json")

	repo.updateErr = fault.NotFound()
	res = svc.Update("1", UpdateRequest{Title: Some("B")})
	assert.Equal(t, fault.CodeService, res.Code)
	assert.Equal(t, "Todo not found", res.Error)
	assert.Equal(t, "The requested todo item could not be found.", res.UserMessage)
}

func TestPanicsBecomeUnknownErrors(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{items: map[string]model.Snapshot{}, panicWith: errors.New("boom")}
	svc := New(repo, &seqIDs{}, nil)

	res := svc.Delete("1")
	assert.False(t, res.Success)
	assert.Equal(t, fault.CodeUnknown, res.Code)
	assert.Equal(t, "an unexpected error occurred", res.Error)
}

func TestOptional(t *testing.T) {
	t.Parallel()

	var unset Optional[string]
	assert.False(t, unset.IsSet())
	assert.Equal(t, "keep", unset.Or("keep"))
	assert.Equal(t, None[string](), unset)

	set := Some("")
	v, isSet := set.Get()
	assert.True(t, isSet)
	assert.Equal(t, "", v)
	assert.Equal(t, "", set.Or("keep"))
}
