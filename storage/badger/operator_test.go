package badger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/dorkit/core"
	"github.com/poiesic/dorkit/storage"
)

func sampleOperators() []*core.Operator {
	ops := []*core.Operator{
		core.NewOperator("site:", "Search within a specific domain", "site:example.com", core.CategoryDomain, ""),
		core.NewOperator("filetype:", "Search for specific file types", "filetype:pdf", core.CategoryFile, ""),
		core.NewOperator("ext:", "Alternative to filetype", "ext:docx", core.CategoryFile, ""),
		core.NewOperator("intitle:", "Search in page title", `intitle:"login"`, core.CategoryTitle, ""),
	}
	for i, op := range ops {
		op.Position = i + 1
	}
	return ops
}

func newTestRepo(t *testing.T) storage.OperatorRepository {
	t.Helper()
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func tokens(ops []*core.Operator) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.Token
	}
	return out
}

func TestAddAndGetOperator(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.AddOperators(ctx, sampleOperators()...)
	require.NoError(t, err)
	require.Len(t, added, 4)
	assert.Equal(t, core.IDFromContent("site:"), added[0].Id)

	got, err := repo.GetOperator(ctx, added[1].Id)
	require.NoError(t, err)
	assert.Equal(t, added[1], got)

	count, err := repo.CountOperators(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestAddOperators_Invalid(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddOperators(ctx,
		core.NewOperator("site:", "Search within a specific domain", "", core.CategoryDomain, ""),
		&core.Operator{Token: "bogus", Description: "x", Category: "Nope"},
	)
	assert.ErrorIs(t, err, core.ErrInvalidCategory)

	count, err := repo.CountOperators(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "nothing is written when any operator is invalid")
}

func TestAddOperators_CancelledContext(t *testing.T) {
	repo := newTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.AddOperators(ctx, sampleOperators()...)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAddOperators_ReplacesByToken(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddOperators(ctx, sampleOperators()...)
	require.NoError(t, err)

	moved := core.NewOperator("ext:", "File extension", "ext:log", core.CategorySpecial, "")
	_, err = repo.AddOperators(ctx, moved)
	require.NoError(t, err)

	count, err := repo.CountOperators(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	got, err := repo.FindOperatorByToken(ctx, "ext:")
	require.NoError(t, err)
	assert.Equal(t, "File extension", got.Description)
	assert.Equal(t, 3, got.Position, "position is kept when not supplied")

	files, err := repo.ListOperatorsByCategory(ctx, core.CategoryFile)
	require.NoError(t, err)
	assert.Equal(t, []string{"filetype:"}, tokens(files))

	special, err := repo.ListOperatorsByCategory(ctx, core.CategorySpecial)
	require.NoError(t, err)
	assert.Equal(t, []string{"ext:"}, tokens(special))
}

func TestAddOperators_AssignsPosition(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddOperators(ctx, sampleOperators()...)
	require.NoError(t, err)

	added, err := repo.AddOperators(ctx,
		core.NewOperator("OR", "Either term", "a OR b", core.CategoryLogic, ""),
		core.NewOperator("AND", "Both terms", "a AND b", core.CategoryLogic, ""),
	)
	require.NoError(t, err)
	assert.Equal(t, 5, added[0].Position)
	assert.Equal(t, 6, added[1].Position)

	all, err := repo.ListOperators(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"site:", "filetype:", "ext:", "intitle:", "OR", "AND"}, tokens(all))
}

func TestGetOperator_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetOperator(context.Background(), core.ID(42))
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = repo.FindOperatorByToken(context.Background(), "nope:")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListOperatorsByCategory(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddOperators(ctx, sampleOperators()...)
	require.NoError(t, err)

	files, err := repo.ListOperatorsByCategory(ctx, core.CategoryFile)
	require.NoError(t, err)
	assert.Equal(t, []string{"filetype:", "ext:"}, tokens(files))

	logic, err := repo.ListOperatorsByCategory(ctx, core.CategoryLogic)
	require.NoError(t, err)
	assert.Empty(t, logic)

	_, err = repo.ListOperatorsByCategory(ctx, "Nope")
	assert.ErrorIs(t, err, core.ErrInvalidCategory)
}

func TestSearchOperators(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddOperators(ctx, sampleOperators()...)
	require.NoError(t, err)

	tests := []struct {
		name     string
		query    string
		category core.Category
		want     []string
	}{
		{name: "empty query lists all", query: "", want: []string{"site:", "filetype:", "ext:", "intitle:"}},
		{name: "token substring", query: "TITLE", want: []string{"intitle:"}},
		{name: "description substring", query: "file type", want: []string{"filetype:"}},
		{name: "category filter", query: "filetype", category: core.CategoryFile, want: []string{"filetype:", "ext:"}},
		{name: "category excludes", query: "site", category: core.CategoryFile, want: []string{}},
		{name: "no match", query: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.SearchOperators(ctx, tt.query, tt.category)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tokens(got))
		})
	}
}

func TestOperatorRepository_Persistent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	ctx := context.Background()

	backend, err := OpenBackend(dir, false)
	require.NoError(t, err)
	repo, err := NewOperatorRepository(backend)
	require.NoError(t, err)
	_, err = repo.AddOperators(ctx, sampleOperators()...)
	require.NoError(t, err)
	require.NoError(t, repo.Close())
	assert.False(t, backend.IsClosed(), "repository does not own the backend")
	require.NoError(t, backend.Close())

	backend, err = OpenBackend(dir, false)
	require.NoError(t, err)
	defer backend.Close()
	repo, err = NewOperatorRepository(backend)
	require.NoError(t, err)

	count, err := repo.CountOperators(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestNewOperatorRepository_NilBackend(t *testing.T) {
	_, err := NewOperatorRepository(nil)
	assert.Error(t, err)
}

func TestOperatorRepository_Closed(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	_, err = repo.ListOperators(context.Background())
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
