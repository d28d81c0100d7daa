package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/dorkit/core"
	"github.com/poiesic/dorkit/storage/badger"
	"github.com/poiesic/dorkit/translate"
)

func TestBuiltin(t *testing.T) {
	ops := Builtin()
	require.Len(t, ops, 33)

	seen := make(map[string]bool)
	for i, op := range ops {
		require.NoError(t, core.ValidateOperator(op), op.Token)
		assert.Equal(t, i+1, op.Position)
		assert.Equal(t, core.IDFromContent(op.Token), op.Id)
		assert.False(t, seen[op.Token], "duplicate token %s", op.Token)
		seen[op.Token] = true
	}

	assert.Equal(t, "site:", ops[0].Token)
	assert.Equal(t, `intitle:"webcam"`, ops[len(ops)-1].Token)
}

func TestBuiltin_EveryCategoryPresent(t *testing.T) {
	counts := make(map[core.Category]int)
	for _, op := range Builtin() {
		counts[op.Category]++
	}
	for _, c := range core.Categories() {
		assert.Positive(t, counts[c], "no operators in %s", c)
	}
	assert.Equal(t, 8, counts[core.CategorySecurity])
}

func TestBuiltin_FreshCopies(t *testing.T) {
	first := Builtin()
	first[0].Token = "changed"
	assert.Equal(t, "site:", Builtin()[0].Token)
}

func TestTemplatesAndExamples(t *testing.T) {
	templates := Templates()
	require.Len(t, templates, 6)
	assert.Equal(t, "Login Pages", templates[0].Label)

	examples := Examples()
	require.Len(t, examples, 5)
	templates[0].Label = "changed"
	examples[0] = "changed"
	assert.Equal(t, "Login Pages", Templates()[0].Label)
	assert.NotEqual(t, "changed", Examples()[0])
}

func TestExamples_Translate(t *testing.T) {
	want := []string{
		`"PDF resumes for senior developers" 2024`,
		"site:example.com (inurl:login OR inurl:signin OR intitle:login)",
		`(filetype:xls OR filetype:xlsx) "financial data"`,
		"site:github.com (inurl:admin OR inurl:administrator OR inurl:cpanel)",
		`filetype:sql "INSERT INTO" OR filetype:db "database"`,
	}
	for i, example := range Examples() {
		assert.Equal(t, want[i], translate.Translate(example), example)
	}
}

func TestSeed(t *testing.T) {
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()
	ctx := context.Background()

	n, err := Seed(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 33, n)

	// idempotent
	n, err = Seed(ctx, repo)
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err := repo.CountOperators(ctx)
	require.NoError(t, err)
	assert.Equal(t, 33, count)

	security, err := repo.ListOperatorsByCategory(ctx, core.CategorySecurity)
	require.NoError(t, err)
	require.Len(t, security, 8)
	assert.Equal(t, `intitle:"index of"`, security[0].Token)

	found, err := repo.SearchOperators(ctx, "wordpress", "")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, `inurl:"wp-admin"`, found[0].Token)
}

func TestSeed_ClosedRepository(t *testing.T) {
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	_, err = Seed(context.Background(), repo)
	assert.Error(t, err)
}
