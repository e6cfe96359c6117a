package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/blogstore/models"
)

// TestContext bundles the repositories and handle a database test runs
// against.
type TestContext struct {
	Handle       *Handle
	PostRepo     *PostRepo
	ResourceRepo *PostResourceRepo
}

// SetupTestDB opens an in-memory SQLite database, runs schema init for every
// model, and returns repositories wired to it.
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	handle, err := Open(map[string]string{
		"DB_TYPE": SqliteDBType,
		"DB_PATH": ":memory:",
	})
	require.NoError(t, err)

	logger := zerolog.Nop()
	ctx := &TestContext{
		Handle:       handle,
		PostRepo:     NewPostRepo(handle, SystemClock, logger),
		ResourceRepo: NewPostResourceRepo(handle, logger),
	}

	require.NoError(t, ctx.PostRepo.InitSchema())
	require.NoError(t, ctx.ResourceRepo.InitSchema())

	return ctx
}

// NewTestPost builds an unsaved post with a unique slug.
func NewTestPost(t *testing.T, tags ...string) *models.Post {
	t.Helper()

	return &models.Post{
		Title:    "Test Post",
		Slug:     "test-post-" + uuid.NewString(),
		Author:   "tester",
		Category: "testing",
		Content:  "test content",
		Tags:     tags,
	}
}
