package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/blogstore/errs"
	"github.com/rpupo63/blogstore/models"
)

func insertTestResource(t *testing.T, ctx *TestContext, postID int64, name string) *models.PostResource {
	t.Helper()

	resource := &models.PostResource{
		PostID: postID,
		Name:   name,
		Type:   "image/png",
		Data:   []byte("binary payload"),
	}
	require.NoError(t, ctx.ResourceRepo.Insert(resource))
	return resource
}

func TestPostResourceRepo_InsertAndSelectOne(t *testing.T) {
	ctx := SetupTestDB(t)

	post := NewTestPost(t)
	require.NoError(t, ctx.PostRepo.Insert(post))

	resource := insertTestResource(t, ctx, post.ID, "cover.png")

	fetched, err := ctx.ResourceRepo.SelectOne(ResourceKey{PostID: post.ID, Name: "cover.png"})
	require.NoError(t, err)
	assert.Equal(t, resource.PostID, fetched.PostID)
	assert.Equal(t, resource.Name, fetched.Name)
	assert.Equal(t, resource.Type, fetched.Type)
	assert.Equal(t, resource.Data, fetched.Data)
}

func TestPostResourceRepo_SelectOne_NotFound(t *testing.T) {
	ctx := SetupTestDB(t)

	post := NewTestPost(t)
	require.NoError(t, ctx.PostRepo.Insert(post))

	fetched, err := ctx.ResourceRepo.SelectOne(ResourceKey{PostID: post.ID, Name: "missing.png"})
	assert.Nil(t, fetched)
	assert.True(t, errs.IsNotFound(err))
}

func TestPostResourceRepo_Insert_DuplicateKey(t *testing.T) {
	ctx := SetupTestDB(t)

	post := NewTestPost(t)
	require.NoError(t, ctx.PostRepo.Insert(post))

	insertTestResource(t, ctx, post.ID, "cover.png")

	duplicate := &models.PostResource{
		PostID: post.ID,
		Name:   "cover.png",
		Type:   "image/jpeg",
		Data:   []byte("other payload"),
	}
	err := ctx.ResourceRepo.Insert(duplicate)
	require.Error(t, err)
	assert.True(t, errs.IsUniqueConstraint(err))
}

func TestPostResourceRepo_SelectMany_Unsupported(t *testing.T) {
	ctx := SetupTestDB(t)

	resources, err := ctx.ResourceRepo.SelectMany(Pagination{PageSize: 10, PageIndex: 0})
	assert.Nil(t, resources)
	assert.True(t, errs.IsUnsupportedOperation(err))
}

func TestPostResourceRepo_Update_Unsupported(t *testing.T) {
	ctx := SetupTestDB(t)

	err := ctx.ResourceRepo.Update(&models.PostResource{}, models.ResourceUpdateMask{})
	assert.True(t, errs.IsUnsupportedOperation(err))
}

func TestPostResourceRepo_Delete_IsIdempotent(t *testing.T) {
	ctx := SetupTestDB(t)

	post := NewTestPost(t)
	require.NoError(t, ctx.PostRepo.Insert(post))

	insertTestResource(t, ctx, post.ID, "cover.png")

	key := ResourceKey{PostID: post.ID, Name: "cover.png"}
	require.NoError(t, ctx.ResourceRepo.Delete(key))
	require.NoError(t, ctx.ResourceRepo.Delete(key))

	_, err := ctx.ResourceRepo.SelectOne(key)
	assert.True(t, errs.IsNotFound(err))
}
