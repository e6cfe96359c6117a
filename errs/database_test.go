package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassifyDBError_RecordNotFound(t *testing.T) {
	err := ClassifyDBError("select post", "post", gorm.ErrRecordNotFound)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsStorage(err))
}

func TestClassifyDBError_DuplicatedKey(t *testing.T) {
	err := ClassifyDBError("insert post", "post", gorm.ErrDuplicatedKey)
	assert.True(t, IsUniqueConstraint(err))
}

func TestClassifyDBError_DriverMessages(t *testing.T) {
	sqliteErr := errors.New("UNIQUE constraint failed: posts.slug")
	assert.True(t, IsUniqueConstraint(ClassifyDBError("insert post", "post", sqliteErr)))

	pgErr := errors.New(`ERROR: duplicate key value violates unique constraint "posts_idx_slug"`)
	assert.True(t, IsUniqueConstraint(ClassifyDBError("insert post", "post", pgErr)))
}

func TestClassifyDBError_FallsBackToStorage(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := ClassifyDBError("insert post", "post", cause)
	assert.True(t, IsStorage(err))
	assert.ErrorContains(t, err, "post")
}

func TestModelErr_PreservesCause(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewStorageError("insert post", "post", cause)

	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.GetFullError(), "disk I/O error")
}

func TestUnsupportedOperation(t *testing.T) {
	err := NewUnsupportedOperation("post resource", "listing resources")
	assert.True(t, IsUnsupportedOperation(err))
	assert.ErrorContains(t, err, "listing resources")
}
