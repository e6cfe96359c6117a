package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostUpdateMask_IsEmpty(t *testing.T) {
	assert.True(t, PostUpdateMask(0).IsEmpty())
	assert.False(t, PostUpdateTitle.IsEmpty())
}

func TestPostUpdateMask_Contains(t *testing.T) {
	mask := PostUpdateTitle.Set(PostUpdateTags)

	assert.True(t, mask.Contains(PostUpdateTitle))
	assert.True(t, mask.Contains(PostUpdateTags))
	assert.True(t, mask.Contains(PostUpdateTitle.Set(PostUpdateTags)))
	assert.False(t, mask.Contains(PostUpdateSlug))
	assert.False(t, mask.Contains(PostUpdateTitle.Set(PostUpdateSlug)))
}

func TestPostUpdateMask_FlagsAreDistinct(t *testing.T) {
	flags := []PostUpdateMask{
		PostUpdateTitle,
		PostUpdateSlug,
		PostUpdateAuthor,
		PostUpdateCategory,
		PostUpdateContent,
		PostUpdateTags,
	}

	var combined PostUpdateMask
	for _, flag := range flags {
		assert.False(t, combined.Contains(flag))
		combined = combined.Set(flag)
	}
}
