package models

// PostUpdateMask identifies which fields of a post changed during a partial
// update. Flags combine with bitwise or; the zero value updates nothing.
type PostUpdateMask uint8

const (
	PostUpdateTitle PostUpdateMask = 1 << iota
	PostUpdateSlug
	PostUpdateAuthor
	PostUpdateCategory
	PostUpdateContent
	PostUpdateTags
)

// Contains reports whether every flag in other is set in m.
func (m PostUpdateMask) Contains(other PostUpdateMask) bool {
	return m&other == other
}

// IsEmpty reports whether no flag is set.
func (m PostUpdateMask) IsEmpty() bool {
	return m == 0
}

// Set returns m with the given flags added.
func (m PostUpdateMask) Set(other PostUpdateMask) PostUpdateMask {
	return m | other
}

// ResourceUpdateMask exists to satisfy the repository contract for post
// resources, which have no mutable fields.
type ResourceUpdateMask struct{}
