package database

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rpupo63/blogstore/errs"
	"github.com/rpupo63/blogstore/models"
)

// ResourceKey is the composite natural key of a post resource.
type ResourceKey struct {
	PostID int64
	Name   string
}

// PostResourceRepo persists binary resources attached to posts. Resources are
// immutable and never listed in bulk; those operations fail with
// UnsupportedOperation.
type PostResourceRepo struct {
	handle *Handle
	logger zerolog.Logger
}

var _ Repository[ResourceKey, models.PostResource, models.ResourceUpdateMask] = (*PostResourceRepo)(nil)

func NewPostResourceRepo(handle *Handle, logger zerolog.Logger) *PostResourceRepo {
	return &PostResourceRepo{handle: handle, logger: logger}
}

// InitSchema ensures the posts_resources table and its indexes exist.
func (r *PostResourceRepo) InitSchema() error {
	return r.handle.Write(func(db *gorm.DB) error {
		if err := db.AutoMigrate(&models.PostResource{}); err != nil {
			return errs.NewStorageError("init schema", "post resource", err)
		}
		return nil
	})
}

// SelectOne returns the resource identified by (post id, name).
func (r *PostResourceRepo) SelectOne(key ResourceKey) (*models.PostResource, error) {
	var resource models.PostResource
	err := r.handle.Read(func(db *gorm.DB) error {
		err := db.
			Where("post_id = ? AND res_name = ?", key.PostID, key.Name).
			Take(&resource).Error
		if err != nil {
			return errs.ClassifyDBError("select post resource", "post resource", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// SelectMany is not supported for post resources.
func (r *PostResourceRepo) SelectMany(p Pagination) ([]*models.PostResource, error) {
	return nil, errs.NewUnsupportedOperation("post resource", "listing resources")
}

// Insert persists the resource. A colliding (post id, name) pair fails with
// UniqueConstraint.
func (r *PostResourceRepo) Insert(resource *models.PostResource) error {
	err := r.handle.Write(func(db *gorm.DB) error {
		if err := db.Omit(clause.Associations).Create(resource).Error; err != nil {
			return errs.ClassifyDBError("insert post resource", "post resource", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info().Int64("post_id", resource.PostID).Str("name", resource.Name).Msg("created post resource")
	return nil
}

// Update is not supported for post resources; replace with delete plus insert.
func (r *PostResourceRepo) Update(resource *models.PostResource, mask models.ResourceUpdateMask) error {
	return errs.NewUnsupportedOperation("post resource", "updating a resource")
}

// Delete removes the resource identified by (post id, name). Deleting a
// missing key succeeds.
func (r *PostResourceRepo) Delete(key ResourceKey) error {
	err := r.handle.Write(func(db *gorm.DB) error {
		err := db.
			Where("post_id = ? AND res_name = ?", key.PostID, key.Name).
			Delete(&models.PostResource{}).Error
		if err != nil {
			return errs.ClassifyDBError("delete post resource", "post resource", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info().Int64("post_id", key.PostID).Str("name", key.Name).Msg("deleted post resource")
	return nil
}
