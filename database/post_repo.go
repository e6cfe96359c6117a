package database

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rpupo63/blogstore/errs"
	"github.com/rpupo63/blogstore/models"
)

// PostRepo persists posts and their owned tag rows. All mutations are atomic
// across both tables: no reader ever observes a post without its final tag
// set.
type PostRepo struct {
	handle *Handle
	clock  Clock
	logger zerolog.Logger
}

var _ Repository[string, models.Post, models.PostUpdateMask] = (*PostRepo)(nil)

func NewPostRepo(handle *Handle, clock Clock, logger zerolog.Logger) *PostRepo {
	return &PostRepo{handle: handle, clock: clock, logger: logger}
}

// InitSchema ensures the posts and posts_tags tables and their indexes exist.
// Safe to call on every startup.
func (r *PostRepo) InitSchema() error {
	return r.handle.Write(func(db *gorm.DB) error {
		if err := db.AutoMigrate(&models.Post{}, &models.PostTag{}); err != nil {
			return errs.NewStorageError("init schema", "post", err)
		}
		return nil
	})
}

// SelectOne returns the post with the given slug, tags included.
func (r *PostRepo) SelectOne(slug string) (*models.Post, error) {
	var post models.Post
	err := r.handle.Read(func(db *gorm.DB) error {
		if err := db.Where("slug = ?", slug).First(&post).Error; err != nil {
			return errs.ClassifyDBError("select post", "post", err)
		}
		return hydrateTags(db, &post)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// SelectMany returns a page of posts ordered by creation time, newest first.
// A page past the end yields an empty slice.
func (r *PostRepo) SelectMany(p Pagination) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.handle.Read(func(db *gorm.DB) error {
		err := db.
			Order("create_timestamp DESC").
			Limit(p.PageSize).
			Offset(p.SkipCount()).
			Find(&posts).Error
		if err != nil {
			return errs.ClassifyDBError("select posts", "post", err)
		}
		for _, post := range posts {
			if err := hydrateTags(db, post); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Insert persists the post and its tags in one transaction. On success the
// passed-in post carries its server-assigned id and timestamps; on failure
// nothing is persisted and the post's generated fields are unspecified.
func (r *PostRepo) Insert(post *models.Post) error {
	now := r.clock()
	post.CreateTimestamp = now
	post.UpdateTimestamp = now
	post.Views = 0

	err := r.handle.Write(func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(post).Error; err != nil {
				return errs.ClassifyDBError("insert post", "post", err)
			}
			if len(post.Tags) > 0 {
				if err := insertPostTags(tx, post.ID, post.Tags); err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err != nil {
		return err
	}

	r.logger.Info().Int64("id", post.ID).Str("slug", post.Slug).Msg("created post")
	return nil
}

// Update applies exactly the fields flagged in mask, refreshing the update
// timestamp. An empty mask succeeds without touching storage. When the tags
// flag is set the stored tag set is replaced wholesale with post.Tags.
func (r *PostRepo) Update(post *models.Post, mask models.PostUpdateMask) error {
	if mask.IsEmpty() {
		return nil
	}

	now := r.clock()
	columns := maskedPostColumns(post, mask, now)

	err := r.handle.Write(func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			err := tx.Model(&models.Post{}).
				Where("id = ?", post.ID).
				Updates(columns).Error
			if err != nil {
				return errs.ClassifyDBError("update post", "post", err)
			}

			if mask.Contains(models.PostUpdateTags) {
				// Replace-all semantics: drop the old set, insert the new one.
				if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostTag{}).Error; err != nil {
					return errs.ClassifyDBError("delete post tags", "post", err)
				}
				if len(post.Tags) > 0 {
					if err := insertPostTags(tx, post.ID, post.Tags); err != nil {
						return err
					}
				}
			}
			return nil
		})
	})
	if err != nil {
		return err
	}

	post.UpdateTimestamp = now
	r.logger.Info().Int64("id", post.ID).Msg("updated post")
	return nil
}

// Delete removes the post with the given slug along with its tag and resource
// rows through cascade. Deleting a missing slug succeeds.
func (r *PostRepo) Delete(slug string) error {
	err := r.handle.Write(func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("slug = ?", slug).Delete(&models.Post{}).Error; err != nil {
				return errs.ClassifyDBError("delete post", "post", err)
			}
			return nil
		})
	})
	if err != nil {
		return err
	}

	r.logger.Info().Str("slug", slug).Msg("deleted post")
	return nil
}

// IncrementViews adds one to the post's view counter. This is the only
// mutation path for the counter; the read-modify-write runs in its own
// transaction under the exclusive lock so concurrent increments never lose an
// update.
func (r *PostRepo) IncrementViews(post *models.Post) error {
	var views int64
	err := r.handle.Write(func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			var row models.Post
			if err := tx.Select("views").Where("id = ?", post.ID).Take(&row).Error; err != nil {
				return errs.ClassifyDBError("select post views", "post", err)
			}
			views = row.Views + 1

			err := tx.Model(&models.Post{}).
				Where("id = ?", post.ID).
				Update("views", views).Error
			if err != nil {
				return errs.ClassifyDBError("update post views", "post", err)
			}
			return nil
		})
	})
	if err != nil {
		return err
	}

	post.Views = views
	return nil
}

func hydrateTags(db *gorm.DB, post *models.Post) error {
	err := db.Model(&models.PostTag{}).
		Where("post_id = ?", post.ID).
		Pluck("tag_name", &post.Tags).Error
	if err != nil {
		return errs.ClassifyDBError("select post tags", "post", err)
	}
	return nil
}

func insertPostTags(tx *gorm.DB, postID int64, tags []string) error {
	rows := make([]models.PostTag, len(tags))
	for i, tag := range tags {
		rows[i] = models.PostTag{PostID: postID, TagName: tag}
	}
	if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
		return errs.ClassifyDBError("insert post tags", "post", err)
	}
	return nil
}
