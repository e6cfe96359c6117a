package models

// Post represents a complete blog post with metadata
type Post struct {
	ID              int64    `json:"id" db:"id" gorm:"column:id;primaryKey;autoIncrement;not null"`
	Title           string   `json:"title" db:"title" gorm:"column:title;type:text;not null"`
	Slug            string   `json:"slug" db:"slug" gorm:"column:slug;type:text;not null;uniqueIndex:posts_idx_slug"`
	Author          string   `json:"author" db:"author" gorm:"column:author;type:text;not null"`
	CreateTimestamp int64    `json:"createTimestamp" db:"create_timestamp" gorm:"column:create_timestamp;not null;index:posts_idx_ts,sort:desc"`
	UpdateTimestamp int64    `json:"updateTimestamp" db:"update_timestamp" gorm:"column:update_timestamp;not null"`
	Category        string   `json:"category" db:"category" gorm:"column:category;type:text;not null;index:posts_idx_category"`
	Views           int64    `json:"views" db:"views" gorm:"column:views;not null;index:posts_idx_views,sort:desc"`
	Content         string   `json:"content" db:"content" gorm:"column:content;type:text;not null"`
	Tags            []string `json:"tags,omitempty" gorm:"-"`
}

func (Post) TableName() string {
	return "posts"
}

// PostTag represents a tag associated with a blog post. Tags have no identity
// of their own; they exist only as (post, name) pairs owned by their post.
type PostTag struct {
	PostID  int64  `json:"post_id" db:"post_id" gorm:"column:post_id;not null;uniqueIndex:posts_tags_idx_uniq"`
	TagName string `json:"tag_name" db:"tag_name" gorm:"column:tag_name;type:text;not null;uniqueIndex:posts_tags_idx_uniq;index:posts_tags_idx_tag_name"`

	Post Post `json:"post,omitempty" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
}

func (PostTag) TableName() string {
	return "posts_tags"
}
