package models

// PostResource is an opaque binary resource attached to a post, identified by
// (post id, resource name). Resources are immutable once created; replacing
// one is modeled as delete plus insert.
type PostResource struct {
	PostID int64  `json:"post_id" db:"post_id" gorm:"column:post_id;not null;uniqueIndex:posts_resources_idx_name_uniq"`
	Name   string `json:"name" db:"res_name" gorm:"column:res_name;type:text;not null;uniqueIndex:posts_resources_idx_name_uniq"`
	Type   string `json:"type" db:"res_type" gorm:"column:res_type;type:text;not null"`
	Data   []byte `json:"data,omitempty" db:"res_data" gorm:"column:res_data;not null"`

	Post Post `json:"post,omitempty" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
}

func (PostResource) TableName() string {
	return "posts_resources"
}
