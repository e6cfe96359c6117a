package database

import "github.com/rpupo63/blogstore/models"

// postField declares one mutable post field: its mask flag, its storage
// column, and an accessor for the live value. Column names come only from
// this fixed table so the update statement never carries external input as
// syntax; values are always parameter-bound.
type postField struct {
	flag   models.PostUpdateMask
	column string
	value  func(*models.Post) any
}

// postFields must declare exactly one entry per scalar flag of
// models.PostUpdateMask. Tags are structural and handled outside the table.
var postFields = []postField{
	{models.PostUpdateTitle, "title", func(p *models.Post) any { return p.Title }},
	{models.PostUpdateSlug, "slug", func(p *models.Post) any { return p.Slug }},
	{models.PostUpdateAuthor, "author", func(p *models.Post) any { return p.Author }},
	{models.PostUpdateCategory, "category", func(p *models.Post) any { return p.Category }},
	{models.PostUpdateContent, "content", func(p *models.Post) any { return p.Content }},
}

// maskedPostColumns folds mask over the descriptor table into the column map
// for the update statement. update_timestamp rides along on every masked
// mutation.
func maskedPostColumns(post *models.Post, mask models.PostUpdateMask, updateTimestamp int64) map[string]any {
	columns := map[string]any{
		"update_timestamp": updateTimestamp,
	}
	for _, field := range postFields {
		if mask.Contains(field.flag) {
			columns[field.column] = field.value(post)
		}
	}
	return columns
}
