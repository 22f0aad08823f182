package domain

import (
	"time"
)

// Post represents a blog post. The date column records last-touched
// time: it is reset on every create AND every update.
type Post struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"column:title;type:varchar(80);not null" json:"title"`
	Subtitle  string    `gorm:"column:sub_title;type:varchar(120)" json:"sub_title"`
	Slug      string    `gorm:"column:slug;type:varchar(120);not null;index" json:"slug"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	ImageFile string    `gorm:"column:img_file;type:varchar(255)" json:"img_file"`
	CreatedAt time.Time `gorm:"column:date" json:"date"`
}

func (Post) TableName() string { return "posts" }

// EditPostRequest carries the editable fields of a post.
// None of the fields are validated beyond binding; the editor stores
// whatever it is given.
type EditPostRequest struct {
	Title     string `form:"title" json:"title"`
	Subtitle  string `form:"sub_title" json:"sub_title"`
	Slug      string `form:"slug" json:"slug"`
	Content   string `form:"content" json:"content"`
	ImageFile string `form:"img_file" json:"img_file"`
}

// EmptyPost returns the placeholder the editor renders as a create
// form: sentinel ID 0 and blank fields.
func EmptyPost() *Post {
	return &Post{
		ID:        0,
		CreatedAt: time.Now(),
	}
}
