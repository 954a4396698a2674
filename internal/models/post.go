package models

import "time"

type Post struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Content      string    `json:"content"`
	ImageURL     string    `json:"image_url"`
	CommentCount int64     `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Comments []Comment `json:"comments,omitempty"`
}

type PostRequest struct {
	Title   string `form:"title" json:"title" binding:"required,min=1"`
	Content string `form:"content" json:"content" binding:"required,min=1"`
}
