package models

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	UserID    int64     `json:"user_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// автор, подтягивается при выдаче списков
	Author *CommentAuthor `json:"user,omitempty"`
}

type CommentAuthor struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	ProfileImageURL string `json:"profile_image_url"`
}

type CommentRequest struct {
	Comment string `json:"comment" binding:"required,min=1,max=2000"`
}
