package models

import "time"

type ActivityAction string

const (
	ActivityAccountVerified ActivityAction = "account_verified"
	ActivityPostCreated     ActivityAction = "post_created"
	ActivityCommentCreated  ActivityAction = "comment_created"
)

// ActivityLog is append-only.
type ActivityLog struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	PostID    *int64         `json:"post_id,omitempty"`
	CommentID *int64         `json:"comment_id,omitempty"`
	Action    ActivityAction `json:"action"`
	CreatedAt time.Time      `json:"created_at"`
}
