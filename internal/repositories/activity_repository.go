package repositories

import (
	"context"
	"database/sql"

	"bloghub/internal/models"
)

type ActivityRepository interface {
	Append(ctx context.Context, entry *models.ActivityLog) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error)
}

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Append(ctx context.Context, entry *models.ActivityLog) error {
	const q = `
		INSERT INTO activity_logs (user_id, post_id, comment_id, action)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, q, entry.UserID, entry.PostID, entry.CommentID, entry.Action).
		Scan(&entry.ID, &entry.CreatedAt)
}

func (r *activityRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error) {
	const q = `
		SELECT id, user_id, post_id, comment_id, action, created_at
		FROM activity_logs
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ActivityLog{}
	for rows.Next() {
		var (
			e         models.ActivityLog
			postID    sql.NullInt64
			commentID sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &e.UserID, &postID, &commentID, &e.Action, &e.CreatedAt); err != nil {
			return nil, err
		}
		if postID.Valid {
			id := postID.Int64
			e.PostID = &id
		}
		if commentID.Valid {
			id := commentID.Int64
			e.CommentID = &id
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
