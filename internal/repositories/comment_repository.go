package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"bloghub/internal/models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	ListByPosts(ctx context.Context, postIDs []int64) (map[int64][]models.Comment, error)
	Update(ctx context.Context, id int64, text string, updatedAt time.Time) error
	Delete(ctx context.Context, id int64) error
}

type commentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) CommentRepository {
	return &commentRepository{db: db}
}

// комментарии вместе с автором
const commentWithAuthorSelect = `
	SELECT c.id, c.post_id, c.user_id, c.comment, c.created_at, c.updated_at,
		u.id, u.name, u.profile_image_url
	FROM comments c
	JOIN users u ON u.id = c.user_id`

func scanCommentWithAuthor(row scanner) (*models.Comment, error) {
	c := &models.Comment{Author: &models.CommentAuthor{}}
	if err := row.Scan(
		&c.ID, &c.PostID, &c.UserID, &c.Comment, &c.CreatedAt, &c.UpdatedAt,
		&c.Author.ID, &c.Author.Name, &c.Author.ProfileImageURL,
	); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (post_id, user_id, comment, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		comment.PostID, comment.UserID, comment.Comment, comment.CreatedAt, comment.UpdatedAt,
	).Scan(&comment.ID)
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	c := &models.Comment{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, post_id, user_id, comment, created_at, updated_at FROM comments WHERE id = $1`, id,
	).Scan(&c.ID, &c.PostID, &c.UserID, &c.Comment, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, commentWithAuthorSelect+`
		WHERE c.post_id = $1
		ORDER BY c.created_at, c.id`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		c, err := scanCommentWithAuthor(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}
	return comments, rows.Err()
}

func (r *commentRepository) ListByPosts(ctx context.Context, postIDs []int64) (map[int64][]models.Comment, error) {
	out := make(map[int64][]models.Comment, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}
	rows, err := r.db.QueryContext(ctx, commentWithAuthorSelect+`
		WHERE c.post_id = ANY($1)
		ORDER BY c.post_id, c.created_at, c.id`, pq.Array(postIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanCommentWithAuthor(rows)
		if err != nil {
			return nil, err
		}
		out[c.PostID] = append(out[c.PostID], *c)
	}
	return out, rows.Err()
}

func (r *commentRepository) Update(ctx context.Context, id int64, text string, updatedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE comments SET comment=$1, updated_at=$2 WHERE id=$3`, text, updatedAt, id)
	return err
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id=$1`, id)
	return err
}
