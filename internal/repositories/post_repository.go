package repositories

import (
	"context"
	"database/sql"
	"errors"

	"bloghub/internal/models"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id int64) error
	IncrementCommentCount(ctx context.Context, id int64) error
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

const postColumns = `id, user_id, title, slug, content, image_url, comment_count, created_at, updated_at`

func scanPost(row scanner) (*models.Post, error) {
	p := &models.Post{}
	if err := row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.Slug, &p.Content, &p.ImageURL,
		&p.CommentCount, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (user_id, title, slug, content, image_url, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, comment_count`
	return r.db.QueryRowContext(ctx, query,
		post.UserID, post.Title, post.Slug, post.Content, post.ImageURL,
		post.CreatedAt, post.UpdatedAt,
	).Scan(&post.ID, &post.CommentCount)
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	p, err := scanPost(r.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (r *postRepository) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+postColumns+` FROM posts ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET title=$1, slug=$2, content=$3, updated_at=$4
		WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, post.Title, post.Slug, post.Content, post.UpdatedAt, post.ID)
	return err
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id=$1`, id)
	return err
}

func (r *postRepository) IncrementCommentCount(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE posts SET comment_count = comment_count + 1 WHERE id=$1`, id)
	return err
}
