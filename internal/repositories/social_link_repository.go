package repositories

import (
	"context"
	"database/sql"
	"errors"

	"bloghub/internal/models"
)

type SocialLinkRepository interface {
	Find(ctx context.Context, userID int64, platform models.Platform) (*models.SocialMediaLink, error)
	Create(ctx context.Context, link *models.SocialMediaLink) error
	ListByUser(ctx context.Context, userID int64) ([]models.SocialMediaLink, error)
}

type socialLinkRepository struct {
	db *sql.DB
}

func NewSocialLinkRepository(db *sql.DB) SocialLinkRepository {
	return &socialLinkRepository{db: db}
}

func (r *socialLinkRepository) Find(ctx context.Context, userID int64, platform models.Platform) (*models.SocialMediaLink, error) {
	l := &models.SocialMediaLink{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, platform, url, created_at
		FROM social_media_links
		WHERE user_id = $1 AND platform = $2
	`, userID, platform).Scan(&l.ID, &l.UserID, &l.Platform, &l.URL, &l.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Create returns ErrDuplicate if (user_id, platform) already exists.
func (r *socialLinkRepository) Create(ctx context.Context, link *models.SocialMediaLink) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO social_media_links (user_id, platform, url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, link.UserID, link.Platform, link.URL).Scan(&link.ID, &link.CreatedAt)
	return mapWriteErr(err)
}

func (r *socialLinkRepository) ListByUser(ctx context.Context, userID int64) ([]models.SocialMediaLink, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, platform, url, created_at
		FROM social_media_links
		WHERE user_id = $1
		ORDER BY platform
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.SocialMediaLink{}
	for rows.Next() {
		var l models.SocialMediaLink
		if err := rows.Scan(&l.ID, &l.UserID, &l.Platform, &l.URL, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
