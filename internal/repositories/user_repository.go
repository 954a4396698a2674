package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bloghub/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// registration
	SetRegistrationOTP(ctx context.Context, id int64, otp int, expiresAt time.Time) error
	ConsumeRegistrationOTP(ctx context.Context, email string, otp int, now time.Time) (*models.User, error)

	// two-factor
	EnableTwoFactor(ctx context.Context, id int64) (bool, error)
	DisableTwoFactor(ctx context.Context, id int64) (bool, error)
	SetTwoFactorEmailOTP(ctx context.Context, id int64, email string, otp int, expiresAt time.Time) (bool, error)
	ConsumeTwoFactorEmailOTP(ctx context.Context, id int64, email string, otp int, now time.Time) (bool, error)

	// password reset
	SetPasswordResetOTP(ctx context.Context, id int64, otp int, expiresAt time.Time) error
	ConsumePasswordResetOTP(ctx context.Context, id int64, otp int, now time.Time, passwordHash string) (bool, error)

	// images
	UpdateProfileImage(ctx context.Context, id int64, url string) error
	UpdateCoverImage(ctx context.Context, id int64, url string) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

const userColumns = `
	id, name, email, password_hash, account_verified,
	registration_otp, registration_otp_expires_at,
	two_factor_enabled, two_factor_email, two_factor_email_otp, two_factor_otp_expires_at, two_factor_email_verified,
	password_reset_otp, password_reset_otp_expires_at,
	profile_image_url, cover_image_url, created_at`

func scanUser(row scanner) (*models.User, error) {
	u := &models.User{}
	var (
		regOTP   sql.NullInt64
		regExp   sql.NullTime
		tfEmail  sql.NullString
		tfOTP    sql.NullInt64
		tfExp    sql.NullTime
		resetOTP sql.NullInt64
		resetExp sql.NullTime
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.AccountVerified,
		&regOTP, &regExp,
		&u.TwoFactorEnabled, &tfEmail, &tfOTP, &tfExp, &u.TwoFactorEmailVerified,
		&resetOTP, &resetExp,
		&u.ProfileImageURL, &u.CoverImageURL, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.RegistrationOTP = intPtr(regOTP)
	u.RegistrationOTPExpiresAt = timePtr(regExp)
	if tfEmail.Valid {
		s := tfEmail.String
		u.TwoFactorEmail = &s
	}
	u.TwoFactorEmailOTP = intPtr(tfOTP)
	u.TwoFactorOTPExpiresAt = timePtr(tfExp)
	u.PasswordResetOTP = intPtr(resetOTP)
	u.PasswordResetOTPExpiresAt = timePtr(resetExp)
	return u, nil
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	const q = `
		INSERT INTO users (
			name, email, password_hash, account_verified,
			registration_otp, registration_otp_expires_at, profile_image_url
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, q,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.AccountVerified,
		nullInt(user.RegistrationOTP),
		user.RegistrationOTPExpiresAt,
		user.ProfileImageURL,
	).Scan(&user.ID, &user.CreatedAt)
	return mapWriteErr(err)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

// ===== registration =====

func (r *userRepository) SetRegistrationOTP(ctx context.Context, id int64, otp int, expiresAt time.Time) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE users
		SET registration_otp=$2, registration_otp_expires_at=$3
		WHERE id=$1 AND account_verified=FALSE
	`, id, otp, expiresAt)
	return err
}

// ConsumeRegistrationOTP verifies the account in one conditional update.
// Returns nil, nil when the code does not match (or already consumed / expired).
func (r *userRepository) ConsumeRegistrationOTP(ctx context.Context, email string, otp int, now time.Time) (*models.User, error) {
	q := `
		UPDATE users
		SET account_verified=TRUE, registration_otp=NULL, registration_otp_expires_at=NULL
		WHERE email=$1 AND registration_otp=$2 AND account_verified=FALSE
			AND (registration_otp_expires_at IS NULL OR registration_otp_expires_at > $3)
		RETURNING ` + userColumns
	u, err := scanUser(r.DB.QueryRowContext(ctx, q, email, otp, now))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

// ===== two-factor =====

func (r *userRepository) EnableTwoFactor(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE users SET two_factor_enabled=TRUE
		WHERE id=$1 AND two_factor_enabled=FALSE
	`, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// DisableTwoFactor also drops the two-factor email state, it is meaningless without 2FA.
func (r *userRepository) DisableTwoFactor(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE users
		SET two_factor_enabled=FALSE,
			two_factor_email=NULL,
			two_factor_email_otp=NULL,
			two_factor_otp_expires_at=NULL,
			two_factor_email_verified=FALSE
		WHERE id=$1 AND two_factor_enabled=TRUE
	`, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (r *userRepository) SetTwoFactorEmailOTP(ctx context.Context, id int64, email string, otp int, expiresAt time.Time) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE users
		SET two_factor_email=$2,
			two_factor_email_otp=$3,
			two_factor_otp_expires_at=$4,
			two_factor_email_verified=FALSE
		WHERE id=$1 AND two_factor_enabled=TRUE
	`, id, email, otp, expiresAt)
	if err != nil {
		return false, mapWriteErr(err)
	}
	return affected(res)
}

func (r *userRepository) ConsumeTwoFactorEmailOTP(ctx context.Context, id int64, email string, otp int, now time.Time) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE users
		SET two_factor_email_otp=NULL, two_factor_otp_expires_at=NULL, two_factor_email_verified=TRUE
		WHERE id=$1 AND two_factor_enabled=TRUE AND two_factor_email=$2 AND two_factor_email_otp=$3
			AND (two_factor_otp_expires_at IS NULL OR two_factor_otp_expires_at > $4)
	`, id, email, otp, now)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// ===== password reset =====

func (r *userRepository) SetPasswordResetOTP(ctx context.Context, id int64, otp int, expiresAt time.Time) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE users
		SET password_reset_otp=$2, password_reset_otp_expires_at=$3
		WHERE id=$1
	`, id, otp, expiresAt)
	return err
}

func (r *userRepository) ConsumePasswordResetOTP(ctx context.Context, id int64, otp int, now time.Time, passwordHash string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE users
		SET password_hash=$4, password_reset_otp=NULL, password_reset_otp_expires_at=NULL
		WHERE id=$1 AND password_reset_otp=$2
			AND (password_reset_otp_expires_at IS NULL OR password_reset_otp_expires_at > $3)
	`, id, otp, now, passwordHash)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// ===== images =====

func (r *userRepository) UpdateProfileImage(ctx context.Context, id int64, url string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE users SET profile_image_url=$2 WHERE id=$1`, id, url)
	return err
}

func (r *userRepository) UpdateCoverImage(ctx context.Context, id int64, url string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE users SET cover_image_url=$2 WHERE id=$1`, id, url)
	return err
}
