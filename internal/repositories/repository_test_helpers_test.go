package repositories

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

var userRowColumns = []string{
	"id", "name", "email", "password_hash", "account_verified",
	"registration_otp", "registration_otp_expires_at",
	"two_factor_enabled", "two_factor_email", "two_factor_email_otp", "two_factor_otp_expires_at", "two_factor_email_verified",
	"password_reset_otp", "password_reset_otp_expires_at",
	"profile_image_url", "cover_image_url", "created_at",
}
