package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	path := writeTempYAML(t, `
server:
  port: 8080
database:
  url: postgres://u:p@localhost/blog?sslmode=disable
jwt:
  secret: s3cr3t
otp:
  ttl: 5m
email:
  smtp_host: smtp.example.com
  from_email: noreply@example.com
  dry_run: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres://u:p@localhost/blog?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, "s3cr3t", cfg.JWT.Secret)
	assert.Equal(t, 30*24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, 5*time.Minute, cfg.OTP.TTL)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.True(t, cfg.Email.DryRun)
	assert.Equal(t, "./files", cfg.Files.RootDir)
	assert.Equal(t, "/files", cfg.Files.PublicURL)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeTempYAML(t, "jwt:\n  secret: from-file\n")
	t.Setenv("BLOGHUB_JWT_SECRET", "from-env")
	t.Setenv("BLOGHUB_PORT", "9090")
	t.Setenv("BLOGHUB_DATABASE_URL", "postgres://env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres://env", cfg.Database.DSN)
}

func TestLoadConfig_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("BLOGHUB_JWT_SECRET", "only-env")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "only-env", cfg.JWT.Secret)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("bad yaml", func(t *testing.T) {
		_, err := LoadConfig(writeTempYAML(t, "server: [unclosed"))
		assert.Error(t, err)
	})
	t.Run("missing secret", func(t *testing.T) {
		_, err := LoadConfig(writeTempYAML(t, "server:\n  port: 1\n"))
		assert.EqualError(t, err, "jwt.secret is required")
	})
	t.Run("bad port env", func(t *testing.T) {
		t.Setenv("BLOGHUB_PORT", "abc")
		_, err := LoadConfig(writeTempYAML(t, "jwt:\n  secret: x\n"))
		assert.Error(t, err)
	})
	t.Run("s3 without bucket", func(t *testing.T) {
		_, err := LoadConfig(writeTempYAML(t, "jwt:\n  secret: x\nstorage:\n  driver: s3\n"))
		assert.EqualError(t, err, "storage.bucket is required for s3 driver")
	})
	t.Run("unknown driver", func(t *testing.T) {
		_, err := LoadConfig(writeTempYAML(t, "jwt:\n  secret: x\nstorage:\n  driver: ftp\n"))
		assert.Error(t, err)
	})
}
