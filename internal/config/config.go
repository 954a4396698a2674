package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config/config.yaml"

type FilesConfig struct {
	RootDir   string `yaml:"root_dir"`
	PublicURL string `yaml:"public_url"`
}

type StorageConfig struct {
	Driver    string `yaml:"driver"` // local | s3
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	PublicURL string `yaml:"public_url"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN         string `yaml:"url"`
		AutoMigrate bool   `yaml:"auto_migrate"`
	} `yaml:"database"`
	JWT struct {
		Secret string        `yaml:"secret"`
		TTL    time.Duration `yaml:"ttl"`
	} `yaml:"jwt"`
	OTP struct {
		TTL time.Duration `yaml:"ttl"`
	} `yaml:"otp"`
	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		DryRun       bool   `yaml:"dry_run"`
	} `yaml:"email"`
	Files   FilesConfig   `yaml:"files"`
	Storage StorageConfig `yaml:"storage"`
	Reports struct {
		// пусто: встроенный Helvetica, без кириллицы
		FontPath string `yaml:"font_path"`
	} `yaml:"reports"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // text | json
	} `yaml:"log"`
}

// LoadConfig reads the yaml file, applies BLOGHUB_* env overrides (a .env file is honored)
// and fills defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	// .env необязателен
	_ = godotenv.Load()

	var cfg Config
	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// работаем только на env + defaults
	default:
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	setStr := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setStr("BLOGHUB_DATABASE_URL", &c.Database.DSN)
	setStr("BLOGHUB_JWT_SECRET", &c.JWT.Secret)
	setStr("BLOGHUB_SMTP_HOST", &c.Email.SMTPHost)
	setStr("BLOGHUB_SMTP_USER", &c.Email.SMTPUser)
	setStr("BLOGHUB_SMTP_PASSWORD", &c.Email.SMTPPassword)
	setStr("BLOGHUB_FROM_EMAIL", &c.Email.FromEmail)
	setStr("BLOGHUB_STORAGE_DRIVER", &c.Storage.Driver)
	setStr("BLOGHUB_S3_ACCESS_KEY", &c.Storage.AccessKey)
	setStr("BLOGHUB_S3_SECRET_KEY", &c.Storage.SecretKey)
	setStr("BLOGHUB_LOG_LEVEL", &c.Log.Level)

	if v, ok := os.LookupEnv("BLOGHUB_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BLOGHUB_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v, ok := os.LookupEnv("BLOGHUB_SMTP_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BLOGHUB_SMTP_PORT: %w", err)
		}
		c.Email.SMTPPort = port
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 7000
	}
	if c.JWT.TTL <= 0 {
		c.JWT.TTL = 30 * 24 * time.Hour
	}
	if c.OTP.TTL <= 0 {
		c.OTP.TTL = 10 * time.Minute
	}
	if c.Email.SMTPPort == 0 {
		c.Email.SMTPPort = 587
	}
	if c.Files.RootDir == "" {
		c.Files.RootDir = "./files"
	}
	if c.Files.PublicURL == "" {
		c.Files.PublicURL = "/files"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "local"
	}
	if c.Storage.Region == "" {
		c.Storage.Region = "us-east-1"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("jwt.secret is required")
	}
	switch c.Storage.Driver {
	case "local":
	case "s3":
		if c.Storage.Bucket == "" {
			return errors.New("storage.bucket is required for s3 driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	return nil
}
