package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every externally-owned value the application consumes.
// Loaded once at startup and passed into component constructors.
type Config struct {
	App struct {
		Env  string `yaml:"env"`
		Port int    `yaml:"port"`
	} `yaml:"app"`

	Database struct {
		Driver string `yaml:"driver"` // "mysql" or "sqlite"
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`

	Blog struct {
		Name         string `yaml:"name"`
		Tagline      string `yaml:"tagline"`
		About        string `yaml:"about"`
		PostsPerPage int    `yaml:"posts_per_page"`
	} `yaml:"blog"`

	Admin struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		// PasswordHash, when set, takes precedence over Password
		// and holds a bcrypt hash.
		PasswordHash string `yaml:"password_hash"`
	} `yaml:"admin"`

	Session struct {
		Secret    string `yaml:"secret"`
		ExpiresIn int    `yaml:"expires_in"` // minutes
	} `yaml:"session"`

	Upload struct {
		Dir string `yaml:"dir"`
	} `yaml:"upload"`

	Mail struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		// Recipient is the admin mailbox contact notifications go to;
		// defaults to Username.
		Recipient string `yaml:"recipient"`
	} `yaml:"mail"`

	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		PoolSize int    `yaml:"pool_size"`
	} `yaml:"redis"`

	CORS struct {
		AllowOrigins string `yaml:"allow_origins"`
	} `yaml:"cors"`
}

// Load reads the YAML config file, applies environment overrides and
// fills defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("session secret is required (session.secret or SESSION_SECRET)")
	}
	if cfg.Admin.Username == "" {
		return nil, fmt.Errorf("admin username is required (admin.username or ADMIN_USER)")
	}

	return cfg, nil
}

// applyEnvOverrides lets environment variables win over file values
func applyEnvOverrides(cfg *Config) {
	setString(&cfg.App.Env, "APP_ENV")
	setInt(&cfg.App.Port, "APP_PORT")
	setString(&cfg.Database.Driver, "DB_DRIVER")
	setString(&cfg.Database.DSN, "DB_DSN")
	setString(&cfg.Upload.Dir, "UPLOAD_DIR")
	setInt(&cfg.Blog.PostsPerPage, "POSTS_PER_PAGE")
	setString(&cfg.Admin.Username, "ADMIN_USER")
	setString(&cfg.Admin.Password, "ADMIN_PASSWORD")
	setString(&cfg.Admin.PasswordHash, "ADMIN_PASSWORD_HASH")
	setString(&cfg.Session.Secret, "SESSION_SECRET")
	setString(&cfg.Mail.Host, "MAIL_HOST")
	setInt(&cfg.Mail.Port, "MAIL_PORT")
	setString(&cfg.Mail.Username, "MAIL_USERNAME")
	setString(&cfg.Mail.Password, "MAIL_PASSWORD")
	setString(&cfg.Mail.Recipient, "MAIL_RECIPIENT")
	setString(&cfg.Redis.Host, "REDIS_HOST")
	setInt(&cfg.Redis.Port, "REDIS_PORT")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.CORS.AllowOrigins, "CORS_ALLOW_ORIGINS")
}

func applyDefaults(cfg *Config) {
	if cfg.App.Env == "" {
		cfg.App.Env = "local"
	}
	if cfg.App.Port == 0 {
		cfg.App.Port = 8080
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "mysql"
	}
	if cfg.Blog.PostsPerPage < 1 {
		cfg.Blog.PostsPerPage = 5
	}
	if cfg.Session.ExpiresIn < 1 {
		cfg.Session.ExpiresIn = 60
	}
	if cfg.Upload.Dir == "" {
		cfg.Upload.Dir = "uploads"
	}
	if cfg.Mail.Port == 0 {
		cfg.Mail.Port = 465
	}
	if cfg.Mail.Recipient == "" {
		cfg.Mail.Recipient = cfg.Mail.Username
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Redis.PoolSize == 0 {
		cfg.Redis.PoolSize = 10
	}
}

// SessionTTL returns the session lifetime as a duration
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.ExpiresIn) * time.Minute
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
