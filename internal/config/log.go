package config

import (
	"github.com/inkwell/inkwell-backend/pkg/logger"
)

// LogResolved logs the resolved non-secret configuration at startup
func LogResolved(cfg *Config) {
	logger.GetLogger().Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.App.Port).
		Str("db_driver", cfg.Database.Driver).
		Str("upload_dir", cfg.Upload.Dir).
		Int("posts_per_page", cfg.Blog.PostsPerPage).
		Int("session_expires_min", cfg.Session.ExpiresIn).
		Bool("redis_enabled", cfg.Redis.Enabled).
		Str("mail_host", cfg.Mail.Host).
		Msg("configuration resolved")
}
