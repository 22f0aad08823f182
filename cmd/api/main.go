package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/inkwell/inkwell-backend/internal/config"
	"github.com/inkwell/inkwell-backend/internal/handler"
	"github.com/inkwell/inkwell-backend/internal/mailer"
	"github.com/inkwell/inkwell-backend/internal/middleware"
	"github.com/inkwell/inkwell-backend/internal/migration"
	"github.com/inkwell/inkwell-backend/internal/repository"
	"github.com/inkwell/inkwell-backend/internal/routes"
	"github.com/inkwell/inkwell-backend/internal/service"
	pkgcache "github.com/inkwell/inkwell-backend/pkg/cache"
	"github.com/inkwell/inkwell-backend/pkg/jwt"
	pkglogger "github.com/inkwell/inkwell-backend/pkg/logger"
	pkgredis "github.com/inkwell/inkwell-backend/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.LogResolved(cfg)

	// Database
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to %s database", cfg.Database.Driver)
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis (optional; the server runs fully without it)
	var cacheService pkgcache.Service
	if cfg.Redis.Enabled {
		redisClient, redisErr := pkgredis.NewClient(
			cfg.Redis.Host,
			cfg.Redis.Port,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.PoolSize,
		)
		if redisErr != nil {
			pkglogger.Warn("Failed to connect to Redis: %v (continuing without cache)", redisErr)
		} else {
			cacheService = pkgcache.NewService(redisClient)
			pkglogger.Info("Connected to Redis, cache enabled")
		}
	}

	// Mail notifier worker (optional; contact intake persists either way)
	var notifier *mailer.Notifier
	if cfg.Mail.Host != "" {
		notifier = mailer.NewNotifier(
			cfg.Mail.Host,
			cfg.Mail.Port,
			cfg.Mail.Username,
			cfg.Mail.Password,
			cfg.Mail.Recipient,
		)
		go notifier.Run()
		pkglogger.Info("Mail notifier started (recipient: %s)", cfg.Mail.Recipient)
	} else {
		pkglogger.Warn("Mail host not configured, contact notifications disabled")
	}

	// Session token manager
	jwtManager := jwt.NewManager(cfg.Session.Secret, cfg.SessionTTL())

	// Repositories
	postRepo := repository.NewPostRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Services
	postService := service.NewPostService(postRepo, cfg.Blog.PostsPerPage, cacheService)
	authService := service.NewAuthService(cfg, jwtManager)
	mediaService := service.NewMediaService(cfg.Upload.Dir)
	var mailNotifier service.MailNotifier
	if notifier != nil {
		mailNotifier = notifier
	}
	contactService := service.NewContactService(contactRepo, mailNotifier)

	// Handlers
	postHandler := handler.NewPostHandler(postService)
	siteHandler := handler.NewSiteHandler(cfg)
	contactHandler := handler.NewContactHandler(contactService, cfg)
	authHandler := handler.NewAuthHandler(authService, postService, cfg.SessionTTL())
	editorHandler := handler.NewEditorHandler(postService)
	mediaHandler := handler.NewMediaHandler(mediaService)

	// Router
	if env != "development" && env != "dev" && env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	if cfg.CORS.AllowOrigins != "" {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Split(cfg.CORS.AllowOrigins, ","),
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	routes.Setup(
		router,
		postHandler,
		siteHandler,
		contactHandler,
		authHandler,
		editorHandler,
		mediaHandler,
		jwtManager,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	pkglogger.Info("Listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// initDB opens the configured database. MySQL in production; the
// sqlite driver backs local development.
func initDB(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.Database.DSN), &gorm.Config{})
	default:
		return gorm.Open(mysql.Open(cfg.Database.DSN), &gorm.Config{})
	}
}
