package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/studylink/studylink-backend/internal/config"
	"github.com/studylink/studylink-backend/internal/handler"
	"github.com/studylink/studylink-backend/internal/middleware"
	"github.com/studylink/studylink-backend/internal/migration"
	"github.com/studylink/studylink-backend/internal/repository"
	"github.com/studylink/studylink-backend/internal/routes"
	"github.com/studylink/studylink-backend/internal/service"
	pkgjwt "github.com/studylink/studylink-backend/pkg/jwt"
	pkglogger "github.com/studylink/studylink-backend/pkg/logger"
	pkgredis "github.com/studylink/studylink-backend/pkg/redis"
)

// @title           StudyLink Backend API
// @version         1.0
// @description     Study partner matching - swipe, match, chat
//
// @host            localhost:8080
// @BasePath        /api
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pkglogger.Init(cfg.App.Env)
	zlog := pkglogger.GetLogger()
	zlog.Info().Str("env", cfg.App.Env).Msg("starting studylink-backend")

	// MySQL
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	zlog.Info().Str("host", cfg.Database.Host).Msg("connected to MySQL")

	// Redis (optional; rate limiting degrades gracefully without it)
	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		redisClient, err = pkgredis.NewClient(
			cfg.Redis.Host,
			cfg.Redis.Port,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.PoolSize,
		)
		if err != nil {
			zlog.Warn().Err(err).Msg("Redis unavailable, continuing without rate limiting")
			redisClient = nil
		} else {
			zlog.Info().Msg("connected to Redis")
		}
	}

	// JWT Manager
	jwtManager := pkgjwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn, cfg.JWT.RefreshIn)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	swipeRepo := repository.NewSwipeRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	chatRoomRepo := repository.NewChatRoomRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Services
	chatService := service.NewChatService(chatRoomRepo, messageRepo, userRepo)
	matchService := service.NewMatchService(swipeRepo, matchRepo, userRepo, chatService)
	authService := service.NewAuthService(userRepo, profileRepo, jwtManager)
	profileService := service.NewProfileService(profileRepo, userRepo)

	// Handlers
	h := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Match:   handler.NewMatchHandler(matchService),
		Chat:    handler.NewChatHandler(chatService),
		Profile: handler.NewProfileHandler(profileService),
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS
	corsConfig := cors.Config{
		AllowOrigins:     splitAndTrim(cfg.CORS.AllowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining"},
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	// Middleware
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())
	if redisClient != nil && !cfg.IsDevelopment() {
		router.Use(middleware.RateLimit(redisClient, middleware.DefaultRateLimitConfig()))
	}

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "studylink-backend",
			"time":    time.Now().Unix(),
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.Setup(router, h, jwtManager, redisClient)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	zlog.Info().Str("addr", addr).Msg("listening")
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// initDB opens the MySQL connection. TranslateError maps driver duplicate-key
// errors to gorm.ErrDuplicatedKey, which the chat provisioner relies on for
// its create-race recovery.
func initDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	}
	if cfg.IsDevelopment() {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
