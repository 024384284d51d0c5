package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/mbarnoyev/skill-exchange/internal/facades"
	"github.com/mbarnoyev/skill-exchange/internal/handlers"
	"github.com/mbarnoyev/skill-exchange/internal/jwt"
	"github.com/mbarnoyev/skill-exchange/internal/logger"
	"github.com/mbarnoyev/skill-exchange/internal/middlewares"
	"github.com/mbarnoyev/skill-exchange/internal/migrations"
	"github.com/mbarnoyev/skill-exchange/internal/repositories"
	"github.com/mbarnoyev/skill-exchange/internal/s3"
	"github.com/mbarnoyev/skill-exchange/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mbarnoyev/skill-exchange/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title skill-exchange API
// @version 1.0.0
// @description REST backend for a skill exchange social platform
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds all application settings resolved from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string

	KafkaAddr  string
	KafkaTopic string

	S3Endpoint     string
	S3Region       string
	S3Bucket       string
	S3AccessKey    string
	S3SecretKey    string
	S3UsePathStyle bool
	S3BaseURL      string

	JWTSecretKey string
	JWTExpSecond int
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, S3, logging, and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "skillexchange")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config. An empty address disables mail delivery.
	cfg.KafkaAddr = getEnv("KAFKA_ADDR", "")
	cfg.KafkaTopic = getEnv("KAFKA_OTP_TOPIC", "otp-emails")

	// S3 config
	cfg.S3Endpoint = getEnv("S3_ENDPOINT", "")
	cfg.S3Region = getEnv("S3_REGION", "us-east-1")
	cfg.S3Bucket = getEnv("S3_BUCKET", "skill-exchange-media")
	cfg.S3AccessKey = getEnv("S3_ACCESS_KEY", "")
	cfg.S3SecretKey = getEnv("S3_SECRET_KEY", "")
	cfg.S3UsePathStyle = getEnv("S3_USE_PATH_STYLE", "true") == "true"
	cfg.S3BaseURL = getEnv("S3_BASE_URL", "")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, S3, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.PGHost, cfg.PGPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Apply migrations
	if err := migrations.Up(db); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for OTP mail events
	var kafkaWriter facades.KafkaWriter
	if cfg.KafkaAddr != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaAddr),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		kafkaWriter = writer
	} else {
		logger.Log.Warn("KAFKA_ADDR is not set, OTP emails will not be delivered")
	}

	// S3 uploader for profile pictures and certificates
	uploader, err := s3.NewFileUploader(ctx, s3.Config{
		Endpoint:     cfg.S3Endpoint,
		Region:       cfg.S3Region,
		BucketName:   cfg.S3Bucket,
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
		UsePathStyle: cfg.S3UsePathStyle,
		BaseURL:      cfg.S3BaseURL,
	})
	if err != nil {
		return fmt.Errorf("S3 client error: %w", err)
	}

	// Initialize JWT service
	jwtSvc := jwt.New(cfg.JWTSecretKey, time.Duration(cfg.JWTExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	requestReadRepo := repositories.NewFriendRequestReadRepository(db)
	requestWriteRepo := repositories.NewFriendRequestWriteRepository(db, middlewares.GetTxFromContext)
	skillReadRepo := repositories.NewSkillReadRepository(db)
	skillWriteRepo := repositories.NewSkillWriteRepository(db)
	otpRepo := repositories.NewOTPRepository(rdb, services.OTPTTL)

	// Initialize facades
	mailer := facades.NewOTPMailFacade(kafkaWriter)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, otpRepo, mailer, jwtSvc)
	userService := services.NewUserService(userReadRepo, userWriteRepo, uploader)
	friendService := services.NewFriendService(userReadRepo, userWriteRepo, requestReadRepo, requestWriteRepo)
	skillService := services.NewSkillService(skillReadRepo, skillWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(jwtSvc)
	txMiddleware := middlewares.TxMiddleware(db)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Post("/send-otp", handlers.NewSendOTPHandler(authService))
		r.Post("/verify-otp", handlers.NewVerifyOTPHandler(authService))
		r.Post("/verify-login", handlers.NewVerifyLoginHandler(authService))
		r.Get("/users/search", handlers.NewSearchUsersHandler(userService))
		r.Get("/users/{id}", handlers.NewGetUserHandler(userService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Get("/users/me", handlers.NewGetMeHandler(userService))
			r.Patch("/users/me", handlers.NewUpdateMeHandler(userService))
			r.Post("/users/me/profile-picture", handlers.NewUploadProfilePictureHandler(userService))
			r.Post("/users/me/certificates", handlers.NewUploadCertificatesHandler(userService))

			r.Post("/skills", handlers.NewCreateSkillHandler(skillService))
			r.Get("/skills", handlers.NewListSkillsHandler(skillService))
			r.Patch("/skills/{id}", handlers.NewUpdateSkillHandler(skillService))
			r.Delete("/skills/{id}", handlers.NewDeleteSkillHandler(skillService))

			r.Get("/friends", handlers.NewListFriendsHandler(friendService))
			r.Post("/friends/request/{userId}", handlers.NewSendFriendRequestHandler(friendService))

			// Accepting a request writes the status change and both friendship
			// rows, so the route runs inside a transaction.
			r.With(txMiddleware).Post("/friends/respond/{requestId}", handlers.NewRespondToFriendRequestHandler(friendService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
