package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
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
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/onlyfilms/onlyfilms/internal/handlers"
	"github.com/onlyfilms/onlyfilms/internal/logger"
	"github.com/onlyfilms/onlyfilms/internal/middlewares"
	"github.com/onlyfilms/onlyfilms/internal/repositories"
	"github.com/onlyfilms/onlyfilms/internal/services"
	"github.com/onlyfilms/onlyfilms/internal/token"
	"github.com/onlyfilms/onlyfilms/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/onlyfilms/onlyfilms/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title onlyfilms API
// @version 1.0.0
// @description Film catalog with user reviews and aggregate scores
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		tokenTTLHours, filmsFile,
		err := parseConfig(configPath)
	if err != nil {
		stdlog.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		tokenTTLHours, filmsFile,
	); err != nil {
		stdlog.Fatalf("application stopped with error: %v", err)
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

// parseConfig loads environment variables from a file and returns all
// application, database, token, and seeding configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	tokenTTLHours int, filmsFile string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "onlyfilms")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Session token config
	if tokenTTLHours, err = strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "12")); err != nil {
		return
	}

	// Optional JSON catalog to seed on startup
	filmsFile = getEnv("FILMS_FILE", "")

	return
}

// run initializes the logger, database, migrations, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	tokenTTLHours int, filmsFile string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Apply migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Initialize token issuer
	issuer := token.New(time.Duration(tokenTTLHours) * time.Hour)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	tokenReadRepo := repositories.NewTokenReadRepository(db)
	tokenWriteRepo := repositories.NewTokenWriteRepository(db, middlewares.GetTxFromContext)
	filmReadRepo := repositories.NewFilmReadRepository(db)
	filmWriteRepo := repositories.NewFilmWriteRepository(db, middlewares.GetTxFromContext)
	reviewReadRepo := repositories.NewReviewReadRepository(db)
	reviewWriteRepo := repositories.NewReviewWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokenReadRepo, tokenWriteRepo, issuer)
	filmService := services.NewFilmService(filmReadRepo, filmWriteRepo)
	reviewService := services.NewReviewService(reviewReadRepo, reviewWriteRepo)

	// Seed the film catalog when a file is configured
	if filmsFile != "" {
		n, err := filmService.LoadFromFile(ctx, filmsFile)
		if err != nil {
			return fmt.Errorf("seeding films from %s: %w", filmsFile, err)
		}
		logger.Log.Infof("Seeded %d films from %s", n, filmsFile)
	}

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	logoutHandler := handlers.NewLogoutHandler(authService)
	filmListHandler := handlers.NewFilmListHandler(filmService)
	filmDetailHandler := handlers.NewFilmDetailHandler(filmService)
	reviewCreateHandler := handlers.NewReviewCreateHandler(reviewService)
	reviewDetailHandler := handlers.NewReviewDetailHandler(reviewService)
	reviewListHandler := handlers.NewReviewListHandler(reviewService)
	reviewDeleteHandler := handlers.NewReviewDeleteHandler(reviewService)

	authMiddleware := middlewares.AuthMiddleware(authService)
	txMiddleware := middlewares.TxMiddleware(db)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(txMiddleware)
			r.Post("/register", registerHandler)
			r.Post("/login", loginHandler)
		})
		r.Get("/films", filmListHandler)
		r.Get("/films/{film_id}", filmDetailHandler)
		r.Get("/films/{film_id}/reviews", reviewListHandler)
		r.Get("/films/{film_id}/reviews/{review_id}", reviewDetailHandler)

		// Protected routes, each mutating request in its own transaction
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(txMiddleware)
			r.Post("/logout", logoutHandler)
			r.Post("/films/{film_id}/review", reviewCreateHandler)
			r.Delete("/films/{film_id}/reviews/{review_id}", reviewDeleteHandler)
		})
	})

	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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
