package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
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
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-user-records/docs"
	"github.com/sbilibin2017/gw-user-records/internal/handlers"
	"github.com/sbilibin2017/gw-user-records/internal/logger"
	"github.com/sbilibin2017/gw-user-records/internal/middlewares"
	"github.com/sbilibin2017/gw-user-records/internal/repositories"
	"github.com/sbilibin2017/gw-user-records/internal/services"
	"github.com/sbilibin2017/gw-user-records/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// shutdownTimeout bounds how long in-flight requests may finish after a stop signal.
const shutdownTimeout = 10 * time.Second

// @title gw-user-records API
// @version 1.0.0
// @description Service storing user records with create, read, replace and delete over HTTP
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		dbDriver, dbDSN,
		dbMaxOpenConns, dbMaxIdleConns,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		dbDriver, dbDSN,
		dbMaxOpenConns, dbMaxIdleConns,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, logging and database configuration.
// A missing file is not an error; the process environment and defaults apply.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	dbDriver, dbDSN string,
	dbMaxOpenConns, dbMaxIdleConns int,
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
	appHost = getEnv("APP_HOST", "127.0.0.1")
	appPort = getEnv("APP_PORT", "80")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	if _, err = strconv.Atoi(appPort); err != nil {
		err = fmt.Errorf("APP_PORT: %w", err)
		return
	}

	// Database config
	dbDriver = getEnv("DB_DRIVER", storage.DriverSQLite)
	dbDSN = getEnv("DB_DSN", "database.db")
	if dbMaxOpenConns, err = strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "1")); err != nil {
		err = fmt.Errorf("DB_MAX_OPEN_CONNS: %w", err)
		return
	}
	if dbMaxIdleConns, err = strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "1")); err != nil {
		err = fmt.Errorf("DB_MAX_IDLE_CONNS: %w", err)
		return
	}

	return
}

// run initializes the logger and the store, serves HTTP until ctx is done
// or a stop signal arrives, then shuts the server down gracefully.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	dbDriver, dbDSN string,
	dbMaxOpenConns, dbMaxIdleConns int,
) error {
	if err := logger.Initialize(logLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	logger.Log.Infow("opening database", "driver", dbDriver)
	db, err := storage.Open(ctx, dbDriver, dbDSN, dbMaxOpenConns, dbMaxIdleConns)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	addr := net.JoinHostPort(appHost, appPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(db, fmt.Sprintf("http://%s/swagger/doc.json", addr)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, the service and handlers onto a chi router.
func newRouter(db *sqlx.DB, swaggerURL string) http.Handler {
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)

	userService := services.NewUserService(userReadRepo, userWriteRepo)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/", handlers.NewRootHandler())
	r.With(middlewares.TxMiddleware(db)).
		Get("/create_fake_users", handlers.NewCreateFakeUsersHandler(userService))

	r.Get("/users", handlers.NewListUsersHandler(userService))
	r.Get("/users/{user_id}", handlers.NewGetUserHandler(userService))
	r.Put("/users/{user_id}", handlers.NewUpdateUserHandler(userService))
	r.Delete("/users/{user_id}", handlers.NewDeleteUserHandler(userService))
	r.Post("/new_user", handlers.NewCreateUserHandler(userService))

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}
