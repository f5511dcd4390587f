package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/soulsync/docs"
	"github.com/sbilibin2017/soulsync/internal/config"
	"github.com/sbilibin2017/soulsync/internal/facades"
	"github.com/sbilibin2017/soulsync/internal/handlers"
	"github.com/sbilibin2017/soulsync/internal/jwt"
	"github.com/sbilibin2017/soulsync/internal/logger"
	"github.com/sbilibin2017/soulsync/internal/middlewares"
	"github.com/sbilibin2017/soulsync/internal/migrations"
	"github.com/sbilibin2017/soulsync/internal/password"
	"github.com/sbilibin2017/soulsync/internal/repositories"
	"github.com/sbilibin2017/soulsync/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title SoulSync API
// @version 1.0.0
// @description Music sharing service: accounts, tracks and likes
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// dependencies are the optional backends of the router.
// A nil cache or publisher disables that feature.
type dependencies struct {
	db        *sqlx.DB
	cache     services.TrackCache
	publisher services.LikeEventPublisher
	registry  *prometheus.Registry
	limiter   *middlewares.RateLimiter
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It blocks until ctx is cancelled or a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	if err := migrations.Apply(ctx, db); err != nil {
		return err
	}

	deps := dependencies{
		db:       db,
		registry: prometheus.NewRegistry(),
		limiter:  middlewares.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst, 10*time.Minute),
	}
	deps.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Redis track cache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr(),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		deps.cache = repositories.NewTrackCacheRepository(rdb, cfg.TrackCacheTTL)
		logger.Log.Infof("Track cache enabled at %s", cfg.RedisAddr())
	}

	// Kafka like events
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaLikesTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer writer.Close()
		deps.publisher = facades.NewLikeEventsKafkaFacade(writer)
		logger.Log.Infof("Publishing like events to topic %s", cfg.KafkaLikesTopic)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(cfg, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go cleanupLimiter(ctxShutdown, deps.limiter)

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers into the HTTP routing tree.
func newRouter(cfg *config.Config, deps dependencies) http.Handler {
	tokens := jwt.New(cfg.JWTSecretKey, cfg.AccessTokenTTL())
	hasher := password.New(cfg.BcryptCost)

	// Repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(deps.db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(deps.db, txGetter)
	sessionRepo := repositories.NewSessionRepository(deps.db, txGetter)
	trackReadRepo := repositories.NewTrackReadRepository(deps.db, txGetter)
	trackWriteRepo := repositories.NewTrackWriteRepository(deps.db, txGetter)
	likeReadRepo := repositories.NewLikeReadRepository(deps.db, txGetter)
	likeWriteRepo := repositories.NewLikeWriteRepository(deps.db, txGetter)

	// Services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, sessionRepo, tokens, hasher)
	userService := services.NewUserService(userReadRepo, userReadRepo, userWriteRepo, hasher)
	trackService := services.NewTrackService(trackReadRepo, trackWriteRepo, deps.cache, middlewares.AfterCommit)
	likeService := services.NewLikeService(likeReadRepo, likeWriteRepo, trackReadRepo, deps.publisher)

	currentUser := handlers.CurrentUserFunc(middlewares.GetUserFromContext)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware(middlewares.NewMetrics(deps.registry)))

	r.Get("/", handlers.NewRootHandler())
	r.Handle("/metrics", promhttp.HandlerFor(deps.registry, promhttp.HandlerOpts{}))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	docs.SwaggerInfo.Host = cfg.Addr()
	docs.SwaggerInfo.BasePath = cfg.APIPrefix
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.Addr())),
	))

	r.Route(cfg.APIPrefix, func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(deps.db))

		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Use(middlewares.RateLimitMiddleware(deps.limiter))
			r.Post("/register", handlers.NewRegisterHandler(authService))
			r.Post("/token", handlers.NewTokenHandler(authService))
			r.Post("/refresh", handlers.NewRefreshHandler(authService))
		})
		r.Get("/tracks", handlers.NewListTracksHandler(trackService))
		r.Get("/tracks/random", handlers.NewRandomTracksHandler(trackService))
		r.Get("/tracks/search", handlers.NewSearchTracksHandler(trackService))
		r.Get("/tracks/{track_id}", handlers.NewGetTrackHandler(trackService))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens, authService))

			r.Get("/users", handlers.NewListUsersHandler(userService, currentUser))
			r.Get("/users/me", handlers.NewGetMeHandler(currentUser))
			r.Put("/users/me", handlers.NewUpdateMeHandler(userService, currentUser))

			r.Post("/tracks", handlers.NewCreateTrackHandler(trackService, currentUser))
			r.Put("/tracks/{track_id}", handlers.NewUpdateTrackHandler(trackService, currentUser))
			r.Delete("/tracks/{track_id}", handlers.NewDeleteTrackHandler(trackService, currentUser))

			r.Get("/likes", handlers.NewListLikesHandler(likeService, currentUser))
			r.Post("/likes", handlers.NewCreateLikeHandler(likeService, currentUser))
			r.Get("/likes/search", handlers.NewSearchLikesHandler(likeService, currentUser))
			r.Get("/likes/check/{track_id}", handlers.NewCheckLikeHandler(likeService, currentUser))
			r.Delete("/likes/{track_id}", handlers.NewDeleteLikeHandler(likeService, currentUser))
		})
	})

	return gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(cfg.CORSOrigins),
		gorillahandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		gorillahandlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)(r)
}

// cleanupLimiter evicts idle rate limiter entries until ctx is done.
func cleanupLimiter(ctx context.Context, rl *middlewares.RateLimiter) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Cleanup()
		}
	}
}
