// Package server contains HTTP and WebSocket handlers for the forum API.
package server

import (
	"context"
	"errors"
	"time"

	_ "forumapi/docs" // swagger docs
	"forumapi/internal/bootstrap"
	"forumapi/internal/cache"
	"forumapi/internal/config"
	"forumapi/internal/featureflags"
	"forumapi/internal/middleware"
	"forumapi/internal/models"
	"forumapi/internal/notifications"
	"forumapi/internal/repository"
	"forumapi/internal/security"
	"forumapi/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// tokenManager issues tokens for the auth use cases and verifies access tokens
// for the auth middleware.
type tokenManager interface {
	service.TokenIssuer
	middleware.AccessTokenVerifier
}

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	shutdownCtx    context.Context
	shutdownFn     context.CancelFunc

	userRepo    repository.UserRepository
	authRepo    repository.AuthenticationRepository
	threadRepo  repository.ThreadRepository
	commentRepo repository.CommentRepository
	replyRepo   repository.ReplyRepository
	likeRepo    repository.LikeRepository
	healthRepo  repository.HealthRepository

	tokens       tokenManager
	hasher       service.PasswordHasher
	notifier     *notifications.Notifier
	hub          *notifications.ThreadHub
	views        *cache.ThreadViewCache
	featureFlags *featureflags.Manager

	userService    *service.UserService
	authService    *service.AuthService
	threadService  *service.ThreadService
	commentService *service.CommentService
	replyService   *service.ReplyService
	likeService    *service.LikeService
	healthService  *service.HealthService
}

// NewServer connects to the database and Redis and builds a server on top of them.
func NewServer(ctx context.Context, cfg *config.Config, opts bootstrap.Options) (*Server, error) {
	// Redis is optional: without it the view cache passes through and live events are not published.
	rt, err := bootstrap.InitRuntime(ctx, cfg, opts)
	if err != nil {
		return nil, err
	}
	return NewServerWithDeps(cfg, rt.DB, rt.Redis)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// redisClient may be nil.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if db == nil {
		return nil, errors.New("database is required")
	}

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("forum-api"),
		userRepo:       repository.NewUserRepository(db),
		authRepo:       repository.NewAuthenticationRepository(db),
		threadRepo:     repository.NewThreadRepository(db),
		commentRepo:    repository.NewCommentRepository(db),
		replyRepo:      repository.NewReplyRepository(db),
		likeRepo:       repository.NewLikeRepository(db),
		healthRepo:     repository.NewHealthRepository(db),
		tokens: security.NewTokenManager(
			cfg.AccessTokenKey,
			cfg.RefreshTokenKey,
			time.Duration(cfg.AccessTokenAge)*time.Second,
		),
		hasher:       security.NewBcryptHasher(),
		hub:          notifications.NewThreadHub(),
		featureFlags: featureflags.NewManager(cfg.FeatureFlags),
	}

	if redisClient != nil {
		server.notifier = notifications.NewNotifier(redisClient)
		server.views = cache.NewThreadViewCache(redisClient, time.Duration(cfg.ThreadCacheTTLSeconds)*time.Second)
	}

	// Handlers run concurrently, so nothing may be left for the lazy getters to build.
	server.userSvc()
	server.authSvc()
	server.threadSvc()
	server.commentSvc()
	server.replySvc()
	server.likeSvc()
	server.healthSvc()

	return server, nil
}

// onThreadChange drops the cached view of the thread and tells live viewers about the write.
func (s *Server) onThreadChange(ctx context.Context, ev models.ThreadEvent) {
	s.views.Invalidate(ctx, ev.ThreadID)
	if err := s.notifier.PublishThreadEvent(ctx, ev); err != nil {
		middleware.Logger.WarnContext(ctx, "failed to publish thread event",
			"thread_id", ev.ThreadID, "type", ev.Type, "error", err)
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	app.Use(middleware.TracingMiddleware())

	// Propagates request, trace and user IDs into the user context for the logger
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	app.Use(middleware.StructuredLogger())

	// CORS runs before the limiter so rejected requests still carry CORS headers.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Upgrade, Connection, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return respondFail(c, fiber.StatusTooManyRequests, "terlalu banyak permintaan, coba lagi nanti")
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	auth := middleware.AuthRequired(s.tokens)

	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health", s.HealthCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Post("/users", middleware.RateLimitWithPolicy(
		s.redis, 5, 10*time.Minute, middleware.FailLocal, "register"), s.PostUser)

	authentications := app.Group("/authentications")
	authentications.Post("/", middleware.RateLimitWithPolicy(
		s.redis, 10, 5*time.Minute, middleware.FailLocal, "login"), s.PostAuthentication)
	authentications.Put("/", s.PutAuthentication)
	authentications.Delete("/", s.DeleteAuthentication)

	app.Get("/feature-flags", auth, s.GetFeatureFlags)

	threads := app.Group("/threads")
	threads.Post("/", auth, s.PostThread)
	threads.Get("/:threadId/live", s.requireLiveUpgrade, s.ThreadLiveHandler())
	threads.Get("/:threadId", s.GetThread)

	comments := threads.Group("/:threadId/comments")
	comments.Post("/", auth, s.PostComment)
	comments.Delete("/:commentId", auth, s.DeleteComment)
	comments.Put("/:commentId/likes", auth, s.PutCommentLike)
	comments.Post("/:commentId/replies", auth, s.PostReply)
	comments.Delete("/:commentId/replies/:replyId", auth, s.DeleteReply)
}

// newApp builds the Fiber app with middleware and routes installed.
func (s *Server) newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Forum API",
		ErrorHandler: errorHandler,
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// errorHandler renders errors that escaped a handler with the response envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return respondFail(c, fe.Code, fe.Message)
	}
	return respondError(c, err)
}

// Start starts the server
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.shutdownCtx = ctx
	s.shutdownFn = cancel

	s.app = s.newApp()

	if s.notifier != nil {
		go func() {
			if err := s.hub.StartWiring(s.shutdownCtx, s.notifier); err != nil {
				middleware.Logger.Error("failed to start thread hub wiring", "error", err)
			}
		}()
	}

	middleware.Logger.Info("server starting", "port", s.config.Port)
	return s.app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Stops the Redis subscriber goroutine.
	if s.shutdownFn != nil {
		s.shutdownFn()
	}

	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", "error", err)
		}
	}

	if s.hub != nil {
		if err := s.hub.Shutdown(ctx); err != nil {
			middleware.Logger.Error("error shutting down thread hub", "error", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB", "error", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", "error", rerr)
		}
	}

	middleware.Logger.Info("server shutdown complete")
	return nil
}
