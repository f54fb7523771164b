// Package server contains the HTTP handlers and routing for the API.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"kapm/internal/cache"
	"kapm/internal/config"
	"kapm/internal/database"
	"kapm/internal/middleware"
	"kapm/internal/models"
	"kapm/internal/observability"
	"kapm/internal/repository"
	"kapm/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	authService          *service.AuthService
	userService          *service.UserService
	postService          *service.PostService
	taxonomyService      *service.TaxonomyService
	pageService          *service.PageService
	commentService       *service.CommentService
	mediaService         *service.MediaService
	clientService        *service.ClientService
	bankruptcyService    *service.BankruptcyService
	restructuringService *service.RestructuringService
	dashboardService     *service.DashboardService
}

// NewServer creates a server instance, establishing the database and
// Redis connections from the config.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps creates a Server using already-initialized
// dependencies. Use this in tests or when a bootstrap layer establishes
// DB/Redis itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	middleware.InitMiddleware(cfg)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)
	pageRepo := repository.NewPageRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	clientRepo := repository.NewClientRepository(db)
	bankruptcyRepo := repository.NewBankruptcyRepository(db)
	restructuringRepo := repository.NewRestructuringRepository(db)

	prom := middleware.InitMetrics("kapm-api")

	maxUploadBytes := int64(cfg.MediaMaxUploadSizeMB) * 1024 * 1024

	return &Server{
		config:               cfg,
		db:                   db,
		redis:                redisClient,
		promMiddleware:       prom,
		authService:          service.NewAuthService(userRepo, cfg.JWTSecret),
		userService:          service.NewUserService(userRepo),
		postService:          service.NewPostService(postRepo, categoryRepo, tagRepo),
		taxonomyService:      service.NewTaxonomyService(categoryRepo, tagRepo),
		pageService:          service.NewPageService(pageRepo),
		commentService:       service.NewCommentService(commentRepo, postRepo, userRepo),
		mediaService:         service.NewMediaService(mediaRepo, maxUploadBytes),
		clientService:        service.NewClientService(clientRepo),
		bankruptcyService:    service.NewBankruptcyService(bankruptcyRepo, clientRepo),
		restructuringService: service.NewRestructuringService(restructuringRepo, clientRepo),
		dashboardService:     service.NewDashboardService(postRepo, commentRepo, userRepo, mediaRepo, bankruptcyRepo, restructuringRepo),
	}
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.TracingMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS before the limiter so browser clients still receive CORS
	// headers on throttled responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	max := s.config.RateLimitMax
	if max <= 0 {
		max = 100
	}
	window := time.Duration(s.config.RateLimitWindowSeconds) * time.Second
	if window <= 0 {
		window = time.Minute
	}
	app.Use(limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/refresh", s.Refresh)
	auth.Post("/logout", s.Logout)
	auth.Get("/me", middleware.AuthRequired, s.GetMe)
	auth.Put("/profile", middleware.AuthRequired, s.UpdateProfile)
	auth.Patch("/profile", middleware.AuthRequired, s.UpdateProfile)
	auth.Post("/change-password", middleware.AuthRequired, s.ChangePassword)

	// Public content routes
	public := api.Group("/public")
	public.Get("/blog", s.ListPublishedPosts)
	public.Get("/blog/slug/:slug", s.GetPublishedPost)
	public.Get("/blog/:id", s.GetPublishedPostByID)
	public.Get("/pages", s.ListPublishedPages)
	public.Get("/pages/menu", s.GetMenu)
	public.Get("/pages/:slug", s.GetPublishedPage)
	public.Get("/categories", s.ListPublicCategories)
	public.Get("/categories/:slug", s.GetCategoryBySlug)
	public.Get("/tags", s.ListTags)
	public.Get("/comments", s.ListPostComments)
	public.Get("/comments/:id/replies", s.ListCommentReplies)
	public.Post("/comments", middleware.RateLimit(
		s.redis, 5, time.Minute, "create_comment"), s.CreateComment)

	// Admin routes. The actor middleware resolves the authenticated
	// user into a policy actor; per-role checks live in the services.
	admin := api.Group("/admin", middleware.AuthRequired, s.ResolveActor)
	admin.Get("/dashboard/stats", s.DashboardStats)
	admin.Get("/dashboard/recent-posts", s.DashboardRecentPosts)
	admin.Get("/dashboard/recent-comments", s.DashboardRecentComments)

	blog := admin.Group("/blog")
	blog.Get("/", s.ListPosts)
	blog.Post("/", s.CreatePost)
	blog.Get("/:id", s.GetPost)
	blog.Put("/:id", s.UpdatePost)
	blog.Delete("/:id", s.DeletePost)
	blog.Post("/:id/publish", s.PublishPost)
	blog.Post("/:id/unpublish", s.UnpublishPost)

	categories := admin.Group("/categories")
	categories.Get("/", s.ListCategories)
	categories.Post("/", s.CreateCategory)
	categories.Put("/:id", s.UpdateCategory)
	categories.Delete("/:id", s.DeleteCategory)

	tags := admin.Group("/tags")
	tags.Post("/", s.CreateTag)
	tags.Put("/:id", s.UpdateTag)
	tags.Delete("/:id", s.DeleteTag)

	pages := admin.Group("/pages")
	pages.Get("/", s.ListPages)
	pages.Post("/", s.CreatePage)
	pages.Get("/:id", s.GetPage)
	pages.Put("/:id", s.UpdatePage)
	pages.Delete("/:id", s.DeletePage)

	comments := admin.Group("/comments")
	comments.Get("/", s.ListComments)
	comments.Post("/:id/approve", s.ApproveComment)
	comments.Post("/:id/reject", s.RejectComment)
	comments.Delete("/:id", s.DeleteComment)

	media := admin.Group("/media")
	media.Get("/", s.ListMedia)
	media.Post("/", s.UploadMedia)
	media.Get("/:id", s.GetMedia)
	media.Put("/:id", s.UpdateMedia)
	media.Delete("/:id", s.DeleteMedia)

	users := admin.Group("/users")
	users.Get("/", s.ListUsers)
	users.Put("/:id/role", s.SetUserRole)
	users.Delete("/:id", s.DeleteUser)

	// Case record routes
	cases := api.Group("/cases", middleware.AuthRequired, s.ResolveActor)

	clients := cases.Group("/clients")
	clients.Get("/", s.ListClients)
	clients.Post("/", s.CreateClient)
	clients.Get("/:id", s.GetClient)
	clients.Put("/:id", s.UpdateClient)
	clients.Post("/:id/deactivate", s.DeactivateClient)

	bankruptcy := cases.Group("/bankruptcy")
	bankruptcy.Get("/", s.ListBankruptcyCases)
	bankruptcy.Post("/", s.CreateBankruptcyCase)
	bankruptcy.Get("/:id", s.GetBankruptcyCase)
	bankruptcy.Put("/:id", s.UpdateBankruptcyCase)
	bankruptcy.Delete("/:id", s.DeleteBankruptcyCase)
	bankruptcy.Get("/:id/creditors", s.ListBankruptcyCreditors)
	bankruptcy.Post("/:id/creditors", s.AddBankruptcyCreditor)
	bankruptcy.Put("/:id/creditors/:creditorId", s.UpdateBankruptcyCreditor)
	bankruptcy.Delete("/:id/creditors/:creditorId", s.DeleteBankruptcyCreditor)
	bankruptcy.Get("/:id/events", s.ListBankruptcyEvents)
	bankruptcy.Post("/:id/events", s.AddBankruptcyEvent)
	bankruptcy.Put("/:id/consumer-details", s.UpsertConsumerDetails)

	restructuring := cases.Group("/restructuring")
	restructuring.Get("/", s.ListRestructuringCases)
	restructuring.Post("/", s.CreateRestructuringCase)
	restructuring.Get("/:id", s.GetRestructuringCase)
	restructuring.Put("/:id", s.UpdateRestructuringCase)
	restructuring.Delete("/:id", s.DeleteRestructuringCase)
	restructuring.Get("/:id/creditors", s.ListRestructuringCreditors)
	restructuring.Post("/:id/creditors", s.AddRestructuringCreditor)
	restructuring.Put("/:id/creditors/:creditorId", s.UpdateRestructuringCreditor)
	restructuring.Delete("/:id/creditors/:creditorId", s.DeleteRestructuringCreditor)
	restructuring.Get("/:id/events", s.ListRestructuringEvents)
	restructuring.Post("/:id/events", s.AddRestructuringEvent)
	restructuring.Get("/:id/proposals", s.ListProposals)
	restructuring.Post("/:id/proposals", s.AddProposal)
	restructuring.Get("/:id/payments", s.ListPayments)
	restructuring.Post("/:id/payments", s.AddPayment)
	restructuring.Patch("/:id/payments/:paymentId/pay", s.RecordPayment)
	restructuring.Delete("/:id/payments/:paymentId", s.DeletePayment)
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. The database is
// required; Redis is reported but the API stays ready without it.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overall := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overall = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server.
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "KAPM API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", "error", err)
			observability.RecordErrorInContext(c.UserContext(), err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}
	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}
	log.Println("Server shutdown complete")
	return nil
}
