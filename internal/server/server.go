// Package server implements the portal API the edudesk client talks
// to: auth, the student education endpoints, and the admin
// verification flow.
package server

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"edudesk/internal/cache"
	"edudesk/internal/education"
	"edudesk/internal/store"
)

// Config holds the server's runtime settings.
type Config struct {
	// JWTSecret signs and verifies access tokens.
	JWTSecret string

	// AccessTokenMinutes bounds token lifetime; 0 means no expiry claim.
	AccessTokenMinutes int

	// AllowOrigins is the CORS allowlist for the portal's web frontend.
	AllowOrigins string
}

// StudentStore is the student persistence the handlers need.
type StudentStore interface {
	Create(ctx context.Context, s *store.Student) error
	GetByEmail(ctx context.Context, email string) (*store.Student, error)
}

// EducationStore is the education persistence the handlers need.
type EducationStore interface {
	ListByStudent(ctx context.Context, studentID string) ([]education.Record, error)
	Get(ctx context.Context, id string) (*education.Record, string, error)
	Create(ctx context.Context, studentID string, details education.Details) (*education.Record, error)
	Update(ctx context.Context, id string, details education.Details) (*education.Record, error)
	Delete(ctx context.Context, id string) error
	SetVerification(ctx context.Context, id string, approved bool, remark string) (*education.Record, error)
}

// Server carries handler dependencies.
type Server struct {
	cfg        Config
	students   StudentStore
	educations EducationStore
	cache      *cache.Cache // nil = caching disabled
	logger     *slog.Logger
	validate   *validator.Validate
}

// New wires the Fiber app: CORS, routes, auth middleware.
func New(cfg Config, students StudentStore, educations EducationStore, c *cache.Cache, logger *slog.Logger) *fiber.App {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:        cfg,
		students:   students,
		educations: educations,
		cache:      c,
		logger:     logger,
		validate:   validator.New(),
	}

	app := fiber.New()
	if cfg.AllowOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.AllowOrigins,
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
			AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		}))
	}

	api := app.Group("/api")
	api.Get("/health", s.Health)

	auth := api.Group("/auth")
	auth.Post("/signup", s.SignUp)
	auth.Post("/signin", s.SignIn)

	me := api.Group("/students/me", JWTProtected(cfg.JWTSecret))
	me.Get("/education", s.ListEducation)
	me.Post("/education", s.CreateEducation)
	me.Put("/education/:id", s.UpdateEducation)
	me.Delete("/education/:id", s.DeleteEducation)

	admin := api.Group("/admin", JWTProtected(cfg.JWTSecret), RoleRequired("admin"))
	admin.Post("/education/:id/verify", s.VerifyEducation)

	return app
}

// Health answers the liveness check.
func (s *Server) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
