package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/JordanPiper315/techNotesBackend/internal/api/middleware"
	"github.com/JordanPiper315/techNotesBackend/internal/auth"
	"github.com/JordanPiper315/techNotesBackend/internal/config"
	"github.com/JordanPiper315/techNotesBackend/internal/infra"
	"github.com/JordanPiper315/techNotesBackend/internal/repository"
	"github.com/JordanPiper315/techNotesBackend/internal/service"
)

// Router wires repositories, services and handlers onto the fiber app
type Router struct {
	app    *fiber.App
	cfg    *config.Config
	pg     *infra.PostgresClient
	rdb    *redis.Client
	router fiber.Router // /api group
}

func NewRouter(app *fiber.App, cfg *config.Config, pg *infra.PostgresClient, rdb *redis.Client) *Router {
	return &Router{
		app: app,
		cfg: cfg,
		pg:  pg,
		rdb: rdb,
	}
}

// RegisterRoutes builds the dependency graph and registers all routes
func (r *Router) RegisterRoutes() {
	// 1. Initialize RBAC
	enforcer, err := auth.InitCasbin(r.pg.DB)
	if err != nil {
		log.Fatalf("Failed to initialize Casbin: %v", err)
	}

	// 2. Repositories and services
	userRepo := repository.NewUserRepo(r.pg.DB)
	noteRepo := repository.NewNoteRepo(r.pg.DB)
	tokenStore := infra.NewRedisTokenStore(r.rdb)

	noteSvc := service.NewNoteService(noteRepo, userRepo)
	userSvc := service.NewUserService(userRepo, noteRepo)
	authSvc := service.NewAuthService(userRepo, tokenStore, r.cfg.Auth)

	noteHandler := NewNoteHandler(noteSvc)
	userHandler := NewUserHandler(userSvc)
	authHandler := NewAuthHandler(authSvc)

	// 3. Public routes
	r.app.Post("/auth/login", authHandler.Login)
	r.app.Post("/auth/refresh", authHandler.Refresh)

	// 4. Protected routes under /api
	r.router = r.app.Group("/api")
	r.router.Use(middleware.AuthMiddleware(enforcer, r.cfg.Auth.JWTSecret))

	r.registerNoteRoutes(noteHandler)
	r.registerUserRoutes(userHandler)
	r.router.Post("/auth/logout", authHandler.Logout)
}

func (r *Router) registerNoteRoutes(h *NoteHandler) {
	notes := r.router.Group("/notes")
	notes.Get("/", h.GetAllNotes)
	notes.Post("/", h.CreateNote)
	notes.Patch("/", h.UpdateNote)
	notes.Delete("/", h.DeleteNote)
}

func (r *Router) registerUserRoutes(h *UserHandler) {
	users := r.router.Group("/users")
	users.Get("/", h.GetAllUsers)
	users.Post("/", h.CreateUser)
	users.Patch("/", h.UpdateUser)
	users.Delete("/", h.DeleteUser)
}
