package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"library-backend/internal/config"
	infraCache "library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/cache"
	"library-backend/pkg/jwt"

	authorHandler "library-backend/internal/domains/author/handler"
	authorRepo "library-backend/internal/domains/author/repository"
	authorService "library-backend/internal/domains/author/service"
	bookHandler "library-backend/internal/domains/book/handler"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"
	copyHandler "library-backend/internal/domains/copy/handler"
	copyRepo "library-backend/internal/domains/copy/repository"
	copyService "library-backend/internal/domains/copy/service"
	genreHandler "library-backend/internal/domains/genre/handler"
	genreRepo "library-backend/internal/domains/genre/repository"
	genreService "library-backend/internal/domains/genre/service"
	languageHandler "library-backend/internal/domains/language/handler"
	languageRepo "library-backend/internal/domains/language/repository"
	languageService "library-backend/internal/domains/language/service"
	userHandler "library-backend/internal/domains/user/handler"
	userRepo "library-backend/internal/domains/user/repository"
	userService "library-backend/internal/domains/user/service"
)

// Container holds every dependency of the application; it is the root
// of the dependency graph. Initialization order matters: config, then
// infrastructure, then repositories, services, handlers.
type Container struct {
	// Infrastructure (singletons, shared across domains)
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories
	UserRepo     userRepo.RepositoryInterface
	AuthorRepo   authorRepo.RepositoryInterface
	GenreRepo    genreRepo.RepositoryInterface
	LanguageRepo languageRepo.RepositoryInterface
	BookRepo     bookRepo.RepositoryInterface
	CopyRepo     copyRepo.RepositoryInterface

	// Services
	UserService     userService.ServiceInterface
	AuthorService   authorService.ServiceInterface
	GenreService    genreService.ServiceInterface
	LanguageService languageService.ServiceInterface
	BookService     bookService.ServiceInterface
	CopyService     copyService.ServiceInterface

	// HTTP handlers
	UserHandler     *userHandler.UserHandler
	AuthorHandler   *authorHandler.AuthorHandler
	GenreHandler    *genreHandler.GenreHandler
	LanguageHandler *languageHandler.LanguageHandler
	BookHandler     *bookHandler.BookHandler
	CopyHandler     *copyHandler.CopyHandler
}

// NewContainer builds and initializes the whole dependency graph.
func NewContainer() (*Container, error) {
	log.Println("[CONTAINER] Initializing...")

	c := &Container{}

	// Step 1: configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("[CONTAINER] Config loaded (environment: %s)", cfg.App.Environment)

	// Step 2: database
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	// Step 3: cache. Redis being down is not fatal; cached reads just
	// fall through to the database.
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("[CONTAINER] Redis connection failed (non-critical): %v", err)
		}
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// Step 4: repositories
	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
	c.GenreRepo = genreRepo.NewPostgresRepository(db.Pool)
	c.LanguageRepo = languageRepo.NewPostgresRepository(db.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.CopyRepo = copyRepo.NewPostgresRepository(db.Pool)

	// Step 5: services
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.GenreService = genreService.NewGenreService(c.GenreRepo)
	c.LanguageService = languageService.NewLanguageService(c.LanguageRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)
	c.CopyService = copyService.NewCopyService(c.CopyRepo)

	// Step 6: handlers
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.LanguageHandler = languageHandler.NewLanguageHandler(c.LanguageService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.CopyHandler = copyHandler.NewCopyHandler(c.CopyService)

	log.Println("[CONTAINER] Initialized")
	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Printf("[CONTAINER] Failed to close database: %v", err)
		}
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("[CONTAINER] Failed to close redis: %v", err)
		}
	}
}
