package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"book-manager/internal/config"
	"book-manager/internal/infrastructure/database"

	authorHandler "book-manager/internal/domains/author/handler"
	authorRepo "book-manager/internal/domains/author/repository"
	authorService "book-manager/internal/domains/author/service"
	bookHandler "book-manager/internal/domains/book/handler"
	bookRepo "book-manager/internal/domains/book/repository"
	bookService "book-manager/internal/domains/book/service"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Container holds the application's dependency graph.
// Order of construction: config, infrastructure, repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Health HealthChecker

	AuthorRepo authorRepo.RepositoryInterface
	BookRepo   bookRepo.RepositoryInterface

	AuthorService authorService.ServiceInterface
	BookService   bookService.ServiceInterface

	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler

	// Clock decides "today" for birth date checks.
	Clock func() time.Time
}

// NewContainer connects to PostgreSQL, applies migrations when enabled and
// wires the domains on top of the pool.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Str("environment", cfg.App.Environment).Msg("Initializing container")

	db := database.NewPostgresDB(cfg.Database)

	connectCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Database.MigrateOnStart {
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Info().Msg("Database schema up to date")
	}

	c := &Container{
		Config:     cfg,
		DB:         db,
		Health:     db,
		AuthorRepo: authorRepo.NewPostgresRepository(db.Pool),
		BookRepo:   bookRepo.NewPostgresRepository(db.Pool),
		Clock:      time.Now,
	}
	c.initServices()
	c.initHandlers()

	log.Info().Msg("Container initialized")
	return c, nil
}

// NewWithRepositories wires services and handlers over the given storage.
// It is used by tests and tools that bring their own repositories.
func NewWithRepositories(cfg *config.Config, authors authorRepo.RepositoryInterface, books bookRepo.RepositoryInterface, clock func() time.Time) *Container {
	if clock == nil {
		clock = time.Now
	}
	c := &Container{
		Config:     cfg,
		AuthorRepo: authors,
		BookRepo:   books,
		Clock:      clock,
	}
	c.initServices()
	c.initHandlers()
	return c
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo, c.Clock)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorService)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
}

// Cleanup releases infrastructure resources.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
