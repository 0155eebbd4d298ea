package service

import (
	"context"
	"time"

	"book-manager/internal/domains/author/model"
)

// ServiceInterface defines business logic operations for the Author domain.
type ServiceInterface interface {
	// Create stores a new author.
	// Business rules:
	// - Name must not be blank
	// - birthDate must be today or earlier (calendar date, injected clock)
	// - birthDate is stored as a date, time of day is dropped
	// Returns: Created author with its assigned id
	// Errors: apperr.BusinessRuleError
	Create(ctx context.Context, name string, birthDate time.Time) (*model.Author, error)

	// GetByID retrieves an author by id.
	// Errors: apperr.NotFoundError ("Author not found. id=<id>")
	GetByID(ctx context.Context, id int64) (*model.Author, error)

	// Update applies a partial update.
	// Business rules:
	// - Only non-nil patch fields change
	// - A supplied name must not be blank
	// - A supplied birthDate must be today or earlier
	// - An empty patch returns the stored author unchanged
	// Errors: apperr.BusinessRuleError, apperr.NotFoundError
	Update(ctx context.Context, id int64, patch model.AuthorPatch) (*model.Author, error)

	// ValidateAllExist checks the author set of a book.
	// Business rules:
	// - ids are deduplicated first
	// - An empty set fails with "At least one author is required"
	// - Any unknown id fails with "One or more authors do not exist"
	// Errors: apperr.BusinessRuleError
	ValidateAllExist(ctx context.Context, ids []int64) error

	// ListBooks returns the author's books ordered by book id.
	// Returns: Possibly empty, never nil
	// Errors: apperr.NotFoundError when the author does not exist
	ListBooks(ctx context.Context, authorID int64) ([]model.BookSummary, error)
}

// BookFinder is the slice of book storage the author service reads.
type BookFinder interface {
	FindSummariesByAuthorID(ctx context.Context, authorID int64) ([]model.BookSummary, error)
}
