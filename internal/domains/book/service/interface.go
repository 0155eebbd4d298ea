package service

import (
	"context"

	"book-manager/internal/domains/book/model"
)

// ServiceInterface defines business logic operations for the Book domain.
type ServiceInterface interface {
	// Create stores a new book with its author links.
	// Business rules:
	// - Title must not be blank, price >= 0, status UNPUBLISHED or PUBLISHED
	// - authorIds must be non-empty; duplicates are collapsed
	// - Every author must exist (AuthorValidator)
	// Returns: Created book, author ids ascending
	// Errors: apperr.ValidationError, apperr.BusinessRuleError
	Create(ctx context.Context, b *model.Book) (*model.Book, error)

	// GetByID retrieves a book with its author ids ascending.
	// Errors: apperr.NotFoundError ("Book not found. id=<id>")
	GetByID(ctx context.Context, id int64) (*model.Book, error)

	// Update merges the supplied fields over the stored book.
	// Business rules, checked in order:
	// - A supplied title must not be blank
	// - Supplied authorIds are deduplicated and must all exist
	// - Supplied authorIds must not be empty
	// - The book must exist
	// - PUBLISHED cannot go back to UNPUBLISHED
	// Scalars and links are written in one transaction.
	// Errors: apperr.BusinessRuleError, apperr.ValidationError, apperr.NotFoundError
	Update(ctx context.Context, id int64, patch model.BookPatch) (*model.Book, error)
}

// AuthorValidator confirms that every referenced author exists.
type AuthorValidator interface {
	ValidateAllExist(ctx context.Context, ids []int64) error
}
