package repository

import (
	"context"

	authorModel "book-manager/internal/domains/author/model"
	"book-manager/internal/domains/book/model"
)

// RepositoryInterface is the book storage contract.
type RepositoryInterface interface {
	// Create stores the book and one link per distinct author id in a
	// single transaction.
	Create(ctx context.Context, b *model.Book) (*model.Book, error)

	// FindByID returns the book with its author ids ascending, or
	// model.ErrBookNotFound.
	FindByID(ctx context.Context, id int64) (*model.Book, error)

	// Update merges the patch into the stored row and, when AuthorIDs is
	// supplied, replaces the links. Everything runs in one transaction.
	Update(ctx context.Context, id int64, patch model.BookPatch) (*model.Book, error)

	// FindSummariesByAuthorID lists the author's books ordered by id.
	FindSummariesByAuthorID(ctx context.Context, authorID int64) ([]authorModel.BookSummary, error)
}
