package repository

import (
	"context"

	"book-manager/internal/domains/author/model"
)

// RepositoryInterface is the author storage contract.
type RepositoryInterface interface {
	// Create inserts a new author and returns it with its assigned id.
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// FindByID returns model.ErrAuthorNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*model.Author, error)

	// Update applies the non-nil patch fields in a single statement.
	// Returns model.ErrAuthorNotFound when no row matches.
	Update(ctx context.Context, id int64, patch model.AuthorPatch) (*model.Author, error)

	// ExistsAllByIDs reports whether every distinct id refers to an author.
	// An empty input yields false.
	ExistsAllByIDs(ctx context.Context, ids []int64) (bool, error)
}
