// Package memstore provides in-memory author and book repositories that
// follow the PostgreSQL repositories' contracts, for tests.
package memstore

import (
	"context"
	"slices"
	"sync"

	authorModel "book-manager/internal/domains/author/model"
	authorRepo "book-manager/internal/domains/author/repository"
	bookModel "book-manager/internal/domains/book/model"
	bookRepo "book-manager/internal/domains/book/repository"
	"book-manager/internal/shared/utils"
)

// Store holds both tables plus the link set behind one lock.
type Store struct {
	mu           sync.Mutex
	authors      map[int64]authorModel.Author
	books        map[int64]bookModel.Book
	nextAuthorID int64
	nextBookID   int64
}

func New() *Store {
	return &Store{
		authors:      make(map[int64]authorModel.Author),
		books:        make(map[int64]bookModel.Book),
		nextAuthorID: 1,
		nextBookID:   1,
	}
}

func (s *Store) Authors() authorRepo.RepositoryInterface { return (*authorStore)(s) }

func (s *Store) Books() bookRepo.RepositoryInterface { return (*bookStore)(s) }

type authorStore Store

func (a *authorStore) Create(_ context.Context, in *authorModel.Author) (*authorModel.Author, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	created := *in
	created.ID = a.nextAuthorID
	a.nextAuthorID++
	a.authors[created.ID] = created
	return &created, nil
}

func (a *authorStore) FindByID(_ context.Context, id int64) (*authorModel.Author, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	found, ok := a.authors[id]
	if !ok {
		return nil, authorModel.ErrAuthorNotFound
	}
	return &found, nil
}

func (a *authorStore) Update(_ context.Context, id int64, patch authorModel.AuthorPatch) (*authorModel.Author, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	found, ok := a.authors[id]
	if !ok {
		return nil, authorModel.ErrAuthorNotFound
	}
	if patch.Name != nil {
		found.Name = *patch.Name
	}
	if patch.BirthDate != nil {
		found.BirthDate = *patch.BirthDate
	}
	a.authors[id] = found
	return &found, nil
}

func (a *authorStore) ExistsAllByIDs(_ context.Context, ids []int64) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	distinct := utils.DedupIDs(ids)
	if len(distinct) == 0 {
		return false, nil
	}
	for _, id := range distinct {
		if _, ok := a.authors[id]; !ok {
			return false, nil
		}
	}
	return true, nil
}

type bookStore Store

func (b *bookStore) Create(_ context.Context, in *bookModel.Book) (*bookModel.Book, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	created := *in
	created.AuthorIDs = utils.DedupIDs(in.AuthorIDs)
	if !b.authorsExist(created.AuthorIDs) {
		return nil, bookModel.ErrUnknownAuthor
	}

	created.ID = b.nextBookID
	b.nextBookID++
	b.books[created.ID] = created
	return clone(created), nil
}

func (b *bookStore) FindByID(_ context.Context, id int64) (*bookModel.Book, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	found, ok := b.books[id]
	if !ok {
		return nil, bookModel.ErrBookNotFound
	}
	return clone(found), nil
}

func (b *bookStore) Update(_ context.Context, id int64, patch bookModel.BookPatch) (*bookModel.Book, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current, ok := b.books[id]
	if !ok {
		return nil, bookModel.ErrBookNotFound
	}

	next := patch.Apply(current)
	if !current.PublicationStatus.CanTransitionTo(next.PublicationStatus) {
		return nil, bookModel.ErrStatusRegression
	}
	if patch.AuthorIDs != nil && !b.authorsExist(next.AuthorIDs) {
		return nil, bookModel.ErrUnknownAuthor
	}

	b.books[id] = next
	return clone(next), nil
}

func (b *bookStore) FindSummariesByAuthorID(_ context.Context, authorID int64) ([]authorModel.BookSummary, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	summaries := []authorModel.BookSummary{}
	for _, book := range b.books {
		if !slices.Contains(book.AuthorIDs, authorID) {
			continue
		}
		summaries = append(summaries, authorModel.BookSummary{
			ID:                book.ID,
			Title:             book.Title,
			Price:             book.Price,
			PublicationStatus: book.PublicationStatus,
		})
	}
	slices.SortFunc(summaries, func(x, y authorModel.BookSummary) int {
		switch {
		case x.ID < y.ID:
			return -1
		case x.ID > y.ID:
			return 1
		default:
			return 0
		}
	})
	return summaries, nil
}

// authorsExist mirrors the book_authors.author_id foreign key. Callers hold the lock.
func (b *bookStore) authorsExist(ids []int64) bool {
	for _, id := range ids {
		if _, ok := b.authors[id]; !ok {
			return false
		}
	}
	return true
}

func clone(book bookModel.Book) *bookModel.Book {
	book.AuthorIDs = slices.Clone(book.AuthorIDs)
	return &book
}
