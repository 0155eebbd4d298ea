package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authorModel "book-manager/internal/domains/author/model"
	"book-manager/internal/domains/book/model"
	"book-manager/internal/shared/apperr"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	args := m.Called(ctx, b)
	if v := args.Get(0); v != nil {
		return v.(*model.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, id int64, patch model.BookPatch) (*model.Book, error) {
	args := m.Called(ctx, id, patch)
	if v := args.Get(0); v != nil {
		return v.(*model.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) FindSummariesByAuthorID(ctx context.Context, authorID int64) ([]authorModel.BookSummary, error) {
	args := m.Called(ctx, authorID)
	if v := args.Get(0); v != nil {
		return v.([]authorModel.BookSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAuthorValidator struct {
	mock.Mock
}

func (m *mockAuthorValidator) ValidateAllExist(ctx context.Context, ids []int64) error {
	return m.Called(ctx, ids).Error(0)
}

func newService() (ServiceInterface, *mockRepository, *mockAuthorValidator) {
	repo := &mockRepository{}
	authors := &mockAuthorValidator{}
	return NewBookService(repo, authors), repo, authors
}

func requireBusinessRule(t *testing.T, err error, reason string) {
	t.Helper()
	var br *apperr.BusinessRuleError
	require.True(t, errors.As(err, &br), "expected business rule error, got %v", err)
	assert.Equal(t, reason, br.Reason)
}

func strPtr(s string) *string { return &s }

func statusPtr(s model.PublicationStatus) *model.PublicationStatus { return &s }

func idsPtr(ids ...int64) *[]int64 { return &ids }

func storedBook(status model.PublicationStatus) *model.Book {
	return &model.Book{
		ID:                1,
		Title:             "Stored",
		Price:             decimal.NewFromInt(1000),
		PublicationStatus: status,
		AuthorIDs:         []int64{1},
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("deduplicates author ids", func(t *testing.T) {
		svc, repo, authors := newService()
		in := &model.Book{Title: "Go", Price: decimal.NewFromInt(5), PublicationStatus: model.StatusUnpublished, AuthorIDs: []int64{1, 1}}
		authors.On("ValidateAllExist", ctx, []int64{1}).Return(nil)
		repo.On("Create", ctx, mock.MatchedBy(func(b *model.Book) bool {
			return assert.ObjectsAreEqual([]int64{1}, b.AuthorIDs)
		})).Return(&model.Book{ID: 1, Title: "Go", AuthorIDs: []int64{1}}, nil)

		got, err := svc.Create(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, []int64{1}, got.AuthorIDs)
		assert.Equal(t, []int64{1, 1}, in.AuthorIDs)
		repo.AssertExpectations(t)
	})

	t.Run("unknown author", func(t *testing.T) {
		svc, repo, authors := newService()
		authors.On("ValidateAllExist", ctx, []int64{1, 999}).
			Return(apperr.BusinessRule(authorModel.ReasonUnknownAuthors))

		_, err := svc.Create(ctx, &model.Book{Title: "Go", PublicationStatus: model.StatusPublished, AuthorIDs: []int64{999, 1}})

		requireBusinessRule(t, err, "One or more authors do not exist")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("foreign key race", func(t *testing.T) {
		svc, repo, authors := newService()
		authors.On("ValidateAllExist", ctx, []int64{1}).Return(nil)
		repo.On("Create", ctx, mock.Anything).Return(nil, model.ErrUnknownAuthor)

		_, err := svc.Create(ctx, &model.Book{Title: "Go", PublicationStatus: model.StatusPublished, AuthorIDs: []int64{1}})

		requireBusinessRule(t, err, "One or more authors do not exist")
	})

	t.Run("invalid input", func(t *testing.T) {
		svc, _, _ := newService()

		_, err := svc.Create(ctx, &model.Book{Title: " ", Price: decimal.NewFromInt(-1), PublicationStatus: "DRAFT"})

		var vErr *apperr.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Len(t, vErr.Fields, 4)
	})
}

func TestGetByID_NotFound(t *testing.T) {
	svc, repo, _ := newService()
	repo.On("FindByID", mock.Anything, int64(9)).Return(nil, model.ErrBookNotFound)

	_, err := svc.GetByID(context.Background(), 9)

	var nf *apperr.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Book not found. id=9", nf.Error())
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("blank title is checked first", func(t *testing.T) {
		svc, repo, authors := newService()

		_, err := svc.Update(ctx, 1, model.BookPatch{Title: strPtr("  "), AuthorIDs: idsPtr(999)})

		requireBusinessRule(t, err, "title must not be blank")
		authors.AssertNotCalled(t, "ValidateAllExist", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("author existence before book existence", func(t *testing.T) {
		svc, repo, authors := newService()
		authors.On("ValidateAllExist", ctx, []int64{999}).
			Return(apperr.BusinessRule(authorModel.ReasonUnknownAuthors))

		_, err := svc.Update(ctx, 12345, model.BookPatch{AuthorIDs: idsPtr(999)})

		requireBusinessRule(t, err, "One or more authors do not exist")
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("empty author set", func(t *testing.T) {
		svc, _, authors := newService()
		authors.On("ValidateAllExist", ctx, mock.Anything).
			Return(apperr.BusinessRule(authorModel.ReasonNoAuthors))

		_, err := svc.Update(ctx, 1, model.BookPatch{AuthorIDs: idsPtr()})

		requireBusinessRule(t, err, "At least one author is required")
	})

	t.Run("empty author set with permissive validator", func(t *testing.T) {
		svc, _, authors := newService()
		authors.On("ValidateAllExist", ctx, mock.Anything).Return(nil)

		_, err := svc.Update(ctx, 1, model.BookPatch{AuthorIDs: idsPtr()})

		requireBusinessRule(t, err, "book must have at least one author id")
	})

	t.Run("missing book", func(t *testing.T) {
		svc, repo, _ := newService()
		repo.On("FindByID", ctx, int64(99999)).Return(nil, model.ErrBookNotFound)

		_, err := svc.Update(ctx, 99999, model.BookPatch{Title: strPtr("x")})

		var nf *apperr.NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, "Book not found. id=99999", nf.Error())
	})

	t.Run("published cannot be unpublished", func(t *testing.T) {
		svc, repo, _ := newService()
		repo.On("FindByID", ctx, int64(1)).Return(storedBook(model.StatusPublished), nil)

		_, err := svc.Update(ctx, 1, model.BookPatch{PublicationStatus: statusPtr(model.StatusUnpublished)})

		requireBusinessRule(t, err, "published book cannot be changed to unpublished")
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("concurrent publish detected by storage", func(t *testing.T) {
		svc, repo, _ := newService()
		patch := model.BookPatch{PublicationStatus: statusPtr(model.StatusUnpublished)}
		repo.On("FindByID", ctx, int64(1)).Return(storedBook(model.StatusUnpublished), nil)
		repo.On("Update", ctx, int64(1), patch).Return(nil, model.ErrStatusRegression)

		_, err := svc.Update(ctx, 1, patch)

		requireBusinessRule(t, err, "published book cannot be changed to unpublished")
	})

	t.Run("published stays published with other changes", func(t *testing.T) {
		svc, repo, authors := newService()
		price := decimal.NewFromInt(2500)
		patch := model.BookPatch{Price: &price, AuthorIDs: idsPtr(2, 1, 2)}
		authors.On("ValidateAllExist", ctx, []int64{1, 2}).Return(nil)
		repo.On("FindByID", ctx, int64(1)).Return(storedBook(model.StatusPublished), nil)
		repo.On("Update", ctx, int64(1), model.BookPatch{Price: &price, AuthorIDs: idsPtr(1, 2)}).
			Return(&model.Book{ID: 1, Title: "Stored", Price: price, PublicationStatus: model.StatusPublished, AuthorIDs: []int64{1, 2}}, nil)

		got, err := svc.Update(ctx, 1, patch)

		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2}, got.AuthorIDs)
		assert.True(t, price.Equal(got.Price))
		repo.AssertExpectations(t)
	})

	t.Run("negative price from direct caller", func(t *testing.T) {
		svc, _, _ := newService()
		price := decimal.NewFromInt(-1)

		_, err := svc.Update(ctx, 1, model.BookPatch{Price: &price})

		var vErr *apperr.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "price", vErr.Fields[0].Field)
	})
}
