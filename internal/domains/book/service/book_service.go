package service

import (
	"context"
	"errors"
	"strings"

	"book-manager/internal/domains/book/model"
	"book-manager/internal/domains/book/repository"
	"book-manager/internal/shared/apperr"
	"book-manager/internal/shared/utils"
)

type bookService struct {
	repo    repository.RepositoryInterface
	authors AuthorValidator
}

func NewBookService(repo repository.RepositoryInterface, authors AuthorValidator) ServiceInterface {
	return &bookService{
		repo:    repo,
		authors: authors,
	}
}

func (s *bookService) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	if err := apperr.FromValidation(b.Validate()); err != nil {
		return nil, err
	}

	toCreate := *b
	toCreate.AuthorIDs = utils.DedupIDs(b.AuthorIDs)

	if err := s.authors.ValidateAllExist(ctx, toCreate.AuthorIDs); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &toCreate)
	if err != nil {
		return nil, s.mapError(err, 0)
	}
	return created, nil
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapError(err, id)
	}
	return b, nil
}

// Update checks, in order: blank title, author existence, empty author set,
// book existence and the publication transition. Then it persists.
func (s *bookService) Update(ctx context.Context, id int64, patch model.BookPatch) (*model.Book, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, apperr.BusinessRule(model.ReasonTitleBlank)
	}

	if patch.AuthorIDs != nil {
		ids := utils.DedupIDs(*patch.AuthorIDs)
		if err := s.authors.ValidateAllExist(ctx, ids); err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return nil, apperr.BusinessRule(model.ReasonNoAuthorIDs)
		}
		patch.AuthorIDs = &ids
	}

	if patch.Price != nil && patch.Price.IsNegative() {
		return nil, apperr.Validation("price", model.MsgPriceNegative)
	}
	if patch.PublicationStatus != nil && !patch.PublicationStatus.IsValid() {
		return nil, apperr.Validation("publicationStatus", model.MsgStatusInvalid)
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapError(err, id)
	}
	if next := patch.Apply(*current); !current.PublicationStatus.CanTransitionTo(next.PublicationStatus) {
		return nil, apperr.BusinessRule(model.ReasonUnpublish)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, s.mapError(err, id)
	}
	return updated, nil
}

func (s *bookService) mapError(err error, id int64) error {
	switch {
	case errors.Is(err, model.ErrBookNotFound):
		return apperr.NotFound(model.ResourceName, id)
	case errors.Is(err, model.ErrStatusRegression):
		return apperr.BusinessRule(model.ReasonUnpublish)
	case errors.Is(err, model.ErrUnknownAuthor):
		return apperr.BusinessRule(model.ReasonUnknownAuthors)
	default:
		return err
	}
}
