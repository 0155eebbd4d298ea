package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"book-manager/internal/domains/author/model"
	"book-manager/internal/domains/author/repository"
	"book-manager/internal/shared/apperr"
	"book-manager/internal/shared/types"
	"book-manager/internal/shared/utils"
)

type authorService struct {
	repo  repository.RepositoryInterface
	books BookFinder
	now   func() time.Time
}

// NewAuthorService wires the service. now defaults to time.Now and decides
// what "today" is for birth date checks.
func NewAuthorService(repo repository.RepositoryInterface, books BookFinder, now func() time.Time) ServiceInterface {
	if now == nil {
		now = time.Now
	}
	return &authorService{
		repo:  repo,
		books: books,
		now:   now,
	}
}

func (s *authorService) Create(ctx context.Context, name string, birthDate time.Time) (*model.Author, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.BusinessRule(model.ReasonNameBlank)
	}
	if err := s.checkBirthDate(birthDate); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &model.Author{
		Name:      name,
		BirthDate: types.DateOf(birthDate).Time,
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err, id)
	}
	return a, nil
}

func (s *authorService) Update(ctx context.Context, id int64, patch model.AuthorPatch) (*model.Author, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperr.BusinessRule(model.ReasonNameBlank)
	}
	if patch.BirthDate != nil {
		if err := s.checkBirthDate(*patch.BirthDate); err != nil {
			return nil, err
		}
		normalized := types.DateOf(*patch.BirthDate).Time
		patch.BirthDate = &normalized
	}

	if patch.IsEmpty() {
		return s.GetByID(ctx, id)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, s.mapNotFound(err, id)
	}
	return updated, nil
}

func (s *authorService) ValidateAllExist(ctx context.Context, ids []int64) error {
	distinct := utils.DedupIDs(ids)
	if len(distinct) == 0 {
		return apperr.BusinessRule(model.ReasonNoAuthors)
	}

	exists, err := s.repo.ExistsAllByIDs(ctx, distinct)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.BusinessRule(model.ReasonUnknownAuthors)
	}
	return nil
}

func (s *authorService) ListBooks(ctx context.Context, authorID int64) ([]model.BookSummary, error) {
	if _, err := s.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	summaries, err := s.books.FindSummariesByAuthorID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books of author %d: %w", authorID, err)
	}
	if summaries == nil {
		summaries = []model.BookSummary{}
	}
	return summaries, nil
}

func (s *authorService) checkBirthDate(birthDate time.Time) error {
	if types.DateOf(birthDate).After(types.DateOf(s.now())) {
		return apperr.BusinessRule(model.ReasonBirthDateInFuture)
	}
	return nil
}

func (s *authorService) mapNotFound(err error, id int64) error {
	if errors.Is(err, model.ErrAuthorNotFound) {
		return apperr.NotFound(model.ResourceName, id)
	}
	return err
}
