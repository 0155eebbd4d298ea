package model

import (
	"time"

	"github.com/shopspring/decimal"

	"book-manager/internal/shared/types"
)

type Author struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	BirthDate time.Time `json:"birthDate" db:"birth_date"`
}

// AuthorPatch carries the fields of a partial update. Nil means unchanged.
type AuthorPatch struct {
	Name      *string
	BirthDate *time.Time
}

func (p AuthorPatch) IsEmpty() bool {
	return p.Name == nil && p.BirthDate == nil
}

// BookSummary is a book as listed under one of its authors.
type BookSummary struct {
	ID                int64                   `json:"id"`
	Title             string                  `json:"title"`
	Price             decimal.Decimal         `json:"price"`
	PublicationStatus types.PublicationStatus `json:"publicationStatus"`
}

type AuthorResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	BirthDate types.Date `json:"birthDate"`
}

func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		BirthDate: types.DateOf(a.BirthDate),
	}
}

type BookSummaryResponse struct {
	ID                int64                   `json:"id"`
	Title             string                  `json:"title"`
	Price             types.Number            `json:"price"`
	PublicationStatus types.PublicationStatus `json:"publicationStatus"`
}

// ToBookSummaryResponses never returns nil so an author without books renders as [].
func ToBookSummaryResponses(summaries []BookSummary) []BookSummaryResponse {
	out := make([]BookSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, BookSummaryResponse{
			ID:                s.ID,
			Title:             s.Title,
			Price:             types.NumberOf(s.Price),
			PublicationStatus: s.PublicationStatus,
		})
	}
	return out
}
