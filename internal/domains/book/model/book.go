package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"book-manager/internal/shared/types"
	"book-manager/internal/shared/utils"
)

// PublicationStatus is shared with author book summaries.
type PublicationStatus = types.PublicationStatus

const (
	StatusUnpublished = types.StatusUnpublished
	StatusPublished   = types.StatusPublished
)

type Book struct {
	ID                int64             `json:"id" db:"id"`
	Title             string            `json:"title" db:"title"`
	Price             decimal.Decimal   `json:"price" db:"price"`
	PublicationStatus PublicationStatus `json:"publicationStatus" db:"publication_status"`
	AuthorIDs         []int64           `json:"authorIds"`
}

// Validate checks the invariants every stored book satisfies.
func (b Book) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Title,
			validation.Required.Error(MsgTitleRequired),
			utils.NotBlank(MsgTitleRequired),
		),
		validation.Field(&b.Price, utils.NonNegative(MsgPriceNegative)),
		validation.Field(&b.PublicationStatus,
			validation.Required.Error(MsgStatusInvalid),
			validation.In(StatusUnpublished, StatusPublished).Error(MsgStatusInvalid),
		),
		validation.Field(&b.AuthorIDs, validation.Required.Error(MsgAuthorIDsRequired)),
	)
}

// BookPatch carries the fields of a partial update. Nil means unchanged;
// a non-nil AuthorIDs replaces the whole author set.
type BookPatch struct {
	Title             *string
	Price             *decimal.Decimal
	PublicationStatus *PublicationStatus
	AuthorIDs         *[]int64
}

// Apply returns current with the supplied patch fields merged in.
func (p BookPatch) Apply(current Book) Book {
	next := current
	if p.Title != nil {
		next.Title = *p.Title
	}
	if p.Price != nil {
		next.Price = *p.Price
	}
	if p.PublicationStatus != nil {
		next.PublicationStatus = *p.PublicationStatus
	}
	if p.AuthorIDs != nil {
		next.AuthorIDs = utils.DedupIDs(*p.AuthorIDs)
	}
	return next
}

type BookResponse struct {
	ID                int64             `json:"id"`
	Title             string            `json:"title"`
	Price             types.Number      `json:"price"`
	PublicationStatus PublicationStatus `json:"publicationStatus"`
	AuthorIDs         []int64           `json:"authorIds"`
}

func (b *Book) ToResponse() *BookResponse {
	authorIDs := b.AuthorIDs
	if authorIDs == nil {
		authorIDs = []int64{}
	}
	return &BookResponse{
		ID:                b.ID,
		Title:             b.Title,
		Price:             types.NumberOf(b.Price),
		PublicationStatus: b.PublicationStatus,
		AuthorIDs:         authorIDs,
	}
}
