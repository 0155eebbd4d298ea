package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"book-manager/internal/shared/utils"
)

// CreateBookRequest - POST /books
type CreateBookRequest struct {
	Title             string           `json:"title"`
	Price             *decimal.Decimal `json:"price"`
	AuthorIDs         []int64          `json:"authorIds"`
	PublicationStatus string           `json:"publicationStatus"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error(MsgTitleRequired),
			utils.NotBlank(MsgTitleRequired),
		),
		validation.Field(&r.Price,
			validation.Required.Error(MsgPriceRequired),
			utils.NonNegative(MsgPriceNegative),
		),
		validation.Field(&r.AuthorIDs,
			validation.Required.Error(MsgAuthorIDsRequired),
		),
		validation.Field(&r.PublicationStatus,
			validation.Required.Error(MsgStatusInvalid),
			validation.In(string(StatusUnpublished), string(StatusPublished)).Error(MsgStatusInvalid),
		),
	)
}

func (r CreateBookRequest) ToBook() *Book {
	b := &Book{
		Title:             r.Title,
		PublicationStatus: PublicationStatus(r.PublicationStatus),
		AuthorIDs:         r.AuthorIDs,
	}
	if r.Price != nil {
		b.Price = *r.Price
	}
	return b
}

// UpdateBookRequest - PATCH /books/:id
// Every field is optional; a supplied authorIds replaces the author set.
type UpdateBookRequest struct {
	Title             *string          `json:"title,omitempty"`
	Price             *decimal.Decimal `json:"price,omitempty"`
	AuthorIDs         *[]int64         `json:"authorIds,omitempty"`
	PublicationStatus *string          `json:"publicationStatus,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Price, utils.NonNegative(MsgPriceNegative)),
		validation.Field(&r.AuthorIDs,
			validation.When(r.AuthorIDs != nil, validation.Required.Error(MsgAuthorIDsRequiredOnUpdate)),
		),
		validation.Field(&r.PublicationStatus,
			validation.When(r.PublicationStatus != nil,
				validation.Required.Error(MsgStatusInvalid),
				validation.In(string(StatusUnpublished), string(StatusPublished)).Error(MsgStatusInvalid),
			),
		),
	)
}

func (r UpdateBookRequest) ToPatch() BookPatch {
	patch := BookPatch{
		Title:     r.Title,
		Price:     r.Price,
		AuthorIDs: r.AuthorIDs,
	}
	if r.PublicationStatus != nil {
		status := PublicationStatus(*r.PublicationStatus)
		patch.PublicationStatus = &status
	}
	return patch
}
