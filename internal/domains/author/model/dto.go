package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"book-manager/internal/shared/types"
	"book-manager/internal/shared/utils"
)

const MaxNameLength = 255

// CreateAuthorRequest - POST /authors
type CreateAuthorRequest struct {
	Name      string      `json:"name"`
	BirthDate *types.Date `json:"birthDate"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			utils.NotBlank("name is required"),
			validation.RuneLength(0, MaxNameLength).Error("name must be at most 255 characters"),
		),
		validation.Field(&r.BirthDate,
			validation.Required.Error("birthDate is required"),
		),
	)
}

// UpdateAuthorRequest - PATCH /authors/:id
// Omitted fields keep their stored value.
type UpdateAuthorRequest struct {
	Name      *string     `json:"name,omitempty"`
	BirthDate *types.Date `json:"birthDate,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.RuneLength(0, MaxNameLength).Error("name must be at most 255 characters"),
		),
	)
}

func (r UpdateAuthorRequest) ToPatch() AuthorPatch {
	patch := AuthorPatch{Name: r.Name}
	if r.BirthDate != nil {
		birthDate := r.BirthDate.Time
		patch.BirthDate = &birthDate
	}
	return patch
}
