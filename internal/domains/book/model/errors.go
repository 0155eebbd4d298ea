package model

import "errors"

const ResourceName = "Book"

var (
	ErrBookNotFound = errors.New("book not found")

	// ErrUnknownAuthor is returned when a link insert violates the
	// book_authors.author_id foreign key.
	ErrUnknownAuthor = errors.New("book references an unknown author")

	// ErrStatusRegression is returned by storage when the locked row is
	// already PUBLISHED and the update asks for UNPUBLISHED.
	ErrStatusRegression = errors.New("publication status cannot go back to unpublished")
)

// Validation messages.
const (
	MsgTitleRequired             = "title is required"
	MsgPriceRequired             = "price is required"
	MsgPriceNegative             = "price must be >= 0"
	MsgAuthorIDsRequired         = "authorIds must contain at least one author id"
	MsgAuthorIDsRequiredOnUpdate = "authorIds must contain at least one author id when provided"
	MsgStatusInvalid             = "publicationStatus must be UNPUBLISHED or PUBLISHED"
)

// Business rule reasons.
const (
	ReasonTitleBlank     = "title must not be blank"
	ReasonNoAuthorIDs    = "book must have at least one author id"
	ReasonUnpublish      = "published book cannot be changed to unpublished"
	ReasonUnknownAuthors = "One or more authors do not exist"
)
