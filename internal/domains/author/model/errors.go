package model

import "errors"

const ResourceName = "Author"

var ErrAuthorNotFound = errors.New("author not found")

// Business rule reasons.
const (
	ReasonBirthDateInFuture = "birthDate must be today or in the past"
	ReasonNameBlank         = "name must not be blank"
	ReasonNoAuthors         = "At least one author is required"
	ReasonUnknownAuthors    = "One or more authors do not exist"
)
