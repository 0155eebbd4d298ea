package apperr

import (
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BusinessRuleField is the field name used when a business rule violation
// is reported with the validation error shape.
const BusinessRuleField = "business_rule"

// FieldError describes one rejected request field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is a malformed or out-of-range request (HTTP 400).
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Fields[0].Field, e.Fields[0].Reason)
}

// BusinessRuleError is a structurally valid request that breaks a domain
// invariant given the current state (HTTP 400).
type BusinessRuleError struct {
	Reason string
}

func (e *BusinessRuleError) Error() string {
	return e.Reason
}

// NotFoundError means a referenced id does not exist (HTTP 404).
type NotFoundError struct {
	Resource string
	ID       any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found. id=%v", e.Resource, e.ID)
}

func Validation(field, reason string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}

func BusinessRule(reason string) *BusinessRuleError {
	return &BusinessRuleError{Reason: reason}
}

func NotFound(resource string, id any) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// MalformedBody wraps a JSON decoding failure.
func MalformedBody(err error) *ValidationError {
	reason := "malformed request body"
	if err != nil {
		reason = fmt.Sprintf("malformed request body: %v", err)
	}
	return Validation("body", reason)
}

// FromValidation converts ozzo-validation errors into a *ValidationError with
// fields sorted by name. Internal rule errors and nil are returned unchanged.
func FromValidation(err error) error {
	if err == nil {
		return nil
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return err
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return Validation("request", err.Error())
	}

	fields := flatten("", errs)
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
	return &ValidationError{Fields: fields}
}

func flatten(prefix string, errs validation.Errors) []FieldError {
	var out []FieldError
	for name, fieldErr := range errs {
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		var nested validation.Errors
		if errors.As(fieldErr, &nested) {
			out = append(out, flatten(key, nested)...)
			continue
		}
		out = append(out, FieldError{Field: key, Reason: fieldErr.Error()})
	}
	return out
}
