package utils

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"book-manager/internal/shared/apperr"
)

// BindJSON decodes the request body into req and runs its ozzo rules.
// Decoding and rule failures are both returned as *apperr.ValidationError.
func BindJSON(c *gin.Context, req validation.Validatable) error {
	if err := c.ShouldBindJSON(req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apperr.Validation(typeErr.Field, fmt.Sprintf("%s must be a %s", typeErr.Field, jsonKind(typeErr.Type.Kind().String())))
		}
		return apperr.MalformedBody(err)
	}

	return apperr.FromValidation(req.Validate())
}

func jsonKind(goKind string) string {
	switch goKind {
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64", "float32", "float64":
		return "number"
	case "slice", "array":
		return "list"
	case "bool":
		return "boolean"
	default:
		return "string"
	}
}
