package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"book-manager/internal/shared/apperr"
)

const (
	MessageValidationFailed = "Validation failed"
	MessageBusinessRule     = "Business rule violation"
	MessageInternal         = "Internal server error"
)

// ErrorBody is the JSON body of every non-2xx response.
type ErrorBody struct {
	Message string              `json:"message"`
	Errors  []apperr.FieldError `json:"errors,omitempty"`
}

func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Error maps an application error to its status code and body.
// Errors outside the apperr taxonomy are logged and reported as 500.
func Error(c *gin.Context, err error) {
	var (
		validationErr *apperr.ValidationError
		businessErr   *apperr.BusinessRuleError
		notFoundErr   *apperr.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{
			Message: MessageValidationFailed,
			Errors:  validationErr.Fields,
		})
	case errors.As(err, &businessErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{
			Message: MessageBusinessRule,
			Errors:  []apperr.FieldError{{Field: apperr.BusinessRuleField, Reason: businessErr.Reason}},
		})
	case errors.As(err, &notFoundErr):
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorBody{Message: notFoundErr.Error()})
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		InternalServerError(c)
	}
}

func InternalServerError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorBody{Message: MessageInternal})
}
