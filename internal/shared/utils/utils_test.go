package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-manager/internal/shared/apperr"
)

func TestDedupIDs(t *testing.T) {
	in := []int64{3, 1, 3, 2, 1}

	assert.Equal(t, []int64{1, 2, 3}, DedupIDs(in))
	assert.Equal(t, []int64{3, 1, 3, 2, 1}, in)
	assert.Empty(t, DedupIDs([]int64{}))
	assert.Nil(t, DedupIDs(nil))
}

func newContext(method, body string, params gin.Params) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	return c
}

func TestParseID(t *testing.T) {
	id, err := ParseID(newContext(http.MethodGet, "", gin.Params{{Key: "id", Value: "42"}}), "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"abc", "0", "-3", ""} {
		_, err := ParseID(newContext(http.MethodGet, "", gin.Params{{Key: "id", Value: raw}}), "id")

		var vErr *apperr.ValidationError
		require.True(t, errors.As(err, &vErr), raw)
		assert.Equal(t, "id", vErr.Fields[0].Field)
	}
}

type sampleRequest struct {
	Title *string          `json:"title"`
	Price *decimal.Decimal `json:"price"`
	Count int              `json:"count"`
}

func (r sampleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, NotBlank("title must not be blank")),
		validation.Field(&r.Price, NonNegative("price must be >= 0")),
	)
}

func TestBindJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "valid", body: `{"title":"Go","price":0}`},
		{name: "omitted fields pass", body: `{}`},
		{name: "blank title", body: `{"title":"   "}`, wantField: "title"},
		{name: "negative price", body: `{"price":-1}`, wantField: "price"},
		{name: "wrong type", body: `{"count":"many"}`, wantField: "count"},
		{name: "malformed", body: `{"title":`, wantField: "body"},
		{name: "empty body", body: ``, wantField: "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req sampleRequest
			err := BindJSON(newContext(http.MethodPost, tt.body, nil), &req)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *apperr.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Fields[0].Field)
		})
	}
}
