package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/books/:id", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
	r.GET("/metrics", gin.WrapH(Handler()))

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/books/:id", "404"))
	unmatchedBefore := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "unmatched", "404"))

	for _, path := range []string{"/books/1", "/books/2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, before+2, testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/books/:id", "404")))
	assert.Equal(t, unmatchedBefore+1, testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "unmatched", "404")))
	assert.Zero(t, testutil.ToFloat64(httpInFlight))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "book_manager_http_requests_total"))
}
