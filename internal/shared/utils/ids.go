package utils

import (
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"

	"book-manager/internal/shared/apperr"
)

// DedupIDs returns the distinct ids of in, ascending. The input is not modified.
func DedupIDs(in []int64) []int64 {
	if in == nil {
		return nil
	}
	out := slices.Clone(in)
	slices.Sort(out)
	return slices.Compact(out)
}

// ParseID reads a positive integer path parameter.
func ParseID(c *gin.Context, param string) (int64, error) {
	raw := c.Param(param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation(param, param+" must be a positive integer")
	}
	return id, nil
}
