package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayloop/dayloop/internal/store"
	"github.com/dayloop/dayloop/internal/summary"
)

// writeError maps service errors onto HTTP responses. Validation failures
// name the offending field; store failures stay generic (the wrapped detail
// is for logs, not clients).
func writeError(c *gin.Context, err error) {
	var verr *summary.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
