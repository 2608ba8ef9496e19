package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayloop/dayloop/internal/blog"
)

// ListPostsHandler returns the user's generated posts, newest first
func ListPostsHandler(svc *blog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		posts, err := svc.List(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, posts)
	}
}

// GetPostHandler returns one post by its public identifier
func GetPostHandler(svc *blog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		post, err := svc.Get(c.Request.Context(), userID, c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, post)
	}
}
