package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shivtchandra/CivicWatch/internal/common"
)

func (s *Server) handleCreateUpload(c *gin.Context) {
	key, url, err := s.images.PresignPut(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"key": key, "url": url})
}

// handleGetUploadURL resolves a stored object key to a presigned GET URL.
// The key arrives as a query parameter because it contains slashes.
func (s *Server) handleGetUploadURL(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		writeError(c, common.NewValidationError("key required"))
		return
	}

	url, err := s.images.PresignGet(c.Request.Context(), key)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
