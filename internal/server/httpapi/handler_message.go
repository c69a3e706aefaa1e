package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shivtchandra/CivicWatch/internal/common"
)

type ensureConversationRequest struct {
	UserID string `json:"userId"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleEnsureConversation(c *gin.Context) {
	var req ensureConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, common.NewValidationError("invalid json body"))
		return
	}

	conv, err := s.messages.EnsureConversation(c.Request.Context(), currentUserID(c), req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, conv)
}

func (s *Server) handleListConversations(c *gin.Context) {
	list, err := s.messages.ListConversations(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (s *Server) handleListMessages(c *gin.Context) {
	msgs, err := s.messages.ListMessages(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, msgs)
}

func (s *Server) handleSendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, common.NewValidationError("invalid json body"))
		return
	}

	msg, err := s.messages.Send(c.Request.Context(), c.Param("id"), currentUserID(c), req.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}
