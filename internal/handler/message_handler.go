package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skill-match-api/internal/dto"
	"skill-match-api/internal/middleware"
	"skill-match-api/internal/response"
	"skill-match-api/internal/service"
)

// MessageHandler handles direct message HTTP requests
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Send godoc
// @Summary Send a direct message
// @Tags Messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Send message request"
// @Success 201 {object} domain.Message
// @Failure 400 {object} response.ErrorBody
// @Router /api/messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	actorID, _ := middleware.GetUserID(c)

	message, err := h.messageService.Send(c.Request.Context(), req, actorID, middleware.GetUserRole(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, message)
}

// List godoc
// @Summary List all messages
// @Tags Messages
// @Produce json
// @Success 200 {array} domain.Message
// @Router /api/messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.messageService.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, messages)
}

// Get godoc
// @Summary Get a message by id
// @Tags Messages
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} domain.Message
// @Failure 404 {object} response.ErrorBody
// @Router /api/messages/{id} [get]
func (h *MessageHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid message id")
		return
	}

	message, err := h.messageService.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, message)
}

// Between godoc
// @Summary List all messages exchanged between two users, oldest first
// @Tags Messages
// @Produce json
// @Param user1 path string true "First user ID"
// @Param user2 path string true "Second user ID"
// @Success 200 {array} domain.Message
// @Failure 400 {object} response.ErrorBody
// @Router /api/messages/between/{user1}/{user2} [get]
func (h *MessageHandler) Between(c *gin.Context) {
	a, err := uuid.Parse(c.Param("user1"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid user id")
		return
	}
	b, err := uuid.Parse(c.Param("user2"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	messages, err := h.messageService.Between(c.Request.Context(), a, b)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, messages)
}

// Conversations godoc
// @Summary List the distinct users a user has exchanged messages with
// @Tags Messages
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} string
// @Failure 400 {object} response.ErrorBody
// @Router /api/messages/conversations/{userId} [get]
func (h *MessageHandler) Conversations(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	counterparts, err := h.messageService.Conversations(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, counterparts)
}

// Delete godoc
// @Summary Delete a message
// @Tags Messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} response.DeleteBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/messages/{id} [delete]
func (h *MessageHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid message id")
		return
	}

	actorID, _ := middleware.GetUserID(c)

	if err := h.messageService.Delete(c.Request.Context(), id, actorID, middleware.GetUserRole(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, response.DeleteBody{Message: "Message deleted"})
}
