package handlers

import (
	"context"
	"mime/multipart"
	"net/http"
	"strings"

	"rental-chat-service/internal/api/middleware"
	"rental-chat-service/internal/models"
	"rental-chat-service/internal/services"

	"github.com/gin-gonic/gin"
)

type MessageService interface {
	Create(ctx context.Context, in services.CreateMessageInput) (*models.MessageResponse, error)
	Conversation(ctx context.Context, userID, otherID, carID string) (*models.ConversationResponse, error)
	Edit(ctx context.Context, userID, messageID, content string) (*models.MessageResponse, error)
	Delete(ctx context.Context, userID, messageID string) (*models.MessageResponse, error)
	MarkRead(ctx context.Context, userID, messageID string) (*models.MessageResponse, error)
}

type MessageHandler struct {
	messageService MessageService
}

func NewMessageHandler(messageService MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// CreateMessage godoc
// @Summary Send a message
// @Description Send a message about a car. Accepts JSON or multipart form data with image files in "images".
// @Tags messages
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateMessageRequest true "Message"
// @Success 201 {object} models.MessageResponse "Message created"
// @Failure 400 {object} models.ValidationErrorResponse "Validation failed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized - invalid or missing token"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /messages [post]
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req models.CreateMessageRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	in := services.CreateMessageInput{
		SenderID:             middleware.UserID(c),
		CreateMessageRequest: req,
		Images:               imageFiles(c),
	}

	msg, err := h.messageService.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to create message")
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func imageFiles(c *gin.Context) []*multipart.FileHeader {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil
	}
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	files := append([]*multipart.FileHeader{}, form.File["images"]...)
	return append(files, form.File["images[]"]...)
}

// GetConversation godoc
// @Summary Get a conversation
// @Description Messages exchanged with another user, oldest first. Deleted messages are left out.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Other user ID"
// @Param carId path string false "Car ID"
// @Success 200 {object} models.ConversationResponse "Conversation"
// @Failure 401 {object} models.ErrorResponse "Unauthorized - invalid or missing token"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /messages/{id} [get]
// @Router /messages/{id}/{carId} [get]
func (h *MessageHandler) GetConversation(c *gin.Context) {
	conversation, err := h.messageService.Conversation(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("carId"))
	if err != nil {
		respondError(c, err, "Failed to get messages")
		return
	}
	c.JSON(http.StatusOK, conversation)
}

// UpdateMessage godoc
// @Summary Edit a message
// @Description Edit the content of your own message while the edit window is open
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Param request body models.UpdateMessageRequest true "New content"
// @Success 200 {object} models.MessageResponse "Updated message"
// @Failure 400 {object} models.ErrorResponse "Empty content or deleted message"
// @Failure 403 {object} models.ErrorResponse "Not the sender or edit window expired"
// @Failure 404 {object} models.ErrorResponse "Message not found"
// @Router /messages/{id} [put]
func (h *MessageHandler) UpdateMessage(c *gin.Context) {
	var req models.UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	msg, err := h.messageService.Edit(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Content)
	if err != nil {
		respondError(c, err, "Failed to update message")
		return
	}
	c.JSON(http.StatusOK, msg)
}

// DeleteMessage godoc
// @Summary Delete a message
// @Description Soft delete your own message while the edit window is open
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} models.MessageResponse "Deleted message"
// @Failure 403 {object} models.ErrorResponse "Not the sender or edit window expired"
// @Failure 404 {object} models.ErrorResponse "Message not found"
// @Router /messages/{id} [delete]
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	msg, err := h.messageService.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to delete message")
		return
	}
	c.JSON(http.StatusOK, msg)
}

// MarkMessageRead godoc
// @Summary Mark a message read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} models.MessageResponse "Message"
// @Failure 403 {object} models.ErrorResponse "Not the receiver"
// @Failure 404 {object} models.ErrorResponse "Message not found"
// @Router /messages/{id}/read [put]
func (h *MessageHandler) MarkMessageRead(c *gin.Context) {
	msg, err := h.messageService.MarkRead(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to mark message read")
		return
	}
	c.JSON(http.StatusOK, msg)
}
