package handlers

import (
	"context"
	"net/http"
	"strconv"

	"rental-chat-service/internal/api/middleware"
	"rental-chat-service/internal/models"

	"github.com/gin-gonic/gin"
)

type NotificationService interface {
	List(ctx context.Context, filter models.NotificationFilter) (*models.NotificationListResponse, error)
	MarkRead(ctx context.Context, userID, id string) (*models.Notification, error)
	MarkAllRead(ctx context.Context, filter models.NotificationFilter) (*models.MarkAllReadResponse, error)
	CreateForMessageID(ctx context.Context, messageID string) ([]*models.Notification, error)
}

type NotificationHandler struct {
	notificationService NotificationService
}

func NewNotificationHandler(notificationService NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func filterFromQuery(c *gin.Context) models.NotificationFilter {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return models.NotificationFilter{
		UserID: middleware.UserID(c),
		Type:   models.NotificationType(c.Query("type")),
		Page:   page,
		Limit:  limit,
	}
}

// ListNotifications godoc
// @Summary List notifications
// @Description Notifications of the current user, newest first, with the unread count
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param type query string false "inquiry_received or inquiry_sent"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} models.NotificationListResponse "Notifications"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid type"
// @Failure 401 {object} models.ErrorResponse "Unauthorized - invalid or missing token"
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	list, err := h.notificationService.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		respondError(c, err, "Failed to get notifications")
		return
	}
	c.JSON(http.StatusOK, list)
}

// MarkNotificationRead godoc
// @Summary Mark a notification read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} models.Notification "Notification"
// @Failure 404 {object} models.ErrorResponse "Notification not found"
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	n, err := h.notificationService.MarkRead(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to mark notification read")
		return
	}
	c.JSON(http.StatusOK, n)
}

// MarkAllNotificationsRead godoc
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param type query string false "Only this type"
// @Success 200 {object} models.MarkAllReadResponse "Number of notifications changed"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid type"
// @Router /notifications/mark-all-read [put]
func (h *NotificationHandler) MarkAllNotificationsRead(c *gin.Context) {
	resp, err := h.notificationService.MarkAllRead(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		respondError(c, err, "Failed to mark notifications read")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateMessageNotifications godoc
// @Summary Create notifications for a message
// @Description Server-to-server. Creates inquiry_received for the receiver and inquiry_sent for a sender who does not own the car.
// @Tags notifications
// @Accept json
// @Produce json
// @Param X-Internal-Key header string true "Internal API key"
// @Param request body models.CreateMessageNotificationRequest true "Message ID"
// @Success 201 {array} models.Notification "Created notifications"
// @Failure 401 {object} models.ErrorResponse "Invalid internal key"
// @Failure 404 {object} models.ErrorResponse "Message not found"
// @Router /notifications/message [post]
func (h *NotificationHandler) CreateMessageNotifications(c *gin.Context) {
	var req models.CreateMessageNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	created, err := h.notificationService.CreateForMessageID(c.Request.Context(), req.MessageID)
	if err != nil {
		respondError(c, err, "Failed to create notifications")
		return
	}
	c.JSON(http.StatusCreated, created)
}
