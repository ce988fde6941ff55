package handlers

import (
	"context"
	"net/http"

	"rental-chat-service/internal/api/middleware"
	"rental-chat-service/internal/models"
	"rental-chat-service/internal/push"

	"github.com/gin-gonic/gin"
)

type DeviceService interface {
	RegisterToken(ctx context.Context, userID string, req models.RegisterTokenRequest) (*models.RegisterTokenResponse, error)
	SendDirect(ctx context.Context, req models.SendNotificationRequest) ([]push.Ticket, error)
}

type DeviceHandler struct {
	deviceService DeviceService
}

func NewDeviceHandler(deviceService DeviceService) *DeviceHandler {
	return &DeviceHandler{deviceService: deviceService}
}

// RegisterToken godoc
// @Summary Register a push token
// @Description Store an Expo push token for the current user. Registering the same token again is a no-op.
// @Tags push
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.RegisterTokenRequest true "Expo push token"
// @Success 200 {object} models.RegisterTokenResponse "Token registered"
// @Failure 400 {object} models.ValidationErrorResponse "Not an Expo push token"
// @Router /register-token [post]
func (h *DeviceHandler) RegisterToken(c *gin.Context) {
	var req models.RegisterTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.deviceService.RegisterToken(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err, "Failed to register token")
		return
	}
	c.JSON(http.StatusOK, resp)
}

type SendNotificationResponse struct {
	Tickets []push.Ticket `json:"tickets"`
}

// SendNotification godoc
// @Summary Send a push notification
// @Description Push directly to explicit tokens. Tokens that are not Expo push tokens are skipped.
// @Tags push
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SendNotificationRequest true "Notification"
// @Success 200 {object} SendNotificationResponse "Tickets"
// @Failure 400 {object} models.ErrorResponse "Invalid input data"
// @Failure 502 {object} models.ErrorResponse "Push provider rejected every request"
// @Router /send-notification [post]
func (h *DeviceHandler) SendNotification(c *gin.Context) {
	var req models.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	tickets, err := h.deviceService.SendDirect(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to send notification")
		return
	}
	if tickets == nil {
		tickets = []push.Ticket{}
	}
	c.JSON(http.StatusOK, SendNotificationResponse{Tickets: tickets})
}
