package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"rental-chat-service/internal/models"
	"rental-chat-service/internal/push"
	"rental-chat-service/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error, fallback string) {
	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			Fields:  verrs,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrMessageNotFound),
		errors.Is(err, services.ErrNotificationNotFound),
		errors.Is(err, services.ErrCarNotFound),
		errors.Is(err, services.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrForbidden),
		errors.Is(err, services.ErrEditWindowExpired):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrMessageDeleted),
		errors.Is(err, services.ErrEmptyContent),
		errors.Is(err, services.ErrInvalidDateRange):
		status = http.StatusBadRequest
	case errors.Is(err, push.ErrAllChunksFailed):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		slog.Error(fallback, "path", c.FullPath(), "error", err)
		c.JSON(status, models.ErrorResponse{
			Code:    status,
			Message: fallback,
			Details: "An unexpected error occurred.",
		})
		return
	}

	c.JSON(status, models.ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "Invalid input data",
		Details: details,
	})
}
