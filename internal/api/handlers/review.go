package handlers

import (
	"context"
	"net/http"

	"rental-chat-service/internal/api/middleware"
	"rental-chat-service/internal/models"

	"github.com/gin-gonic/gin"
)

type ReviewService interface {
	Create(ctx context.Context, authorID string, req models.CreateReviewRequest) (*models.Review, error)
	ListByCar(ctx context.Context, carID string) ([]models.Review, error)
}

type ReviewHandler struct {
	reviewService ReviewService
}

func NewReviewHandler(reviewService ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// CreateReview godoc
// @Summary Review a car
// @Description Profanity in the comment is masked before it is stored.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateReviewRequest true "Review"
// @Success 201 {object} models.Review "Review created"
// @Failure 400 {object} models.ErrorResponse "Invalid input data"
// @Failure 404 {object} models.ErrorResponse "Car not found"
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err, "Failed to create review")
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ListCarReviews godoc
// @Summary List reviews of a car
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 200 {array} models.Review "Reviews"
// @Router /cars/{id}/reviews [get]
func (h *ReviewHandler) ListCarReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListByCar(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}
