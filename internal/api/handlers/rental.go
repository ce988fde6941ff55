package handlers

import (
	"context"
	"net/http"

	"rental-chat-service/internal/api/middleware"
	"rental-chat-service/internal/models"

	"github.com/gin-gonic/gin"
)

type RentalService interface {
	Create(ctx context.Context, renterID string, req models.CreateRentalRequest) (*models.Rental, error)
	ListByRenter(ctx context.Context, renterID string) ([]models.Rental, error)
}

type RentalHandler struct {
	rentalService RentalService
}

func NewRentalHandler(rentalService RentalService) *RentalHandler {
	return &RentalHandler{rentalService: rentalService}
}

// CreateRental godoc
// @Summary Book a car
// @Description Creates a rental. Cars with auto-approval are confirmed immediately.
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateRentalRequest true "Rental"
// @Success 201 {object} models.Rental "Rental created"
// @Failure 400 {object} models.ErrorResponse "Invalid input data"
// @Failure 404 {object} models.ErrorResponse "Car not found"
// @Router /rentals [post]
func (h *RentalHandler) CreateRental(c *gin.Context) {
	var req models.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	rental, err := h.rentalService.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err, "Failed to create rental")
		return
	}
	c.JSON(http.StatusCreated, rental)
}

// ListMyRentals godoc
// @Summary List my rentals
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Rental "Rentals"
// @Router /rentals [get]
func (h *RentalHandler) ListMyRentals(c *gin.Context) {
	rentals, err := h.rentalService.ListByRenter(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err, "Failed to get rentals")
		return
	}
	c.JSON(http.StatusOK, rentals)
}
