package services

import (
	"context"
	"errors"

	"rental-chat-service/internal/models"
	"rental-chat-service/internal/repositories"
)

type RentalService struct {
	rentals RentalStore
	cars    CarStore
}

func NewRentalService(rentals RentalStore, cars CarStore) *RentalService {
	return &RentalService{rentals: rentals, cars: cars}
}

// Create books the car. Auto-approved cars are confirmed whatever status was requested.
func (s *RentalService) Create(ctx context.Context, renterID string, req models.CreateRentalRequest) (*models.Rental, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrInvalidDateRange
	}

	car, err := s.cars.FindByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.RentalStatusPending
	}
	if car.IsAutoApproved {
		status = models.RentalStatusConfirmed
	}

	rental := &models.Rental{
		CarID:     car.ID,
		RenterID:  renterID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    status,
	}
	if err := s.rentals.Create(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *RentalService) ListByRenter(ctx context.Context, renterID string) ([]models.Rental, error) {
	return s.rentals.FindByRenter(ctx, renterID)
}
