package postgres

import (
	"context"

	"rental-chat-service/internal/models"

	"gorm.io/gorm"
)

type RentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) *RentalRepository {
	return &RentalRepository{db}
}

func (r *RentalRepository) Create(ctx context.Context, rental *models.Rental) error {
	return r.db.WithContext(ctx).Create(rental).Error
}

func (r *RentalRepository) FindByRenter(ctx context.Context, renterID string) ([]models.Rental, error) {
	var rentals []models.Rental
	err := r.db.WithContext(ctx).Where("renter_id = ?", renterID).Order("start_date DESC").Find(&rentals).Error
	return rentals, err
}
