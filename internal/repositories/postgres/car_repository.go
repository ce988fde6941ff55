package postgres

import (
	"context"
	"errors"

	"rental-chat-service/internal/models"
	"rental-chat-service/internal/repositories"

	"gorm.io/gorm"
)

type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db}
}

func (r *CarRepository) Create(ctx context.Context, car *models.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

func (r *CarRepository) FindByID(ctx context.Context, id string) (*models.Car, error) {
	var car models.Car
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&car).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &car, nil
}
