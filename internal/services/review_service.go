package services

import (
	"context"
	"errors"
	"strings"

	"rental-chat-service/internal/models"
	"rental-chat-service/internal/repositories"

	goaway "github.com/TwiN/go-away"
)

type ReviewService struct {
	reviews ReviewStore
	cars    CarStore
}

func NewReviewService(reviews ReviewStore, cars CarStore) *ReviewService {
	return &ReviewService{reviews: reviews, cars: cars}
}

// Create stores the review with profanity in the comment masked.
func (s *ReviewService) Create(ctx context.Context, authorID string, req models.CreateReviewRequest) (*models.Review, error) {
	if _, err := s.cars.FindByID(ctx, req.CarID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}

	review := &models.Review{
		CarID:    req.CarID,
		AuthorID: authorID,
		Rating:   req.Rating,
		Comment:  goaway.Censor(strings.TrimSpace(req.Comment)),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListByCar(ctx context.Context, carID string) ([]models.Review, error) {
	return s.reviews.FindByCar(ctx, carID)
}
