package services

import (
	"context"
	"fmt"

	"github.com/brianmaleek/alx-listing-app-deployed/models"
	"github.com/brianmaleek/alx-listing-app-deployed/repositories"
)

// ReviewService backs the mock reviews endpoint.
type ReviewService struct {
	repo repositories.ReviewRepository
}

func NewReviewService(repo repositories.ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

// GetReviews never returns nil on success so the endpoint always answers a JSON array.
func (s *ReviewService) GetReviews(ctx context.Context, propertyID string) ([]models.Review, error) {
	reviews, err := s.repo.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("ReviewService.GetReviews: %w", err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}
