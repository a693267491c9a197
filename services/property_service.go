package services

import (
	"context"
	"fmt"

	"github.com/brianmaleek/alx-listing-app-deployed/models"
	"github.com/brianmaleek/alx-listing-app-deployed/repositories"
)

// PropertyService backs the mock properties endpoints.
type PropertyService struct {
	repo repositories.PropertyRepository
}

func NewPropertyService(repo repositories.PropertyRepository) *PropertyService {
	return &PropertyService{repo: repo}
}

func (s *PropertyService) List(ctx context.Context) ([]models.Property, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("PropertyService.List: %w", err)
	}
	if list == nil {
		list = []models.Property{}
	}
	return list, nil
}

// Get wraps repositories.ErrNotFound, so callers can test it with errors.Is.
func (s *PropertyService) Get(ctx context.Context, id string) (*models.Property, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("PropertyService.Get %s: %w", id, err)
	}
	return p, nil
}
