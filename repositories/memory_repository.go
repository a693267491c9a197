package repositories

import (
	"context"

	"github.com/brianmaleek/alx-listing-app-deployed/models"
)

// MemoryReviewRepository serves reviews from a fixed in-memory table.
type MemoryReviewRepository struct {
	reviews map[string][]models.Review
}

func NewMemoryReviewRepository(table map[string][]models.Review) *MemoryReviewRepository {
	return &MemoryReviewRepository{reviews: table}
}

func (r *MemoryReviewRepository) FindByProperty(_ context.Context, propertyID string) ([]models.Review, error) {
	src := r.reviews[propertyID]
	out := make([]models.Review, len(src))
	copy(out, src)
	for i := range out {
		out[i].PropertyID = propertyID
	}
	return out, nil
}

// MemoryPropertyRepository serves a fixed, ordered catalogue.
type MemoryPropertyRepository struct {
	properties []models.Property
	byID       map[string]int
}

func NewMemoryPropertyRepository(properties []models.Property) *MemoryPropertyRepository {
	byID := make(map[string]int, len(properties))
	for i, p := range properties {
		byID[p.ID] = i
	}
	return &MemoryPropertyRepository{properties: properties, byID: byID}
}

func (r *MemoryPropertyRepository) List(_ context.Context) ([]models.Property, error) {
	out := make([]models.Property, len(r.properties))
	copy(out, r.properties)
	return out, nil
}

func (r *MemoryPropertyRepository) Get(_ context.Context, id string) (*models.Property, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	p := r.properties[i]
	return &p, nil
}
