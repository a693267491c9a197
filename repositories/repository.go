package repositories

import (
	"context"
	"errors"

	"github.com/brianmaleek/alx-listing-app-deployed/models"
)

// ErrNotFound is returned by PropertyRepository.Get for unknown ids.
var ErrNotFound = errors.New("not found")

// ReviewRepository is read-only: the mock API has no path that creates reviews.
// Unknown property ids yield an empty slice, never an error.
type ReviewRepository interface {
	FindByProperty(ctx context.Context, propertyID string) ([]models.Review, error)
}

type PropertyRepository interface {
	List(ctx context.Context) ([]models.Property, error)
	Get(ctx context.Context, id string) (*models.Property, error)
}
