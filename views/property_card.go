package views

import (
	"fmt"
	"net/url"

	"github.com/brianmaleek/alx-listing-app-deployed/models"
)

// MaxCardTags is how many category tags a card shows; the rest are dropped.
const MaxCardTags = 3

// Card is the render model of one property tile.
type Card struct {
	Href        string
	Name        string
	Image       string
	Alt         string
	Location    string
	Price       string
	Rating      string
	RatingLabel string
	Tags        []string
}

// NewCard maps a summary to its tile. Input is not validated; a missing image renders an
// empty src.
func NewCard(s models.PropertySummary) Card {
	tags := s.Category
	if len(tags) > MaxCardTags {
		tags = tags[:MaxCardTags]
	}
	return Card{
		Href:        DetailPath(s.ID),
		Name:        s.Name,
		Image:       s.Image,
		Alt:         fmt.Sprintf("%s in %s", s.Name, s.City),
		Location:    s.City + ", " + s.Country,
		Price:       "$" + FormatPrice(s.Price),
		Rating:      FormatRating(s.Rating),
		RatingLabel: fmt.Sprintf("Rating: %g out of 5", s.Rating),
		Tags:        tags,
	}
}

// DetailPath is the detail route of a property.
func DetailPath(id string) string {
	return "/properties/" + url.PathEscape(id)
}
