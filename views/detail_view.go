package views

import "github.com/brianmaleek/alx-listing-app-deployed/models"

type HostData struct {
	Name   string
	Avatar string
	Joined string
}

// DetailData is the render model of a full property record. Empty strings and nil
// pointers mean "section absent".
type DetailData struct {
	ID          string
	Name        string
	Image       string
	AddressLine string
	Price       string
	Rating      string
	Bedrooms    string
	Bathrooms   string
	Guests      string
	Tags        []string
	Description string
	Amenities   []string
	Host        *HostData
	BookingHref string
}

// NewDetail is a pure mapping of an already resolved record; how the record was fetched
// is up to the caller.
func NewDetail(p models.Property) DetailData {
	d := DetailData{
		ID:          p.ID,
		Name:        p.Name,
		Image:       p.Image,
		AddressLine: addressLine(p.Address),
		Price:       "$" + FormatPrice(p.Price),
		Rating:      FormatRating(p.Rating),
		Tags:        p.Category,
		Description: p.Description,
		Amenities:   p.Amenities,
		BookingHref: "/booking",
	}
	if n := count(p.Bedrooms); n > 0 {
		d.Bedrooms = plural(n, "Bedroom")
	}
	if n := count(p.Bathrooms); n > 0 {
		d.Bathrooms = plural(n, "Bathroom")
	}
	if n := count(p.MaxGuests); n > 0 {
		d.Guests = "Up to " + plural(n, "Guest")
	}
	if p.Host != nil {
		d.Host = &HostData{Name: p.Host.Name, Avatar: p.Host.Avatar}
		if p.Host.JoinedDate != "" {
			d.Host.Joined = "Joined " + p.Host.JoinedDate
		}
	}
	return d
}

func count(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func addressLine(a models.Address) string {
	return joinNonEmpty(", ", a.Street, a.City, a.State, a.Country)
}
