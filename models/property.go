package models

// Address of a property. City and Country are always present.
type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	Country string `json:"country" bson:"country"`
}

type Host struct {
	Name       string `json:"name" bson:"name"`
	Avatar     string `json:"avatar,omitempty" bson:"avatar,omitempty"`
	JoinedDate string `json:"joinedDate,omitempty" bson:"joined_date,omitempty"`
}

// Property is the full record served by the backend. Optional numeric fields are
// pointers so that "absent" and "zero" stay distinguishable on the wire.
type Property struct {
	ID          string   `json:"id" bson:"_id"`
	Name        string   `json:"name" bson:"name"`
	Image       string   `json:"image" bson:"image"`
	Price       float64  `json:"price" bson:"price"`
	Rating      float64  `json:"rating" bson:"rating"`
	Address     Address  `json:"address" bson:"address"`
	Category    []string `json:"category,omitempty" bson:"category,omitempty"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Bedrooms    *int     `json:"bedrooms,omitempty" bson:"bedrooms,omitempty"`
	Bathrooms   *int     `json:"bathrooms,omitempty" bson:"bathrooms,omitempty"`
	MaxGuests   *int     `json:"maxGuests,omitempty" bson:"max_guests,omitempty"`
	Host        *Host    `json:"host,omitempty" bson:"host,omitempty"`
}

// PropertySummary is the reduced projection used by list and card views.
type PropertySummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Image    string   `json:"image"`
	Price    float64  `json:"price"`
	Rating   float64  `json:"rating"`
	City     string   `json:"city"`
	Country  string   `json:"country"`
	Category []string `json:"category,omitempty"`
}

func (p Property) Summary() PropertySummary {
	return PropertySummary{
		ID:       p.ID,
		Name:     p.Name,
		Image:    p.Image,
		Price:    p.Price,
		Rating:   p.Rating,
		City:     p.Address.City,
		Country:  p.Address.Country,
		Category: p.Category,
	}
}

// IntPtr is a convenience for building optional counts in seeds and tests.
func IntPtr(v int) *int {
	return &v
}
