package repositories

import (
	"sort"

	"github.com/brianmaleek/alx-listing-app-deployed/models"
)

// SeedReviews is the static review table served by the mock API, keyed by property id.
func SeedReviews() map[string][]models.Review {
	return map[string][]models.Review{
		"1": {
			{
				ID:         "1",
				UserName:   "John Doe",
				UserAvatar: "/avatars/user1.jpg",
				Rating:     5,
				Comment:    "Perfect beachside stay. The view was absolutely stunning!",
				Date:       "2024-10-15",
			},
			{
				ID:       "2",
				UserName: "Sarah Smith",
				Rating:   4.5,
				Comment:  "Very relaxing and beautiful view. Would definitely come back.",
				Date:     "2024-09-20",
			},
		},
		"2": {
			{
				ID:       "1",
				UserName: "Michael Brown",
				Rating:   5,
				Comment:  "Luxury villa with everything you need. Highly recommended!",
				Date:     "2024-10-01",
			},
		},
		"3": {
			{
				ID:       "1",
				UserName: "Emily Johnson",
				Rating:   4.8,
				Comment:  "Amazing apartment, very cozy! Great location and amenities.",
				Date:     "2024-09-25",
			},
			{
				ID:         "2",
				UserName:   "David Wilson",
				UserAvatar: "/avatars/user2.jpg",
				Rating:     4.5,
				Comment:    "Loved the location and facilities. Perfect for families.",
				Date:       "2024-08-30",
			},
		},
	}
}

// SeedProperties is the static property catalogue served by the mock API, in list order.
func SeedProperties() []models.Property {
	return []models.Property{
		{
			ID:     "1",
			Name:   "Seaside Retreat Villa",
			Image:  "https://example.com/image1.jpg",
			Price:  3200,
			Rating: 4.75,
			Address: models.Address{
				Street:  "12 Beach Road",
				City:    "Malibu",
				State:   "California",
				Country: "USA",
			},
			Category:    []string{"Beachfront", "Luxury Villa", "Pool", "Free Parking"},
			Description: "A bright villa a few steps from the sand.\nWake up to the sound of the waves.",
			Amenities:   []string{"Wi-Fi", "Pool", "Air conditioning", "Kitchen"},
			Bedrooms:    models.IntPtr(4),
			Bathrooms:   models.IntPtr(3),
			MaxGuests:   models.IntPtr(8),
			Host: &models.Host{
				Name:       "Alice Carter",
				Avatar:     "/avatars/host1.jpg",
				JoinedDate: "March 2019",
			},
		},
		{
			ID:     "2",
			Name:   "Hillside Luxury Villa",
			Image:  "https://example.com/image2.jpg",
			Price:  4500,
			Rating: 4.9,
			Address: models.Address{
				City:    "Ubud",
				State:   "Bali",
				Country: "Indonesia",
			},
			Category:    []string{"Luxury Villa", "Mountain View"},
			Description: "A private villa overlooking rice terraces, with a full-time staff.",
			Amenities:   []string{"Infinity pool", "Spa", "Breakfast included"},
			Bedrooms:    models.IntPtr(5),
			Bathrooms:   models.IntPtr(5),
			MaxGuests:   models.IntPtr(10),
			Host: &models.Host{
				Name: "Made Wirawan",
			},
		},
		{
			ID:     "3",
			Name:   "Cozy City Apartment",
			Image:  "https://example.com/image3.jpg",
			Price:  150,
			Rating: 4.6,
			Address: models.Address{
				City:    "Lisbon",
				Country: "Portugal",
			},
			Category:  []string{"City", "Apartment"},
			Bedrooms:  models.IntPtr(1),
			Bathrooms: models.IntPtr(1),
			MaxGuests: models.IntPtr(2),
		},
	}
}

// seedReviewOrder flattens a review table for insertion: catalogue properties first in
// catalogue order, then ids with no catalogue entry in sorted order. Each review carries
// its property id.
func seedReviewOrder(properties []models.Property, reviews map[string][]models.Review) []models.Review {
	var out []models.Review
	add := func(id string) {
		for _, r := range reviews[id] {
			r.PropertyID = id
			out = append(out, r)
		}
	}

	known := make(map[string]bool, len(properties))
	for _, p := range properties {
		if known[p.ID] {
			continue
		}
		known[p.ID] = true
		add(p.ID)
	}

	var orphans []string
	for id := range reviews {
		if !known[id] {
			orphans = append(orphans, id)
		}
	}
	sort.Strings(orphans)
	for _, id := range orphans {
		add(id)
	}
	return out
}
