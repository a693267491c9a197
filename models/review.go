package models

// Review is scoped to one property; its ID is only unique within that property.
type Review struct {
	ID         string  `json:"id" bson:"review_id"`
	PropertyID string  `json:"-" bson:"property_id"`
	UserName   string  `json:"userName" bson:"user_name"`
	UserAvatar string  `json:"userAvatar,omitempty" bson:"user_avatar,omitempty"`
	Rating     float64 `json:"rating" bson:"rating"`
	Comment    string  `json:"comment" bson:"comment"`
	Date       string  `json:"date" bson:"date"`
}
