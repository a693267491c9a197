package models

// BookingRequest is the body of POST {API_BASE}/bookings. The form/binding tags mirror the
// HTML attributes of the booking form: every field is required, email is type=email and the
// two dates are type=date. checkOut is not required to follow checkIn.
type BookingRequest struct {
	FirstName string `json:"firstName" form:"firstName" binding:"required"`
	LastName  string `json:"lastName" form:"lastName" binding:"required"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Phone     string `json:"phone" form:"phone" binding:"required"`
	CheckIn   string `json:"checkIn" form:"checkIn" binding:"required,datestr"`
	CheckOut  string `json:"checkOut" form:"checkOut" binding:"required,datestr"`
}
