package views

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/brianmaleek/alx-listing-app-deployed/models"
)

const (
	MsgBookingFailed    = "Booking failed. Please try again."
	MsgBookingInvalid   = "Please fill in all required fields."
	MsgBookingConfirmed = "Booking confirmed!"

	LabelSubmit     = "Confirm Booking"
	LabelSubmitting = "Processing..."
)

// ErrSubmitInFlight is returned when Submit is called while a submission is pending. It
// is the server side counterpart of the disabled submit button.
var ErrSubmitInFlight = errors.New("booking submission already in progress")

type BookingSubmitter interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) error
}

// BookingForm holds the six booking fields and the submission state.
type BookingForm struct {
	submitter BookingSubmitter
	logger    log.Logger

	mu         sync.Mutex
	values     models.BookingRequest
	errMsg     string
	submitting bool
}

func NewBookingForm(submitter BookingSubmitter, logger log.Logger) *BookingForm {
	return &BookingForm{submitter: submitter, logger: logger}
}

// Set updates one field by its form name.
func (f *BookingForm) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case "firstName":
		f.values.FirstName = value
	case "lastName":
		f.values.LastName = value
	case "email":
		f.values.Email = value
	case "phone":
		f.values.Phone = value
	case "checkIn":
		f.values.CheckIn = value
	case "checkOut":
		f.values.CheckOut = value
	default:
		return fmt.Errorf("unknown booking field %q", field)
	}
	return nil
}

// SetValues replaces all fields at once.
func (f *BookingForm) SetValues(v models.BookingRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = v
}

// SetError shows msg without submitting, e.g. after a binding failure.
func (f *BookingForm) SetError(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errMsg = msg
}

// Submit sends the current values as one create-booking request. The error message is
// cleared first, and the submitting flag is held for the duration of the call and
// released on every exit path. On failure the values are kept and a generic message is
// set; the raw error is only logged and returned.
func (f *BookingForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	f.submitting = true
	f.errMsg = ""
	values := f.values
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	if err := f.submitter.CreateBooking(ctx, values); err != nil {
		_ = level.Error(f.logger).Log("msg", "booking error", "err", err)
		f.SetError(MsgBookingFailed)
		return err
	}
	return nil
}

func (f *BookingForm) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

type BookingFormData struct {
	Values      models.BookingRequest
	Error       string
	Submitting  bool
	ButtonLabel string
}

func (f *BookingForm) Data() BookingFormData {
	f.mu.Lock()
	defer f.mu.Unlock()

	label := LabelSubmit
	if f.submitting {
		label = LabelSubmitting
	}
	return BookingFormData{
		Values:      f.values,
		Error:       f.errMsg,
		Submitting:  f.submitting,
		ButtonLabel: label,
	}
}
