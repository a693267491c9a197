package views

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianmaleek/alx-listing-app-deployed/models"
)

type submitterFunc func(ctx context.Context, req models.BookingRequest) error

func (f submitterFunc) CreateBooking(ctx context.Context, req models.BookingRequest) error {
	return f(ctx, req)
}

func filledBooking() models.BookingRequest {
	return models.BookingRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		Phone: "+1 555 0100", CheckIn: "2025-01-01", CheckOut: "2025-01-05",
	}
}

func TestBookingForm_Set(t *testing.T) {
	f := NewBookingForm(submitterFunc(nil), log.NewNopLogger())

	require.NoError(t, f.Set("firstName", "Ada"))
	require.NoError(t, f.Set("checkOut", "2025-01-05"))
	assert.Error(t, f.Set("nickname", "x"))

	assert.Equal(t, "Ada", f.Data().Values.FirstName)
	assert.Equal(t, "2025-01-05", f.Data().Values.CheckOut)
}

func TestBookingForm_SubmitSendsValuesOnce(t *testing.T) {
	var got []models.BookingRequest
	f := NewBookingForm(submitterFunc(func(_ context.Context, req models.BookingRequest) error {
		got = append(got, req)
		return nil
	}), log.NewNopLogger())
	f.SetValues(filledBooking())

	require.NoError(t, f.Submit(context.Background()))
	require.Len(t, got, 1)
	assert.Equal(t, filledBooking(), got[0])

	data := f.Data()
	assert.False(t, data.Submitting)
	assert.Equal(t, LabelSubmit, data.ButtonLabel)
	assert.Empty(t, data.Error)
}

func TestBookingForm_FailureKeepsValues(t *testing.T) {
	f := NewBookingForm(submitterFunc(func(context.Context, models.BookingRequest) error {
		return errors.New("status 500")
	}), log.NewNopLogger())
	f.SetValues(filledBooking())

	err := f.Submit(context.Background())
	require.Error(t, err)

	data := f.Data()
	assert.False(t, data.Submitting, "submitting flag must be released after failure")
	assert.Equal(t, MsgBookingFailed, data.Error)
	assert.Equal(t, filledBooking(), data.Values)
}

func TestBookingForm_SubmitClearsPreviousError(t *testing.T) {
	fail := true
	f := NewBookingForm(submitterFunc(func(context.Context, models.BookingRequest) error {
		if fail {
			return errors.New("boom")
		}
		return nil
	}), log.NewNopLogger())

	_ = f.Submit(context.Background())
	require.Equal(t, MsgBookingFailed, f.Data().Error)

	fail = false
	require.NoError(t, f.Submit(context.Background()))
	assert.Empty(t, f.Data().Error)
}

func TestBookingForm_RejectsSecondSubmitWhileInFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	calls := 0
	f := NewBookingForm(submitterFunc(func(context.Context, models.BookingRequest) error {
		calls++
		close(entered)
		<-release
		return nil
	}), log.NewNopLogger())

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("submission never started")
	}
	assert.True(t, f.Submitting())
	assert.Equal(t, LabelSubmitting, f.Data().ButtonLabel)
	assert.ErrorIs(t, f.Submit(context.Background()), ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, calls)
	assert.False(t, f.Submitting())
}

func TestBookingTemplate(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	data := BookingFormData{Values: filledBooking(), Error: MsgBookingFailed, ButtonLabel: LabelSubmit}
	require.NoError(t, Render(tmpl, &buf, PageBooking, BookingPage{Title: "Book", Form: data}))
	html := buf.String()

	for _, name := range []string{"firstName", "lastName", "email", "phone", "checkIn", "checkOut"} {
		assert.Contains(t, html, `name="`+name+`"`)
	}
	assert.Contains(t, html, `value="ada@example.com"`)
	assert.Contains(t, html, `<div class="booking-error">`+MsgBookingFailed+`</div>`)
	assert.Contains(t, html, ">Confirm Booking</button>")
	assert.False(t, strings.Contains(html, `type="submit" disabled`))

	buf.Reset()
	data = BookingFormData{Submitting: true, ButtonLabel: LabelSubmitting}
	require.NoError(t, Render(tmpl, &buf, PageBooking, BookingPage{Form: data}))
	assert.Contains(t, buf.String(), `<button type="submit" disabled>Processing...</button>`)
	assert.NotContains(t, buf.String(), "booking-error")
}
