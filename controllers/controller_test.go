package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/require"

	"github.com/brianmaleek/alx-listing-app-deployed/models"
	"github.com/brianmaleek/alx-listing-app-deployed/repositories"
	"github.com/brianmaleek/alx-listing-app-deployed/services"
	"github.com/brianmaleek/alx-listing-app-deployed/utils"
	"github.com/brianmaleek/alx-listing-app-deployed/views"
)

// fakeBackend is a hand-written Backend; nil funcs answer empty successes.
type fakeBackend struct {
	mu       sync.Mutex
	bookings []models.BookingRequest

	list    func() ([]models.Property, error)
	get     func(id string) (*models.Property, error)
	reviews func(id string) ([]models.Review, error)
	book    func(req models.BookingRequest) error
}

func (f *fakeBackend) ListProperties(context.Context) ([]models.Property, error) {
	if f.list == nil {
		return nil, nil
	}
	return f.list()
}

func (f *fakeBackend) GetProperty(_ context.Context, id string) (*models.Property, error) {
	if f.get == nil {
		return nil, &services.StatusError{Op: "get_property", StatusCode: http.StatusNotFound}
	}
	return f.get(id)
}

func (f *fakeBackend) ListReviews(_ context.Context, id string) ([]models.Review, error) {
	if f.reviews == nil {
		return nil, nil
	}
	return f.reviews(id)
}

func (f *fakeBackend) CreateBooking(_ context.Context, req models.BookingRequest) error {
	f.mu.Lock()
	f.bookings = append(f.bookings, req)
	f.mu.Unlock()
	if f.book == nil {
		return nil
	}
	return f.book(req)
}

func newTestEngine(t *testing.T, backend Backend) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, utils.InitValidator())

	tmpl, err := views.Templates()
	require.NoError(t, err)

	logger := log.NewNopLogger()
	reviews := NewReviewController(services.NewReviewService(repositories.NewMemoryReviewRepository(repositories.SeedReviews())), logger)
	properties := NewPropertyController(services.NewPropertyService(repositories.NewMemoryPropertyRepository(repositories.SeedProperties())), logger)
	pages := NewPageController(backend, logger)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.GET("/", pages.Home)
	r.GET("/properties/:id", pages.PropertyDetail)
	r.GET("/booking", pages.BookingForm)
	r.POST("/booking", pages.SubmitBooking)
	r.Any("/api/properties", properties.ListProperties)
	r.Any("/api/properties/:id", properties.GetProperty)
	r.Any("/api/properties/:id/reviews", reviews.GetReviews)
	return r
}

func serve(r http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func bookingForm(req models.BookingRequest) string {
	v := url.Values{}
	v.Set("firstName", req.FirstName)
	v.Set("lastName", req.LastName)
	v.Set("email", req.Email)
	v.Set("phone", req.Phone)
	v.Set("checkIn", req.CheckIn)
	v.Set("checkOut", req.CheckOut)
	return v.Encode()
}
