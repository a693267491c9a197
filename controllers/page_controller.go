package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/brianmaleek/alx-listing-app-deployed/models"
	"github.com/brianmaleek/alx-listing-app-deployed/services"
	"github.com/brianmaleek/alx-listing-app-deployed/views"
)

const (
	MsgPropertyNotFound = "Property not found."
	MsgPropertyFailed   = "Failed to load property."

	BookedPath = "/?booked=1"
)

// Backend is everything the pages read from or write to the listing API.
type Backend interface {
	views.PropertyLister
	views.ReviewLister
	views.BookingSubmitter
	GetProperty(ctx context.Context, id string) (*models.Property, error)
}

// PageController renders the HTML pages. Every request builds fresh view components, so
// nothing is cached between requests.
type PageController struct {
	backend Backend
	logger  log.Logger
}

func NewPageController(backend Backend, logger log.Logger) *PageController {
	return &PageController{backend: backend, logger: logger}
}

// Home renders "/".
func (pc *PageController) Home(c *gin.Context) {
	list := views.NewListView(pc.backend, pc.logger)
	defer list.Stop()
	list.Load(c.Request.Context())

	page := views.ListPage{Title: "Explore Properties", List: list.Data()}
	if c.Query("booked") == "1" {
		page.Notice = views.MsgBookingConfirmed
	}

	status := http.StatusOK
	if page.List.Failed() {
		status = http.StatusBadGateway
	}
	c.HTML(status, views.PageList, page)
}

// PropertyDetail renders "/properties/:id". The record and its reviews load concurrently;
// a review failure only affects the review section.
func (pc *PageController) PropertyDetail(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		pc.errorPage(c, http.StatusNotFound, MsgPropertyNotFound, "")
		return
	}

	reviews := views.NewReviewSection(pc.backend, pc.logger)
	defer reviews.Stop()

	var property *models.Property
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		p, err := pc.backend.GetProperty(ctx, id)
		if err != nil {
			return err
		}
		property = p
		return nil
	})
	g.Go(func() error {
		reviews.SetPropertyID(ctx, id)
		return nil
	})

	if err := g.Wait(); err != nil {
		if services.IsNotFound(err) {
			pc.errorPage(c, http.StatusNotFound, MsgPropertyNotFound, "")
			return
		}
		_ = level.Error(pc.logger).Log("msg", "error fetching property", "property_id", id, "err", err)
		pc.errorPage(c, http.StatusBadGateway, MsgPropertyFailed, c.Request.URL.Path)
		return
	}

	c.HTML(http.StatusOK, views.PageDetail, views.DetailPage{
		Title:    property.Name,
		Property: views.NewDetail(*property),
		Reviews:  reviews.Data(),
	})
}

// BookingForm renders the empty form of GET /booking.
func (pc *PageController) BookingForm(c *gin.Context) {
	form := views.NewBookingForm(pc.backend, pc.logger)
	c.HTML(http.StatusOK, views.PageBooking, bookingPage(form))
}

// SubmitBooking handles POST /booking. Success redirects to the landing page; any
// failure re-renders the form with the submitted values.
func (pc *PageController) SubmitBooking(c *gin.Context) {
	form := views.NewBookingForm(pc.backend, pc.logger)

	var req models.BookingRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = level.Debug(pc.logger).Log("msg", "booking binding failed", "err", err)
		form.SetValues(req)
		form.SetError(views.MsgBookingInvalid)
		c.HTML(http.StatusBadRequest, views.PageBooking, bookingPage(form))
		return
	}

	form.SetValues(req)
	if err := form.Submit(c.Request.Context()); err != nil {
		c.HTML(http.StatusBadGateway, views.PageBooking, bookingPage(form))
		return
	}
	c.Redirect(http.StatusSeeOther, BookedPath)
}

func bookingPage(form *views.BookingForm) views.BookingPage {
	return views.BookingPage{Title: "Book Your Stay", Form: form.Data()}
}

func (pc *PageController) errorPage(c *gin.Context, status int, message, retry string) {
	c.HTML(status, views.PageError, views.ErrorPage{Title: message, Message: message, Retry: retry})
}
