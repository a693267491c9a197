package views

import (
	"context"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/brianmaleek/alx-listing-app-deployed/models"
	"github.com/brianmaleek/alx-listing-app-deployed/utils"
)

const (
	MsgLoadingReviews = "Loading reviews..."
	MsgNoReviews      = "No reviews yet."
	MsgReviewsFailed  = "Failed to load reviews."
)

type ReviewLister interface {
	ListReviews(ctx context.Context, propertyID string) ([]models.Review, error)
}

// ReviewSection loads the reviews of one property, independently of the detail record.
// Changing the property id re-fetches and discards whatever the previous id returns late.
type ReviewSection struct {
	lister ReviewLister
	logger log.Logger
	res    resource[models.Review]

	mu         sync.Mutex
	propertyID string
}

func NewReviewSection(lister ReviewLister, logger log.Logger) *ReviewSection {
	return &ReviewSection{lister: lister, logger: logger}
}

// SetPropertyID switches the section to id and loads its reviews.
func (s *ReviewSection) SetPropertyID(ctx context.Context, id string) {
	s.mu.Lock()
	s.propertyID = id
	ctx, tok := s.res.begin(ctx)
	s.mu.Unlock()
	s.fetch(ctx, tok, id)
}

// Load re-fetches the reviews of the current property id.
func (s *ReviewSection) Load(ctx context.Context) {
	s.mu.Lock()
	id := s.propertyID
	ctx, tok := s.res.begin(ctx)
	s.mu.Unlock()
	s.fetch(ctx, tok, id)
}

func (s *ReviewSection) fetch(ctx context.Context, tok utils.Token, id string) {
	reviews, err := s.lister.ListReviews(ctx, id)
	if applied := s.res.finish(tok, reviews, err); err != nil && applied {
		_ = level.Error(s.logger).Log("msg", "error fetching reviews", "property_id", id, "err", err)
	}
}

func (s *ReviewSection) Stop() { s.res.stop() }

type ReviewItem struct {
	ID      string
	Author  string
	Avatar  string
	Stars   string
	Comment string
	Date    string
}

type ReviewSectionData struct {
	PropertyID string
	State      State
	Message    string
	Count      int
	Reviews    []ReviewItem
}

func (d ReviewSectionData) Loading() bool { return d.State == StateLoading }
func (d ReviewSectionData) Failed() bool  { return d.State == StateFailed }
func (d ReviewSectionData) Empty() bool   { return d.State == StateEmpty }

func (s *ReviewSection) Data() ReviewSectionData {
	s.mu.Lock()
	id := s.propertyID
	s.mu.Unlock()

	state, reviews := s.res.snapshot()
	data := ReviewSectionData{PropertyID: id, State: state}
	switch state {
	case StateLoading:
		data.Message = MsgLoadingReviews
	case StateFailed:
		data.Message = MsgReviewsFailed
	case StateEmpty:
		data.Message = MsgNoReviews
	case StateReady:
		data.Count = len(reviews)
		data.Reviews = make([]ReviewItem, 0, len(reviews))
		for _, r := range reviews {
			data.Reviews = append(data.Reviews, ReviewItem{
				ID:      r.ID,
				Author:  r.UserName,
				Avatar:  r.UserAvatar,
				Stars:   FormatReviewStars(r.Rating),
				Comment: r.Comment,
				Date:    r.Date,
			})
		}
	}
	return data
}
