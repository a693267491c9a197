package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/brianmaleek/alx-listing-app-deployed/services"
	"github.com/brianmaleek/alx-listing-app-deployed/utils"
)

type ReviewController struct {
	ReviewSvc *services.ReviewService
	logger    log.Logger
}

func NewReviewController(svc *services.ReviewService, logger log.Logger) *ReviewController {
	return &ReviewController{ReviewSvc: svc, logger: logger}
}

// GetReviews handles /api/properties/:id/reviews. Unknown ids answer an empty array.
func (rc *ReviewController) GetReviews(c *gin.Context) {
	if !onlyGET(c) {
		return
	}
	id, ok := propertyID(c)
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	reviews, err := rc.ReviewSvc.GetReviews(c.Request.Context(), id)
	if err != nil {
		_ = level.Error(rc.logger).Log("msg", "error reading reviews", "property_id", id, "err", err)
		utils.JSONMessage(c, http.StatusInternalServerError, msgInternal)
		return
	}
	utils.JSONData(c, http.StatusOK, reviews)
}
