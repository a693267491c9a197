package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/brianmaleek/alx-listing-app-deployed/repositories"
	"github.com/brianmaleek/alx-listing-app-deployed/services"
	"github.com/brianmaleek/alx-listing-app-deployed/utils"
)

type PropertyController struct {
	PropertySvc *services.PropertyService
	logger      log.Logger
}

func NewPropertyController(svc *services.PropertyService, logger log.Logger) *PropertyController {
	return &PropertyController{PropertySvc: svc, logger: logger}
}

// ListProperties handles /api/properties.
func (pc *PropertyController) ListProperties(c *gin.Context) {
	if !onlyGET(c) {
		return
	}
	list, err := pc.PropertySvc.List(c.Request.Context())
	if err != nil {
		_ = level.Error(pc.logger).Log("msg", "error listing properties", "err", err)
		utils.JSONMessage(c, http.StatusInternalServerError, msgInternal)
		return
	}
	utils.JSONData(c, http.StatusOK, list)
}

// GetProperty handles /api/properties/:id.
func (pc *PropertyController) GetProperty(c *gin.Context) {
	if !onlyGET(c) {
		return
	}
	id, ok := propertyID(c)
	if !ok {
		utils.JSONMessage(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	p, err := pc.PropertySvc.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		utils.JSONMessage(c, http.StatusNotFound, msgPropertyNotFound)
	case err != nil:
		_ = level.Error(pc.logger).Log("msg", "error reading property", "property_id", id, "err", err)
		utils.JSONMessage(c, http.StatusInternalServerError, msgInternal)
	default:
		utils.JSONData(c, http.StatusOK, p)
	}
}
