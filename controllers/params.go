package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brianmaleek/alx-listing-app-deployed/utils"
)

const (
	msgMethodNotAllowed = "Method not allowed"
	msgInvalidID        = "Invalid property ID"
	msgPropertyNotFound = "Property not found"
	msgInternal         = "Internal server error"
)

// propertyID returns the trimmed :id parameter and whether one was given. Any other
// string is a lookup key; resolving it is up to the store or the backend.
func propertyID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	return id, id != ""
}

// onlyGET answers 405 for anything but GET and reports whether the handler may continue.
// Routes are registered with Any so that the JSON body is ours rather than gin's.
func onlyGET(c *gin.Context) bool {
	if c.Request.Method == http.MethodGet {
		return true
	}
	c.Header("Allow", http.MethodGet)
	utils.JSONMessage(c, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	return false
}
