package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianmaleek/alx-listing-app-deployed/models"
)

func TestListProperties_SeedOrder(t *testing.T) {
	r := newTestEngine(t, &fakeBackend{})

	w := serve(r, http.MethodGet, "/api/properties", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func TestGetProperty(t *testing.T) {
	r := newTestEngine(t, &fakeBackend{})

	w := serve(r, http.MethodGet, "/api/properties/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	var p models.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "2", p.ID)
	assert.Equal(t, "Hillside Luxury Villa", p.Name)

	w = serve(r, http.MethodGet, "/api/properties/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Property not found", decodeMessage(t, w))

	w = serve(r, http.MethodGet, "/api/properties/bad.id", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(r, http.MethodGet, "/api/properties/%20", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid property ID", decodeMessage(t, w))

	w = serve(r, http.MethodDelete, "/api/properties/1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	w = serve(r, http.MethodPost, "/api/properties", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
