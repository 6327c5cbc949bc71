package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/tripline/tripline-backend/errors"
	"github.com/tripline/tripline-backend/pkg/places"
)

// PlacesHandler proxies Google Places autocomplete so the API key stays
// server-side.
type PlacesHandler struct {
	client places.ClientInterface
}

func NewPlacesHandler(client places.ClientInterface) *PlacesHandler {
	return &PlacesHandler{client: client}
}

func (h *PlacesHandler) Autocomplete(c *gin.Context) {
	input := c.Query("input")
	if input == "" {
		_ = c.Error(apperrors.ValidationFailed("Missing required query parameter", "input"))
		return
	}

	raw, err := h.client.Autocomplete(
		c.Request.Context(),
		input,
		c.Query("language"),
		c.Query("components"),
	)
	if err != nil {
		_ = c.Error(apperrors.ExternalService("places autocomplete", err))
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}
