package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/tripline/tripline-backend/logger"
	"github.com/tripline/tripline-backend/types"
)

// TripHandler exposes the itinerary CRUD surface.
type TripHandler struct {
	tripModel TripModelInterface
}

func NewTripHandler(tripModel TripModelInterface) *TripHandler {
	return &TripHandler{tripModel: tripModel}
}

// TripRequest is the request body for creating or updating a trip. Dates
// travel as YYYY-MM-DD strings. Updates overwrite the whole record, so
// omitted fields reset to their defaults.
type TripRequest struct {
	LineUserID      string              `json:"line_user_id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	StartDate       string              `json:"start_date"`
	EndDate         string              `json:"end_date"`
	Area            string              `json:"area"`
	Tags            string              `json:"tags"`
	Budget          decimal.NullDecimal `json:"budget"`
	PreferredGender string              `json:"preferred_gender"`
}

// TripResponse is one trip serialized for the client, dates flattened
// back to strings.
type TripResponse struct {
	TripID          int64               `json:"trip_id"`
	LineUserID      string              `json:"line_user_id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	StartDate       string              `json:"start_date"`
	EndDate         string              `json:"end_date"`
	Area            string              `json:"area"`
	Tags            string              `json:"tags"`
	Budget          decimal.NullDecimal `json:"budget"`
	PreferredGender string              `json:"preferred_gender"`
}

func toTripResponse(t *types.Trip) TripResponse {
	return TripResponse{
		TripID:          t.ID,
		LineUserID:      t.LineUserID,
		Title:           t.Title,
		Description:     t.Description,
		StartDate:       t.StartDate.Format(dateLayout),
		EndDate:         t.EndDate.Format(dateLayout),
		Area:            t.Area,
		Tags:            t.Tags,
		Budget:          t.Budget,
		PreferredGender: t.PreferredGender,
	}
}

func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req TripRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	start, ok := parseDate(c, "start_date", req.StartDate)
	if !ok {
		return
	}
	end, ok := parseDate(c, "end_date", req.EndDate)
	if !ok {
		return
	}

	trip := &types.Trip{
		LineUserID:      req.LineUserID,
		Title:           req.Title,
		Description:     req.Description,
		StartDate:       start,
		EndDate:         end,
		Area:            req.Area,
		Tags:            req.Tags,
		Budget:          req.Budget,
		PreferredGender: req.PreferredGender,
	}
	id, err := h.tripModel.CreateTrip(c.Request.Context(), trip)
	if err != nil {
		_ = c.Error(err)
		return
	}

	logger.GetLogger().Infow("Trip created", "tripId", id, "title", req.Title)
	c.JSON(http.StatusCreated, gin.H{"message": "Trip created successfully", "trip_id": id})
}

// ListTrips returns every trip the user owns or collaborates on, ordered
// by start date.
func (h *TripHandler) ListTrips(c *gin.Context) {
	userID := c.Param("user_id")

	trips, err := h.tripModel.ListVisibleTrips(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp := make([]TripResponse, 0, len(trips))
	for _, t := range trips {
		resp = append(resp, toTripResponse(t))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TripHandler) UpdateTrip(c *gin.Context) {
	id, ok := parseIDParam(c, "trip_id")
	if !ok {
		return
	}

	var req TripRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	start, ok := parseDate(c, "start_date", req.StartDate)
	if !ok {
		return
	}
	end, ok := parseDate(c, "end_date", req.EndDate)
	if !ok {
		return
	}

	update := &types.TripUpdate{
		Title:           req.Title,
		Description:     req.Description,
		StartDate:       start,
		EndDate:         end,
		Area:            req.Area,
		Tags:            req.Tags,
		Budget:          req.Budget,
		PreferredGender: req.PreferredGender,
	}
	if err := h.tripModel.UpdateTrip(c.Request.Context(), id, update); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip updated successfully"})
}

func (h *TripHandler) DeleteTrip(c *gin.Context) {
	id, ok := parseIDParam(c, "trip_id")
	if !ok {
		return
	}

	if err := h.tripModel.DeleteTrip(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	logger.GetLogger().Infow("Trip deleted with details", "tripId", id)
	c.JSON(http.StatusOK, gin.H{"message": "Trip and its details deleted successfully"})
}

// ShareTripRequest names the trip and the user it is shared with.
type ShareTripRequest struct {
	TripID       int64  `json:"trip_id"`
	SharedUserID string `json:"shared_user_id"`
}

// ShareTrip upserts a collaborator row. Sharing the same pair again
// refreshes the share timestamp instead of failing.
func (h *TripHandler) ShareTrip(c *gin.Context) {
	var req ShareTripRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	if err := h.tripModel.ShareTrip(c.Request.Context(), req.TripID, req.SharedUserID); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip shared successfully"})
}
