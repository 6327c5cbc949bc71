package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripline/tripline-backend/types"
)

// TripDetailHandler exposes the scheduled-activity surface of a trip.
type TripDetailHandler struct {
	detailModel TripDetailModelInterface
}

func NewTripDetailHandler(detailModel TripDetailModelInterface) *TripDetailHandler {
	return &TripDetailHandler{detailModel: detailModel}
}

// TripDetailRequest is the request body for creating or updating a trip
// detail. The date must fall inside the parent trip's date window.
type TripDetailRequest struct {
	TripID    int64  `json:"trip_id"`
	Location  string `json:"location"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// TripDetailResponse is one detail serialized for the client.
type TripDetailResponse struct {
	DetailID  int64  `json:"detail_id"`
	TripID    int64  `json:"trip_id"`
	Location  string `json:"location"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func toTripDetailResponse(d *types.TripDetail) TripDetailResponse {
	return TripDetailResponse{
		DetailID:  d.ID,
		TripID:    d.TripID,
		Location:  d.Location,
		Date:      d.Date.Format(dateLayout),
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
	}
}

func (h *TripDetailHandler) CreateDetail(c *gin.Context) {
	var req TripDetailRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	date, ok := parseDate(c, "date", req.Date)
	if !ok {
		return
	}

	detail := &types.TripDetail{
		TripID:    req.TripID,
		Location:  req.Location,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	id, err := h.detailModel.AddTripDetail(c.Request.Context(), detail)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Trip detail created successfully", "detail_id": id})
}

// ListDetails returns a trip's details ordered by date then start time.
func (h *TripDetailHandler) ListDetails(c *gin.Context) {
	tripID, ok := parseIDParam(c, "trip_id")
	if !ok {
		return
	}

	details, err := h.detailModel.ListTripDetails(c.Request.Context(), tripID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp := make([]TripDetailResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, toTripDetailResponse(d))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TripDetailHandler) UpdateDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "detail_id")
	if !ok {
		return
	}

	var req TripDetailRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	date, ok := parseDate(c, "date", req.Date)
	if !ok {
		return
	}

	update := &types.TripDetailUpdate{
		Location:  req.Location,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := h.detailModel.UpdateTripDetail(c.Request.Context(), id, update); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip detail updated successfully"})
}

func (h *TripDetailHandler) DeleteDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "detail_id")
	if !ok {
		return
	}

	if err := h.detailModel.DeleteTripDetail(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip detail deleted successfully"})
}
