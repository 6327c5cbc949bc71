package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/tripline/tripline-backend/errors"
	"github.com/tripline/tripline-backend/middleware"
	"github.com/tripline/tripline-backend/types"
)

func newTripRouter(model TripModelInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())

	h := NewTripHandler(model)
	r.POST("/line/trip", h.CreateTrip)
	r.GET("/line/trip/:user_id", h.ListTrips)
	r.PUT("/line/trip/:trip_id", h.UpdateTrip)
	r.DELETE("/line/trip/:trip_id", h.DeleteTrip)
	r.POST("/line/trip/share", h.ShareTrip)
	return r
}

func performJSON(r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTrip(t *testing.T) {
	model := new(mockTripModel)
	model.On("CreateTrip", mock.Anything, mock.MatchedBy(func(trip *types.Trip) bool {
		return trip.LineUserID == "U1" &&
			trip.Title == "Tokyo" &&
			trip.StartDate.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) &&
			trip.EndDate.Equal(time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC))
	})).Return(int64(7), nil)

	w := performJSON(newTripRouter(model), http.MethodPost, "/line/trip", gin.H{
		"line_user_id": "U1",
		"title":        "Tokyo",
		"start_date":   "2025-04-01",
		"end_date":     "2025-04-05",
		"area":         "Tokyo",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(7), body["trip_id"])
	model.AssertExpectations(t)
}

func TestCreateTripBadDate(t *testing.T) {
	model := new(mockTripModel)

	w := performJSON(newTripRouter(model), http.MethodPost, "/line/trip", gin.H{
		"line_user_id": "U1",
		"title":        "Tokyo",
		"start_date":   "04/01/2025",
		"end_date":     "2025-04-05",
		"area":         "Tokyo",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	model.AssertNotCalled(t, "CreateTrip", mock.Anything, mock.Anything)
}

func TestListTrips(t *testing.T) {
	model := new(mockTripModel)
	model.On("ListVisibleTrips", mock.Anything, "U1").Return([]*types.Trip{
		{
			ID:         3,
			LineUserID: "U1",
			Title:      "Tokyo",
			StartDate:  time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
			Area:       "Tokyo",
		},
	}, nil)

	w := performJSON(newTripRouter(model), http.MethodGet, "/line/trip/U1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var trips []TripResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trips))
	require.Len(t, trips, 1)
	assert.Equal(t, int64(3), trips[0].TripID)
	assert.Equal(t, "2025-04-01", trips[0].StartDate)
	assert.Equal(t, "2025-04-05", trips[0].EndDate)
}

func TestListTripsEmpty(t *testing.T) {
	model := new(mockTripModel)
	model.On("ListVisibleTrips", mock.Anything, "U2").Return([]*types.Trip{}, nil)

	w := performJSON(newTripRouter(model), http.MethodGet, "/line/trip/U2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestUpdateTripNotFound(t *testing.T) {
	model := new(mockTripModel)
	model.On("UpdateTrip", mock.Anything, int64(999), mock.Anything).
		Return(apperrors.NotFound("Trip", int64(999)))

	w := performJSON(newTripRouter(model), http.MethodPut, "/line/trip/999", gin.H{
		"title":      "Osaka",
		"start_date": "2025-05-01",
		"end_date":   "2025-05-03",
		"area":       "Osaka",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTrip(t *testing.T) {
	model := new(mockTripModel)
	model.On("DeleteTrip", mock.Anything, int64(5)).Return(nil)

	w := performJSON(newTripRouter(model), http.MethodDelete, "/line/trip/5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	model.AssertExpectations(t)
}

func TestDeleteTripBadID(t *testing.T) {
	model := new(mockTripModel)

	w := performJSON(newTripRouter(model), http.MethodDelete, "/line/trip/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	model.AssertNotCalled(t, "DeleteTrip", mock.Anything, mock.Anything)
}

func TestShareTrip(t *testing.T) {
	model := new(mockTripModel)
	model.On("ShareTrip", mock.Anything, int64(4), "U9").Return(nil)

	w := performJSON(newTripRouter(model), http.MethodPost, "/line/trip/share", gin.H{
		"trip_id":        4,
		"shared_user_id": "U9",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	model.AssertExpectations(t)
}
