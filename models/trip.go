package models

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tripline/tripline-backend/db"
	apperrors "github.com/tripline/tripline-backend/errors"
	"github.com/tripline/tripline-backend/types"
)

// TripModel holds the itinerary domain logic: field validation, visibility
// rules and the cascade-delete contract. Handlers stay thin; everything a
// trip invariant depends on lives here.
type TripModel struct {
	store db.TripStore
}

func NewTripModel(store db.TripStore) *TripModel {
	return &TripModel{store: store}
}

func (tm *TripModel) CreateTrip(ctx context.Context, trip *types.Trip) (int64, error) {
	if err := validateTripFields(trip.Title, trip.Area, trip.StartDate, trip.EndDate); err != nil {
		return 0, err
	}

	id, err := tm.store.CreateTrip(ctx, *trip)
	if err != nil {
		return 0, apperrors.NewDatabaseError(err)
	}
	trip.ID = id
	return id, nil
}

func (tm *TripModel) GetTripByID(ctx context.Context, id int64) (*types.Trip, error) {
	trip, err := tm.store.GetTrip(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Trip", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return trip, nil
}

// UpdateTrip overwrites the whole mutable record. There is no partial
// preservation of omitted fields; callers must resend the entire trip.
func (tm *TripModel) UpdateTrip(ctx context.Context, id int64, update *types.TripUpdate) error {
	if err := validateTripFields(update.Title, update.Area, update.StartDate, update.EndDate); err != nil {
		return err
	}

	if err := tm.store.UpdateTrip(ctx, id, *update); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("Trip", id)
		}
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// DeleteTrip removes a trip and all of its details; the store runs both
// deletions in one transaction, so a failure leaves everything in place.
func (tm *TripModel) DeleteTrip(ctx context.Context, id int64) error {
	if err := tm.store.DeleteTrip(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("Trip", id)
		}
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// ListVisibleTrips returns owned plus shared-with trips, deduplicated,
// ascending by start date. No trips is an empty slice, not an error.
func (tm *TripModel) ListVisibleTrips(ctx context.Context, userID string) ([]*types.Trip, error) {
	trips, err := tm.store.ListVisibleTrips(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return trips, nil
}

// ShareTrip idempotently records a collaborator on a trip. Sharing the
// same pair again only advances the timestamp.
func (tm *TripModel) ShareTrip(ctx context.Context, tripID int64, sharedUserID string) error {
	if sharedUserID == "" {
		return apperrors.ValidationFailed("Missing required field", "shared_user_id")
	}

	if _, err := tm.GetTripByID(ctx, tripID); err != nil {
		return err
	}

	if err := tm.store.UpsertShare(ctx, tripID, sharedUserID); err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// validateTripFields enforces the required fields shared by create and
// update, plus start_date <= end_date.
func validateTripFields(title, area string, start, end time.Time) error {
	var missing []string
	if strings.TrimSpace(title) == "" {
		missing = append(missing, "title")
	}
	if start.IsZero() {
		missing = append(missing, "start_date")
	}
	if end.IsZero() {
		missing = append(missing, "end_date")
	}
	if strings.TrimSpace(area) == "" {
		missing = append(missing, "area")
	}
	if len(missing) > 0 {
		return apperrors.ValidationFailed("Missing required fields", strings.Join(missing, ", "))
	}
	if start.After(end) {
		return apperrors.ValidationFailed("Invalid date range", "start_date must not be after end_date")
	}
	return nil
}
