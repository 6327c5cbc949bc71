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

const clockLayout = "15:04"

// TripDetailModel enforces the detail invariants, chiefly that a detail's
// date lies inside the parent trip's [start_date, end_date] window. The
// window is always re-read from the store at validation time, never cached
// from creation.
type TripDetailModel struct {
	details db.TripDetailStore
	trips   db.TripStore
}

func NewTripDetailModel(details db.TripDetailStore, trips db.TripStore) *TripDetailModel {
	return &TripDetailModel{details: details, trips: trips}
}

func (dm *TripDetailModel) AddTripDetail(ctx context.Context, detail *types.TripDetail) (int64, error) {
	if err := validateDetailFields(detail.Location, detail.Date, detail.StartTime, detail.EndTime); err != nil {
		return 0, err
	}

	trip, err := dm.trips.GetTrip(ctx, detail.TripID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NotFound("Trip", detail.TripID)
		}
		return 0, apperrors.NewDatabaseError(err)
	}

	if outsideTripRange(detail.Date, trip) {
		return 0, apperrors.DateOutOfRange(trip.StartDate, trip.EndDate)
	}

	id, err := dm.details.CreateDetail(ctx, *detail)
	if err != nil {
		return 0, apperrors.NewDatabaseError(err)
	}
	detail.ID = id
	return id, nil
}

func (dm *TripDetailModel) UpdateTripDetail(ctx context.Context, id int64, update *types.TripDetailUpdate) error {
	if err := validateDetailFields(update.Location, update.Date, update.StartTime, update.EndTime); err != nil {
		return err
	}

	existing, err := dm.details.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("Trip detail", id)
		}
		return apperrors.NewDatabaseError(err)
	}

	// Re-validate against the parent trip's current range.
	trip, err := dm.trips.GetTrip(ctx, existing.TripID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("Trip", existing.TripID)
		}
		return apperrors.NewDatabaseError(err)
	}

	if outsideTripRange(update.Date, trip) {
		return apperrors.DateOutOfRange(trip.StartDate, trip.EndDate)
	}

	if err := dm.details.UpdateDetail(ctx, id, *update); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("Trip detail", id)
		}
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// ListTripDetails returns a trip's details ordered by (date, start_time).
// The trip itself must exist; its having no details is not an error.
func (dm *TripDetailModel) ListTripDetails(ctx context.Context, tripID int64) ([]*types.TripDetail, error) {
	if _, err := dm.trips.GetTrip(ctx, tripID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Trip", tripID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	details, err := dm.details.ListDetails(ctx, tripID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return details, nil
}

func (dm *TripDetailModel) DeleteTripDetail(ctx context.Context, id int64) error {
	if err := dm.details.DeleteDetail(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("Trip detail", id)
		}
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// outsideTripRange checks the inclusive containment invariant. Dates are
// date-only values, so Before/After comparisons are exact.
func outsideTripRange(date time.Time, trip *types.Trip) bool {
	return date.Before(trip.StartDate) || date.After(trip.EndDate)
}

func validateDetailFields(location string, date time.Time, startTime, endTime string) error {
	var missing []string
	if strings.TrimSpace(location) == "" {
		missing = append(missing, "location")
	}
	if date.IsZero() {
		missing = append(missing, "date")
	}
	if startTime == "" {
		missing = append(missing, "start_time")
	}
	if endTime == "" {
		missing = append(missing, "end_time")
	}
	if len(missing) > 0 {
		return apperrors.ValidationFailed("Missing required fields", strings.Join(missing, ", "))
	}

	for _, clock := range []string{startTime, endTime} {
		if _, err := time.Parse(clockLayout, clock); err != nil {
			return apperrors.ValidationFailed("Invalid time format", clock+" is not HH:MM")
		}
	}
	return nil
}
