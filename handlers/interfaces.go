package handlers

import (
	"context"

	"github.com/tripline/tripline-backend/types"
)

// UserModelInterface is the profile surface the user handler depends on.
type UserModelInterface interface {
	UpsertUser(ctx context.Context, user *types.User) error
}

// TripModelInterface is the itinerary surface the trip handler depends on.
type TripModelInterface interface {
	CreateTrip(ctx context.Context, trip *types.Trip) (int64, error)
	GetTripByID(ctx context.Context, id int64) (*types.Trip, error)
	UpdateTrip(ctx context.Context, id int64, update *types.TripUpdate) error
	DeleteTrip(ctx context.Context, id int64) error
	ListVisibleTrips(ctx context.Context, userID string) ([]*types.Trip, error)
	ShareTrip(ctx context.Context, tripID int64, sharedUserID string) error
}

// TripDetailModelInterface is the activity surface the detail handler
// depends on.
type TripDetailModelInterface interface {
	AddTripDetail(ctx context.Context, detail *types.TripDetail) (int64, error)
	UpdateTripDetail(ctx context.Context, id int64, update *types.TripDetailUpdate) error
	ListTripDetails(ctx context.Context, tripID int64) ([]*types.TripDetail, error)
	DeleteTripDetail(ctx context.Context, id int64) error
}

// LockerSearcherInterface is the search surface the locker handler
// depends on.
type LockerSearcherInterface interface {
	Search(ctx context.Context, params types.LockerSearchParams, page int) (*types.LockerSearchResult, error)
}
