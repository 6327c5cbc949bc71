package models

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tripline/tripline-backend/types"
)

type MockTripStore struct {
	mock.Mock
}

func (m *MockTripStore) CreateTrip(ctx context.Context, trip types.Trip) (int64, error) {
	args := m.Called(ctx, trip)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTripStore) GetTrip(ctx context.Context, id int64) (*types.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Trip), args.Error(1)
}

func (m *MockTripStore) UpdateTrip(ctx context.Context, id int64, update types.TripUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockTripStore) DeleteTrip(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTripStore) ListVisibleTrips(ctx context.Context, userID string) ([]*types.Trip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Trip), args.Error(1)
}

func (m *MockTripStore) UpsertShare(ctx context.Context, tripID int64, sharedUserID string) error {
	args := m.Called(ctx, tripID, sharedUserID)
	return args.Error(0)
}

type MockTripDetailStore struct {
	mock.Mock
}

func (m *MockTripDetailStore) CreateDetail(ctx context.Context, detail types.TripDetail) (int64, error) {
	args := m.Called(ctx, detail)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTripDetailStore) GetDetail(ctx context.Context, id int64) (*types.TripDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TripDetail), args.Error(1)
}

func (m *MockTripDetailStore) UpdateDetail(ctx context.Context, id int64, update types.TripDetailUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockTripDetailStore) DeleteDetail(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTripDetailStore) ListDetails(ctx context.Context, tripID int64) ([]*types.TripDetail, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.TripDetail), args.Error(1)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) UpsertUser(ctx context.Context, user types.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
