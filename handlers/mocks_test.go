package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/tripline/tripline-backend/types"
)

type mockUserModel struct {
	mock.Mock
}

func (m *mockUserModel) UpsertUser(ctx context.Context, user *types.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type mockTripModel struct {
	mock.Mock
}

func (m *mockTripModel) CreateTrip(ctx context.Context, trip *types.Trip) (int64, error) {
	args := m.Called(ctx, trip)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTripModel) GetTripByID(ctx context.Context, id int64) (*types.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Trip), args.Error(1)
}

func (m *mockTripModel) UpdateTrip(ctx context.Context, id int64, update *types.TripUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *mockTripModel) DeleteTrip(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTripModel) ListVisibleTrips(ctx context.Context, userID string) ([]*types.Trip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Trip), args.Error(1)
}

func (m *mockTripModel) ShareTrip(ctx context.Context, tripID int64, sharedUserID string) error {
	args := m.Called(ctx, tripID, sharedUserID)
	return args.Error(0)
}

type mockDetailModel struct {
	mock.Mock
}

func (m *mockDetailModel) AddTripDetail(ctx context.Context, detail *types.TripDetail) (int64, error) {
	args := m.Called(ctx, detail)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDetailModel) UpdateTripDetail(ctx context.Context, id int64, update *types.TripDetailUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *mockDetailModel) ListTripDetails(ctx context.Context, tripID int64) ([]*types.TripDetail, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.TripDetail), args.Error(1)
}

func (m *mockDetailModel) DeleteTripDetail(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockLockerSearcher struct {
	mock.Mock
}

func (m *mockLockerSearcher) Search(ctx context.Context, params types.LockerSearchParams, page int) (*types.LockerSearchResult, error) {
	args := m.Called(ctx, params, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.LockerSearchResult), args.Error(1)
}

type mockMessagingAPI struct {
	mock.Mock
}

func (m *mockMessagingAPI) ReplyMessage(request *messaging_api.ReplyMessageRequest) (*messaging_api.ReplyMessageResponse, error) {
	args := m.Called(request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messaging_api.ReplyMessageResponse), args.Error(1)
}
