package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/tripline/tripline-backend/errors"
	"github.com/tripline/tripline-backend/pkg/nominatim"
	"github.com/tripline/tripline-backend/types"
)

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Lookup(ctx context.Context, key string) (*types.LockerSearchResult, bool) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*types.LockerSearchResult), args.Bool(1)
}

func (m *mockCache) Store(ctx context.Context, key string, result *types.LockerSearchResult) {
	m.Called(ctx, key, result)
}

type mockGeocoder struct {
	mock.Mock
}

func (m *mockGeocoder) Geocode(ctx context.Context, query string) (*nominatim.Location, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nominatim.Location), args.Error(1)
}

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) SearchLockers(ctx context.Context, params types.LockerSearchParams, lat, lon float64, page, perPage int) (*types.LockerSearchResult, error) {
	args := m.Called(ctx, params, lat, lon, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.LockerSearchResult), args.Error(1)
}

func searchParams() types.LockerSearchParams {
	return types.LockerSearchParams{
		Location:      "Shinjuku",
		StartDate:     "2025-04-01",
		StartTimeHour: "10",
		StartTimeMin:  "00",
		EndTimeHour:   "18",
		EndTimeMin:    "30",
	}
}

func sampleResult() *types.LockerSearchResult {
	return &types.LockerSearchResult{
		Results: []types.Locker{{Name: "Cafe Locker", Category: "Cafe"}},
		Pagination: types.Pagination{
			CurrentPage: 1,
			TotalPages:  1,
			TotalItems:  1,
			PerPage:     5,
		},
	}
}

func TestSearchCacheHit(t *testing.T) {
	c := new(mockCache)
	g := new(mockGeocoder)
	f := new(mockFetcher)
	svc := NewLockerService(c, g, f)

	want := sampleResult()
	key := searchParams().Fingerprint("1")
	c.On("Lookup", mock.Anything, key).Return(want, true)

	got, err := svc.Search(context.Background(), searchParams(), 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	c.AssertExpectations(t)
	g.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
	f.AssertNotCalled(t, "SearchLockers", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchCacheMissFetchesAndStores(t *testing.T) {
	c := new(mockCache)
	g := new(mockGeocoder)
	f := new(mockFetcher)
	svc := NewLockerService(c, g, f)

	params := searchParams()
	key := params.Fingerprint("1")
	want := sampleResult()

	c.On("Lookup", mock.Anything, key).Return(nil, false)
	g.On("Geocode", mock.Anything, "Shinjuku").Return(&nominatim.Location{Latitude: 35.69, Longitude: 139.70}, nil)
	f.On("SearchLockers", mock.Anything, params.Normalized(), 35.69, 139.70, 1, 5).Return(want, nil)
	c.On("Store", mock.Anything, key, want).Return()

	got, err := svc.Search(context.Background(), params, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	c.AssertExpectations(t)
	g.AssertExpectations(t)
	f.AssertExpectations(t)
}

func TestSearchMissingParams(t *testing.T) {
	svc := NewLockerService(new(mockCache), new(mockGeocoder), new(mockFetcher))

	params := searchParams()
	params.Location = ""
	params.EndTimeMin = ""

	_, err := svc.Search(context.Background(), params, 1)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ValidationError, appErr.Type)
	assert.Contains(t, appErr.Detail, "location")
	assert.Contains(t, appErr.Detail, "endTimeMin")
}

func TestSearchUnknownLocation(t *testing.T) {
	c := new(mockCache)
	g := new(mockGeocoder)
	svc := NewLockerService(c, g, new(mockFetcher))

	c.On("Lookup", mock.Anything, mock.Anything).Return(nil, false)
	g.On("Geocode", mock.Anything, "Shinjuku").Return(nil, &nominatim.ErrNoResult{Query: "Shinjuku"})

	_, err := svc.Search(context.Background(), searchParams(), 1)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.GetHTTPStatus())
}

func TestSearchUpstreamFailure(t *testing.T) {
	c := new(mockCache)
	g := new(mockGeocoder)
	f := new(mockFetcher)
	svc := NewLockerService(c, g, f)

	c.On("Lookup", mock.Anything, mock.Anything).Return(nil, false)
	g.On("Geocode", mock.Anything, "Shinjuku").Return(&nominatim.Location{Latitude: 1, Longitude: 2}, nil)
	f.On("SearchLockers", mock.Anything, mock.Anything, 1.0, 2.0, 1, 5).Return(nil, errors.New("listing site down"))

	_, err := svc.Search(context.Background(), searchParams(), 1)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ExternalServiceError, appErr.Type)
	c.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchPageFloor(t *testing.T) {
	c := new(mockCache)
	svc := NewLockerService(c, new(mockGeocoder), new(mockFetcher))

	want := sampleResult()
	key := searchParams().Fingerprint("1")
	c.On("Lookup", mock.Anything, key).Return(want, true)

	got, err := svc.Search(context.Background(), searchParams(), 0)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
