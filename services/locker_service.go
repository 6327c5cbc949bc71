package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	apperrors "github.com/tripline/tripline-backend/errors"
	"github.com/tripline/tripline-backend/internal/cache"
	"github.com/tripline/tripline-backend/logger"
	"github.com/tripline/tripline-backend/pkg/ecbo"
	"github.com/tripline/tripline-backend/pkg/nominatim"
	"github.com/tripline/tripline-backend/types"
)

// LockerService answers locker searches: cache first, then geocode the
// location and scrape the listing site on a miss.
type LockerService struct {
	cache    cache.Cache
	geocoder nominatim.GeocoderInterface
	fetcher  ecbo.FetcherInterface
	perPage  int
}

func NewLockerService(c cache.Cache, geocoder nominatim.GeocoderInterface, fetcher ecbo.FetcherInterface) *LockerService {
	return &LockerService{
		cache:    c,
		geocoder: geocoder,
		fetcher:  fetcher,
		perPage:  ecbo.DefaultPerPage,
	}
}

// Search returns one page of locker results for params. Identical
// searches within the cache TTL are served from the cache without
// touching either upstream.
func (s *LockerService) Search(ctx context.Context, params types.LockerSearchParams, page int) (*types.LockerSearchResult, error) {
	log := logger.GetLogger()

	if err := validateSearchParams(params); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}

	params = params.Normalized()
	key := params.Fingerprint(strconv.Itoa(page))

	if result, ok := s.cache.Lookup(ctx, key); ok {
		log.Debugw("Locker search served from cache", "key", key)
		return result, nil
	}

	loc, err := s.geocoder.Geocode(ctx, params.Location)
	if err != nil {
		var noResult *nominatim.ErrNoResult
		if errors.As(err, &noResult) {
			return nil, apperrors.LocationNotFound(params.Location)
		}
		return nil, apperrors.ExternalService("geocoder", err)
	}

	result, err := s.fetcher.SearchLockers(ctx, params, loc.Latitude, loc.Longitude, page, s.perPage)
	if err != nil {
		return nil, apperrors.ExternalService("locker listing", err)
	}

	s.cache.Store(ctx, key, result)
	log.Infow("Locker search fetched from upstream",
		"location", params.Location,
		"page", page,
		"results", len(result.Results))
	return result, nil
}

func validateSearchParams(p types.LockerSearchParams) error {
	var missing []string
	if p.Location == "" {
		missing = append(missing, "location")
	}
	if p.StartDate == "" {
		missing = append(missing, "startDate")
	}
	if p.StartTimeHour == "" {
		missing = append(missing, "startTimeHour")
	}
	if p.StartTimeMin == "" {
		missing = append(missing, "startTimeMin")
	}
	if p.EndTimeHour == "" {
		missing = append(missing, "endTimeHour")
	}
	if p.EndTimeMin == "" {
		missing = append(missing, "endTimeMin")
	}
	if len(missing) > 0 {
		return apperrors.ValidationFailed(
			"Missing required search parameters",
			"missing: "+strings.Join(missing, ", "),
		)
	}
	return nil
}
