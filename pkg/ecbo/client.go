// Package ecbo fetches and parses locker listings from the ecbo cloak
// locker-rental site. The site serves server-rendered markup; records are
// extracted with fixed selector patterns, sequentially, with no retries —
// a fetch failure fails that single search.
package ecbo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/tripline/tripline-backend/logger"
	"github.com/tripline/tripline-backend/types"
)

const (
	defaultBaseURL = "https://cloak.ecbo.io"
	listingsPath   = "/zh-TW/locations"

	// DefaultPerPage is the page size served when the caller does not ask
	// for another.
	DefaultPerPage = 5
)

// Sentinel placeholders for optional card fields; a missing element
// degrades the field, never the record.
const (
	placeholderName     = "Unknown"
	placeholderCategory = "Uncategorized"
	placeholderRating   = "N/A"
	placeholderPrice    = "Price unavailable"
	placeholderLink     = "#"
)

// Known selector patterns of the listing cards.
const (
	selCard          = "li.SpaceCard_space__YnURE"
	selName          = "strong.SpaceCard_nameText__308Dp"
	selCategory      = "div.SpaceCard_category__2rx7q"
	selRating        = "span.SpaceCard_ratingPoint__2CaOa"
	selSuitcasePrice = "span.SpaceCard_priceCarry__3Owgr"
	selBagPrice      = "span.SpaceCard_priceBag__Bv_Oz"
	selLink          = "a.SpaceCard_spaceLink__2MeRc"
)

// FetcherInterface defines the listing fetch the search service depends on.
type FetcherInterface interface {
	SearchLockers(ctx context.Context, params types.LockerSearchParams, lat, lon float64, page, perPage int) (*types.LockerSearchResult, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SearchLockers fetches one rendered listing page and extracts the
// requested slice of structured records plus pagination totals.
func (c *Client) SearchLockers(ctx context.Context, params types.LockerSearchParams, lat, lon float64, page, perPage int) (*types.LockerSearchResult, error) {
	log := logger.GetLogger()
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	n := params.Normalized()
	query := url.Values{}
	query.Add("name", n.Location)
	query.Add("startDate", n.StartDate)
	query.Add("endDate", n.EndDate)
	query.Add("startDateTimeHour", n.StartTimeHour)
	query.Add("startDateTimeMin", n.StartTimeMin)
	query.Add("endDateTimeHour", n.EndTimeHour)
	query.Add("endDateTimeMin", n.EndTimeMin)
	query.Add("bagSize", n.BagSize)
	query.Add("suitcaseSize", n.SuitcaseSize)
	query.Add("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Add("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Add("page", strconv.Itoa(page))

	finalURL := fmt.Sprintf("%s%s?%s", c.baseURL, listingsPath, query.Encode())
	log.Debugw("Fetching locker listings", "location", n.Location, "page", page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, finalURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorw("Listing fetch failed", "error", err)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warnw("Listing site returned non-OK status", "statusCode", resp.StatusCode)
		return nil, fmt.Errorf("listing site returned status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing markup: %w", err)
	}

	return c.extractPage(doc, page, perPage), nil
}

func (c *Client) extractPage(doc *goquery.Document, page, perPage int) *types.LockerSearchResult {
	cards := doc.Find(selCard)
	totalItems := cards.Length()
	totalPages := (totalItems + perPage - 1) / perPage

	start := (page - 1) * perPage
	end := start + perPage
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	results := make([]types.Locker, 0, end-start)
	cards.Slice(start, end).Each(func(_ int, card *goquery.Selection) {
		results = append(results, c.extractCard(card))
	})

	return &types.LockerSearchResult{
		Results: results,
		Pagination: types.Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalItems:  totalItems,
			PerPage:     perPage,
		},
	}
}

func (c *Client) extractCard(card *goquery.Selection) types.Locker {
	locker := types.Locker{
		Name:          textOr(card, selName, placeholderName),
		Category:      textOr(card, selCategory, placeholderCategory),
		Rating:        textOr(card, selRating, placeholderRating),
		SuitcasePrice: textOr(card, selSuitcasePrice, placeholderPrice),
		BagPrice:      textOr(card, selBagPrice, placeholderPrice),
		Link:          placeholderLink,
	}

	if src, ok := card.Find("img").First().Attr("src"); ok {
		locker.ImageURL = src
	}
	if href, ok := card.Find(selLink).First().Attr("href"); ok {
		locker.Link = c.baseURL + href
	}
	return locker
}

func textOr(card *goquery.Selection, selector, placeholder string) string {
	sel := card.Find(selector).First()
	if sel.Length() == 0 {
		return placeholder
	}
	text := strings.TrimSpace(sel.Text())
	if text == "" {
		return placeholder
	}
	return text
}
