// Package prayer fetches city prayer timings from the Aladhan service and
// derives the current/next prayer window from them.
package prayer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/model"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/state"
)

const defaultBaseURL = "https://api.aladhan.com/v1"

// cacheTTL keeps a city's timings warm so rapid repeat lookups (the UI
// refetches on every city change) don't hit the upstream each time.
const cacheTTL = 30 * time.Minute

// Client calls the Aladhan timingsByCity endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      state.Store
}

// NewClient builds a client. cache may be nil to disable caching.
func NewClient(cache state.Store) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		cache:      cache,
	}
}

// WithBaseURL points the client at a different upstream, for tests.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = base
	return c
}

type aladhanResponse struct {
	Data struct {
		Timings map[string]string `json:"timings"`
		Date    struct {
			Readable string `json:"readable"`
			Hijri    struct {
				Date string `json:"date"`
			} `json:"hijri"`
		} `json:"date"`
	} `json:"data"`
}

// TimingsByCity returns one day of timings for a city. Results are cached
// per city and calendar date.
func (c *Client) TimingsByCity(ctx context.Context, city, country string) (*model.PrayerTimes, error) {
	cacheKey := fmt.Sprintf("prayer:timings:%s:%s:%s", city, country, time.Now().Format("2006-01-02"))
	if c.cache != nil {
		if raw, err := c.cache.Load(ctx, cacheKey); err == nil {
			var cached model.PrayerTimes
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	endpoint := fmt.Sprintf("%s/timingsByCity?city=%s&country=%s&method=2",
		c.baseURL, url.QueryEscape(city), url.QueryEscape(country))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("city", city).Msg("failed to fetch prayer timings")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prayer timings upstream returned %d", resp.StatusCode)
	}

	var parsed aladhanResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode prayer timings: %w", err)
	}

	times := &model.PrayerTimes{
		City:          city,
		GregorianDate: parsed.Data.Date.Readable,
		HijriDate:     parsed.Data.Date.Hijri.Date,
		Timings:       parsed.Data.Timings,
	}

	if c.cache != nil {
		if raw, err := json.Marshal(times); err == nil {
			if err := c.cache.Save(ctx, cacheKey, raw, cacheTTL); err != nil {
				log.Warn().Err(err).Str("city", city).Msg("failed to cache prayer timings")
			}
		}
	}
	return times, nil
}
