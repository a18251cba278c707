// Package holiday implements the Thai public-holiday upstream client (§6).
package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gilby125/thai-flight-analytics/apperr"
	"github.com/hashicorp/go-retryablehttp"
)

// Entry mirrors one upstream holiday record before category mapping.
type Entry struct {
	Date string `json:"date"` // YYYY-MM-DD
	Name string `json:"name"`
	Type string `json:"type"` // "public" | "financial"
}

// Category is the mapped, storage-facing category (§4.1: public -> national, financial -> regional).
type Category string

const (
	CategoryNational Category = "national"
	CategoryRegional Category = "regional"
)

// MappedEntry is an Entry after upstream-type-to-storage-category mapping.
type MappedEntry struct {
	Date     time.Time
	Name     string
	Category Category
}

// Client fetches the Thai public holiday calendar.
type Client struct {
	httpClient *retryablehttp.Client
	baseURL    string
	apiKey     string
}

// New builds a Client. baseURL and apiKey come from IngestionConfig
// (IAPP_API_URL / IAPP_API_KEY).
func New(baseURL, apiKey string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.Logger = nil

	return &Client{
		httpClient: rc,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// FetchYear retrieves all holidays for a calendar year.
func (c *Client) FetchYear(ctx context.Context, year int) ([]MappedEntry, error) {
	return c.fetch(ctx, map[string]string{"year": strconv.Itoa(year)})
}

// FetchRange retrieves holidays within [start, end]; used as the primary
// path, with FetchYear as the year-by-year fallback when this fails (§4.1).
func (c *Client) FetchRange(ctx context.Context, start, end time.Time) ([]MappedEntry, error) {
	return c.fetch(ctx, map[string]string{
		"start_date": start.Format("2006-01-02"),
		"end_date":   end.Format("2006-01-02"),
	})
}

func (c *Client) fetch(ctx context.Context, params map[string]string) ([]MappedEntry, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/thai-holiday", nil)
	if err != nil {
		return nil, apperr.Upstream("build holiday request", err)
	}

	q := req.URL.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	q.Set("holiday_type", "both")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Upstream("holiday request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, apperr.Upstream(fmt.Sprintf("holiday API returned status %d", resp.StatusCode), nil)
	}

	var raw []Entry
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, apperr.Upstream("decode holiday response", err)
	}

	mapped := make([]MappedEntry, 0, len(raw))
	for _, e := range raw {
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		category := CategoryRegional
		if e.Type == "public" {
			category = CategoryNational
		}
		mapped = append(mapped, MappedEntry{Date: d, Name: e.Name, Category: category})
	}
	return mapped, nil
}
