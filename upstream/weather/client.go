// Package weather implements the historical-archive and short-range
// forecast upstream clients that feed the ingestion pipeline (§4.1, §6).
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gilby125/thai-flight-analytics/apperr"
	"github.com/hashicorp/go-retryablehttp"
)

// Day is one day's observation or forecast before humidity estimation.
type Day struct {
	Date            time.Time
	TempMax         float64
	TempMin         float64
	PrecipitationMM float64
	Humidity        *float64 // nil when upstream omits it
}

// Client talks to the archive and forecast weather APIs (both hosted by
// Open-Meteo-shaped endpoints in this deployment; OpenWeatherMapAPIURL in
// config names the historical/forecast base regardless of vendor).
type Client struct {
	httpClient *retryablehttp.Client
	baseURL    string
	apiKey     string
}

// New builds a Client against baseURL, sending apiKey in an X-API-Key header
// when non-empty (some deployments front the archive API with a key-gated proxy).
func New(baseURL, apiKey string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.Logger = nil
	return &Client{httpClient: rc, baseURL: baseURL, apiKey: apiKey}
}

// FetchHistoricalMonth retrieves one (province, calendar-month) chunk from
// the bulk archival API (§4.1).
func (c *Client) FetchHistoricalMonth(ctx context.Context, lat, lon float64, monthStart time.Time) ([]Day, error) {
	monthEnd := monthStart.AddDate(0, 1, -1)
	return c.fetch(ctx, "/v1/archive", lat, lon, monthStart, monthEnd)
}

// FetchForecast retrieves the short-range forecast (~5 days) for a province.
func (c *Client) FetchForecast(ctx context.Context, lat, lon float64) ([]Day, error) {
	return c.fetch(ctx, "/v1/forecast", lat, lon, time.Time{}, time.Time{})
}

type dailyResponse struct {
	Daily struct {
		Time             []string  `json:"time"`
		TempMax          []float64 `json:"temperature_2m_max"`
		TempMin          []float64 `json:"temperature_2m_min"`
		Precipitation    []float64 `json:"precipitation_sum"`
		HumidityMean     []float64 `json:"relative_humidity_2m_mean,omitempty"`
		HumidityMeanNull []bool    `json:"-"`
	} `json:"daily"`
}

func (c *Client) fetch(ctx context.Context, path string, lat, lon float64, start, end time.Time) ([]Day, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, apperr.Upstream("build weather request", err)
	}

	q := req.URL.Query()
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,relative_humidity_2m_mean")
	q.Set("timezone", "Asia/Bangkok")
	if !start.IsZero() {
		q.Set("start_date", start.Format("2006-01-02"))
		q.Set("end_date", end.Format("2006-01-02"))
	}
	req.URL.RawQuery = q.Encode()
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Upstream("weather request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, apperr.Upstream(fmt.Sprintf("weather API returned status %d", resp.StatusCode), nil)
	}

	var parsed dailyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, apperr.Upstream("decode weather response", err)
	}

	days := make([]Day, 0, len(parsed.Daily.Time))
	for i, dateStr := range parsed.Daily.Time {
		d, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}
		day := Day{Date: d}
		if i < len(parsed.Daily.TempMax) {
			day.TempMax = parsed.Daily.TempMax[i]
		}
		if i < len(parsed.Daily.TempMin) {
			day.TempMin = parsed.Daily.TempMin[i]
		}
		if i < len(parsed.Daily.Precipitation) {
			day.PrecipitationMM = parsed.Daily.Precipitation[i]
		}
		if i < len(parsed.Daily.HumidityMean) {
			h := parsed.Daily.HumidityMean[i]
			day.Humidity = &h
		}
		days = append(days, day)
	}
	return days, nil
}

// TempAvg computes (max+min)/2, rounded to two decimals (§4.1).
func TempAvg(tempMax, tempMin float64) float64 {
	return round2((tempMax + tempMin) / 2)
}

// EstimateHumidity fills in a missing humidity reading from temperature and
// precipitation: base 70, subtract 1.5*(temp_avg-28), add min(3*rain, 15),
// clamp to [50, 90] (§4.1).
func EstimateHumidity(tempAvg, precipitationMM float64) float64 {
	h := 70 - 1.5*(tempAvg-28) + math.Min(3*precipitationMM, 15)
	if h < 50 {
		h = 50
	}
	if h > 90 {
		h = 90
	}
	return round2(h)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
