package shioapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/mfukuda/tidewatch/internal/models"
)

// DefaultBaseURL is the production endpoint of the tide/weather service.
// Override it through config; the client never reads the environment.
const DefaultBaseURL = "https://tide.fishinglabs.jp/api"

// Client fetches tide and weather forecasts from the remote service
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

// NewClient creates a client for the given base URL. A nil logger
// disables debug logging.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  "tidewatch/1.0 (github.com/mfukuda/tidewatch)",
		logger:     logger,
	}
}

// GetStations retrieves the list of selectable fishing ports
func (c *Client) GetStations(ctx context.Context) ([]models.Station, error) {
	var parsed stationsResponse
	if err := c.get(ctx, "/v1/stations", nil, &parsed); err != nil {
		return nil, fmt.Errorf("fetching stations: %w", err)
	}

	stations := make([]models.Station, 0, len(parsed.Stations))
	for _, s := range parsed.Stations {
		stations = append(stations, models.Station{
			Code:   s.Code,
			Name:   s.Name,
			Region: s.Region,
		})
	}
	return stations, nil
}

// GetForecast retrieves tide and weather data for a station and date.
// The date must already be in YYYY-MM-DD form; invalid calendar dates are
// the service's to reject.
func (c *Client) GetForecast(ctx context.Context, stationCode, date string) (*models.Forecast, error) {
	params := url.Values{}
	params.Add("station", stationCode)
	params.Add("date", date)

	var parsed forecastResponse
	if err := c.get(ctx, "/v1/forecast", params, &parsed); err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}

	forecast := &models.Forecast{
		Tide: models.TideDay{
			StationCode: parsed.Station.Code,
			StationName: parsed.Station.Name,
			Date:        parsed.Date,
			Hourly:      parsed.HourlyCm,
			Highs:       convertEvents(models.TideHigh, parsed.HighTides),
			Lows:        convertEvents(models.TideLow, parsed.LowTides),
		},
		FetchedAt: time.Now(),
	}

	if parsed.Weather != nil {
		forecast.Weather = convertWeather(parsed.Weather)
	}

	return forecast, nil
}

// get performs one GET round-trip and decodes the JSON body into out
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	c.logger.Debug("api request", "url", requestURL, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func convertEvents(kind models.TideKind, raw []tideEventJSON) []models.TideEvent {
	events := make([]models.TideEvent, 0, len(raw))
	for _, e := range raw {
		events = append(events, models.TideEvent{
			Kind:     kind,
			Time:     e.Time,
			HeightCm: e.HeightCm,
		})
	}
	return events
}

func convertWeather(w *weatherJSON) models.WeatherBundle {
	bundle := models.WeatherBundle{}
	if w.Today != nil {
		day := &models.DayWeather{
			Date:     w.Today.Date,
			Text:     w.Today.TextJa,
			Icon:     w.Today.Icon,
			TempMinC: w.Today.TempMinC,
			TempMaxC: w.Today.TempMaxC,
		}
		if w.Today.Pop != nil {
			day.PopPercent = w.Today.Pop.Value
		}
		bundle.Today = day
	}
	for _, d := range w.Weekly {
		bundle.Weekly = append(bundle.Weekly, models.WeeklyDay{
			Date:    d.Date,
			Summary: d.TextJa,
			Icon:    d.Icon,
		})
	}
	return bundle
}

// Internal types for the remote API responses

type stationsResponse struct {
	Stations []struct {
		Code   string `json:"code"`
		Name   string `json:"name"`
		Region string `json:"region"`
	} `json:"stations"`
}

type tideEventJSON struct {
	Time     string  `json:"time"`
	HeightCm float64 `json:"height_cm"`
}

type forecastResponse struct {
	Station struct {
		Code string `json:"code"`
		Name string `json:"name"`
	} `json:"station"`
	Date      string          `json:"date"`
	HourlyCm  []*float64      `json:"hourly_cm"` // nullable, nominally 24 entries
	HighTides []tideEventJSON `json:"high_tides"`
	LowTides  []tideEventJSON `json:"low_tides"`
	Weather   *weatherJSON    `json:"weather"`
}

type weatherJSON struct {
	Today  *dayWeatherJSON `json:"today"`
	Weekly []weeklyDayJSON `json:"weekly"`
}

type dayWeatherJSON struct {
	Date   string  `json:"date"`
	TextJa *string `json:"text_ja"`
	Icon   *string `json:"icon"`
	Pop    *struct {
		Value *int `json:"value"`
	} `json:"pop"`
	TempMinC *float64 `json:"temp_min_c"`
	TempMaxC *float64 `json:"temp_max_c"`
}

type weeklyDayJSON struct {
	Date   string  `json:"date"`
	TextJa *string `json:"text_ja"`
	Icon   *string `json:"icon"`
}
