package shioapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mfukuda/tidewatch/internal/models"
)

const forecastJSON = `{
	"station": {"code": "TK", "name": "東京"},
	"date": "2024-03-05",
	"hourly_cm": [100, null, 140, 150, 155, 150, 120, 160, 170, 165, 150, 130,
	              110, 95, 90, 100, 120, 140, 150, 145, 130, 110, 95, 87],
	"high_tides": [
		{"time": "06:30", "height_cm": 162.0},
		{"time": "18:40", "height_cm": 151.5}
	],
	"low_tides": [
		{"time": "00:10", "height_cm": 98.2},
		{"time": "12:55", "height_cm": 93.0}
	],
	"weather": {
		"today": {
			"date": "2024-03-05",
			"text_ja": "晴れのち曇り",
			"pop": {"value": 30},
			"temp_min_c": 6.5,
			"temp_max_c": 14.0
		},
		"weekly": [
			{"date": "2024-03-06", "text_ja": "曇り"}
		]
	}
}`

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("", 0, nil)

	if client.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %s, want default", client.baseURL)
	}
	if client.httpClient.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", client.httpClient.Timeout)
	}
}

func TestClient_GetForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/forecast" {
			t.Errorf("path = %s, want /v1/forecast", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("station") != "TK" {
			t.Errorf("station param = %s, want TK", query.Get("station"))
		}
		if query.Get("date") != "2024-03-05" {
			t.Errorf("date param = %s, want 2024-03-05", query.Get("date"))
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("missing X-Request-Id header")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(forecastJSON))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, nil)

	forecast, err := client.GetForecast(context.Background(), "TK", "2024-03-05")
	if err != nil {
		t.Fatalf("GetForecast() error = %v", err)
	}

	tide := forecast.Tide
	if tide.StationCode != "TK" || tide.StationName != "東京" {
		t.Errorf("station = %s/%s, want TK/東京", tide.StationCode, tide.StationName)
	}
	if tide.Date != "2024-03-05" {
		t.Errorf("date = %s, want 2024-03-05", tide.Date)
	}
	if len(tide.Hourly) != 24 {
		t.Fatalf("len(Hourly) = %d, want 24", len(tide.Hourly))
	}
	if tide.Hourly[0] == nil || *tide.Hourly[0] != 100 {
		t.Errorf("Hourly[0] = %v, want 100", tide.Hourly[0])
	}
	if tide.Hourly[1] != nil {
		t.Errorf("Hourly[1] = %v, want nil (JSON null)", *tide.Hourly[1])
	}

	if len(tide.Highs) != 2 {
		t.Fatalf("len(Highs) = %d, want 2", len(tide.Highs))
	}
	if tide.Highs[0].Kind != models.TideHigh || tide.Highs[0].Time != "06:30" || tide.Highs[0].HeightCm != 162.0 {
		t.Errorf("Highs[0] = %+v, unexpected", tide.Highs[0])
	}
	if len(tide.Lows) != 2 {
		t.Fatalf("len(Lows) = %d, want 2", len(tide.Lows))
	}
	if tide.Lows[1].Kind != models.TideLow {
		t.Errorf("Lows[1].Kind = %v, want low", tide.Lows[1].Kind)
	}

	weather := forecast.Weather
	if weather.Today == nil {
		t.Fatal("Weather.Today = nil, want detail")
	}
	if weather.Today.Text == nil || *weather.Today.Text != "晴れのち曇り" {
		t.Errorf("Today.Text = %v, unexpected", weather.Today.Text)
	}
	if weather.Today.PopPercent == nil || *weather.Today.PopPercent != 30 {
		t.Errorf("Today.PopPercent = %v, want 30", weather.Today.PopPercent)
	}
	if weather.Today.Icon != nil {
		t.Errorf("Today.Icon = %v, want nil (absent field)", *weather.Today.Icon)
	}
	if len(weather.Weekly) != 1 {
		t.Fatalf("len(Weekly) = %d, want 1", len(weather.Weekly))
	}
	if weather.Weekly[0].Summary == nil || *weather.Weekly[0].Summary != "曇り" {
		t.Errorf("Weekly[0].Summary = %v, unexpected", weather.Weekly[0].Summary)
	}
}

func TestClient_GetStations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/stations" {
			t.Errorf("path = %s, want /v1/stations", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"stations": [
			{"code": "TK", "name": "東京", "region": "関東"},
			{"code": "YK", "name": "横須賀", "region": "関東"}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, nil)

	stations, err := client.GetStations(context.Background())
	if err != nil {
		t.Fatalf("GetStations() error = %v", err)
	}
	if len(stations) != 2 {
		t.Fatalf("len(stations) = %d, want 2", len(stations))
	}
	if stations[0].Code != "TK" || stations[0].Name != "東京" {
		t.Errorf("stations[0] = %+v, unexpected", stations[0])
	}
}

func TestClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("no such station"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, nil)

	if _, err := client.GetForecast(context.Background(), "XX", "2024-03-05"); err == nil {
		t.Error("expected error for 404 response, got nil")
	}
	if _, err := client.GetStations(context.Background()); err == nil {
		t.Error("expected error for 404 response, got nil")
	}
}

func TestClient_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, nil)

	if _, err := client.GetForecast(context.Background(), "TK", "2024-03-05"); err == nil {
		t.Error("expected decode error, got nil")
	}
}
