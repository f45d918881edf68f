package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfukuda/tidewatch/internal/models"
	"github.com/mfukuda/tidewatch/internal/shioapi"
)

// Message types for async operations

// stationsLoadedMsg is sent when the station directory has been fetched
type stationsLoadedMsg struct {
	stations []models.Station
	err      error
}

// forecastFetchedMsg is sent when tide/weather data has been fetched
type forecastFetchedMsg struct {
	forecast *models.Forecast
	err      error
}

// errMsg is a message type for errors
type errMsg struct {
	err error
}

// loadStations fetches the station directory in the background
func loadStations(client *shioapi.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		stations, err := client.GetStations(ctx)
		return stationsLoadedMsg{stations: stations, err: err}
	}
}

// fetchForecast fetches tide and weather data for a station/date pair
func fetchForecast(client *shioapi.Client, stationCode, date string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		forecast, err := client.GetForecast(ctx, stationCode, date)
		return forecastFetchedMsg{forecast: forecast, err: err}
	}
}
