package ui

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/mfukuda/tidewatch/internal/models"
)

// stationItem wraps a Station for use in a list
type stationItem struct {
	station models.Station
}

// FilterValue implements list.Item
func (s stationItem) FilterValue() string {
	return s.station.Name + " " + s.station.Code
}

// Title implements list.DefaultItem
func (s stationItem) Title() string {
	return s.station.Name
}

// Description implements list.DefaultItem
func (s stationItem) Description() string {
	desc := s.station.Code
	if s.station.Region != "" {
		desc += " • " + s.station.Region
	}
	return desc
}

// createStationList creates a list.Model from stations
func createStationList(stations []models.Station, width, height int) list.Model {
	items := make([]list.Item, len(stations))
	for i, station := range stations {
		items[i] = stationItem{station: station}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Select a Port"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)

	return l
}
