package models

import "time"

// WeatherSource identifies which tier of weather content is available
// for display: the detailed forecast for the requested day, the coarse
// weekly outlook, or nothing.
type WeatherSource int

const (
	WeatherNone WeatherSource = iota
	WeatherToday
	WeatherWeekly
)

// DayWeather is the detailed forecast for a single date. Everything but
// the date is optional upstream; absent values stay nil and the
// presentation layer decides what fallback text to show.
type DayWeather struct {
	Date       string
	Text       *string // e.g. "晴れのち曇り"
	Icon       *string
	PopPercent *int // precipitation probability
	TempMinC   *float64
	TempMaxC   *float64
}

// WeeklyDay is one entry of the weekly outlook
type WeeklyDay struct {
	Date    string
	Summary *string
	Icon    *string
}

// WeatherBundle carries whatever weather content the API returned for a
// station/date query
type WeatherBundle struct {
	Today  *DayWeather
	Weekly []WeeklyDay
}

// Best picks the tier of weather content to display: today's detailed
// forecast when present, otherwise the weekly outlook, otherwise none.
func (w *WeatherBundle) Best() WeatherSource {
	if w == nil {
		return WeatherNone
	}
	if w.Today != nil {
		return WeatherToday
	}
	if len(w.Weekly) > 0 {
		return WeatherWeekly
	}
	return WeatherNone
}

// Forecast is the full API response for one station/date query. It lives
// for a single fetch/render cycle and is discarded on the next query.
type Forecast struct {
	Tide      TideDay
	Weather   WeatherBundle
	FetchedAt time.Time
}
