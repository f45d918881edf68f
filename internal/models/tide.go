package models

// TideKind represents whether a tide event is a high or low water mark
type TideKind string

const (
	TideHigh TideKind = "H"
	TideLow  TideKind = "L"
)

// TideEvent represents a single high or low tide occurrence supplied by
// the upstream API. Time is the local clock time in "HH:MM" form; the
// sub-hour precision is what marker interpolation works from.
type TideEvent struct {
	Kind     TideKind
	Time     string
	HeightCm float64
}

// DerivedPoint is one plottable hour of the tide curve. HeightCm is nil
// when the upstream had no sample for that hour; the hour itself is always
// present so the series stays exactly 24 entries long.
type DerivedPoint struct {
	Hour     int
	Label    string // "HH:00"
	HeightCm *float64
}

// InterpolatedMarker places a tide event on the hourly curve at its exact
// (possibly sub-hour) timestamp. Computed per render, never stored.
type InterpolatedMarker struct {
	HourFraction float64 // in [0, 23]
	HeightCm     float64
}

// TideDay contains one station-day of tide data
type TideDay struct {
	StationCode string
	StationName string
	Date        string     // YYYY-MM-DD
	Hourly      []*float64 // 24 entries, nil = no sample for that hour
	Highs       []TideEvent
	Lows        []TideEvent
}

// EventCount returns the total number of high and low tide events
func (td *TideDay) EventCount() int {
	return len(td.Highs) + len(td.Lows)
}
