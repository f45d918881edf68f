package tideseries

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/mfukuda/tidewatch/internal/models"
)

// HoursPerDay is the fixed length of the hourly tide series.
const HoursPerDay = 24

// Result bundles everything derived from one day of tide data: the dense
// plotting series, the merged high/low event list, and the interpolated
// chart markers for each event.
type Result struct {
	Points      []models.DerivedPoint
	Events      []models.TideEvent
	HighMarkers []models.InterpolatedMarker
	LowMarkers  []models.InterpolatedMarker
}

// Derive builds the view-model values for one day of tide data. It is a
// pure function: malformed timestamps are clamped or defaulted, missing
// samples propagate as dropped markers, and nothing ever errors.
func Derive(hourly []*float64, highs, lows []models.TideEvent) Result {
	samples := normalizeHourly(hourly)

	points := make([]models.DerivedPoint, HoursPerDay)
	for h := 0; h < HoursPerDay; h++ {
		points[h] = models.DerivedPoint{
			Hour:     h,
			Label:    fmt.Sprintf("%02d:00", h),
			HeightCm: samples[h],
		}
	}

	// Highs are concatenated first; a high and a low at the identical
	// minute keep that order under the stable sort.
	events := make([]models.TideEvent, 0, len(highs)+len(lows))
	events = append(events, highs...)
	events = append(events, lows...)
	sort.SliceStable(events, func(i, j int) bool {
		return minutesSinceMidnight(events[i].Time) < minutesSinceMidnight(events[j].Time)
	})

	return Result{
		Points:      points,
		Events:      events,
		HighMarkers: markersFor(samples, highs),
		LowMarkers:  markersFor(samples, lows),
	}
}

// TimeToFraction converts an "HH:MM" string to a real-valued hour,
// clamping the hour to [0,23] and the minute to [0,59]. Missing or
// non-numeric components count as zero.
func TimeToFraction(t string) float64 {
	h, m := splitClock(t)
	h = clamp(h, 0, HoursPerDay-1)
	m = clamp(m, 0, 59)
	return float64(h) + float64(m)/60
}

// HeightAt linearly interpolates the tide height at fractional hour f
// from the 24-entry hourly series. The second return is false when the
// base-hour sample is missing, in which case no marker should be drawn.
// A missing next-hour sample extrapolates flat from the base value, and
// hour 23 returns its sample directly rather than extrapolating past the
// end of the day.
func HeightAt(samples []*float64, f float64) (float64, bool) {
	base := int(math.Floor(f))
	base = clamp(base, 0, HoursPerDay-1)
	if base >= len(samples) || samples[base] == nil {
		return 0, false
	}
	baseVal := *samples[base]
	if base == HoursPerDay-1 {
		return baseVal, true
	}
	next := samples[base+1]
	if next == nil {
		return baseVal, true
	}
	return baseVal + (*next-baseVal)*(f-float64(base)), true
}

// markersFor interpolates a marker for every event whose bracketing
// base-hour sample exists; the rest are dropped, not fabricated.
func markersFor(samples []*float64, events []models.TideEvent) []models.InterpolatedMarker {
	markers := make([]models.InterpolatedMarker, 0, len(events))
	for _, ev := range events {
		f := TimeToFraction(ev.Time)
		h, ok := HeightAt(samples, f)
		if !ok {
			continue
		}
		markers = append(markers, models.InterpolatedMarker{HourFraction: f, HeightCm: h})
	}
	return markers
}

// normalizeHourly pads or truncates the input to exactly 24 entries so
// the deriver never indexes out of range.
func normalizeHourly(hourly []*float64) []*float64 {
	out := make([]*float64, HoursPerDay)
	copy(out, hourly)
	return out
}

func minutesSinceMidnight(t string) int {
	h, m := splitClock(t)
	return h*60 + m
}

func splitClock(t string) (hour, minute int) {
	parts := strings.SplitN(strings.TrimSpace(t), ":", 2)
	if len(parts) > 0 {
		if v, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
			hour = v
		}
	}
	if len(parts) > 1 {
		if v, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			minute = v
		}
	}
	return hour, minute
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
