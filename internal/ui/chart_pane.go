package ui

import (
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/mfukuda/tidewatch/internal/models"
	"github.com/mfukuda/tidewatch/internal/tideseries"
)

const (
	chartWidth  = 48
	chartHeight = 12
)

// chartBase anchors the X axis to an arbitrary fixed day; only the clock
// time matters for labels.
var chartBase = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// renderChartPane renders the braille tide curve with high/low markers
func (m Model) renderChartPane() string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Tide Curve"))
	content.WriteString("\n\n")

	chart := renderTideChart(m.derived, chartWidth, chartHeight)
	if chart == "" {
		content.WriteString(mutedStyle.Render("Not enough hourly data to chart"))
		return paneStyle.Render(content.String())
	}

	content.WriteString(chart)
	content.WriteString("\n")
	content.WriteString(highTideStyle.Render("▲"))
	content.WriteString(mutedStyle.Render(" high  "))
	content.WriteString(lowTideStyle.Render("▼"))
	content.WriteString(mutedStyle.Render(" low"))

	return paneStyle.Render(content.String())
}

// renderTideChart plots the 24 derived points on a time-series line chart
// and overlays one marker per interpolated tide event. Hours with missing
// samples are simply not pushed; the chart draws through the gap.
func renderTideChart(derived tideseries.Result, width, height int) string {
	var (
		count      int
		minV, maxV float64
	)
	for _, p := range derived.Points {
		if p.HeightCm == nil {
			continue
		}
		if count == 0 || *p.HeightCm < minV {
			minV = *p.HeightCm
		}
		if count == 0 || *p.HeightCm > maxV {
			maxV = *p.HeightCm
		}
		count++
	}
	if count < 2 {
		return ""
	}
	for _, mk := range append(derived.HighMarkers, derived.LowMarkers...) {
		if mk.HeightCm < minV {
			minV = mk.HeightCm
		}
		if mk.HeightCm > maxV {
			maxV = mk.HeightCm
		}
	}
	if minV == maxV { // avoid a zero-height Y range
		maxV += 1
		minV -= 1
	}

	minTime := chartBase
	maxTime := chartBase.Add(time.Duration(tideseries.HoursPerDay-1) * time.Hour)

	lc := timeserieslinechart.New(width, height)
	lc.SetTimeRange(minTime, maxTime)
	lc.SetViewTimeAndYRange(minTime, maxTime, minV, maxV)
	lc.Model.XLabelFormatter = func(i int, v float64) string {
		return time.Unix(int64(v), 0).UTC().Format("15:04")
	}

	xStep := lc.GraphWidth() / tideseries.HoursPerDay
	if xStep < 1 {
		xStep = 1
	}
	lc.SetXStep(xStep)

	for _, p := range derived.Points {
		if p.HeightCm == nil {
			continue
		}
		lc.Push(timeserieslinechart.TimePoint{
			Time:  chartBase.Add(time.Duration(p.Hour) * time.Hour),
			Value: *p.HeightCm,
		})
	}
	lc.DrawBraille()

	drawMarkers(&lc, derived.HighMarkers, '▲', minV, maxV, highTideStyle)
	drawMarkers(&lc, derived.LowMarkers, '▼', minV, maxV, lowTideStyle)

	return lc.View()
}

// drawMarkers overlays event markers onto the drawn chart canvas at their
// interpolated position. Markers outside the drawable area are skipped.
func drawMarkers(lc *timeserieslinechart.Model, markers []models.InterpolatedMarker, r rune, minV, maxV float64, style lipgloss.Style) {
	viewMinX := lc.Model.ViewMinX()
	viewMaxX := lc.Model.ViewMaxX()
	if viewMaxX <= viewMinX || maxV <= minV {
		return
	}

	graphRows := lc.Model.Origin().Y
	for _, mk := range markers {
		markerTime := chartBase.Add(time.Duration(mk.HourFraction * float64(time.Hour)))

		xRel := (float64(markerTime.Unix()) - viewMinX) / (viewMaxX - viewMinX)
		if xRel < 0 || xRel > 1 {
			continue
		}
		col := int(math.Round(xRel * float64(lc.GraphWidth()-1)))
		col += lc.Model.Origin().X
		if lc.Model.YStep() > 0 {
			col += 1
		}

		yRel := (mk.HeightCm - minV) / (maxV - minV)
		row := int(math.Round((1 - yRel) * float64(graphRows-1)))

		if col < 0 || col >= lc.Canvas.Width() || row < 0 || row >= graphRows {
			continue
		}
		lc.Canvas.SetCell(canvas.Point{X: col, Y: row}, canvas.NewCellWithStyle(r, style))
	}
}
