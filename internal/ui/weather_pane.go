package ui

import (
	"fmt"
	"strings"

	"github.com/mfukuda/tidewatch/internal/models"
)

// unknownText is the fallback shown for optional weather fields the API
// left out. Applied here, at the presentation boundary, never inside the
// derivation core.
const unknownText = "不明"

// renderWeatherPane renders the weather pane using the three-tier
// fallback: today's detailed forecast, then the weekly outlook, then a
// "no data" placeholder.
func (m Model) renderWeatherPane() string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Weather"))
	content.WriteString("\n\n")

	weather := &m.forecast.Weather
	switch weather.Best() {
	case models.WeatherToday:
		content.WriteString(renderDayWeather(weather.Today))
	case models.WeatherWeekly:
		content.WriteString(labelStyle.Render("Weekly Outlook"))
		content.WriteString("\n")
		for _, day := range weather.Weekly {
			content.WriteString(fmt.Sprintf("  %s  %s\n",
				mutedStyle.Render(day.Date),
				valueStyle.Render(orUnknown(day.Summary)),
			))
		}
	default:
		content.WriteString(mutedStyle.Render("No weather data available"))
	}

	return paneStyle.Render(content.String())
}

// renderDayWeather renders the detailed single-day forecast
func renderDayWeather(day *models.DayWeather) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render(day.Date))
	b.WriteString("\n")
	b.WriteString(valueStyle.Render(orUnknown(day.Text)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Rain: "))
	if day.PopPercent != nil {
		b.WriteString(valueStyle.Render(fmt.Sprintf("%d%%", *day.PopPercent)))
	} else {
		b.WriteString(mutedStyle.Render(unknownText))
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Temp: "))
	b.WriteString(valueStyle.Render(formatTempRange(day.TempMinC, day.TempMaxC)))
	b.WriteString("\n")

	return b.String()
}

// formatTempRange renders min/max temperature, degrading per missing side
func formatTempRange(minC, maxC *float64) string {
	switch {
	case minC != nil && maxC != nil:
		return fmt.Sprintf("%.0f°C / %.0f°C", *minC, *maxC)
	case maxC != nil:
		return fmt.Sprintf("max %.0f°C", *maxC)
	case minC != nil:
		return fmt.Sprintf("min %.0f°C", *minC)
	default:
		return unknownText
	}
}

// orUnknown substitutes the fallback text for absent optional strings
func orUnknown(s *string) string {
	if s == nil || *s == "" {
		return unknownText
	}
	return *s
}
