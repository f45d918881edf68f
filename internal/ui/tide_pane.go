package ui

import (
	"fmt"
	"strings"

	"github.com/mfukuda/tidewatch/internal/models"
)

// renderTidePane renders the hourly tide table, two columns of 12 hours
func (m Model) renderTidePane() string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Hourly Tide (cm)"))
	content.WriteString("\n\n")

	points := m.derived.Points
	if len(points) == 0 {
		content.WriteString(mutedStyle.Render("No tide data available"))
		return paneStyle.Render(content.String())
	}

	half := len(points) / 2
	for i := 0; i < half; i++ {
		left := points[i]
		right := points[i+half]
		content.WriteString(fmt.Sprintf("%s %s    %s %s\n",
			labelStyle.Render(left.Label),
			valueStyle.Render(formatHeight(left.HeightCm)),
			labelStyle.Render(right.Label),
			valueStyle.Render(formatHeight(right.HeightCm)),
		))
	}

	return paneStyle.Render(content.String())
}

// renderEventsPane renders the merged, chronologically sorted high/low list
func (m Model) renderEventsPane() string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("High & Low Tides"))
	content.WriteString("\n\n")

	if len(m.derived.Events) == 0 {
		content.WriteString(mutedStyle.Render("No tide events for this day"))
		return paneStyle.Render(content.String())
	}

	for _, event := range m.derived.Events {
		kind := lowTideStyle.Render("Low ")
		if event.Kind == models.TideHigh {
			kind = highTideStyle.Render("High")
		}
		content.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			valueStyle.Render(event.Time),
			kind,
			valueStyle.Render(fmt.Sprintf("%6.1f cm", event.HeightCm)),
		))
	}

	return paneStyle.Render(content.String())
}

// formatHeight renders a nullable height; gaps show as a dash, never
// a fabricated value
func formatHeight(h *float64) string {
	if h == nil {
		return "   --"
	}
	return fmt.Sprintf("%5.0f", *h)
}
