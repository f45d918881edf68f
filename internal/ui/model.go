package ui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mfukuda/tidewatch/internal/dates"
	"github.com/mfukuda/tidewatch/internal/models"
	"github.com/mfukuda/tidewatch/internal/shioapi"
	"github.com/mfukuda/tidewatch/internal/tideseries"
)

// AppState represents the current state of the application
type AppState int

const (
	StateLoadingStations AppState = iota // Fetching the station directory
	StateStations                        // Show the station picker
	StateDate                            // Date entry form
	StateLoadingForecast                 // Fetching tide/weather data
	StateDisplay                         // Display tide table, chart and weather
	StateError                           // Error state
)

// Options preselects a station/date query, skipping the interactive
// picker. This is the CLI analogue of a shareable link.
type Options struct {
	Station string
	Date    string
}

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	client *shioapi.Client
	logger *slog.Logger

	// Station selection
	stations    []models.Station
	stationList list.Model
	selected    *models.Station

	// Date entry
	dateForm  *huh.Form
	dateInput string
	date      string // normalized YYYY-MM-DD

	// Fetched data; cleared on every new query
	forecast *models.Forecast
	derived  tideseries.Result

	spinner spinner.Model
}

// NewModel creates a new application model
func NewModel(client *shioapi.Client, logger *slog.Logger, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := Model{
		state:   StateLoadingStations,
		client:  client,
		logger:  logger,
		spinner: s,
	}

	if opts.Station != "" {
		m.selected = &models.Station{Code: opts.Station}
		m.date = dates.NormalizeOrToday(opts.Date)
		m.state = StateLoadingForecast
	}

	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	if m.state == StateLoadingForecast {
		return tea.Batch(m.spinner.Tick, fetchForecast(m.client, m.selected.Code, m.date))
	}
	return tea.Batch(m.spinner.Tick, loadStations(m.client))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateStations {
			m.stationList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil
	}

	// Handle custom messages
	switch msg := msg.(type) {
	case errMsg:
		m.err = msg.err
		m.state = StateError
		return m, nil

	case stationsLoadedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("stations load error: %w", msg.err)
			m.state = StateError
			return m, nil
		}
		m.logger.Debug("stations loaded", "count", len(msg.stations))
		m.stations = msg.stations
		m.stationList = createStationList(msg.stations, m.width-4, m.height-8)
		m.state = StateStations
		return m, nil

	case forecastFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			return m, nil
		}
		m.forecast = msg.forecast
		m.derived = tideseries.Derive(
			msg.forecast.Tide.Hourly,
			msg.forecast.Tide.Highs,
			msg.forecast.Tide.Lows,
		)
		// The forecast response carries the canonical station name, which
		// the flag-preselected path doesn't have yet.
		if m.selected != nil && msg.forecast.Tide.StationName != "" {
			m.selected.Name = msg.forecast.Tide.StationName
		}
		m.logger.Debug("forecast fetched",
			"station", msg.forecast.Tide.StationCode,
			"date", msg.forecast.Tide.Date,
			"events", msg.forecast.Tide.EventCount(),
		)
		m.state = StateDisplay
		return m, nil
	}

	// Handle keyboard input
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Global quit; plain "q" stays typeable inside the date form
		if keyMsg.String() == "ctrl+c" || (keyMsg.String() == "q" && m.state != StateDate) {
			return m, tea.Quit
		}

		switch m.state {
		case StateStations:
			return m.handleStationList(msg)

		case StateDate:
			return m.handleDateForm(msg)

		case StateDisplay:
			return m.handleDisplayKeys(keyMsg)

		case StateError:
			// Any key returns to the station picker
			m.err = nil
			m.clearQuery()
			if len(m.stations) > 0 {
				m.state = StateStations
				return m, nil
			}
			m.state = StateLoadingStations
			return m, tea.Batch(m.spinner.Tick, loadStations(m.client))
		}
	}

	// Update the active component
	switch m.state {
	case StateLoadingStations, StateLoadingForecast:
		m.spinner, cmd = m.spinner.Update(msg)
	case StateStations:
		m.stationList, cmd = m.stationList.Update(msg)
	case StateDate:
		return m.handleDateForm(msg)
	}

	return m, cmd
}

// handleStationList handles input in the station picker
func (m Model) handleStationList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Don't steal Enter while the list filter is being typed
		if keyMsg.Type == tea.KeyEnter && !m.stationList.SettingFilter() {
			if item, ok := m.stationList.SelectedItem().(stationItem); ok {
				station := item.station
				m.selected = &station
				m.dateInput = ""
				m.dateForm = newDateForm(&m.dateInput)
				m.state = StateDate
				return m, m.dateForm.Init()
			}
		}
	}

	m.stationList, cmd = m.stationList.Update(msg)
	return m, cmd
}

// handleDateForm handles input in the date entry form
func (m Model) handleDateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		// Flag-preselected sessions may not have a station list yet
		if len(m.stations) == 0 {
			m.state = StateLoadingStations
			return m, tea.Batch(m.spinner.Tick, loadStations(m.client))
		}
		m.state = StateStations
		return m, nil
	}

	form, cmd := m.dateForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.dateForm = f
	}

	if m.dateForm.State == huh.StateCompleted {
		m.date = dates.NormalizeOrToday(m.dateInput)
		m.forecast = nil
		m.derived = tideseries.Result{}
		m.state = StateLoadingForecast
		return m, tea.Batch(m.spinner.Tick, fetchForecast(m.client, m.selected.Code, m.date))
	}

	return m, cmd
}

// handleDisplayKeys handles keyboard input on the display screen
func (m Model) handleDisplayKeys(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "s":
		// Back to the station picker; drop everything from this query
		m.clearQuery()
		if len(m.stations) > 0 {
			m.state = StateStations
			return m, nil
		}
		m.state = StateLoadingStations
		return m, tea.Batch(m.spinner.Tick, loadStations(m.client))

	case "d":
		m.dateInput = m.date
		m.dateForm = newDateForm(&m.dateInput)
		m.forecast = nil
		m.derived = tideseries.Result{}
		m.state = StateDate
		return m, m.dateForm.Init()

	case "r":
		m.forecast = nil
		m.derived = tideseries.Result{}
		m.state = StateLoadingForecast
		return m, tea.Batch(m.spinner.Tick, fetchForecast(m.client, m.selected.Code, m.date))
	}

	return m, nil
}

// clearQuery drops all per-query state
func (m *Model) clearQuery() {
	m.selected = nil
	m.date = ""
	m.dateInput = ""
	m.dateForm = nil
	m.forecast = nil
	m.derived = tideseries.Result{}
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateLoadingStations:
		return m.viewLoading("Loading stations...")
	case StateStations:
		return m.viewStations()
	case StateDate:
		return m.viewDate()
	case StateLoadingForecast:
		return m.viewLoading(fmt.Sprintf("Fetching tides for %s on %s...", m.stationLabel(), m.date))
	case StateDisplay:
		return m.viewDisplay()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewLoading renders a spinner with a status line
func (m Model) viewLoading(status string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		fmt.Sprintf("%s %s", m.spinner.View(), mutedStyle.Render(status)),
	)
}

// viewStations renders the station picker
func (m Model) viewStations() string {
	title := titleStyle.Render("🌊 Tidewatch")
	subtitle := mutedStyle.Render(fmt.Sprintf("%d ports available", len(m.stations)))

	help := helpStyle.Render("↑/↓: Navigate • /: Filter • Enter: Select • Q: Quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		subtitle,
		"",
		m.stationList.View(),
		help,
	)
}

// viewDate renders the date entry form
func (m Model) viewDate() string {
	title := titleStyle.Render(fmt.Sprintf("🌊 %s", m.stationLabel()))

	help := helpStyle.Render("Enter: Fetch • Esc: Back to ports • Ctrl+C: Quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		m.dateForm.View(),
		help,
	)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	var errText string
	if m.err != nil {
		errText = m.err.Error()
	} else {
		errText = "An unknown error occurred"
	}

	help := helpStyle.Render("Press any key to return • Q: Quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		errText,
		"",
		help,
	)
}

// viewDisplay renders the tide table, chart, events and weather panes
func (m Model) viewDisplay() string {
	if m.forecast == nil {
		return "No data"
	}

	header := headerStyle.Render(fmt.Sprintf("🌊 %s — %s", m.stationLabel(), m.forecast.Tide.Date))

	top := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTidePane(),
		m.renderChartPane(),
	)

	bottom := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderEventsPane(),
		m.renderWeatherPane(),
	)

	help := helpStyle.Render("S: Ports • D: Date • R: Refetch • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, top, bottom, help)
}

// stationLabel renders the selected station for titles
func (m Model) stationLabel() string {
	if m.selected == nil {
		return "?"
	}
	if m.selected.Name != "" {
		return fmt.Sprintf("%s (%s)", m.selected.Name, m.selected.Code)
	}
	return m.selected.Code
}
