package ui

import "github.com/charmbracelet/huh"

// newDateForm builds the single-field date entry form. The value is never
// rejected here: whatever the user types goes through date normalization
// and the remote API owns calendar validation.
func newDateForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD (also 2024/3/5 or 2024.3.5), blank for today").
				Placeholder("today").
				Value(value),
		),
	).WithShowHelp(false)
}
