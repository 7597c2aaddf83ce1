package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"calatorie/internal/model"
	"calatorie/internal/store"
	"calatorie/internal/util"
)

// ItineraryModel is the chronological list of activities.
type ItineraryModel struct {
	rows   []model.Activity
	cursor int
}

// NewItineraryModel snapshots the sorted activities from the store.
func NewItineraryModel(s *store.Store) *ItineraryModel {
	return &ItineraryModel{rows: s.Activities()}
}

// CursorUp moves the selection up.
func (m *ItineraryModel) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// CursorDown moves the selection down.
func (m *ItineraryModel) CursorDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
	}
}

// Selected returns the activity under the cursor, or nil.
func (m *ItineraryModel) Selected() *model.Activity {
	if len(m.rows) == 0 {
		return nil
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	return &m.rows[m.cursor]
}

// View renders the itinerary.
func (m *ItineraryModel) View(width, height int) string {
	if len(m.rows) == 0 {
		return EmptyStateStyle.Render("No activities yet. Press a to add the first one.")
	}

	var b strings.Builder
	lastDate := ""
	for i, a := range m.rows {
		if a.Date != lastDate {
			if lastDate != "" {
				b.WriteString("\n")
			}
			b.WriteString(SectionTitleStyle.Render(util.FormatDate(a.Date)))
			b.WriteString("\n")
			lastDate = a.Date
		}

		line := "  " + a.Time + "  " + util.TruncateString(a.Name, 32)
		details := a.Location
		if a.Category != "" {
			details += " · " + a.Category
		}
		details += " · " + util.FormatDuration(a.Duration)
		line += "  " + HelpDescStyle.Render(details)

		style := NormalRowStyle
		if i == m.cursor {
			style = SelectedRowStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
		if a.Notes != "" && i == m.cursor {
			b.WriteString(HelpDescStyle.Render("         " + util.TruncateString(a.Notes, width-12)))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
