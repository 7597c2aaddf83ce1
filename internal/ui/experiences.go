package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"calatorie/internal/model"
	"calatorie/internal/store"
	"calatorie/internal/util"
)

// ExperiencesModel is the post-trip journal list.
type ExperiencesModel struct {
	rows   []model.Experience
	cursor int
}

// NewExperiencesModel snapshots the experiences from the store.
func NewExperiencesModel(s *store.Store) *ExperiencesModel {
	rows := append([]model.Experience(nil), s.State().Experiences...)
	return &ExperiencesModel{rows: rows}
}

// CursorUp moves the selection up.
func (m *ExperiencesModel) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// CursorDown moves the selection down.
func (m *ExperiencesModel) CursorDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
	}
}

// Selected returns the experience under the cursor, or nil.
func (m *ExperiencesModel) Selected() *model.Experience {
	if len(m.rows) == 0 {
		return nil
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	return &m.rows[m.cursor]
}

// View renders the journal as a stack of cards.
func (m *ExperiencesModel) View(width, height int) string {
	if len(m.rows) == 0 {
		return EmptyStateStyle.Render("No experiences yet. Press a to write the first one.")
	}

	var cards []string
	for i, e := range m.rows {
		var b strings.Builder
		b.WriteString(LabelStyle.Render(e.Name))
		b.WriteString("  ")
		b.WriteString(WarningStyle.Render(util.Stars(e.Rating)))
		b.WriteString("\n")
		b.WriteString(HelpDescStyle.Render(e.Location + " · " + e.Type))
		b.WriteString("\n")
		b.WriteString(NormalRowStyle.Render(util.TruncateString(e.Description, max(20, width-12))))

		style := PanelStyle
		if i == m.cursor {
			style = ActiveBorderStyle
		}
		cards = append(cards, style.Width(min(72, width-6)).Render(b.String()))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, cards...))
}
