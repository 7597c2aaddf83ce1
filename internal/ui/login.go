package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calatorie/internal/model"
	"calatorie/internal/store"
)

// LoginModel is the passphrase gate in front of the itinerary. The
// passphrase is the first three letters of the destination; the gate is
// a ritual, not a security measure.
type LoginModel struct {
	store *store.Store
	input textinput.Model
	hint  string
}

// NewLoginModel creates the passphrase screen.
func NewLoginModel(s *store.Store) *LoginModel {
	input := textinput.New()
	input.Placeholder = "passphrase"
	input.EchoMode = textinput.EchoPassword
	input.CharLimit = 16
	input.Width = 24
	input.Focus()
	return &LoginModel{store: s, input: input}
}

// Update handles input.
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return model.FormCancelledMsg{} }
		case "enter":
			if m.store.CheckPassphrase(m.input.Value()) {
				return m, func() tea.Msg { return model.TripUnlockedMsg{} }
			}
			m.input.SetValue("")
			dest := ""
			if trip := m.store.State().Trip; trip != nil {
				dest = trip.Destination
			}
			m.hint = "Wrong passphrase. Hint: the first 3 letters of " + dest + "."
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the gate.
func (m LoginModel) View(width, height int) string {
	var b strings.Builder
	b.WriteString(SectionTitleStyle.Render("Itinerary locked"))
	b.WriteString("\n\n")
	b.WriteString("Enter the trip passphrase to continue.\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.hint != "" {
		b.WriteString("\n")
		b.WriteString(WarningStyle.Render(m.hint))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(HelpDescStyle.Render("enter submit · esc back to planning"))

	box := ActiveBorderStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
