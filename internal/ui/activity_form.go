package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calatorie/internal/model"
	"calatorie/internal/store"
)

const (
	actDate = iota
	actTime
	actName
	actLocation
	actCategory
	actDuration
	actNotes
	actFieldCount
)

var actLabels = [actFieldCount]string{
	"Date", "Time", "Name", "Location", "Category", "Duration (min)", "Notes",
}

// ActivityFormModel is the add-activity form.
type ActivityFormModel struct {
	store   *store.Store
	inputs  [actFieldCount]textinput.Model
	focused int
}

// NewActivityFormModel creates an empty activity form.
func NewActivityFormModel(s *store.Store) *ActivityFormModel {
	m := &ActivityFormModel{store: s}

	placeholders := [actFieldCount]string{
		"2025-06-02", "09:30", "Louvre tour", "Rue de Rivoli", "sightseeing", "60", "book tickets ahead",
	}
	for i := range m.inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 128
		input.Width = 40
		m.inputs[i] = input
	}
	m.inputs[actDuration].SetValue("60")
	m.inputs[actDate].Focus()
	return m
}

// Update handles form input.
func (m ActivityFormModel) Update(msg tea.Msg) (ActivityFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return model.FormCancelledMsg{} }
		case "ctrl+s":
			return m, m.save()
		case "tab", "down", "enter":
			m.inputs[m.focused].Blur()
			m.focused = (m.focused + 1) % actFieldCount
			m.inputs[m.focused].Focus()
			return m, textinput.Blink
		case "shift+tab", "up":
			m.inputs[m.focused].Blur()
			m.focused = (m.focused + actFieldCount - 1) % actFieldCount
			m.inputs[m.focused].Focus()
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m ActivityFormModel) save() tea.Cmd {
	s := m.store
	in := store.ActivityInput{
		Date:     m.inputs[actDate].Value(),
		Time:     m.inputs[actTime].Value(),
		Name:     m.inputs[actName].Value(),
		Location: m.inputs[actLocation].Value(),
		Category: m.inputs[actCategory].Value(),
		Duration: m.inputs[actDuration].Value(),
		Notes:    m.inputs[actNotes].Value(),
	}
	return func() tea.Msg {
		if err := s.AddActivity(in); err != nil {
			return model.AlertMsg{Text: err.Error()}
		}
		return model.ActivitySavedMsg{}
	}
}

// View renders the form.
func (m ActivityFormModel) View(width, height int) string {
	var b strings.Builder
	b.WriteString(SectionTitleStyle.Render("New activity"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		b.WriteString(LabelStyle.Render(actLabels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}
	b.WriteString(HelpDescStyle.Render("ctrl+s save · esc cancel"))

	box := ActiveBorderStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
