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
	xpName = iota
	xpType
	xpDescription
	xpLocation
	xpRating
	xpFieldCount
)

var xpLabels = [xpFieldCount]string{
	"Name", "Type (authentic/tourist/mixed)", "Description", "Location", "Rating (1-5)",
}

// ExperienceFormModel is the add-experience form.
type ExperienceFormModel struct {
	store   *store.Store
	inputs  [xpFieldCount]textinput.Model
	focused int
}

// NewExperienceFormModel creates an empty experience form.
func NewExperienceFormModel(s *store.Store) *ExperienceFormModel {
	m := &ExperienceFormModel{store: s}

	placeholders := [xpFieldCount]string{
		"Sunset at Montmartre", model.ExperienceAuthentic, "worth the climb", "Paris", "3",
	}
	for i := range m.inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 128
		input.Width = 40
		m.inputs[i] = input
	}
	m.inputs[xpRating].SetValue("3")
	m.inputs[xpName].Focus()
	return m
}

// Update handles form input.
func (m ExperienceFormModel) Update(msg tea.Msg) (ExperienceFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return model.FormCancelledMsg{} }
		case "ctrl+s":
			return m, m.save()
		case "tab", "down", "enter":
			m.inputs[m.focused].Blur()
			m.focused = (m.focused + 1) % xpFieldCount
			m.inputs[m.focused].Focus()
			return m, textinput.Blink
		case "shift+tab", "up":
			m.inputs[m.focused].Blur()
			m.focused = (m.focused + xpFieldCount - 1) % xpFieldCount
			m.inputs[m.focused].Focus()
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m ExperienceFormModel) save() tea.Cmd {
	s := m.store
	in := store.ExperienceInput{
		Name:        m.inputs[xpName].Value(),
		Type:        m.inputs[xpType].Value(),
		Description: m.inputs[xpDescription].Value(),
		Location:    m.inputs[xpLocation].Value(),
		Rating:      m.inputs[xpRating].Value(),
	}
	return func() tea.Msg {
		if err := s.AddExperience(in); err != nil {
			return model.AlertMsg{Text: err.Error()}
		}
		return model.ExperienceSavedMsg{}
	}
}

// View renders the form.
func (m ExperienceFormModel) View(width, height int) string {
	var b strings.Builder
	b.WriteString(SectionTitleStyle.Render("New experience"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		b.WriteString(LabelStyle.Render(xpLabels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}
	b.WriteString(HelpDescStyle.Render("ctrl+s save · esc cancel"))

	box := ActiveBorderStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
