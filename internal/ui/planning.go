package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calatorie/internal/model"
	"calatorie/internal/store"
	"calatorie/internal/util"
	"calatorie/internal/validate"
)

const (
	planDestination = iota
	planStartDate
	planEndDate
	planTravelers
	planPurpose
	planFieldCount
)

// planFields maps input index to the validated field name.
var planFields = [planFieldCount]validate.Field{
	validate.FieldDestination,
	validate.FieldStartDate,
	validate.FieldEndDate,
	validate.FieldTravelers,
	validate.FieldPurpose,
}

var planLabels = [planFieldCount]string{
	"Destination",
	"Start date",
	"End date",
	"Travelers",
	"Purpose",
}

// planErrorText holds the message shown next to a field whose error
// marker is visible.
var planErrorText = map[validate.Field]string{
	validate.FieldDestination: "destination must be at least 3 characters",
	validate.FieldStartDate:   "start date is required (YYYY-MM-DD)",
	validate.FieldEndDate:     "end date must be after the start date",
	validate.FieldTravelers:   "travelers must be a whole number of at least 1",
	validate.FieldPurpose:     "purpose is required",
}

// PlanningModel is the trip planning form. Saving it starts a brand new
// trip and discards every dependent collection.
type PlanningModel struct {
	store   *store.Store
	inputs  [planFieldCount]textinput.Model
	focused int
	errs    validate.FieldErrors
}

// NewPlanningModel creates the planning form, prefilled from the
// current trip when one exists.
func NewPlanningModel(s *store.Store) *PlanningModel {
	m := &PlanningModel{
		store: s,
		errs:  validate.NewFieldErrors(),
	}

	placeholders := [planFieldCount]string{
		"Paris", "2025-06-01", "2025-06-10", "2", "vacation",
	}
	for i := range m.inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 64
		input.Width = 40
		m.inputs[i] = input
	}

	if trip := s.State().Trip; trip != nil {
		m.inputs[planDestination].SetValue(trip.Destination)
		m.inputs[planStartDate].SetValue(trip.StartDate)
		m.inputs[planEndDate].SetValue(trip.EndDate)
		m.inputs[planTravelers].SetValue(strconv.Itoa(trip.Travelers))
		m.inputs[planPurpose].SetValue(trip.Purpose)
	}

	m.inputs[planDestination].Focus()
	return m
}

func (m PlanningModel) input() validate.PlanningInput {
	return validate.PlanningInput{
		Destination: m.inputs[planDestination].Value(),
		StartDate:   m.inputs[planStartDate].Value(),
		EndDate:     m.inputs[planEndDate].Value(),
		Travelers:   m.inputs[planTravelers].Value(),
		Purpose:     m.inputs[planPurpose].Value(),
	}
}

// Update handles form input.
func (m PlanningModel) Update(msg tea.Msg) (PlanningModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return model.FormCancelledMsg{} }
		case "ctrl+s":
			return m, m.save()
		case "tab", "down", "enter":
			m.blurFocused()
			m.focused = (m.focused + 1) % planFieldCount
			m.inputs[m.focused].Focus()
			return m, textinput.Blink
		case "shift+tab", "up":
			m.blurFocused()
			m.focused = (m.focused + planFieldCount - 1) % planFieldCount
			m.inputs[m.focused].Focus()
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// blurFocused leaves the focused field and runs its blur validation,
// toggling the field's error marker.
func (m *PlanningModel) blurFocused() {
	m.inputs[m.focused].Blur()
	validate.Blur(planFields[m.focused], m.input(), m.errs)
}

func (m PlanningModel) save() tea.Cmd {
	s := m.store
	in := m.input()
	errs := m.errs
	return func() tea.Msg {
		if err := s.CreateTrip(in, errs); err != nil {
			// Validation failures only raise the per-field markers.
			return nil
		}
		return model.TripCreatedMsg{}
	}
}

// View renders the form.
func (m PlanningModel) View(width, height int, mode model.Mode) string {
	var b strings.Builder

	b.WriteString(SectionTitleStyle.Render("Plan your trip"))
	b.WriteString("\n\n")

	for i := range m.inputs {
		label := LabelStyle.Render(planLabels[i])
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		if m.errs.Visible(planFields[i]) {
			b.WriteString("  ")
			b.WriteString(ErrorStyle.Render("✗ " + planErrorText[planFields[i]]))
		}
		b.WriteString("\n\n")
	}

	form := BorderStyle.Render(b.String())
	if mode == model.ModeNav {
		form = lipgloss.NewStyle().Faint(true).Render(form)
	}

	panels := []string{form}
	if trip := m.store.State().Trip; trip != nil {
		panels = append(panels, m.renderTripSummary(trip))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

func (m PlanningModel) renderTripSummary(trip *model.Trip) string {
	var b strings.Builder
	b.WriteString(SectionTitleStyle.Render("Current trip"))
	b.WriteString("\n\n")
	b.WriteString(LabelStyle.Render("Destination  "))
	b.WriteString(trip.Destination)
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("Dates        "))
	b.WriteString(util.FormatDateRange(trip.StartDate, trip.EndDate))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("Travelers    "))
	b.WriteString(strconv.Itoa(trip.Travelers))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("Purpose      "))
	b.WriteString(trip.Purpose)
	b.WriteString("\n\n")
	b.WriteString(HelpDescStyle.Render("Saving a new trip replaces all\ncurrent activities, packing,\nexpenses and experiences."))
	return PanelStyle.Render(b.String())
}
