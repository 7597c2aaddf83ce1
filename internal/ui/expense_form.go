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
	expCategory = iota
	expDescription
	expAmount
	expFieldCount
)

var expLabels = [expFieldCount]string{
	"Category", "Description", "Amount (USD)",
}

// ExpenseFormModel is the add-expense form. Amounts are entered in the
// base currency regardless of the display currency.
type ExpenseFormModel struct {
	store   *store.Store
	inputs  [expFieldCount]textinput.Model
	focused int
}

// NewExpenseFormModel creates an empty expense form.
func NewExpenseFormModel(s *store.Store) *ExpenseFormModel {
	m := &ExpenseFormModel{store: s}

	placeholders := [expFieldCount]string{"food", "dinner near the hotel", "42.50"}
	for i := range m.inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 96
		input.Width = 40
		m.inputs[i] = input
	}
	m.inputs[expCategory].Focus()
	return m
}

// Update handles form input.
func (m ExpenseFormModel) Update(msg tea.Msg) (ExpenseFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return model.FormCancelledMsg{} }
		case "ctrl+s":
			return m, m.save()
		case "tab", "down", "enter":
			m.inputs[m.focused].Blur()
			m.focused = (m.focused + 1) % expFieldCount
			m.inputs[m.focused].Focus()
			return m, textinput.Blink
		case "shift+tab", "up":
			m.inputs[m.focused].Blur()
			m.focused = (m.focused + expFieldCount - 1) % expFieldCount
			m.inputs[m.focused].Focus()
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m ExpenseFormModel) save() tea.Cmd {
	s := m.store
	in := store.ExpenseInput{
		Category:    m.inputs[expCategory].Value(),
		Description: m.inputs[expDescription].Value(),
		Amount:      m.inputs[expAmount].Value(),
	}
	return func() tea.Msg {
		if err := s.AddExpense(in); err != nil {
			return model.AlertMsg{Text: err.Error()}
		}
		return model.ExpenseSavedMsg{}
	}
}

// View renders the form.
func (m ExpenseFormModel) View(width, height int) string {
	var b strings.Builder
	b.WriteString(SectionTitleStyle.Render("New expense"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		b.WriteString(LabelStyle.Render(expLabels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}
	b.WriteString(HelpDescStyle.Render("ctrl+s save · esc cancel"))

	box := ActiveBorderStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
