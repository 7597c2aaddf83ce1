package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calatorie/internal/currency"
	"calatorie/internal/model"
	"calatorie/internal/store"
	"calatorie/internal/util"
)

// BudgetModel is the budget summary and expense list. Amounts live in
// the base currency; only rendering converts to the display currency.
type BudgetModel struct {
	store    *store.Store
	summary  store.BudgetSummary
	display  currency.Code
	expenses []model.Expense
	cursor   int

	editing     bool
	budgetInput textinput.Model
}

// NewBudgetModel snapshots the budget state from the store.
func NewBudgetModel(s *store.Store) *BudgetModel {
	input := textinput.New()
	input.Placeholder = "1500"
	input.CharLimit = 12
	input.Width = 16

	m := &BudgetModel{store: s, budgetInput: input}
	m.Refresh(s)
	return m
}

// Refresh re-reads the summary and expense list.
func (m *BudgetModel) Refresh(s *store.Store) {
	state := s.State()
	m.summary = s.Summary()
	m.display = state.Currency
	m.expenses = append(m.expenses[:0], state.Expenses...)
	if m.cursor >= len(m.expenses) {
		m.cursor = max(0, len(m.expenses)-1)
	}
}

// CursorUp moves the selection up.
func (m *BudgetModel) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// CursorDown moves the selection down.
func (m *BudgetModel) CursorDown() {
	if m.cursor < len(m.expenses)-1 {
		m.cursor++
	}
}

// Selected returns the expense under the cursor, or nil.
func (m *BudgetModel) Selected() *model.Expense {
	if len(m.expenses) == 0 {
		return nil
	}
	return &m.expenses[m.cursor]
}

// NextCurrency returns the display currency that follows the current one.
func (m *BudgetModel) NextCurrency() currency.Code {
	return currency.Next(m.display)
}

// Editing reports whether the inline budget input is active.
func (m *BudgetModel) Editing() bool {
	return m.editing
}

// StartEditing opens the inline total-budget input.
func (m *BudgetModel) StartEditing() {
	m.editing = true
	m.budgetInput.SetValue("")
	m.budgetInput.Focus()
}

// UpdateEditing feeds a key to the inline budget input.
func (m *BudgetModel) UpdateEditing(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.budgetInput.Blur()
		return nil
	case "enter":
		raw := m.budgetInput.Value()
		m.editing = false
		m.budgetInput.Blur()
		if err := m.store.SetTotalBudget(raw); err != nil {
			return func() tea.Msg { return model.AlertMsg{Text: "Enter a valid amount!"} }
		}
		m.Refresh(m.store)
		return nil
	}

	var cmd tea.Cmd
	m.budgetInput, cmd = m.budgetInput.Update(msg)
	return cmd
}

func (m *BudgetModel) money(amount float64) string {
	return currency.Format(currency.Convert(amount, m.display), m.display)
}

// View renders the summary figures and the expense list.
func (m *BudgetModel) View(width, height int) string {
	var b strings.Builder

	b.WriteString(SectionTitleStyle.Render("Budget · " + string(m.display)))
	b.WriteString("\n\n")

	remainingStyle := SuccessStyle
	if m.summary.Remaining < 0 {
		remainingStyle = ErrorStyle
	}
	summary := lipgloss.JoinHorizontal(lipgloss.Top,
		PanelStyle.Render(LabelStyle.Render("Total")+"\n"+m.money(m.summary.Total)),
		PanelStyle.Render(LabelStyle.Render("Spent")+"\n"+m.money(m.summary.Spent)),
		PanelStyle.Render(LabelStyle.Render("Remaining")+"\n"+remainingStyle.Render(m.money(m.summary.Remaining))),
	)
	b.WriteString(summary)
	b.WriteString("\n")

	if m.editing {
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render("Total budget: "))
		b.WriteString(m.budgetInput.View())
		b.WriteString(HelpDescStyle.Render("  enter set · esc cancel"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(SectionTitleStyle.Render("Expenses"))
	b.WriteString("\n")

	if len(m.expenses) == 0 {
		b.WriteString(EmptyStateStyle.Render("No expenses yet. Press a to add one."))
	} else {
		for i, e := range m.expenses {
			marker := "○"
			if e.Status == model.ExpenseSpent {
				marker = "●"
			}
			line := "  " + marker + " " + util.TruncateString(e.Description, 28) +
				"  " + HelpDescStyle.Render(e.Category+" · "+e.Status) +
				"  " + m.money(e.Amount)

			style := NormalRowStyle
			if i == m.cursor {
				style = SelectedRowStyle
			}
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
