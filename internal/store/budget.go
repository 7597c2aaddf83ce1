package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"calatorie/internal/currency"
	"calatorie/internal/model"
)

// ExpenseInput carries the raw expense form values.
type ExpenseInput struct {
	Category    string
	Description string
	Amount      string
}

// AddExpense records a new expense in the base currency. Category and
// description are required; the amount must parse as a positive decimal.
// New expenses start as planned.
func (s *Store) AddExpense(in ExpenseInput) error {
	category := strings.TrimSpace(in.Category)
	description := strings.TrimSpace(in.Description)

	if category == "" || description == "" {
		return fmt.Errorf("category and description are required: %w", ErrValidation)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(in.Amount), 64)
	if err != nil || amount <= 0 {
		return fmt.Errorf("amount must be a positive number: %w", ErrValidation)
	}

	s.state.Expenses = append(s.state.Expenses, model.Expense{
		ID:          uuid.NewString(),
		Category:    category,
		Description: description,
		Amount:      amount,
		Status:      model.ExpensePlanned,
	})

	return s.persist()
}

// DeleteExpense removes an expense by id. Missing ids are a silent no-op.
func (s *Store) DeleteExpense(id string) error {
	kept := s.state.Expenses[:0]
	for _, e := range s.state.Expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.state.Expenses) {
		return nil
	}
	s.state.Expenses = kept
	return s.persist()
}

// ToggleExpenseStatus flips an expense between planned and spent. Missing
// ids are a silent no-op.
func (s *Store) ToggleExpenseStatus(id string) error {
	for i := range s.state.Expenses {
		if s.state.Expenses[i].ID == id {
			if s.state.Expenses[i].Status == model.ExpenseSpent {
				s.state.Expenses[i].Status = model.ExpensePlanned
			} else {
				s.state.Expenses[i].Status = model.ExpenseSpent
			}
			return s.persist()
		}
	}
	return nil
}

// SetTotalBudget sets the overall budget from raw input. The value must
// parse as a positive decimal.
func (s *Store) SetTotalBudget(raw string) error {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || amount <= 0 {
		return fmt.Errorf("budget must be a positive number: %w", ErrValidation)
	}
	s.state.TotalBudget = amount
	return s.persist()
}

// SetCurrency switches the display currency. Unsupported codes are
// rejected; stored amounts are never touched.
func (s *Store) SetCurrency(code currency.Code) error {
	if !currency.Valid(code) {
		return fmt.Errorf("unsupported currency %q: %w", code, ErrValidation)
	}
	s.state.Currency = code
	return s.persist()
}

// BudgetSummary holds the three budget figures in the base currency.
// Conversion to the display currency happens at render time.
type BudgetSummary struct {
	Total     float64
	Spent     float64
	Remaining float64
}

// Summary computes the budget figures. Spent sums every expense
// regardless of status; the total budget is an independent scalar, not
// derived from expenses.
func (s *Store) Summary() BudgetSummary {
	var spent float64
	for _, e := range s.state.Expenses {
		spent += e.Amount
	}
	return BudgetSummary{
		Total:     s.state.TotalBudget,
		Spent:     spent,
		Remaining: s.state.TotalBudget - spent,
	}
}
