package model

import "calatorie/internal/currency"

// Trip is the single planned trip. There is exactly one or none; submitting
// the planning form again replaces it wholesale.
type Trip struct {
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"` // ISO 8601 date (YYYY-MM-DD)
	EndDate     string `json:"endDate"`
	Travelers   int    `json:"travelers"`
	Purpose     string `json:"purpose"`
}

// Activity is one itinerary entry.
type Activity struct {
	ID       string `json:"id"`
	Date     string `json:"date"` // YYYY-MM-DD
	Time     string `json:"time"` // HH:MM
	Name     string `json:"name"`
	Location string `json:"location"`
	Category string `json:"category"`
	Duration int    `json:"duration"` // minutes
	Notes    string `json:"notes"`
}

// PackingItem is one entry of the generated packing list.
type PackingItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
	Packed   bool   `json:"packed"`
}

// Expense statuses.
const (
	ExpensePlanned = "planned"
	ExpenseSpent   = "spent"
)

// Expense is one budget entry. Amount is always stored in the base
// currency; conversion happens at display time only.
type Expense struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
}

// Experience types.
const (
	ExperienceAuthentic = "authentic"
	ExperienceTourist   = "tourist"
	ExperienceMixed     = "mixed"
)

// Experience is a post-trip journal entry.
type Experience struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Rating      int    `json:"rating"` // 1-5
}

// AppState is the root aggregate. Everything the app knows lives here, and
// the whole thing is persisted as one snapshot after every mutation.
type AppState struct {
	Trip         *Trip         `json:"trip"`
	Activities   []Activity    `json:"activities"`
	PackingItems []PackingItem `json:"packingItems"`
	Expenses     []Expense     `json:"expenses"`
	TotalBudget  float64       `json:"totalBudget"`
	Experiences  []Experience  `json:"experiences"`
	Currency     currency.Code `json:"currency"`
}

// NewAppState returns the default empty state: no trip, empty collections,
// zero budget, base display currency.
func NewAppState() *AppState {
	return &AppState{
		Activities:   []Activity{},
		PackingItems: []PackingItem{},
		Expenses:     []Expense{},
		Experiences:  []Experience{},
		Currency:     currency.USD,
	}
}
