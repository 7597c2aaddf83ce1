package model

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// TripCreatedMsg is sent when the planning form is submitted successfully.
type TripCreatedMsg struct{}

// TripUnlockedMsg is sent when the passphrase gate is passed.
type TripUnlockedMsg struct{}

// ActivitySavedMsg is sent when an activity is added.
type ActivitySavedMsg struct{}

// ExpenseSavedMsg is sent when an expense is added.
type ExpenseSavedMsg struct{}

// ExperienceSavedMsg is sent when an experience is added.
type ExperienceSavedMsg struct{}

// FormCancelledMsg is sent when a form is cancelled.
type FormCancelledMsg struct{}

// AlertMsg shows a blocking informational dialog.
type AlertMsg struct {
	Text string
}

// Screen represents different app screens. The first six are the
// navigable sections; the rest are forms and the passphrase gate.
type Screen int

const (
	ScreenPlanning Screen = iota
	ScreenItinerary
	ScreenMap
	ScreenPacking
	ScreenBudget
	ScreenExperiences
	ScreenLogin
	ScreenActivityForm
	ScreenExpenseForm
	ScreenExperienceForm
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNav Mode = iota
	ModeInsert
)
