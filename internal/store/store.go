package store

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"calatorie/internal/model"
	"calatorie/internal/storage"
	"calatorie/internal/validate"
)

// ErrValidation marks a rejected user intent: required input missing or
// malformed. Nothing was mutated when it is returned.
var ErrValidation = errors.New("validation failed")

// Store owns the single AppState. All mutation goes through its
// operations; each one validates, mutates, then persists synchronously, so
// state and durable storage never diverge after a successful call. The
// view layer only reads the state for rendering.
type Store struct {
	kv    storage.KV
	state *model.AppState

	// packingSeq numbers generated packing items. Not persisted; the list
	// is only ever replaced wholesale, so uniqueness within the current
	// list is all that matters.
	packingSeq int
}

// New loads the persisted snapshot (or a fresh default) and wraps it in a
// store.
func New(kv storage.KV) *Store {
	return &Store{kv: kv, state: storage.Load(kv)}
}

// State exposes the current state for rendering. Callers must not mutate
// it directly.
func (s *Store) State() *model.AppState {
	return s.state
}

func (s *Store) persist() error {
	return storage.Save(s.kv, s.state)
}

// CreateTrip validates the planning form and, on success, replaces the
// trip wholesale. All trip-scoped data — activities, packing list,
// expenses, experiences, budget, currency — is reset; starting a new trip
// always discards the previous one.
func (s *Store) CreateTrip(in validate.PlanningInput, errs validate.FieldErrors) error {
	if !validate.Planning(in, errs) {
		return fmt.Errorf("planning form: %w", ErrValidation)
	}

	travelers, err := strconv.Atoi(strings.TrimSpace(in.Travelers))
	if err != nil {
		return fmt.Errorf("travelers: %w", ErrValidation)
	}

	fresh := model.NewAppState()
	fresh.Trip = &model.Trip{
		Destination: strings.TrimSpace(in.Destination),
		StartDate:   strings.TrimSpace(in.StartDate),
		EndDate:     strings.TrimSpace(in.EndDate),
		Travelers:   travelers,
		Purpose:     strings.TrimSpace(in.Purpose),
	}
	s.state = fresh

	return s.persist()
}

// CheckPassphrase reports whether the entered gate passphrase matches the
// first three letters of the destination, case-insensitively. This is UX
// friction, not security.
func (s *Store) CheckPassphrase(entered string) bool {
	if s.state.Trip == nil {
		return false
	}
	want := Passphrase(s.state.Trip.Destination)
	return strings.ToUpper(strings.TrimSpace(entered)) == want
}

// Passphrase derives the gate passphrase for a destination.
func Passphrase(destination string) string {
	runes := []rune(destination)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}

// ActivityInput carries the raw activity form values.
type ActivityInput struct {
	Date     string
	Time     string
	Name     string
	Location string
	Category string
	Duration string
	Notes    string
}

// AddActivity appends a new itinerary entry. Date, time, name, location
// and category are required; duration defaults to 60 minutes when left
// blank; notes are optional.
func (s *Store) AddActivity(in ActivityInput) error {
	date := strings.TrimSpace(in.Date)
	timeOfDay := strings.TrimSpace(in.Time)
	name := strings.TrimSpace(in.Name)
	location := strings.TrimSpace(in.Location)
	category := strings.TrimSpace(in.Category)

	if date == "" || timeOfDay == "" || name == "" || location == "" || category == "" {
		return fmt.Errorf("all required activity fields must be filled: %w", ErrValidation)
	}

	duration := 60
	if raw := strings.TrimSpace(in.Duration); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d < 0 {
			return fmt.Errorf("duration must be a whole number of minutes: %w", ErrValidation)
		}
		duration = d
	}

	s.state.Activities = append(s.state.Activities, model.Activity{
		ID:       uuid.NewString(),
		Date:     date,
		Time:     timeOfDay,
		Name:     name,
		Location: location,
		Category: category,
		Duration: duration,
		Notes:    strings.TrimSpace(in.Notes),
	})

	return s.persist()
}

// DeleteActivity removes an activity by id. Missing ids are a silent
// no-op.
func (s *Store) DeleteActivity(id string) error {
	kept := s.state.Activities[:0]
	for _, a := range s.state.Activities {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(s.state.Activities) {
		return nil
	}
	s.state.Activities = kept
	return s.persist()
}

// Activities returns the itinerary ordered by date then time, ascending.
// The ordering is computed fresh on every read, never stored.
func (s *Store) Activities() []model.Activity {
	sorted := append([]model.Activity(nil), s.state.Activities...)
	sort.SliceStable(sorted, func(i, j int) bool {
		// ISO date + 24h time compare correctly as strings.
		return sorted[i].Date+"T"+sorted[i].Time < sorted[j].Date+"T"+sorted[j].Time
	})
	return sorted
}

// Reset clears the in-memory state back to defaults and removes the
// durable snapshot. The caller is responsible for confirming first; this
// is the only operation that empties the trip back to nil.
func (s *Store) Reset() error {
	s.state = model.NewAppState()
	return storage.Clear(s.kv)
}
