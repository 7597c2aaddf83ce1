package validate

import (
	"strconv"
	"strings"
	"time"
)

// Field names a planning-form field with a validation rule.
type Field string

const (
	FieldDestination Field = "destination"
	FieldStartDate   Field = "startDate"
	FieldEndDate     Field = "endDate"
	FieldTravelers   Field = "travelers"
	FieldPurpose     Field = "purpose"
)

// FieldErrors holds the visible error marker per field. Markers persist
// until the same field re-validates clean; validation never throws, it
// only flips these.
type FieldErrors map[Field]bool

// NewFieldErrors returns an empty marker set.
func NewFieldErrors() FieldErrors {
	return make(FieldErrors)
}

// Visible reports whether the field's error marker is showing.
func (e FieldErrors) Visible(f Field) bool {
	return e[f]
}

func (e FieldErrors) set(f Field, show bool) {
	if show {
		e[f] = true
	} else {
		delete(e, f)
	}
}

// PlanningInput carries the raw form values. Everything arrives as a
// string; parsing is the validator's job.
type PlanningInput struct {
	Destination string
	StartDate   string // YYYY-MM-DD
	EndDate     string
	Travelers   string
	Purpose     string
}

const dateLayout = "2006-01-02"

// Planning runs the full form validation, updating every field's marker.
// Returns true only when all fields pass.
func Planning(in PlanningInput, errs FieldErrors) bool {
	valid := true
	for _, f := range []Field{FieldDestination, FieldStartDate, FieldEndDate, FieldTravelers, FieldPurpose} {
		if !check(f, in) {
			errs.set(f, true)
			valid = false
		} else {
			errs.set(f, false)
		}
	}
	return valid
}

// Blur re-validates a single field on focus loss and updates only its
// marker. It never blocks further input.
func Blur(f Field, in PlanningInput, errs FieldErrors) {
	errs.set(f, !check(f, in))
}

func check(f Field, in PlanningInput) bool {
	switch f {
	case FieldDestination:
		return len(strings.TrimSpace(in.Destination)) >= 3
	case FieldStartDate:
		return parseDate(in.StartDate) != nil
	case FieldEndDate:
		end := parseDate(in.EndDate)
		if end == nil {
			return false
		}
		start := parseDate(in.StartDate)
		// End date must be strictly after the start date.
		return start == nil || end.After(*start)
	case FieldTravelers:
		n, err := strconv.Atoi(strings.TrimSpace(in.Travelers))
		return err == nil && n >= 1
	case FieldPurpose:
		return strings.TrimSpace(in.Purpose) != ""
	}
	return true
}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
