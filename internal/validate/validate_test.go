package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"calatorie/internal/validate"
)

func validInput() validate.PlanningInput {
	return validate.PlanningInput{
		Destination: "Paris",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-10",
		Travelers:   "2",
		Purpose:     "leisure",
	}
}

func TestPlanning_AllValid(t *testing.T) {
	errs := validate.NewFieldErrors()

	assert.True(t, validate.Planning(validInput(), errs))
	for _, f := range []validate.Field{
		validate.FieldDestination, validate.FieldStartDate, validate.FieldEndDate,
		validate.FieldTravelers, validate.FieldPurpose,
	} {
		assert.False(t, errs.Visible(f), "no marker expected for %s", f)
	}
}

func TestPlanning_ShortDestination(t *testing.T) {
	errs := validate.NewFieldErrors()
	in := validInput()
	in.Destination = "  Pa  " // under 3 chars after trimming

	assert.False(t, validate.Planning(in, errs))
	assert.True(t, errs.Visible(validate.FieldDestination))
	assert.False(t, errs.Visible(validate.FieldEndDate))
}

func TestPlanning_EndDateNotAfterStart(t *testing.T) {
	errs := validate.NewFieldErrors()

	in := validInput()
	in.EndDate = in.StartDate // same day is not allowed
	assert.False(t, validate.Planning(in, errs))
	assert.True(t, errs.Visible(validate.FieldEndDate))

	in.EndDate = "2025-05-20"
	assert.False(t, validate.Planning(in, errs))
	assert.True(t, errs.Visible(validate.FieldEndDate))
}

func TestPlanning_TravelersMustBePositiveInt(t *testing.T) {
	for _, bad := range []string{"", "0", "-1", "two", "1.5"} {
		errs := validate.NewFieldErrors()
		in := validInput()
		in.Travelers = bad

		assert.False(t, validate.Planning(in, errs), "travelers=%q", bad)
		assert.True(t, errs.Visible(validate.FieldTravelers), "travelers=%q", bad)
	}
}

func TestPlanning_MissingPurpose(t *testing.T) {
	errs := validate.NewFieldErrors()
	in := validInput()
	in.Purpose = "   "

	assert.False(t, validate.Planning(in, errs))
	assert.True(t, errs.Visible(validate.FieldPurpose))
}

func TestPlanning_ClearsStaleMarkers(t *testing.T) {
	errs := validate.NewFieldErrors()
	in := validInput()
	in.Destination = "Pa"
	validate.Planning(in, errs)
	assert.True(t, errs.Visible(validate.FieldDestination))

	in.Destination = "Paris"
	assert.True(t, validate.Planning(in, errs))
	assert.False(t, errs.Visible(validate.FieldDestination))
}

func TestBlur_TogglesOnlyThatField(t *testing.T) {
	errs := validate.NewFieldErrors()
	in := validInput()
	in.Destination = "Pa"
	in.Purpose = ""

	validate.Blur(validate.FieldDestination, in, errs)
	assert.True(t, errs.Visible(validate.FieldDestination))
	// Purpose is also invalid but blur only touched destination.
	assert.False(t, errs.Visible(validate.FieldPurpose))

	in.Destination = "Paris"
	validate.Blur(validate.FieldDestination, in, errs)
	assert.False(t, errs.Visible(validate.FieldDestination))
}

func TestBlur_EndDateChecksOrdering(t *testing.T) {
	errs := validate.NewFieldErrors()
	in := validInput()
	in.EndDate = "2025-06-01"

	validate.Blur(validate.FieldEndDate, in, errs)
	assert.True(t, errs.Visible(validate.FieldEndDate))

	in.EndDate = "2025-06-02"
	validate.Blur(validate.FieldEndDate, in, errs)
	assert.False(t, errs.Visible(validate.FieldEndDate))
}
