package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calatorie/internal/currency"
	"calatorie/internal/model"
	"calatorie/internal/storage"
	"calatorie/internal/store"
	"calatorie/internal/validate"
)

func newStore(t *testing.T) (*store.Store, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	return store.New(kv), kv
}

func parisInput() validate.PlanningInput {
	return validate.PlanningInput{
		Destination: "Paris",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-10",
		Travelers:   "2",
		Purpose:     "leisure",
	}
}

func createParis(t *testing.T, s *store.Store) {
	t.Helper()
	require.NoError(t, s.CreateTrip(parisInput(), validate.NewFieldErrors()))
}

// ---- trip ------------------------------------------------------------------

func TestCreateTrip_SetsTripAndResetsDependents(t *testing.T) {
	s, _ := newStore(t)

	// Dirty the state first so the reset is observable.
	createParis(t, s)
	require.NoError(t, s.GeneratePackingList())
	require.NoError(t, s.AddExpense(store.ExpenseInput{Category: "food", Description: "Dinner", Amount: "10"}))
	require.NoError(t, s.SetTotalBudget("500"))
	require.NoError(t, s.SetCurrency(currency.EUR))

	in := parisInput()
	in.Destination = "Tokyo"
	require.NoError(t, s.CreateTrip(in, validate.NewFieldErrors()))

	state := s.State()
	require.NotNil(t, state.Trip)
	assert.Equal(t, "Tokyo", state.Trip.Destination)
	assert.Equal(t, 2, state.Trip.Travelers)
	assert.Empty(t, state.Activities)
	assert.Empty(t, state.PackingItems)
	assert.Empty(t, state.Expenses)
	assert.Empty(t, state.Experiences)
	assert.Zero(t, state.TotalBudget)
	assert.Equal(t, currency.USD, state.Currency)
}

func TestCreateTrip_InvalidFormMutatesNothing(t *testing.T) {
	s, _ := newStore(t)
	createParis(t, s)

	in := parisInput()
	in.Destination = "Pa"
	errs := validate.NewFieldErrors()

	err := s.CreateTrip(in, errs)
	assert.ErrorIs(t, err, store.ErrValidation)
	assert.True(t, errs.Visible(validate.FieldDestination))
	assert.Equal(t, "Paris", s.State().Trip.Destination)
}

func TestCreateTrip_PersistsSynchronously(t *testing.T) {
	s, kv := newStore(t)
	createParis(t, s)

	reloaded := storage.Load(kv)
	require.NotNil(t, reloaded.Trip)
	assert.Equal(t, "Paris", reloaded.Trip.Destination)
}

func TestCheckPassphrase(t *testing.T) {
	s, _ := newStore(t)

	// No trip yet: nothing matches.
	assert.False(t, s.CheckPassphrase("PAR"))

	createParis(t, s)
	assert.True(t, s.CheckPassphrase("PAR"))
	assert.True(t, s.CheckPassphrase("par"))
	assert.True(t, s.CheckPassphrase("  pAr "))
	assert.False(t, s.CheckPassphrase("PAI"))
	assert.False(t, s.CheckPassphrase(""))
}

func TestPassphrase_ShortDestination(t *testing.T) {
	assert.Equal(t, "PA", store.Passphrase("Pa"))
	assert.Equal(t, "PAR", store.Passphrase("Paris"))
}

// ---- activities ------------------------------------------------------------

func activity(date, timeOfDay, name string) store.ActivityInput {
	return store.ActivityInput{
		Date:     date,
		Time:     timeOfDay,
		Name:     name,
		Location: "Centre",
		Category: "sightseeing",
		Duration: "90",
	}
}

func TestAddActivity_RequiredFields(t *testing.T) {
	s, _ := newStore(t)

	for name, in := range map[string]store.ActivityInput{
		"no date":     activity("", "10:00", "Louvre"),
		"no time":     activity("2025-06-02", "", "Louvre"),
		"no name":     activity("2025-06-02", "10:00", "  "),
		"no location": {Date: "2025-06-02", Time: "10:00", Name: "Louvre", Category: "c"},
		"no category": {Date: "2025-06-02", Time: "10:00", Name: "Louvre", Location: "l"},
	} {
		err := s.AddActivity(in)
		assert.ErrorIs(t, err, store.ErrValidation, name)
	}
	assert.Empty(t, s.State().Activities)
}

func TestAddActivity_DurationDefaultsAndParses(t *testing.T) {
	s, _ := newStore(t)

	in := activity("2025-06-02", "10:00", "Louvre")
	in.Duration = ""
	require.NoError(t, s.AddActivity(in))
	assert.Equal(t, 60, s.State().Activities[0].Duration)

	in.Duration = "45"
	require.NoError(t, s.AddActivity(in))
	assert.Equal(t, 45, s.State().Activities[1].Duration)

	in.Duration = "soon"
	assert.ErrorIs(t, s.AddActivity(in), store.ErrValidation)
}

func TestActivities_SortedByDateThenTime(t *testing.T) {
	s, _ := newStore(t)

	// Insert deliberately out of order.
	require.NoError(t, s.AddActivity(activity("2025-06-03", "09:00", "third")))
	require.NoError(t, s.AddActivity(activity("2025-06-02", "15:00", "second")))
	require.NoError(t, s.AddActivity(activity("2025-06-02", "08:30", "first")))
	require.NoError(t, s.AddActivity(activity("2025-06-04", "07:00", "fourth")))

	var names []string
	for _, a := range s.Activities() {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"first", "second", "third", "fourth"}, names)

	// Stored order is untouched; the sort is computed per read.
	assert.Equal(t, "third", s.State().Activities[0].Name)
}

func TestDeleteActivity_MissingIDIsNoOp(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.AddActivity(activity("2025-06-02", "10:00", "Louvre")))

	require.NoError(t, s.DeleteActivity("no-such-id"))
	assert.Len(t, s.State().Activities, 1)

	require.NoError(t, s.DeleteActivity(s.State().Activities[0].ID))
	assert.Empty(t, s.State().Activities)
}

// ---- packing ---------------------------------------------------------------

func TestGeneratePackingList_FixedCatalog(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.GeneratePackingList())

	items := s.State().PackingItems
	assert.Len(t, items, 30)

	perCategory := map[string]int{}
	ids := map[int]bool{}
	for _, item := range items {
		perCategory[item.Category]++
		assert.False(t, item.Packed)
		assert.Equal(t, 1, item.Quantity)
		assert.False(t, ids[item.ID], "duplicate id %d", item.ID)
		ids[item.ID] = true
	}
	assert.Equal(t, map[string]int{
		store.PackingDocuments:   5,
		store.PackingClothing:    5,
		store.PackingToiletries:  6,
		store.PackingElectronics: 5,
		store.PackingAccessories: 5,
		store.PackingMedications: 4,
	}, perCategory)
}

func TestGeneratePackingList_RegenerationResetsCustomization(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.GeneratePackingList())

	first := s.State().PackingItems
	require.NoError(t, s.TogglePackingItem(first[0].ID))
	require.NoError(t, s.DeletePackingItem(first[1].ID))
	require.Len(t, s.State().PackingItems, 29)

	require.NoError(t, s.GeneratePackingList())

	regenerated := s.State().PackingItems
	assert.Len(t, regenerated, 30)
	var names []string
	for _, item := range regenerated {
		assert.False(t, item.Packed)
		names = append(names, item.Name)
	}
	var firstNames []string
	for _, item := range first {
		firstNames = append(firstNames, item.Name)
	}
	assert.Equal(t, firstNames, names)
}

func TestTogglePackingItem(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.GeneratePackingList())
	id := s.State().PackingItems[0].ID

	require.NoError(t, s.TogglePackingItem(id))
	assert.True(t, s.State().PackingItems[0].Packed)
	require.NoError(t, s.TogglePackingItem(id))
	assert.False(t, s.State().PackingItems[0].Packed)

	// Absent id: nothing changes.
	require.NoError(t, s.TogglePackingItem(-1))
	assert.False(t, s.State().PackingItems[0].Packed)
}

func TestDeletePackingItem_MissingIDIsNoOp(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.GeneratePackingList())

	require.NoError(t, s.DeletePackingItem(9999))
	assert.Len(t, s.State().PackingItems, 30)
}

func TestPackingByCategory_CatalogOrder(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.GeneratePackingList())

	groups := s.PackingByCategory()
	require.Len(t, groups, 6)
	assert.Equal(t, store.PackingDocuments, groups[0][0].Category)
	assert.Equal(t, store.PackingMedications, groups[5][0].Category)
}

// ---- budget ----------------------------------------------------------------

func TestAddExpense_Valid(t *testing.T) {
	s, _ := newStore(t)

	require.NoError(t, s.AddExpense(store.ExpenseInput{
		Category:    "food",
		Description: "Dinner",
		Amount:      "42.50",
	}))

	require.Len(t, s.State().Expenses, 1)
	e := s.State().Expenses[0]
	assert.NotEmpty(t, e.ID)
	assert.InDelta(t, 42.50, e.Amount, 1e-9)
	assert.Equal(t, model.ExpensePlanned, e.Status)
}

func TestAddExpense_RejectsZeroAndNegativeAmounts(t *testing.T) {
	s, _ := newStore(t)

	for _, amount := range []string{"0", "-5", "", "abc"} {
		err := s.AddExpense(store.ExpenseInput{Category: "food", Description: "Dinner", Amount: amount})
		assert.ErrorIs(t, err, store.ErrValidation, "amount=%q", amount)
	}
	assert.Empty(t, s.State().Expenses)
}

func TestToggleExpenseStatus(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.AddExpense(store.ExpenseInput{Category: "food", Description: "Dinner", Amount: "10"}))
	id := s.State().Expenses[0].ID

	require.NoError(t, s.ToggleExpenseStatus(id))
	assert.Equal(t, model.ExpenseSpent, s.State().Expenses[0].Status)
	require.NoError(t, s.ToggleExpenseStatus(id))
	assert.Equal(t, model.ExpensePlanned, s.State().Expenses[0].Status)

	require.NoError(t, s.ToggleExpenseStatus("missing"))
}

func TestSetTotalBudget(t *testing.T) {
	s, _ := newStore(t)

	require.NoError(t, s.SetTotalBudget("100"))
	assert.InDelta(t, 100.0, s.State().TotalBudget, 1e-9)

	for _, bad := range []string{"0", "-1", "much"} {
		assert.ErrorIs(t, s.SetTotalBudget(bad), store.ErrValidation, "budget=%q", bad)
	}
	assert.InDelta(t, 100.0, s.State().TotalBudget, 1e-9)
}

func TestSetCurrency(t *testing.T) {
	s, _ := newStore(t)

	require.NoError(t, s.SetCurrency(currency.RON))
	assert.Equal(t, currency.RON, s.State().Currency)

	assert.ErrorIs(t, s.SetCurrency(currency.Code("XXX")), store.ErrValidation)
	assert.Equal(t, currency.RON, s.State().Currency)
}

func TestSummary_EURScenario(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.SetTotalBudget("100"))
	require.NoError(t, s.SetCurrency(currency.EUR))
	require.NoError(t, s.AddExpense(store.ExpenseInput{Category: "food", Description: "Dinner", Amount: "42.50"}))

	sum := s.Summary()
	assert.InDelta(t, 100.0, sum.Total, 1e-9)
	assert.InDelta(t, 42.50, sum.Spent, 1e-9)
	assert.InDelta(t, 57.50, sum.Remaining, 1e-9)

	// Display conversion per the fixed EUR rate.
	assert.Equal(t, "€39.10", currency.Format(currency.Convert(sum.Spent, currency.EUR), currency.EUR))
	assert.Equal(t, "€52.90", currency.Format(currency.Convert(sum.Remaining, currency.EUR), currency.EUR))
}

func TestSummary_CountsAllStatuses(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.AddExpense(store.ExpenseInput{Category: "food", Description: "a", Amount: "10"}))
	require.NoError(t, s.AddExpense(store.ExpenseInput{Category: "food", Description: "b", Amount: "20"}))
	require.NoError(t, s.ToggleExpenseStatus(s.State().Expenses[0].ID))

	assert.InDelta(t, 30.0, s.Summary().Spent, 1e-9)
}

// ---- experiences -----------------------------------------------------------

func TestAddExperience(t *testing.T) {
	s, _ := newStore(t)

	in := store.ExperienceInput{
		Name:        "Street food tour",
		Type:        model.ExperienceAuthentic,
		Description: "Night market crawl",
		Location:    "Bangkok",
		Rating:      "5",
	}
	require.NoError(t, s.AddExperience(in))
	assert.Equal(t, 5, s.State().Experiences[0].Rating)

	// Blank rating defaults to 3.
	in.Rating = ""
	require.NoError(t, s.AddExperience(in))
	assert.Equal(t, 3, s.State().Experiences[1].Rating)
}

func TestAddExperience_Rejections(t *testing.T) {
	s, _ := newStore(t)

	base := store.ExperienceInput{
		Name:        "Tour",
		Type:        model.ExperienceTourist,
		Description: "d",
		Location:    "l",
	}

	in := base
	in.Name = ""
	assert.ErrorIs(t, s.AddExperience(in), store.ErrValidation)

	in = base
	in.Type = "other"
	assert.ErrorIs(t, s.AddExperience(in), store.ErrValidation)

	in = base
	in.Rating = "6"
	assert.ErrorIs(t, s.AddExperience(in), store.ErrValidation)

	in = base
	in.Rating = "0"
	assert.ErrorIs(t, s.AddExperience(in), store.ErrValidation)

	assert.Empty(t, s.State().Experiences)
}

func TestDeleteExperience_MissingIDIsNoOp(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.AddExperience(store.ExperienceInput{
		Name: "Tour", Type: model.ExperienceMixed, Description: "d", Location: "l",
	}))

	require.NoError(t, s.DeleteExperience("missing"))
	assert.Len(t, s.State().Experiences, 1)
}

// ---- reset -----------------------------------------------------------------

func TestReset_ClearsStateAndStorage(t *testing.T) {
	s, kv := newStore(t)
	createParis(t, s)
	require.NoError(t, s.GeneratePackingList())

	require.NoError(t, s.Reset())

	assert.Nil(t, s.State().Trip)
	assert.Empty(t, s.State().PackingItems)

	data, err := kv.Get(storage.StateKey)
	require.NoError(t, err)
	assert.Nil(t, data)

	// A fresh store sees nothing either.
	assert.Nil(t, store.New(kv).State().Trip)
}

// ---- persistence contract --------------------------------------------------

func TestEveryMutationPersists(t *testing.T) {
	s, kv := newStore(t)
	createParis(t, s)

	require.NoError(t, s.AddActivity(activity("2025-06-02", "10:00", "Louvre")))
	require.NoError(t, s.GeneratePackingList())
	require.NoError(t, s.TogglePackingItem(s.State().PackingItems[0].ID))
	require.NoError(t, s.AddExpense(store.ExpenseInput{Category: "food", Description: "Dinner", Amount: "12"}))
	require.NoError(t, s.SetTotalBudget("300"))
	require.NoError(t, s.SetCurrency(currency.JPY))
	require.NoError(t, s.AddExperience(store.ExperienceInput{
		Name: "Tour", Type: model.ExperienceTourist, Description: "d", Location: "l",
	}))

	reloaded := store.New(kv).State()
	assert.Len(t, reloaded.Activities, 1)
	assert.Len(t, reloaded.PackingItems, 30)
	assert.True(t, reloaded.PackingItems[0].Packed)
	assert.Len(t, reloaded.Expenses, 1)
	assert.InDelta(t, 300.0, reloaded.TotalBudget, 1e-9)
	assert.Equal(t, currency.JPY, reloaded.Currency)
	assert.Len(t, reloaded.Experiences, 1)
}
