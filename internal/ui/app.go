package ui

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calatorie/internal/model"
	"calatorie/internal/store"
)

// confirmDialog is a blocking yes/no prompt. accept runs synchronously
// when the user confirms.
type confirmDialog struct {
	prompt string
	accept func() tea.Msg
}

// Internal messages produced by confirm dialogs.
type packingGeneratedMsg struct{}
type planResetMsg struct{}

// Model is the root Bubble Tea model. It owns section switching, the
// passphrase gate state and the dialog overlays; all data flows through
// the store.
type Model struct {
	store  *store.Store
	screen model.Screen
	mode   model.Mode

	width  int
	height int

	error       string
	info        string
	alert       string
	confirm     *confirmDialog
	showingHelp bool

	// unlocked is the session gate: the itinerary stays locked until the
	// destination passphrase is entered. Never persisted.
	unlocked bool

	// Screen models
	planning       *PlanningModel
	login          *LoginModel
	itinerary      *ItineraryModel
	mapView        *MapModel
	packing        *PackingModel
	budget         *BudgetModel
	experiences    *ExperiencesModel
	activityForm   *ActivityFormModel
	expenseForm    *ExpenseFormModel
	experienceForm *ExperienceFormModel
}

// New creates the root model from a loaded store.
func New(s *store.Store) Model {
	m := Model{
		store:  s,
		screen: model.ScreenPlanning,
		mode:   model.ModeInsert,
	}
	m.planning = NewPlanningModel(s)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("calatorie")
}

// sections is the tab order. Exactly one section is visible at a time.
var sections = []struct {
	name   string
	screen model.Screen
}{
	{"Planning", model.ScreenPlanning},
	{"Itinerary", model.ScreenItinerary},
	{"Map", model.ScreenMap},
	{"Packing", model.ScreenPacking},
	{"Budget", model.ScreenBudget},
	{"Experiences", model.ScreenExperiences},
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Ctrl+c always quits.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Blocking dialogs eat all input until acknowledged.
		if m.alert != "" {
			m.alert = ""
			return m, nil
		}
		if m.confirm != nil {
			return m.handleConfirm(msg)
		}

		if msg.String() == "?" && m.mode == model.ModeNav {
			m.showingHelp = !m.showingHelp
			return m, nil
		}
		if m.showingHelp {
			if msg.String() == "esc" || msg.String() == "?" {
				m.showingHelp = false
			}
			return m, nil
		}

		if m.mode == model.ModeNav {
			return m.handleNavMode(msg)
		}
		return m.handleInsertMode(msg)

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		return m, nil

	case model.AlertMsg:
		m.alert = msg.Text
		return m, nil

	case model.TripCreatedMsg:
		// A new trip discards everything; itinerary locks behind the gate.
		m.unlocked = false
		m.screen = model.ScreenLogin
		m.mode = model.ModeInsert
		m.login = NewLoginModel(m.store)
		m.planning = NewPlanningModel(m.store)
		m.error = ""
		m.info = "Trip saved. Enter the passphrase to open the itinerary."
		return m, nil

	case model.TripUnlockedMsg:
		m.unlocked = true
		m.login = nil
		m.screen = model.ScreenItinerary
		m.mode = model.ModeNav
		m.itinerary = NewItineraryModel(m.store)
		trip := m.store.State().Trip
		m.info = "Welcome! Your trip: " + trip.Destination
		return m, nil

	case model.ActivitySavedMsg:
		m.activityForm = nil
		m.screen = model.ScreenItinerary
		m.mode = model.ModeNav
		m.itinerary = NewItineraryModel(m.store)
		m.info = "Activity added"
		return m, nil

	case model.ExpenseSavedMsg:
		m.expenseForm = nil
		m.screen = model.ScreenBudget
		m.mode = model.ModeNav
		m.budget = NewBudgetModel(m.store)
		m.info = "Expense added"
		return m, nil

	case model.ExperienceSavedMsg:
		m.experienceForm = nil
		m.screen = model.ScreenExperiences
		m.mode = model.ModeNav
		m.experiences = NewExperiencesModel(m.store)
		m.info = "Experience added"
		return m, nil

	case model.FormCancelledMsg:
		return m.handleFormCancel()

	case packingGeneratedMsg:
		m.packing = NewPackingModel(m.store)
		m.alert = "Packing list generated automatically!"
		return m, nil

	case planResetMsg:
		m.unlocked = false
		m.planning = NewPlanningModel(m.store)
		m.itinerary = nil
		m.mapView = nil
		m.packing = nil
		m.budget = nil
		m.experiences = nil
		m.screen = model.ScreenPlanning
		m.mode = model.ModeInsert
		m.alert = "Plan reset! You can enter a new trip."
		return m, nil
	}

	// Cursor blink ticks and the like still reach the active input.
	if m.mode == model.ModeInsert {
		return m.handleInsertMode(msg)
	}
	return m, nil
}

func (m Model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		accept := m.confirm.accept
		m.confirm = nil
		return m, accept
	case "n", "N", "esc":
		m.confirm = nil
		m.info = "Cancelled"
		return m, nil
	}
	return m, nil
}

func (m Model) handleFormCancel() (tea.Model, tea.Cmd) {
	switch m.screen {
	case model.ScreenPlanning:
		// Leaving edit mode, staying on the planning section.
		m.mode = model.ModeNav
	case model.ScreenLogin:
		m.login = nil
		m.screen = model.ScreenPlanning
		m.mode = model.ModeNav
	case model.ScreenActivityForm:
		m.activityForm = nil
		m.screen = model.ScreenItinerary
		m.mode = model.ModeNav
	case model.ScreenExpenseForm:
		m.expenseForm = nil
		m.screen = model.ScreenBudget
		m.mode = model.ModeNav
	case model.ScreenExperienceForm:
		m.experienceForm = nil
		m.screen = model.ScreenExperiences
		m.mode = model.ModeNav
	}
	return m, nil
}

// switchSection makes target the one visible section. Entering the
// itinerary while a trip exists and the gate is still locked routes
// through the passphrase screen instead.
func (m *Model) switchSection(target model.Screen) {
	if target == model.ScreenItinerary && m.store.State().Trip != nil && !m.unlocked {
		m.screen = model.ScreenLogin
		m.mode = model.ModeInsert
		m.login = NewLoginModel(m.store)
		return
	}

	m.screen = target
	m.mode = model.ModeNav
	m.error = ""

	switch target {
	case model.ScreenPlanning:
		if m.planning == nil {
			m.planning = NewPlanningModel(m.store)
		}
	case model.ScreenItinerary:
		m.itinerary = NewItineraryModel(m.store)
	case model.ScreenMap:
		// The synthetic layout is recomputed on every entry.
		m.mapView = NewMapModel(m.store)
	case model.ScreenPacking:
		m.packing = NewPackingModel(m.store)
	case model.ScreenBudget:
		m.budget = NewBudgetModel(m.store)
	case model.ScreenExperiences:
		m.experiences = NewExperiencesModel(m.store)
	}
}

func sectionIndex(screen model.Screen) int {
	for i, s := range sections {
		if s.screen == screen {
			return i
		}
	}
	return -1
}

// handleNavMode handles navigation mode input.
func (m Model) handleNavMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Banners show until the next keypress.
	m.info = ""
	m.error = ""

	// Tab switching works from every section.
	if idx := sectionIndex(m.screen); idx >= 0 {
		switch key {
		case "q":
			return m, tea.Quit
		case "left", "h":
			m.switchSection(sections[(idx+len(sections)-1)%len(sections)].screen)
			return m, nil
		case "right", "l":
			m.switchSection(sections[(idx+1)%len(sections)].screen)
			return m, nil
		}
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(sections) {
			m.switchSection(sections[n-1].screen)
			return m, nil
		}
	}

	switch m.screen {
	case model.ScreenPlanning:
		return m.handlePlanningNav(msg)
	case model.ScreenItinerary:
		return m.handleItineraryNav(msg)
	case model.ScreenMap:
		return m, nil
	case model.ScreenPacking:
		return m.handlePackingNav(msg)
	case model.ScreenBudget:
		return m.handleBudgetNav(msg)
	case model.ScreenExperiences:
		return m.handleExperiencesNav(msg)
	}

	return m, nil
}

func (m Model) handlePlanningNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "i", "enter":
		m.mode = model.ModeInsert
		return m, nil
	case "ctrl+x":
		s := m.store
		m.confirm = &confirmDialog{
			prompt: "Are you sure? You will lose ALL trip data (activities, packing, budget, experiences).",
			accept: func() tea.Msg {
				if err := s.Reset(); err != nil {
					return model.ErrorMsg{Err: err}
				}
				return planResetMsg{}
			},
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleItineraryNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.itinerary == nil {
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		m.itinerary.CursorDown()
	case "k", "up":
		m.itinerary.CursorUp()
	case "a":
		m.mode = model.ModeInsert
		m.screen = model.ScreenActivityForm
		m.activityForm = NewActivityFormModel(m.store)
	case "d":
		if a := m.itinerary.Selected(); a != nil {
			if err := m.store.DeleteActivity(a.ID); err != nil {
				m.error = err.Error()
				return m, nil
			}
			m.itinerary = NewItineraryModel(m.store)
			m.info = "Activity deleted"
		}
	}
	return m, nil
}

func (m Model) handlePackingNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.packing == nil {
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		m.packing.CursorDown()
	case "k", "up":
		m.packing.CursorUp()
	case " ":
		if item := m.packing.Selected(); item != nil {
			if err := m.store.TogglePackingItem(item.ID); err != nil {
				m.error = err.Error()
				return m, nil
			}
			m.packing.Refresh(m.store)
		}
	case "d":
		if item := m.packing.Selected(); item != nil {
			if err := m.store.DeletePackingItem(item.ID); err != nil {
				m.error = err.Error()
				return m, nil
			}
			m.packing.Refresh(m.store)
			m.info = "Item removed"
		}
	case "G":
		s := m.store
		m.confirm = &confirmDialog{
			prompt: "Generate the packing list? This replaces the current list and unchecks everything.",
			accept: func() tea.Msg {
				if err := s.GeneratePackingList(); err != nil {
					return model.ErrorMsg{Err: err}
				}
				return packingGeneratedMsg{}
			},
		}
	}
	return m, nil
}

func (m Model) handleBudgetNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.budget == nil {
		return m, nil
	}

	// The inline budget input captures keys while editing.
	if m.budget.Editing() {
		cmd := m.budget.UpdateEditing(msg)
		return m, cmd
	}

	switch msg.String() {
	case "j", "down":
		m.budget.CursorDown()
	case "k", "up":
		m.budget.CursorUp()
	case "a":
		m.mode = model.ModeInsert
		m.screen = model.ScreenExpenseForm
		m.expenseForm = NewExpenseFormModel(m.store)
	case "d":
		if e := m.budget.Selected(); e != nil {
			if err := m.store.DeleteExpense(e.ID); err != nil {
				m.error = err.Error()
				return m, nil
			}
			m.budget.Refresh(m.store)
			m.info = "Expense deleted"
		}
	case "t":
		if e := m.budget.Selected(); e != nil {
			if err := m.store.ToggleExpenseStatus(e.ID); err != nil {
				m.error = err.Error()
				return m, nil
			}
			m.budget.Refresh(m.store)
		}
	case "c":
		next := m.budget.NextCurrency()
		if err := m.store.SetCurrency(next); err != nil {
			m.error = err.Error()
			return m, nil
		}
		m.budget.Refresh(m.store)
		m.info = "Display currency: " + string(next)
	case "b":
		m.budget.StartEditing()
	}
	return m, nil
}

func (m Model) handleExperiencesNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.experiences == nil {
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		m.experiences.CursorDown()
	case "k", "up":
		m.experiences.CursorUp()
	case "a":
		m.mode = model.ModeInsert
		m.screen = model.ScreenExperienceForm
		m.experienceForm = NewExperienceFormModel(m.store)
	case "d":
		if e := m.experiences.Selected(); e != nil {
			if err := m.store.DeleteExperience(e.ID); err != nil {
				m.error = err.Error()
				return m, nil
			}
			m.experiences = NewExperiencesModel(m.store)
			m.info = "Experience deleted"
		}
	}
	return m, nil
}

// handleInsertMode handles insert/edit mode input.
func (m Model) handleInsertMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case model.ScreenPlanning:
		if m.planning != nil {
			newForm, cmd := m.planning.Update(msg)
			m.planning = &newForm
			return m, cmd
		}
	case model.ScreenLogin:
		if m.login != nil {
			newForm, cmd := m.login.Update(msg)
			m.login = &newForm
			return m, cmd
		}
	case model.ScreenActivityForm:
		if m.activityForm != nil {
			newForm, cmd := m.activityForm.Update(msg)
			m.activityForm = &newForm
			return m, cmd
		}
	case model.ScreenExpenseForm:
		if m.expenseForm != nil {
			newForm, cmd := m.expenseForm.Update(msg)
			m.expenseForm = &newForm
			return m, cmd
		}
	case model.ScreenExperienceForm:
		if m.experienceForm != nil {
			newForm, cmd := m.experienceForm.Update(msg)
			m.experienceForm = &newForm
			return m, cmd
		}
	}
	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	if m.alert != "" {
		return m.renderDialog(m.alert, "press any key")
	}
	if m.confirm != nil {
		return m.renderDialog(m.confirm.prompt, "y confirm · n cancel")
	}

	var content string
	var breadcrumbParts []string

	showTabs := sectionIndex(m.screen) >= 0

	contentHeight := m.height - 4
	if showTabs {
		contentHeight -= 2
	}

	switch m.screen {
	case model.ScreenPlanning:
		breadcrumbParts = []string{"Planning"}
		content = m.planning.View(m.width, contentHeight, m.mode)
	case model.ScreenLogin:
		breadcrumbParts = []string{"Planning", "Unlock"}
		if m.login != nil {
			content = m.login.View(m.width, contentHeight)
		}
	case model.ScreenItinerary:
		breadcrumbParts = []string{"Itinerary"}
		if m.itinerary != nil {
			content = m.itinerary.View(m.width, contentHeight)
		}
	case model.ScreenMap:
		breadcrumbParts = []string{"Map"}
		if m.mapView != nil {
			content = m.mapView.View(m.width, contentHeight)
		}
	case model.ScreenPacking:
		breadcrumbParts = []string{"Packing"}
		if m.packing != nil {
			content = m.packing.View(m.width, contentHeight)
		}
	case model.ScreenBudget:
		breadcrumbParts = []string{"Budget"}
		if m.budget != nil {
			content = m.budget.View(m.width, contentHeight)
		}
	case model.ScreenExperiences:
		breadcrumbParts = []string{"Experiences"}
		if m.experiences != nil {
			content = m.experiences.View(m.width, contentHeight)
		}
	case model.ScreenActivityForm:
		breadcrumbParts = []string{"Itinerary", "New activity"}
		if m.activityForm != nil {
			content = m.activityForm.View(m.width, contentHeight)
		}
	case model.ScreenExpenseForm:
		breadcrumbParts = []string{"Budget", "New expense"}
		if m.expenseForm != nil {
			content = m.expenseForm.View(m.width, contentHeight)
		}
	case model.ScreenExperienceForm:
		breadcrumbParts = []string{"Experiences", "New experience"}
		if m.experienceForm != nil {
			content = m.experienceForm.View(m.width, contentHeight)
		}
	}

	header := m.renderHeader(breadcrumbParts)
	footer := RenderHelp(m.screen, m.mode, m.width)

	content = lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Render(content)

	parts := []string{header}
	if showTabs {
		parts = append(parts, m.renderTabs())
	}
	if m.error != "" {
		parts = append(parts, ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		parts = append(parts, SuccessStyle.Width(m.width).Render(m.info))
	}
	parts = append(parts, content, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderDialog(prompt, hint string) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Width(min(60, m.width-10)).Render(prompt),
		"",
		HelpDescStyle.Render(hint),
	)
	dialog := DialogStyle.Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}

func (m Model) renderTabs() string {
	locked := m.store.State().Trip != nil && !m.unlocked

	var tabStrings []string
	for _, tab := range sections {
		label := tab.name
		if tab.screen == model.ScreenItinerary && locked {
			label += " 🔒"
		}

		tabStyle := lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)
		if m.screen == tab.screen {
			tabStyle = tabStyle.
				Foreground(ColorText).
				Bold(true).
				Underline(true)
		}
		tabStrings = append(tabStrings, tabStyle.Render(label))
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Left, tabStrings...)
	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(tabBar)
}

func (m Model) renderHeader(breadcrumbParts []string) string {
	title := HeaderStyle.Render("calatorie")

	var breadcrumb string
	if len(breadcrumbParts) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}

	left := "  " + title + breadcrumb

	right := ""
	if trip := m.store.State().Trip; trip != nil {
		right = BreadcrumbStyle.Render(trip.Destination) + "  "
	} else {
		right = BreadcrumbStyle.Render(time.Now().Format("Mon 02 Jan")) + "  "
	}

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := m.width - leftLen - rightLen
	if padding < 0 {
		padding = 0
	}

	return TitleStyle.Width(m.width).Render(left + strings.Repeat(" ", padding) + right)
}
