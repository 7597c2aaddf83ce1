package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"calatorie/internal/model"
)

func renderBindings(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, HelpKeyStyle.Render(h.Key)+" "+HelpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, HelpDescStyle.Render(" · "))
}

// RenderHelp renders the contextual footer line for a screen.
func RenderHelp(screen model.Screen, mode model.Mode, width int) string {
	keys := DefaultKeyMap()
	formKeys := DefaultFormKeyMap()

	var line string
	switch screen {
	case model.ScreenPlanning:
		if mode == model.ModeInsert {
			line = renderBindings(formKeys.NextField, formKeys.PrevField, formKeys.Save, formKeys.Cancel)
		} else {
			line = renderBindings(
				key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "edit")),
				keys.PrevTab, keys.NextTab, keys.Reset, keys.Help, keys.Quit,
			)
		}
	case model.ScreenLogin:
		line = renderBindings(
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "unlock")),
			formKeys.Cancel,
		)
	case model.ScreenItinerary:
		line = renderBindings(keys.Up, keys.Down, keys.Add, keys.Delete, keys.PrevTab, keys.NextTab, keys.Help, keys.Quit)
	case model.ScreenMap:
		line = renderBindings(keys.PrevTab, keys.NextTab, keys.Help, keys.Quit)
	case model.ScreenPacking:
		line = renderBindings(keys.Up, keys.Down, keys.Toggle, keys.Generate, keys.Delete, keys.Help, keys.Quit)
	case model.ScreenBudget:
		line = renderBindings(keys.Add, keys.Delete, keys.Status, keys.Budget, keys.Currency, keys.Help, keys.Quit)
	case model.ScreenExperiences:
		line = renderBindings(keys.Up, keys.Down, keys.Add, keys.Delete, keys.Help, keys.Quit)
	case model.ScreenActivityForm, model.ScreenExpenseForm, model.ScreenExperienceForm:
		line = renderBindings(formKeys.NextField, formKeys.PrevField, formKeys.Save, formKeys.Cancel)
	}

	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full-screen key reference.
func RenderFullHelp(width, height int) string {
	keys := DefaultKeyMap()
	formKeys := DefaultFormKeyMap()

	section := func(title string, body string) string {
		return SectionTitleStyle.Render(title) + "\n" + body
	}

	var b strings.Builder
	b.WriteString(section("Navigation",
		renderBindings(keys.PrevTab, keys.NextTab)+"\n"+
			renderBindings(key.NewBinding(key.WithKeys("1"), key.WithHelp("1-6", "jump to section")))+"\n"+
			renderBindings(keys.Up, keys.Down)))
	b.WriteString("\n\n")
	b.WriteString(section("Lists",
		renderBindings(keys.Add, keys.Delete, keys.Toggle)))
	b.WriteString("\n\n")
	b.WriteString(section("Packing",
		renderBindings(keys.Generate)))
	b.WriteString("\n\n")
	b.WriteString(section("Budget",
		renderBindings(keys.Budget, keys.Currency, keys.Status)))
	b.WriteString("\n\n")
	b.WriteString(section("Forms",
		renderBindings(formKeys.NextField, formKeys.PrevField, formKeys.Save, formKeys.Cancel)))
	b.WriteString("\n\n")
	b.WriteString(section("General",
		renderBindings(keys.Reset, keys.Help, keys.Quit)))
	b.WriteString("\n\n")
	b.WriteString(HelpDescStyle.Render("esc or ? to close"))

	box := PanelStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
