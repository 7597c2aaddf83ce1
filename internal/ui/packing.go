package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"calatorie/internal/model"
	"calatorie/internal/store"
	"calatorie/internal/util"
)

// PackingModel is the grouped packing checklist.
type PackingModel struct {
	groups [][]model.PackingItem
	flat   []model.PackingItem
	cursor int
}

// NewPackingModel snapshots the grouped packing list from the store.
func NewPackingModel(s *store.Store) *PackingModel {
	m := &PackingModel{}
	m.Refresh(s)
	return m
}

// Refresh re-reads the packing list, keeping the cursor in range.
func (m *PackingModel) Refresh(s *store.Store) {
	m.groups = s.PackingByCategory()
	m.flat = m.flat[:0]
	for _, group := range m.groups {
		m.flat = append(m.flat, group...)
	}
	if m.cursor >= len(m.flat) {
		m.cursor = max(0, len(m.flat)-1)
	}
}

// CursorUp moves the selection up.
func (m *PackingModel) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// CursorDown moves the selection down.
func (m *PackingModel) CursorDown() {
	if m.cursor < len(m.flat)-1 {
		m.cursor++
	}
}

// Selected returns the item under the cursor, or nil.
func (m *PackingModel) Selected() *model.PackingItem {
	if len(m.flat) == 0 {
		return nil
	}
	return &m.flat[m.cursor]
}

// View renders the checklist grouped by category.
func (m *PackingModel) View(width, height int) string {
	if len(m.flat) == 0 {
		return EmptyStateStyle.Render("The packing list is empty. Press G to generate it.")
	}

	packed := 0
	for _, item := range m.flat {
		if item.Packed {
			packed++
		}
	}

	var b strings.Builder
	b.WriteString(SectionTitleStyle.Render(fmt.Sprintf("Packing · %d/%d packed", packed, len(m.flat))))
	b.WriteString("\n\n")

	idx := 0
	for _, group := range m.groups {
		b.WriteString(LabelStyle.Render(strings.ToUpper(group[0].Category[:1]) + group[0].Category[1:]))
		b.WriteString("\n")
		for _, item := range group {
			line := "  " + util.Checkbox(item.Packed) + " " + item.Name
			if item.Quantity > 1 {
				line += fmt.Sprintf(" ×%d", item.Quantity)
			}

			style := NormalRowStyle
			if item.Packed {
				style = CheckedRowStyle
			}
			if idx == m.cursor {
				style = SelectedRowStyle
			}
			b.WriteString(style.Render(line))
			b.WriteString("\n")
			idx++
		}
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
