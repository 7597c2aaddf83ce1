package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"calatorie/internal/model"
	"calatorie/internal/store"
	"calatorie/internal/util"
)

const mapColumns = 5

// MapPoint is one activity placed on the synthetic map grid. Positions
// follow itinerary order, not geography.
type MapPoint struct {
	Index    int
	Col      int
	Row      int
	Name     string
	Location string
	Date     string
	Time     string
}

// ComputeMapLayout places activities on a fixed-width grid in
// chronological order, five points per row.
func ComputeMapLayout(activities []model.Activity) []MapPoint {
	points := make([]MapPoint, 0, len(activities))
	for i, a := range activities {
		points = append(points, MapPoint{
			Index:    i + 1,
			Col:      i % mapColumns,
			Row:      i / mapColumns,
			Name:     a.Name,
			Location: a.Location,
			Date:     a.Date,
			Time:     a.Time,
		})
	}
	return points
}

// MapModel is the schematic activity map. The layout is derived from
// the itinerary on every entry and never stored.
type MapModel struct {
	destination string
	points      []MapPoint
}

// NewMapModel computes the layout from the current itinerary.
func NewMapModel(s *store.Store) *MapModel {
	dest := ""
	if trip := s.State().Trip; trip != nil {
		dest = trip.Destination
	}
	return &MapModel{
		destination: dest,
		points:      ComputeMapLayout(s.Activities()),
	}
}

// View renders the grid and the timeline beneath it.
func (m *MapModel) View(width, height int) string {
	if len(m.points) == 0 {
		return EmptyStateStyle.Render("The map fills in as you add activities to the itinerary.")
	}

	var b strings.Builder
	title := "Activity map"
	if m.destination != "" {
		title += " · " + m.destination
	}
	b.WriteString(SectionTitleStyle.Render(title))
	b.WriteString("\n\n")

	rows := (len(m.points) + mapColumns - 1) / mapColumns
	for row := 0; row < rows; row++ {
		var circles []string
		var labels []string
		for col := 0; col < mapColumns; col++ {
			idx := row*mapColumns + col
			if idx >= len(m.points) {
				break
			}
			p := m.points[idx]
			circle := MapCircleStyle.Render(strconv.Itoa(p.Index))
			label := MapLabelStyle.Render(util.TruncateString(p.Location, 12))
			cell := lipgloss.NewStyle().Width(16).Align(lipgloss.Center)
			circles = append(circles, cell.Render(circle))
			labels = append(labels, cell.Render(label))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, circles...))
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labels...))
		b.WriteString("\n\n")
	}

	b.WriteString(SectionTitleStyle.Render("Timeline"))
	b.WriteString("\n")
	for _, p := range m.points {
		b.WriteString(MapCircleStyle.Render(strconv.Itoa(p.Index)))
		b.WriteString(" ")
		b.WriteString(NormalRowStyle.Render(p.Name))
		b.WriteString(HelpDescStyle.Render("  " + util.FormatDate(p.Date) + " " + p.Time + " · " + p.Location))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
