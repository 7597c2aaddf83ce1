package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calatorie/internal/model"
	"calatorie/internal/ui"
)

func activities(n int) []model.Activity {
	out := make([]model.Activity, n)
	for i := range out {
		out[i] = model.Activity{
			Name:     "activity",
			Location: "somewhere",
			Date:     "2025-06-01",
			Time:     "09:00",
		}
	}
	return out
}

func TestComputeMapLayoutWrapsAtFiveColumns(t *testing.T) {
	points := ui.ComputeMapLayout(activities(7))
	require.Len(t, points, 7)

	assert.Equal(t, 0, points[0].Col)
	assert.Equal(t, 0, points[0].Row)
	assert.Equal(t, 4, points[4].Col)
	assert.Equal(t, 0, points[4].Row)
	assert.Equal(t, 0, points[5].Col)
	assert.Equal(t, 1, points[5].Row)
	assert.Equal(t, 1, points[6].Col)
	assert.Equal(t, 1, points[6].Row)
}

func TestComputeMapLayoutNumbersFromOne(t *testing.T) {
	points := ui.ComputeMapLayout(activities(3))
	require.Len(t, points, 3)
	for i, p := range points {
		assert.Equal(t, i+1, p.Index)
	}
}

func TestComputeMapLayoutEmpty(t *testing.T) {
	assert.Empty(t, ui.ComputeMapLayout(nil))
}
