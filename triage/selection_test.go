package triage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionIsExclusive(t *testing.T) {
	var s Selection
	_, ok := s.InspectedID()
	assert.False(t, ok)

	s.Inspect("DH-1001")
	id, ok := s.InspectedID()
	assert.True(t, ok)
	assert.Equal(t, "DH-1001", id)

	s.Open(PanelWorkerAssignment)
	_, ok = s.InspectedID()
	assert.False(t, ok)
	p, ok := s.OpenPanel()
	assert.True(t, ok)
	assert.Equal(t, PanelWorkerAssignment, p)

	s.Inspect("DH-1002")
	_, ok = s.OpenPanel()
	assert.False(t, ok)

	s.Clear()
	assert.Equal(t, Selection{}, s)
}

func TestParsePanel(t *testing.T) {
	p, err := ParsePanel("sponsorship")
	require.NoError(t, err)
	assert.Equal(t, PanelSponsorship, p)

	_, err = ParsePanel("settings")
	assert.Error(t, err)
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name                     string
		total, page, limit       int
		wantPage, wantLimit, tps int
	}{
		{"defaults", 25, 0, 0, 1, 10, 3},
		{"limit too large", 25, 2, 500, 2, 10, 3},
		{"exact", 20, 1, 5, 1, 5, 4},
		{"empty", 0, 1, 10, 1, 10, 0},
		{"past the end", 25, 9, 10, 4, 10, 3},
		{"huge page", 3, math.MaxInt, 10, 2, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.tps, p.TotalPages)
		})
	}

	list := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{3, 4}, Window(list, Paginate(len(list), 2, 2)))
	assert.Equal(t, []int{5}, Window(list, Paginate(len(list), 3, 2)))
	assert.Empty(t, Window(list, Paginate(len(list), 9, 2)))
	assert.NotPanics(t, func() {
		assert.Empty(t, Window([]int{1, 2, 3}, Paginate(3, math.MaxInt, 10)))
		assert.Empty(t, Window(list, Page{Page: math.MaxInt, Limit: 10}))
	})
}
