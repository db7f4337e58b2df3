package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectFunding(t *testing.T) {
	p := Project{ID: "p1", Status: ProjectActive, TotalCost: 50000, AmountRaised: 35000}
	require.NoError(t, p.Validate())
	assert.Equal(t, int64(15000), p.AmountRemaining())
	assert.Equal(t, p.TotalCost, p.AmountRaised+p.AmountRemaining())
	assert.False(t, p.FullyFunded())

	p.AmountRaised = 50000
	assert.True(t, p.FullyFunded())

	p.AmountRaised = 60000
	assert.Error(t, p.Validate())
}

func TestProjectMilestoneOrder(t *testing.T) {
	p := Project{ID: "p1", Status: ProjectActive, Milestones: []Milestone{
		{Name: "Survey", Status: MilestoneCompleted},
		{Name: "Build", Status: MilestoneInProgress},
		{Name: "Inspect", Status: MilestonePending},
	}}
	require.NoError(t, p.Validate())

	p.Milestones = append(p.Milestones, Milestone{Name: "Handover", Status: MilestoneCompleted})
	assert.Error(t, p.Validate())
}

func TestWorkerValidate(t *testing.T) {
	w := Worker{ID: "W001", Status: Available, CurrentTasks: 1, MaxTasks: 3, SLACompliance: 96, Rating: 4.8,
		Distance: Distance{Value: 1.2, Unit: "km"}}
	require.NoError(t, w.Validate())
	assert.True(t, w.HasCapacity())
	assert.Equal(t, "1.2 km", w.Distance.String())

	w.CurrentTasks = 4
	assert.Error(t, w.Validate())
}

func TestDistanceKilometres(t *testing.T) {
	assert.InDelta(t, 0.8, Distance{Value: 800, Unit: "m"}.Kilometres(), 1e-9)
	assert.InDelta(t, 2.1, Distance{Value: 2.1, Unit: "km"}.Kilometres(), 1e-9)
}

func TestParseWorkerAndProjectStatus(t *testing.T) {
	ws, ok := ParseWorkerStatus("available")
	assert.True(t, ok)
	assert.Equal(t, Available, ws)
	_, ok = ParseWorkerStatus("on leave")
	assert.False(t, ok)

	ps, ok := ParseProjectStatus(" Sponsored")
	assert.True(t, ok)
	assert.Equal(t, ProjectSponsored, ps)
	_, ok = ParseProjectStatus("cancelled")
	assert.False(t, ok)
}
