package fixtures

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicpulse/models"
	"civicpulse/triage"
)

func TestLoadEmbedded(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	assert.Len(t, ds.Complaints, 18)
	assert.Len(t, ds.Workers, 8)
	assert.Len(t, ds.Projects, 6)

	for _, p := range ds.Projects {
		assert.Equal(t, p.TotalCost, p.AmountRaised+p.AmountRemaining(), p.ID)
	}
	for _, c := range ds.Complaints {
		last, ok := c.Timeline.Last()
		require.True(t, ok, c.ID)
		assert.Equal(t, c.Status, last.Status, c.ID)
	}
}

func TestLoadedRecordsDecodeFully(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	byID := map[string]models.Complaint{}
	for _, c := range ds.Complaints {
		byID[c.ID] = c
	}
	c001 := byID["C001"]
	require.NotNil(t, c001.Score)
	assert.Equal(t, 95, *c001.Score)
	assert.Equal(t, "3d 0h", c001.OpenFor.String())
	assert.Equal(t, triage.SLAViolated, triage.ComplaintSLA(c001, triage.DefaultSLAThreshold).State)

	dh := byID["DH-1005"]
	require.NotNil(t, dh.SLAHoursLeft)
	assert.Equal(t, -4.0, *dh.SLAHoursLeft)

	issue := byID["3"]
	require.NotNil(t, issue.ProofOfWork)
	assert.Len(t, issue.ProofOfWork.After, 1)
	assert.Len(t, issue.Comments, 1)

	var w003 models.Worker
	for _, w := range ds.Workers {
		if w.ID == "W003" {
			w003 = w
		}
	}
	assert.Equal(t, models.Distance{Value: 800, Unit: "m"}, w003.Distance)
}

const validWorkers = `
- id: W1
  name: Ramesh Kumar
  status: Available
  distance: {value: 1.2, unit: km}
  current_tasks: 0
  max_tasks: 3
  sla_compliance: 90
  rating: 4
`

const validComplaints = `
- id: C1
  title: Pothole
  status: reported
  reported_at: 2025-11-25T10:30:00Z
  open_for: 2h
  timeline:
    - {status: reported, timestamp: 2025-11-25T10:30:00Z}
`

func TestLoadRejectsBrokenFunding(t *testing.T) {
	fsys := fstest.MapFS{
		workersFile:    {Data: []byte(validWorkers)},
		complaintsFile: {Data: []byte(validComplaints)},
		projectsFile: {Data: []byte(`
- id: p1
  status: active
  total_cost: 100
  amount_raised: 40
  amount_remaining: 50
`)},
	}
	_, err := LoadFS(fsys)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestLoadRejectsUnknownAssignee(t *testing.T) {
	fsys := fstest.MapFS{
		workersFile: {Data: []byte(validWorkers)},
		complaintsFile: {Data: []byte(`
- id: C1
  status: reported
  assignee_id: W9
  open_for: 1h
`)},
		projectsFile: {Data: []byte(`[]`)},
	}
	_, err := LoadFS(fsys)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestLoadRejectsStatusTimelineMismatch(t *testing.T) {
	fsys := fstest.MapFS{
		workersFile: {Data: []byte(validWorkers)},
		complaintsFile: {Data: []byte(`
- id: C1
  status: resolved
  open_for: 1h
  timeline:
    - {status: reported, timestamp: 2025-11-25T10:30:00Z}
`)},
		projectsFile: {Data: []byte(`[]`)},
	}
	_, err := LoadFS(fsys)
	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.ErrorContains(t, err, "last timeline event")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{})
	assert.Error(t, err)
}
