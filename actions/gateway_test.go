package actions

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicpulse/models"
)

func TestLoginIsStablePerRoleAndEmail(t *testing.T) {
	g := NewSimulated()
	ctx := context.Background()

	a, err := g.Login(ctx, LoginRequest{Email: "Asha@Example.com", Role: models.RoleCitizen})
	require.NoError(t, err)
	b, err := g.Login(ctx, LoginRequest{Email: "asha@example.com ", Role: models.RoleCitizen})
	require.NoError(t, err)
	c, err := g.Login(ctx, LoginRequest{Email: "asha@example.com", Role: models.RoleCSR})
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
	assert.Equal(t, "asha", a.Name)
	assert.Equal(t, models.RoleCitizen, a.Role)
}

func TestLoginWithoutEmailGetsFreshID(t *testing.T) {
	g := NewSimulated()
	ctx := context.Background()

	alice, err := g.Login(ctx, LoginRequest{Name: "Alice", Role: models.RoleCitizen})
	require.NoError(t, err)
	bob, err := g.Login(ctx, LoginRequest{Name: "Bob", Role: models.RoleCitizen})
	require.NoError(t, err)
	again, err := g.Login(ctx, LoginRequest{Name: "Alice", Role: models.RoleCitizen})
	require.NoError(t, err)

	assert.NotEqual(t, alice.ID, bob.ID)
	assert.NotEqual(t, alice.ID, again.ID)
	_, err = uuid.Parse(alice.ID)
	assert.NoError(t, err)
}

func TestLoginDefaultsName(t *testing.T) {
	g := NewSimulated()
	acc, err := g.Register(context.Background(), LoginRequest{Role: models.RoleDepartment})
	require.NoError(t, err)
	assert.Equal(t, "Department Head", acc.Name)

	acc, err = g.Register(context.Background(), LoginRequest{Name: " Priya ", Role: models.RoleCitizen})
	require.NoError(t, err)
	assert.Equal(t, "Priya", acc.Name)
}

func TestActionsAlwaysSucceed(t *testing.T) {
	at := time.Date(2025, 1, 22, 10, 0, 0, 0, time.UTC)
	g := &Simulated{now: func() time.Time { return at }}
	ctx := context.Background()
	officer := models.Account{ID: "u1", Role: models.RoleAuthority}
	before := testutil.ToFloat64(actionsTotal.WithLabelValues(ActionAssign, string(models.RoleAuthority)))

	r, err := g.AssignWorker(ctx, officer, "C001", "W001")
	require.NoError(t, err)
	assert.Equal(t, ActionAssign, r.Action)
	assert.Equal(t, "C001", r.Target)
	assert.Equal(t, at, r.At)
	_, err = uuid.Parse(r.Reference)
	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(actionsTotal.WithLabelValues(ActionAssign, string(models.RoleAuthority))))

	r, err = g.SubmitReport(ctx, models.Account{ID: "u2", Role: models.RoleCitizen}, ReportRequest{Title: "Pothole", Category: models.RoadMaintenance})
	require.NoError(t, err)
	assert.Equal(t, ActionReport, r.Action)

	r, err = g.Sponsor(ctx, models.Account{ID: "u3", Role: models.RoleCSR}, SponsorRequest{ProjectID: "p1", Amount: 50000})
	require.NoError(t, err)
	assert.Equal(t, "p1", r.Target)
}
