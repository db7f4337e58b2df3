// Package actions is the boundary to the services that would carry out a
// portal action. The shipped gateway only records that the action happened.
package actions

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"civicpulse/models"
)

const (
	ActionLogin    = "login"
	ActionRegister = "register"
	ActionReport   = "report"
	ActionAssign   = "assign"
	ActionSponsor  = "sponsor"
)

var actionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "civicpulse_actions_total",
		Help: "Total number of simulated portal actions by action and role.",
	},
	[]string{"action", "role"},
)

// Collectors returns the metrics this package records.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{actionsTotal}
}

type LoginRequest struct {
	Email string
	Name  string
	Role  models.Role
}

type ReportRequest struct {
	Title       string
	Description string
	Category    models.Category
	Location    string
	Latitude    *float64
	Longitude   *float64
	Images      []string
}

type SponsorRequest struct {
	ProjectID string
	Amount    int64
	Message   string
}

// Receipt confirms an accepted action.
type Receipt struct {
	Reference string    `json:"reference"`
	Action    string    `json:"action"`
	Target    string    `json:"target,omitempty"`
	At        time.Time `json:"at"`
}

type Gateway interface {
	Login(ctx context.Context, req LoginRequest) (models.Account, error)
	Register(ctx context.Context, req LoginRequest) (models.Account, error)
	SubmitReport(ctx context.Context, by models.Account, req ReportRequest) (Receipt, error)
	AssignWorker(ctx context.Context, by models.Account, complaintID, workerID string) (Receipt, error)
	Sponsor(ctx context.Context, by models.Account, req SponsorRequest) (Receipt, error)
}

// accountNamespace keeps account ids stable for the same role and email.
var accountNamespace = uuid.MustParse("6f1c6a3e-58a4-4f57-9a43-6e0f3c1d2b7a")

// Simulated accepts every action.
type Simulated struct {
	now func() time.Time
}

func NewSimulated() *Simulated {
	return &Simulated{now: time.Now}
}

func (g *Simulated) Login(ctx context.Context, req LoginRequest) (models.Account, error) {
	return g.account(ctx, ActionLogin, req), nil
}

func (g *Simulated) Register(ctx context.Context, req LoginRequest) (models.Account, error) {
	return g.account(ctx, ActionRegister, req), nil
}

func (g *Simulated) SubmitReport(ctx context.Context, by models.Account, req ReportRequest) (Receipt, error) {
	r := g.receipt(ActionReport, "")
	slog.InfoContext(ctx, "report submitted", "reference", r.Reference, "user", by.ID,
		"category", req.Category, "location", req.Location)
	actionsTotal.WithLabelValues(ActionReport, string(by.Role)).Inc()
	return r, nil
}

func (g *Simulated) AssignWorker(ctx context.Context, by models.Account, complaintID, workerID string) (Receipt, error) {
	r := g.receipt(ActionAssign, complaintID)
	slog.InfoContext(ctx, "worker assigned", "reference", r.Reference, "user", by.ID,
		"complaint", complaintID, "worker", workerID)
	actionsTotal.WithLabelValues(ActionAssign, string(by.Role)).Inc()
	return r, nil
}

func (g *Simulated) Sponsor(ctx context.Context, by models.Account, req SponsorRequest) (Receipt, error) {
	r := g.receipt(ActionSponsor, req.ProjectID)
	slog.InfoContext(ctx, "project sponsored", "reference", r.Reference, "user", by.ID,
		"project", req.ProjectID, "amount", req.Amount)
	actionsTotal.WithLabelValues(ActionSponsor, string(by.Role)).Inc()
	return r, nil
}

func (g *Simulated) account(ctx context.Context, action string, req LoginRequest) models.Account {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = displayName(email, req.Role)
	}
	// Without an email there is nothing stable to derive the id from.
	id := uuid.New()
	if email != "" {
		id = uuid.NewSHA1(accountNamespace, []byte(string(req.Role)+"|"+email))
	}
	acc := models.Account{
		ID:        id.String(),
		Name:      name,
		Email:     email,
		Role:      req.Role,
		CreatedAt: g.now().UTC().Truncate(time.Second),
	}
	slog.InfoContext(ctx, "account signed in", "action", action, "user", acc.ID, "role", acc.Role)
	actionsTotal.WithLabelValues(action, string(req.Role)).Inc()
	return acc
}

func (g *Simulated) receipt(action, target string) Receipt {
	return Receipt{
		Reference: uuid.NewString(),
		Action:    action,
		Target:    target,
		At:        g.now().UTC(),
	}
}

func displayName(email string, role models.Role) string {
	if local, _, ok := strings.Cut(email, "@"); ok && local != "" {
		return local
	}
	switch role {
	case models.RoleAuthority:
		return "Authority Officer"
	case models.RoleDepartment:
		return "Department Head"
	case models.RoleCSR:
		return "CSR Partner"
	default:
		return "Citizen"
	}
}
