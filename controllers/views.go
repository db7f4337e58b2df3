package controllers

import (
	"time"

	"civicpulse/models"
	"civicpulse/triage"
)

type timelineView struct {
	Status    string    `json:"status"`
	Stage     string    `json:"stage,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

type assigneeView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Team  string `json:"team"`
	Phone string `json:"phone,omitempty"`
}

// complaintView renders statuses in the caller's portal vocabulary; the
// canonical value stays available as statusCode.
type complaintView struct {
	models.Complaint
	Status        string          `json:"status"`
	StatusCode    models.Status   `json:"statusCode"`
	Timeline      []timelineView  `json:"timeline"`
	Tier          models.Priority `json:"tier"`
	PriorityScore int             `json:"priorityScore"`
	SLA           triage.SLA      `json:"sla"`
	Assignee      *assigneeView   `json:"assignee,omitempty"`
}

func newComplaintView(c models.Complaint, role models.Role, workers map[string]models.Worker, threshold time.Duration) complaintView {
	v := complaintView{
		Complaint:     c,
		Status:        c.Status.Label(role),
		StatusCode:    c.Status,
		Timeline:      make([]timelineView, 0, len(c.Timeline)),
		Tier:          c.Tier(),
		PriorityScore: c.PriorityScore(),
		SLA:           triage.ComplaintSLA(c, threshold),
	}
	for _, ev := range c.Timeline {
		v.Timeline = append(v.Timeline, timelineView{
			Status:    ev.Status.Label(role),
			Stage:     ev.Stage,
			Timestamp: ev.Timestamp,
			Note:      ev.Note,
		})
	}
	if w, ok := workers[c.AssigneeID]; ok {
		v.Assignee = &assigneeView{ID: w.ID, Name: w.Name, Team: w.Team, Phone: w.Phone}
	}
	return v
}

func complaintViews(list []models.Complaint, role models.Role, workers map[string]models.Worker, threshold time.Duration) []complaintView {
	out := make([]complaintView, 0, len(list))
	for _, c := range list {
		out = append(out, newComplaintView(c, role, workers, threshold))
	}
	return out
}

type workerView struct {
	models.Worker
	DistanceLabel string `json:"distanceLabel"`
	Eligible      bool   `json:"eligible"`
}

func newWorkerView(w models.Worker) workerView {
	return workerView{
		Worker:        w,
		DistanceLabel: w.Distance.String(),
		Eligible:      w.Status == models.Available && w.HasCapacity(),
	}
}

type projectView struct {
	models.Project
	AmountRemaining int64 `json:"amountRemaining"`
	FundedPercent   int   `json:"fundedPercent"`
	FullyFunded     bool  `json:"fullyFunded"`
}

func newProjectView(p models.Project) projectView {
	return projectView{
		Project:         p,
		AmountRemaining: p.AmountRemaining(),
		FundedPercent:   triage.Percent(int(p.AmountRaised), int(p.TotalCost)),
		FullyFunded:     p.FullyFunded(),
	}
}

// labelCounts re-keys per-status counts by the role's labels.
func labelCounts(counts map[models.Status]int, role models.Role) map[string]int {
	out := make(map[string]int, len(counts))
	for st, n := range counts {
		out[st.Label(role)] += n
	}
	return out
}
