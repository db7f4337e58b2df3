package triage

import (
	"strings"

	"golang.org/x/text/cases"

	"civicpulse/models"
)

// All disables the filter dimension it is given to.
const All = "all"

// Predicate reports whether a record belongs in the result.
type Predicate[T any] func(T) bool

// Filter keeps the records for which every predicate holds, in their original order.
func Filter[T any](list []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(list))
next:
	for _, rec := range list {
		for _, p := range preds {
			if !p(rec) {
				continue next
			}
		}
		out = append(out, rec)
	}
	return out
}

func active(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, All)
}

// textMatcher matches a query against any of several fields, ignoring case.
type textMatcher struct {
	fold  cases.Caser
	query string
}

func newTextMatcher(query string) *textMatcher {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	fold := cases.Fold()
	return &textMatcher{fold: fold, query: fold.String(query)}
}

func (m *textMatcher) any(fields ...string) bool {
	if m == nil {
		return true
	}
	for _, f := range fields {
		if f != "" && strings.Contains(m.fold.String(f), m.query) {
			return true
		}
	}
	return false
}

// ComplaintQuery holds at most one selection per filter dimension. Zero values
// and All leave a dimension unfiltered.
type ComplaintQuery struct {
	Status   models.Status   `json:"status,omitempty"`
	Priority models.Priority `json:"priority,omitempty"`
	Category string          `json:"category,omitempty"`
	Zone     string          `json:"zone,omitempty"`
	Text     string          `json:"q,omitempty"`
	OpenOnly bool            `json:"open,omitempty"`
}

// Predicates builds the predicate set for q. names resolves assignee ids to
// display names for the free-text match and may be nil.
func (q ComplaintQuery) Predicates(names map[string]string) []Predicate[models.Complaint] {
	var preds []Predicate[models.Complaint]
	if q.OpenOnly {
		preds = append(preds, func(c models.Complaint) bool { return c.Status != models.StatusResolved })
	}
	if active(string(q.Status)) {
		preds = append(preds, func(c models.Complaint) bool { return c.Status == q.Status })
	}
	if active(string(q.Priority)) {
		preds = append(preds, func(c models.Complaint) bool { return c.Tier() == q.Priority })
	}
	if active(q.Category) {
		preds = append(preds, func(c models.Complaint) bool { return string(c.Category) == q.Category })
	}
	if active(q.Zone) {
		preds = append(preds, func(c models.Complaint) bool { return c.Zone == q.Zone })
	}
	if m := newTextMatcher(q.Text); m != nil {
		preds = append(preds, func(c models.Complaint) bool {
			return m.any(c.ID, c.Title, c.Location, string(c.Category), names[c.AssigneeID])
		})
	}
	return preds
}

// WorkerNames indexes worker display names by id.
func WorkerNames(pool []models.Worker) map[string]string {
	names := make(map[string]string, len(pool))
	for _, w := range pool {
		names[w.ID] = w.Name
	}
	return names
}

// FilterComplaints returns the complaints matching every active dimension of q.
func FilterComplaints(list []models.Complaint, q ComplaintQuery, names map[string]string) []models.Complaint {
	return Filter(list, q.Predicates(names)...)
}

// Distance bands used by the worker assignment panel.
const (
	DistanceNear = "near"
	DistanceFar  = "far"

	nearKilometres = 2.0
)

type WorkerQuery struct {
	Status   models.WorkerStatus `json:"status,omitempty"`
	Zone     string              `json:"zone,omitempty"`
	Distance string              `json:"distance,omitempty"`
	Text     string              `json:"q,omitempty"`
}

func (q WorkerQuery) Predicates() []Predicate[models.Worker] {
	var preds []Predicate[models.Worker]
	if active(string(q.Status)) {
		preds = append(preds, func(w models.Worker) bool { return w.Status == q.Status })
	}
	if active(q.Zone) {
		preds = append(preds, func(w models.Worker) bool { return w.Zone == q.Zone })
	}
	switch q.Distance {
	case DistanceNear:
		preds = append(preds, func(w models.Worker) bool { return w.Distance.Kilometres() < nearKilometres })
	case DistanceFar:
		preds = append(preds, func(w models.Worker) bool { return w.Distance.Kilometres() >= nearKilometres })
	}
	if m := newTextMatcher(q.Text); m != nil {
		preds = append(preds, func(w models.Worker) bool { return m.any(w.ID, w.Name, w.Team, w.SkillType) })
	}
	return preds
}

func FilterWorkers(list []models.Worker, q WorkerQuery) []models.Worker {
	return Filter(list, q.Predicates()...)
}

type ProjectQuery struct {
	Status        models.ProjectStatus `json:"status,omitempty"`
	Category      string               `json:"category,omitempty"`
	Text          string               `json:"q,omitempty"`
	SponsoredOnly bool                 `json:"sponsored,omitempty"`
}

func (q ProjectQuery) Predicates() []Predicate[models.Project] {
	var preds []Predicate[models.Project]
	if q.SponsoredOnly {
		preds = append(preds, models.Project.Sponsored)
	}
	if active(string(q.Status)) {
		preds = append(preds, func(p models.Project) bool { return p.Status == q.Status })
	}
	if active(q.Category) {
		preds = append(preds, func(p models.Project) bool { return p.Category == q.Category })
	}
	if m := newTextMatcher(q.Text); m != nil {
		preds = append(preds, func(p models.Project) bool { return m.any(p.Title, p.Description, p.Location) })
	}
	return preds
}

func FilterProjects(list []models.Project, q ProjectQuery) []models.Project {
	return Filter(list, q.Predicates()...)
}
