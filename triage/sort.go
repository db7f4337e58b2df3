package triage

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"civicpulse/models"
)

type SortKey string

const (
	SortRecency    SortKey = "recency"
	SortPriority   SortKey = "priority"
	SortVotes      SortKey = "votes"
	SortSLAUrgency SortKey = "sla-urgency"

	SortFunding   SortKey = "funding"
	SortRemaining SortKey = "remaining"
)

// Portal screens name the same orderings differently.
var sortAliases = map[string]SortKey{
	"recency":     SortRecency,
	"recent":      SortRecency,
	"time":        SortRecency,
	"newest":      SortRecency,
	"priority":    SortPriority,
	"urgent":      SortPriority,
	"votes":       SortVotes,
	"trending":    SortVotes,
	"sla-urgency": SortSLAUrgency,
	"sla":         SortSLAUrgency,
	"funding":     SortFunding,
	"remaining":   SortRemaining,
}

// ParseSortKey resolves a sort name or alias. An empty name means recency.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortRecency, nil
	}
	if k, ok := sortAliases[s]; ok {
		return k, nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// ComplaintComparator returns the ordering for key. Priority sorts critical
// first and, inside a tier, by descending score.
func ComplaintComparator(key SortKey, slaThreshold time.Duration) (func(a, b models.Complaint) int, error) {
	switch key {
	case SortRecency:
		return func(a, b models.Complaint) int { return b.LastActivity().Compare(a.LastActivity()) }, nil
	case SortPriority:
		return func(a, b models.Complaint) int {
			if r := cmp.Compare(a.Tier().Rank(), b.Tier().Rank()); r != 0 {
				return r
			}
			return cmp.Compare(b.PriorityScore(), a.PriorityScore())
		}, nil
	case SortVotes:
		return func(a, b models.Complaint) int { return cmp.Compare(b.Votes, a.Votes) }, nil
	case SortSLAUrgency:
		return func(a, b models.Complaint) int {
			return cmp.Compare(HoursRemaining(a, slaThreshold), HoursRemaining(b, slaThreshold))
		}, nil
	}
	return nil, fmt.Errorf("sort key %q does not apply to complaints", key)
}

// SortComplaints returns a stably sorted copy of list.
func SortComplaints(list []models.Complaint, key SortKey, slaThreshold time.Duration) ([]models.Complaint, error) {
	less, err := ComplaintComparator(key, slaThreshold)
	if err != nil {
		return nil, err
	}
	out := append(make([]models.Complaint, 0, len(list)), list...)
	slices.SortStableFunc(out, less)
	return out, nil
}

func fundedPercent(p models.Project) float64 {
	return Ratio(float64(p.AmountRaised), float64(p.TotalCost))
}

// SortProjects returns a stably sorted copy of list. Recency uses the newest
// update post; projects without updates sort last.
func SortProjects(list []models.Project, key SortKey) ([]models.Project, error) {
	var less func(a, b models.Project) int
	switch key {
	case SortRecency:
		less = func(a, b models.Project) int {
			ta, _ := a.LatestUpdate()
			tb, _ := b.LatestUpdate()
			return tb.Compare(ta)
		}
	case SortFunding:
		less = func(a, b models.Project) int { return cmp.Compare(fundedPercent(b), fundedPercent(a)) }
	case SortRemaining:
		less = func(a, b models.Project) int { return cmp.Compare(a.AmountRemaining(), b.AmountRemaining()) }
	default:
		return nil, fmt.Errorf("sort key %q does not apply to projects", key)
	}
	out := append(make([]models.Project, 0, len(list)), list...)
	slices.SortStableFunc(out, less)
	return out, nil
}
