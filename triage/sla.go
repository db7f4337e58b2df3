package triage

import (
	"time"

	"civicpulse/models"
)

// SLAState classifies how close a complaint is to its deadline.
type SLAState string

const (
	SLAOnTrack      SLAState = "on-track"
	SLANearDeadline SLAState = "near-deadline"
	SLAViolated     SLAState = "violated"
)

const (
	// DefaultSLAThreshold applies to complaints that carry no explicit deadline.
	DefaultSLAThreshold = 72 * time.Hour

	nearDeadlineHours = 4.0
)

// EvaluateHoursLeft classifies a signed hours-remaining value.
func EvaluateHoursLeft(hours float64) SLAState {
	switch {
	case hours < 0:
		return SLAViolated
	case hours < nearDeadlineHours:
		return SLANearDeadline
	default:
		return SLAOnTrack
	}
}

// EvaluateElapsed classifies time open against threshold. Reaching the
// threshold counts as a violation.
func EvaluateElapsed(open models.Elapsed, threshold time.Duration) SLAState {
	remaining := threshold - time.Duration(open)
	switch {
	case remaining <= 0:
		return SLAViolated
	case remaining.Hours() < nearDeadlineHours:
		return SLANearDeadline
	default:
		return SLAOnTrack
	}
}

// HoursRemaining is the signed time left before c breaches its SLA.
func HoursRemaining(c models.Complaint, threshold time.Duration) float64 {
	if c.SLAHoursLeft != nil {
		return *c.SLAHoursLeft
	}
	return threshold.Hours() - c.OpenFor.Hours()
}

// SLA is the evaluated deadline state of one complaint.
type SLA struct {
	State     SLAState `json:"state"`
	HoursLeft float64  `json:"hoursLeft"`
	OpenFor   string   `json:"openFor"`
}

// ComplaintSLA evaluates c. An explicit hours-left value wins over elapsed time.
func ComplaintSLA(c models.Complaint, threshold time.Duration) SLA {
	sla := SLA{HoursLeft: HoursRemaining(c, threshold), OpenFor: c.OpenFor.String()}
	if c.SLAHoursLeft != nil {
		sla.State = EvaluateHoursLeft(*c.SLAHoursLeft)
	} else {
		sla.State = EvaluateElapsed(c.OpenFor, threshold)
	}
	return sla
}

// SLAReport lists the open complaints that are past or close to their deadline.
type SLAReport struct {
	Violated     []models.Complaint `json:"violated"`
	NearDeadline []models.Complaint `json:"nearDeadline"`
}

// BuildSLAReport scans list in order. Resolved complaints are never reported.
func BuildSLAReport(list []models.Complaint, threshold time.Duration) SLAReport {
	report := SLAReport{Violated: []models.Complaint{}, NearDeadline: []models.Complaint{}}
	for _, c := range list {
		if c.Status == models.StatusResolved {
			continue
		}
		switch ComplaintSLA(c, threshold).State {
		case SLAViolated:
			report.Violated = append(report.Violated, c)
		case SLANearDeadline:
			report.NearDeadline = append(report.NearDeadline, c)
		}
	}
	return report
}
