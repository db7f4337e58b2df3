package models

import (
	"fmt"
	"strings"
)

// Priority is a discrete urgency tier
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Score thresholds, lower bounds inclusive.
const (
	CriticalScore = 85
	HighScore     = 70
	MediumScore   = 50
)

// ParsePriority is case-insensitive so "Critical" and "critical" are the same tier.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// Rank orders tiers critical first: critical=0, high=1, medium=2, low=3
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

// BucketScore maps a 0-100 score onto its tier
func BucketScore(score int) Priority {
	switch {
	case score >= CriticalScore:
		return PriorityCritical
	case score >= HighScore:
		return PriorityHigh
	case score >= MediumScore:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
