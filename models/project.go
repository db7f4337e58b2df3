package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ProjectStatus enum
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectUpcoming  ProjectStatus = "upcoming"
	ProjectSponsored ProjectStatus = "sponsored"
)

func ParseProjectStatus(s string) (ProjectStatus, bool) {
	switch ps := ProjectStatus(strings.ToLower(strings.TrimSpace(s))); ps {
	case ProjectActive, ProjectCompleted, ProjectUpcoming, ProjectSponsored:
		return ps, true
	}
	return "", false
}

// MilestoneStatus enum
type MilestoneStatus string

const (
	MilestoneCompleted  MilestoneStatus = "completed"
	MilestoneInProgress MilestoneStatus = "in-progress"
	MilestonePending    MilestoneStatus = "pending"
)

type Milestone struct {
	Name   string          `bson:"name" json:"milestone" yaml:"milestone"`
	Status MilestoneStatus `bson:"status" json:"status" yaml:"status"`
	Date   string          `bson:"date" json:"date" yaml:"date"`
}

type ProjectUpdate struct {
	Date        time.Time `bson:"date" json:"date" yaml:"date"`
	Title       string    `bson:"title" json:"title" yaml:"title"`
	Description string    `bson:"description" json:"description" yaml:"description"`
	Images      []string  `bson:"images,omitempty" json:"images,omitempty" yaml:"images"`
}

// Project is a CSR-fundable civic project. Amounts are whole currency units.
type Project struct {
	ID           string          `bson:"_id" json:"id" yaml:"id"`
	Title        string          `bson:"title" json:"title" yaml:"title"`
	Category     string          `bson:"category" json:"category" yaml:"category"`
	Description  string          `bson:"description" json:"description" yaml:"description"`
	Location     string          `bson:"location" json:"location" yaml:"location"`
	Coordinates  Coordinates     `bson:"coordinates" json:"coordinates" yaml:"coordinates"`
	Status       ProjectStatus   `bson:"status" json:"status" yaml:"status"`
	TotalCost    int64           `bson:"totalCost" json:"totalCost" yaml:"total_cost"`
	AmountRaised int64           `bson:"amountRaised" json:"amountRaised" yaml:"amount_raised"`
	Images       []string        `bson:"images,omitempty" json:"images,omitempty" yaml:"images"`
	Sponsor      string          `bson:"sponsor,omitempty" json:"sponsor,omitempty" yaml:"sponsor"`
	Milestones   []Milestone     `bson:"milestones" json:"timeline" yaml:"milestones"`
	Impact       []string        `bson:"impact,omitempty" json:"impact,omitempty" yaml:"impact"`
	Updates      []ProjectUpdate `bson:"updates,omitempty" json:"updates,omitempty" yaml:"updates"`
}

// AmountRemaining is derived so raised + remaining always equals the total cost
func (p Project) AmountRemaining() int64 { return p.TotalCost - p.AmountRaised }

// FullyFunded reports whether nothing remains to be raised
func (p Project) FullyFunded() bool { return p.AmountRemaining() == 0 }

// Sponsored reports whether a sponsor has backed p
func (p Project) Sponsored() bool { return p.Sponsor != "" }

// LatestUpdate returns the date of the newest update post
func (p Project) LatestUpdate() (time.Time, bool) {
	var latest time.Time
	for _, u := range p.Updates {
		if u.Date.After(latest) {
			latest = u.Date
		}
	}
	return latest, !latest.IsZero()
}

// Validate checks the funding and milestone invariants
func (p Project) Validate() error {
	if p.ID == "" {
		return errors.New("project id is required")
	}
	switch p.Status {
	case ProjectActive, ProjectCompleted, ProjectUpcoming, ProjectSponsored:
	default:
		return fmt.Errorf("project %s: invalid status %q", p.ID, p.Status)
	}
	if p.TotalCost < 0 || p.AmountRaised < 0 || p.AmountRaised > p.TotalCost {
		return fmt.Errorf("project %s: raised %d outside 0..%d", p.ID, p.AmountRaised, p.TotalCost)
	}
	seenPending := false
	for _, m := range p.Milestones {
		switch m.Status {
		case MilestonePending:
			seenPending = true
		case MilestoneCompleted:
			if seenPending {
				return fmt.Errorf("project %s: milestone %q completed after a pending milestone", p.ID, m.Name)
			}
		case MilestoneInProgress:
		default:
			return fmt.Errorf("project %s: invalid milestone status %q", p.ID, m.Status)
		}
	}
	return nil
}
