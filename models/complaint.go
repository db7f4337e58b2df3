package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrTimelineOrder  = errors.New("timeline event precedes the previous event")
	ErrStatusMismatch = errors.New("status does not match the last timeline event")
)

// Category groups complaints by the department that handles them
type Category string

const (
	WaterSewage     Category = "Water & Sewage"
	RoadMaintenance Category = "Road Maintenance"
	Sanitation      Category = "Sanitation"
	StreetLighting  Category = "Street Lighting"
	ParksGreenery   Category = "Parks & Greenery"
	WasteManagement Category = "Waste Management"
	Vandalism       Category = "Vandalism"
)

// Categories lists every complaint category
var Categories = []Category{WaterSewage, RoadMaintenance, Sanitation, StreetLighting, ParksGreenery, WasteManagement, Vandalism}

// ParseCategory matches s against the known categories, ignoring case
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// TimelineEvent records one lifecycle step of a complaint
type TimelineEvent struct {
	Status    Status    `bson:"status" json:"status" yaml:"status"`
	Stage     string    `bson:"stage,omitempty" json:"stage,omitempty" yaml:"stage"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp" yaml:"timestamp"`
	Note      string    `bson:"note,omitempty" json:"note,omitempty" yaml:"note"`
}

// Timeline is append-only; timestamps never go backwards.
type Timeline []TimelineEvent

// Append adds ev to the end of t
func (t Timeline) Append(ev TimelineEvent) (Timeline, error) {
	if n := len(t); n > 0 && ev.Timestamp.Before(t[n-1].Timestamp) {
		return t, fmt.Errorf("%w: %s before %s", ErrTimelineOrder,
			ev.Timestamp.Format(time.RFC3339), t[n-1].Timestamp.Format(time.RFC3339))
	}
	return append(t, ev), nil
}

// Last returns the most recent event
func (t Timeline) Last() (TimelineEvent, bool) {
	if len(t) == 0 {
		return TimelineEvent{}, false
	}
	return t[len(t)-1], true
}

// Comment is a public remark left on a complaint
type Comment struct {
	User      string    `bson:"user" json:"user" yaml:"user"`
	Text      string    `bson:"text" json:"text" yaml:"text"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp" yaml:"timestamp"`
}

// ProofOfWork pairs photos taken before and after a fix
type ProofOfWork struct {
	Before []string `bson:"before" json:"before" yaml:"before"`
	After  []string `bson:"after" json:"after" yaml:"after"`
}

// Complaint represents a civic issue reported by a citizen
type Complaint struct {
	ID           string       `bson:"_id" json:"id" yaml:"id"`
	Title        string       `bson:"title" json:"title" yaml:"title"`
	Description  string       `bson:"description" json:"description" yaml:"description"`
	Category     Category     `bson:"category" json:"category" yaml:"category"`
	Priority     Priority     `bson:"priority,omitempty" json:"priority,omitempty" yaml:"priority"`
	Score        *int         `bson:"score,omitempty" json:"score,omitempty" yaml:"score"`
	Status       Status       `bson:"status" json:"status" yaml:"status"`
	Votes        int          `bson:"votes" json:"votes" yaml:"votes"`
	Location     string       `bson:"location" json:"location" yaml:"location"`
	Area         string       `bson:"area,omitempty" json:"area,omitempty" yaml:"area"`
	Ward         string       `bson:"ward,omitempty" json:"ward,omitempty" yaml:"ward"`
	Zone         string       `bson:"zone,omitempty" json:"zone,omitempty" yaml:"zone"`
	Latitude     *float64     `bson:"latitude,omitempty" json:"latitude,omitempty" yaml:"latitude"`
	Longitude    *float64     `bson:"longitude,omitempty" json:"longitude,omitempty" yaml:"longitude"`
	ReportedBy   string       `bson:"reportedBy" json:"reportedBy" yaml:"reported_by"`
	ReportedAt   time.Time    `bson:"reportedAt" json:"reportedAt" yaml:"reported_at"`
	OpenFor      Elapsed      `bson:"openFor" json:"openFor" yaml:"open_for"`
	SLAHoursLeft *float64     `bson:"slaHoursLeft,omitempty" json:"slaHoursLeft,omitempty" yaml:"sla_hours_left"`
	AssigneeID   string       `bson:"assigneeId,omitempty" json:"assigneeId,omitempty" yaml:"assignee_id"`
	Images       []string     `bson:"images,omitempty" json:"images,omitempty" yaml:"images"`
	Timeline     Timeline     `bson:"timeline" json:"timeline" yaml:"timeline"`
	Comments     []Comment    `bson:"comments,omitempty" json:"comments,omitempty" yaml:"comments"`
	ProofOfWork  *ProofOfWork `bson:"proofOfWork,omitempty" json:"proofOfWork,omitempty" yaml:"proof_of_work"`
}

// Tier returns the discrete priority, bucketing the score when no tier was recorded
func (c Complaint) Tier() Priority {
	if c.Priority != "" {
		return c.Priority
	}
	if c.Score != nil {
		return BucketScore(*c.Score)
	}
	return PriorityLow
}

// PriorityScore is the numeric score, or the tier's lower bound when only a tier is known
func (c Complaint) PriorityScore() int {
	if c.Score != nil {
		return *c.Score
	}
	switch c.Tier() {
	case PriorityCritical:
		return CriticalScore
	case PriorityHigh:
		return HighScore
	case PriorityMedium:
		return MediumScore
	default:
		return 0
	}
}

// LastActivity is the timestamp of the latest timeline event, or the report time
func (c Complaint) LastActivity() time.Time {
	if ev, ok := c.Timeline.Last(); ok && ev.Timestamp.After(c.ReportedAt) {
		return ev.Timestamp
	}
	return c.ReportedAt
}

// Validate checks the record invariants
func (c Complaint) Validate() error {
	if c.ID == "" {
		return errors.New("complaint id is required")
	}
	if !c.Status.Valid() {
		return fmt.Errorf("complaint %s: invalid status %q", c.ID, c.Status)
	}
	if c.Priority != "" {
		if _, err := ParsePriority(string(c.Priority)); err != nil {
			return fmt.Errorf("complaint %s: %w", c.ID, err)
		}
	}
	if c.Score != nil && (*c.Score < 0 || *c.Score > 100) {
		return fmt.Errorf("complaint %s: score %d outside 0-100", c.ID, *c.Score)
	}
	if c.Votes < 0 {
		return fmt.Errorf("complaint %s: negative vote count", c.ID)
	}
	var rebuilt Timeline
	for _, ev := range c.Timeline {
		var err error
		if rebuilt, err = rebuilt.Append(ev); err != nil {
			return fmt.Errorf("complaint %s: %w", c.ID, err)
		}
	}
	if last, ok := c.Timeline.Last(); ok && last.Status != c.Status {
		return fmt.Errorf("complaint %s: %w (%s != %s)", c.ID, ErrStatusMismatch, c.Status, last.Status)
	}
	return nil
}
