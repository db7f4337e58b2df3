package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// WorkerStatus enum
type WorkerStatus string

const (
	Available WorkerStatus = "Available"
	Busy      WorkerStatus = "Busy"
	Offline   WorkerStatus = "Offline"
)

// ParseWorkerStatus matches s against the worker statuses, ignoring case
func ParseWorkerStatus(s string) (WorkerStatus, bool) {
	for _, ws := range []WorkerStatus{Available, Busy, Offline} {
		if strings.EqualFold(string(ws), strings.TrimSpace(s)) {
			return ws, true
		}
	}
	return "", false
}

// Distance keeps the numeric value and its unit apart; only String formats them together.
type Distance struct {
	Value float64 `bson:"value" json:"value" yaml:"value"`
	Unit  string  `bson:"unit" json:"unit" yaml:"unit"`
}

// Kilometres normalises d to kilometres
func (d Distance) Kilometres() float64 {
	if d.Unit == "m" {
		return d.Value / 1000
	}
	return d.Value
}

func (d Distance) String() string {
	unit := d.Unit
	if unit == "" {
		unit = "km"
	}
	return strconv.FormatFloat(d.Value, 'f', -1, 64) + " " + unit
}

// Coordinates is a latitude/longitude pair
type Coordinates struct {
	Latitude  float64 `bson:"lat" json:"lat" yaml:"lat"`
	Longitude float64 `bson:"lng" json:"lng" yaml:"lng"`
}

// Worker is a field worker that complaints can be assigned to
type Worker struct {
	ID             string       `bson:"_id" json:"id" yaml:"id"`
	Name           string       `bson:"name" json:"name" yaml:"name"`
	Team           string       `bson:"team" json:"team" yaml:"team"`
	Zone           string       `bson:"zone" json:"zone" yaml:"zone"`
	SkillType      string       `bson:"skillType" json:"skillType" yaml:"skill_type"`
	Status         WorkerStatus `bson:"status" json:"status" yaml:"status"`
	Distance       Distance     `bson:"distance" json:"distance" yaml:"distance"`
	CurrentTasks   int          `bson:"currentTasks" json:"currentTasks" yaml:"current_tasks"`
	MaxTasks       int          `bson:"maxTasks" json:"maxTasks" yaml:"max_tasks"`
	SLACompliance  float64      `bson:"slaCompliance" json:"slaCompliance" yaml:"sla_compliance"`
	Rating         float64      `bson:"rating" json:"rating" yaml:"rating"`
	CompletedToday int          `bson:"completedToday" json:"completedToday" yaml:"completed_today"`
	Phone          string       `bson:"phone,omitempty" json:"phone,omitempty" yaml:"phone"`
	Location       Coordinates  `bson:"location" json:"location" yaml:"location"`
}

// HasCapacity reports whether w can take another task
func (w Worker) HasCapacity() bool { return w.CurrentTasks < w.MaxTasks }

// Validate checks the record invariants
func (w Worker) Validate() error {
	if w.ID == "" {
		return errors.New("worker id is required")
	}
	switch w.Status {
	case Available, Busy, Offline:
	default:
		return fmt.Errorf("worker %s: invalid status %q", w.ID, w.Status)
	}
	if w.CurrentTasks < 0 || w.CurrentTasks > w.MaxTasks {
		return fmt.Errorf("worker %s: current tasks %d outside 0..%d", w.ID, w.CurrentTasks, w.MaxTasks)
	}
	if w.SLACompliance < 0 || w.SLACompliance > 100 {
		return fmt.Errorf("worker %s: sla compliance %.1f outside 0-100", w.ID, w.SLACompliance)
	}
	if w.Rating < 0 || w.Rating > 5 {
		return fmt.Errorf("worker %s: rating %.1f outside 0-5", w.ID, w.Rating)
	}
	if w.Distance.Value < 0 {
		return fmt.Errorf("worker %s: negative distance", w.ID)
	}
	if u := w.Distance.Unit; u != "" && u != "km" && u != "m" {
		return fmt.Errorf("worker %s: unknown distance unit %q", w.ID, u)
	}
	return nil
}
