// Package fixtures holds the sample records every portal renders. The records
// are embedded YAML, checked against the model invariants when loaded.
package fixtures

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"civicpulse/models"
)

//go:embed data/*.yaml
var embedded embed.FS

const (
	complaintsFile = "complaints.yaml"
	workersFile    = "workers.yaml"
	projectsFile   = "projects.yaml"
)

var ErrInvalidRecord = errors.New("invalid fixture record")

// Dataset is the full set of sample records.
type Dataset struct {
	Complaints []models.Complaint
	Workers    []models.Worker
	Projects   []models.Project
}

// projectRecord lets a fixture state amount_remaining explicitly so it can be
// checked against the derived value.
type projectRecord struct {
	models.Project  `yaml:",inline"`
	AmountRemaining *int64 `yaml:"amount_remaining"`
}

// Load decodes the embedded fixtures.
func Load() (*Dataset, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// LoadDir decodes fixtures from dir, which must hold the same three files.
func LoadDir(dir string) (*Dataset, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFrom reads dir, or the embedded fixtures when dir is empty.
func LoadFrom(dir string) (*Dataset, error) {
	if dir == "" {
		return Load()
	}
	return LoadDir(dir)
}

func LoadFS(fsys fs.FS) (*Dataset, error) {
	var ds Dataset
	if err := decode(fsys, workersFile, &ds.Workers); err != nil {
		return nil, err
	}
	if err := decode(fsys, complaintsFile, &ds.Complaints); err != nil {
		return nil, err
	}
	var projects []projectRecord
	if err := decode(fsys, projectsFile, &projects); err != nil {
		return nil, err
	}
	for _, rec := range projects {
		if rec.AmountRemaining != nil && *rec.AmountRemaining != rec.Project.AmountRemaining() {
			return nil, fmt.Errorf("%w: project %s: raised %d + remaining %d != total %d", ErrInvalidRecord,
				rec.ID, rec.AmountRaised, *rec.AmountRemaining, rec.TotalCost)
		}
		ds.Projects = append(ds.Projects, rec.Project)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func decode(fsys fs.FS, name string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// Validate checks every record plus the cross-record rules: ids are unique per
// collection and complaint assignees name a known worker.
func (ds *Dataset) Validate() error {
	workers := make(map[string]bool, len(ds.Workers))
	for _, w := range ds.Workers {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
		if workers[w.ID] {
			return fmt.Errorf("%w: duplicate worker id %s", ErrInvalidRecord, w.ID)
		}
		workers[w.ID] = true
	}
	seen := make(map[string]bool, len(ds.Complaints))
	for _, c := range ds.Complaints {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: duplicate complaint id %s", ErrInvalidRecord, c.ID)
		}
		seen[c.ID] = true
		if c.AssigneeID != "" && !workers[c.AssigneeID] {
			return fmt.Errorf("%w: complaint %s assigned to unknown worker %s", ErrInvalidRecord, c.ID, c.AssigneeID)
		}
	}
	projects := make(map[string]bool, len(ds.Projects))
	for _, p := range ds.Projects {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
		if projects[p.ID] {
			return fmt.Errorf("%w: duplicate project id %s", ErrInvalidRecord, p.ID)
		}
		projects[p.ID] = true
	}
	return nil
}
