package triage

import "fmt"

// Panel names a modal or drawer a portal can open.
type Panel string

const (
	PanelWorkerAssignment Panel = "worker-assignment"
	PanelReportIssue      Panel = "report-issue"
	PanelFilters          Panel = "filters"
	PanelSponsorship      Panel = "sponsorship"
	PanelAnalytics        Panel = "analytics"
)

func ParsePanel(s string) (Panel, error) {
	switch p := Panel(s); p {
	case PanelWorkerAssignment, PanelReportIssue, PanelFilters, PanelSponsorship, PanelAnalytics:
		return p, nil
	}
	return "", fmt.Errorf("unknown panel %q", s)
}

// Selection is either one inspected record or one open panel, never both.
type Selection struct {
	Inspected string `json:"inspected,omitempty"`
	Panel     Panel  `json:"panel,omitempty"`
}

// Inspect shows the detail view of id and closes any open panel.
func (s *Selection) Inspect(id string) {
	s.Inspected, s.Panel = id, ""
}

// Open shows panel p and drops the inspected record.
func (s *Selection) Open(p Panel) {
	s.Panel, s.Inspected = p, ""
}

func (s *Selection) Clear() { *s = Selection{} }

func (s Selection) InspectedID() (string, bool) { return s.Inspected, s.Inspected != "" }

func (s Selection) OpenPanel() (Panel, bool) { return s.Panel, s.Panel != "" }
