package triage

import (
	"cmp"
	"math"
	"slices"

	"civicpulse/models"
)

// Ratio returns num/den, or 0 when den is 0.
func Ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// Percent is Ratio scaled to 0-100 and rounded to the nearest integer.
// Independently rounded shares need not add up to exactly 100.
func Percent(num, den int) int {
	return int(math.Round(Ratio(float64(num), float64(den)) * 100))
}

type CategoryShare struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Percent  int    `json:"percent"`
}

// Summary holds the KPI figures shown above a complaint list.
type Summary struct {
	Total          int                     `json:"total"`
	ByStatus       map[models.Status]int   `json:"byStatus"`
	Open           int                     `json:"open"`
	Resolved       int                     `json:"resolved"`
	ResolutionRate float64                 `json:"resolutionRate"`
	Votes          int                     `json:"votes"`
	ByPriority     map[models.Priority]int `json:"byPriority"`
	Categories     []CategoryShare         `json:"categories"`
}

// Summarize computes the KPI figures over list. An empty list yields zeros.
func Summarize(list []models.Complaint) Summary {
	s := Summary{
		Total:      len(list),
		ByStatus:   make(map[models.Status]int, len(models.Statuses)),
		ByPriority: make(map[models.Priority]int, 4),
		Categories: []CategoryShare{},
	}
	for _, st := range models.Statuses {
		s.ByStatus[st] = 0
	}
	counts := map[string]int{}
	for _, c := range list {
		s.ByStatus[c.Status]++
		s.ByPriority[c.Tier()]++
		s.Votes += c.Votes
		counts[string(c.Category)]++
	}
	s.Resolved = s.ByStatus[models.StatusResolved]
	s.Open = s.Total - s.Resolved
	s.ResolutionRate = Ratio(float64(s.Resolved), float64(s.Total))
	for cat, n := range counts {
		s.Categories = append(s.Categories, CategoryShare{Category: cat, Count: n, Percent: Percent(n, s.Total)})
	}
	slices.SortFunc(s.Categories, func(a, b CategoryShare) int {
		if r := cmp.Compare(b.Count, a.Count); r != 0 {
			return r
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return s
}

// WorkerStats feeds the workforce cards on the department dashboard.
type WorkerStats struct {
	Total          int                         `json:"total"`
	Active         int                         `json:"active"`
	OnTask         int                         `json:"onTask"`
	Idle           int                         `json:"idle"`
	ByStatus       map[models.WorkerStatus]int `json:"byStatus"`
	AvgSLA         float64                     `json:"avgSlaCompliance"`
	CompletedToday int                         `json:"completedToday"`
}

func SummarizeWorkers(list []models.Worker) WorkerStats {
	ws := WorkerStats{Total: len(list), ByStatus: map[models.WorkerStatus]int{
		models.Available: 0, models.Busy: 0, models.Offline: 0,
	}}
	var sla float64
	for _, w := range list {
		ws.ByStatus[w.Status]++
		if w.Status == models.Available || w.Status == models.Busy {
			ws.Active++
		}
		if w.CurrentTasks > 0 {
			ws.OnTask++
		}
		if w.Status == models.Available && w.CurrentTasks == 0 {
			ws.Idle++
		}
		sla += w.SLACompliance
		ws.CompletedToday += w.CompletedToday
	}
	ws.AvgSLA = Ratio(sla, float64(ws.Total))
	return ws
}

type CategoryFunding struct {
	Category string `json:"category"`
	Raised   int64  `json:"raised"`
	Percent  int    `json:"percent"`
}

// ProjectSummary feeds the CSR analytics screen.
type ProjectSummary struct {
	Total       int                          `json:"total"`
	Sponsored   int                          `json:"sponsored"`
	Active      int                          `json:"active"`
	Completed   int                          `json:"completed"`
	FullyFunded int                          `json:"fullyFunded"`
	ByStatus    map[models.ProjectStatus]int `json:"byStatus"`
	TotalCost   int64                        `json:"totalCost"`
	Raised      int64                        `json:"raised"`
	Remaining   int64                        `json:"remaining"`
	FundedRate  float64                      `json:"fundedRate"`
	Categories  []CategoryFunding            `json:"categories"`
}

// SummarizeProjects treats "sponsored" projects as active, as the CSR home screen does.
func SummarizeProjects(list []models.Project) ProjectSummary {
	ps := ProjectSummary{Total: len(list), ByStatus: map[models.ProjectStatus]int{}, Categories: []CategoryFunding{}}
	raised := map[string]int64{}
	for _, p := range list {
		ps.ByStatus[p.Status]++
		if p.Sponsored() {
			ps.Sponsored++
		}
		switch p.Status {
		case models.ProjectActive, models.ProjectSponsored:
			ps.Active++
		case models.ProjectCompleted:
			ps.Completed++
		}
		if p.FullyFunded() {
			ps.FullyFunded++
		}
		ps.TotalCost += p.TotalCost
		ps.Raised += p.AmountRaised
		ps.Remaining += p.AmountRemaining()
		raised[p.Category] += p.AmountRaised
	}
	ps.FundedRate = Ratio(float64(ps.Raised), float64(ps.TotalCost))
	for cat, amt := range raised {
		ps.Categories = append(ps.Categories, CategoryFunding{
			Category: cat,
			Raised:   amt,
			Percent:  int(math.Round(Ratio(float64(amt), float64(ps.Raised)) * 100)),
		})
	}
	slices.SortFunc(ps.Categories, func(a, b CategoryFunding) int {
		if r := cmp.Compare(b.Raised, a.Raised); r != 0 {
			return r
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return ps
}

// Contributor is one row of the citizen leaderboard.
type Contributor struct {
	Rank     int    `json:"rank"`
	Name     string `json:"name"`
	Reports  int    `json:"reports"`
	Resolved int    `json:"resolved"`
	Upvotes  int    `json:"upvotes"`
	Points   int    `json:"points"`
}

const (
	pointsPerReport   = 10
	pointsPerResolved = 50
)

// Leaderboard ranks reporters by points, then by name. limit <= 0 returns everyone.
func Leaderboard(list []models.Complaint, limit int) []Contributor {
	byName := map[string]*Contributor{}
	for _, c := range list {
		if c.ReportedBy == "" {
			continue
		}
		e, ok := byName[c.ReportedBy]
		if !ok {
			e = &Contributor{Name: c.ReportedBy}
			byName[c.ReportedBy] = e
		}
		e.Reports++
		e.Upvotes += c.Votes
		if c.Status == models.StatusResolved {
			e.Resolved++
		}
	}
	board := make([]Contributor, 0, len(byName))
	for _, e := range byName {
		e.Points = e.Reports*pointsPerReport + e.Resolved*pointsPerResolved
		board = append(board, *e)
	}
	slices.SortFunc(board, func(a, b Contributor) int {
		if r := cmp.Compare(b.Points, a.Points); r != 0 {
			return r
		}
		return cmp.Compare(a.Name, b.Name)
	})
	if limit > 0 && len(board) > limit {
		board = board[:limit]
	}
	for i := range board {
		board[i].Rank = i + 1
	}
	return board
}

// Standing returns name's row of the full leaderboard. A name with no reports
// gets an empty row with rank 0.
func Standing(list []models.Complaint, name string) (Contributor, bool) {
	for _, e := range Leaderboard(list, 0) {
		if e.Name == name {
			return e, true
		}
	}
	return Contributor{Name: name}, false
}

// ReportedBy selects the complaints filed under name.
func ReportedBy(name string) Predicate[models.Complaint] {
	return func(c models.Complaint) bool { return c.ReportedBy == name }
}
