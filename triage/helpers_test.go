package triage

import (
	"time"

	"civicpulse/models"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ids[T any](list []T, id func(T) string) []string {
	out := make([]string, 0, len(list))
	for _, rec := range list {
		out = append(out, id(rec))
	}
	return out
}

func complaintIDs(list []models.Complaint) []string {
	return ids(list, func(c models.Complaint) string { return c.ID })
}

func workerIDs(list []models.Worker) []string {
	return ids(list, func(w models.Worker) string { return w.ID })
}

func sampleComplaints() []models.Complaint {
	return []models.Complaint{
		{ID: "C001", Title: "Sewage overflow blocking main road", Category: models.WaterSewage, Status: models.StatusAssigned,
			Location: "MG Road, Sector 14", Zone: "Zone A - North", Votes: 142, Score: intPtr(95),
			ReportedBy: "Rahul Sharma", ReportedAt: at("2025-11-26T08:30:00Z"), OpenFor: models.Elapsed(72 * time.Hour), AssigneeID: "W001"},
		{ID: "C002", Title: "Multiple potholes on residential street", Category: models.RoadMaintenance, Status: models.StatusInProgress,
			Location: "Link Road, Block C", Zone: "Zone B - South", Votes: 89, Score: intPtr(82),
			ReportedBy: "Priya Patel", ReportedAt: at("2025-11-27T14:20:00Z"), OpenFor: models.Elapsed(36 * time.Hour)},
		{ID: "C003", Title: "Garbage not collected for 5 days", Category: models.Sanitation, Status: models.StatusReported,
			Location: "SV Road, Zone 3", Zone: "Zone A - North", Votes: 203, Score: intPtr(88),
			ReportedBy: "Rahul Sharma", ReportedAt: at("2025-11-24T10:15:00Z"), OpenFor: models.Elapsed(124 * time.Hour)},
		{ID: "C004", Title: "Street lights not working", Category: models.StreetLighting, Status: models.StatusResolved,
			Location: "Station Road", Zone: "Zone C - East", Votes: 67, Score: intPtr(76),
			ReportedBy: "Sneha Desai", ReportedAt: at("2025-11-26T18:45:00Z"), OpenFor: models.Elapsed(56 * time.Hour)},
		{ID: "C005", Title: "Park equipment damaged", Category: models.Sanitation, Status: models.StatusReported,
			Location: "Central Park, Gate 2", Zone: "Zone C - East", Votes: 34, Score: intPtr(54),
			ReportedBy: "Meera Singh", ReportedAt: at("2025-11-28T17:00:00Z"), OpenFor: models.Elapsed(6*time.Hour + 30*time.Minute)},
	}
}

func sampleWorkers() []models.Worker {
	return []models.Worker{
		{ID: "W001", Name: "Ramesh Kumar", Team: "Sanitation Team A", Zone: "Zone A - North", Status: models.Available,
			Distance: models.Distance{Value: 1.2, Unit: "km"}, CurrentTasks: 1, MaxTasks: 3, SLACompliance: 96},
		{ID: "W002", Name: "Suresh Patil", Team: "Sanitation Team B", Zone: "Zone B - South", Status: models.Busy,
			Distance: models.Distance{Value: 3.5, Unit: "km"}, CurrentTasks: 3, MaxTasks: 3, SLACompliance: 99},
		{ID: "W003", Name: "Vijay Deshmukh", Team: "Sanitation Team A", Zone: "Zone A - North", Status: models.Available,
			Distance: models.Distance{Value: 800, Unit: "m"}, CurrentTasks: 0, MaxTasks: 3, SLACompliance: 98},
		{ID: "W004", Name: "Ganesh Yadav", Team: "Sanitation Team C", Zone: "Zone C - East", Status: models.Available,
			Distance: models.Distance{Value: 2.1, Unit: "km"}, CurrentTasks: 3, MaxTasks: 3, SLACompliance: 100},
		{ID: "W005", Name: "Prakash Sharma", Team: "Sanitation Team B", Zone: "Zone D - West", Status: models.Offline,
			Distance: models.Distance{Value: 5.2, Unit: "km"}, CurrentTasks: 0, MaxTasks: 3, SLACompliance: 100},
		{ID: "W006", Name: "Ashok Jadhav", Team: "Sanitation Team C", Zone: "Zone B - South", Status: models.Available,
			Distance: models.Distance{Value: 0.5, Unit: "km"}, CurrentTasks: 1, MaxTasks: 3, SLACompliance: 98},
	}
}
