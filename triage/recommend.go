package triage

import (
	"cmp"

	"civicpulse/models"
)

// Eligible keeps the workers who are Available and below their task limit.
func Eligible(pool []models.Worker) []models.Worker {
	return Filter(pool, func(w models.Worker) bool {
		return w.Status == models.Available && w.HasCapacity()
	})
}

// RecommendWorker picks the eligible worker with the best SLA compliance,
// breaking ties by shorter distance and then by id. ok is false when nobody
// in pool is eligible.
func RecommendWorker(pool []models.Worker) (best models.Worker, ok bool) {
	for _, w := range Eligible(pool) {
		if !ok || betterCandidate(w, best) {
			best, ok = w, true
		}
	}
	return best, ok
}

func betterCandidate(a, b models.Worker) bool {
	if a.SLACompliance != b.SLACompliance {
		return a.SLACompliance > b.SLACompliance
	}
	if r := cmp.Compare(a.Distance.Kilometres(), b.Distance.Kilometres()); r != 0 {
		return r < 0
	}
	return a.ID < b.ID
}
