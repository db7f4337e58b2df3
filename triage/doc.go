// Package triage turns a read-only record sequence into the views the portals
// render: filtered and sorted lists, KPI aggregates, SLA state, the recommended
// worker for an assignment and the current selection.
//
// Every function is pure over its inputs. Inputs are never reordered or
// modified; results are freshly allocated slices.
package triage
