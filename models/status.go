package models

import (
	"fmt"
	"strings"
)

// Role identifies which portal a caller is using
type Role string

const (
	RoleCitizen    Role = "citizen"
	RoleAuthority  Role = "authority"
	RoleDepartment Role = "department"
	RoleCSR        Role = "csr"
)

// Roles lists every portal role
var Roles = []Role{RoleCitizen, RoleAuthority, RoleDepartment, RoleCSR}

// ParseRole returns the role named by s
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleCitizen:
		return RoleCitizen, true
	case RoleAuthority:
		return RoleAuthority, true
	case RoleDepartment:
		return RoleDepartment, true
	case RoleCSR:
		return RoleCSR, true
	}
	return "", false
}

// Status is the single complaint lifecycle shared by every portal
type Status string

const (
	StatusReported   Status = "reported"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

// Statuses is the lifecycle in order
var Statuses = []Status{StatusReported, StatusAssigned, StatusInProgress, StatusResolved}

var statusLabels = map[Role][4]string{
	RoleCitizen:    {"pending", "acknowledged", "in-progress", "resolved"},
	RoleAuthority:  {"Reported", "Assigned", "In Progress", "Resolved"},
	RoleDepartment: {"Unassigned", "Assigned", "In Progress", "Completed"},
	RoleCSR:        {"Reported", "Assigned", "In Progress", "Resolved"},
}

func (s Status) index() int {
	for i, st := range Statuses {
		if st == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is one of the canonical statuses
func (s Status) Valid() bool { return s.index() >= 0 }

// Label returns the display label of s in the vocabulary of role
func (s Status) Label(role Role) string {
	labels, ok := statusLabels[role]
	i := s.index()
	if !ok || i < 0 {
		return string(s)
	}
	return labels[i]
}

// ParseStatus accepts a role label or a canonical status value
func ParseStatus(role Role, s string) (Status, error) {
	s = strings.TrimSpace(s)
	if st := Status(s); st.Valid() {
		return st, nil
	}
	if labels, ok := statusLabels[role]; ok {
		for i, label := range labels {
			if strings.EqualFold(label, s) {
				return Statuses[i], nil
			}
		}
	}
	return "", fmt.Errorf("unknown status %q for %s portal", s, role)
}

// StatusLabels returns the labels of role in lifecycle order
func StatusLabels(role Role) []string {
	labels, ok := statusLabels[role]
	if !ok {
		labels = statusLabels[RoleAuthority]
	}
	return labels[:]
}
