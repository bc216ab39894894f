package enums

import (
	"fmt"
	"strings"
)

// ProjectStatus maps to the project_status check constraint.
type ProjectStatus string

const (
	ProjectStatusOpen   ProjectStatus = "open"
	ProjectStatusClosed ProjectStatus = "closed"
)

var validProjectStatuses = []ProjectStatus{
	ProjectStatusOpen,
	ProjectStatusClosed,
}

// String implements fmt.Stringer.
func (s ProjectStatus) String() string {
	return string(s)
}

// IsValid reports whether the value matches a canonical project status.
func (s ProjectStatus) IsValid() bool {
	for _, candidate := range validProjectStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseProjectStatus converts raw input into ProjectStatus.
func ParseProjectStatus(value string) (ProjectStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validProjectStatuses {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid project status %q", value)
}
