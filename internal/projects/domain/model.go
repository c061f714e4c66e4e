package domain

import (
	"fmt"
	"strings"
	"time"
)

// ProjectStatus is the review lifecycle stage of a project. The order of the
// enumeration is the intended forward progression of the workflow and is used
// for labeling only; any status may be written directly by an admin.
type ProjectStatus string

const (
	StatusDraft      ProjectStatus = "draft"
	StatusAnalyzing  ProjectStatus = "analyzing"
	StatusApproved   ProjectStatus = "approved"
	StatusBacklog    ProjectStatus = "backlog"
	StatusInProgress ProjectStatus = "in_progress"
	StatusQA         ProjectStatus = "qa"
	StatusProd       ProjectStatus = "prod"
)

// AllStatuses returns all valid status values in workflow order.
func AllStatuses() []ProjectStatus {
	return []ProjectStatus{
		StatusDraft,
		StatusAnalyzing,
		StatusApproved,
		StatusBacklog,
		StatusInProgress,
		StatusQA,
		StatusProd,
	}
}

// ParseStatus parses a string into a ProjectStatus, case-insensitive.
func ParseStatus(s string) (ProjectStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "draft":
		return StatusDraft, nil
	case "analyzing":
		return StatusAnalyzing, nil
	case "approved":
		return StatusApproved, nil
	case "backlog":
		return StatusBacklog, nil
	case "in_progress":
		return StatusInProgress, nil
	case "qa":
		return StatusQA, nil
	case "prod":
		return StatusProd, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// String returns the string representation of the status.
func (s ProjectStatus) String() string {
	return string(s)
}

// EffortSize is the t-shirt sizing of a project's implementation effort.
type EffortSize string

const (
	EffortS  EffortSize = "S"
	EffortM  EffortSize = "M"
	EffortL  EffortSize = "L"
	EffortXL EffortSize = "XL"
)

// AllEffortSizes returns all valid effort sizes from smallest to largest.
func AllEffortSizes() []EffortSize {
	return []EffortSize{EffortS, EffortM, EffortL, EffortXL}
}

// ParseEffortSize parses a string into an EffortSize, case-insensitive.
func ParseEffortSize(s string) (EffortSize, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "S":
		return EffortS, nil
	case "M":
		return EffortM, nil
	case "L":
		return EffortL, nil
	case "XL":
		return EffortXL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidEffortSize, s)
	}
}

// String returns the string representation of the effort size.
func (e EffortSize) String() string {
	return string(e)
}

// Project is a proposed unit of work moving through the review lifecycle.
// CalculatedPriority is computed once at creation from the submitted scores
// and persisted; it is never recomputed on read.
type Project struct {
	ID                 string        `json:"id"`
	Title              string        `json:"title"`
	Description        string        `json:"description,omitempty"`
	BusinessValue      string        `json:"business_value"`
	ImpactScore        int           `json:"impact_score"`
	UrgencyScore       int           `json:"urgency_score"`
	EffortSize         EffortSize    `json:"effort_size"`
	CalculatedPriority float64       `json:"calculated_priority"`
	Status             ProjectStatus `json:"status"`
	AuthorID           string        `json:"author_id"`
	CreatedAt          time.Time     `json:"created_at"`
}

// DashboardStats is a best-effort snapshot for the home dashboard. The
// constituent counts are issued concurrently and are not atomic as a group:
// a write landing between them can make Total disagree with the per-bucket
// counts. Acceptable for the dashboard, so it is not reconciled.
type DashboardStats struct {
	Total          int64     `json:"total"`
	PendingReview  int64     `json:"pending_review"`
	InProgress     int64     `json:"in_progress"`
	RecentProjects []Project `json:"recent_projects"`
}
