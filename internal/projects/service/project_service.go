// Package service is the action layer for projects. Every mutating
// operation returns an ActionResult instead of raising: callers must inspect
// Success rather than infer it from the absence of an error. Role checks
// happen here in addition to the route guard, so a direct invocation that
// never passed through routing is still rejected.
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	authdomain "github.com/ideaboard-app/go-ideaboard-backend/internal/auth/domain"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/authz"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/projects/cache"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/projects/domain"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/projects/priority"
)

const recentProjectsLimit = 5

// ActionResult is the uniform outcome of every mutating operation.
type ActionResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ProjectID string `json:"project_id,omitempty"`
}

func failure(message string) ActionResult {
	return ActionResult{Success: false, Message: message}
}

// ProjectStore is the persistence boundary the service needs.
type ProjectStore interface {
	Insert(ctx context.Context, p *domain.Project) error
	List(ctx context.Context) ([]domain.Project, error)
	Recent(ctx context.Context, limit int) ([]domain.Project, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, statuses ...domain.ProjectStatus) (int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.ProjectStatus) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ViewCache receives the refresh signal after mutations and caches the
// dashboard snapshot. May be nil, in which case both are skipped.
type ViewCache interface {
	InvalidateViews(ctx context.Context, views ...string) error
	GetDashboard(ctx context.Context) (*domain.DashboardStats, error)
	SetDashboard(ctx context.Context, stats *domain.DashboardStats) error
}

type ProjectService struct {
	store ProjectStore
	views ViewCache
}

func NewProjectService(store ProjectStore, views ViewCache) *ProjectService {
	return &ProjectService{
		store: store,
		views: views,
	}
}

// CreateProjectInput carries the creation form fields. The priority is not
// part of the input: it is always recomputed server-side from the scores.
type CreateProjectInput struct {
	Title         string
	Description   string
	BusinessValue string
	ImpactScore   int
	UrgencyScore  int
	EffortSize    domain.EffortSize
}

// CreateProject inserts a new project in draft status authored by the actor.
func (s *ProjectService) CreateProject(ctx context.Context, actor *authdomain.Actor, in CreateProjectInput) ActionResult {
	if actor == nil || !authz.CanCreateProject(actor.Role) {
		return failure("Unauthorized to create projects.")
	}

	title := strings.TrimSpace(in.Title)
	if utf8.RuneCountInString(title) < 2 {
		return failure("Title must be at least 2 characters.")
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.BusinessValue)) < 5 {
		return failure("Please describe the business value (at least 5 characters).")
	}

	prio, err := priority.Calculate(in.ImpactScore, in.UrgencyScore, in.EffortSize)
	if err != nil {
		return failure(err.Error())
	}

	p := &domain.Project{
		ID:                 uuid.NewString(),
		Title:              title,
		Description:        strings.TrimSpace(in.Description),
		BusinessValue:      strings.TrimSpace(in.BusinessValue),
		ImpactScore:        in.ImpactScore,
		UrgencyScore:       in.UrgencyScore,
		EffortSize:         in.EffortSize,
		CalculatedPriority: prio,
		Status:             domain.StatusDraft,
		AuthorID:           actor.ID,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, p); err != nil {
		log.Printf("Error creating project: %v", err)
		return failure(fmt.Sprintf("Failed to create project: %v", err))
	}

	s.refreshViews(ctx)

	return ActionResult{
		Success:   true,
		Message:   "Project created successfully!",
		ProjectID: p.ID,
	}
}

// GetProjects returns all projects newest first. Store failures degrade to
// an empty slice; the caller never sees a fault.
func (s *ProjectService) GetProjects(ctx context.Context) []domain.Project {
	projects, err := s.store.List(ctx)
	if err != nil {
		log.Printf("Error fetching projects: %v", err)
		return []domain.Project{}
	}
	return projects
}

// GetDashboardStats returns the dashboard aggregate, serving the cached
// snapshot when one exists. On a miss the counts are computed and the
// snapshot stored back. Failures degrade to a zeroed snapshot.
func (s *ProjectService) GetDashboardStats(ctx context.Context) *domain.DashboardStats {
	if s.views != nil {
		if stats, err := s.views.GetDashboard(ctx); err == nil && stats != nil {
			return stats
		}
	}

	stats, err := s.computeDashboard(ctx)
	if err != nil {
		log.Printf("Error fetching dashboard stats: %v", err)
		return &domain.DashboardStats{RecentProjects: []domain.Project{}}
	}

	if s.views != nil {
		if err := s.views.SetDashboard(ctx, stats); err != nil {
			log.Printf("Error caching dashboard stats: %v", err)
		}
	}

	return stats
}

// RefreshDashboard recomputes the snapshot and stores it, bypassing the
// cached copy. Called by the background warmer.
func (s *ProjectService) RefreshDashboard(ctx context.Context) error {
	stats, err := s.computeDashboard(ctx)
	if err != nil {
		return err
	}
	if s.views == nil {
		return nil
	}
	return s.views.SetDashboard(ctx, stats)
}

// computeDashboard issues the constituent queries concurrently. The group is
// not atomic; see domain.DashboardStats.
func (s *ProjectService) computeDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.store.CountAll(gctx)
		stats.Total = n
		return err
	})
	g.Go(func() error {
		n, err := s.store.CountByStatus(gctx, domain.StatusDraft, domain.StatusAnalyzing)
		stats.PendingReview = n
		return err
	})
	g.Go(func() error {
		n, err := s.store.CountByStatus(gctx, domain.StatusInProgress, domain.StatusQA)
		stats.InProgress = n
		return err
	})
	g.Go(func() error {
		recent, err := s.store.Recent(gctx, recentProjectsLimit)
		if recent == nil {
			recent = []domain.Project{}
		}
		stats.RecentProjects = recent
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

// UpdateProjectStatus overwrites the status field. Admin only. Any of the
// enumerated status values is accepted; there is no transition-graph check.
func (s *ProjectService) UpdateProjectStatus(ctx context.Context, actor *authdomain.Actor, id string, status domain.ProjectStatus) ActionResult {
	if actor == nil || !authz.CanManageProjects(actor.Role) {
		return failure("Unauthorized. Only ADMIN can update project status.")
	}

	// Normalize before persisting so a case-variant like "IN_PROGRESS"
	// is stored in canonical form and stays visible to CountByStatus.
	parsed, err := domain.ParseStatus(status.String())
	if err != nil {
		return failure(err.Error())
	}

	ok, err := s.store.UpdateStatus(ctx, id, parsed)
	if err != nil {
		log.Printf("Error updating project status: %v", err)
		return failure("Failed to update status.")
	}
	if !ok {
		return failure("Failed to update status.")
	}

	s.refreshViews(ctx)

	return ActionResult{Success: true, Message: fmt.Sprintf("Status updated to %s", parsed)}
}

// DeleteProject hard-removes a project. Admin only.
func (s *ProjectService) DeleteProject(ctx context.Context, actor *authdomain.Actor, id string) ActionResult {
	if actor == nil || !authz.CanManageProjects(actor.Role) {
		return failure("Unauthorized. Only ADMIN can delete projects.")
	}

	ok, err := s.store.Delete(ctx, id)
	if err != nil {
		log.Printf("Error deleting project: %v", err)
		return failure("Failed to delete project.")
	}
	if !ok {
		return failure("Failed to delete project.")
	}

	s.refreshViews(ctx)

	return ActionResult{Success: true, Message: "Project deleted."}
}

func (s *ProjectService) refreshViews(ctx context.Context) {
	if s.views == nil {
		return
	}
	if err := s.views.InvalidateViews(ctx, cache.ViewHome, cache.ViewProjects); err != nil {
		log.Printf("Error invalidating views: %v", err)
	}
}
