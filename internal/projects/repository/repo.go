package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ideaboard-app/go-ideaboard-backend/internal/projects/domain"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const projectColumns = `
id, title, coalesce(description, ''), business_value, impact_score,
urgency_score, effort_size, calculated_priority, status, author_id, created_at`

// Insert persists a new project. The caller supplies the ID and the
// precomputed priority; created_at comes from the database clock.
func (r *Repo) Insert(ctx context.Context, p *domain.Project) error {
	const q = `
insert into projects
  (id, title, description, business_value, impact_score, urgency_score,
   effort_size, calculated_priority, status, author_id)
values ($1, $2, nullif($3, ''), $4, $5, $6, $7, $8, $9, $10)
returning created_at;
`
	return r.db.QueryRow(ctx, q,
		p.ID, p.Title, p.Description, p.BusinessValue, p.ImpactScore,
		p.UrgencyScore, p.EffortSize.String(), p.CalculatedPriority,
		p.Status.String(), p.AuthorID,
	).Scan(&p.CreatedAt)
}

// List returns all projects ordered by creation time, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Project, error) {
	const q = `
select ` + projectColumns + `
from projects
order by created_at desc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProjects(rows)
}

// Recent returns the most recently created projects, newest first.
func (r *Repo) Recent(ctx context.Context, limit int) ([]domain.Project, error) {
	const q = `
select ` + projectColumns + `
from projects
order by created_at desc
limit $1;
`
	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProjects(rows)
}

// CountAll returns the total number of projects.
func (r *Repo) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `select count(*) from projects;`).Scan(&n)
	return n, err
}

// CountByStatus returns the number of projects whose status is in the set.
func (r *Repo) CountByStatus(ctx context.Context, statuses ...domain.ProjectStatus) (int64, error) {
	vals := make([]string, 0, len(statuses))
	for _, s := range statuses {
		vals = append(vals, s.String())
	}

	var n int64
	err := r.db.QueryRow(ctx, `select count(*) from projects where status = any($1);`, vals).Scan(&n)
	return n, err
}

// UpdateStatus overwrites the status of a project. Returns false when the id
// does not exist. No transition-graph check: any status value may be written.
func (r *Repo) UpdateStatus(ctx context.Context, id string, status domain.ProjectStatus) (bool, error) {
	const q = `update projects set status = $2 where id = $1;`

	ct, err := r.db.Exec(ctx, q, id, status.String())
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

// Delete hard-removes a project. Returns false when the id does not exist.
func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	const q = `delete from projects where id = $1;`

	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanProjects(rows pgxRows) ([]domain.Project, error) {
	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		var effort, status string
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.BusinessValue, &p.ImpactScore,
			&p.UrgencyScore, &effort, &p.CalculatedPriority, &status,
			&p.AuthorID, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		p.EffortSize = domain.EffortSize(effort)
		p.Status = domain.ProjectStatus(status)
		out = append(out, p)
	}
	return out, rows.Err()
}
