package repository_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideaboard-app/go-ideaboard-backend/internal/projects/domain"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/projects/repository"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/storage/postgres"
)

// setupTestRepo connects to the database named by TEST_DB_DSN and skips the
// test when it is not set.
func setupTestRepo(t *testing.T) (*repository.Repo, string) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set, skipping PostgreSQL integration test")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	// Schema setup goes through database/sql like the seed command does.
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, postgres.EnsureSchema(context.Background(), db))

	authorID := seedAuthor(t, db)

	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `delete from projects where author_id = $1`, authorID)
	})

	return repository.NewRepo(pool), authorID
}

func seedAuthor(t *testing.T, db *sql.DB) string {
	var id string
	err := db.QueryRow(`
		INSERT INTO users (email, name, password_hash, role)
		VALUES ('itest@example.com', 'Integration Test', 'x', 'ADMIN')
		ON CONFLICT (email) DO UPDATE SET name = excluded.name
		RETURNING id
	`).Scan(&id)
	require.NoError(t, err)
	return id
}

func newProject(authorID, title string, status domain.ProjectStatus) *domain.Project {
	return &domain.Project{
		ID:                 uuid.NewString(),
		Title:              title,
		BusinessValue:      "integration coverage",
		ImpactScore:        3,
		UrgencyScore:       3,
		EffortSize:         domain.EffortM,
		CalculatedPriority: 3.0,
		Status:             status,
		AuthorID:           authorID,
	}
}

func TestRepo_InsertListUpdateDelete(t *testing.T) {
	repo, authorID := setupTestRepo(t)
	ctx := context.Background()

	p := newProject(authorID, "Integration project", domain.StatusDraft)
	require.NoError(t, repo.Insert(ctx, p))
	assert.False(t, p.CreatedAt.IsZero())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	assert.Equal(t, p.ID, list[0].ID, "newest project comes first")

	ok, err := repo.UpdateStatus(ctx, p.ID, domain.StatusInProgress)
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := repo.CountByStatus(ctx, domain.StatusInProgress, domain.StatusQA)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))

	ok, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, ok, "second delete finds nothing")
}

func TestRepo_UpdateMissingID(t *testing.T) {
	repo, _ := setupTestRepo(t)

	ok, err := repo.UpdateStatus(context.Background(), uuid.NewString(), domain.StatusQA)
	require.NoError(t, err)
	assert.False(t, ok)
}
