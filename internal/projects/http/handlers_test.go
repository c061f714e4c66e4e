package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth"
	authdomain "github.com/ideaboard-app/go-ideaboard-backend/internal/auth/domain"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/projects/domain"
	projhttp "github.com/ideaboard-app/go-ideaboard-backend/internal/projects/http"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/projects/service"
)

// memStore is a minimal in-memory ProjectStore for handler tests.
type memStore struct {
	projects map[string]domain.Project
}

func (m *memStore) Insert(_ context.Context, p *domain.Project) error {
	m.projects[p.ID] = *p
	return nil
}

func (m *memStore) List(_ context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(m.projects))
	for _, p := range m.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) Recent(ctx context.Context, limit int) ([]domain.Project, error) {
	all, _ := m.List(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *memStore) CountAll(_ context.Context) (int64, error) {
	return int64(len(m.projects)), nil
}

func (m *memStore) CountByStatus(_ context.Context, statuses ...domain.ProjectStatus) (int64, error) {
	var n int64
	for _, p := range m.projects {
		for _, s := range statuses {
			if p.Status == s {
				n++
			}
		}
	}
	return n, nil
}

func (m *memStore) UpdateStatus(_ context.Context, id string, status domain.ProjectStatus) (bool, error) {
	p, ok := m.projects[id]
	if !ok {
		return false, nil
	}
	p.Status = status
	m.projects[id] = p
	return true, nil
}

func (m *memStore) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.projects[id]; !ok {
		return false, nil
	}
	delete(m.projects, id)
	return true, nil
}

// withActor injects a fixed actor, standing in for the session guard.
func withActor(actor *authdomain.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor != nil {
			auth.SetActor(c, actor)
		}
		c.Next()
	}
}

func setupRouter(actor *authdomain.Actor) (*gin.Engine, *memStore) {
	gin.SetMode(gin.TestMode)

	store := &memStore{projects: make(map[string]domain.Project)}
	svc := service.NewProjectService(store, nil)

	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(withActor(actor))
	projhttp.Register(api.Group("/projects"), svc)
	projhttp.RegisterDashboard(api.Group("/dashboard"), svc)

	return r, store
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validBody() map[string]any {
	return map[string]any{
		"title":          "Search revamp",
		"description":    "Rebuild the search index",
		"business_value": "Cuts support ticket volume",
		"impact_score":   4,
		"urgency_score":  3,
		"effort_size":    "M",
	}
}

func TestCreateHandler(t *testing.T) {
	t.Run("user create succeeds with 201 and result", func(t *testing.T) {
		r, store := setupRouter(&authdomain.Actor{ID: "u-1", Role: authdomain.RoleUser})

		w := postJSON(r, "/api/v1/projects", validBody())
		require.Equal(t, http.StatusCreated, w.Code)

		var res service.ActionResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.True(t, res.Success)
		assert.NotEmpty(t, res.ProjectID)
		assert.Len(t, store.projects, 1)
	})

	t.Run("guest create is an in-band failure result", func(t *testing.T) {
		r, store := setupRouter(&authdomain.Actor{ID: "g-1", Role: authdomain.RoleGuest})

		w := postJSON(r, "/api/v1/projects", validBody())
		require.Equal(t, http.StatusOK, w.Code)

		var res service.ActionResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.False(t, res.Success)
		assert.Empty(t, store.projects)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		r, _ := setupRouter(&authdomain.Actor{ID: "u-1", Role: authdomain.RoleUser})

		req := httptest.NewRequest("POST", "/api/v1/projects", bytes.NewReader([]byte("{")))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPriorityPreviewHandler(t *testing.T) {
	r, _ := setupRouter(&authdomain.Actor{ID: "u-1", Role: authdomain.RoleUser})

	t.Run("returns the computed score", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/projects/priority-preview?impact=1&urgency=1&effort=XL", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			OK       bool    `json:"ok"`
			Priority float64 `json:"priority"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.OK)
		assert.Equal(t, 0.13, resp.Priority)
	})

	t.Run("rejects bad inputs", func(t *testing.T) {
		for _, q := range []string{
			"impact=abc&urgency=1&effort=S",
			"impact=6&urgency=1&effort=S",
			"impact=1&urgency=1&effort=XXL",
		} {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/projects/priority-preview?"+q, nil))
			assert.Equal(t, http.StatusBadRequest, w.Code, q)
		}
	})
}

func TestUpdateStatusHandler(t *testing.T) {
	r, store := setupRouter(&authdomain.Actor{ID: "a-1", Role: authdomain.RoleAdmin})
	store.projects["p-1"] = domain.Project{ID: "p-1", Status: domain.StatusDraft}

	data, _ := json.Marshal(map[string]string{"status": "qa"})
	req := httptest.NewRequest("PATCH", "/api/v1/projects/p-1/status", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var res service.ActionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, domain.StatusQA, store.projects["p-1"].Status)
}

func TestDeleteHandler(t *testing.T) {
	t.Run("admin deletes", func(t *testing.T) {
		r, store := setupRouter(&authdomain.Actor{ID: "a-1", Role: authdomain.RoleAdmin})
		store.projects["p-1"] = domain.Project{ID: "p-1"}

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/v1/projects/p-1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, store.projects)
	})

	t.Run("user delete is an in-band failure", func(t *testing.T) {
		r, store := setupRouter(&authdomain.Actor{ID: "u-1", Role: authdomain.RoleUser})
		store.projects["p-1"] = domain.Project{ID: "p-1"}

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/v1/projects/p-1", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var res service.ActionResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.False(t, res.Success)
		assert.Len(t, store.projects, 1)
	})
}

func TestDashboardStatsHandler(t *testing.T) {
	r, store := setupRouter(&authdomain.Actor{ID: "u-1", Role: authdomain.RoleUser})
	store.projects["p-1"] = domain.Project{ID: "p-1", Status: domain.StatusDraft}
	store.projects["p-2"] = domain.Project{ID: "p-2", Status: domain.StatusQA}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/dashboard/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK    bool                  `json:"ok"`
		Stats domain.DashboardStats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, int64(2), resp.Stats.Total)
	assert.Equal(t, int64(1), resp.Stats.PendingReview)
	assert.Equal(t, int64(1), resp.Stats.InProgress)
}
