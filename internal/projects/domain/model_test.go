package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideaboard-app/go-ideaboard-backend/internal/projects/domain"
)

func TestParseStatus(t *testing.T) {
	t.Run("accepts all enumerated values", func(t *testing.T) {
		for _, s := range domain.AllStatuses() {
			got, err := domain.ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, got)
		}
	})

	t.Run("is case-insensitive and trims", func(t *testing.T) {
		got, err := domain.ParseStatus("  In_Progress ")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusInProgress, got)
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := domain.ParseStatus("archived")
		require.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}

func TestAllStatuses_WorkflowOrder(t *testing.T) {
	want := []domain.ProjectStatus{
		domain.StatusDraft,
		domain.StatusAnalyzing,
		domain.StatusApproved,
		domain.StatusBacklog,
		domain.StatusInProgress,
		domain.StatusQA,
		domain.StatusProd,
	}
	assert.Equal(t, want, domain.AllStatuses())
}

func TestParseEffortSize(t *testing.T) {
	t.Run("accepts all sizes case-insensitively", func(t *testing.T) {
		got, err := domain.ParseEffortSize("xl")
		require.NoError(t, err)
		assert.Equal(t, domain.EffortXL, got)
	})

	t.Run("rejects unknown sizes", func(t *testing.T) {
		for _, bad := range []string{"", "XS", "XXL", "medium"} {
			_, err := domain.ParseEffortSize(bad)
			require.ErrorIs(t, err, domain.ErrInvalidEffortSize, "ParseEffortSize(%q)", bad)
		}
	})
}
