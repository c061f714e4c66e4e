// Package priority computes the derived priority score for a project from
// its impact, urgency and effort inputs. The calculation is pure and the
// same routine backs both the live preview endpoint and record creation.
package priority

import (
	"fmt"
	"math"

	"github.com/ideaboard-app/go-ideaboard-backend/internal/projects/domain"
)

// effortWeights is the fixed effort-to-weight table. Closed enumeration, no
// dynamic extension.
var effortWeights = map[domain.EffortSize]float64{
	domain.EffortS:  1,
	domain.EffortM:  3,
	domain.EffortL:  5,
	domain.EffortXL: 8,
}

// Calculate returns (impact * urgency) / weight(effort) rounded half away
// from zero to 2 decimal places. Impact and urgency must each be in [1, 5].
// Both error cases are caller errors, not retryable.
func Calculate(impact, urgency int, effort domain.EffortSize) (float64, error) {
	if impact < 1 || impact > 5 {
		return 0, fmt.Errorf("%w: impact %d", domain.ErrInvalidScoreRange, impact)
	}
	if urgency < 1 || urgency > 5 {
		return 0, fmt.Errorf("%w: urgency %d", domain.ErrInvalidScoreRange, urgency)
	}

	weight, ok := effortWeights[effort]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidEffortSize, effort)
	}

	p := float64(impact*urgency) / weight

	// Round to 2 decimal places for display stability. math.Round is
	// half-away-from-zero, so 0.125 -> 0.13.
	return math.Round(p*100) / 100, nil
}
