package ways

import (
	"context"
	"time"

	"github.com/Domenick1991/airlines/internal/domain"
	"github.com/Domenick1991/airlines/internal/metrics"
)

type measuredFinder struct {
	next WaysUseCase
}

// WithMetrics records the outcome and latency of every search made through next.
func WithMetrics(next WaysUseCase) WaysUseCase {
	return &measuredFinder{next: next}
}

func (m *measuredFinder) FindWays(ctx context.Context, q Query) (*domain.SearchResult, error) {
	started := time.Now()
	res, err := m.next.FindWays(ctx, q)
	if err != nil {
		metrics.ObserveSearch("error", started)
		return nil, err
	}
	metrics.ObserveSearch(res.Kind.String(), started)
	return res, nil
}
