package analytics

import (
	"context"

	"insightchat/internal/models"
	"insightchat/internal/query"
)

// Reader is the aggregation collaborator the response pipeline consumes.
// Implementations are network- or disk-bound; every call takes a context
// so the surrounding system can impose deadlines. The pipeline works the
// same whether or not the implementation caches.
type Reader interface {
	// Overview returns period-level aggregates, optionally filtered by scope.
	Overview(ctx context.Context, p query.Period, scope string) (models.Overview, error)

	// DimensionRows returns per-day rows for a dimension over the period.
	// Rows are unsorted and unbounded; callers aggregate and truncate.
	DimensionRows(ctx context.Context, p query.Period, d query.Dimension, scope string) ([]models.DimensionRow, error)

	// EventCounts returns the total count per event id; ids absent from
	// the store are present in the result with a zero count.
	EventCounts(ctx context.Context, p query.Period, events []string, scope string) (map[string]float64, error)

	// DailySeries returns the per-day traffic series for the period.
	// Callers must not assume ordering and should sort defensively.
	DailySeries(ctx context.Context, p query.Period, scope string) ([]models.DailyPoint, error)
}
