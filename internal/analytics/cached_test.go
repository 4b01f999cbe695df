package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insightchat/internal/cache"
	"insightchat/internal/models"
	"insightchat/internal/query"
)

// countingReader serves fixed data and counts how often each call reaches it.
type countingReader struct {
	calls map[string]int
	err   error
}

func newCountingReader() *countingReader {
	return &countingReader{calls: make(map[string]int)}
}

func (r *countingReader) Overview(_ context.Context, _ query.Period, _ string) (models.Overview, error) {
	r.calls["overview"]++
	return models.Overview{Sessions: 100}, r.err
}

func (r *countingReader) DimensionRows(_ context.Context, _ query.Period, _ query.Dimension, _ string) ([]models.DimensionRow, error) {
	r.calls["dimension"]++
	return []models.DimensionRow{{Value: "google", Sessions: 50}}, r.err
}

func (r *countingReader) EventCounts(_ context.Context, _ query.Period, events []string, _ string) (map[string]float64, error) {
	r.calls["events"]++
	counts := make(map[string]float64, len(events))
	for _, e := range events {
		counts[e] = 7
	}
	return counts, r.err
}

func (r *countingReader) DailySeries(_ context.Context, _ query.Period, _ string) ([]models.DailyPoint, error) {
	r.calls["daily"]++
	return []models.DailyPoint{{Sessions: 10}}, r.err
}

func TestCachedReaderServesSecondCallFromCache(t *testing.T) {
	inner := newCountingReader()
	reader := WithCache(inner, cache.New(), time.Minute)
	p := testPeriod()

	first, err := reader.Overview(context.Background(), p, "USCPA")
	require.NoError(t, err)
	second, err := reader.Overview(context.Background(), p, "USCPA")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls["overview"])
}

func TestCachedReaderKeysOnScopeAndPeriod(t *testing.T) {
	inner := newCountingReader()
	reader := WithCache(inner, cache.New(), time.Minute)
	p := testPeriod()

	_, err := reader.Overview(context.Background(), p, "USCPA")
	require.NoError(t, err)
	_, err = reader.Overview(context.Background(), p, "MBA")
	require.NoError(t, err)

	other := p
	other.End = other.End.AddDate(0, 0, 1)
	_, err = reader.Overview(context.Background(), other, "USCPA")
	require.NoError(t, err)

	assert.Equal(t, 3, inner.calls["overview"])
}

func TestCachedReaderEventCountsIgnoresEventOrder(t *testing.T) {
	inner := newCountingReader()
	reader := WithCache(inner, cache.New(), time.Minute)
	p := testPeriod()

	_, err := reader.EventCounts(context.Background(), p, []string{"a", "b"}, "")
	require.NoError(t, err)
	_, err = reader.EventCounts(context.Background(), p, []string{"b", "a"}, "")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls["events"])
}

func TestCachedReaderDoesNotCacheErrors(t *testing.T) {
	inner := newCountingReader()
	inner.err = errors.New("store down")
	reader := WithCache(inner, cache.New(), time.Minute)
	p := testPeriod()

	_, err := reader.DailySeries(context.Background(), p, "")
	require.Error(t, err)

	inner.err = nil
	points, err := reader.DailySeries(context.Background(), p, "")
	require.NoError(t, err)
	assert.Len(t, points, 1)
	assert.Equal(t, 2, inner.calls["daily"])
}

func TestCachedReaderDimensionRows(t *testing.T) {
	inner := newCountingReader()
	reader := WithCache(inner, cache.New(), time.Minute)
	p := testPeriod()

	rows, err := reader.DimensionRows(context.Background(), p, query.DimensionSource, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, err = reader.DimensionRows(context.Background(), p, query.DimensionSource, "")
	require.NoError(t, err)
	_, err = reader.DimensionRows(context.Background(), p, query.DimensionDevice, "")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls["dimension"])
}
