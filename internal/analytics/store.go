package analytics

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"insightchat/internal/models"
	"insightchat/internal/query"
)

// ErrUnsupportedDimension is returned when the store has no column for
// the requested dimension. The pipeline turns it into an explanatory
// message rather than a failure.
var ErrUnsupportedDimension = errors.New("unsupported dimension")

// ErrStoreUnavailable is returned when the server started without an
// analytics store connection. Turns fail with an error message instead
// of panicking on the nil handle.
var ErrStoreUnavailable = errors.New("analytics store not connected")

// Store implements Reader over the page_events table. All queries run in
// read-only transactions.
type Store struct {
	db *sqlx.DB
}

// NewStore creates a store over an open connection.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

const dateFormat = "2006-01-02"

// dimensionColumn maps a dimension to its page_events column.
func dimensionColumn(d query.Dimension) (string, error) {
	switch d {
	case query.DimensionSource:
		return "source", nil
	case query.DimensionChannelGroup:
		return "channel_group", nil
	case query.DimensionDevice:
		return "device_category", nil
	case query.DimensionPage:
		return "page_path", nil
	case query.DimensionCampaign:
		return "campaign", nil
	case query.DimensionCountry:
		return "country", nil
	case query.DimensionBrowser:
		return "browser", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedDimension, d.Key())
	}
}

// Overview returns period totals: counts are summed, rates and durations
// are averaged.
func (s *Store) Overview(ctx context.Context, p query.Period, scope string) (models.Overview, error) {
	if s.db == nil {
		return models.Overview{}, ErrStoreUnavailable
	}

	q := `
		SELECT
		  COALESCE(SUM(sessions), 0)         AS sessions,
		  COALESCE(SUM(total_users), 0)      AS total_users,
		  COALESCE(SUM(page_views), 0)       AS page_views,
		  COALESCE(SUM(event_count), 0)      AS event_count,
		  COALESCE(SUM(conversions), 0)      AS conversions,
		  COALESCE(AVG(bounce_rate), 0)      AS bounce_rate,
		  COALESCE(AVG(session_duration), 0) AS session_duration
		FROM page_events
		WHERE event_date BETWEEN ? AND ?`
	args := []interface{}{p.Start.Format(dateFormat), p.End.Format(dateFormat)}
	q, args = withScope(q, args, scope)

	var overview models.Overview
	if err := getReadOnly(ctx, s.db, &overview, s.db.Rebind(q), args...); err != nil {
		return models.Overview{}, fmt.Errorf("overview query: %w", err)
	}
	return overview, nil
}

// DimensionRows returns one row per dimension value per day.
func (s *Store) DimensionRows(ctx context.Context, p query.Period, d query.Dimension, scope string) ([]models.DimensionRow, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	column, err := dimensionColumn(d)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		SELECT
		  %s                                 AS dim_value,
		  COALESCE(SUM(sessions), 0)         AS sessions,
		  COALESCE(SUM(total_users), 0)      AS total_users,
		  COALESCE(SUM(page_views), 0)       AS page_views,
		  COALESCE(SUM(event_count), 0)      AS event_count,
		  COALESCE(SUM(conversions), 0)      AS conversions,
		  COALESCE(AVG(bounce_rate), 0)      AS bounce_rate,
		  COALESCE(AVG(session_duration), 0) AS session_duration
		FROM page_events
		WHERE event_date BETWEEN ? AND ?`, column)
	args := []interface{}{p.Start.Format(dateFormat), p.End.Format(dateFormat)}
	q, args = withScope(q, args, scope)
	q += fmt.Sprintf(" GROUP BY %s, event_date", column)

	var rows []models.DimensionRow
	if err := selectReadOnly(ctx, s.db, &rows, s.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("dimension query: %w", err)
	}
	return rows, nil
}

// EventCounts returns the summed count per conversion event. Events with
// no rows in the period come back as zero.
func (s *Store) EventCounts(ctx context.Context, p query.Period, events []string, scope string) (map[string]float64, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	counts := make(map[string]float64, len(events))
	for _, event := range events {
		counts[event] = 0
	}
	if len(events) == 0 {
		return counts, nil
	}

	q := `
		SELECT event_name AS dim_value, COALESCE(SUM(event_count), 0) AS event_count
		FROM page_events
		WHERE event_date BETWEEN ? AND ? AND event_name IN (?)`
	args := []interface{}{p.Start.Format(dateFormat), p.End.Format(dateFormat), events}
	if scope != "" {
		q += " AND scope = ?"
		args = append(args, scope)
	}
	q += " GROUP BY event_name"

	q, inArgs, err := sqlx.In(q, args...)
	if err != nil {
		return nil, fmt.Errorf("event counts query: %w", err)
	}

	var rows []struct {
		Name  string  `db:"dim_value"`
		Count float64 `db:"event_count"`
	}
	if err := selectReadOnly(ctx, s.db, &rows, s.db.Rebind(q), inArgs...); err != nil {
		return nil, fmt.Errorf("event counts query: %w", err)
	}
	for _, row := range rows {
		counts[row.Name] = row.Count
	}
	return counts, nil
}

// DailySeries returns per-day traffic totals ordered by date.
func (s *Store) DailySeries(ctx context.Context, p query.Period, scope string) ([]models.DailyPoint, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	q := `
		SELECT
		  event_date,
		  COALESCE(SUM(sessions), 0)    AS sessions,
		  COALESCE(SUM(total_users), 0) AS total_users,
		  COALESCE(SUM(page_views), 0)  AS page_views
		FROM page_events
		WHERE event_date BETWEEN ? AND ?`
	args := []interface{}{p.Start.Format(dateFormat), p.End.Format(dateFormat)}
	q, args = withScope(q, args, scope)
	q += " GROUP BY event_date ORDER BY event_date"

	var points []models.DailyPoint
	if err := selectReadOnly(ctx, s.db, &points, s.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("daily series query: %w", err)
	}
	return points, nil
}

func withScope(q string, args []interface{}, scope string) (string, []interface{}) {
	if scope == "" {
		return q, args
	}
	return q + " AND scope = ?", append(args, scope)
}
