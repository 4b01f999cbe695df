package models

import (
	"time"

	"insightchat/internal/query"
)

// Overview holds period-level aggregates: summed counts plus mean-valued
// rates and durations.
type Overview struct {
	Sessions        float64 `db:"sessions" json:"sessions"`
	TotalUsers      float64 `db:"total_users" json:"total_users"`
	PageViews       float64 `db:"page_views" json:"page_views"`
	EventCount      float64 `db:"event_count" json:"event_count"`
	Conversions     float64 `db:"conversions" json:"conversions"`
	BounceRate      float64 `db:"bounce_rate" json:"bounce_rate"`
	SessionDuration float64 `db:"session_duration" json:"session_duration"`
}

// MetricValue returns the aggregate for one metric.
func (o Overview) MetricValue(m query.Metric) float64 {
	switch m {
	case query.MetricSessions:
		return o.Sessions
	case query.MetricTotalUsers:
		return o.TotalUsers
	case query.MetricPageViews:
		return o.PageViews
	case query.MetricEventCount:
		return o.EventCount
	case query.MetricConversions:
		return o.Conversions
	case query.MetricBounceRate:
		return o.BounceRate
	case query.MetricAvgSessionDuration:
		return o.SessionDuration
	default:
		return 0
	}
}

// DimensionRow is one per-day row for a dimension value, carrying every
// measure so callers pick the one they aggregate.
type DimensionRow struct {
	Value           string  `db:"dim_value" json:"value"`
	Sessions        float64 `db:"sessions" json:"sessions"`
	TotalUsers      float64 `db:"total_users" json:"total_users"`
	PageViews       float64 `db:"page_views" json:"page_views"`
	EventCount      float64 `db:"event_count" json:"event_count"`
	Conversions     float64 `db:"conversions" json:"conversions"`
	BounceRate      float64 `db:"bounce_rate" json:"bounce_rate"`
	SessionDuration float64 `db:"session_duration" json:"session_duration"`
}

// MetricValue returns this row's value for one metric.
func (r DimensionRow) MetricValue(m query.Metric) float64 {
	return Overview{
		Sessions:        r.Sessions,
		TotalUsers:      r.TotalUsers,
		PageViews:       r.PageViews,
		EventCount:      r.EventCount,
		Conversions:     r.Conversions,
		BounceRate:      r.BounceRate,
		SessionDuration: r.SessionDuration,
	}.MetricValue(m)
}

// DailyPoint is one day of the traffic time series.
type DailyPoint struct {
	Date       time.Time `db:"event_date" json:"date"`
	Sessions   float64   `db:"sessions" json:"sessions"`
	TotalUsers float64   `db:"total_users" json:"total_users"`
	PageViews  float64   `db:"page_views" json:"page_views"`
}
