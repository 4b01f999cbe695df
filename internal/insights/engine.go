package insights

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"insightchat/internal/analytics"
	"insightchat/internal/config"
	"insightchat/internal/models"
	"insightchat/internal/query"
)

// Turn is one user question with its request-scoped context. No ambient
// state: everything the pipeline needs travels here or in the context.
type Turn struct {
	Scope string
	Text  string
}

// Engine turns a parsed question into a ResponseMessage. It is the only
// consumer of the aggregation collaborator; each turn performs at most
// two blocking fetches (current and previous period).
type Engine struct {
	reader  analytics.Reader
	catalog *config.Catalog
	parser  *query.Parser
	logger  zerolog.Logger
	now     func() time.Time
}

// New creates an engine over a reader and catalog.
func New(reader analytics.Reader, catalog *config.Catalog, logger zerolog.Logger) *Engine {
	return &Engine{
		reader:  reader,
		catalog: catalog,
		parser:  query.NewParser(catalog.EventAliasMap()),
		logger:  logger,
		now:     time.Now,
	}
}

const defaultRankingSize = 10

// Answer computes the response for one turn. Parse problems never reach
// the error return; it is reserved for collaborator failures, which the
// caller surfaces as an error turn in the conversation.
func (e *Engine) Answer(ctx context.Context, turn Turn) (models.ResponseMessage, error) {
	parsed := e.parser.Parse(turn.Text, e.now())
	queryType := query.Classify(parsed)

	e.logger.Debug().
		Str("query_type", queryType.String()).
		Str("period", parsed.Period.Label()).
		Str("event", parsed.Event).
		Str("scope", turn.Scope).
		Msg("Parsed query")

	// A detected conversion event always wins over the classifier.
	if parsed.Event != "" {
		return e.answerEvent(ctx, parsed, turn.Scope)
	}

	switch queryType {
	case query.QueryComparison:
		return models.ResponseMessage{Text: "比較機能は現在開発中です。"}, nil
	case query.QueryRanking:
		return e.answerRanking(ctx, parsed, turn.Scope)
	case query.QueryDimensionMetric:
		return e.answerDimensionMetric(ctx, parsed, turn.Scope)
	case query.QueryMetricOnly:
		return e.answerMetric(ctx, parsed, turn.Scope)
	default:
		return e.answerGeneral(ctx, parsed, turn.Scope)
	}
}

// answerEvent reports the event's count for the period against the
// immediately preceding period of equal length.
func (e *Engine) answerEvent(ctx context.Context, parsed query.ParsedQuery, scope string) (models.ResponseMessage, error) {
	current, err := e.reader.EventCounts(ctx, parsed.Period, []string{parsed.Event}, scope)
	if err != nil {
		return models.ResponseMessage{}, err
	}
	previousPeriod := PreviousPeriod(parsed.Period)
	previous, err := e.reader.EventCounts(ctx, previousPeriod, []string{parsed.Event}, scope)
	if err != nil {
		return models.ResponseMessage{}, err
	}

	cmp := Compare(current[parsed.Event], previous[parsed.Event])
	displayName := e.catalog.EventDisplayName(parsed.Event)

	text := fmt.Sprintf("%sから%sまでの%s件数は %s 件です。",
		parsed.Period.Start.Format("2006-01-02"),
		parsed.Period.End.Format("2006-01-02"),
		displayName,
		FormatCount(cmp.Current))
	if cmp.Previous != 0 {
		text += fmt.Sprintf(" 前期間（%s）は %s 件で、差は %s 件（%s）でした。",
			previousPeriod.Label(),
			FormatCount(cmp.Previous),
			formatSigned(cmp.Delta),
			formatSignedPercent(cmp.DeltaPercent))
	}

	return models.ResponseMessage{
		Text: text,
		Table: &models.Table{
			Columns: []string{"期間", "件数"},
			Rows: [][]string{
				{parsed.Period.Label(), FormatCount(cmp.Current)},
				{previousPeriod.Label(), FormatCount(cmp.Previous)},
			},
		},
	}, nil
}

// answerMetric reports a single metric's aggregate for the period.
func (e *Engine) answerMetric(ctx context.Context, parsed query.ParsedQuery, scope string) (models.ResponseMessage, error) {
	if parsed.Metric == query.MetricUnknown {
		return models.ResponseMessage{Text: "指標を特定できませんでした。"}, nil
	}

	overview, err := e.reader.Overview(ctx, parsed.Period, scope)
	if err != nil {
		return models.ResponseMessage{}, err
	}

	value := overview.MetricValue(parsed.Metric)
	text := fmt.Sprintf("%sから%sまでの%sは %s です。",
		parsed.Period.Start.Format("2006-01-02"),
		parsed.Period.End.Format("2006-01-02"),
		e.catalog.MetricLabel(parsed.Metric),
		FormatMetricValue(parsed.Metric, value))

	return models.ResponseMessage{Text: text}, nil
}

// answerDimensionMetric breaks a metric down by a dimension: sum for
// count metrics, mean for rate and duration metrics, sorted descending
// and truncated.
func (e *Engine) answerDimensionMetric(ctx context.Context, parsed query.ParsedQuery, scope string) (models.ResponseMessage, error) {
	rows, err := e.reader.DimensionRows(ctx, parsed.Period, parsed.Dimension, scope)
	if errors.Is(err, analytics.ErrUnsupportedDimension) {
		return models.ResponseMessage{Text: fmt.Sprintf("ディメンション「%s」にはまだ対応していません。", parsed.Dimension.Key())}, nil
	}
	if err != nil {
		return models.ResponseMessage{}, err
	}
	if len(rows) == 0 {
		return models.ResponseMessage{Text: "データがありません。"}, nil
	}

	size := defaultRankingSize
	if parsed.Ranking != nil {
		size = parsed.Ranking.Size
	}

	groups := aggregateRows(rows, parsed.Metric)
	sortGroupsDescending(groups)
	if len(groups) > size {
		groups = groups[:size]
	}

	dimLabel := e.catalog.DimensionLabel(parsed.Dimension)
	metricLabel := e.catalog.MetricLabel(parsed.Metric)
	valueLabel, x, y, cells := displayValues(groups, parsed.Metric, metricLabel)

	table := &models.Table{Columns: []string{dimLabel, valueLabel}}
	for i, group := range groups {
		table.Rows = append(table.Rows, []string{group.value, cells[i]})
	}

	orientation := "h"
	if parsed.Dimension == query.DimensionDevice {
		orientation = ""
	}

	return models.ResponseMessage{
		Text:  fmt.Sprintf("%s別%sのトップ%dは以下の通りです。", dimLabel, metricLabel, len(groups)),
		Table: table,
		Graph: barChart(fmt.Sprintf("%s別%s", dimLabel, metricLabel), dimLabel, valueLabel, orientation, x, y),
	}, nil
}

// answerRanking serves top-N requests. Only descending rankings of a
// count metric over the source or channel dimension are implemented;
// everything else is reported as not supported yet.
func (e *Engine) answerRanking(ctx context.Context, parsed query.ParsedQuery, scope string) (models.ResponseMessage, error) {
	metric := parsed.Metric
	if metric == query.MetricUnknown {
		metric = query.MetricSessions
	}

	dimension := parsed.Dimension
	if dimension == query.DimensionUnknown {
		dimension = query.DimensionSource
	}

	supported := parsed.Ranking.Direction == query.Descending &&
		metric.Class() == query.ClassCount &&
		(dimension == query.DimensionSource || dimension == query.DimensionChannelGroup)
	if !supported {
		return models.ResponseMessage{Text: "このランキングにはまだ対応していません。"}, nil
	}

	rows, err := e.reader.DimensionRows(ctx, parsed.Period, dimension, scope)
	if err != nil {
		return models.ResponseMessage{}, err
	}
	if len(rows) == 0 {
		return models.ResponseMessage{Text: "データがありません。"}, nil
	}

	groups := aggregateRows(rows, metric)
	sortGroupsDescending(groups)
	if len(groups) > parsed.Ranking.Size {
		groups = groups[:parsed.Ranking.Size]
	}

	dimLabel := e.catalog.DimensionLabel(dimension)
	metricLabel := e.catalog.MetricLabel(metric)

	table := &models.Table{Columns: []string{dimLabel, metricLabel}}
	x := make([]string, 0, len(groups))
	y := make([]float64, 0, len(groups))
	for _, group := range groups {
		table.Rows = append(table.Rows, []string{group.value, FormatCount(group.total)})
		x = append(x, group.value)
		y = append(y, group.total)
	}

	title := fmt.Sprintf("%sトップ%d", dimLabel, len(groups))
	return models.ResponseMessage{
		Text:  fmt.Sprintf("%sトップ%dは以下の通りです。", dimLabel, len(groups)),
		Table: table,
		Graph: barChart(title, dimLabel, metricLabel, "h", x, y),
	}, nil
}

// answerGeneral reports period-level aggregates plus the daily traffic
// series. Empty collaborator results are informational, never an error.
func (e *Engine) answerGeneral(ctx context.Context, parsed query.ParsedQuery, scope string) (models.ResponseMessage, error) {
	overview, err := e.reader.Overview(ctx, parsed.Period, scope)
	if err != nil {
		return models.ResponseMessage{}, err
	}
	points, err := e.reader.DailySeries(ctx, parsed.Period, scope)
	if err != nil {
		return models.ResponseMessage{}, err
	}
	if len(points) == 0 {
		return models.ResponseMessage{Text: "指定期間のデータがありません。"}, nil
	}

	// The store orders by date, but the contract does not promise it.
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	x := make([]string, 0, len(points))
	series := map[string][]float64{}
	order := []string{
		e.catalog.MetricLabel(query.MetricSessions),
		e.catalog.MetricLabel(query.MetricTotalUsers),
		e.catalog.MetricLabel(query.MetricPageViews),
	}
	for _, point := range points {
		x = append(x, point.Date.Format("2006-01-02"))
		series[order[0]] = append(series[order[0]], point.Sessions)
		series[order[1]] = append(series[order[1]], point.TotalUsers)
		series[order[2]] = append(series[order[2]], point.PageViews)
	}

	table := &models.Table{Columns: []string{"指標", "値"}}
	for _, metric := range []query.Metric{
		query.MetricSessions,
		query.MetricTotalUsers,
		query.MetricPageViews,
		query.MetricEventCount,
		query.MetricConversions,
		query.MetricBounceRate,
		query.MetricAvgSessionDuration,
	} {
		table.Rows = append(table.Rows, []string{
			e.catalog.MetricLabel(metric),
			FormatMetricValue(metric, overview.MetricValue(metric)),
		})
	}

	text := fmt.Sprintf("%sから%sまでの概要データです。",
		parsed.Period.Start.Format("2006-01-02"),
		parsed.Period.End.Format("2006-01-02"))

	return models.ResponseMessage{
		Text:  text,
		Table: table,
		Graph: lineChart("日別トラフィック", "日付", "数", x, series, order),
	}, nil
}

// group is one aggregated dimension value.
type group struct {
	value string
	total float64
}

// aggregateRows groups per-day rows by dimension value: sum for count
// metrics, mean for rate and duration metrics.
func aggregateRows(rows []models.DimensionRow, metric query.Metric) []group {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string
	for _, row := range rows {
		if _, seen := sums[row.Value]; !seen {
			order = append(order, row.Value)
		}
		sums[row.Value] += row.MetricValue(metric)
		counts[row.Value]++
	}

	groups := make([]group, 0, len(order))
	for _, value := range order {
		total := sums[value]
		if metric.Class() != query.ClassCount {
			total /= float64(counts[value])
		}
		groups = append(groups, group{value: value, total: total})
	}
	return groups
}

func sortGroupsDescending(groups []group) {
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].total > groups[j].total })
}

// displayValues converts aggregated values to display units: rates ×100
// with a percent-labelled axis, durations to minutes.
func displayValues(groups []group, metric query.Metric, metricLabel string) (label string, x []string, y []float64, cells []string) {
	label = metricLabel
	x = make([]string, 0, len(groups))
	y = make([]float64, 0, len(groups))
	cells = make([]string, 0, len(groups))

	for _, g := range groups {
		x = append(x, g.value)
		switch metric.Class() {
		case query.ClassRate:
			y = append(y, g.total*100)
			cells = append(cells, fmt.Sprintf("%.2f", g.total*100))
		case query.ClassDuration:
			y = append(y, g.total/60)
			cells = append(cells, fmt.Sprintf("%.2f", g.total/60))
		default:
			y = append(y, g.total)
			cells = append(cells, FormatCount(g.total))
		}
	}

	switch metric.Class() {
	case query.ClassRate:
		label += "（%）"
	case query.ClassDuration:
		label += "（分）"
	}
	return label, x, y, cells
}
