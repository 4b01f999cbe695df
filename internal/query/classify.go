package query

import "time"

// QueryType is the closed set of question shapes the assistant answers.
type QueryType int

const (
	QueryGeneral QueryType = iota
	QueryComparison
	QueryRanking
	QueryDimensionMetric
	QueryMetricOnly
)

// String returns a stable name for logging.
func (t QueryType) String() string {
	switch t {
	case QueryComparison:
		return "comparison"
	case QueryRanking:
		return "ranking"
	case QueryDimensionMetric:
		return "dimension_metric"
	case QueryMetricOnly:
		return "metric_only"
	default:
		return "general"
	}
}

// ParsedQuery is the structured intent extracted from one user question.
// Period is always populated; the resolver guarantees a fallback.
type ParsedQuery struct {
	Period     Period
	Metric     Metric
	Dimension  Dimension
	Ranking    *Ranking
	Comparison bool
	Event      string
	RawText    string
}

// Classify maps a parsed query to its type. The precedence is fixed and
// evaluated top-down: a question that mentions both a ranking size and a
// dimension is always a ranking request.
func Classify(p ParsedQuery) QueryType {
	switch {
	case p.Comparison:
		return QueryComparison
	case p.Ranking != nil:
		return QueryRanking
	case p.Dimension != DimensionUnknown && p.Metric != MetricUnknown:
		return QueryDimensionMetric
	case p.Metric != MetricUnknown:
		return QueryMetricOnly
	default:
		return QueryGeneral
	}
}

// Parser turns free text into a ParsedQuery. The period, keyword, and
// event lookups are independent of one another.
type Parser struct {
	events *EventResolver
}

// NewParser builds a parser over the given event-alias table.
func NewParser(eventAliases map[string]string) *Parser {
	return &Parser{events: NewEventResolver(eventAliases)}
}

// Parse extracts every recognized field from the text. It never fails.
func (p *Parser) Parse(text string, today time.Time) ParsedQuery {
	return ParsedQuery{
		Period:     ResolvePeriod(text, today),
		Metric:     ExtractMetric(text),
		Dimension:  ExtractDimension(text),
		Ranking:    ExtractRanking(text),
		Comparison: ExtractComparison(text),
		Event:      p.events.Resolve(text),
		RawText:    text,
	}
}
