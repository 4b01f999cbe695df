package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		parsed ParsedQuery
		want   QueryType
	}{
		{
			name:   "comparison beats everything",
			parsed: ParsedQuery{Comparison: true, Ranking: &Ranking{Size: 5}, Dimension: DimensionSource, Metric: MetricSessions},
			want:   QueryComparison,
		},
		{
			name:   "ranking beats dimension metric",
			parsed: ParsedQuery{Ranking: &Ranking{Size: 5}, Dimension: DimensionSource, Metric: MetricSessions},
			want:   QueryRanking,
		},
		{
			name:   "dimension plus metric",
			parsed: ParsedQuery{Dimension: DimensionDevice, Metric: MetricBounceRate},
			want:   QueryDimensionMetric,
		},
		{
			name:   "metric only",
			parsed: ParsedQuery{Metric: MetricSessions},
			want:   QueryMetricOnly,
		},
		{
			name:   "dimension without metric is general",
			parsed: ParsedQuery{Dimension: DimensionSource},
			want:   QueryGeneral,
		},
		{
			name:   "nothing recognized",
			parsed: ParsedQuery{},
			want:   QueryGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.parsed))
		})
	}
}

func TestParserParse(t *testing.T) {
	parser := NewParser(map[string]string{"資料請求": "CV_資料請求"})

	parsed := parser.Parse("過去7日間の流入元トップ5は？", wednesday)
	assert.Equal(t, date(2025, 3, 6), parsed.Period.Start)
	assert.Equal(t, date(2025, 3, 12), parsed.Period.End)
	assert.Equal(t, DimensionSource, parsed.Dimension)
	assert.NotNil(t, parsed.Ranking)
	assert.Equal(t, 5, parsed.Ranking.Size)
	assert.Equal(t, QueryRanking, Classify(parsed))

	parsed = parser.Parse("資料請求は今月どれくらい？", wednesday)
	assert.Equal(t, "CV_資料請求", parsed.Event)
	assert.Equal(t, date(2025, 3, 1), parsed.Period.Start)

	// The parser never fails: unrecognized text still carries a period.
	parsed = parser.Parse("", wednesday)
	assert.Equal(t, 7, parsed.Period.Days())
	assert.Equal(t, QueryGeneral, Classify(parsed))
}
