package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMetric(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Metric
	}{
		{"session count japanese", "過去7日間のセッション数は？", MetricSessions},
		{"bare session word", "セッションの推移", MetricSessions},
		{"specific beats generic", "平均セッション時間を教えて", MetricAvgSessionDuration},
		{"users english", "how many users this month", MetricTotalUsers},
		{"pageviews abbreviation", "PVのトップ5", MetricPageViews},
		{"bounce rate", "直帰率はどれくらい？", MetricBounceRate},
		{"conversions", "コンバージョン合計は？", MetricConversions},
		{"event count", "イベント数トップ3は？", MetricEventCount},
		{"no metric", "調子はどう？", MetricUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMetric(tt.text))
		})
	}
}

func TestExtractDimension(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Dimension
	}{
		{"source", "流入元トップ5は？", DimensionSource},
		{"channel", "チャネル別のセッション", DimensionChannelGroup},
		{"device", "デバイス別の直帰率", DimensionDevice},
		{"page", "ページ別PV", DimensionPage},
		{"campaign", "キャンペーン別の成果", DimensionCampaign},
		{"country", "地域ごとのユーザー", DimensionCountry},
		{"browser english", "sessions by browser", DimensionBrowser},
		{"none", "セッション数は？", DimensionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDimension(tt.text))
		})
	}
}

func TestExtractRanking(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		wantSize      int
		wantDirection Direction
	}{
		{"top japanese", "流入元トップ5は？", 5, Descending},
		{"rank japanese", "上位10ページ", 10, Descending},
		{"top english", "top 5 sources", 5, Descending},
		{"worst keeps magnitude and direction", "ワースト3のページ", 3, Ascending},
		{"bottom english", "bottom 2 campaigns", 2, Ascending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractRanking(tt.text)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantSize, got.Size)
			assert.Equal(t, tt.wantDirection, got.Direction)
		})
	}

	assert.Nil(t, ExtractRanking("セッション数は？"))
}

func TestExtractComparison(t *testing.T) {
	assert.True(t, ExtractComparison("今週と先週のセッション数を比較して"))
	assert.True(t, ExtractComparison("this week versus last week"))
	assert.False(t, ExtractComparison("過去7日間のセッション数は？"))
}

func TestMetricClass(t *testing.T) {
	assert.Equal(t, ClassCount, MetricSessions.Class())
	assert.Equal(t, ClassCount, MetricConversions.Class())
	assert.Equal(t, ClassRate, MetricBounceRate.Class())
	assert.Equal(t, ClassDuration, MetricAvgSessionDuration.Class())
}

func TestMetricAndDimensionKeys(t *testing.T) {
	assert.Equal(t, "sessions", MetricSessions.Key())
	assert.Equal(t, "averageSessionDuration", MetricAvgSessionDuration.Key())
	assert.Equal(t, "sessionSource", DimensionSource.Key())
	assert.Equal(t, "sessionDefaultChannelGroup", DimensionChannelGroup.Key())
}
