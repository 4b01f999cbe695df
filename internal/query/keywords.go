package query

import (
	"regexp"
	"strconv"
	"strings"
)

// Metric identifies a reportable measure. The zero value means no metric
// was recognized in the text.
type Metric int

const (
	MetricUnknown Metric = iota
	MetricSessions
	MetricTotalUsers
	MetricPageViews
	MetricBounceRate
	MetricAvgSessionDuration
	MetricConversions
	MetricEventCount
)

// MetricClass decides how a metric is aggregated and displayed: counts are
// summed and rendered with thousands separators, rates are averaged and
// rendered ×100 with one decimal, durations are averaged and rendered as
// minutes and seconds.
type MetricClass int

const (
	ClassCount MetricClass = iota
	ClassRate
	ClassDuration
)

// Key returns the reporting-API style identifier for the metric.
func (m Metric) Key() string {
	switch m {
	case MetricSessions:
		return "sessions"
	case MetricTotalUsers:
		return "totalUsers"
	case MetricPageViews:
		return "screenPageViews"
	case MetricBounceRate:
		return "bounceRate"
	case MetricAvgSessionDuration:
		return "averageSessionDuration"
	case MetricConversions:
		return "conversions"
	case MetricEventCount:
		return "eventCount"
	default:
		return "unknown"
	}
}

// Class returns the metric's formatting class.
func (m Metric) Class() MetricClass {
	switch m {
	case MetricBounceRate:
		return ClassRate
	case MetricAvgSessionDuration:
		return ClassDuration
	default:
		return ClassCount
	}
}

// Dimension identifies a grouping attribute. The zero value means no
// dimension was recognized in the text.
type Dimension int

const (
	DimensionUnknown Dimension = iota
	DimensionSource
	DimensionChannelGroup
	DimensionDevice
	DimensionPage
	DimensionCampaign
	DimensionCountry
	DimensionBrowser
)

// Key returns the reporting-API style identifier for the dimension.
func (d Dimension) Key() string {
	switch d {
	case DimensionSource:
		return "sessionSource"
	case DimensionChannelGroup:
		return "sessionDefaultChannelGroup"
	case DimensionDevice:
		return "deviceCategory"
	case DimensionPage:
		return "pagePath"
	case DimensionCampaign:
		return "sessionCampaignName"
	case DimensionCountry:
		return "country"
	case DimensionBrowser:
		return "browser"
	default:
		return "unknown"
	}
}

// Direction is the sort order a ranking request asks for. Top-N requests
// are descending, worst/bottom-N requests are ascending.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

// Ranking is an extracted ranking request: how many rows, in which order.
type Ranking struct {
	Size      int
	Direction Direction
}

// Keyword tables are ordered rule lists: the first phrase found as a
// substring of the query wins, so phrases that contain other phrases
// (セッション数 vs セッション) must be declared first.

type metricRule struct {
	phrase string
	metric Metric
}

var metricRules = []metricRule{
	{"セッション数", MetricSessions},
	{"平均セッション時間", MetricAvgSessionDuration},
	{"セッション時間", MetricAvgSessionDuration},
	{"session duration", MetricAvgSessionDuration},
	{"session count", MetricSessions},
	{"sessions", MetricSessions},
	{"セッション", MetricSessions},
	{"ユーザー数", MetricTotalUsers},
	{"ユーザー", MetricTotalUsers},
	{"users", MetricTotalUsers},
	{"ページビュー", MetricPageViews},
	{"pageviews", MetricPageViews},
	{"page views", MetricPageViews},
	{"PV", MetricPageViews},
	{"直帰率", MetricBounceRate},
	{"bounce rate", MetricBounceRate},
	{"コンバージョン数", MetricConversions},
	{"コンバージョン", MetricConversions},
	{"conversions", MetricConversions},
	{"イベント数", MetricEventCount},
	{"イベント", MetricEventCount},
	{"events", MetricEventCount},
}

type dimensionRule struct {
	phrase    string
	dimension Dimension
}

var dimensionRules = []dimensionRule{
	{"流入元", DimensionSource},
	{"ソース", DimensionSource},
	{"source", DimensionSource},
	{"チャネル", DimensionChannelGroup},
	{"channel", DimensionChannelGroup},
	{"デバイス", DimensionDevice},
	{"device", DimensionDevice},
	{"ページ", DimensionPage},
	{"page", DimensionPage},
	{"地域", DimensionCountry},
	{"country", DimensionCountry},
	{"ブラウザ", DimensionBrowser},
	{"browser", DimensionBrowser},
	{"UTM", DimensionCampaign},
	{"キャンペーン", DimensionCampaign},
	{"campaign", DimensionCampaign},
}

type rankingRule struct {
	re        *regexp.Regexp
	direction Direction
}

var rankingRules = []rankingRule{
	{regexp.MustCompile(`トップ(\d+)`), Descending},
	{regexp.MustCompile(`上位(\d+)`), Descending},
	{regexp.MustCompile(`(?i)top\s*(\d+)`), Descending},
	{regexp.MustCompile(`(?i)rank\s*(\d+)`), Descending},
	{regexp.MustCompile(`ワースト(\d+)`), Ascending},
	{regexp.MustCompile(`下位(\d+)`), Ascending},
	{regexp.MustCompile(`(?i)worst\s*(\d+)`), Ascending},
	{regexp.MustCompile(`(?i)bottom\s*(\d+)`), Ascending},
}

var comparisonPhrases = []string{
	"比較", "比べ", "対比",
	"compare", "versus", "contrast",
}

// ExtractMetric returns the first metric whose keyword appears in the text.
func ExtractMetric(text string) Metric {
	for _, rule := range metricRules {
		if strings.Contains(text, rule.phrase) {
			return rule.metric
		}
	}
	return MetricUnknown
}

// ExtractDimension returns the first dimension whose keyword appears in the text.
func ExtractDimension(text string) Dimension {
	for _, rule := range dimensionRules {
		if strings.Contains(text, rule.phrase) {
			return rule.dimension
		}
	}
	return DimensionUnknown
}

// ExtractRanking returns the ranking size and direction, or nil when the
// text contains no ranking phrase.
func ExtractRanking(text string) *Ranking {
	for _, rule := range rankingRules {
		if match := rule.re.FindStringSubmatch(text); match != nil {
			n, err := strconv.Atoi(match[1])
			if err != nil || n < 1 {
				continue
			}
			return &Ranking{Size: n, Direction: rule.direction}
		}
	}
	return nil
}

// ExtractComparison reports whether the text asks for a period comparison.
func ExtractComparison(text string) bool {
	for _, phrase := range comparisonPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}
