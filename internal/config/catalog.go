package config

import (
	"sort"

	"insightchat/internal/query"
)

// Catalog is the fixed lookup data the pipeline consults: site scopes,
// conversion events and their aliases, display labels, and content path
// prefixes. All lookups are pure and synchronous.
type Catalog struct{}

// NewCatalog returns the built-in catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// ScopeOption is one selectable site scope.
type ScopeOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var scopeOptions = []ScopeOption{
	{Label: "USCPA", Value: "USCPA"},
	{Label: "MBA", Value: "MBA"},
	{Label: "CIA", Value: "CIA"},
	{Label: "CISA", Value: "CISA"},
	{Label: "CFE", Value: "CFE"},
	{Label: "IFRS", Value: "IFRS"},
}

var commonCVEvents = []string{
	"CV_資料請求",
	"CV_営業特別イベント予約",
	"CV_マーケティングイベント予約",
	"CV_カウンセリング予約",
	"CV_オンラインセミナー予約",
	"CV_オンライン体験予約",
	"CV_説明会動画",
	"CV_単位診断",
	"CV_問合せ",
	"CV_海外カウンセリング",
}

var scopeEventMap = map[string][]string{
	"USCPA": commonCVEvents,
	"MBA": {
		"CV_資料請求",
		"CV_営業特別イベント予約",
		"CV_マーケティングイベント予約",
		"CV_カウンセリング予約",
		"CV_オンラインセミナー予約",
		"CV_問合せ",
	},
	"CIA":  commonCVEvents,
	"CISA": commonCVEvents,
	"CFE":  commonCVEvents,
	"IFRS": commonCVEvents,
}

var eventDisplayMap = map[string]string{
	"CV_資料請求":          "資料請求",
	"CV_営業特別イベント予約":    "営業特別イベント予約",
	"CV_マーケティングイベント予約": "マーケティングイベント予約",
	"CV_カウンセリング予約":     "カウンセリング予約",
	"CV_オンラインセミナー予約":   "オンラインセミナー予約",
	"CV_オンライン体験予約":     "オンライン体験予約",
	"CV_説明会動画":         "説明会動画",
	"CV_単位診断":          "単位診断",
	"CV_問合せ":           "問合せ",
	"CV_海外カウンセリング":     "海外カウンセリング",
}

var eventAliasMap = map[string]string{
	"資料請求":          "CV_資料請求",
	"営業特別イベント予約":    "CV_営業特別イベント予約",
	"特別イベント予約":      "CV_営業特別イベント予約",
	"マーケティングイベント予約": "CV_マーケティングイベント予約",
	"カウンセリング予約":     "CV_カウンセリング予約",
	"オンラインセミナー予約":   "CV_オンラインセミナー予約",
	"オンラインセミナー":     "CV_オンラインセミナー予約",
	"オンライン体験予約":     "CV_オンライン体験予約",
	"オンライン体験":       "CV_オンライン体験予約",
	"説明会動画":         "CV_説明会動画",
	"単位診断":          "CV_単位診断",
	"問合せ":           "CV_問合せ",
	"問い合わせ":         "CV_問合せ",
	"海外カウンセリング":     "CV_海外カウンセリング",
}

var metricLabels = map[query.Metric]string{
	query.MetricSessions:           "セッション数",
	query.MetricTotalUsers:         "ユーザー数",
	query.MetricPageViews:          "ページビュー",
	query.MetricBounceRate:         "直帰率",
	query.MetricAvgSessionDuration: "平均セッション時間",
	query.MetricConversions:        "コンバージョン数",
	query.MetricEventCount:         "イベント数",
}

var dimensionLabels = map[query.Dimension]string{
	query.DimensionSource:       "流入元",
	query.DimensionChannelGroup: "チャネル",
	query.DimensionDevice:       "デバイス",
	query.DimensionPage:         "ページ",
	query.DimensionCampaign:     "キャンペーン",
	query.DimensionCountry:      "地域",
	query.DimensionBrowser:      "ブラウザ",
}

var articlePathPrefixes = map[string][]string{
	"USCPA": scopePrefixes("uscpa"),
	"MBA":   scopePrefixes("mba"),
	"CIA":   scopePrefixes("cia"),
	"CISA":  scopePrefixes("cisa"),
	"CFE":   scopePrefixes("cfe"),
	"IFRS":  scopePrefixes("ifrs"),
}

func scopePrefixes(slug string) []string {
	return []string{
		"/www-abitus-co-jp/information/" + slug + "/",
		"/www-abitus-co-jp/" + slug + "blog/",
		"/www-abitus-co-jp/" + slug + "/",
		"/www-abitus-co-jp/column_voice/" + slug + "/",
		"https://www.abitus.co.jp/" + slug + "/",
		"https://www.abitus.co.jp/" + slug + "blog/",
		"https://www.abitus.co.jp/information/" + slug + "/",
		"https://www.abitus.co.jp/column_voice/" + slug + "/",
	}
}

// DateRangePresets are period phrases the UI offers as one-click ranges.
// Each phrase is resolvable by the period parser.
var DateRangePresets = []string{
	"過去7日間",
	"過去14日間",
	"過去30日間",
	"過去90日間",
	"今週",
	"先週",
	"今月",
	"先月",
}

// ExampleQuestions are surfaced to the UI for one-click prefill.
var ExampleQuestions = []string{
	"USCPAの過去7日間のセッション数は？",
	"MBAの資料請求は今月どれくらい？",
	"USCPAのオンラインセミナー予約は先週何件？",
	"過去30日間で流入元トップ5は？",
	"USCPAのCV総数を直近30日で教えて",
	"今週と先週のセッション数を比較して",
	"MBAのカウンセリング予約の推移を教えて",
	"USCPAのイベント数トップ3は？",
	"今月の問合せ件数は？",
	"MBAのコンバージョン合計は？",
}

// ScopeOptions returns the selectable site scopes.
func (c *Catalog) ScopeOptions() []ScopeOption {
	return scopeOptions
}

// CVEventsForScope returns the conversion events tracked for a scope, or
// the deduplicated union across scopes when scope is empty or unknown.
func (c *Catalog) CVEventsForScope(scope string) []string {
	if events, ok := scopeEventMap[scope]; ok {
		return events
	}
	seen := make(map[string]struct{})
	var events []string
	for _, names := range scopeEventMap {
		for _, name := range names {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				events = append(events, name)
			}
		}
	}
	sort.Strings(events)
	return events
}

// EventAliasMap returns the phrase→event alias table.
func (c *Catalog) EventAliasMap() map[string]string {
	return eventAliasMap
}

// EventDisplayName returns the display label for an event, falling back
// to the raw identifier.
func (c *Catalog) EventDisplayName(event string) string {
	if label, ok := eventDisplayMap[event]; ok {
		return label
	}
	return event
}

// MetricLabel returns the display label for a metric, falling back to its key.
func (c *Catalog) MetricLabel(m query.Metric) string {
	if label, ok := metricLabels[m]; ok {
		return label
	}
	return m.Key()
}

// DimensionLabel returns the display label for a dimension, falling back to its key.
func (c *Catalog) DimensionLabel(d query.Dimension) string {
	if label, ok := dimensionLabels[d]; ok {
		return label
	}
	return d.Key()
}

// ArticlePathPrefixes returns the content path prefixes for a scope, or
// every scope's prefixes when scope is empty or unknown.
func (c *Catalog) ArticlePathPrefixes(scope string) []string {
	if prefixes, ok := articlePathPrefixes[scope]; ok {
		return prefixes
	}
	var prefixes []string
	for _, scoped := range articlePathPrefixes {
		prefixes = append(prefixes, scoped...)
	}
	sort.Strings(prefixes)
	return prefixes
}
