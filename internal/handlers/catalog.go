package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"insightchat/internal/config"
	"insightchat/internal/query"
)

// CatalogResponse carries the fixed lookup data for UI pickers
// @Description Catalog of scopes, metrics, dimensions, and events
type CatalogResponse struct {
	Scopes              []config.ScopeOption `json:"scopes"`
	Metrics             []CatalogOption      `json:"metrics"`
	Dimensions          []CatalogOption      `json:"dimensions"`
	Events              []CatalogOption      `json:"events"`
	DateRangePresets    []string             `json:"date_range_presets"`
	ArticlePathPrefixes []string             `json:"article_path_prefixes"`
	ExampleQuestions    []string             `json:"example_questions"`
}

// CatalogOption is one labelled identifier.
type CatalogOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CatalogHandler serves the fixed catalogs
// @Summary Get catalogs
// @Description Returns the metric, dimension, scope, and conversion-event catalogs plus example questions
// @Tags catalog
// @Produce json
// @Param scope query string false "Site scope" example(USCPA)
// @Success 200 {object} CatalogResponse
// @Router /api/catalog [get]
func CatalogHandler(catalog *config.Catalog) echo.HandlerFunc {
	metrics := []query.Metric{
		query.MetricSessions,
		query.MetricTotalUsers,
		query.MetricPageViews,
		query.MetricEventCount,
		query.MetricConversions,
		query.MetricBounceRate,
		query.MetricAvgSessionDuration,
	}
	dimensions := []query.Dimension{
		query.DimensionSource,
		query.DimensionChannelGroup,
		query.DimensionCampaign,
		query.DimensionDevice,
		query.DimensionPage,
		query.DimensionCountry,
		query.DimensionBrowser,
	}

	return func(c echo.Context) error {
		scope := c.QueryParam("scope")
		resp := CatalogResponse{
			Scopes:              catalog.ScopeOptions(),
			DateRangePresets:    config.DateRangePresets,
			ArticlePathPrefixes: catalog.ArticlePathPrefixes(scope),
			ExampleQuestions:    config.ExampleQuestions,
		}
		for _, m := range metrics {
			resp.Metrics = append(resp.Metrics, CatalogOption{Label: catalog.MetricLabel(m), Value: m.Key()})
		}
		for _, d := range dimensions {
			resp.Dimensions = append(resp.Dimensions, CatalogOption{Label: catalog.DimensionLabel(d), Value: d.Key()})
		}
		for _, event := range catalog.CVEventsForScope(scope) {
			resp.Events = append(resp.Events, CatalogOption{Label: catalog.EventDisplayName(event), Value: event})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
