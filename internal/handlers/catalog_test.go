package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insightchat/internal/config"
)

func getCatalog(t *testing.T, target string) CatalogResponse {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := CatalogHandler(config.NewCatalog())
	require.NoError(t, handler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCatalogHandler(t *testing.T) {
	resp := getCatalog(t, "/api/catalog")

	assert.Len(t, resp.Scopes, 6)
	assert.Len(t, resp.Metrics, 7)
	assert.Len(t, resp.Dimensions, 7)
	assert.NotEmpty(t, resp.Events)
	assert.NotEmpty(t, resp.DateRangePresets)
	assert.NotEmpty(t, resp.ArticlePathPrefixes)
	assert.NotEmpty(t, resp.ExampleQuestions)

	assert.Contains(t, resp.Metrics, CatalogOption{Label: "セッション数", Value: "sessions"})
	assert.Contains(t, resp.Dimensions, CatalogOption{Label: "流入元", Value: "source"})
	assert.Contains(t, resp.Events, CatalogOption{Label: "資料請求", Value: "CV_資料請求"})
}

func TestCatalogHandlerScopedEvents(t *testing.T) {
	all := getCatalog(t, "/api/catalog")
	mba := getCatalog(t, "/api/catalog?scope=MBA")

	assert.Len(t, mba.Events, 6)
	assert.Greater(t, len(all.Events), len(mba.Events))
	assert.NotContains(t, mba.Events, CatalogOption{Label: "単位診断", Value: "CV_単位診断"})

	// Path prefixes narrow with the scope as well.
	assert.Greater(t, len(all.ArticlePathPrefixes), len(mba.ArticlePathPrefixes))
	assert.Contains(t, mba.ArticlePathPrefixes, "/www-abitus-co-jp/mba/")
}
