package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insightchat/internal/models"
	"insightchat/internal/session"
)

func getHistory(t *testing.T, sessions *session.Store, id string) (*httptest.ResponseRecorder, models.HistoryResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+id+"/history", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	require.NoError(t, HistoryHandler(sessions)(c))

	var resp models.HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestHistoryHandlerReturnsEntries(t *testing.T) {
	sessions := session.NewStore(time.Hour)
	sess := sessions.Get("s1")
	sess.Append(models.RoleUser, "question", nil, nil)
	sess.Append(models.RoleAssistant, "answer", nil, nil)

	rec, resp := getHistory(t, sessions, "s1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "s1", resp.SessionID)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, models.RoleUser, resp.Entries[0].Role)
	assert.Equal(t, "answer", resp.Entries[1].Text)
}

func TestHistoryHandlerUnknownSession(t *testing.T) {
	rec, resp := getHistory(t, session.NewStore(time.Hour), "missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Session not found", resp.Error)
}
