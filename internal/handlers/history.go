package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"insightchat/internal/models"
	"insightchat/internal/session"
)

// HistoryHandler returns a session's conversation log
// @Summary Get session history
// @Description Returns the append-only conversation log for a session
// @Tags chat
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.HistoryResponse
// @Failure 404 {object} models.HistoryResponse
// @Router /api/sessions/{id}/history [get]
func HistoryHandler(sessions *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")

		sess, ok := sessions.Lookup(id)
		if !ok {
			return c.JSON(http.StatusNotFound, models.HistoryResponse{
				SessionID: id,
				Error:     "Session not found",
			})
		}

		return c.JSON(http.StatusOK, models.HistoryResponse{
			SessionID: sess.ID,
			Entries:   sess.History(),
		})
	}
}
