package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"insightchat/internal/insights"
	"insightchat/internal/models"
	"insightchat/internal/session"
)

// Answerer computes the response for one conversational turn.
type Answerer interface {
	Answer(ctx context.Context, turn insights.Turn) (models.ResponseMessage, error)
}

// ChatHandler handles one conversational turn
// @Summary Ask a question about the analytics data
// @Description Parses a free-text question, computes the answer from the analytics store, and appends both turns to the session history
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Question and session"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} models.ChatResponse
// @Router /api/chat [post]
func ChatHandler(engine Answerer, sessions *session.Store, timeout time.Duration, logger zerolog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ChatRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ChatResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		if strings.TrimSpace(req.Message) == "" {
			return c.JSON(http.StatusBadRequest, models.ChatResponse{
				Error: "Message cannot be empty",
			})
		}

		sess := sessions.Get(req.SessionID)

		// One turn at a time per session: the next question waits until
		// this turn's history update has landed.
		sess.Lock()
		defer sess.Unlock()

		sess.Append(models.RoleUser, req.Message, nil, nil)

		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		defer cancel()

		msg, err := engine.Answer(ctx, insights.Turn{Scope: req.Scope, Text: req.Message})
		if err != nil {
			// Collaborator failures become an error turn; the session
			// stays usable for the next question.
			logger.Error().Err(err).Str("session_id", sess.ID).Msg("Turn failed")
			msg = models.ResponseMessage{Text: fmt.Sprintf("エラーが発生しました: %v", err)}
		}

		sess.Append(models.RoleAssistant, msg.Text, msg.Table, msg.Graph)

		return c.JSON(http.StatusOK, models.ChatResponse{
			SessionID: sess.ID,
			Message:   &msg,
		})
	}
}
