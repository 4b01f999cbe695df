package models

import "time"

// ChatRequest represents one conversational turn from the operator
// @Description Chat request payload
type ChatRequest struct {
	SessionID string `json:"session_id" example:"6f1c0f7e-2a34-4d4e-9a0e-1c2d3e4f5a6b"` // Session to append to; empty starts a new session
	Scope     string `json:"scope,omitempty" example:"USCPA"`                           // Optional site scope applied to every aggregate
	Message   string `json:"message" example:"過去7日間のセッション数は？"`                          // Free-text question
}

// ChatResponse represents the assistant's answer for one turn
// @Description Chat response payload
type ChatResponse struct {
	SessionID string           `json:"session_id"`      // Session the turn was appended to
	Message   *ResponseMessage `json:"message"`         // Computed answer
	Error     string           `json:"error,omitempty"` // Request-level error, if any
}

// ResponseMessage is a computed answer: text plus optional table and
// chart payloads. The chart spec is opaque to the core pipeline; it only
// carries column and series data for the presentation layer.
type ResponseMessage struct {
	Text  string     `json:"text"`
	Table *Table     `json:"table,omitempty"`
	Graph *ChartSpec `json:"graph,omitempty"`
}

// Table is a render-ready tabular payload.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ChartSpec describes a chart for the presentation layer to draw.
type ChartSpec struct {
	Type        string        `json:"type" example:"bar"` // "bar" or "line"
	Title       string        `json:"title"`
	XLabel      string        `json:"x_label"`
	YLabel      string        `json:"y_label"`
	Orientation string        `json:"orientation,omitempty" example:"h"` // "h" for horizontal bars
	Series      []ChartSeries `json:"series"`
}

// ChartSeries is one named series of x/y pairs.
type ChartSeries struct {
	Name string    `json:"name"`
	X    []string  `json:"x"`
	Y    []float64 `json:"y"`
}

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationEntry is one message in a session's append-only history.
type ConversationEntry struct {
	Role      string     `json:"role" example:"assistant"`
	Text      string     `json:"text"`
	Table     *Table     `json:"table,omitempty"`
	Graph     *ChartSpec `json:"graph,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// HistoryResponse represents a session's conversation log
// @Description Session history payload
type HistoryResponse struct {
	SessionID string              `json:"session_id"`
	Entries   []ConversationEntry `json:"entries"`
	Error     string              `json:"error,omitempty"`
}
