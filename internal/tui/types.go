package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"

	"codeberg.org/codementor/server/internal/workspace"
)

// represents the current state of the TUI
type AppState int

const (
	StateLoading AppState = iota
	StateDone
	StateError
)

// main TUI application model
type Model struct {
	state   AppState
	spinner spinner.Model
	client  *QueryClient
	request QueryRequest
	summary string
	width   int
	result  *QueryResult
	err     error
}

// body posted to /api/query
type QueryRequest struct {
	Query   string           `json:"query"`
	Files   []workspace.File `json:"files"`
	Options QueryOptions     `json:"options"`
}

type QueryOptions struct {
	AllowPseudocode bool   `json:"allow_pseudocode"`
	Tone            string `json:"tone"`
	AskClarifying   bool   `json:"ask_clarifying"`
}

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

type QueryResult struct {
	Assistant string
	Usage     *Usage
	Elapsed   time.Duration
}

// sent when the server answers
type AnswerMsg struct {
	result *QueryResult
}

// sent when the request fails
type AnswerErrorMsg struct {
	err error
}

type queryResponse struct {
	Assistant string `json:"assistant"`
	Usage     *Usage `json:"usage,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}
