package query

import (
	"context"

	"codeberg.org/codementor/server/internal/assistant"
	"codeberg.org/codementor/server/internal/llm"
)

// answers one decoded payload
type Asker interface {
	Ask(ctx context.Context, p *assistant.Payload) (*assistant.Answer, error)
}

// request body for a query, documented for the OpenAPI registry.
// decoding itself goes through assistant.DecodePayload.
type QueryRequest struct {
	Query   string          `json:"query" example:"why does foo.py crash?"`
	Files   []FileEntry     `json:"files,omitempty"`
	Options *RequestOptions `json:"options,omitempty"`
}

type FileEntry struct {
	Path      string `json:"path" example:"foo.py"`
	Size      *int64 `json:"size,omitempty" example:"120"`
	Content   string `json:"content" example:"print(1/0)"`
	Truncated bool   `json:"truncated"`
}

type RequestOptions struct {
	AllowPseudocode bool   `json:"allow_pseudocode"`
	Tone            string `json:"tone,omitempty" example:"concise"`
	AskClarifying   *bool  `json:"ask_clarifying,omitempty"`
}

// response payload for a successful query
type QueryResponse struct {
	Assistant string     `json:"assistant"`
	Usage     *llm.Usage `json:"usage,omitempty"`
}
