package assistant

import (
	"context"
	"errors"

	"codeberg.org/codementor/server/internal/llm"
	"codeberg.org/codementor/server/internal/logger"
)

// packages payloads and relays them to the configured completer
type Assistant struct {
	completer llm.Completer
}

func New(completer llm.Completer) *Assistant {
	return &Assistant{completer: completer}
}

// returns the model identifier requests are sent to
func (a *Assistant) Model() string {
	return a.completer.Model()
}

// validates, packages and dispatches one payload.
// errors are *ValidationError, *TransportError or *ShapeError.
func (a *Assistant) Ask(ctx context.Context, p *Payload) (*Answer, error) {
	// direct callers skip DecodePayload, so the query is checked here as well
	if err := p.Validate(); err != nil {
		return nil, err
	}

	userMessage, stats := BuildUserMessage(p)

	log := logger.FromContext(ctx)
	log.Debug("packaged prompt",
		"files_included", stats.Included,
		"files_omitted", stats.Omitted,
		"server_truncated", stats.ServerTruncated,
		"file_chars", stats.Chars,
		"message_bytes", len(userMessage),
	)

	resp, err := a.completer.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: SystemPrompt(),
		Messages: []llm.Message{
			{Role: "user", Content: userMessage},
		},
	})
	if err != nil {
		if errors.Is(err, llm.ErrUnexpectedResponse) {
			return nil, &ShapeError{Err: err}
		}

		return nil, &TransportError{Err: err}
	}

	log.Info("assistant answered",
		"model", resp.Model,
		"files_included", stats.Included,
		"files_omitted", stats.Omitted,
	)

	return &Answer{
		Text:  resp.Text,
		Usage: resp.Usage,
		Model: resp.Model,
	}, nil
}
