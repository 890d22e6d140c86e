package assistant

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/codementor/server/internal/llm"
)

// implements llm.Completer for testing
type mockCompleter struct {
	completeFunc func(ctx context.Context, req llm.CompletionRequest) (*llm.Completion, error)
	calls        int
}

func (m *mockCompleter) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.Completion, error) {
	m.calls++

	if m.completeFunc != nil {
		return m.completeFunc(ctx, req)
	}

	return &llm.Completion{Text: "Look at file:foo.py:1, the division by zero.", Model: "mock-model"}, nil
}

func (m *mockCompleter) Model() string {
	return "mock-model"
}

func TestAskSendsSystemAndUserMessage(t *testing.T) {
	var captured llm.CompletionRequest

	mock := &mockCompleter{
		completeFunc: func(_ context.Context, req llm.CompletionRequest) (*llm.Completion, error) {
			captured = req
			return &llm.Completion{
				Text:  "Check the divisor in file:foo.py:1.",
				Model: "gpt-5-nano",
				Usage: &llm.Usage{InputTokens: 120, OutputTokens: 12, TotalTokens: 132},
			}, nil
		},
	}

	a := New(mock)

	p, err := DecodePayload([]byte(`{"query": "why does foo.py crash?", "files": [{"path": "foo.py", "size": 120, "content": "print(1/0)", "truncated": false}], "options": {"allow_pseudocode": false, "tone": "concise"}}`))
	require.NoError(t, err)

	answer, err := a.Ask(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, 1, mock.calls)
	assert.Equal(t, SystemPrompt(), captured.SystemPrompt)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[0].Content, "FILE_START: path=foo.py size=120 truncated=false")

	expected, _ := BuildUserMessage(p)
	assert.Equal(t, expected, captured.Messages[0].Content)

	assert.Equal(t, "Check the divisor in file:foo.py:1.", answer.Text)
	assert.Equal(t, "gpt-5-nano", answer.Model)
	require.NotNil(t, answer.Usage)
	assert.Equal(t, 132, answer.Usage.TotalTokens)
}

func TestAskRejectsBlankQueryWithoutCalling(t *testing.T) {
	mock := &mockCompleter{}
	a := New(mock)

	for _, q := range []string{"", "   ", "\n\t"} {
		answer, err := a.Ask(context.Background(), &Payload{Query: q})

		assert.Nil(t, answer)

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "'query' field is required in payload.", err.Error())
	}

	_, err := a.Ask(context.Background(), nil)
	assert.Error(t, err)

	assert.Equal(t, 0, mock.calls)
}

func TestAskTransportError(t *testing.T) {
	mock := &mockCompleter{
		completeFunc: func(_ context.Context, _ llm.CompletionRequest) (*llm.Completion, error) {
			return nil, &llm.APIError{StatusCode: 401, Body: `{"error": {"message": "Incorrect API key provided"}}`}
		},
	}

	_, err := New(mock).Ask(context.Background(), &Payload{Query: "hi"})
	require.Error(t, err)

	var tErr *TransportError
	require.True(t, errors.As(err, &tErr))
	assert.Equal(t, "Error occurred while calling the LLM API: API request failed with status 401: Incorrect API key provided", err.Error())

	var apiErr *llm.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestAskContextCancelledIsTransportError(t *testing.T) {
	mock := &mockCompleter{
		completeFunc: func(ctx context.Context, _ llm.CompletionRequest) (*llm.Completion, error) {
			return nil, fmt.Errorf("failed to send request: %w", ctx.Err())
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(mock).Ask(ctx, &Payload{Query: "hi"})

	var tErr *TransportError
	require.True(t, errors.As(err, &tErr))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Contains(t, err.Error(), "Error occurred while calling the LLM API: ")
}

func TestAskShapeError(t *testing.T) {
	mock := &mockCompleter{
		completeFunc: func(_ context.Context, _ llm.CompletionRequest) (*llm.Completion, error) {
			return nil, fmt.Errorf("%w: no choices in reply", llm.ErrUnexpectedResponse)
		},
	}

	_, err := New(mock).Ask(context.Background(), &Payload{Query: "hi"})

	var sErr *ShapeError
	require.True(t, errors.As(err, &sErr))
	assert.Equal(t, "Error: Unexpected response format from the LLM API.", err.Error())
	assert.True(t, errors.Is(err, llm.ErrUnexpectedResponse))
}

func TestAskPassesTextThroughUntrimmed(t *testing.T) {
	mock := &mockCompleter{
		completeFunc: func(_ context.Context, _ llm.CompletionRequest) (*llm.Completion, error) {
			return &llm.Completion{Text: "  spaced answer\n", Model: "m"}, nil
		},
	}

	answer, err := New(mock).Ask(context.Background(), &Payload{Query: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "  spaced answer\n", answer.Text)
	assert.Nil(t, answer.Usage)
}

func TestModel(t *testing.T) {
	assert.Equal(t, "mock-model", New(&mockCompleter{}).Model())
}
