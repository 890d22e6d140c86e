package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// identifies which known provider reply layout carries the assistant text
type Shape int

const (
	ShapeUnknown       Shape = iota
	ShapeChatMessage         // choices[0].message.content
	ShapeLegacyText          // choices[0].text
	ShapeContentBlocks       // content[].text (Anthropic messages)
)

func (s Shape) String() string {
	switch s {
	case ShapeChatMessage:
		return "chat_message"
	case ShapeLegacyText:
		return "legacy_text"
	case ShapeContentBlocks:
		return "content_blocks"
	default:
		return "unknown"
	}
}

// decoded provider reply; every field is optional
type Reply struct {
	Model   string         `json:"model"`
	Choices []Choice       `json:"choices"`
	Content []ContentBlock `json:"content"`
	Usage   *replyUsage    `json:"usage"`
}

type Choice struct {
	Message *ChoiceMessage `json:"message"`
	Text    *string        `json:"text"`
}

type ChoiceMessage struct {
	Content MessageContent `json:"content"`
}

type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// message content sent either as a string or as an array of typed parts
type MessageContent string

func (m *MessageContent) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*m = MessageContent(s)
		return nil
	}

	var parts []ContentBlock
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("message content is neither a string nor a list of parts: %w", err)
	}

	*m = MessageContent(joinText(parts))
	return nil
}

// union of OpenAI and Anthropic usage fields
type replyUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
	InputTokens      int `json:"input_tokens"`
	OutputTokens     int `json:"output_tokens"`
}

// reports which known layout the reply uses
func (r Reply) Shape() Shape {
	if len(r.Choices) > 0 {
		first := r.Choices[0]

		if first.Message != nil && first.Message.Content != "" {
			return ShapeChatMessage
		}

		if first.Text != nil && *first.Text != "" {
			return ShapeLegacyText
		}

		return ShapeUnknown
	}

	if joinText(r.Content) != "" {
		return ShapeContentBlocks
	}

	return ShapeUnknown
}

// returns the assistant text, or ErrUnexpectedResponse when no known shape carries any
func NormalizeReply(r Reply) (string, error) {
	switch shape := r.Shape(); shape {
	case ShapeChatMessage:
		return string(r.Choices[0].Message.Content), nil
	case ShapeLegacyText:
		return *r.Choices[0].Text, nil
	case ShapeContentBlocks:
		return joinText(r.Content), nil
	default:
		if len(r.Choices) == 0 && len(r.Content) == 0 {
			return "", fmt.Errorf("%w: no choices in response", ErrUnexpectedResponse)
		}

		return "", fmt.Errorf("%w: no text in first choice", ErrUnexpectedResponse)
	}
}

// returns normalized token usage, nil when the provider sent none
func (r Reply) TokenUsage() *Usage {
	if r.Usage == nil {
		return nil
	}

	u := &Usage{
		InputTokens:  max(r.Usage.PromptTokens, r.Usage.InputTokens),
		OutputTokens: max(r.Usage.CompletionTokens, r.Usage.OutputTokens),
		TotalTokens:  r.Usage.TotalTokens,
	}

	if u.TotalTokens == 0 {
		u.TotalTokens = u.InputTokens + u.OutputTokens
	}

	if u.TotalTokens == 0 {
		return nil
	}

	return u
}

func joinText(blocks []ContentBlock) string {
	var b strings.Builder

	for _, block := range blocks {
		if block.Type != "" && block.Type != "text" && block.Type != "output_text" {
			continue
		}

		b.WriteString(block.Text)
	}

	return b.String()
}
