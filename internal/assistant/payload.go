package assistant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// decodes and validates a raw request body.
// every failure is a *ValidationError and happens before any outbound call.
func DecodePayload(body []byte) (*Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, NewValidationError(fmt.Sprintf("Invalid JSON payload: %v", err))
	}

	if dec.More() {
		return nil, NewValidationError("Invalid JSON payload: unexpected data after top-level value")
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, NewValidationError(msgPayloadNotObject)
	}

	query, _ := obj["query"].(string)

	p := &Payload{
		Query:   query,
		Files:   decodeFiles(obj["files"]),
		Options: decodeOptions(obj["options"]),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// checks that the query has at least one non-whitespace character
func (p *Payload) Validate() error {
	if p == nil {
		return NewValidationError(msgPayloadNotObject)
	}

	if strings.TrimSpace(p.Query) == "" {
		return NewValidationError(msgQueryRequired)
	}

	return nil
}

func decodeFiles(v any) []FileEntry {
	if !truthy(v) {
		return nil
	}

	list, ok := v.([]any)
	if !ok {
		return []FileEntry{{Err: fmt.Errorf("files must be a list, got %s", jsonKind(v))}}
	}

	files := make([]FileEntry, 0, len(list))
	for _, item := range list {
		files = append(files, decodeFile(item))
	}

	return files
}

func decodeFile(v any) FileEntry {
	obj, ok := v.(map[string]any)
	if !ok {
		return FileEntry{Err: fmt.Errorf("file entry must be an object, got %s", jsonKind(v))}
	}

	entry := FileEntry{
		Path:      unknownPath,
		Truncated: truthy(obj["truncated"]),
	}

	switch path := obj["path"].(type) {
	case nil:
	case string:
		entry.Path = path
	default:
		entry.Err = fmt.Errorf("path must be a string, got %s", jsonKind(path))
		return entry
	}

	switch content := obj["content"].(type) {
	case nil:
	case string:
		entry.Content = content
	default:
		entry.Err = fmt.Errorf("content of %s must be a string, got %s", entry.Path, jsonKind(content))
		return entry
	}

	switch size := obj["size"].(type) {
	case nil:
	case json.Number:
		n, err := integerValue(size)
		if err != nil {
			entry.Err = fmt.Errorf("size of %s: %w", entry.Path, err)
			return entry
		}
		entry.Size = &n
	default:
		entry.Err = fmt.Errorf("size of %s must be a number, got %s", entry.Path, jsonKind(size))
	}

	return entry
}

func decodeOptions(v any) Options {
	opts := Options{Tone: DefaultTone}

	obj, ok := v.(map[string]any)
	if !ok {
		return opts
	}

	if raw, present := obj["allow_pseudocode"]; present {
		opts.AllowPseudocode = truthy(raw)
	}

	if tone, ok := obj["tone"].(string); ok {
		opts.Tone = tone
	}

	if raw, present := obj["ask_clarifying"]; present {
		enabled := truthy(raw)
		opts.AskClarifying = &enabled
	}

	return opts
}

// accepts integral JSON numbers, including forms like 120.0
func integerValue(n json.Number) (int64, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}

	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64 {
		return 0, fmt.Errorf("not an integer: %s", n)
	}

	return int64(f), nil
}

// JSON truthiness: false, null, 0, "", [] and {} are false
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
