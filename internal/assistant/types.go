package assistant

import "codeberg.org/codementor/server/internal/llm"

const (
	// per-file character cap, counted in Unicode code points
	MaxFileChars = 50000

	// aggregate cap over all packaged file blocks
	MaxTotalChars = 200000

	DefaultTone = "concise"

	unknownPath = "<unknown>"
	unknownSize = "unknown"
)

// request payload sent by the client tool
type Payload struct {
	Query   string      `json:"query"`
	Files   []FileEntry `json:"files,omitempty"`
	Options Options     `json:"options"`
}

// one source-file excerpt; order is the packaging order and paths may repeat
type FileEntry struct {
	Path      string `json:"path"`
	Size      *int64 `json:"size,omitempty"`
	Content   string `json:"content"`
	Truncated bool   `json:"truncated"` // as reported by the client

	// set when the decoded entry was malformed; such entries are omitted
	Err error `json:"-"`
}

// recognized option keys; anything else in the payload is ignored
type Options struct {
	AllowPseudocode bool   `json:"allow_pseudocode"`
	Tone            string `json:"tone,omitempty"`
	AskClarifying   *bool  `json:"ask_clarifying,omitempty"`
}

// returns the tone, defaulting to concise
func (o Options) EffectiveTone() string {
	if o.Tone == "" {
		return DefaultTone
	}

	return o.Tone
}

// clarifying questions are on unless explicitly disabled
func (o Options) ClarifyingEnabled() bool {
	return o.AskClarifying == nil || *o.AskClarifying
}

// what packaging did with the files of one payload
type PackStats struct {
	Included        int
	Omitted         int
	ServerTruncated int
	Chars           int // characters used by included file blocks
}

// successful assistant reply
type Answer struct {
	Text  string
	Usage *llm.Usage
	Model string
}
