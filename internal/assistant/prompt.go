package assistant

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const systemPrompt = "You are an assistant helping the user understand and debug their codebase. " +
	"You must not provide runnable code or full file contents. " +
	"You may provide high-level pseudo-code examples only if options.allow_pseudocode is true, " +
	"but these must be non-executable and clearly marked as illustrative. " +
	"Always ask clarifying questions when the user's query is ambiguous. " +
	"Never output runnable code, do not print full files, and avoid copy-pasteable snippets. " +
	"When referencing code, use the notation file:path and include line numbers when appropriate (file:path:line). " +
	"Do not reproduce large spans of code. " +
	"If the user asks for runnable code or full file contents, politely refuse and give actionable steps instead. " +
	"Micro-excerpts may be wrapped with [SNIPPET_START] and [SNIPPET_END], but these must not be executable."

// returns the fixed policy instruction sent as the system message
func SystemPrompt() string {
	return systemPrompt
}

// assembles the user message for a payload.
// the output depends only on the payload, so packaging twice yields identical text.
func BuildUserMessage(p *Payload) (string, PackStats) {
	if p == nil {
		p = &Payload{}
	}

	var stats PackStats

	parts := []string{
		fmt.Sprintf("OPTIONS: allow_pseudocode=%t tone=%s ask_clarifying=%t",
			p.Options.AllowPseudocode, p.Options.EffectiveTone(), p.Options.ClarifyingEnabled()),
		"USER_QUERY:",
		p.Query,
		"\nFILES:",
	}

	for _, f := range p.Files {
		if f.Err != nil {
			stats.Omitted++
			continue
		}

		block, serverTruncated := fileBlock(f)
		blockChars := utf8.RuneCountInString(block)

		// skip the whole block; later files still get a chance at the remaining budget
		if stats.Chars+blockChars > MaxTotalChars {
			stats.Omitted++
			continue
		}

		parts = append(parts, block)
		stats.Chars += blockChars
		stats.Included++

		if serverTruncated {
			stats.ServerTruncated++
		}
	}

	if stats.Omitted > 0 {
		parts = append(parts, fmt.Sprintf("NOTE: %d files were omitted from packaged context due to size limits.", stats.Omitted))
	}

	return strings.Join(parts, "\n\n"), stats
}

// formats one file block, cutting content at MaxFileChars
func fileBlock(f FileEntry) (string, bool) {
	content, serverTruncated := truncateChars(f.Content, MaxFileChars)

	path := f.Path
	if path == "" {
		path = unknownPath
	}

	size := unknownSize
	if f.Size != nil {
		size = strconv.FormatInt(*f.Size, 10)
	}

	var b strings.Builder
	b.Grow(len(content) + len(path) + 64)

	fmt.Fprintf(&b, "FILE_START: path=%s size=%s truncated=%t\n", path, size, f.Truncated || serverTruncated)
	b.WriteString("CONTENT:\n")
	b.WriteString(content)
	b.WriteString("\nFILE_END\n")

	return b.String(), serverTruncated
}

// keeps the first limit characters of s
func truncateChars(s string, limit int) (string, bool) {
	if len(s) <= limit {
		return s, false
	}

	count := 0
	for i := range s {
		if count == limit {
			return s[:i], true
		}
		count++
	}

	return s, false
}
