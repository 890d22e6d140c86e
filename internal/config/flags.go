package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

// parses CLI flags for the codeask client; the query is the remaining arguments
func ParseAskFlags(args []string) (AskFlags, error) {
	fs := flag.NewFlagSet("codeask", flag.ContinueOnError)

	dir := fs.String("dir", ".", "directory whose files are sent as context")
	server := fs.String("server", getenvDefault("CODEMENTOR_API_ENDPOINT", "http://localhost:8080"), "relay server base URL")
	tone := fs.String("tone", "concise", "answer tone")
	allowPseudo := fs.Bool("pseudocode", false, "allow illustrative pseudocode in answers")
	noClarifying := fs.Bool("no-clarifying", false, "ask the assistant not to ask clarifying questions")
	includeAll := fs.Bool("all", false, "include ignored directories such as .git and node_modules")
	maxFiles := fs.Int("max-files", 200, "maximum number of files to send")
	timeout := fs.Duration("timeout", 90*time.Second, "request timeout")

	if err := fs.Parse(args); err != nil {
		return AskFlags{}, err
	}

	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if query == "" {
		return AskFlags{}, fmt.Errorf("usage: %s [flags] <question>", os.Args[0])
	}

	return AskFlags{
		Dir:             *dir,
		Server:          strings.TrimSuffix(*server, "/"),
		Tone:            *tone,
		AllowPseudocode: *allowPseudo,
		NoClarifying:    *noClarifying,
		IncludeAll:      *includeAll,
		MaxFiles:        *maxFiles,
		Timeout:         *timeout,
		Query:           query,
	}, nil
}
