package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/codementor/server/internal/config"
	"codeberg.org/codementor/server/internal/logger"
	"codeberg.org/codementor/server/internal/tui"
	"codeberg.org/codementor/server/internal/workspace"
)

func main() {
	flags, err := config.ParseAskFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	files, stats, err := workspace.Collect(flags.Dir, workspace.Options{
		IncludeAll: flags.IncludeAll,
		MaxFiles:   flags.MaxFiles,
	})
	if err != nil {
		logger.Fatal("failed to collect files", "dir", flags.Dir, "error", err)
	}

	logger.Debug("collected files",
		"dir", flags.Dir,
		"collected", stats.Collected,
		"binary", stats.Binary,
		"truncated", stats.Truncated,
		"dropped", stats.Dropped,
	)

	request := tui.QueryRequest{
		Query: flags.Query,
		Files: files,
		Options: tui.QueryOptions{
			AllowPseudocode: flags.AllowPseudocode,
			Tone:            flags.Tone,
			AskClarifying:   !flags.NoClarifying,
		},
	}

	client := tui.NewQueryClient(flags.Server, flags.Timeout)
	summary := fmt.Sprintf("%d files from %s", len(files), flags.Dir)

	// plain output when piped
	if !tui.IsInteractive() {
		ctx, cancel := context.WithTimeout(context.Background(), flags.Timeout)
		result, err := client.Ask(ctx, request)
		cancel()

		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(result.Assistant)
		return
	}

	app := tui.NewApp(client, request, summary)
	p := tea.NewProgram(app)

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running codeask: %v\n", err)
		os.Exit(1)
	}

	if app.Err() != nil {
		os.Exit(1)
	}
}
