// Package cli implements the offline ats command.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const (
	formatJSON = "json"
	formatText = "text"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ats",
		Short: "Score résumés against job descriptions",
		Long: `ats runs the résumé to job-description fit scoring engine locally.
It reads a résumé JSON document and a plain-text job description and prints
the score breakdown, keyword coverage and suggestions.`,
		SilenceUsage: true,
	}
	root.AddCommand(newAnalyzeCmd(), newTipsCmd())
	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func validateFormat(format string) error {
	switch format {
	case formatJSON, formatText:
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want json or text)", format)
	}
}

// openOutput returns stdout or a created file, plus a close func.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}
