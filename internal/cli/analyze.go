package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"jobportal-backend/internal/ats"
	"jobportal-backend/internal/profiles"
)

type analyzeOptions struct {
	format string
	output string
}

func newAnalyzeCmd() *cobra.Command {
	opts := analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze [resume-json] [job-description-file]",
		Short: "Score a résumé against a job description",
		Args:  cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateFormat(opts.format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := profiles.LoadFile(args[0])
			if err != nil {
				return err
			}
			jd, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read job description: %w", err)
			}

			result := ats.Analyze(profile, string(jd))

			w, closeFn, err := openOutput(cmd, opts.output)
			if err != nil {
				return err
			}
			if opts.format == formatJSON {
				err = writeJSON(w, result)
			} else {
				err = writeResultText(w, result)
			}
			if cerr := closeFn(); err == nil {
				err = cerr
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&opts.format, "format", formatText, "Output format: json or text")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeResultText(w io.Writer, r ats.Result) error {
	var b strings.Builder
	s := r.Scores
	fmt.Fprintf(&b, "Overall score: %d/100\n", s.OverallScore)
	fmt.Fprintf(&b, "  keyword match  %.1f\n", s.KeywordMatch)
	fmt.Fprintf(&b, "  completeness   %d\n", s.Completeness)
	fmt.Fprintf(&b, "  formatting     %d\n", s.Formatting)
	fmt.Fprintf(&b, "  readability    %d\n", s.Readability)

	fmt.Fprintf(&b, "\nMatched keywords: %s\n", joinOrNone(r.MatchedKeywords))
	fmt.Fprintf(&b, "Missing keywords: %s\n", joinOrNone(r.MissingKeywords))

	if len(r.Suggestions) > 0 {
		b.WriteString("\nSuggestions:\n")
		for _, sg := range r.Suggestions {
			fmt.Fprintf(&b, "  [%s] %s (%s impact): %s\n", sg.Type, sg.Category, sg.Impact, sg.Message)
		}
	}

	b.WriteString("\nSections:\n")
	for _, name := range []string{"contact", "summary", "experience", "education", "skills"} {
		if sec, ok := r.Sections[name]; ok {
			fmt.Fprintf(&b, "  %-11s %3d  %s\n", name, sec.Score, sec.Status)
		}
	}

	b.WriteString("\nInsights:\n")
	for _, insight := range r.IndustryInsights {
		fmt.Fprintf(&b, "  - %s\n", insight)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
