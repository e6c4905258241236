package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"jobportal-backend/internal/ats"
)

func newTipsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "tips",
		Short: "Print the ATS tips catalogue",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateFormat(format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), ats.Tips())
			}
			return writeTipsText(cmd.OutOrStdout(), ats.Tips())
		},
	}
	cmd.Flags().StringVar(&format, "format", formatText, "Output format: json or text")
	return cmd
}

func writeTipsText(w io.Writer, categories []ats.TipCategory) error {
	for i, cat := range categories {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n", cat.Category); err != nil {
			return err
		}
		for _, tip := range cat.Tips {
			if _, err := fmt.Fprintf(w, "  - %s\n", tip); err != nil {
				return err
			}
		}
	}
	return nil
}
