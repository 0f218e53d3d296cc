package main

import (
	"fmt"

	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/spf13/cobra"
)

func newInspectCommand() *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "inspect <file.docx>",
		Short: "Print the paragraphs of a generated resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paragraphs, err := rendering.ReadParagraphs(args[0])
			if err != nil {
				return err
			}
			if section == "" {
				observability.NewPrinter(cmd.OutOrStdout()).PrintDocument(paragraphs)
				return nil
			}

			selected := rendering.Section(paragraphs, section)
			if selected == nil {
				return fmt.Errorf("section %q not found in %s", section, args[0])
			}
			for _, text := range rendering.Texts(selected) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", `Print only the lines under this heading, e.g. "Education"`)
	return cmd
}
