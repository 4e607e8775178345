package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LGhoull/priemer-aufgabe-1/config"
	"github.com/LGhoull/priemer-aufgabe-1/export"
	"github.com/LGhoull/priemer-aufgabe-1/i18n"
)

func inspectCmd() *cobra.Command {
	var verbose bool
	var lang string

	cmd := &cobra.Command{
		Use:   "inspect [file.pptx]",
		Short: "List the slides of a generated deck",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultOutput
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("inspect: %w", err)
			}

			slides, err := export.Inspect(path)
			if err != nil {
				return err
			}

			tr := i18n.NewTranslator(i18n.Match(lang))
			out := cmd.OutOrStdout()
			for _, s := range slides {
				title := s.Title
				if title == "" {
					title = tr.T("inspect.no_title")
				}
				fmt.Fprintln(out, tr.T("inspect.slide", s.Index, title))
				if verbose {
					for _, text := range s.Texts {
						fmt.Fprintln(out, "    "+text)
					}
				}
			}
			fmt.Fprintln(out, tr.T("inspect.total", len(slides), path))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print the slide body text")
	cmd.Flags().StringVar(&lang, "lang", config.DefaultLanguage, "console language (de or en)")
	return cmd
}
