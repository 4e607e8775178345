// Command deckgen writes the CRISP-DM fraud-detection report deck.
//
// Without arguments it produces Data_Mining_Betrugserkennung_Praesentation.pptx
// in the working directory, overwriting any previous file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/LGhoull/priemer-aufgabe-1/config"
	"github.com/LGhoull/priemer-aufgabe-1/deck"
	"github.com/LGhoull/priemer-aufgabe-1/export"
	"github.com/LGhoull/priemer-aufgabe-1/i18n"
	"github.com/LGhoull/priemer-aufgabe-1/logger"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type generateOptions struct {
	envFile  string
	output   string
	formats  string
	language string
}

func rootCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:           "deckgen",
		Short:         "Generate the fraud-detection data mining report deck",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return generate(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringVar(&opts.envFile, "env-file", "", "path to a .env file (default .env)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", config.DefaultOutput, "pptx output path; other formats reuse its base name")
	cmd.Flags().StringVarP(&opts.formats, "formats", "f", config.DefaultFormats, "comma separated formats: pptx, docx, xlsx, pdf or all")
	cmd.Flags().StringVar(&opts.language, "lang", config.DefaultLanguage, "console language (de or en)")

	cmd.AddCommand(inspectCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig reads .env and DECKGEN_* variables, then applies explicit flags.
func loadConfig(cmd *cobra.Command, opts *generateOptions) (config.Config, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("formats") {
		cfg.Formats = opts.formats
	}
	if flags.Changed("lang") {
		cfg.Language = opts.language
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// generate builds the deck, writes every configured format and prints the
// summary lines.
func generate(out io.Writer, cfg config.Config) error {
	formats, err := export.ParseFormats(cfg.Formats)
	if err != nil {
		return err
	}

	tr := i18n.NewTranslator(i18n.Match(cfg.Language))

	log := logger.NewLogger()
	if cfg.LogDir != "" {
		if err := log.Init(cfg.LogDir); err != nil {
			return err
		}
	}
	defer log.Close()

	runID := uuid.NewString()
	log.SetPrefix(runID)
	log.Logf("run started: output=%s formats=%s lang=%s", cfg.Output, cfg.Formats, tr.Language())

	d := deck.FraudDetection()
	if cfg.DetailedLog {
		for i, s := range d.Slides {
			log.Logf("slide %d [%s] %s", i+1, s.Kind, s.Title)
		}
	}

	paths, err := export.NewExporter(log).WriteAll(d, cfg.Output, formats)
	if err != nil {
		log.Logf("run failed: %v", err)
		if p := log.Path(); p != "" {
			return fmt.Errorf("%w (log: %s)", err, p)
		}
		return err
	}
	log.Log("run finished")

	// ParseFormats puts the presentation first
	fmt.Fprintln(out, tr.T("deck.created", paths[0]))
	fmt.Fprintln(out, tr.T("deck.slide_count", d.Len()))
	for _, p := range paths[1:] {
		fmt.Fprintln(out, tr.T("deck.also_wrote", p))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, tr.T("deck.structure"))
	for _, line := range deck.CRISPDMOutline() {
		fmt.Fprintln(out, "  "+line)
	}
	return nil
}
