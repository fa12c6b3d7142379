package commands

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dvloznov/dompet/internal/buildinfo"
	"github.com/dvloznov/dompet/internal/config"
	"github.com/dvloznov/dompet/internal/llm"
	"github.com/dvloznov/dompet/internal/logger"
	"github.com/dvloznov/dompet/internal/pipeline"
)

// app is the state shared by subcommands once the root has loaded config.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log zerolog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "dompet",
		Short:   "Turn Indonesian sentences into transaction records",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "dompet.yaml", "path to config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: console or json (overrides config)")

	rootCmd.AddCommand(newInitCommand(a))
	rootCmd.AddCommand(newParseCommand(a))
	rootCmd.AddCommand(newBatchCommand(a))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	log, err := logger.NewWithOptions(cmd.ErrOrStderr(), logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}

	a.cfg, a.log = cfg, log
	cmd.SetContext(logger.WithContext(cmd.Context(), log))
	return nil
}

// extractorOptions are the per-invocation knobs of parse and batch.
type extractorOptions struct {
	noModel bool
	today   string
}

func (o *extractorOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.noModel, "no-model", false, "use rules only, even if a model is configured")
	cmd.Flags().StringVar(&o.today, "today", "", "anchor date YYYY-MM-DD (default: today in the configured time zone)")
}

// newExtractor builds an Extractor from config and flags. The model is only
// wired when it is enabled and not disabled by --no-model.
func (a *app) newExtractor(ctx context.Context, o extractorOptions) (*pipeline.Extractor, error) {
	opts := []pipeline.Option{
		pipeline.WithLocation(a.cfg.Location()),
		pipeline.WithModelTimeout(a.cfg.Model.Timeout),
		pipeline.WithTitleMaxLen(a.cfg.TitleMaxLen),
	}
	if o.today != "" {
		d, err := civil.ParseDate(o.today)
		if err != nil {
			return nil, fmt.Errorf("invalid --today %q: %w", o.today, err)
		}
		opts = append(opts, pipeline.WithToday(d))
	}

	var model pipeline.DraftModel
	if a.cfg.Model.Enabled && !o.noModel {
		g, err := llm.NewGemini(ctx, llm.ClientConfig{
			APIKey:      a.cfg.Model.APIKey,
			Backend:     a.cfg.Model.Backend,
			Project:     a.cfg.Model.Project,
			Location:    a.cfg.Model.Location,
			Model:       a.cfg.Model.Name,
			Temperature: a.cfg.Model.Temperature,
		})
		if err != nil {
			a.log.Warn().Err(err).Msg("Model disabled, using rules only")
		} else {
			model = g
		}
	}
	return pipeline.NewExtractor(model, opts...), nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// Skip config loading.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "dompet", buildinfo.String())
			return err
		},
	}
}
