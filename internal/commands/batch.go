package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dvloznov/dompet/internal/domain"
	"github.com/dvloznov/dompet/internal/source"
)

// batchResult is one JSON line of batch output.
type batchResult struct {
	Line        int                       `json:"line"`
	Input       string                    `json:"input"`
	Transaction *domain.ParsedTransaction `json:"transaction,omitempty"`
	Error       *batchError               `json:"error,omitempty"`
}

type batchError struct {
	Kind    domain.FailureKind `json:"kind"`
	Message string             `json:"message"`
}

func newBatchCommand(a *app) *cobra.Command {
	var (
		eo      extractorOptions
		input   string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Parse one sentence per line from a file, stdin or gs:// object",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := a.log.With().Str("input", source.Name(input)).Logger()

			extractor, err := a.newExtractor(ctx, eo)
			if err != nil {
				return err
			}

			rc, err := source.Open(ctx, input, source.Options{
				Endpoint:  a.cfg.Storage.Endpoint,
				Anonymous: a.cfg.Storage.Anonymous,
			})
			if err != nil {
				return err
			}
			defer rc.Close()

			lines, err := source.ReadLines(rc)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Batch.Workers
			}
			if workers <= 0 {
				return fmt.Errorf("--workers must be positive, got %d", workers)
			}

			start := time.Now()
			results := make([]batchResult, len(lines))
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(workers)
			for i, line := range lines {
				g.Go(func() error {
					res := batchResult{Line: line.Number, Input: line.Text}
					tx, err := extractor.Parse(gctx, line.Text, domain.Overrides{})
					var pe *domain.ParseError
					switch {
					case err == nil:
						res.Transaction = tx
					case errors.As(err, &pe):
						res.Error = &batchError{Kind: pe.Kind, Message: pe.Message}
					default:
						return fmt.Errorf("line %d: %w", line.Number, err)
					}
					results[i] = res
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			failed := 0
			for _, res := range results {
				if res.Error != nil {
					failed++
				}
				if err := enc.Encode(res); err != nil {
					return fmt.Errorf("writing result: %w", err)
				}
			}

			log.Info().
				Int("lines", len(lines)).
				Int("failed", failed).
				Int("workers", workers).
				Dur("elapsed", time.Since(start)).
				Msg("Batch finished")
			return nil
		},
	}

	eo.register(cmd)
	cmd.Flags().StringVar(&input, "input", "-", "input path, gs://bucket/object, or - for stdin")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent parses (default from config)")

	return cmd
}
