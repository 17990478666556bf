package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"regions/internal/config"
	"regions/internal/enrich"
	"regions/internal/parser"
	"regions/internal/regions"
	"regions/internal/storage"
)

const usage = "Usage: regions <input_csv_file> [output_csv_file]"

// reportedError marks a failure already shown to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func newRootCmd(cfg config.Config, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "regions <input_csv_file> [output_csv_file]",
		Short: "Add a region column to constituency election results",
		Long: `Reads a CSV file with a "constituency" column, looks up the region of
every constituency and writes the table with a trailing "region" column.
Without an output path the result goes next to the input as
<name>_with_regions.csv.

Every row must have as many fields as the header; shorter or longer rows
are rejected as malformed input.

Set ` + config.EnvDataDir + ` to also archive the enriched rows in a
PocketBase collection.`,
		// paths are the only arguments; anything starting with "-" is a path too
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				fmt.Fprintln(cmd.OutOrStdout(), usage)
				return nil
			}
			input, output := args[0], ""
			if len(args) > 1 {
				output = args[1]
			}

			opts := []enrich.Option{enrich.WithLogger(logger)}
			if cfg.ArchiveEnabled() {
				archive, err := storage.NewPocketBaseArchive(cfg.DataDir, cfg.Collection, logger)
				if err != nil {
					return fmt.Errorf("open archive in %s: %w", cfg.DataDir, err)
				}
				defer func() {
					if err := archive.Close(); err != nil {
						logger.Warn("closing archive", zap.Error(err))
					}
				}()
				opts = append(opts, enrich.WithArchive(archive))
			}

			pass := enrich.New(parser.NewCSVParser(logger), regions.New(), cmd.OutOrStdout(), opts...)
			_, err := pass.Run(cmd.Context(), input, output)
			switch {
			case err == nil, errors.Is(err, enrich.ErrMissingColumn):
				return nil
			default:
				return &reportedError{err: err}
			}
		},
	}
}
