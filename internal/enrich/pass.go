package enrich

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"regions/internal/formatter"
	"regions/internal/models"
	"regions/internal/parser"
	"regions/internal/storage"
)

// Loader reads an input table
type Loader interface {
	Load(ctx context.Context, path string) (*models.Table, error)
}

// Archive stores a copy of the enriched rows of a source file
type Archive interface {
	SaveEnriched(ctx context.Context, source string, table *models.EnrichedTable) (int, error)
}

// Result summarises one run of the pass
type Result struct {
	Source       string
	Output       string
	Columns      []string
	Rows         int
	Unknown      []string
	Distribution []models.RegionCount
	Written      bool
	Archived     int
}

// Pass runs the load, map, report and save sequence for one input file
type Pass struct {
	loader  Loader
	regions RegionLookup
	archive Archive
	report  *formatter.Reporter
	logger  *zap.Logger
}

// Option configures a Pass
type Option func(*Pass)

// WithArchive copies enriched rows to a after the output file is saved
func WithArchive(a Archive) Option {
	return func(p *Pass) { p.archive = a }
}

// WithLogger sets the diagnostics logger
func WithLogger(l *zap.Logger) Option {
	return func(p *Pass) { p.logger = l }
}

// New creates a Pass that reports to out
func New(loader Loader, regions RegionLookup, out io.Writer, opts ...Option) *Pass {
	p := &Pass{
		loader:  loader,
		regions: regions,
		report:  formatter.New(out),
		logger:  zap.NewNop(),
	}
	for _, o := range opts {
		o(p)
	}
	p.logger = p.logger.Named("enrich")
	return p
}

// Run enriches inputPath and writes the result to outputPath, or to a path
// derived from inputPath when outputPath is empty. Every failure is reported
// to the user before it is returned. A table without a constituency column
// yields a *MissingColumnError and no output file.
func (p *Pass) Run(ctx context.Context, inputPath, outputPath string) (*Result, error) {
	res, err := p.run(ctx, inputPath, outputPath)
	if err != nil {
		p.fail(inputPath, err)
	}
	return res, err
}

func (p *Pass) run(ctx context.Context, inputPath, outputPath string) (*Result, error) {
	table, err := p.loader.Load(ctx, inputPath)
	if err != nil {
		if errors.Is(err, parser.ErrInputNotFound) || errors.Is(err, parser.ErrMalformedInput) {
			return nil, err
		}
		return nil, &StageError{Stage: "load", Err: err}
	}
	p.report.Loaded(inputPath, len(table.Records))
	p.logger.Info("loaded table",
		zap.String("path", inputPath),
		zap.Int("rows", len(table.Records)),
		zap.Strings("columns", table.Columns))

	res := &Result{
		Source:  inputPath,
		Columns: table.Columns,
		Rows:    len(table.Records),
	}

	column := table.ColumnIndex(models.ConstituencyColumn)
	if column < 0 {
		return res, &MissingColumnError{Column: models.ConstituencyColumn, Available: table.Columns}
	}

	enriched := Apply(table, column, p.regions)

	res.Unknown = UnknownConstituencies(enriched)
	if len(res.Unknown) > 0 {
		p.logger.Info("unmapped constituencies", zap.Int("count", len(res.Unknown)), zap.Strings("names", res.Unknown))
	}
	p.report.Unknown(res.Unknown)

	res.Distribution = Distribution(enriched)
	p.report.Distribution(res.Distribution)

	if outputPath == "" {
		outputPath = OutputPath(inputPath)
	}
	if err := ctx.Err(); err != nil {
		return res, &StageError{Stage: "write", Err: err}
	}
	if err := storage.WriteCSV(outputPath, enriched); err != nil {
		return res, &StageError{Stage: "write", Err: err}
	}
	res.Output = outputPath
	res.Written = true
	p.report.Saved(outputPath)
	p.logger.Info("saved table", zap.String("path", outputPath), zap.Int("rows", enriched.Len()))

	if p.archive != nil {
		n, err := p.archive.SaveEnriched(ctx, inputPath, enriched)
		if err != nil {
			// output is already on disk; archive errors are warnings
			p.logger.Error("archive failed", zap.String("source", inputPath), zap.Error(err))
			p.report.Warning("could not archive records: %v", err)
		} else {
			res.Archived = n
			p.report.Archived(n)
		}
	}

	if err := p.report.Preview(enriched); err != nil {
		return res, &StageError{Stage: "preview", Err: err}
	}
	return res, nil
}

func (p *Pass) fail(inputPath string, err error) {
	var missing *MissingColumnError
	switch {
	case errors.As(err, &missing):
		p.report.MissingColumn(missing.Column, missing.Available)
		return
	case errors.Is(err, parser.ErrInputNotFound):
		p.report.Failure("File '%s' not found", inputPath)
	case errors.Is(err, parser.ErrMalformedInput):
		p.report.Failure("could not parse '%s' as CSV: %v", inputPath, errors.Unwrap(err))
	default:
		p.report.Failure("processing file: %v", err)
	}
	p.logger.Debug("enrichment failed", zap.String("path", inputPath), zap.Error(err))
}
