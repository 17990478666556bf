package parser

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"

	"regions/internal/models"
)

const utf8BOM = "\ufeff"

// CSVParser reads comma-separated tables whose first row is a header
type CSVParser struct {
	logger *zap.Logger
}

// NewCSVParser creates a new CSV parser instance
func NewCSVParser(logger *zap.Logger) *CSVParser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVParser{logger: logger.Named("parser")}
}

// Load reads the table at path. Field text is kept exactly as written.
func (p *CSVParser) Load(ctx context.Context, path string) (*models.Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewParseError("open", path, fmt.Errorf("%w: %w", ErrInputNotFound, err))
		}
		return nil, NewParseError("open", path, err)
	}
	if info.IsDir() {
		return nil, NewParseError("open", path, fmt.Errorf("%w: %s is a directory", ErrInputNotFound, path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, NewParseError("open", path, err)
	}
	defer f.Close()

	p.logger.Debug("reading table", zap.String("path", path), zap.Int64("bytes", info.Size()))
	return p.read(ctx, path, f)
}

func (p *CSVParser) read(ctx context.Context, path string, r io.Reader) (*models.Table, error) {
	reader := csv.NewReader(r)

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, NewParseError("header", path, fmt.Errorf("%w: no columns to parse from file", ErrMalformedInput))
	}
	if err != nil {
		return nil, NewParseError("header", path, fmt.Errorf("%w: %w", ErrMalformedInput, err))
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], utf8BOM)
	}
	p.logger.Debug("read header", zap.Int("columns", len(headers)), zap.Strings("names", headers))

	table := &models.Table{Columns: headers}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, NewParseError("row", path, fmt.Errorf("%w: %w", ErrMalformedInput, err))
		}
		line, _ := reader.FieldPos(0)
		table.Records = append(table.Records, models.Record{Line: line, Values: row})
	}

	p.logger.Debug("finished reading table", zap.String("path", path), zap.Int("rows", len(table.Records)))
	return table, nil
}
