package storage

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/daos"
	"github.com/pocketbase/pocketbase/migrations"
	"github.com/pocketbase/pocketbase/migrations/logs"
	pbModels "github.com/pocketbase/pocketbase/models"
	"github.com/pocketbase/pocketbase/models/schema"
	"github.com/pocketbase/pocketbase/tools/migrate"
	"go.uber.org/zap"

	"regions/internal/models"
)

// DefaultCollection is the collection enriched rows are archived to
const DefaultCollection = "constituency_regions"

// PocketBaseArchive keeps a copy of every enriched row in a PocketBase
// collection, one set of rows per source file.
type PocketBaseArchive struct {
	app        *pocketbase.PocketBase
	collection string
	logger     *zap.Logger
}

// NewPocketBaseArchive opens (creating if needed) the PocketBase data
// directory and makes sure the archive collection exists.
func NewPocketBaseArchive(dataDir, collection string, logger *zap.Logger) (*PocketBaseArchive, error) {
	if collection == "" {
		collection = DefaultCollection
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir:  dataDir,
		HideStartBanner: true,
	})
	if err := app.Bootstrap(); err != nil {
		return nil, fmt.Errorf("failed to bootstrap PocketBase: %w", err)
	}

	a := &PocketBaseArchive{app: app, collection: collection, logger: logger.Named("archive")}
	if err := a.migrate(); err != nil {
		a.Close()
		return nil, err
	}
	if err := a.ensureCollection(); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to ensure collection exists: %w", err)
	}
	return a, nil
}

// migrate applies the PocketBase system migrations, normally run by "serve"
func (a *PocketBaseArchive) migrate() error {
	connections := []struct {
		db   *dbx.DB
		list migrate.MigrationsList
	}{
		{a.app.DB(), migrations.AppMigrations},
		{a.app.LogsDB(), logs.LogsMigrations},
	}
	for _, c := range connections {
		runner, err := migrate.NewRunner(c.db, c.list)
		if err != nil {
			return fmt.Errorf("failed to create migrations runner: %w", err)
		}
		if _, err := runner.Up(); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}
	return a.app.RefreshSettings()
}

func (a *PocketBaseArchive) ensureCollection() error {
	if _, err := a.app.Dao().FindCollectionByNameOrId(a.collection); err == nil {
		return nil
	}

	values := make([]string, 0, len(models.Regions)+1)
	for _, r := range models.Regions {
		values = append(values, string(r))
	}
	values = append(values, string(models.RegionUnknown))

	collection := &pbModels.Collection{
		Name: a.collection,
		Type: pbModels.CollectionTypeBase,
		Schema: schema.NewSchema(
			&schema.SchemaField{
				Name:     "source",
				Type:     schema.FieldTypeText,
				Required: true,
			},
			&schema.SchemaField{
				Name: "line",
				Type: schema.FieldTypeNumber,
			},
			&schema.SchemaField{
				Name: "constituency",
				Type: schema.FieldTypeText,
			},
			&schema.SchemaField{
				Name:     "region",
				Type:     schema.FieldTypeSelect,
				Required: true,
				Options: &schema.SelectOptions{
					MaxSelect: 1,
					Values:    values,
				},
			},
			&schema.SchemaField{
				Name: "fields",
				Type: schema.FieldTypeText,
			},
		),
	}
	if err := a.app.Dao().SaveCollection(collection); err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}
	a.logger.Info("created collection", zap.String("collection", a.collection))
	return nil
}

// SaveEnriched replaces the archived rows for source with the rows of table
// and returns the number of rows stored.
func (a *PocketBaseArchive) SaveEnriched(ctx context.Context, source string, table *models.EnrichedTable) (int, error) {
	collection, err := a.app.Dao().FindCollectionByNameOrId(a.collection)
	if err != nil {
		return 0, fmt.Errorf("failed to find collection: %w", err)
	}

	saved := 0
	err = a.app.Dao().RunInTransaction(func(txDao *daos.Dao) error {
		var previous []*pbModels.Record
		if err := txDao.RecordQuery(collection).
			AndWhere(dbx.HashExp{"source": source}).
			All(&previous); err != nil {
			return fmt.Errorf("failed to fetch previous rows: %w", err)
		}
		for _, rec := range previous {
			if err := txDao.DeleteRecord(rec); err != nil {
				return fmt.Errorf("failed to delete previous row: %w", err)
			}
		}
		if len(previous) > 0 {
			a.logger.Debug("removed previous rows", zap.String("source", source), zap.Int("rows", len(previous)))
		}

		for i := 0; i < table.Len(); i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := recordData(source, table, i)
			if err != nil {
				return err
			}
			record := pbModels.NewRecord(collection)
			record.Load(data)
			if err := txDao.SaveRecord(record); err != nil {
				return fmt.Errorf("failed to save row %d: %w", i+1, err)
			}
			saved++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	a.logger.Info("archived rows", zap.String("source", source), zap.Int("rows", saved))
	return saved, nil
}

// Close releases the PocketBase database handles
func (a *PocketBaseArchive) Close() error {
	return a.app.ResetBootstrapState()
}

// recordData maps row i onto the archive collection fields
func recordData(source string, table *models.EnrichedTable, i int) (map[string]any, error) {
	rec := table.Records[i]
	if rec.Region != models.RegionUnknown {
		if err := models.ValidateRegion(rec.Region); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	header := table.Header()
	values := table.Values(i)

	fields := make(map[string]string, len(header))
	for j, name := range header {
		fields[name] = values[j]
	}
	encoded, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode row %d: %w", i+1, err)
	}

	return map[string]any{
		"source":       source,
		"line":         rec.Line,
		"constituency": rec.Constituency,
		"region":       string(rec.Region),
		"fields":       string(encoded),
	}, nil
}
