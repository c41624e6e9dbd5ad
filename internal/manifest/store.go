// Package manifest persists per-file generation records so repeated runs can
// skip files whose content has not changed. The store is keyed on content
// checksums, never timestamps, so a rollback of a source file re-triggers
// generation.
package manifest

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-docgen/internal/logging"
	"github.com/goliatone/go-docgen/pkg/interfaces"
)

// MemoryDSN opens a shared in-memory database, useful for tests and dry runs.
const MemoryDSN = "file:docgen_manifest?mode=memory&cache=shared&_fk=1"

type recordModel struct {
	bun.BaseModel `bun:"table:docgen_manifest"`

	ID          uuid.UUID `bun:"id,pk,type:uuid"`
	Path        string    `bun:"path,unique,notnull"`
	Checksum    string    `bun:"checksum,notnull"`
	GeneratedAt time.Time `bun:"generated_at,notnull"`
}

// BunStore implements interfaces.ManifestStore on a Bun-backed sqlite
// database.
type BunStore struct {
	db     *bun.DB
	ownsDB bool
	logger interfaces.Logger
}

var _ interfaces.ManifestStore = (*BunStore)(nil)

// Open creates a store over the sqlite database at dsn, creating the manifest
// table when missing. Close releases the underlying connection.
func Open(dsn string, logger interfaces.Logger) (*BunStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("manifest: dsn is required")
	}
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	store, err := NewBunStore(db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	store.ownsDB = true
	return store, nil
}

// NewBunStore wraps an existing Bun database. The caller keeps ownership of
// the connection; Close becomes a no-op.
func NewBunStore(db *bun.DB, logger interfaces.Logger) (*BunStore, error) {
	if db == nil {
		return nil, errors.New("manifest: bun database is required")
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	store := &BunStore{db: db, logger: logger}
	if err := store.ensureTable(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *BunStore) ensureTable(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*recordModel)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

// Lookup returns the record for path, or nil when the file has never been
// recorded.
func (s *BunStore) Lookup(ctx context.Context, path string) (*interfaces.ManifestRecord, error) {
	var model recordModel
	err := s.db.NewSelect().Model(&model).Where("path = ?", path).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	rec := modelToRecord(&model)
	return &rec, nil
}

// Record upserts the record for its path.
func (s *BunStore) Record(ctx context.Context, rec interfaces.ManifestRecord) error {
	if strings.TrimSpace(rec.Path) == "" {
		return errors.New("manifest: record path is required")
	}
	model := recordModel{
		ID:          rec.ID,
		Path:        rec.Path,
		Checksum:    rec.Checksum,
		GeneratedAt: rec.GeneratedAt,
	}
	_, err := s.db.NewInsert().
		Model(&model).
		On("CONFLICT (path) DO UPDATE").
		Set("id = EXCLUDED.id").
		Set("checksum = EXCLUDED.checksum").
		Set("generated_at = EXCLUDED.generated_at").
		Exec(ctx)
	if err != nil {
		return err
	}
	s.logger.Debug("manifest.recorded", "path", rec.Path, "checksum", rec.Checksum)
	return nil
}

// Close releases the database connection when the store opened it.
func (s *BunStore) Close() error {
	if !s.ownsDB {
		return nil
	}
	return s.db.Close()
}

func modelToRecord(model *recordModel) interfaces.ManifestRecord {
	return interfaces.ManifestRecord{
		ID:          model.ID,
		Path:        model.Path,
		Checksum:    model.Checksum,
		GeneratedAt: model.GeneratedAt,
	}
}
