package store

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/zylem/fieldsync/pkg/types"
)

// Store is the operation surface over the embedded database. It owns exactly
// one engine, hydrated from the byte store on Open, and serializes every
// mutating operation and every save so an older export can never overwrite a
// newer engine state.
//
// A Store is an explicit object with an Open/Close lifecycle; callers that
// need a shared instance pass it by reference from their composition root.
type Store struct {
	mu       sync.RWMutex
	cfg      types.Config
	blob     *blobStore // nil when running in-memory only
	eng      *engine
	open     bool
	degraded bool
	log      *logrus.Entry
}

// Statement is one parameterized SQL statement for Transaction.
type Statement struct {
	SQL    string
	Params []any
}

// Open validates the config, hydrates an engine from the persisted image (or
// starts empty on first run) and applies the schema. If the byte store is
// unavailable the store warns once and degrades to an in-memory-only engine
// rather than blocking the caller; all data is then lost on Close.
//
// A stored version marker that disagrees with cfg.DatabaseVersion wipes the
// image first, forcing the next sync to repopulate everything.
func Open(cfg types.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Store{
		cfg: cfg,
		log: logrus.WithField("component", "store"),
	}

	var image []byte
	if !cfg.InMemory {
		s.blob = newBlobStore(cfg.DataDir, cfg.DatabaseName)
		if err := s.blob.ensureDir(); err != nil {
			s.log.WithError(err).Warn("byte store unavailable, running in-memory only")
			s.blob = nil
			s.degraded = true
		}
	}
	if s.blob != nil {
		stored, err := s.blob.LoadVersion()
		if err != nil {
			s.log.WithError(err).Warn("version marker unreadable, rebuilding")
			stored = 0
		}
		if stored != 0 && stored != cfg.DatabaseVersion {
			s.log.WithFields(logrus.Fields{
				"stored": stored, "want": cfg.DatabaseVersion,
			}).Info("database version changed, discarding image")
			if err := s.blob.Clear(); err != nil {
				return nil, err
			}
		} else {
			image, err = s.blob.Load()
			if err != nil {
				s.log.WithError(err).Warn("image unreadable, starting empty")
				image = nil
			}
		}
	}

	eng, err := newEngine(cfg.DataDir, cfg.DatabaseName, image)
	if err != nil {
		if image == nil {
			return nil, err
		}
		// A corrupt image must not brick the app; a full sync rebuilds it.
		s.log.WithError(err).Warn("hydration failed, starting empty")
		eng, err = newEngine(cfg.DataDir, cfg.DatabaseName, nil)
		if err != nil {
			return nil, err
		}
	}
	s.eng = eng
	s.open = true

	s.createTables()
	if s.blob != nil {
		if err := s.blob.SaveVersion(cfg.DatabaseVersion); err != nil {
			s.log.WithError(err).Warn("writing version marker failed")
		}
	}
	if err := s.saveLocked(); err != nil {
		s.log.WithError(err).Warn("initial save failed")
	}
	return s, nil
}

// Run executes one mutating statement and persists the engine state. SQL
// failures are returned as *types.QueryError; persistence failures are
// logged, not returned, so a full byte store degrades durability rather than
// breaking writes.
func (s *Store) Run(sqlText string, params ...any) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return 0, types.ErrNotOpen
	}
	n, err := s.eng.Execute(sqlText, params...)
	if err != nil {
		return 0, &types.QueryError{SQL: sqlText, Params: params, Err: err}
	}
	if err := s.saveLocked(); err != nil {
		s.log.WithError(err).Warn("persisting after run failed")
	}
	return n, nil
}

// Select executes one read-only statement. It never persists.
func (s *Store) Select(sqlText string, params ...any) ([]types.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrNotOpen
	}
	rows, err := s.eng.Query(sqlText, params...)
	if err != nil {
		return nil, &types.QueryError{SQL: sqlText, Params: params, Err: err}
	}
	return rows, nil
}

// Transaction executes the statements inside BEGIN/COMMIT. On any failure it
// rolls back and returns a *types.TransactionError; either all statements
// apply or none do. This is the only multi-statement atomicity surface.
func (s *Store) Transaction(stmts []Statement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrNotOpen
	}
	if _, err := s.eng.Execute("BEGIN TRANSACTION"); err != nil {
		return &types.TransactionError{Index: -1, SQL: "BEGIN TRANSACTION", Err: err}
	}
	for i, st := range stmts {
		if _, err := s.eng.Execute(st.SQL, st.Params...); err != nil {
			if _, rbErr := s.eng.Execute("ROLLBACK"); rbErr != nil {
				s.log.WithError(rbErr).Error("rollback failed")
			}
			return &types.TransactionError{Index: i, SQL: st.SQL, Err: err}
		}
	}
	if _, err := s.eng.Execute("COMMIT"); err != nil {
		if _, rbErr := s.eng.Execute("ROLLBACK"); rbErr != nil {
			s.log.WithError(rbErr).Error("rollback failed")
		}
		return &types.TransactionError{Index: len(stmts), SQL: "COMMIT", Err: err}
	}
	if err := s.saveLocked(); err != nil {
		s.log.WithError(err).Warn("persisting after transaction failed")
	}
	return nil
}

// Save exports the live engine and writes the image to the byte store. Safe
// to call redundantly. In-memory stores report the storage sentinel so
// callers that care can tell nothing was persisted.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrNotOpen
	}
	return s.saveLocked()
}

// saveLocked serializes the engine and replaces the stored image. The export
// always comes from the live engine at the moment of the call; there is no
// captured-snapshot path. Caller must hold mu.
func (s *Store) saveLocked() error {
	if s.blob == nil {
		if s.cfg.InMemory {
			return nil // in-memory by request, nothing to persist
		}
		return types.ErrStorageUnavailable
	}
	data, err := s.eng.Export()
	if err != nil {
		return err
	}
	return s.blob.Save(data)
}

// ClearTable deletes every row from a schema table.
func (s *Store) ClearTable(name string) error {
	if !knownTables[name] {
		return types.ErrUnknownTable
	}
	_, err := s.Run("DELETE FROM " + name)
	return err
}

// ClearForBulkLoad deletes every row from a schema table without persisting
// the engine state. Bulk loads clear and refill many tables and persist once
// at the end of the whole batch; use ClearTable everywhere else.
func (s *Store) ClearForBulkLoad(name string) error {
	if !knownTables[name] {
		return types.ErrUnknownTable
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrNotOpen
	}
	if _, err := s.eng.Execute("DELETE FROM " + name); err != nil {
		return &types.QueryError{SQL: "DELETE FROM " + name, Err: err}
	}
	return nil
}

// DropTable drops a schema table if present.
func (s *Store) DropTable(name string) error {
	if !knownTables[name] {
		return types.ErrUnknownTable
	}
	_, err := s.Run("DROP TABLE IF EXISTS " + name)
	return err
}

// TableExists reports whether the table is present in the live database.
func (s *Store) TableExists(name string) (bool, error) {
	rows, err := s.Select(
		"SELECT name FROM sqlite_master WHERE type='table' AND name=?", name)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

// RowCount returns the number of rows in a schema table.
func (s *Store) RowCount(name string) (int64, error) {
	if !knownTables[name] {
		return 0, types.ErrUnknownTable
	}
	rows, err := s.Select("SELECT COUNT(*) AS count FROM " + name)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return types.AsInt(rows[0]["count"]), nil
}

// SizeBytes returns the size of the serialized database image.
func (s *Store) SizeBytes() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return 0, types.ErrNotOpen
	}
	data, err := s.eng.Export()
	if err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}

// Reset closes the engine, clears the persisted image, reopens empty and
// recreates the schema: a full wipe-and-rebuild for logout and version
// migration.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrNotOpen
	}
	if err := s.eng.Close(); err != nil {
		s.log.WithError(err).Warn("closing engine during reset")
	}
	if s.blob != nil {
		if err := s.blob.Clear(); err != nil {
			return err
		}
	}
	eng, err := newEngine(s.cfg.DataDir, s.cfg.DatabaseName, nil)
	if err != nil {
		s.open = false
		return err
	}
	s.eng = eng
	s.createTables()
	if s.blob != nil {
		if err := s.blob.SaveVersion(s.cfg.DatabaseVersion); err != nil {
			s.log.WithError(err).Warn("writing version marker failed")
		}
	}
	if err := s.saveLocked(); err != nil {
		s.log.WithError(err).Warn("persisting after reset failed")
	}
	return nil
}

// Close persists the current state (best effort) and releases the engine.
// Close is idempotent; operations after Close fail with ErrNotOpen.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	if err := s.saveLocked(); err != nil {
		s.log.WithError(err).Warn("final save failed")
	}
	s.open = false
	return s.eng.Close()
}
