// Package index writes an assembled model into a SQLite database so
// external tooling can query the file array and reference tree without
// re-running discovery.
package index

import (
	"database/sql"
	"fmt"
	"sort"

	_ "modernc.org/sqlite"

	"github.com/filedex/filedex/api"
)

// Writer persists one model snapshot.
type Writer struct {
	db        *sql.DB
	tx        *sql.Tx
	stmtFile  *sql.Stmt
	stmtIdent *sql.Stmt
}

// NewWriter opens the database and initializes the snapshot schema.
func NewWriter(dbPath string) (*Writer, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// Bulk-insert tuning; the snapshot is rebuilt whole on every run.
	if _, err := db.Exec("PRAGMA synchronous = OFF"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec("PRAGMA journal_mode = MEMORY"); err != nil {
		_ = db.Close()
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS files (
		idx INTEGER PRIMARY KEY,
		relative_path TEXT NOT NULL UNIQUE,
		absolute_path TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS identifiers (
		path TEXT PRIMARY KEY,
		parent TEXT,
		name TEXT NOT NULL,
		kind INTEGER NOT NULL,
		file_idx INTEGER
	);
	CREATE INDEX IF NOT EXISTS idx_identifiers_parent ON identifiers(parent, name);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	w := &Writer{db: db}
	if err := w.beginTx(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return w, nil
}

func (w *Writer) beginTx() error {
	var err error
	w.tx, err = w.db.Begin()
	if err != nil {
		return err
	}
	w.stmtFile, err = w.tx.Prepare(
		`INSERT OR REPLACE INTO files (idx, relative_path, absolute_path) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	w.stmtIdent, err = w.tx.Prepare(
		`INSERT OR REPLACE INTO identifiers (path, parent, name, kind, file_idx) VALUES (?, ?, ?, ?, ?)`)
	return err
}

// WriteModel writes the ordered file array and, when present, the
// reference forest.
func (w *Writer) WriteModel(model *api.Model) error {
	for i, file := range model.Files {
		if _, err := w.stmtFile.Exec(i, file.RelativePath, file.AbsolutePath); err != nil {
			return fmt.Errorf("insert file %s: %w", file.RelativePath, err)
		}
	}
	if model.Forest != nil {
		return w.writeForest(model.Forest, "")
	}
	return nil
}

func (w *Writer) writeForest(forest api.Forest, parent string) error {
	names := make([]string, 0, len(forest))
	for name := range forest {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		node := forest[name]
		path := name
		if parent != "" {
			path = parent + "/" + name
		}

		var parentID any
		if parent != "" {
			parentID = parent
		}
		if node.IsLeaf() {
			if _, err := w.stmtIdent.Exec(path, parentID, name, 0, node.Leaf.Index); err != nil {
				return fmt.Errorf("insert identifier %s: %w", path, err)
			}
			continue
		}
		if _, err := w.stmtIdent.Exec(path, parentID, name, 1, nil); err != nil {
			return fmt.Errorf("insert identifier %s: %w", path, err)
		}
		if err := w.writeForest(node.Folder, path); err != nil {
			return err
		}
	}
	return nil
}

// Close commits the snapshot and closes the database.
func (w *Writer) Close() error {
	if w.stmtFile != nil {
		_ = w.stmtFile.Close()
	}
	if w.stmtIdent != nil {
		_ = w.stmtIdent.Close()
	}
	if err := w.tx.Commit(); err != nil {
		_ = w.db.Close()
		return err
	}
	return w.db.Close()
}

// Abort discards the pending snapshot and closes the database. Nothing
// written since NewWriter survives.
func (w *Writer) Abort() error {
	if w.stmtFile != nil {
		_ = w.stmtFile.Close()
	}
	if w.stmtIdent != nil {
		_ = w.stmtIdent.Close()
	}
	if err := w.tx.Rollback(); err != nil {
		_ = w.db.Close()
		return err
	}
	return w.db.Close()
}
