package store

import (
	"fmt"
	"path/filepath"
)

// Backend kinds accepted by Open.
const (
	KindFile   = "file"
	KindSQLite = "sqlite"
	KindMemory = "memory"
)

// DatabaseFile is the SQLite file name inside the data dir.
const DatabaseFile = "caddie.db"

// Open builds the backend named by kind rooted at dataDir.
func Open(kind, dataDir string) (Backend, error) {
	switch kind {
	case KindFile, "":
		return NewFileBackend(dataDir)
	case KindSQLite:
		return NewSQLiteBackend(filepath.Join(dataDir, DatabaseFile))
	case KindMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q (valid: %s, %s, %s)",
			kind, KindFile, KindSQLite, KindMemory)
	}
}
