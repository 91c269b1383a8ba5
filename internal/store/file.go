package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

// lockName is the lock file shared by every process using a data dir.
const lockName = ".caddie.lock"

// FileBackend stores each key as <dir>/<key>.json. Writes go through a
// temp file and rename while holding an exclusive flock on the directory's
// lock file, so a CLI run and a long-lived MCP server never interleave.
type FileBackend struct {
	dir  string
	mu   sync.Mutex
	lock *flock.Flock
}

// NewFileBackend creates the data dir if needed.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}
	return &FileBackend{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, lockName)),
	}, nil
}

// Path returns the file that holds key.
func (b *FileBackend) Path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

// Get reads one key under a shared lock.
func (b *FileBackend) Get(key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.lock.RLock(); err != nil {
		return nil, false, fmt.Errorf("failed to acquire read lock on %s: %w", b.dir, err)
	}
	defer b.lock.Unlock()

	return b.read(key)
}

// Put writes every blob under one exclusive lock.
func (b *FileBackend) Put(blobs ...Blob) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", b.dir, err)
	}
	defer b.lock.Unlock()

	return b.writeAll(blobs)
}

// Update holds the exclusive lock from the first read to the last write.
func (b *FileBackend) Update(keys []string, fn func(current map[string][]byte) ([]Blob, error)) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", b.dir, err)
	}
	defer b.lock.Unlock()

	current := make(map[string][]byte, len(keys))
	for _, key := range keys {
		data, ok, err := b.read(key)
		if err != nil {
			return err
		}
		if ok {
			current[key] = data
		}
	}

	blobs, err := fn(current)
	if err != nil {
		return err
	}
	return b.writeAll(blobs)
}

// Close is a no-op; the lock is only held during calls.
func (b *FileBackend) Close() error {
	return nil
}

func (b *FileBackend) read(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, true, nil
}

func (b *FileBackend) writeAll(blobs []Blob) error {
	for _, blob := range blobs {
		if err := b.writeBlob(blob); err != nil {
			return err
		}
	}
	return nil
}

// writeBlob replaces the key's file through a private temp file and a
// rename, so a reader never sees a half-written value. The caller holds
// the exclusive lock.
func (b *FileBackend) writeBlob(blob Blob) (err error) {
	tmp, err := os.CreateTemp(b.dir, ".tmp-"+blob.Key+"-*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", blob.Key, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			err = fmt.Errorf("writing %s: %w", blob.Key, err)
		}
	}()

	if err = tmp.Chmod(0o600); err != nil {
		return err
	}
	if _, err = tmp.Write(blob.Data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), b.Path(blob.Key))
}
