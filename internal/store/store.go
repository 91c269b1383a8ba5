// Package store persists Caddie IQ state as JSON blobs under fixed keys.
//
// Reads never fail: a missing key, a backend error or a malformed blob all
// leave the caller's default in place. Writes are best-effort: failures are
// logged and absorbed so a broken disk never takes advice away from the
// player. Three backends share the Backend interface: one JSON file per key,
// a single SQLite table, or an in-process map.
package store

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/HendryAvila/caddie-iq/internal/logging"
)

// timeNow is a package-level variable for testability.
var timeNow = time.Now

// Blob is one raw key/value pair handed to a backend.
type Blob struct {
	Key  string
	Data []byte
}

// Backend is the raw byte store behind Store.
type Backend interface {
	// Get returns the blob for key and whether it exists.
	Get(key string) ([]byte, bool, error)
	// Put writes all blobs as one unit.
	Put(blobs ...Blob) error
	// Update reads keys and writes the blobs fn returns while holding the
	// backend's exclusive lock, so no other process can read or write in
	// between. current holds only the keys that exist. When fn returns an
	// error nothing is written and that error is returned.
	Update(keys []string, fn func(current map[string][]byte) ([]Blob, error)) error
	Close() error
}

// Reader is the load side shared by Store and Tx.
type Reader interface {
	Load(key string, v any) bool
}

// Entry is a value to be saved under Key.
type Entry struct {
	Key   string
	Value any
}

// Store is the load-with-default, best-effort-save layer over a Backend.
type Store struct {
	backend Backend
	log     logrus.FieldLogger
}

// New wraps a backend. A nil logger discards warnings.
func New(backend Backend, log logrus.FieldLogger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{backend: backend, log: log}
}

// Load decodes the blob under key into v, which must be a non-nil pointer
// pre-filled with the default. It reports whether a stored value was used.
// On any failure v is left untouched.
func (s *Store) Load(key string, v any) bool {
	data, ok, err := s.backend.Get(key)
	if err != nil {
		logging.WithKey(s.log, key).WithError(err).Warn("store: read failed, using default")
		return false
	}
	if !ok {
		return false
	}
	return s.decode(key, data, v)
}

// decode unmarshals into a scratch value first so a half-matching blob
// cannot leave v partially overwritten.
func (s *Store) decode(key string, data []byte, v any) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		logging.WithKey(s.log, key).Warn("store: load target is not a pointer")
		return false
	}
	scratch := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(data, scratch.Interface()); err != nil {
		logging.WithKey(s.log, key).WithError(err).Warn("store: malformed value, using default")
		return false
	}
	rv.Elem().Set(scratch.Elem())
	return true
}

// Save writes v under key. Errors are logged, never returned.
func (s *Store) Save(key string, v any) {
	s.SaveAll(Entry{Key: key, Value: v})
}

// SaveAll writes several keys through one backend call so they land
// together. If any value fails to encode nothing is written.
func (s *Store) SaveAll(entries ...Entry) {
	blobs := s.encode(entries)
	if len(blobs) == 0 {
		return
	}
	if err := s.backend.Put(blobs...); err != nil {
		for _, b := range blobs {
			logging.WithKey(s.log, b.Key).WithError(err).Warn("store: write failed")
		}
	}
}

// encode returns nil, after logging, when any entry fails to encode.
func (s *Store) encode(entries []Entry) []Blob {
	if len(entries) == 0 {
		return nil
	}
	blobs := make([]Blob, 0, len(entries))
	for _, e := range entries {
		data, err := json.MarshalIndent(e.Value, "", "  ")
		if err != nil {
			logging.WithKey(s.log, e.Key).WithError(err).Warn("store: encode failed, write skipped")
			return nil
		}
		blobs = append(blobs, Blob{Key: e.Key, Data: data})
	}
	return blobs
}

// Tx is the view handed to an Update callback. Loads read the snapshot
// taken under the backend lock; saves are buffered and written when the
// callback returns nil.
type Tx struct {
	store   *Store
	current map[string][]byte
	writes  []Entry
}

// Load decodes key from the snapshot. Keys not named in Update read as
// missing.
func (tx *Tx) Load(key string, v any) bool {
	data, ok := tx.current[key]
	if !ok {
		return false
	}
	return tx.store.decode(key, data, v)
}

// Save buffers v under key.
func (tx *Tx) Save(key string, v any) {
	tx.SaveAll(Entry{Key: key, Value: v})
}

// SaveAll buffers several keys; they are written together.
func (tx *Tx) SaveAll(entries ...Entry) {
	tx.writes = append(tx.writes, entries...)
}

// Update runs fn as one exclusive read-modify-write over keys, serialized
// with every other Update on the same backend, including from other
// processes. An error from fn is returned and nothing is written.
//
// Backend failures are absorbed like in Load and Save: a failed write is
// logged, and when the snapshot cannot be taken at all fn still runs over
// defaults with its writes dropped.
func (s *Store) Update(keys []string, fn func(tx *Tx) error) error {
	var (
		ran   bool
		fnErr error
	)
	err := s.backend.Update(keys, func(current map[string][]byte) ([]Blob, error) {
		ran = true
		tx := &Tx{store: s, current: current}
		if fnErr = fn(tx); fnErr != nil {
			return nil, fnErr
		}
		return s.encode(tx.writes), nil
	})

	keyList := strings.Join(keys, ",")
	switch {
	case ran && fnErr != nil:
		return fnErr
	case ran && err != nil:
		s.log.WithField("keys", keyList).WithError(err).Warn("store: write failed")
		return nil
	case err != nil:
		s.log.WithField("keys", keyList).WithError(err).Warn("store: update lock failed, using defaults")
		return fn(&Tx{store: s, current: map[string][]byte{}})
	}
	return nil
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
