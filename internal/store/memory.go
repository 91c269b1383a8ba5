package store

import "sync"

// MemoryBackend keeps blobs in a map. Nothing survives the process.
type MemoryBackend struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryBackend returns an empty in-process backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{blobs: make(map[string][]byte)}
}

func (b *MemoryBackend) Get(key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

func (b *MemoryBackend) Put(blobs ...Blob) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, blob := range blobs {
		b.blobs[blob.Key] = append([]byte(nil), blob.Data...)
	}
	return nil
}

func (b *MemoryBackend) Update(keys []string, fn func(current map[string][]byte) ([]Blob, error)) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := make(map[string][]byte, len(keys))
	for _, key := range keys {
		if data, ok := b.blobs[key]; ok {
			current[key] = append([]byte(nil), data...)
		}
	}
	blobs, err := fn(current)
	if err != nil {
		return err
	}
	for _, blob := range blobs {
		b.blobs[blob.Key] = append([]byte(nil), blob.Data...)
	}
	return nil
}

func (b *MemoryBackend) Close() error {
	return nil
}
