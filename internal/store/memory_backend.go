package store

import (
	"sync"

	"dutyroster/internal/domain"
)

// MemoryBackend keeps documents in process memory. Used by tests and dry runs.
type MemoryBackend struct {
	mu   sync.Mutex
	docs map[string][]byte
}

// NewMemoryBackend returns an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[string][]byte)}
}

// Read returns a copy of the document body.
func (b *MemoryBackend) Read(key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	body, ok := b.docs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), body...), true, nil
}

// Write stores a copy of body.
func (b *MemoryBackend) Write(key string, body []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.docs[key] = append([]byte(nil), body...)
	return nil
}

// Delete removes the document.
func (b *MemoryBackend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.docs, key)
	return nil
}

// Compile-time assertion that MemoryBackend implements domain.DocumentBackend.
var _ domain.DocumentBackend = (*MemoryBackend)(nil)
