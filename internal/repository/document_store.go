// Package repository holds the in-memory document store and the clients for
// external collaborators.
package repository

import "sync"

// DocumentStore is the single process-lifetime slot for the active
// document's extracted text. Each successful upload replaces the slot
// wholesale; the mutex makes the swap atomic with respect to in-flight
// reads. There is no eviction and no persistence across restarts.
type DocumentStore struct {
	mu   sync.RWMutex
	text string
}

// NewDocumentStore creates an empty document store
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Set replaces the stored document text. Callers must not pass text that
// trims to empty; the ingest service gates that before storing.
func (s *DocumentStore) Set(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
}

// Get returns the stored text. ok is false when no document has been
// loaded since process start.
func (s *DocumentStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text, s.text != ""
}
