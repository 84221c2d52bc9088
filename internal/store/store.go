// Package store keeps the analytics working set in memory. Records arrive
// from the feed or the ingest API and are served to the computation engine
// as copied snapshots, so engine transforms can never observe a write in
// progress.
package store

import (
	"sync"

	"github.com/bidpulse/bidpulse/internal/models"
)

// RecordStore holds the three record families behind one RWMutex. Reads
// return copies; callers own the returned slices.
type RecordStore struct {
	mu          sync.RWMutex
	completions []models.BidCompletionRecord
	responses   []models.VendorResponseRecord
	statuses    []models.StatusDurationRecord
}

// NewRecordStore creates an empty record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// AddCompletions appends bid completion records.
func (s *RecordStore) AddCompletions(records ...models.BidCompletionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completions = append(s.completions, records...)
}

// AddResponses appends vendor response records.
func (s *RecordStore) AddResponses(records ...models.VendorResponseRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = append(s.responses, records...)
}

// AddStatusDurations appends status transition records.
func (s *RecordStore) AddStatusDurations(records ...models.StatusDurationRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = append(s.statuses, records...)
}

// Completions returns a snapshot of the bid completion records.
func (s *RecordStore) Completions() []models.BidCompletionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BidCompletionRecord, len(s.completions))
	copy(out, s.completions)
	return out
}

// Responses returns a snapshot of the vendor response records.
func (s *RecordStore) Responses() []models.VendorResponseRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.VendorResponseRecord, len(s.responses))
	copy(out, s.responses)
	return out
}

// StatusDurations returns a snapshot of the status transition records.
func (s *RecordStore) StatusDurations() []models.StatusDurationRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.StatusDurationRecord, len(s.statuses))
	copy(out, s.statuses)
	return out
}

// Counts reports how many records of each family are held.
func (s *RecordStore) Counts() (completions, responses, statuses int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.completions), len(s.responses), len(s.statuses)
}

// Reset drops all records. Intended for tests and full reloads.
func (s *RecordStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completions = nil
	s.responses = nil
	s.statuses = nil
}
