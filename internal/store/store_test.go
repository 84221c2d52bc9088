package store

import (
	"sync"
	"testing"
	"time"

	"github.com/bidpulse/bidpulse/internal/models"
)

func TestRecordStore_SnapshotIsolation(t *testing.T) {
	s := NewRecordStore()
	s.AddCompletions(models.BidCompletionRecord{Status: "Awarded", CreatedAt: time.Now()})

	snap := s.Completions()
	if len(snap) != 1 {
		t.Fatalf("snapshot length = %d, want 1", len(snap))
	}

	// Mutating the snapshot must not touch the store
	snap[0].Status = "Tampered"
	again := s.Completions()
	if again[0].Status != "Awarded" {
		t.Errorf("store record mutated through snapshot: %q", again[0].Status)
	}
}

func TestRecordStore_Counts(t *testing.T) {
	s := NewRecordStore()
	s.AddCompletions(models.BidCompletionRecord{}, models.BidCompletionRecord{})
	s.AddResponses(models.VendorResponseRecord{})
	s.AddStatusDurations(models.StatusDurationRecord{}, models.StatusDurationRecord{}, models.StatusDurationRecord{})

	c, r, st := s.Counts()
	if c != 2 || r != 1 || st != 3 {
		t.Errorf("counts = %d/%d/%d, want 2/1/3", c, r, st)
	}

	s.Reset()
	c, r, st = s.Counts()
	if c != 0 || r != 0 || st != 0 {
		t.Errorf("counts after reset = %d/%d/%d, want zeros", c, r, st)
	}
}

func TestRecordStore_ConcurrentAccess(t *testing.T) {
	s := NewRecordStore()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.AddResponses(models.VendorResponseRecord{VendorID: 1, CompanyName: "Acme"})
		}()
		go func() {
			defer wg.Done()
			_ = s.Responses()
		}()
	}
	wg.Wait()

	_, r, _ := s.Counts()
	if r != 10 {
		t.Errorf("responses = %d, want 10", r)
	}
}
