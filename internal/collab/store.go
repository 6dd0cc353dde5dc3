// Package collab holds the shared planning notes and the KPI baseline.
// State lives in an explicit store injected into its callers, with a
// lifecycle owned by main.
package collab

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Note is a planner annotation awaiting approval.
type Note struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
	Approved  bool   `json:"approved"`
}

// KPISet is the current headline KPI snapshot.
type KPISet struct {
	ServiceLevel        float64 `json:"service_level"`
	Stockouts           int     `json:"stockouts"`
	ExcessCost          float64 `json:"excess_cost"`
	SupplierReliability float64 `json:"supplier_reliability"`
}

// DefaultKPIs is the baseline shown before any evaluation updates them.
func DefaultKPIs() KPISet {
	return KPISet{
		ServiceLevel:        96,
		Stockouts:           3,
		ExcessCost:          12500,
		SupplierReliability: 92,
	}
}

// Store keeps notes and KPIs behind a mutex. Safe for concurrent handlers.
type Store struct {
	mu    sync.RWMutex
	notes []Note
	kpis  KPISet
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{kpis: DefaultKPIs(), now: time.Now}
}

// AddNote appends an unapproved note and returns it.
func (s *Store) AddNote(text string) Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	note := Note{
		ID:        uuid.NewString(),
		Text:      text,
		Timestamp: s.now().Format("2006-01-02 15:04:05"),
	}
	s.notes = append(s.notes, note)
	return note
}

// Notes returns a copy of all notes in insertion order.
func (s *Store) Notes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Note(nil), s.notes...)
}

// ApproveNote flags a note as approved. Returns false when the id is unknown.
func (s *Store) ApproveNote(id string) (Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes[i].Approved = true
			return s.notes[i], true
		}
	}
	return Note{}, false
}

// KPIs returns the current KPI snapshot.
func (s *Store) KPIs() KPISet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kpis
}

// SetKPIs replaces the KPI snapshot.
func (s *Store) SetKPIs(kpis KPISet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kpis = kpis
}

// Reset clears notes and restores the KPI baseline.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = nil
	s.kpis = DefaultKPIs()
}
