package collab

import (
	"testing"
	"time"
)

func TestStore_AddAndApproveNote(t *testing.T) {
	s := NewStore()
	s.now = func() time.Time { return time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC) }

	note := s.AddNote("check SKU2 overstock in South")
	if note.ID == "" {
		t.Fatal("expected a generated note id")
	}
	if note.Timestamp != "2025-06-01 09:30:00" {
		t.Errorf("timestamp = %q", note.Timestamp)
	}
	if note.Approved {
		t.Error("new notes must start unapproved")
	}

	approved, ok := s.ApproveNote(note.ID)
	if !ok || !approved.Approved {
		t.Errorf("ApproveNote(%q) = %+v, %v", note.ID, approved, ok)
	}
	if _, ok := s.ApproveNote("nope"); ok {
		t.Error("unknown id should not approve")
	}

	notes := s.Notes()
	if len(notes) != 1 || !notes[0].Approved {
		t.Errorf("Notes() = %+v", notes)
	}
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()
	s.AddNote("a")
	s.SetKPIs(KPISet{ServiceLevel: 50})

	s.Reset()

	if len(s.Notes()) != 0 {
		t.Error("reset should clear notes")
	}
	if s.KPIs() != DefaultKPIs() {
		t.Errorf("reset should restore baseline KPIs, got %+v", s.KPIs())
	}
}
