package service

import (
	"context"
	"testing"

	"github.com/freshbites/planner/backend-go/internal/domain"
	"github.com/freshbites/planner/backend-go/internal/repository/memory"
)

func TestSupplierService_Reliability(t *testing.T) {
	repo := memory.NewPlanningRepository()
	ctx := context.Background()
	err := repo.ReplaceSuppliers(ctx, []domain.SupplierRecord{
		{SupplierID: "S1", Name: "Acme", CommittedLeadTime: 5, AvgLeadTime: 4, Deliveries: 100, OnTimeDeliveries: 90},
		{SupplierID: "S2", Name: "Bolt", CommittedLeadTime: 3, AvgLeadTime: 6, Deliveries: 3, OnTimeDeliveries: 1},
		{SupplierID: "S3", Name: "Idle", CommittedLeadTime: 2, AvgLeadTime: 2, Deliveries: 0, OnTimeDeliveries: 0},
	})
	if err != nil {
		t.Fatalf("seed suppliers: %v", err)
	}

	got, err := NewSupplierService(repo).Reliability(ctx)
	if err != nil {
		t.Fatalf("Reliability failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 suppliers, got %d", len(got))
	}

	byID := map[string]domain.SupplierReliability{}
	for _, r := range got {
		byID[r.SupplierID] = r
	}

	if r := byID["S1"]; r.Reliability != 90 || r.Status != domain.SupplierOnTime {
		t.Errorf("S1 = %+v, want 90 / On-Time", r)
	}
	if r := byID["S2"]; r.Reliability != 33.33 || r.Status != domain.SupplierDelayed {
		t.Errorf("S2 = %+v, want 33.33 / Delayed", r)
	}
	if r := byID["S3"]; r.Reliability != 0 {
		t.Errorf("S3 with zero deliveries should report 0, got %+v", r)
	}
}
