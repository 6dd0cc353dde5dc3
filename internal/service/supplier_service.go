package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/freshbites/planner/backend-go/internal/domain"
	"github.com/freshbites/planner/backend-go/internal/repository"
)

// SupplierService derives SLA reliability from the supplier dataset.
type SupplierService struct {
	repo repository.PlanningRepository
}

func NewSupplierService(repo repository.PlanningRepository) *SupplierService {
	return &SupplierService{repo: repo}
}

// Reliability lists suppliers with their on-time delivery percentage and a
// delay flag against the committed lead time.
func (s *SupplierService) Reliability(ctx context.Context) ([]domain.SupplierReliability, error) {
	suppliers, err := s.repo.Suppliers(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]domain.SupplierReliability, 0, len(suppliers))
	for _, sup := range suppliers {
		reliability := 0.0
		if sup.Deliveries > 0 {
			reliability = decimal.NewFromInt(int64(sup.OnTimeDeliveries)).
				Div(decimal.NewFromInt(int64(sup.Deliveries))).
				Mul(decimal.NewFromInt(100)).
				Round(2).
				InexactFloat64()
		}

		status := domain.SupplierOnTime
		if sup.AvgLeadTime > sup.CommittedLeadTime {
			status = domain.SupplierDelayed
		}

		results = append(results, domain.SupplierReliability{
			SupplierID:        sup.SupplierID,
			Name:              sup.Name,
			CommittedLeadTime: sup.CommittedLeadTime,
			AvgLeadTime:       sup.AvgLeadTime,
			Deliveries:        sup.Deliveries,
			OnTimeDeliveries:  sup.OnTimeDeliveries,
			Reliability:       reliability,
			Status:            status,
		})
	}
	return results, nil
}

// Upload replaces the supplier dataset.
func (s *SupplierService) Upload(ctx context.Context, rows []domain.SupplierRecord) error {
	return s.repo.ReplaceSuppliers(ctx, rows)
}
