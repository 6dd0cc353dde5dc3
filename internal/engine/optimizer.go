package engine

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/freshbites/planner/backend-go/internal/domain"
)

// OptimizeAllocation allocates plant capacity to SKU demand so that total
// profit is maximized:
//
//	maximize   sum alloc[p,s] * profit[s]
//	subject to sum_s alloc[p,s] <= capacity[p]   for every plant p
//	           sum_p alloc[p,s] <= demand[s]     for every SKU s
//	           alloc[p,s] >= 0
//
// The problem is put in slack equality form and handed to gonum's simplex
// solver. The constraint matrix is a transportation matrix, so every vertex
// optimum is integral and the simplex solution satisfies the integer
// program as well. Tie-breaking among multiple optima is solver-dependent;
// callers may rely only on the objective value and constraint satisfaction.
//
// Allocations of zero are dropped; the rest are rounded to 2 decimals.
// A solver failure is fatal for the invocation and wrapped in
// domain.ErrSolverFailed.
func OptimizeAllocation(plants []domain.Plant, skus []domain.SKUDemand) ([]domain.ProfitAllocation, error) {
	nPlants := len(plants)
	nSKUs := len(skus)
	if nPlants == 0 || nSKUs == 0 {
		return []domain.ProfitAllocation{}, nil
	}

	// Variable layout: alloc[p][s] at p*nSKUs+s, then one slack per plant
	// row, then one slack per SKU row.
	nAlloc := nPlants * nSKUs
	nVars := nAlloc + nPlants + nSKUs
	nRows := nPlants + nSKUs

	c := make([]float64, nVars)
	for p := 0; p < nPlants; p++ {
		for s := 0; s < nSKUs; s++ {
			// Simplex minimizes; negate profit to maximize it.
			c[p*nSKUs+s] = -skus[s].Profit
		}
	}

	a := mat.NewDense(nRows, nVars, nil)
	b := make([]float64, nRows)
	for p := 0; p < nPlants; p++ {
		for s := 0; s < nSKUs; s++ {
			a.Set(p, p*nSKUs+s, 1)
		}
		a.Set(p, nAlloc+p, 1)
		b[p] = float64(plants[p].Capacity)
	}
	for s := 0; s < nSKUs; s++ {
		for p := 0; p < nPlants; p++ {
			a.Set(nPlants+s, p*nSKUs+s, 1)
		}
		a.Set(nPlants+s, nAlloc+nPlants+s, 1)
		b[nPlants+s] = float64(skus[s].Demand)
	}

	_, x, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSolverFailed, err)
	}

	result := make([]domain.ProfitAllocation, 0, nAlloc)
	for p := 0; p < nPlants; p++ {
		for s := 0; s < nSKUs; s++ {
			qty := round2(x[p*nSKUs+s])
			if qty > 0 {
				result = append(result, domain.ProfitAllocation{
					Plant:     plants[p].Name,
					SKU:       skus[s].SKU,
					Allocated: qty,
				})
			}
		}
	}
	return result, nil
}
