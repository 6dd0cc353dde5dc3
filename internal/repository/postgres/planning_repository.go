package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/freshbites/planner/backend-go/internal/domain"
	"github.com/freshbites/planner/backend-go/internal/engine"
)

const schema = `
CREATE TABLE IF NOT EXISTS demand (
	id       BIGSERIAL PRIMARY KEY,
	week     INT NOT NULL DEFAULT 0,
	sku      VARCHAR(50) NOT NULL,
	region   VARCHAR(50) NOT NULL,
	forecast INT NOT NULL DEFAULT 0,
	actual   INT NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS inventory (
	id       BIGSERIAL PRIMARY KEY,
	sku      VARCHAR(50) NOT NULL,
	region   VARCHAR(50) NOT NULL,
	stock    INT NOT NULL DEFAULT 0,
	forecast INT NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS suppliers (
	id                  BIGSERIAL PRIMARY KEY,
	supplier_id         VARCHAR(50) NOT NULL,
	name                VARCHAR(100) NOT NULL,
	committed_lead_time INT NOT NULL DEFAULT 0,
	avg_lead_time       INT NOT NULL DEFAULT 0,
	deliveries          INT NOT NULL DEFAULT 0,
	on_time_deliveries  INT NOT NULL DEFAULT 0,
	unit_cost           DOUBLE PRECISION NOT NULL DEFAULT 0,
	min_order_qty       INT NOT NULL DEFAULT 0,
	max_capacity        INT NOT NULL DEFAULT 0,
	sku_linked          VARCHAR(50) NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_demand_sku_region ON demand (sku, region);
CREATE INDEX IF NOT EXISTS idx_inventory_sku_region ON inventory (sku, region);
`

// PlanningRepository is the postgres-backed dataset store.
type PlanningRepository struct {
	db *DB
}

func NewPlanningRepository(db *DB) (*PlanningRepository, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	return &PlanningRepository{db: db}, nil
}

type keyTotalRow struct {
	SKU    string `db:"sku"`
	Region string `db:"region"`
	Total  int    `db:"total"`
}

func (r *PlanningRepository) ForecastTotals(ctx context.Context) ([]engine.KeyTotal, error) {
	return r.keyTotals(ctx, `SELECT sku, region, COALESCE(SUM(forecast), 0) AS total
		FROM demand GROUP BY sku, region ORDER BY sku, region`)
}

func (r *PlanningRepository) StockTotals(ctx context.Context) ([]engine.KeyTotal, error) {
	return r.keyTotals(ctx, `SELECT sku, region, COALESCE(SUM(stock), 0) AS total
		FROM inventory GROUP BY sku, region ORDER BY sku, region`)
}

func (r *PlanningRepository) keyTotals(ctx context.Context, query string) ([]engine.KeyTotal, error) {
	var rows []keyTotalRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to query totals: %w", err)
	}

	totals := make([]engine.KeyTotal, len(rows))
	for i, row := range rows {
		totals[i] = engine.KeyTotal{SKU: row.SKU, Region: row.Region, Total: row.Total}
	}
	return totals, nil
}

func (r *PlanningRepository) DemandRecords(ctx context.Context) ([]domain.DemandRecord, error) {
	var rows []domain.DemandRecord
	err := r.db.SelectContext(ctx, &rows,
		`SELECT week, sku, region, forecast, actual FROM demand ORDER BY sku, region, week`)
	if err != nil {
		return nil, fmt.Errorf("failed to query demand records: %w", err)
	}
	return rows, nil
}

func (r *PlanningRepository) DemandGrouped(ctx context.Context) ([]domain.WeeklyDemand, error) {
	var rows []domain.WeeklyDemand
	err := r.db.SelectContext(ctx, &rows,
		`SELECT week, region, sku,
			COALESCE(SUM(forecast), 0) AS forecast,
			COALESCE(SUM(actual), 0) AS actual
		FROM demand GROUP BY week, region, sku ORDER BY sku, region, week`)
	if err != nil {
		return nil, fmt.Errorf("failed to query grouped demand: %w", err)
	}
	return rows, nil
}

func (r *PlanningRepository) WeeklySeries(ctx context.Context, sku, region string) ([]domain.WeeklyDemand, error) {
	var rows []domain.WeeklyDemand
	err := r.db.SelectContext(ctx, &rows,
		`SELECT week, region, sku,
			COALESCE(SUM(forecast), 0) AS forecast,
			COALESCE(SUM(actual), 0) AS actual
		FROM demand WHERE sku = $1 AND region = $2
		GROUP BY week, region, sku ORDER BY week`, sku, region)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekly series: %w", err)
	}
	return rows, nil
}

func (r *PlanningRepository) SKUForecastTotals(ctx context.Context) ([]domain.SKUForecast, error) {
	var rows []struct {
		SKU      string `db:"sku"`
		Forecast int    `db:"forecast"`
	}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT sku, COALESCE(SUM(forecast), 0) AS forecast FROM demand GROUP BY sku ORDER BY sku`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sku forecast totals: %w", err)
	}

	totals := make([]domain.SKUForecast, len(rows))
	for i, row := range rows {
		totals[i] = domain.SKUForecast{SKU: row.SKU, Forecast: row.Forecast}
	}
	return totals, nil
}

func (r *PlanningRepository) Suppliers(ctx context.Context) ([]domain.SupplierRecord, error) {
	var rows []domain.SupplierRecord
	err := r.db.SelectContext(ctx, &rows,
		`SELECT supplier_id, name, committed_lead_time, avg_lead_time, deliveries,
			on_time_deliveries, unit_cost, min_order_qty, max_capacity, sku_linked
		FROM suppliers ORDER BY supplier_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	return rows, nil
}

func (r *PlanningRepository) StockByRegion(ctx context.Context) ([]domain.InventoryRecord, error) {
	var rows []domain.InventoryRecord
	err := r.db.SelectContext(ctx, &rows,
		`SELECT sku, region, COALESCE(SUM(stock), 0) AS stock,
			COALESCE(SUM(forecast), 0) AS forecast
		FROM inventory GROUP BY sku, region ORDER BY region, sku`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock by region: %w", err)
	}
	return rows, nil
}

func (r *PlanningRepository) ReplaceDemand(ctx context.Context, records []domain.DemandRecord) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM demand`); err != nil {
			return fmt.Errorf("failed to clear demand: %w", err)
		}
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO demand (week, sku, region, forecast, actual) VALUES ($1, $2, $3, $4, $5)`)
		if err != nil {
			return fmt.Errorf("failed to prepare demand insert: %w", err)
		}
		defer stmt.Close()

		for _, rec := range records {
			if _, err := stmt.ExecContext(ctx, rec.Week, rec.SKU, rec.Region, rec.Forecast, rec.Actual); err != nil {
				return fmt.Errorf("failed to insert demand row: %w", err)
			}
		}
		return nil
	})
}

func (r *PlanningRepository) ReplaceInventory(ctx context.Context, records []domain.InventoryRecord) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM inventory`); err != nil {
			return fmt.Errorf("failed to clear inventory: %w", err)
		}
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO inventory (sku, region, stock, forecast) VALUES ($1, $2, $3, $4)`)
		if err != nil {
			return fmt.Errorf("failed to prepare inventory insert: %w", err)
		}
		defer stmt.Close()

		for _, rec := range records {
			if _, err := stmt.ExecContext(ctx, rec.SKU, rec.Region, rec.Stock, rec.Forecast); err != nil {
				return fmt.Errorf("failed to insert inventory row: %w", err)
			}
		}
		return nil
	})
}

func (r *PlanningRepository) ReplaceSuppliers(ctx context.Context, records []domain.SupplierRecord) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM suppliers`); err != nil {
			return fmt.Errorf("failed to clear suppliers: %w", err)
		}
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO suppliers (supplier_id, name, committed_lead_time, avg_lead_time,
				deliveries, on_time_deliveries, unit_cost, min_order_qty, max_capacity, sku_linked)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`)
		if err != nil {
			return fmt.Errorf("failed to prepare supplier insert: %w", err)
		}
		defer stmt.Close()

		for _, rec := range records {
			if _, err := stmt.ExecContext(ctx, rec.SupplierID, rec.Name, rec.CommittedLeadTime,
				rec.AvgLeadTime, rec.Deliveries, rec.OnTimeDeliveries, rec.UnitCost,
				rec.MinOrderQty, rec.MaxCapacity, rec.SKULinked); err != nil {
				return fmt.Errorf("failed to insert supplier row: %w", err)
			}
		}
		return nil
	})
}

func (r *PlanningRepository) ClearProcurement(ctx context.Context) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM demand`); err != nil {
			return fmt.Errorf("failed to clear demand: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM suppliers`); err != nil {
			return fmt.Errorf("failed to clear suppliers: %w", err)
		}
		return nil
	})
}

func (r *PlanningRepository) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DROP TABLE IF EXISTS demand, inventory, suppliers`); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to recreate schema: %w", err)
	}
	return nil
}
