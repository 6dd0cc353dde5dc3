// Command seed loads sample planning datasets into postgres and can
// generate a synthetic inventory CSV for demos.
package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/freshbites/planner/backend-go/internal/domain"
	"github.com/freshbites/planner/backend-go/internal/ingest"
)

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Load planning datasets into the database",
		Commands: []*cli.Command{
			{
				Name:  "load",
				Usage: "Load demand, inventory and supplier CSVs",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{
						Name:    "data-dir",
						Usage:   "Directory containing demand.csv, inventory.csv and suppliers.csv",
						Value:   "./data/samples",
						EnvVars: []string{"SEED_DATA_DIR"},
					},
				},
				Action: runLoad,
			},
			{
				Name:  "generate",
				Usage: "Generate a synthetic inventory CSV",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Usage: "Output file path",
						Value: "inventory_dataset.csv",
					},
					&cli.IntFlag{
						Name:  "skus",
						Usage: "Number of SKUs to generate",
						Value: 20,
					},
					&cli.IntFlag{
						Name:  "max-rows",
						Usage: "Cap on generated rows",
						Value: 650,
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "Random seed",
						Value: 42,
					},
				},
				Action: runGenerate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runLoad(c *cli.Context) error {
	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	ctx := c.Context
	dataDir := c.String("data-dir")

	demand, err := parseFile(dataDir, "demand.csv", ingest.ParseDemand)
	if err != nil {
		return err
	}
	inventory, err := parseFile(dataDir, "inventory.csv", ingest.ParseInventory)
	if err != nil {
		return err
	}
	suppliers, err := parseFile(dataDir, "suppliers.csv", ingest.ParseSuppliers)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := loadDemand(ctx, tx, demand); err != nil {
		return err
	}
	if err := loadInventory(ctx, tx, inventory); err != nil {
		return err
	}
	if err := loadSuppliers(ctx, tx, suppliers); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	log.Printf("loaded %d demand, %d inventory, %d supplier rows", len(demand), len(inventory), len(suppliers))
	return nil
}

// parseFile reads one dataset file; a missing file yields an empty slice
// so partial sample directories still load.
func parseFile[T any](dir, name string, parse func(*ingest.Table) ([]T, error)) ([]T, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		log.Printf("skipping %s: not found", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	table, err := ingest.ReadTable(f, name)
	if err != nil {
		return nil, err
	}
	return parse(table)
}

func loadDemand(ctx context.Context, tx *sql.Tx, rows []domain.DemandRecord) error {
	if len(rows) == 0 {
		return nil
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM demand`); err != nil {
		return fmt.Errorf("failed to clear demand: %w", err)
	}
	for _, row := range rows {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO demand (week, sku, region, forecast, actual) VALUES ($1, $2, $3, $4, $5)`,
			row.Week, row.SKU, row.Region, row.Forecast, row.Actual)
		if err != nil {
			return fmt.Errorf("failed to insert demand row: %w", err)
		}
	}
	return nil
}

func loadInventory(ctx context.Context, tx *sql.Tx, rows []domain.InventoryRecord) error {
	if len(rows) == 0 {
		return nil
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM inventory`); err != nil {
		return fmt.Errorf("failed to clear inventory: %w", err)
	}
	for _, row := range rows {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO inventory (sku, region, stock, forecast) VALUES ($1, $2, $3, $4)`,
			row.SKU, row.Region, row.Stock, row.Forecast)
		if err != nil {
			return fmt.Errorf("failed to insert inventory row: %w", err)
		}
	}
	return nil
}

func loadSuppliers(ctx context.Context, tx *sql.Tx, rows []domain.SupplierRecord) error {
	if len(rows) == 0 {
		return nil
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM suppliers`); err != nil {
		return fmt.Errorf("failed to clear suppliers: %w", err)
	}
	for _, row := range rows {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO suppliers (supplier_id, name, committed_lead_time, avg_lead_time,
				deliveries, on_time_deliveries, unit_cost, min_order_qty, max_capacity, sku_linked)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			row.SupplierID, row.Name, row.CommittedLeadTime, row.AvgLeadTime,
			row.Deliveries, row.OnTimeDeliveries, row.UnitCost, row.MinOrderQty,
			row.MaxCapacity, row.SKULinked)
		if err != nil {
			return fmt.Errorf("failed to insert supplier row: %w", err)
		}
	}
	return nil
}

var generatorRegions = []string{"Mumbai", "Delhi", "Bangalore", "Kolkata", "Chennai", "Hyderabad"}

type inventoryRow struct {
	sku      string
	region   string
	forecast int
	stock    int
}

// runGenerate produces a shuffled inventory CSV where every SKU is
// guaranteed at least one shortage, one balanced and one overstock region.
func runGenerate(c *cli.Context) error {
	rng := rand.New(rand.NewSource(c.Int64("seed")))
	numSKUs := c.Int("skus")
	maxRows := c.Int("max-rows")

	var rows []inventoryRow
	for id := 1; id <= numSKUs; id++ {
		sku := fmt.Sprintf("SKU-%d", id)

		chosen := rng.Perm(len(generatorRegions))[:3]
		rows = append(rows,
			generateRow(rng, sku, generatorRegions[chosen[0]], "short"),
			generateRow(rng, sku, generatorRegions[chosen[1]], "balanced"),
			generateRow(rng, sku, generatorRegions[chosen[2]], "over"),
		)

		picked := map[int]bool{chosen[0]: true, chosen[1]: true, chosen[2]: true}
		kinds := []string{"short", "balanced", "over"}
		for i, region := range generatorRegions {
			if picked[i] {
				continue
			}
			rows = append(rows, generateRow(rng, sku, region, kinds[rng.Intn(len(kinds))]))
		}
	}

	rng.Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
	if len(rows) > maxRows {
		rows = rows[:maxRows]
	}

	out := c.String("out")
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"SKU", "Region", "Forecast", "Stock"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		record := []string{row.sku, row.region, strconv.Itoa(row.forecast), strconv.Itoa(row.stock)}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	log.Printf("%s generated with %d rows", out, len(rows))
	return nil
}

func generateRow(rng *rand.Rand, sku, region, kind string) inventoryRow {
	forecast := 500 + rng.Intn(1001)

	var lo, hi float64
	switch kind {
	case "short":
		lo, hi = 0.4, 0.8
	case "balanced":
		lo, hi = 0.9, 1.1
	default: // keeps stock strictly above the 1.3x overstock line
		lo, hi = 1.4, 2.0
	}
	stock := int(float64(forecast) * (lo + rng.Float64()*(hi-lo)))

	return inventoryRow{sku: sku, region: region, forecast: forecast, stock: stock}
}
