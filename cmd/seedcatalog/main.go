// Command seedcatalog loads a price-list Excel file into the product catalog.
// The first sheet is read with columns: code, name, sale price, purchase
// price, HSN, GST rate. The header row is skipped. Existing codes are
// updated in place.
// Usage: go run ./cmd/seedcatalog pricelist.xlsx
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"rapidbill/internal/config"
	"rapidbill/internal/domain"
	"rapidbill/internal/repository/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Println("Usage: seedcatalog <pricelist.xlsx>")
		os.Exit(1)
	}
	xlsxPath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	repo := postgres.NewProductRepo(db)
	ctx := context.Background()

	var seeded, skipped int
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		code := strings.TrimSpace(cellVal(row, 0))
		name := strings.TrimSpace(cellVal(row, 1))
		if code == "" || name == "" {
			skipped++
			continue
		}

		p := &domain.Product{
			ID:            code,
			Name:          name,
			Price:         numVal(row, 2),
			PurchasePrice: numVal(row, 3),
			HSN:           strings.TrimSpace(cellVal(row, 4)),
			GSTRate:       numVal(row, 5),
		}
		if err := repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("upsert product %q at row %d: %w", code, i+1, err)
		}
		seeded++
	}

	log.Printf("seeded %d products from %s (%d rows skipped)", seeded, xlsxPath, skipped)
	return nil
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func numVal(row []string, idx int) float64 {
	s := strings.TrimSpace(cellVal(row, idx))
	s = strings.TrimSuffix(s, "%")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
