// Package export writes the catalog to CSV files.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"stockctl/internal/catalog"
	"stockctl/pkg/logging"
)

const subsystem = "Export"

// Header is the first CSV record.
var Header = []string{"ID", "Code", "Name", "Description", "Category", "Quantity", "Price", "Location", "Total Value"}

// Source lists the products to export.
type Source interface {
	GetAll(ctx context.Context, sort catalog.Sort) ([]catalog.Product, error)
}

// Exporter writes full-catalog CSV snapshots.
type Exporter struct {
	// Dir receives files when no name is given.
	Dir string
	// Now stamps default file names; time.Now when nil.
	Now func() time.Time
}

// DefaultFilename is inventory_export_YYYYMMDD_HHMMSS.csv for t.
func DefaultFilename(t time.Time) string {
	return fmt.Sprintf("inventory_export_%s.csv", t.Format("20060102_150405"))
}

// Export writes every product in id order to filename, or to a timestamped
// file in e.Dir when filename is empty, and returns the absolute path written.
func (e Exporter) Export(ctx context.Context, src Source, filename string) (string, error) {
	if filename == "" {
		now := time.Now
		if e.Now != nil {
			now = e.Now
		}
		filename = filepath.Join(e.Dir, DefaultFilename(now()))
	}

	path, err := filepath.Abs(filename)
	if err != nil {
		return "", fmt.Errorf("resolve export path %s: %w", filename, err)
	}

	rows, err := src.GetAll(ctx, catalog.Sort{})
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	if err := WriteCSV(f, rows); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}

	logging.Info(subsystem, "Exported %d products to %s", len(rows), path)
	return path, nil
}

// WriteCSV writes Header followed by one record per product.
func WriteCSV(w io.Writer, rows []catalog.Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range rows {
		record := []string{
			strconv.FormatInt(p.ID, 10),
			p.Code,
			p.Name,
			p.Description,
			p.Category,
			strconv.Itoa(p.Quantity),
			p.Price.String(),
			p.Location,
			p.Value().String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record for %s: %w", p.Code, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
