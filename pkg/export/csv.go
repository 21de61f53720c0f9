// Package export writes the rollup table to external formats. The CSV
// export mirrors the visible view: flattened rows with their depth and the
// currently active columns, so what you see is what lands in the file.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/storefront-labs/storeboard/pkg/model"
	"github.com/storefront-labs/storeboard/pkg/rollup"
)

// WriteCSV writes the flattened rows with the given columns. Values are
// raw numbers, not display-formatted; missing optional metrics export as
// empty cells rather than zero so spreadsheets can tell them apart.
func WriteCSV(w io.Writer, flat []rollup.FlatRow, cols []model.Column) error {
	cw := csv.NewWriter(w)

	header := []string{"id", "parent_id", "level", "depth"}
	for _, col := range cols {
		header = append(header, string(col.ID))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, fr := range flat {
		record := []string{fr.ID, fr.ParentID, string(fr.Level), strconv.Itoa(fr.Depth)}
		for _, col := range cols {
			record = append(record, cellValue(fr.Row, col.ID))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %s: %w", fr.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes to a file path, creating or truncating it.
func WriteCSVFile(path string, flat []rollup.FlatRow, cols []model.Column) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteCSV(f, flat, cols); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// cellValue renders one raw cell. The name column exports the name;
// numeric columns distinguish present-zero from absent.
func cellValue(row model.Row, col model.ColumnID) string {
	if col == model.ColName {
		return row.Name
	}
	if !metricPresent(row, col) {
		return ""
	}
	v := row.Metric(col)
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func metricPresent(row model.Row, col model.ColumnID) bool {
	switch col {
	case model.ColNewCustomers:
		return row.NewCustomers != nil
	case model.ColReturningCustomers:
		return row.ReturningCustomers != nil
	case model.ColNewCustomerRate:
		return row.NewCustomerRate != nil
	case model.ColReturnRate:
		return row.ReturnRate != nil
	case model.ColAdSpend:
		return row.AdSpend != nil
	case model.ColAdRevenue:
		return row.AdRevenue != nil
	case model.ColROAS:
		return row.ROAS != nil
	case model.ColPromoSpend:
		return row.PromoSpend != nil
	case model.ColPromoOrders:
		return row.PromoOrders != nil
	case model.ColRating:
		return row.Rating != nil
	case model.ColCancelRate:
		return row.CancelRate != nil
	default:
		// Core metrics are always present.
		return true
	}
}
