package datasource

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/storefront-labs/storeboard/pkg/model"
)

// SQLiteReader provides read access to a metrics SQLite database. The
// schema is written by the aggregation service's exporter:
//
//	rows(id, parent_id, level, name, subtitle, channel_id,
//	     revenue, revenue_change, orders,
//	     new_customers, returning_customers, new_customer_rate, return_rate,
//	     ad_spend, ad_revenue, roas, promo_spend, promo_orders,
//	     rating, cancel_rate, updated_at)
//	weekly_revenue(row_id, week, revenue)
type SQLiteReader struct {
	db   *sql.DB
	path string
}

// NewSQLiteReader opens a metrics database for reading.
func NewSQLiteReader(source Source) (*SQLiteReader, error) {
	if source.Type != SourceTypeSQLite {
		return nil, fmt.Errorf("source is not SQLite: %s", source.Type)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", source.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %w", err)
	}

	// Read-performance pragmas; failures are non-fatal.
	pragmas := []string{
		"PRAGMA cache_size = -64000",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		db.Exec(pragma)
	}

	return &SQLiteReader{db: db, path: source.Path}, nil
}

// Close closes the database connection.
func (r *SQLiteReader) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// LoadRows reads the full row collection, ordered the way the exporter
// wrote it (rowid), which keeps sibling input order stable across loads.
func (r *SQLiteReader) LoadRows() ([]model.Row, error) {
	query := `
		SELECT
			id, parent_id, level, name, subtitle, channel_id,
			revenue, revenue_change, orders,
			new_customers, returning_customers, new_customer_rate, return_rate,
			ad_spend, ad_revenue, roas, promo_spend, promo_orders,
			rating, cancel_rate, updated_at
		FROM rows
		ORDER BY rowid
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying rows: %w", err)
	}
	defer rows.Close()

	var out []model.Row
	for rows.Next() {
		var row model.Row
		var parentID, subtitle, channelID sql.NullString
		var newCustomers, returningCustomers, promoOrders sql.NullInt64
		var newRate, returnRate, adSpend, adRevenue, roas, promoSpend, rating, cancelRate sql.NullFloat64
		var updatedAt sql.NullTime

		err := rows.Scan(
			&row.ID, &parentID, &row.Level, &row.Name, &subtitle, &channelID,
			&row.Revenue, &row.RevenueChange, &row.Orders,
			&newCustomers, &returningCustomers, &newRate, &returnRate,
			&adSpend, &adRevenue, &roas, &promoSpend, &promoOrders,
			&rating, &cancelRate, &updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		if parentID.Valid {
			row.ParentID = parentID.String
		}
		if subtitle.Valid {
			row.Subtitle = subtitle.String
		}
		if channelID.Valid {
			row.ChannelID = model.ChannelID(channelID.String)
		}
		row.NewCustomers = nullInt(newCustomers)
		row.ReturningCustomers = nullInt(returningCustomers)
		row.NewCustomerRate = nullFloat(newRate)
		row.ReturnRate = nullFloat(returnRate)
		row.AdSpend = nullFloat(adSpend)
		row.AdRevenue = nullFloat(adRevenue)
		row.ROAS = nullFloat(roas)
		row.PromoSpend = nullFloat(promoSpend)
		row.PromoOrders = nullInt(promoOrders)
		row.Rating = nullFloat(rating)
		row.CancelRate = nullFloat(cancelRate)
		if updatedAt.Valid {
			row.UpdatedAt = updatedAt.Time
		}

		// Same structural checks the JSON reader applies, so a malformed
		// export is rejected regardless of source type.
		if err := row.Validate(); err != nil {
			return nil, fmt.Errorf("metrics db %s: %w", r.path, err)
		}

		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return out, nil
}

// LoadSeries reads the weekly revenue series for every row, keyed by row
// id, weeks in chronological order.
func (r *SQLiteReader) LoadSeries() (map[string][]float64, error) {
	rows, err := r.db.Query(`SELECT row_id, revenue FROM weekly_revenue ORDER BY row_id, week`)
	if err != nil {
		return nil, fmt.Errorf("querying weekly revenue: %w", err)
	}
	defer rows.Close()

	series := make(map[string][]float64)
	for rows.Next() {
		var id string
		var revenue float64
		if err := rows.Scan(&id, &revenue); err != nil {
			return nil, fmt.Errorf("scanning weekly revenue: %w", err)
		}
		series[id] = append(series[id], revenue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating weekly revenue: %w", err)
	}
	return series, nil
}

// GetLastModified returns the most recent row update time.
func (r *SQLiteReader) GetLastModified() (time.Time, error) {
	var updatedAt sql.NullTime
	err := r.db.QueryRow("SELECT MAX(updated_at) FROM rows").Scan(&updatedAt)
	if err != nil {
		return time.Time{}, err
	}
	if !updatedAt.Valid {
		return time.Time{}, nil
	}
	return updatedAt.Time, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
