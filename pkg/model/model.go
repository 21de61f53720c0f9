// Package model defines the core data types for storeboard: the Row type
// describing one node of the merchant hierarchy, and the column metadata
// used by the rollup table.
package model

import (
	"fmt"
	"time"
)

// Level identifies where a row sits in the merchant hierarchy.
// The depth meaning is fixed: company → brand → address → channel.
type Level string

const (
	LevelCompany Level = "company"
	LevelBrand   Level = "brand"
	LevelAddress Level = "address"
	LevelChannel Level = "channel"
)

// Rank returns the canonical depth of a level (company = 0).
// Unknown levels rank last.
func (l Level) Rank() int {
	switch l {
	case LevelCompany:
		return 0
	case LevelBrand:
		return 1
	case LevelAddress:
		return 2
	case LevelChannel:
		return 3
	default:
		return 4
	}
}

// ChannelID identifies a delivery channel for channel-level rows.
type ChannelID string

const (
	ChannelWolt      ChannelID = "wolt"
	ChannelFoodora   ChannelID = "foodora"
	ChannelUberEats  ChannelID = "ubereats"
	ChannelOwnOnline ChannelID = "own_online"
)

// Row is one node of the merchant hierarchy with its pre-aggregated metrics.
// Metrics are computed upstream by the aggregation service; storeboard never
// derives them. Revenue, RevenueChange and Orders are always present; the
// remaining metrics are optional and nil when the upstream service has no
// data for the row.
type Row struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id,omitempty"` // empty for company rows
	Level    Level  `json:"level"`
	Name     string `json:"name"`
	Subtitle string `json:"subtitle,omitempty"`

	// ChannelID is set only for channel-level rows and selects
	// channel-specific rendering (icon, deep-link format).
	ChannelID ChannelID `json:"channel_id,omitempty"`

	// Core metrics (always present).
	Revenue       float64 `json:"revenue"`
	RevenueChange float64 `json:"revenue_change"`
	Orders        int     `json:"orders"`

	// Customer metrics.
	NewCustomers       *int     `json:"new_customers,omitempty"`
	ReturningCustomers *int     `json:"returning_customers,omitempty"`
	NewCustomerRate    *float64 `json:"new_customer_rate,omitempty"`
	ReturnRate         *float64 `json:"return_rate,omitempty"`

	// Advertising metrics.
	AdSpend   *float64 `json:"ad_spend,omitempty"`
	AdRevenue *float64 `json:"ad_revenue,omitempty"`
	ROAS      *float64 `json:"roas,omitempty"`

	// Promotion metrics.
	PromoSpend  *float64 `json:"promo_spend,omitempty"`
	PromoOrders *int     `json:"promo_orders,omitempty"`

	// Operational metrics.
	Rating     *float64 `json:"rating,omitempty"`
	CancelRate *float64 `json:"cancel_rate,omitempty"`

	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// IsTopLevel reports whether the row has no parent reference.
func (r Row) IsTopLevel() bool {
	return r.ParentID == ""
}

// Metric returns the numeric value of the given column, with missing
// optional metrics read as 0. This is the comparator's view of a row: the
// sort order never distinguishes "absent" from "zero".
func (r Row) Metric(col ColumnID) float64 {
	switch col {
	case ColRevenue:
		return r.Revenue
	case ColRevenueChange:
		return r.RevenueChange
	case ColOrders:
		return float64(r.Orders)
	case ColNewCustomers:
		return floatOf(r.NewCustomers)
	case ColReturningCustomers:
		return floatOf(r.ReturningCustomers)
	case ColNewCustomerRate:
		return deref(r.NewCustomerRate)
	case ColReturnRate:
		return deref(r.ReturnRate)
	case ColAdSpend:
		return deref(r.AdSpend)
	case ColAdRevenue:
		return deref(r.AdRevenue)
	case ColROAS:
		return deref(r.ROAS)
	case ColPromoSpend:
		return deref(r.PromoSpend)
	case ColPromoOrders:
		return floatOf(r.PromoOrders)
	case ColRating:
		return deref(r.Rating)
	case ColCancelRate:
		return deref(r.CancelRate)
	default:
		return 0
	}
}

// Validate checks structural validity of a single row. Referential
// integrity across rows is deliberately not checked here; dangling parent
// references degrade gracefully in the rollup index.
func (r Row) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("row has empty id")
	}
	if r.Name == "" {
		return fmt.Errorf("row %s has empty name", r.ID)
	}
	switch r.Level {
	case LevelCompany, LevelBrand, LevelAddress, LevelChannel:
	default:
		return fmt.Errorf("row %s has unknown level %q", r.ID, r.Level)
	}
	if r.Level == LevelCompany && r.ParentID != "" {
		return fmt.Errorf("company row %s must not have a parent", r.ID)
	}
	if r.Level != LevelCompany && r.ParentID == "" {
		return fmt.Errorf("%s row %s has no parent", r.Level, r.ID)
	}
	return nil
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func floatOf(p *int) float64 {
	if p == nil {
		return 0
	}
	return float64(*p)
}

// FloatPtr and IntPtr are small helpers for building rows with optional
// metrics, mostly in tests and generators.
func FloatPtr(v float64) *float64 { return &v }
func IntPtr(v int) *int           { return &v }
