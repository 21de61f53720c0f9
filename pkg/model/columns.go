package model

// ColumnID identifies a sortable/renderable table column.
type ColumnID string

const (
	ColName               ColumnID = "name"
	ColRevenue            ColumnID = "revenue"
	ColRevenueChange      ColumnID = "revenue_change"
	ColOrders             ColumnID = "orders"
	ColNewCustomers       ColumnID = "new_customers"
	ColReturningCustomers ColumnID = "returning_customers"
	ColNewCustomerRate    ColumnID = "new_customer_rate"
	ColReturnRate         ColumnID = "return_rate"
	ColAdSpend            ColumnID = "ad_spend"
	ColAdRevenue          ColumnID = "ad_revenue"
	ColROAS               ColumnID = "roas"
	ColPromoSpend         ColumnID = "promo_spend"
	ColPromoOrders        ColumnID = "promo_orders"
	ColRating             ColumnID = "rating"
	ColCancelRate         ColumnID = "cancel_rate"
)

// GroupID names a toggleable set of optional columns.
type GroupID string

const (
	GroupPerformance GroupID = "performance"
	GroupCustomers   GroupID = "customers"
	GroupAdvertising GroupID = "advertising"
	GroupPromotions  GroupID = "promotions"
	GroupOperations  GroupID = "operations"
)

// AllGroups lists every column group in display order.
var AllGroups = []GroupID{
	GroupPerformance,
	GroupCustomers,
	GroupAdvertising,
	GroupPromotions,
	GroupOperations,
}

// Column describes one table column: its identity, header label, owning
// group, and how values format.
type Column struct {
	ID      ColumnID
	Title   string
	Group   GroupID
	Percent bool // format as percentage
	Money   bool // format as currency
}

// Columns is the full column catalog in display order. The name column has
// no group: it is always rendered.
var Columns = []Column{
	{ID: ColName, Title: "NAME"},
	{ID: ColRevenue, Title: "REVENUE", Group: GroupPerformance, Money: true},
	{ID: ColRevenueChange, Title: "Δ REV", Group: GroupPerformance, Percent: true},
	{ID: ColOrders, Title: "ORDERS", Group: GroupPerformance},
	{ID: ColNewCustomers, Title: "NEW", Group: GroupCustomers},
	{ID: ColReturningCustomers, Title: "RETURNING", Group: GroupCustomers},
	{ID: ColNewCustomerRate, Title: "NEW %", Group: GroupCustomers, Percent: true},
	{ID: ColReturnRate, Title: "RET %", Group: GroupCustomers, Percent: true},
	{ID: ColAdSpend, Title: "AD SPEND", Group: GroupAdvertising, Money: true},
	{ID: ColAdRevenue, Title: "AD REV", Group: GroupAdvertising, Money: true},
	{ID: ColROAS, Title: "ROAS", Group: GroupAdvertising},
	{ID: ColPromoSpend, Title: "PROMO SPEND", Group: GroupPromotions, Money: true},
	{ID: ColPromoOrders, Title: "PROMO ORD", Group: GroupPromotions},
	{ID: ColRating, Title: "RATING", Group: GroupOperations},
	{ID: ColCancelRate, Title: "CANCEL %", Group: GroupOperations, Percent: true},
}

// ColumnByID returns the column catalog entry for an id, or nil.
func ColumnByID(id ColumnID) *Column {
	for i := range Columns {
		if Columns[i].ID == id {
			return &Columns[i]
		}
	}
	return nil
}

// IsNumeric reports whether a column sorts numerically. Every column except
// the name column does.
func (c ColumnID) IsNumeric() bool {
	return c != ColName
}
