// backend-go/internal/domain/models.go
package domain

// Product is the catalog view of one ASIN in the masked dataset.
type Product struct {
	ASIN        string `json:"asin"`
	Division    string `json:"division,omitempty"`
	Taxonomy    string `json:"taxonomy,omitempty"`
	Description string `json:"description,omitempty"`
	Weeks       int    `json:"weeks"`
}

// ForecastPoint is one weekly forecast observation for a product.
type ForecastPoint struct {
	Week     int     `json:"week"`
	Date     string  `json:"date,omitempty"`
	Forecast float64 `json:"forecast"`
}

// ProductDetail is the per-ASIN view with forecast history attached.
type ProductDetail struct {
	Product
	InitialOnHand *float64        `json:"initial_onhand,omitempty"`
	History       []ForecastPoint `json:"history"`
}

// DatasetSummary describes the loaded table for the control surface.
type DatasetSummary struct {
	Rows           int      `json:"rows"`
	Columns        []string `json:"columns"`
	Products       int      `json:"products"`
	DemandColumn   string   `json:"demand_column,omitempty"`
	OnHandColumn   string   `json:"onhand_column,omitempty"`
	DateColumn     string   `json:"date_column,omitempty"`
	IdentityColumn string   `json:"identity_column,omitempty"`
}

// SimTableRow is one week of the averaged trajectory returned for charting.
// ForecastDemand is the deterministic input forecast, not a realized draw.
type SimTableRow struct {
	Week           int     `json:"week"`
	AvgOnHand      float64 `json:"avg_onhand"`
	ForecastDemand float64 `json:"forecast_demand"`
}

// PolicyLevels are the order-up-to calculation intermediates exposed to the
// planner alongside the headline numbers.
type PolicyLevels struct {
	MeanWeekly   float64 `json:"mean_weekly"`
	WeeklySD     float64 `json:"weekly_sd"`
	ZScore       float64 `json:"z_score"`
	SafetyStock  float64 `json:"safety_stock"`
	ReorderPoint float64 `json:"reorder_point"`
	OrderUpTo    float64 `json:"order_up_to"`
}

// SimResult is the single artifact returned to the caller for one run.
type SimResult struct {
	RecommendedPOQty float64       `json:"recommended_po_qty"`
	WeeksOfCover     float64       `json:"weeks_of_cover"`
	StockoutRisk     float64       `json:"stockout_risk"`
	Policy           PolicyLevels  `json:"policy"`
	SimTable         []SimTableRow `json:"sim_table"`
}
