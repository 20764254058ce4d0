// backend-go/internal/dataset/columns.go
package dataset

// Candidate column names for each signal the engine consumes, in priority
// order. The masked export has drifted across revisions, so several spellings
// are accepted for the demand signal.
var (
	DemandColumns = []string{
		"forecast",
		"forecast_qty",
		"pred_demand",
		"demand_forecast",
		"units_forecast",
	}
	OnHandColumns   = []string{"onhand_units", "onhand", "units_onhand"}
	DateColumns     = []string{"start_date_pred", "start_date", "week_date", "date"}
	IdentityColumns = []string{"asin", "sku", "product_id"}
	DivisionColumns = []string{"division"}
	TaxonomyColumns = []string{"taxonomy", "category"}
	DescColumns     = []string{"description", "item_name", "title"}
	URLColumns      = []string{"url", "detail_page_url"}
)

// ResolveColumn returns the first candidate present in cols. It is a pure
// function so callers can report the exact candidate list they tried.
func ResolveColumn(cols []string, candidates []string) (string, bool) {
	present := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		present[c] = struct{}{}
	}
	for _, cand := range candidates {
		if _, ok := present[cand]; ok {
			return cand, true
		}
	}
	return "", false
}
