// backend-go/internal/service/product_service.go
package service

import (
	"strings"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/dataset"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/domain"
)

// ProductFilter narrows the product listing for the control surface.
type ProductFilter struct {
	Division string
	Taxonomy string
	Search   string
	Page     int
	PageSize int
}

// ProductService serves catalog views over the loaded dataset.
type ProductService struct {
	table       *dataset.Table
	identityCol string
	divisionCol string
	taxonomyCol string
	descCol     string
	dateCol     string
	demandCol   string
	onhandCol   string
}

func NewProductService(table *dataset.Table) (*ProductService, error) {
	identityCol, ok := table.Resolve(dataset.IdentityColumns)
	if !ok {
		return nil, &domain.MissingColumnError{
			Kind:       "identity",
			Candidates: dataset.IdentityColumns,
		}
	}

	s := &ProductService{table: table, identityCol: identityCol}
	s.divisionCol, _ = table.Resolve(dataset.DivisionColumns)
	s.taxonomyCol, _ = table.Resolve(dataset.TaxonomyColumns)
	s.descCol, _ = table.Resolve(dataset.DescColumns)
	s.dateCol, _ = table.Resolve(dataset.DateColumns)
	s.demandCol, _ = table.Resolve(dataset.DemandColumns)
	s.onhandCol, _ = table.Resolve(dataset.OnHandColumns)

	return s, nil
}

// ListProducts returns a filtered, paginated catalog page plus the total
// match count.
func (s *ProductService) ListProducts(filter ProductFilter) ([]domain.Product, int) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}

	var matches []domain.Product
	for _, asin := range s.table.DistinctValues(s.identityCol) {
		rows := s.table.FilterEq(s.identityCol, asin)
		p := s.productFromRows(asin, rows)

		if filter.Division != "" && !strings.EqualFold(p.Division, filter.Division) {
			continue
		}
		if filter.Taxonomy != "" && !strings.EqualFold(p.Taxonomy, filter.Taxonomy) {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.ASIN), needle) &&
				!strings.Contains(strings.ToLower(p.Description), needle) {
				continue
			}
		}

		matches = append(matches, p)
	}

	total := len(matches)
	start := (filter.Page - 1) * filter.PageSize
	if start >= total {
		return []domain.Product{}, total
	}
	end := start + filter.PageSize
	if end > total {
		end = total
	}
	return matches[start:end], total
}

// GetProduct returns the per-ASIN detail with forecast history, or nil when
// the ASIN is unknown.
func (s *ProductService) GetProduct(asin string) *domain.ProductDetail {
	rows := s.table.FilterEq(s.identityCol, asin)
	if rows.Len() == 0 {
		return nil
	}
	if s.dateCol != "" {
		rows = rows.SortedByDate(s.dateCol)
	}

	detail := &domain.ProductDetail{Product: s.productFromRows(asin, rows)}

	if s.onhandCol != "" {
		if v, ok := rows.Row(0).Float(s.onhandCol); ok {
			detail.InitialOnHand = &v
		}
	}

	if s.demandCol != "" {
		week := 0
		for i := 0; i < rows.Len(); i++ {
			row := rows.Row(i)
			v, ok := row.Float(s.demandCol)
			if !ok {
				continue
			}
			week++
			point := domain.ForecastPoint{Week: week, Forecast: v}
			if s.dateCol != "" {
				if t, ok := row.Time(s.dateCol); ok {
					point.Date = t.Format("2006-01-02")
				}
			}
			detail.History = append(detail.History, point)
		}
	}

	return detail
}

// Divisions lists the distinct division values for filter dropdowns.
func (s *ProductService) Divisions() []string {
	if s.divisionCol == "" {
		return nil
	}
	return s.table.DistinctValues(s.divisionCol)
}

// Taxonomies lists the distinct taxonomy values for filter dropdowns.
func (s *ProductService) Taxonomies() []string {
	if s.taxonomyCol == "" {
		return nil
	}
	return s.table.DistinctValues(s.taxonomyCol)
}

// DatasetSummary describes the loaded table.
func (s *ProductService) DatasetSummary() domain.DatasetSummary {
	return domain.DatasetSummary{
		Rows:           s.table.Len(),
		Columns:        s.table.Columns(),
		Products:       len(s.table.DistinctValues(s.identityCol)),
		DemandColumn:   s.demandCol,
		OnHandColumn:   s.onhandCol,
		DateColumn:     s.dateCol,
		IdentityColumn: s.identityCol,
	}
}

func (s *ProductService) productFromRows(asin string, rows *dataset.Table) domain.Product {
	p := domain.Product{ASIN: asin, Weeks: rows.Len()}
	if rows.Len() == 0 {
		return p
	}
	first := rows.Row(0)
	if s.divisionCol != "" {
		p.Division = strings.TrimSpace(first[s.divisionCol])
	}
	if s.taxonomyCol != "" {
		p.Taxonomy = strings.TrimSpace(first[s.taxonomyCol])
	}
	if s.descCol != "" {
		p.Description = strings.TrimSpace(first[s.descCol])
	}
	return p
}
