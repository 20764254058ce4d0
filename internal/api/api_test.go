package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/dataset"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/domain"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/service"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/sim"
	"github.com/gin-gonic/gin"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	columns := []string{"asin", "division", "forecast", "onhand_units"}
	rows := make([]dataset.Row, 0, 8)
	for i := 0; i < 8; i++ {
		row := dataset.Row{"asin": "ASIN_A", "division": "Grocery", "forecast": "10"}
		if i == 0 {
			row["onhand_units"] = "80"
		}
		rows = append(rows, row)
	}
	table := dataset.NewTable(columns, rows)

	simService, err := service.NewSimService(table, sim.NewEngine(2), nil)
	if err != nil {
		t.Fatal(err)
	}
	productService, err := service.NewProductService(table)
	if err != nil {
		t.Fatal(err)
	}

	return NewRouter(&Services{
		SimService:     simService,
		ProductService: productService,
		SimDefaults: domain.SimParams{
			HorizonWeeks:      8,
			LeadTimeWeeks:     2,
			ReviewPeriodWeeks: 1,
			ServiceLevel:      0.95,
			NumSimulations:    100,
		},
	}, nil)
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	w := doRequest(t, testRouter(t), http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestSimulateEndpoint(t *testing.T) {
	body := `{
		"asin": "ASIN_A",
		"params": {
			"horizon_weeks": 8,
			"lead_time_weeks": 2,
			"review_period_weeks": 1,
			"service_level": 0.95,
			"num_simulations": 200
		}
	}`
	w := doRequest(t, testRouter(t), http.MethodPost, "/api/v1/simulate", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var result struct {
		RecommendedPOQty float64 `json:"recommended_po_qty"`
		StockoutRisk     float64 `json:"stockout_risk"`
		SimTable         []struct {
			Week int `json:"week"`
		} `json:"sim_table"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if len(result.SimTable) != 8 {
		t.Errorf("sim table has %d rows, want 8", len(result.SimTable))
	}
	if result.StockoutRisk < 0 || result.StockoutRisk > 1 {
		t.Errorf("stockout risk = %v out of [0,1]", result.StockoutRisk)
	}
}

func TestSimulateEndpoint_DefaultParams(t *testing.T) {
	w := doRequest(t, testRouter(t), http.MethodPost, "/api/v1/simulate", `{"asin": "ASIN_A", "params": {}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var result struct {
		SimTable []struct {
			Week int `json:"week"`
		} `json:"sim_table"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if len(result.SimTable) != 8 {
		t.Errorf("sim table has %d rows, want the default horizon of 8", len(result.SimTable))
	}
}

func TestSimulateEndpoint_ErrorMapping(t *testing.T) {
	validParams := `"params": {
		"horizon_weeks": 8,
		"lead_time_weeks": 2,
		"review_period_weeks": 1,
		"service_level": 0.95,
		"num_simulations": 100
	}`

	tests := []struct {
		name string
		body string
		want int
	}{
		{"missing asin", `{` + validParams + `}`, http.StatusBadRequest},
		{"unknown asin", `{"asin": "NOPE", ` + validParams + `}`, http.StatusNotFound},
		{
			"invalid service level",
			`{"asin": "ASIN_A", "params": {"horizon_weeks": 8, "review_period_weeks": 1, "service_level": 2, "num_simulations": 100}}`,
			http.StatusBadRequest,
		},
		{"malformed body", `{not json`, http.StatusBadRequest},
	}

	router := testRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/api/v1/simulate", tt.body)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d, body = %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestProductEndpoints(t *testing.T) {
	router := testRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/products", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/api/v1/products/ASIN_A", "")
	if w.Code != http.StatusOK {
		t.Fatalf("detail status = %d", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/api/v1/products/NOPE", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown product status = %d, want 404", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/api/v1/dataset/summary", "")
	if w.Code != http.StatusOK {
		t.Errorf("summary status = %d", w.Code)
	}
}

func TestNormalizeAllowedOrigins(t *testing.T) {
	origins, allowAll := normalizeAllowedOrigins([]string{"http://a.example, http://b.example", " "})
	if allowAll {
		t.Error("allowAll = true without wildcard")
	}
	if len(origins) != 2 || origins[0] != "http://a.example" || origins[1] != "http://b.example" {
		t.Errorf("origins = %v", origins)
	}

	_, allowAll = normalizeAllowedOrigins([]string{"*"})
	if !allowAll {
		t.Error("wildcard should enable allowAll")
	}
}
