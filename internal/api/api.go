// backend-go/internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/api/handlers"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/api/middleware"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/domain"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	SimService     *service.SimService
	ProductService *service.ProductService

	// SimDefaults backfill request knobs the client leaves out.
	SimDefaults domain.SimParams
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Logger(),
		middleware.Recovery(),
	)

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.ProductService != nil {
			productHandler := handlers.NewProductHandler(services.ProductService)
			apiGroup.GET("/products", productHandler.ListProducts)
			apiGroup.GET("/products/:asin", productHandler.GetProduct)
			apiGroup.GET("/divisions", productHandler.GetDivisions)
			apiGroup.GET("/taxonomies", productHandler.GetTaxonomies)
			apiGroup.GET("/dataset/summary", productHandler.GetDatasetSummary)
		}

		if services.SimService != nil {
			simHandler := handlers.NewSimHandler(services.SimService, services.SimDefaults)
			apiGroup.POST("/simulate", simHandler.Simulate)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
