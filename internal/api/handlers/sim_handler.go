// backend-go/internal/api/handlers/sim_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/domain"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

type SimHandler struct {
	service  *service.SimService
	defaults domain.SimParams
}

// NewSimHandler wires the simulate route. Knobs omitted from a request fall
// back to the configured defaults before validation.
func NewSimHandler(service *service.SimService, defaults domain.SimParams) *SimHandler {
	return &SimHandler{service: service, defaults: defaults}
}

type simulateRequest struct {
	ASIN   string           `json:"asin"`
	Params domain.SimParams `json:"params"`
}

// Simulate runs one simulation and returns the full result. Engine errors
// map to client-facing status codes; the engine itself never logs them.
func (h *SimHandler) Simulate(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req.ASIN = strings.TrimSpace(req.ASIN)
	if req.ASIN == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asin is required"})
		return
	}

	params := req.Params.WithDefaults(h.defaults)

	result, err := h.service.Simulate(c.Request.Context(), req.ASIN, params)
	if err != nil {
		status := http.StatusInternalServerError

		var invalidErr *domain.InvalidParameterError
		var notFoundErr *domain.ProductNotFoundError
		var missingErr *domain.MissingColumnError
		var emptyErr *domain.EmptyDemandError
		switch {
		case errors.As(err, &invalidErr):
			status = http.StatusBadRequest
		case errors.As(err, &notFoundErr):
			status = http.StatusNotFound
		case errors.As(err, &missingErr), errors.As(err, &emptyErr):
			status = http.StatusUnprocessableEntity
		}

		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
