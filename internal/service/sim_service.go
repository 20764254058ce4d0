// backend-go/internal/service/sim_service.go
package service

import (
	"context"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/cache"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/dataset"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/domain"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/sim"
	"github.com/rs/zerolog/log"
)

// SimService runs simulations against the loaded dataset, memoizing results
// by (asin, parameter set) identity when a cache is configured.
type SimService struct {
	table       *dataset.Table
	identityCol string
	engine      *sim.Engine
	cache       cache.SimResultCache
}

func NewSimService(table *dataset.Table, engine *sim.Engine, cacheImpl cache.SimResultCache) (*SimService, error) {
	identityCol, ok := table.Resolve(dataset.IdentityColumns)
	if !ok {
		return nil, &domain.MissingColumnError{
			Kind:       "identity",
			Candidates: dataset.IdentityColumns,
		}
	}

	if cacheImpl == nil {
		cacheImpl = cache.NewNoopSimResultCache()
	}

	return &SimService{
		table:       table,
		identityCol: identityCol,
		engine:      engine,
		cache:       cacheImpl,
	}, nil
}

// Simulate runs one simulation for the given product. Parameter validation
// happens inside the engine; unknown ASINs fail before any rollout work.
func (s *SimService) Simulate(ctx context.Context, asin string, params domain.SimParams) (*domain.SimResult, error) {
	product := s.table.FilterEq(s.identityCol, asin)
	if product.Len() == 0 {
		return nil, &domain.ProductNotFoundError{ASIN: asin}
	}

	if result, ok, err := s.cache.Get(ctx, asin, params); err == nil && ok {
		return result, nil
	} else if err != nil {
		log.Warn().Err(err).Str("asin", asin).Msg("sim: cache get failed")
	}

	result, err := s.engine.Simulate(ctx, product, params)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, asin, params, result); err != nil {
		log.Warn().Err(err).Str("asin", asin).Msg("sim: cache set failed")
	}

	return result, nil
}
