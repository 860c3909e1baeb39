package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/usecase/interfaces"
)

// Spot prices move during the trading day; labor rates change a few times a
// year.
const (
	metalRateCacheTTL = 5 * time.Minute
	laborRateCacheTTL = 30 * time.Minute
)

// KV is the slice of the cache the rate decorator needs. Get reports a hit
// through its second return; a miss is not an error.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// CachedRateRepository is a read-through cache in front of the rate store.
//
// Any cache problem degrades to the underlying store: pricing must keep
// resolving rates when the cache is down.

type CachedRateRepository struct {
	source interfaces.IRateRepository
	kv     KV
}

var _ interfaces.IRateRepository = (*CachedRateRepository)(nil)

func NewCachedRateRepository(source interfaces.IRateRepository, kv KV) *CachedRateRepository {
	return &CachedRateRepository{source: source, kv: kv}
}

func (c *CachedRateRepository) LatestMetalRate(ctx context.Context, companyID string, metal entities.MetalType) (entities.MetalMarketRate, error) {
	key := fmt.Sprintf("rates:metal:%s:%s", companyID, metal)

	var cached entities.MetalMarketRate
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	rate, err := c.source.LatestMetalRate(ctx, companyID, metal)
	if err != nil {
		return entities.MetalMarketRate{}, err
	}
	// An absent rate is not cached, so a first load shows up right away.
	if rate.ID != "" {
		c.store(ctx, key, rate, metalRateCacheTTL)
	}
	return rate, nil
}

func (c *CachedRateRepository) LatestLaborRate(ctx context.Context, companyID string, role entities.LaborRole) (entities.LaborRate, error) {
	key := fmt.Sprintf("rates:labor:%s:%s", companyID, role)

	var cached entities.LaborRate
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	rate, err := c.source.LatestLaborRate(ctx, companyID, role)
	if err != nil {
		return entities.LaborRate{}, err
	}
	if rate.ID != "" {
		c.store(ctx, key, rate, laborRateCacheTTL)
	}
	return rate, nil
}

// lookup reports whether the key held a usable entry. Misses and cache
// failures look the same to the caller.
func (c *CachedRateRepository) lookup(ctx context.Context, key string, dst interface{}) bool {
	val, ok, err := c.kv.Get(ctx, key)
	if err != nil {
		log.Printf("[rates][cache] get failed key=%s err=%v; falling back to store", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(val), dst); err != nil {
		log.Printf("[rates][cache] corrupt entry key=%s err=%v; falling back to store", key, err)
		return false
	}
	return true
}

func (c *CachedRateRepository) store(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.kv.Set(ctx, key, string(data), ttl); err != nil {
		log.Printf("[rates][cache] set failed key=%s err=%v", key, err)
	}
}
