package minsite

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// CatalogCache serves immutable catalog snapshots with a TTL, reloading from
// the data directory when stale. A failed reload keeps serving the previous
// snapshot; requests never observe a load error.
//
// Every load attempt carries a generation token taken before the read starts.
// A load whose token is older than the last committed generation is discarded,
// so a slow read can never overwrite the result of a newer one.
type CatalogCache struct {
	mu      sync.RWMutex
	snap    Snapshot
	fetched time.Time

	nextGen      uint64
	committedGen uint64

	dataDir string
	ttl     time.Duration
	log     *zap.Logger
}

// NewCatalogCache creates a cache over the given data directory. The logger
// is the diagnostic channel for load failures and data warnings.
func NewCatalogCache(dataDir string, ttl time.Duration, log *zap.Logger) *CatalogCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogCache{dataDir: dataDir, ttl: ttl, log: log}
}

func (c *CatalogCache) valid() bool {
	return c.snap.Loaded && time.Since(c.fetched) < c.ttl
}

// Snapshot returns the current catalog snapshot, reloading first if the TTL
// has expired. The zero snapshot is returned while the data has never loaded.
func (c *CatalogCache) Snapshot() Snapshot {
	c.mu.RLock()
	if c.valid() {
		snap := c.snap
		c.mu.RUnlock()
		return snap
	}
	c.mu.RUnlock()
	return c.Reload()
}

// Reload performs a load attempt and returns the snapshot in effect after it,
// which is the previous one when the load fails or arrives stale.
func (c *CatalogCache) Reload() Snapshot {
	c.mu.Lock()
	if c.valid() {
		snap := c.snap
		c.mu.Unlock()
		return snap
	}
	gen := c.nextGen
	c.nextGen++
	c.mu.Unlock()

	snap, err := LoadCatalog(c.dataDir)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.log.Warn("catalog load failed, keeping previous snapshot",
			zap.Uint64("gen", gen), zap.Error(err))
		return c.snap
	}
	if gen < c.committedGen {
		c.log.Debug("discarding stale catalog load", zap.Uint64("gen", gen))
		return c.snap
	}
	for _, w := range snap.Warnings {
		c.log.Warn("catalog data warning", zap.String("warning", w))
	}
	c.snap = snap
	c.fetched = time.Now()
	c.committedGen = gen
	c.log.Info("catalog loaded",
		zap.Int("products", len(snap.Products)),
		zap.Int("categories", len(snap.Categories)),
		zap.Uint64("gen", gen))
	return c.snap
}

// Invalidate expires the snapshot so the next read triggers a fresh load.
func (c *CatalogCache) Invalidate() {
	c.mu.Lock()
	c.fetched = time.Time{}
	c.mu.Unlock()
}
