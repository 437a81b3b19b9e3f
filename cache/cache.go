// ABOUTME: TTL cache for captured environment snapshots
// ABOUTME: Thread-safe via sync.Map with periodic cleanup; used in serve mode

package cache

import (
	"log/slog"
	"sync"
	"time"

	"github.com/scttfrdmn/aws-research-wizard-sub000/models"
)

// Snapshot is a cached capture result: the environment spec plus whatever
// warnings the capture step recorded.
type Snapshot struct {
	Spec     models.EnvironmentSpec
	Warnings []string
}

type entry struct {
	snapshot  Snapshot
	expiresAt time.Time
}

// SnapshotCache memoizes capture results per environment name so repeated
// API calls do not re-invoke the spack CLI within the TTL.
type SnapshotCache struct {
	store sync.Map
	ttl   time.Duration
}

func New(ttl time.Duration) *SnapshotCache {
	c := &SnapshotCache{
		ttl: ttl,
	}
	go c.startCleanup()
	return c
}

func (c *SnapshotCache) Get(envName string) (Snapshot, bool) {
	val, ok := c.store.Load(envName)
	if !ok {
		slog.Debug("Snapshot cache miss", "env", envName)
		return Snapshot{}, false
	}

	e := val.(entry)
	if time.Now().After(e.expiresAt) {
		c.store.Delete(envName)
		slog.Debug("Snapshot cache expired", "env", envName)
		return Snapshot{}, false
	}

	slog.Debug("Snapshot cache hit", "env", envName)
	return e.snapshot, true
}

func (c *SnapshotCache) Set(envName string, snapshot Snapshot) {
	e := entry{
		snapshot:  snapshot,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.store.Store(envName, e)
	slog.Debug("Snapshot cached", "env", envName, "ttl", c.ttl)
}

func (c *SnapshotCache) Clear(envName string) {
	c.store.Delete(envName)
}

func (c *SnapshotCache) startCleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		c.store.Range(func(key, val interface{}) bool {
			e := val.(entry)
			if now.After(e.expiresAt) {
				c.store.Delete(key)
			}
			return true
		})
	}
}
