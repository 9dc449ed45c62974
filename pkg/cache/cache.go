// Package cache provides caching abstractions for layout results.
//
// Resolving a room layout is deterministic: the same plan and options
// always produce the same result, so results are cached keyed by a
// hash of the plan content and the layout options. Three backends are
// provided:
//   - FileCache: local directory cache for CLI usage
//   - RedisCache: shared cache for server deployments
//   - NullCache: disables caching
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache TTLs per key type. Plans change often during design sessions;
// layout results are pure functions of their key and can live longer.
const (
	TTLPlan   = 24 * time.Hour
	TTLLayout = 7 * 24 * time.Hour
)

// Cache is the storage interface all backends implement.
// Get returns (data, hit, error); a miss is not an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer generates cache keys for the layout pipeline stages.
type Keyer interface {
	// PlanKey generates a key for a decoded plan, from a hash of the
	// raw plan document.
	PlanKey(planHash string) string

	// LayoutKey generates a key for a layout result. Different layout
	// options must produce different keys.
	LayoutKey(planHash string, opts LayoutKeyOpts) string
}

// LayoutKeyOpts captures the layout options that affect the result.
type LayoutKeyOpts struct {
	DividerThickness float64 `json:"divider_thickness"`
	CornerTreatment  string  `json:"corner_treatment"`
}

// DefaultKeyer is the standard key generation strategy.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// PlanKey generates a key for plan caching.
func (k *DefaultKeyer) PlanKey(planHash string) string {
	return fmt.Sprintf("plan:%s", planHash)
}

// LayoutKey generates a key for layout result caching.
// Options are hashed into the key so that runs with different divider
// thickness or corner treatment never collide.
func (k *DefaultKeyer) LayoutKey(planHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", planHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix so multiple projects can
// share one cache backend without key collisions.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PlanKey generates a prefixed key for plan caching.
func (k *ScopedKeyer) PlanKey(planHash string) string {
	return k.prefix + k.inner.PlanKey(planHash)
}

// LayoutKey generates a prefixed key for layout result caching.
func (k *ScopedKeyer) LayoutKey(planHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(planHash, opts)
}
