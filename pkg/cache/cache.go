// Package cache provides caching of rendered artifacts.
//
// Rendering a document is deterministic: the same description, geometry, and
// format always yield the same bytes. Keys therefore derive from a hash of
// the description plus the options that influence the output. The CLI uses a
// file-backed cache under the user's cache directory; the API shares the same
// implementation, optionally scoped per tenant.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached.
const TTLArtifact = 24 * time.Hour

// Cache stores rendered artifacts by key.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// ArtifactKeyOpts are the rendering options that participate in an artifact
// cache key. Two renders differing in any field produce different artifacts.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	PageWidth  float64 `json:"page_width"`
	PageHeight float64 `json:"page_height"`
	Margin     float64 `json:"margin"`
}

// Keyer generates cache keys.
type Keyer interface {
	// ArtifactKey generates a key for a rendered artifact. docHash is a hash
	// of the document description bytes.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey generates a key for a rendered artifact.
func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", docHash, opts)
}
