// Package preview materializes display copies of svg documents in a
// content-addressed cache.
//
// The cache is two-tier: an in-memory index over a Store. A key is a pure
// function of (name, content), so identical input never writes twice and
// changed content always lands at a new location. Preview copies are for
// display only; the canonical document is never read back from here.
//
// Concurrent Materialize calls are safe. Two calls racing on the same key
// may both write, which is harmless because the bytes are identical. Clear
// must not run while Materialize calls are in flight.
package preview

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"

	"github.com/svgmotion/svgmotion/pkg/errclass"
	"github.com/svgmotion/svgmotion/pkg/logging"
	"github.com/svgmotion/svgmotion/pkg/metrics"
	"github.com/svgmotion/svgmotion/pkg/pathutil"
)

// DigestLength is the number of hex digits of the content hash kept in keys.
const DigestLength = 12

const svgMediaType = "image/svg+xml"

// Options configures a Cache.
type Options struct {
	Minify  bool              // minify preview copies after display normalization
	Logger  *logging.Logger   // defaults to the global logger
	Metrics *metrics.Registry // defaults to metrics.Default()
}

// Cache is a content-addressed preview cache.
type Cache struct {
	store    Store
	minifier *minify.M
	log      *logging.Logger
	metrics  *metrics.Registry

	mu    sync.RWMutex
	index map[string]string
}

// New creates a cache over store.
func New(store Store, opts Options) *Cache {
	c := &Cache{
		store:   store,
		log:     opts.Logger,
		metrics: opts.Metrics,
		index:   make(map[string]string),
	}
	if c.log == nil {
		c.log = logging.Global()
	}
	c.log = c.log.Component("preview")
	if c.metrics == nil {
		c.metrics = metrics.Default()
	}
	if opts.Minify {
		c.minifier = minify.New()
		c.minifier.AddFunc(svgMediaType, svg.Minify)
	}
	return c
}

// NewDir creates a cache backed by files in dir.
func NewDir(dir string, opts Options) *Cache {
	return New(NewFSStore(dir), opts)
}

// FallbackStem names keys whose name has no usable file-name characters.
// The content digest keeps such keys distinct.
const FallbackStem = "preview"

// Key returns the cache key for (name, content): "<sanitized-name>-<digest>".
func Key(name, content string) string {
	safe, err := pathutil.SanitizeName(name)
	if err != nil {
		safe = FallbackStem
	}
	sum := sha256.Sum256([]byte(content))
	return safe + "-" + hex.EncodeToString(sum[:])[:DigestLength]
}

// Materialize returns the location of a display copy of content, writing it
// on first request. Storage failures are reported as ErrPreviewUnavailable.
func (c *Cache) Materialize(name, content string) (string, error) {
	key := Key(name, content)

	c.mu.RLock()
	loc, ok := c.index[key]
	c.mu.RUnlock()
	if ok {
		c.metrics.RecordPreviewMemoryHit()
		return loc, nil
	}

	exists, err := c.store.Exists(key)
	if err != nil {
		return "", c.fail(key, err)
	}
	if exists {
		c.metrics.RecordPreviewDiskHit()
		c.log.Debug("preview found on disk", logging.Fields{"key": key})
		return c.remember(key), nil
	}

	if err := c.store.Write(key, []byte(c.render(content))); err != nil {
		return "", c.fail(key, err)
	}
	c.metrics.RecordPreviewWrite()
	c.log.Debug("preview written", logging.Fields{"key": key})
	return c.remember(key), nil
}

func (c *Cache) remember(key string) string {
	loc := c.store.Locate(key)
	c.mu.Lock()
	c.index[key] = loc
	c.mu.Unlock()
	return loc
}

func (c *Cache) fail(key string, err error) error {
	c.metrics.RecordPreviewError()
	c.log.ErrorErr("preview unavailable", err, logging.Fields{"key": key})
	return errclass.ErrPreviewUnavailable.WithMessagef("%s: %v", key, err)
}

func (c *Cache) render(content string) string {
	out := NormalizeForDisplay(content)
	if c.minifier == nil {
		return out
	}
	small, err := c.minifier.String(svgMediaType, out)
	if err != nil {
		c.log.Warn("minify failed, keeping unminified preview", logging.Fields{"error": err.Error()})
		return out
	}
	return small
}

// Clear removes every cached file and empties the index.
func (c *Cache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = make(map[string]string)
	if err := c.store.Clear(); err != nil {
		c.log.ErrorErr("clear previews", err)
		return errclass.ErrPreviewUnavailable.WithMessagef("clear: %v", err)
	}
	return nil
}

// Len returns the number of indexed entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.index)
}
