// Package metrics provides in-process operation counters for svgmotion.
package metrics

import (
	"sync"
	"sync/atomic"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide metrics registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Registry holds svgmotion counters.
type Registry struct {
	embeds         atomic.Int64
	detections     atomic.Int64
	fallbacks      atomic.Int64
	previewMemHits atomic.Int64
	previewDisk    atomic.Int64
	previewWrites  atomic.Int64
	previewErrors  atomic.Int64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Embeds         int64 `json:"embeds"`
	Detections     int64 `json:"detections"`
	Fallbacks      int64 `json:"fallbacks"`
	PreviewMemHits int64 `json:"preview_memory_hits"`
	PreviewDisk    int64 `json:"preview_disk_hits"`
	PreviewWrites  int64 `json:"preview_writes"`
	PreviewErrors  int64 `json:"preview_errors"`
}

// RecordEmbed counts one embed call.
func (r *Registry) RecordEmbed() { r.embeds.Add(1) }

// RecordDetect counts one detect call.
func (r *Registry) RecordDetect() { r.detections.Add(1) }

// RecordFallback counts one use of the text-pattern tier.
func (r *Registry) RecordFallback() { r.fallbacks.Add(1) }

// RecordPreviewMemoryHit counts a preview served from the in-memory index.
func (r *Registry) RecordPreviewMemoryHit() { r.previewMemHits.Add(1) }

// RecordPreviewDiskHit counts a preview found on disk but not in the index.
func (r *Registry) RecordPreviewDiskHit() { r.previewDisk.Add(1) }

// RecordPreviewWrite counts a preview file written.
func (r *Registry) RecordPreviewWrite() { r.previewWrites.Add(1) }

// RecordPreviewError counts a failed preview materialization.
func (r *Registry) RecordPreviewError() { r.previewErrors.Add(1) }

// Snapshot returns the current counter values.
func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		Embeds:         r.embeds.Load(),
		Detections:     r.detections.Load(),
		Fallbacks:      r.fallbacks.Load(),
		PreviewMemHits: r.previewMemHits.Load(),
		PreviewDisk:    r.previewDisk.Load(),
		PreviewWrites:  r.previewWrites.Load(),
		PreviewErrors:  r.previewErrors.Load(),
	}
}
