package metrics_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/svgmotion/svgmotion/pkg/metrics"
)

func TestRegistry_Counters(t *testing.T) {
	r := metrics.NewRegistry()
	r.RecordEmbed()
	r.RecordEmbed()
	r.RecordDetect()
	r.RecordFallback()
	r.RecordPreviewMemoryHit()
	r.RecordPreviewDiskHit()
	r.RecordPreviewWrite()
	r.RecordPreviewError()

	s := r.Snapshot()
	assert.Equal(t, int64(2), s.Embeds)
	assert.Equal(t, int64(1), s.Detections)
	assert.Equal(t, int64(1), s.Fallbacks)
	assert.Equal(t, int64(1), s.PreviewMemHits)
	assert.Equal(t, int64(1), s.PreviewDisk)
	assert.Equal(t, int64(1), s.PreviewWrites)
	assert.Equal(t, int64(1), s.PreviewErrors)
}

func TestRegistry_Concurrent(t *testing.T) {
	r := metrics.NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.RecordPreviewWrite()
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(50), r.Snapshot().PreviewWrites)
}

func TestDefault_Singleton(t *testing.T) {
	assert.Same(t, metrics.Default(), metrics.Default())
}
