package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	contentLoadsTotal        atomic.Uint64
	contentFallbacksTotal    atomic.Uint64
	contentSavesTotal        atomic.Uint64
	contentSaveConflictsTotal atomic.Uint64
	assetUploadsTotal        atomic.Uint64

	saveDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000})
)

// IncContentLoad increments the document load counter.
func IncContentLoad() {
	contentLoadsTotal.Add(1)
}

// IncContentFallback increments the defaults-fallback counter.
func IncContentFallback() {
	contentFallbacksTotal.Add(1)
}

// IncContentSave increments the save counter.
func IncContentSave() {
	contentSavesTotal.Add(1)
}

// IncContentSaveConflict increments the revision-conflict counter.
func IncContentSaveConflict() {
	contentSaveConflictsTotal.Add(1)
}

// IncAssetUpload increments the asset upload counter.
func IncAssetUpload() {
	assetUploadsTotal.Add(1)
}

// ObserveSaveDurationMs records a document save duration in milliseconds.
func ObserveSaveDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	saveDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "content_loads_total", "Total document loads", contentLoadsTotal.Load())
	writeCounter(&buf, "content_fallbacks_total", "Total loads served from built-in defaults", contentFallbacksTotal.Load())
	writeCounter(&buf, "content_saves_total", "Total document saves", contentSavesTotal.Load())
	writeCounter(&buf, "content_save_conflicts_total", "Total saves rejected on a stale revision", contentSaveConflictsTotal.Load())
	writeCounter(&buf, "asset_uploads_total", "Total asset uploads", assetUploadsTotal.Load())
	writeHistogram(&buf, "content_save_duration_ms", "Document save duration in milliseconds", saveDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
