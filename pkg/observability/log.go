package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports pipeline and cache events to a logger at debug level.
// It implements both [PipelineHooks] and [CacheHooks].
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that write to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{Logger: logger}
}

func (h *LogHooks) OnStageStart(_ context.Context, stage string, size int) {
	h.Logger.Debug("stage started", "stage", stage, "words", size)
}

func (h *LogHooks) OnStageComplete(_ context.Context, stage string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("stage failed", "stage", stage, "duration", d.Round(time.Millisecond), "err", err)
		return
	}
	h.Logger.Debug("stage complete", "stage", stage, "duration", d.Round(time.Millisecond))
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render started", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.Logger.Debug("render complete", "formats", formats, "duration", d.Round(time.Millisecond), "err", err)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
)
