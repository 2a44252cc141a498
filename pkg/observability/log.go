package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing debug lines to a logger.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log through logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnGenerate(_ context.Context, normalFloors, basements, apartments, total int) {
	h.logger.Debug("generated section",
		"floors", normalFloors, "basements", basements,
		"apartments", apartments, "total", total)
}

func (h *LogHooks) OnEdit(_ context.Context, kind string, floor, apartment int, changed bool) {
	if apartment < 0 {
		h.logger.Debug("edit", "kind", kind, "floor", floor, "changed", changed)
		return
	}
	h.logger.Debug("edit", "kind", kind, "floor", floor, "apartment", apartment, "changed", changed)
}

func (h *LogHooks) OnRender(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "format", format, "error", err)
		return
	}
	h.logger.Debug("rendered", "format", format, "bytes", size, "took", d.Round(time.Microsecond))
}

func (h *LogHooks) OnLoad(_ context.Context, store, id string, found bool, err error) {
	if err != nil {
		h.logger.Warn("session load failed", "store", store, "id", id, "error", err)
		return
	}
	h.logger.Debug("session load", "store", store, "id", id, "found", found)
}

func (h *LogHooks) OnSave(_ context.Context, store, id string, err error) {
	if err != nil {
		h.logger.Warn("session save failed", "store", store, "id", id, "error", err)
		return
	}
	h.logger.Debug("session save", "store", store, "id", id)
}

var (
	_ EditorHooks  = (*LogHooks)(nil)
	_ RenderHooks  = (*LogHooks)(nil)
	_ SessionHooks = (*LogHooks)(nil)
)
