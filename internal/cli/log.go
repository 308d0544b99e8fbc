package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Measured canvas (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports observability events as debug logs.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnQueryStart(_ context.Context, backend, id string) {
	h.logger.Debug("measuring", "backend", backend, "target", targetName(id))
}

func (h *logHooks) OnQueryComplete(_ context.Context, backend, id string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("measure failed", "backend", backend, "target", targetName(id), "err", err)
		return
	}
	h.logger.Debug("measured", "backend", backend, "target", targetName(id), "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnStampComplete(_ context.Context, preset, output string, d time.Duration, err error) {
	h.logger.Debug("stamp finished", "preset", preset, "output", output, "took", d.Round(time.Microsecond), "err", err)
}

func (h *logHooks) OnCacheHit(_ context.Context, key string)  { h.logger.Debug("cache hit", "key", key) }
func (h *logHooks) OnCacheMiss(_ context.Context, key string) { h.logger.Debug("cache miss", "key", key) }
func (h *logHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cache set", "key", key, "bytes", size)
}

// targetName is the display name of a selection.
func targetName(id string) string {
	if id == "" {
		return "canvas"
	}
	return "#" + id
}
