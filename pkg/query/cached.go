package query

import (
	"context"
	"encoding/json"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/artsign/pkg/cache"
	"github.com/matzehuels/artsign/pkg/signature"
	"github.com/matzehuels/artsign/pkg/svgdoc"
)

// Cached wraps a Querier and stores its answers in a cache keyed by the
// document content. Cache failures are logged and fall through to the
// wrapped querier.
type Cached struct {
	inner  Querier
	cache  cache.Cache
	logger *log.Logger
}

// NewCached wraps inner. A nil logger discards cache warnings.
func NewCached(inner Querier, c cache.Cache, logger *log.Logger) *Cached {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Cached{inner: inner, cache: c, logger: logger}
}

func (q *Cached) Name() string { return q.inner.Name() }

func (q *Cached) Bounds(ctx context.Context, doc *svgdoc.Document, id string) (signature.BoundingBox, error) {
	key := cache.BoundsKey(cache.Hash(doc.Source()), q.inner.Name(), id)

	if data, hit, err := q.cache.Get(ctx, key); err != nil {
		q.logger.Warn("bounds cache read failed", "err", err)
	} else if hit {
		var box signature.BoundingBox
		if err := json.Unmarshal(data, &box); err == nil {
			q.logger.Debug("bounds cache hit", "backend", q.inner.Name(), "id", id)
			return box, nil
		}
	}

	box, err := q.inner.Bounds(ctx, doc, id)
	if err != nil {
		return box, err
	}

	data, _ := json.Marshal(box)
	if err := q.cache.Set(ctx, key, data, cache.DefaultBoundsTTL); err != nil {
		q.logger.Warn("bounds cache write failed", "err", err)
	}
	return box, nil
}
