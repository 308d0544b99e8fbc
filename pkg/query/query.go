// Package query measures bounding boxes for the signature placement core.
//
// A [Querier] answers "how big is this element?" for a parsed document.
// [Geometry] reads attributes directly and needs nothing installed;
// [Inkscape] asks the editor itself, which accounts for transforms, paths,
// and text at the cost of a process launch. [Cached] remembers answers
// across runs.
//
// The canvas (empty id) is always measured from the document itself, since
// its size is declared rather than rendered.
package query

import (
	"context"
	"time"

	"github.com/matzehuels/artsign/pkg/errors"
	"github.com/matzehuels/artsign/pkg/observability"
	"github.com/matzehuels/artsign/pkg/signature"
	"github.com/matzehuels/artsign/pkg/svgdoc"
)

// Backend names accepted by [New].
const (
	BackendGeometry = "geometry"
	BackendInkscape = "inkscape"
)

// Querier measures an element of a document. An empty id means the canvas.
type Querier interface {
	Name() string
	Bounds(ctx context.Context, doc *svgdoc.Document, id string) (signature.BoundingBox, error)
}

// New returns the querier for a backend name. inkscapePath is only used by
// the inkscape backend; empty means look it up on PATH.
func New(backend, inkscapePath string) (Querier, error) {
	switch backend {
	case "", BackendGeometry:
		return Geometry{}, nil
	case BackendInkscape:
		return NewInkscape(inkscapePath), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown query backend %q (must be %q or %q)", backend, BackendGeometry, BackendInkscape)
	}
}

// Measure validates id, runs q, and reports the query to the stamp hooks.
func Measure(ctx context.Context, q Querier, doc *svgdoc.Document, id string) (signature.BoundingBox, error) {
	if err := errors.ValidateElementID(id); err != nil {
		return signature.BoundingBox{}, err
	}
	hooks := observability.Stamp()
	hooks.OnQueryStart(ctx, q.Name(), id)
	start := time.Now()
	box, err := q.Bounds(ctx, doc, id)
	hooks.OnQueryComplete(ctx, q.Name(), id, time.Since(start), err)
	return box, err
}

// Geometry measures elements from their attributes.
type Geometry struct{}

func (Geometry) Name() string { return BackendGeometry }

func (Geometry) Bounds(_ context.Context, doc *svgdoc.Document, id string) (signature.BoundingBox, error) {
	return doc.Bounds(id)
}
