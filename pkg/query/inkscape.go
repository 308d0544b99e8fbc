package query

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/artsign/pkg/errors"
	"github.com/matzehuels/artsign/pkg/signature"
	"github.com/matzehuels/artsign/pkg/svgdoc"
)

const inkscapeBinary = "inkscape"

// runFunc runs a command and returns its standard output.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Inkscape measures elements by running "inkscape --query-all". Results are
// visual bounding boxes in user units, with transforms and strokes applied.
type Inkscape struct {
	path     string
	run      runFunc
	attempts int
	delay    time.Duration
}

// NewInkscape returns a querier that runs the inkscape binary at path, or
// the one found on PATH when path is empty.
func NewInkscape(path string) *Inkscape {
	return &Inkscape{path: path, run: runCommand, attempts: inkscapeAttempts, delay: inkscapeRetryDelay}
}

func (q *Inkscape) Name() string { return BackendInkscape }

func (q *Inkscape) Bounds(ctx context.Context, doc *svgdoc.Document, id string) (signature.BoundingBox, error) {
	if id == "" {
		return doc.CanvasBounds()
	}
	if !doc.HasElement(id) {
		return signature.BoundingBox{}, errors.MissingSelection(id)
	}

	all, err := q.QueryAll(ctx, doc.Source())
	if err != nil {
		return signature.BoundingBox{}, err
	}
	box, ok := all[id]
	if !ok {
		return signature.BoundingBox{}, errors.UnmeasurableBounds(id, nil)
	}
	return box, nil
}

// QueryAll measures every element of the SVG in src, keyed by id.
func (q *Inkscape) QueryAll(ctx context.Context, src []byte) (map[string]signature.BoundingBox, error) {
	bin := q.path
	if bin == "" {
		found, err := exec.LookPath(inkscapeBinary)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeHostUnavailable, err, "inkscape not found on PATH; install it or use --query geometry")
		}
		bin = found
	}

	f, err := os.CreateTemp("", "artsign-*.svg")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create temp file")
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(src); err != nil {
		f.Close()
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write temp file")
	}
	if err := f.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write temp file")
	}

	var out []byte
	err = retry(ctx, q.attempts, q.delay, func() error {
		var runErr error
		out, runErr = q.run(ctx, bin, "--query-all", f.Name())
		return markTransient(runErr)
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeHostUnavailable, err, "inkscape query failed")
	}
	return parseQueryAll(bytes.NewReader(out))
}

// parseQueryAll reads "id,x,y,width,height" lines. Lines that do not have
// that shape (warnings interleaved on stdout) are skipped.
func parseQueryAll(r io.Reader) (map[string]signature.BoundingBox, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	boxes := make(map[string]signature.BoundingBox)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeHostUnavailable, err, "parse inkscape output")
		}
		if len(rec) != 5 {
			continue
		}
		var v [4]float64
		ok := true
		for i, s := range rec[1:] {
			if v[i], err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		boxes[rec[0]] = signature.NewBoundingBox(v[0], v[1], v[2], v[3])
	}
	return boxes, nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(errBuf.String()); msg != "" {
			return nil, errors.Wrap(errors.ErrCodeHostUnavailable, err, "%s", msg)
		}
		return nil, err
	}
	return out.Bytes(), nil
}
