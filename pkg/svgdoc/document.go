package svgdoc

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/google/uuid"

	"github.com/matzehuels/artsign/pkg/errors"
)

const (
	// SVGNamespace is the SVG element namespace.
	SVGNamespace = "http://www.w3.org/2000/svg"
	// InkscapeNamespace carries layer metadata understood by Inkscape.
	InkscapeNamespace = "http://www.inkscape.org/namespaces/inkscape"

	xmlnsPrefix = "xmlns"
)

// element is the subset of a parsed element needed for measurement.
type element struct {
	Tag   string
	Attrs map[string]string
}

func (e element) attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// Document is a parsed SVG file plus the layers queued for insertion.
// A Document is not safe for concurrent use.
type Document struct {
	raw  []byte
	root element
	ids  map[string]element

	rootName    string // qualified root tag name as written
	startEnd    int    // offset just past the root start tag
	endStart    int    // offset of the root end tag
	selfClosing bool   // root written as <svg .../>

	inkscapePrefix string // prefix bound to InkscapeNamespace, "" if none
	defaultSVG     bool   // default namespace is SVGNamespace

	layers []*Layer
	newID  func() string
}

// Parse reads an SVG document from r.
func Parse(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "read document")
	}
	return ParseBytes(raw)
}

// ParseBytes parses an SVG document held in memory. The slice is retained.
func ParseBytes(raw []byte) (*Document, error) {
	d := &Document{
		raw:      raw,
		ids:      make(map[string]element),
		newID:    uuid.NewString,
		startEnd: -1,
		endStart: -1,
	}

	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.Entity = xml.HTMLEntity

	depth := 0
	for {
		before := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse svg")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := newElement(t)
			if depth == 0 {
				if d.startEnd >= 0 {
					return nil, errors.New(errors.ErrCodeInvalidDocument, "multiple root elements")
				}
				if t.Name.Local != "svg" {
					return nil, errors.New(errors.ErrCodeInvalidDocument, "root element is <%s>, want <svg>", t.Name.Local)
				}
				d.root = el
				d.rootName = qualifiedName(raw[before:])
				d.startEnd = int(dec.InputOffset())
				d.scanNamespaces(t)
			}
			if id, ok := el.attr("id"); ok {
				if _, dup := d.ids[id]; !dup {
					d.ids[id] = el
				}
			}
			depth++
		case xml.EndElement:
			depth--
			if depth == 0 {
				d.endStart = int(before)
				// <svg></svg> and <svg/> both end where the start tag ends.
				d.selfClosing = d.startEnd >= 2 && raw[d.startEnd-2] == '/'
			}
		}
	}

	if d.startEnd < 0 || d.endStart < 0 {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "no <svg> root element")
	}
	return d, nil
}

func newElement(t xml.StartElement) element {
	el := element{Tag: t.Name.Local, Attrs: make(map[string]string, len(t.Attr))}
	for _, a := range t.Attr {
		if a.Name.Space == xmlnsPrefix || a.Name.Local == xmlnsPrefix {
			continue
		}
		// Unprefixed attributes win over namespaced ones with the same local name.
		if _, seen := el.Attrs[a.Name.Local]; seen && a.Name.Space != "" {
			continue
		}
		el.Attrs[a.Name.Local] = a.Value
	}
	return el
}

// qualifiedName reads the tag name of the start tag at the head of b,
// skipping any whitespace before it.
func qualifiedName(b []byte) string {
	b = bytes.TrimLeft(b, " \t\r\n")
	b = bytes.TrimPrefix(b, []byte("<"))
	end := bytes.IndexAny(b, " \t\r\n/>")
	if end < 0 {
		return "svg"
	}
	return string(b[:end])
}

func (d *Document) scanNamespaces(t xml.StartElement) {
	for _, a := range t.Attr {
		switch {
		case a.Name.Space == xmlnsPrefix && a.Value == InkscapeNamespace:
			d.inkscapePrefix = a.Name.Local
		case a.Name.Space == "" && a.Name.Local == xmlnsPrefix:
			d.defaultSVG = a.Value == SVGNamespace
		}
	}
}

// HasElement reports whether an element with the given id exists.
func (d *Document) HasElement(id string) bool {
	_, ok := d.ids[id]
	return ok
}

// ElementTag returns the local tag name of the element with the given id.
func (d *Document) ElementTag(id string) (string, bool) {
	el, ok := d.ids[id]
	return el.Tag, ok
}

// Source returns the document bytes as parsed, without queued layers.
func (d *Document) Source() []byte {
	return d.raw
}

// Bytes returns the document with all queued layers inserted before the
// root closing tag. Without layers the original bytes are returned unchanged.
func (d *Document) Bytes() []byte {
	if len(d.layers) == 0 {
		return bytes.Clone(d.raw)
	}

	var buf bytes.Buffer
	buf.Grow(len(d.raw) + 512*len(d.layers))

	tagClose := d.startEnd - 1 // the '>' of the root start tag
	if d.selfClosing {
		tagClose = d.startEnd - 2
	}
	buf.Write(d.raw[:tagClose])
	if d.inkscapePrefix == "" {
		buf.WriteString(` xmlns:inkscape="` + InkscapeNamespace + `"`)
	}

	if d.selfClosing {
		buf.WriteString(">\n")
		d.writeLayers(&buf)
		buf.WriteString("</" + d.rootName + ">")
		buf.Write(d.raw[d.startEnd:])
		return buf.Bytes()
	}

	buf.Write(d.raw[tagClose:d.endStart])
	d.writeLayers(&buf)
	buf.Write(d.raw[d.endStart:])
	return buf.Bytes()
}

// WriteTo writes the edited document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.Bytes())
	return int64(n), err
}

func (d *Document) prefix() string {
	if d.inkscapePrefix != "" {
		return d.inkscapePrefix
	}
	return "inkscape"
}
