package svgdoc

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"image"
	_ "image/gif"  // register GIF for DecodeConfig
	_ "image/jpeg" // register JPEG for DecodeConfig
	_ "image/png"  // register PNG for DecodeConfig
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/webp" // register WebP for DecodeConfig

	"github.com/matzehuels/artsign/pkg/errors"
	"github.com/matzehuels/artsign/pkg/signature"
)

// Layer is a group element queued for insertion at the top of the drawing.
type Layer struct {
	ID    string
	Label string

	doc  *Document
	body bytes.Buffer
}

// NewLayer queues a new layer. Layers are written in creation order, so
// later layers draw on top.
func (d *Document) NewLayer(label string) *Layer {
	l := &Layer{ID: "layer-" + d.newID(), Label: label, doc: d}
	d.layers = append(d.layers, l)
	return l
}

// Layers returns the queued layers.
func (d *Document) Layers() []*Layer {
	return d.layers
}

// AddText appends a text node for p and returns its id.
func (l *Layer) AddText(p signature.Placement) string {
	id := "text-" + l.doc.newID()
	canvas := svg.New(&l.body)
	canvas.Text(p.X, p.Y, p.Text,
		attr("id", id),
		attr("style", p.Style.Declaration()),
		attr("xml:space", "preserve"),
	)
	return id
}

// AddImage embeds data as a data URI filling box, keeping the aspect ratio.
// It returns the image element id.
func (l *Layer) AddImage(data []byte, box signature.BoundingBox) (string, error) {
	info, err := InspectImage(data)
	if err != nil {
		return "", err
	}
	id := "image-" + l.doc.newID()
	fmt.Fprintf(&l.body, `<image %s x="%g" y="%g" width="%g" height="%g" preserveAspectRatio="xMidYMid meet" href="data:%s;base64,%s"/>`+"\n",
		attr("id", id), box.Left, box.Top, box.Width(), box.Height(),
		info.MIME, base64.StdEncoding.EncodeToString(data))
	return id, nil
}

// ImageInfo describes an embeddable raster image.
type ImageInfo struct {
	MIME          string
	Width, Height int
}

// InspectImage detects the media type and pixel size of an image.
// Only formats browsers and editors render inline are accepted.
func InspectImage(data []byte) (ImageInfo, error) {
	kind, err := filetype.Match(data)
	if err != nil || !filetype.IsImage(data) {
		return ImageInfo{}, errors.New(errors.ErrCodeInvalidFormat, "not an image")
	}
	switch kind.MIME.Value {
	case "image/png", "image/jpeg", "image/gif", "image/webp":
	default:
		return ImageInfo{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported image type %s", kind.MIME.Value)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageInfo{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s header", kind.MIME.Value)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return ImageInfo{}, errors.New(errors.ErrCodeInvalidFormat, "%s has empty dimensions %dx%d", kind.MIME.Value, cfg.Width, cfg.Height)
	}
	return ImageInfo{MIME: kind.MIME.Value, Width: cfg.Width, Height: cfg.Height}, nil
}

func (d *Document) writeLayers(w io.Writer) {
	p := d.prefix()
	for _, l := range d.layers {
		canvas := svg.New(w)
		attrs := []string{
			attr("id", l.ID),
			attr(p+":label", l.Label),
			attr(p+":groupmode", "layer"),
		}
		if !d.defaultSVG {
			attrs = append(attrs, attr(xmlnsPrefix, SVGNamespace))
		}
		canvas.Group(attrs...)
		w.Write(l.body.Bytes())
		canvas.Gend()
	}
}

// attr formats an escaped name="value" pair.
func attr(name, value string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(value))
	return name + `="` + buf.String() + `"`
}
