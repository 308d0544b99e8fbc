// Package pkg provides the libraries behind artsign, which stamps an
// artist's signature onto SVG drawings.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. [signature] - Pure placement and styling (presets, social tags, colors)
//  2. [svgdoc], [query] - The document host (parsing, measuring, layer insertion)
//  3. [cache], [config], [fonts], [render] - Supporting infrastructure
//
// # Architecture
//
// The data flow of a stamp:
//
//	SVG file
//	   ↓
//	[svgdoc] Parse (index ids, locate the root end tag)
//	   ↓
//	[query] Measure (canvas, or the selected element via geometry or inkscape)
//	   ↓
//	[signature] Compute (tag text, clamp font, anchor position, style)
//	   ↓
//	[svgdoc] NewLayer + AddText (+ AddImage)
//	   ↓
//	SVG/PNG/PDF output
//
// # Quick Start
//
//	doc, err := svgdoc.Parse(f)
//	if err != nil {
//	    return err
//	}
//	bbox, err := query.Measure(ctx, query.Geometry{}, doc, "")
//	if err != nil {
//	    return err
//	}
//	opts := signature.DefaultOptions()
//	opts.ArtistName = "Jane Doe"
//	opts.Preset = signature.TopLeft
//	p := signature.Compute(bbox, opts)
//	doc.NewLayer(opts.ArtistName + " Signature").AddText(p)
//	_, err = doc.WriteTo(out)
//
// [signature] has no dependencies outside the standard library and can be
// used on its own with any bounding box.
//
// [signature]: https://pkg.go.dev/github.com/matzehuels/artsign/pkg/signature
// [svgdoc]: https://pkg.go.dev/github.com/matzehuels/artsign/pkg/svgdoc
// [query]: https://pkg.go.dev/github.com/matzehuels/artsign/pkg/query
// [cache]: https://pkg.go.dev/github.com/matzehuels/artsign/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/artsign/pkg/config
// [fonts]: https://pkg.go.dev/github.com/matzehuels/artsign/pkg/fonts
// [render]: https://pkg.go.dev/github.com/matzehuels/artsign/pkg/render
package pkg
