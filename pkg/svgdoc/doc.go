// Package svgdoc is the document host for signatures: it reads an SVG file,
// measures the canvas or a selected element, and writes the file back with
// new layers appended.
//
// Documents are edited by splicing rather than re-serializing. The original
// bytes are kept verbatim and new content is inserted before the root
// closing tag, so editor metadata, comments, and formatting survive.
//
//	doc, err := svgdoc.Parse(r)
//	bbox, err := doc.CanvasBounds()
//	layer := doc.NewLayer("Signature")
//	layer.AddText(signature.Compute(bbox, opts))
//	_, err = doc.WriteTo(w)
//
// # Measurement
//
// [Document.CanvasBounds] reads the root viewBox, falling back to width and
// height converted to user units. [Document.ElementBounds] understands the
// basic shapes whose extent is given by attributes (rect, image, use, svg,
// circle, ellipse, line). Transforms are not applied; use an external query
// backend for documents that rely on them.
package svgdoc
