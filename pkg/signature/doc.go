// Package signature computes where and how an artist's signature is drawn.
//
// # Overview
//
// Everything in this package is a pure function over values. A host supplies
// a [BoundingBox] (the canvas or a selected element) and [Options]; [Compute]
// returns a [Placement] holding the final text, its anchor coordinates, and a
// CSS-like style declaration:
//
//	p := signature.Compute(bbox, signature.Options{
//	    ArtistName: "Jane Doe",
//	    Preset:     signature.TopLeft,
//	    SocialTag:  signature.Tumblr,
//	    FontFamily: "arial",
//	    FontSizePx: 24,
//	})
//	// p.Text == "Tumblr: @janedoe"
//
// # Placement
//
// Text width is not measured. [ComputePosition] approximates it from the
// character count (3.5 units per character at a 10px font) and offsets the
// anchor inward from the chosen corner. [Center] ignores text metrics.
//
// # Ordering
//
// Social tag formatting runs before placement because margins depend on the
// length of the final string. [Compute] enforces that order.
package signature
