// Package rewrite migrates the icon-class convention from inline SVG files
// to template call sites.
//
// The migration runs in two passes. The SVG pass finds the class attribute
// inside each icon's opening <svg> tag, records icon-id -> class, and strips
// the attribute from the file. The template pass rewrites one-argument
// icon("id") calls in Jet templates to icon("id", "classes") using the
// recorded map. Both passes mutate files in place, so the run is gated
// behind an Approver.
package rewrite
