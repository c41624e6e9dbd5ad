// Package renderer turns assembled documentation blocks into HTML previews.
// Markdown conversion goes through goldmark with GFM extensions; headings get
// slug based anchors and see-also entries become links, resolved either
// through a configured symbol resolver or as in-page anchors.
package renderer
