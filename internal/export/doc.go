// Package export turns synthesized spirals into SVG figures, CSV rows and
// JSON documents.
package export
