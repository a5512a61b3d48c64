// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data model shared across pipeline stages.
package types

import "fmt"

// Kind classifies an input file as a raster image or a PDF document.
type Kind string

const (
	KindImage Kind = "image"
	KindPDF   Kind = "pdf"
)

// InputDocument is a validated input file loaded into memory. It is built
// once at pipeline entry and never mutated afterwards.
type InputDocument struct {
	// Path is the filesystem path the document was read from.
	Path string

	// Kind is the detected document kind.
	Kind Kind

	// Raw is the complete file contents.
	Raw []byte
}

// PageImage is one page of the input, encoded for transport. For an image
// input there is exactly one PageImage; for a PDF there is one per rendered
// page, in physical page order.
type PageImage struct {
	// Index is the 1-based page ordinal within the source document.
	Index int

	// MIME is the image MIME type (e.g. "image/png").
	MIME string

	// Payload is the base64 encoding of the image bytes.
	Payload string
}

// DataURI returns the payload as an inline data URI suitable for an
// OpenAI-compatible image_url content part.
func (p PageImage) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", p.MIME, p.Payload)
}

// PageText is the model's transcription of a single page.
type PageText struct {
	// Index matches the PageImage the text was extracted from.
	Index int

	// Text is the literal completion content, unmodified.
	Text string
}

// DocumentResult is the final joined Markdown document.
type DocumentResult struct {
	// Markdown is the per-page texts joined in ascending page order with a
	// blank line between pages.
	Markdown string

	// Pages is the number of pages that contributed to Markdown.
	Pages int
}
