// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render rasterizes PDF pages to PNG images via MuPDF.
package render

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// DefaultDPI is the render resolution. 144 DPI (2x the PDF's nominal 72)
// keeps text readable for the vision model without ballooning payload size.
const DefaultDPI = 144

// OpenError reports that the input bytes could not be opened as a PDF.
type OpenError struct {
	Err error
}

func (e *OpenError) Error() string { return fmt.Sprintf("opening PDF: %v", e.Err) }
func (e *OpenError) Unwrap() error { return e.Err }

// PageError reports that a specific page failed to rasterize. The failure is
// fatal to the whole run: skipping a page would silently corrupt page order
// in the output.
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string { return fmt.Sprintf("rendering page %d: %v", e.Page, e.Err) }
func (e *PageError) Unwrap() error { return e.Err }

// Renderer rasterizes PDFs at a fixed resolution.
type Renderer struct {
	// DPI is the target render resolution. Zero means DefaultDPI.
	DPI float64
}

// New returns a Renderer at the default resolution.
func New() *Renderer {
	return &Renderer{DPI: DefaultDPI}
}

// Render opens data as a PDF and walks its pages in physical order, calling
// fn with the 1-based page index, the total page count, and the page's PNG
// bytes. Pages are rendered one at a time; the sequence restarts from the
// top on every call. The document handle is released before Render returns,
// on success and on failure alike.
//
// An unopenable document yields an *OpenError, a page that fails to
// rasterize yields a *PageError naming the page, and an error from fn
// aborts the walk and propagates unchanged.
func (r *Renderer) Render(data []byte, fn func(page, total int, png []byte) error) error {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return &OpenError{Err: err}
	}
	defer doc.Close()

	total := doc.NumPage()
	if total == 0 {
		return &OpenError{Err: fmt.Errorf("document has no pages")}
	}

	dpi := r.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	for i := 0; i < total; i++ {
		png, err := doc.ImagePNG(i, dpi)
		if err != nil {
			return &PageError{Page: i + 1, Err: err}
		}
		if err := fn(i+1, total, png); err != nil {
			return err
		}
	}

	return nil
}
