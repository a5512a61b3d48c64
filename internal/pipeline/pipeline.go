// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives detection, rasterization, and model calls across
// the pages of one input document.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdiddy/doc2md/internal/detect"
	"github.com/pdiddy/doc2md/internal/encode"
	"github.com/pdiddy/doc2md/pkg/types"
)

// ModelClient extracts Markdown text from one page image. Implementations
// must be stateless across calls: no conversation context carries from one
// page to the next.
type ModelClient interface {
	ExtractMarkdown(ctx context.Context, page types.PageImage) (string, error)
}

// Rasterizer walks a PDF's pages in physical order, handing each page's PNG
// bytes to fn.
type Rasterizer interface {
	Render(data []byte, fn func(page, total int, png []byte) error) error
}

// PageError attaches the failing page index to an error from a downstream
// stage.
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string { return fmt.Sprintf("page %d: %v", e.Page, e.Err) }
func (e *PageError) Unwrap() error { return e.Err }

// pageSeparator joins per-page texts in the final document.
const pageSeparator = "\n\n"

// Process converts the file at path into one Markdown document. Pages are
// processed strictly sequentially in ascending page order, each through
// encode, request build, and a model call; the first failure aborts the
// whole run so the caller never receives a silently incomplete document.
// Per-page progress lines go to w.
func Process(ctx context.Context, client ModelClient, rast Rasterizer, path string, w io.Writer) (types.DocumentResult, error) {
	doc, err := detect.Detect(path)
	if err != nil {
		return types.DocumentResult{}, err
	}

	var texts []string

	callModel := func(page types.PageImage, total int) error {
		text, err := client.ExtractMarkdown(ctx, page)
		if err != nil {
			return &PageError{Page: page.Index, Err: err}
		}
		texts = append(texts, text)
		fmt.Fprintf(w, "processed page %d/%d\n", page.Index, total)
		return nil
	}

	switch doc.Kind {
	case types.KindImage:
		mime, ok := detect.MIMEForExt(filepath.Ext(doc.Path))
		if !ok {
			return types.DocumentResult{}, fmt.Errorf("no MIME type for %s", doc.Path)
		}
		page, err := encode.Page(1, doc.Raw, mime)
		if err != nil {
			return types.DocumentResult{}, err
		}
		if err := callModel(page, 1); err != nil {
			return types.DocumentResult{}, err
		}

	case types.KindPDF:
		err := rast.Render(doc.Raw, func(pageNum, total int, png []byte) error {
			page, err := encode.Page(pageNum, png, "image/png")
			if err != nil {
				return err
			}
			return callModel(page, total)
		})
		if err != nil {
			// Render failures and model-call failures already name their page.
			return types.DocumentResult{}, err
		}

	default:
		return types.DocumentResult{}, fmt.Errorf("unknown document kind %q", doc.Kind)
	}

	return types.DocumentResult{
		Markdown: strings.Join(texts, pageSeparator),
		Pages:    len(texts),
	}, nil
}
