// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package detect classifies an input file as a raster image or a PDF.
package detect

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/doc2md/pkg/types"
)

// ErrUnsupportedFormat reports a file that is neither a supported image
// type nor a PDF.
var ErrUnsupportedFormat = errors.New("unsupported file format (use jpg, jpeg, png, gif, bmp, webp, or pdf)")

// imageMIMEs maps a supported image extension (without dot, lower case) to
// its MIME type.
var imageMIMEs = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"webp": "image/webp",
}

// pdfMagic is the signature every PDF file starts with.
var pdfMagic = []byte("%PDF-")

// MIMEForExt returns the MIME type for a supported image extension. The
// extension is matched case-insensitively with or without a leading dot.
// The second return value reports whether the extension is supported.
func MIMEForExt(ext string) (string, bool) {
	mime, ok := imageMIMEs[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return mime, ok
}

// Detect reads the file at path and classifies it. A missing or unreadable
// path surfaces the underlying os error; an extension outside the supported
// set returns ErrUnsupportedFormat. For .pdf files the %PDF- signature is
// also checked, so a mislabelled file fails here rather than deep inside
// the rasterizer.
func Detect(path string) (types.InputDocument, error) {
	info, err := os.Stat(path)
	if err != nil {
		return types.InputDocument{}, fmt.Errorf("input file: %w", err)
	}
	if info.IsDir() {
		return types.InputDocument{}, fmt.Errorf("input path %s is a directory, not a file", path)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	kind := types.Kind("")
	switch {
	case ext == "pdf":
		kind = types.KindPDF
	default:
		if _, ok := imageMIMEs[ext]; ok {
			kind = types.KindImage
		}
	}
	if kind == "" {
		return types.InputDocument{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return types.InputDocument{}, fmt.Errorf("reading input file: %w", err)
	}

	if kind == types.KindPDF && !bytes.HasPrefix(raw, pdfMagic) {
		return types.InputDocument{}, fmt.Errorf("%s has a .pdf extension but no PDF signature: %w", path, ErrUnsupportedFormat)
	}

	return types.InputDocument{Path: path, Kind: kind, Raw: raw}, nil
}
