// Package encode turns raw image bytes into a transportable base64 payload.
package encode

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/pdiddy/doc2md/pkg/types"
)

// ErrEmptyImage reports image data with no bytes to encode.
var ErrEmptyImage = errors.New("empty image data")

// Page builds a PageImage for the given page index from raw image bytes and
// their MIME type. Pure and deterministic: identical inputs always produce
// identical payloads.
func Page(index int, data []byte, mime string) (types.PageImage, error) {
	if len(data) == 0 {
		return types.PageImage{}, fmt.Errorf("page %d: %w", index, ErrEmptyImage)
	}
	if mime == "" {
		return types.PageImage{}, fmt.Errorf("page %d: missing MIME type", index)
	}
	return types.PageImage{
		Index:   index,
		MIME:    mime,
		Payload: base64.StdEncoding.EncodeToString(data),
	}, nil
}
