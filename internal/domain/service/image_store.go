package service

import (
	"context"
	"io"
)

// ImageStore persists uploaded product images and returns the relative URL
// path under which they are served. The path, not the storage location, is
// what ends up in the product's image column.
type ImageStore interface {
	// Save writes the image and returns its public URL path, e.g. "/uploads/x.png".
	Save(ctx context.Context, filename string, contentType string, r io.Reader) (string, error)
}
