// Package bundle implements the document-assembly pipeline: normalize
// uploaded PDFs and images into single-flavor PDF documents, compute
// cumulative page offsets, generate an optional table of contents,
// stamp "Page X of Y" footers, and merge everything into one PDF.
package bundle

import (
	"path/filepath"
	"strings"
)

// Kind describes what flavor of input a file is.
type Kind int

const (
	// KindPDF is a native PDF upload.
	KindPDF Kind = iota
	// KindImage is a raster image upload (PNG or JPEG).
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// File is a raw upload as handed over by the UI or CLI: a display name
// plus the file's bytes. Order in the input slice is the bundle order.
type File struct {
	Name string
	Data []byte
}

// Document is a normalized, counted input: always PDF bytes, with at
// least one page. Immutable once built.
type Document struct {
	Name      string
	Kind      Kind
	PageCount int
	PDF       []byte
}

// DetectKind maps a file name to its input kind by extension.
// Returns ErrUnsupportedType for anything outside {pdf, png, jpg, jpeg}.
func DetectKind(name string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return KindPDF, nil
	case ".png", ".jpg", ".jpeg":
		return KindImage, nil
	default:
		return 0, ErrUnsupportedType
	}
}
