package bundle

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	xdraw "golang.org/x/image/draw"
)

// importDesc places an imported image centered on a US Letter page,
// scaled to fit with a small margin.
const importDesc = "formsize:Letter, position:c, scalefactor:0.9 rel"

// jpegQuality is used when a flattened image is re-encoded for embedding.
const jpegQuality = 90

// conf returns a fresh pdfcpu configuration for one operation.
func conf() *model.Configuration {
	return model.NewDefaultConfiguration()
}

// Normalize turns a raw upload into a counted PDF Document.
// Per-file failures come back as *FileError so callers can recover
// (exclude the file, keep going).
func Normalize(f File) (*Document, error) {
	kind, err := DetectKind(f.Name)
	if err != nil {
		return nil, &FileError{Name: f.Name, Err: err}
	}

	switch kind {
	case KindPDF:
		return normalizePDF(f)
	default:
		return normalizeImage(f)
	}
}

// normalizePDF validates an uploaded PDF and counts its pages.
func normalizePDF(f File) (*Document, error) {
	rs := bytes.NewReader(f.Data)
	if err := api.Validate(rs, conf()); err != nil {
		return nil, &FileError{Name: f.Name, Err: fmt.Errorf("%w: %v", ErrPDFParse, err)}
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, &FileError{Name: f.Name, Err: fmt.Errorf("%w: %v", ErrPDFParse, err)}
	}
	count, err := api.PageCount(rs, conf())
	if err != nil {
		return nil, &FileError{Name: f.Name, Err: fmt.Errorf("%w: %v", ErrPDFParse, err)}
	}
	if count < 1 {
		return nil, &FileError{Name: f.Name, Err: fmt.Errorf("%w: empty document", ErrPDFParse)}
	}

	return &Document{Name: f.Name, Kind: KindPDF, PageCount: count, PDF: f.Data}, nil
}

// normalizeImage converts a PNG/JPEG upload into a single-page PDF.
// Images whose color model the PDF pipeline cannot embed directly
// (palette, alpha channel) are flattened to RGB over white first.
func normalizeImage(f File) (*Document, error) {
	img, _, err := image.Decode(bytes.NewReader(f.Data))
	if err != nil {
		return nil, &FileError{Name: f.Name, Err: fmt.Errorf("%w: %v", ErrImageDecode, err)}
	}

	data := f.Data
	if !embeddable(img) {
		data, err = flattenRGB(img)
		if err != nil {
			return nil, &FileError{Name: f.Name, Err: fmt.Errorf("%w: %v", ErrImageDecode, err)}
		}
	}

	imp, err := pdfcpu.ParseImportDetails(importDesc, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("failed to parse import details: %w", err)
	}

	var out bytes.Buffer
	if err := api.ImportImages(nil, &out, []io.Reader{bytes.NewReader(data)}, imp, conf()); err != nil {
		return nil, &FileError{Name: f.Name, Err: fmt.Errorf("%w: %v", ErrImageDecode, err)}
	}

	return &Document{Name: f.Name, Kind: KindImage, PageCount: 1, PDF: out.Bytes()}, nil
}

// embeddable reports whether a decoded image can be embedded as-is.
// JPEG decodes to YCbCr/Gray/CMYK, all opaque; everything else
// (paletted or alpha-carrying PNG flavors) needs flattening.
func embeddable(img image.Image) bool {
	switch img.(type) {
	case *image.YCbCr, *image.Gray, *image.CMYK:
		return true
	default:
		return false
	}
}

// flattenRGB composites an image over a white background and re-encodes
// it as an opaque JPEG.
func flattenRGB(img image.Image) ([]byte, error) {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), image.White, image.Point{}, xdraw.Src)
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
