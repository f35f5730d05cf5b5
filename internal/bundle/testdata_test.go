package bundle

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// makePDF builds an in-memory PDF with the given number of pages.
func makePDF(t *testing.T, pages int) []byte {
	t.Helper()

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetFont("Helvetica", "", 12)
	for i := 1; i <= pages; i++ {
		pdf.AddPage()
		pdf.Text(72, 72, fmt.Sprintf("page %d", i))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("failed to build test PDF: %v", err)
	}
	return buf.Bytes()
}

// makePNG builds a small PNG; withAlpha adds a transparent region so
// the normalizer has to flatten it.
func makePNG(t *testing.T, withAlpha bool) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			a := uint8(255)
			if withAlpha && x < 8 {
				a = 0
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 30, B: 30, A: a})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to build test PNG: %v", err)
	}
	return buf.Bytes()
}

// pdfText concatenates every decoded stream object in a PDF so tests
// can assert on drawn text. Footers land in form XObject streams rather
// than the page content stream, so all streams are searched.
func pdfText(t *testing.T, data []byte) string {
	t.Helper()

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf())
	if err != nil {
		t.Fatalf("failed to read PDF: %v", err)
	}

	var all bytes.Buffer
	for _, entry := range ctx.XRefTable.Table {
		if entry == nil || entry.Free {
			continue
		}
		sd, ok := entry.Object.(types.StreamDict)
		if !ok {
			continue
		}
		if err := sd.Decode(); err != nil {
			continue
		}
		all.Write(sd.Content)
	}
	return all.String()
}

// makeJPEG builds a small opaque JPEG.
func makeJPEG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: 30, G: 30, B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("failed to build test JPEG: %v", err)
	}
	return buf.Bytes()
}
