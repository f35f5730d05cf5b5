package bundle

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

func TestNormalize_PDF(t *testing.T) {
	data := makePDF(t, 3)

	doc, err := Normalize(File{Name: "report.pdf", Data: data})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Kind != KindPDF {
		t.Errorf("kind = %v, want KindPDF", doc.Kind)
	}
	if doc.PageCount != 3 {
		t.Errorf("pageCount = %d, want 3", doc.PageCount)
	}
	if !bytes.Equal(doc.PDF, data) {
		t.Error("native PDF bytes should pass through unchanged")
	}
}

func TestNormalize_CorruptPDF(t *testing.T) {
	_, err := Normalize(File{Name: "broken.pdf", Data: []byte("not a pdf at all")})

	var fe *FileError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FileError, got %v", err)
	}
	if !errors.Is(err, ErrPDFParse) {
		t.Errorf("expected ErrPDFParse, got %v", fe.Err)
	}
	if fe.Name != "broken.pdf" {
		t.Errorf("name = %q, want broken.pdf", fe.Name)
	}
}

func TestNormalize_Images(t *testing.T) {
	tests := []struct {
		name string
		file File
	}{
		{name: "opaque jpeg", file: File{Name: "photo.jpg", Data: makeJPEG(t)}},
		{name: "opaque png", file: File{Name: "scan.png", Data: makePNG(t, false)}},
		{name: "png with alpha is flattened", file: File{Name: "logo.png", Data: makePNG(t, true)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Normalize(tt.file)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if doc.Kind != KindImage {
				t.Errorf("kind = %v, want KindImage", doc.Kind)
			}
			if doc.PageCount != 1 {
				t.Errorf("pageCount = %d, want 1", doc.PageCount)
			}

			count, err := api.PageCount(bytes.NewReader(doc.PDF), nil)
			if err != nil {
				t.Fatalf("result is not a readable PDF: %v", err)
			}
			if count != 1 {
				t.Errorf("normalized PDF has %d pages, want 1", count)
			}
		})
	}
}

// Normalizing the same image twice must produce the same page shape.
func TestNormalize_ImageIdempotent(t *testing.T) {
	file := File{Name: "scan.png", Data: makePNG(t, true)}

	a, err := Normalize(file)
	if err != nil {
		t.Fatalf("first normalize: %v", err)
	}
	b, err := Normalize(file)
	if err != nil {
		t.Fatalf("second normalize: %v", err)
	}

	if a.PageCount != b.PageCount {
		t.Errorf("page counts differ: %d vs %d", a.PageCount, b.PageCount)
	}

	dimsA, err := api.PageDims(bytes.NewReader(a.PDF), nil)
	if err != nil {
		t.Fatalf("page dims: %v", err)
	}
	dimsB, err := api.PageDims(bytes.NewReader(b.PDF), nil)
	if err != nil {
		t.Fatalf("page dims: %v", err)
	}
	if dimsA[0] != dimsB[0] {
		t.Errorf("page dims differ: %v vs %v", dimsA[0], dimsB[0])
	}
}

func TestNormalize_BadImage(t *testing.T) {
	_, err := Normalize(File{Name: "garbage.png", Data: []byte{0x00, 0x01, 0x02}})

	if !errors.Is(err, ErrImageDecode) {
		t.Fatalf("expected ErrImageDecode, got %v", err)
	}
}

func TestNormalize_UnsupportedExtension(t *testing.T) {
	_, err := Normalize(File{Name: "notes.txt", Data: []byte("hello")})

	var fe *FileError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FileError, got %v", err)
	}
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", fe.Err)
	}
}
