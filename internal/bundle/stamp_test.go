package bundle

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

func TestStamp_PreservesShape(t *testing.T) {
	doc := &Document{Name: "report.pdf", Kind: KindPDF, PageCount: 3, PDF: makePDF(t, 3)}

	stamped, err := Stamp(doc, 2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stamped.PageCount != doc.PageCount {
		t.Errorf("pageCount = %d, want %d", stamped.PageCount, doc.PageCount)
	}

	count, err := api.PageCount(bytes.NewReader(stamped.PDF), nil)
	if err != nil {
		t.Fatalf("stamped output unreadable: %v", err)
	}
	if count != 3 {
		t.Errorf("stamped PDF has %d pages, want 3", count)
	}

	// Footer is an overlay, page geometry must not change.
	before, err := api.PageDims(bytes.NewReader(doc.PDF), nil)
	if err != nil {
		t.Fatalf("page dims: %v", err)
	}
	after, err := api.PageDims(bytes.NewReader(stamped.PDF), nil)
	if err != nil {
		t.Fatalf("page dims: %v", err)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("page %d dims changed: %v -> %v", i+1, before[i], after[i])
		}
	}
}

// The footers must actually say "Page X of Y", with X counting from the
// document's absolute start page. A stamp that drew empty or wrong text
// would still produce a valid PDF with the right page count.
func TestStamp_FooterText(t *testing.T) {
	doc := &Document{Name: "report.pdf", Kind: KindPDF, PageCount: 3, PDF: makePDF(t, 3)}

	stamped, err := Stamp(doc, 2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := pdfText(t, stamped.PDF)
	for _, want := range []string{"Page 2 of 5", "Page 3 of 5", "Page 4 of 5"} {
		if !strings.Contains(text, want) {
			t.Errorf("stamped PDF is missing footer %q", want)
		}
	}
	for _, absent := range []string{"Page 1 of 5", "Page 5 of 5"} {
		if strings.Contains(text, absent) {
			t.Errorf("stamped PDF has footer %q outside the document's page range", absent)
		}
	}
}

func TestStamp_DoesNotMutateInput(t *testing.T) {
	data := makePDF(t, 2)
	orig := make([]byte, len(data))
	copy(orig, data)

	doc := &Document{Name: "report.pdf", Kind: KindPDF, PageCount: 2, PDF: data}
	if _, err := Stamp(doc, 1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Equal(doc.PDF, orig) {
		t.Error("input document bytes were mutated")
	}
}

func TestStamp_SinglePageImageDoc(t *testing.T) {
	norm, err := Normalize(File{Name: "scan.png", Data: makePNG(t, false)})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	stamped, err := Stamp(norm, 5, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := api.Validate(bytes.NewReader(stamped.PDF), nil); err != nil {
		t.Errorf("stamped image page is not a valid PDF: %v", err)
	}
}
