package bundle

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// footerDesc styles the page-number footer: small muted Helvetica,
// bottom-center, 20pt above the page edge, layered on top of the
// existing content.
const footerDesc = "fontname:Helvetica, points:9, fillcolor:#666666, " +
	"position:bc, offset:0 20, scalefactor:1 abs, rotation:0, opacity:1"

// Stamp composites a "Page X of Y" footer onto every page of a
// document, where X counts from the document's absolute start page and
// Y is the bundle's grand total. Each page gets its own watermark and
// the whole document is rewritten in a single pass. The footer is an
// on-top overlay: page content, geometry, count, and order are
// untouched.
//
// Stamping failures are fatal to the whole run; a bundle with wrong or
// missing page numbers is worse than no bundle.
func Stamp(doc *Document, startPage, totalPages int) (*Document, error) {
	wms := make(map[int]*model.Watermark, doc.PageCount)
	for i := 0; i < doc.PageCount; i++ {
		text := fmt.Sprintf("Page %d of %d", startPage+i, totalPages)
		wm, err := pdfcpu.ParseTextWatermarkDetails(text, footerDesc, true, types.POINTS)
		if err != nil {
			return nil, fmt.Errorf("failed to build footer for %s: %w", doc.Name, err)
		}
		wms[i+1] = wm
	}

	var out bytes.Buffer
	if err := api.AddWatermarksMap(bytes.NewReader(doc.PDF), &out, wms, conf()); err != nil {
		return nil, fmt.Errorf("failed to stamp %s: %w", doc.Name, err)
	}

	return &Document{Name: doc.Name, Kind: doc.Kind, PageCount: doc.PageCount, PDF: out.Bytes()}, nil
}
