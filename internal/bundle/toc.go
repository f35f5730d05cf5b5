package bundle

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// TOC layout metrics, in points on a US Letter page (612x792).
// tocPageCount and renderTOC share these; they must paginate identically
// because the page accountant seeds its counter from tocPageCount before
// the TOC is ever rendered.
const (
	tocPageW = 612.0
	tocPageH = 792.0

	tocMargin      = 50.0 // top/side margin, also the first baseline after a page break
	tocRuleY       = 60.0 // header underline
	tocFirstEntryY = 100.0
	tocLineHeight  = 25.0

	tocHeaderSize = 18.0
	tocEntrySize  = 11.0

	// maxNameLen is the display-name budget before ellipsis truncation.
	maxNameLen = 60
)

// tocPageCount returns how many pages a TOC with n entries occupies.
func tocPageCount(n int) int {
	pages := 1
	y := tocFirstEntryY
	for i := 0; i < n; i++ {
		if y > tocPageH-tocMargin {
			pages++
			y = tocMargin
		}
		y += tocLineHeight
	}
	return pages
}

// renderTOC builds the table-of-contents PDF listing each document's
// display name and its starting page, right-aligned as "Page N".
func renderTOC(offsets []PageOffset) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", tocHeaderSize)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(tocMargin, tocMargin, "Table of Contents")
	pdf.SetLineWidth(1)
	pdf.Line(tocMargin, tocRuleY, tocPageW-tocMargin, tocRuleY)

	pdf.SetFont("Helvetica", "", tocEntrySize)
	y := tocFirstEntryY
	for _, off := range offsets {
		if y > tocPageH-tocMargin {
			pdf.AddPage()
			y = tocMargin
		}

		pdf.SetTextColor(128, 128, 128)
		pdf.Text(tocMargin, y, displayName(off.Name))

		pageLabel := fmt.Sprintf("Page %d", off.StartPage)
		pdf.Text(tocPageW-tocMargin-pdf.GetStringWidth(pageLabel), y, pageLabel)
		pdf.SetTextColor(0, 0, 0)

		y += tocLineHeight
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render table of contents: %w", err)
	}
	return buf.Bytes(), nil
}

// displayName shortens long names with a trailing ellipsis to keep the
// entry layout stable.
func displayName(name string) string {
	r := []rune(name)
	if len(r) <= maxNameLen {
		return name
	}
	return string(r[:maxNameLen]) + "..."
}
