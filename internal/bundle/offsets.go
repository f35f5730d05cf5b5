package bundle

// PageOffset records where a document's content begins in the final
// bundle. StartPage is the absolute 1-based page number, counting any
// TOC pages first.
type PageOffset struct {
	Name      string
	StartPage int
	PageCount int
}

// Offsets computes the starting page for every document plus the grand
// total, in one forward pass. tocPages is the number of pages the table
// of contents will occupy (0 when disabled); the counter is seeded just
// past it, so a TOC that overflows onto extra pages shifts every
// downstream start page correctly.
//
// Every footer states the grand total, so this must run to completion
// before any stamping starts.
func Offsets(docs []*Document, tocPages int) ([]PageOffset, int) {
	offsets := make([]PageOffset, 0, len(docs))
	page := tocPages + 1
	for _, d := range docs {
		offsets = append(offsets, PageOffset{
			Name:      d.Name,
			StartPage: page,
			PageCount: d.PageCount,
		})
		page += d.PageCount
	}
	return offsets, page - 1
}
