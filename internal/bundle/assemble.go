package bundle

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Assemble concatenates the optional TOC followed by each document's
// pages, in order, into one PDF. Nothing reorders pages after this.
func Assemble(toc []byte, docs []*Document) ([]byte, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	readers := make([]io.ReadSeeker, 0, len(docs)+1)
	if toc != nil {
		readers = append(readers, bytes.NewReader(toc))
	}
	for _, d := range docs {
		readers = append(readers, bytes.NewReader(d.PDF))
	}

	var out bytes.Buffer
	if err := api.MergeRaw(readers, &out, false, conf()); err != nil {
		return nil, fmt.Errorf("failed to merge documents: %w", err)
	}
	return out.Bytes(), nil
}
