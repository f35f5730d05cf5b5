package bundle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Options are the two user-facing switches from the upload form.
type Options struct {
	GenerateTOC    bool
	AddPageNumbers bool
}

// Result is the outcome of one pipeline run.
type Result struct {
	RunID      string
	PDF        []byte
	TotalPages int
	Offsets    []PageOffset
	Warnings   []Warning
}

// Run executes the whole pipeline for one request: normalize every
// file, compute page offsets, render the optional TOC, stamp the
// optional footers, and merge. It is a pure function of (files,
// options); no state survives the call.
//
// Per-file intake failures are recovered and surfaced as Warnings.
// Any failure after intake aborts the run with no partial output.
func Run(ctx context.Context, files []File, opts Options, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	runID := uuid.New().String()
	log := logger.With("run_id", runID)

	if len(files) == 0 {
		return nil, ErrNoDocuments
	}

	// Intake: normalize images to single-page PDFs, validate and count
	// native PDFs. Failed files are excluded, not fatal.
	docs := make([]*Document, 0, len(files))
	var warnings []Warning
	for _, f := range files {
		doc, err := Normalize(f)
		if err != nil {
			var fe *FileError
			if errors.As(err, &fe) {
				log.Warn("file excluded from bundle", "file", fe.Name, "error", fe.Err)
				warnings = append(warnings, warningFor(fe))
				continue
			}
			return nil, fmt.Errorf("normalization failed: %w", err)
		}
		log.Debug("file normalized", "file", doc.Name, "kind", doc.Kind.String(), "pages", doc.PageCount)
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: all %d files failed intake", ErrNoDocuments, len(files))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Accounting: the TOC's own page count is known up front, so start
	// pages stay correct even when the TOC spills onto extra pages.
	tocPages := 0
	if opts.GenerateTOC {
		tocPages = tocPageCount(len(docs))
	}
	offsets, totalPages := Offsets(docs, tocPages)
	log.Info("pages counted", "documents", len(docs), "toc_pages", tocPages, "total_pages", totalPages)

	var toc []byte
	if opts.GenerateTOC {
		var err error
		toc, err = renderTOC(offsets)
		if err != nil {
			return nil, err
		}
		log.Debug("table of contents rendered", "pages", tocPages)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.AddPageNumbers {
		for i, doc := range docs {
			stamped, err := Stamp(doc, offsets[i].StartPage, totalPages)
			if err != nil {
				return nil, err
			}
			docs[i] = stamped
		}
		log.Debug("footers stamped", "documents", len(docs))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf, err := Assemble(toc, docs)
	if err != nil {
		return nil, err
	}
	log.Info("bundle assembled", "bytes", len(pdf), "total_pages", totalPages, "warnings", len(warnings))

	return &Result{
		RunID:      runID,
		PDF:        pdf,
		TotalPages: totalPages,
		Offsets:    offsets,
		Warnings:   warnings,
	}, nil
}
