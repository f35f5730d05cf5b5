package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kian234-lab/smart-pdf-merger/internal/api"
	"github.com/kian234-lab/smart-pdf-merger/internal/bundle"
	"github.com/kian234-lab/smart-pdf-merger/internal/svcctx"
)

// BundleEndpoint handles POST /api/bundle with multipart file upload.
// The response body is the merged PDF itself; recovered per-file
// warnings travel in the X-Bundle-Warnings header as percent-encoded
// JSON.
type BundleEndpoint struct{}

var _ api.Endpoint = (*BundleEndpoint)(nil)

func (e *BundleEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/bundle", e.handler
}

// handler godoc
//
//	@Summary		Merge uploaded files into one PDF bundle
//	@Description	Merges PDFs and images in upload order, with optional TOC page and page-number footers
//	@Tags			bundle
//	@Accept			mpfd
//	@Produce		application/pdf
//	@Param			files			formData	file	true	"Files to merge, in order (pdf/png/jpg/jpeg)"
//	@Param			toc				formData	bool	false	"Generate a table of contents page"
//	@Param			page_numbers	formData	bool	false	"Stamp 'Page X of Y' footers"
//	@Success		200	{file}		binary
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/bundle [post]
func (e *BundleEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	cfg := svcctx.ConfigFrom(r.Context())
	if cfg == nil {
		writeError(w, http.StatusServiceUnavailable, "configuration not initialized")
		return
	}
	logger := svcctx.LoggerFrom(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxUploadBytes())

	const maxMemory = 32 << 20 // 32MB in memory, rest spills to disk
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, "no files uploaded")
		return
	}
	if cfg.Limits.MaxFiles > 0 && len(headers) > cfg.Limits.MaxFiles {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("too many files: %d (limit %d)", len(headers), cfg.Limits.MaxFiles))
		return
	}

	// Upload order is bundle order.
	files := make([]bundle.File, 0, len(headers))
	for _, fh := range headers {
		src, err := fh.Open()
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to open uploaded file: %v", err))
			return
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read uploaded file: %v", err))
			return
		}
		files = append(files, bundle.File{Name: fh.Filename, Data: data})
	}

	opts := bundle.Options{
		GenerateTOC:    formBool(r, "toc", cfg.Defaults.GenerateTOC),
		AddPageNumbers: formBool(r, "page_numbers", cfg.Defaults.AddPageNumbers),
	}

	res, err := bundle.Run(r.Context(), files, opts, logger)
	if err != nil {
		if errors.Is(err, bundle.ErrNoDocuments) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if logger != nil {
			logger.Error("bundle run failed", "error", err)
		}
		// Details stay in the log; partial bundles are never returned.
		writeError(w, http.StatusInternalServerError, "bundle generation failed")
		return
	}

	if len(res.Warnings) > 0 {
		if data, err := json.Marshal(res.Warnings); err == nil {
			// Filenames may be non-ASCII; header values may not.
			w.Header().Set("X-Bundle-Warnings", url.PathEscape(string(data)))
		}
	}
	w.Header().Set("X-Bundle-Pages", strconv.Itoa(res.TotalPages))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", cfg.Output.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(res.PDF)))
	w.WriteHeader(http.StatusOK)
	w.Write(res.PDF)
}

// formBool reads a boolean form field, falling back to the configured
// default when the field is absent.
func formBool(r *http.Request, key string, fallback bool) bool {
	v := r.FormValue(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func (e *BundleEndpoint) Command(_ func() string) *cobra.Command {
	// No CLI command for multipart upload - the local `binder bundle`
	// command runs the pipeline directly.
	return nil
}
