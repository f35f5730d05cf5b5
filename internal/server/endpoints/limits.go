package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/kian234-lab/smart-pdf-merger/internal/api"
	"github.com/kian234-lab/smart-pdf-merger/internal/svcctx"
)

// LimitsResponse tells the upload form what the server accepts and how
// to pre-set the option checkboxes.
type LimitsResponse struct {
	MaxUploadMB    int    `json:"max_upload_mb"`
	MaxFiles       int    `json:"max_files"`
	GenerateTOC    bool   `json:"generate_toc"`
	AddPageNumbers bool   `json:"add_page_numbers"`
	Filename       string `json:"filename"`
}

// LimitsEndpoint handles GET /api/limits.
type LimitsEndpoint struct{}

var _ api.Endpoint = (*LimitsEndpoint)(nil)

func (e *LimitsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/limits", e.handler
}

// handler godoc
//
//	@Summary	Get upload limits and option defaults
//	@Tags		bundle
//	@Produce	json
//	@Success	200	{object}	LimitsResponse
//	@Failure	503	{object}	ErrorResponse
//	@Router		/api/limits [get]
func (e *LimitsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	cfg := svcctx.ConfigFrom(r.Context())
	if cfg == nil {
		writeError(w, http.StatusServiceUnavailable, "configuration not initialized")
		return
	}

	writeJSON(w, http.StatusOK, LimitsResponse{
		MaxUploadMB:    cfg.Limits.MaxUploadMB,
		MaxFiles:       cfg.Limits.MaxFiles,
		GenerateTOC:    cfg.Defaults.GenerateTOC,
		AddPageNumbers: cfg.Defaults.AddPageNumbers,
		Filename:       cfg.Output.Filename,
	})
}

func (e *LimitsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "limits",
		Short: "Show upload limits and option defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp LimitsResponse
			if err := client.Get(cmd.Context(), "/api/limits", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
