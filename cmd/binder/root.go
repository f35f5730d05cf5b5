package main

import (
	"github.com/spf13/cobra"

	"github.com/kian234-lab/smart-pdf-merger/internal/api"
	"github.com/kian234-lab/smart-pdf-merger/internal/config"
	"github.com/kian234-lab/smart-pdf-merger/internal/server/endpoints"
	"github.com/kian234-lab/smart-pdf-merger/version"
)

var (
	cfgFile      string
	outputFormat string
	serverURL    string
)

var rootCmd = &cobra.Command{
	Use:   "binder",
	Short: "Merge PDFs and images into one bundle with an index and page numbers",
	Long: `Binder assembles a user-ordered set of PDF and image files into a
single PDF bundle.

Optionally it prepends a generated table-of-contents page and stamps
"Page X of Y" footers onto every page. Images (PNG/JPEG) are converted
to single-page PDFs so they merge uniformly with native PDFs.

Run it as a web form (binder serve) or one-shot from the command line
(binder bundle).`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.binder/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://127.0.0.1:8080", "binder server URL for api commands",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bundleCmd)
	rootCmd.AddCommand(initCmd)

	// api command tree: CLI counterparts of the HTTP endpoints
	registry := api.NewRegistry()
	for _, ep := range endpoints.All() {
		registry.Register(ep)
	}
	rootCmd.AddCommand(registry.BuildCommands(func() string { return serverURL }))
}

// loadConfig builds the config manager from the --config flag.
func loadConfig() (*config.Manager, error) {
	return config.NewManager(cfgFile)
}
