package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kian234-lab/smart-pdf-merger/internal/api"
	"github.com/kian234-lab/smart-pdf-merger/internal/bundle"
)

var (
	bundleTOC     bool
	bundleNumbers bool
	bundleOut     string
)

// bundleSummary is the CLI report for a finished bundle.
type bundleSummary struct {
	Output     string           `json:"output" yaml:"output"`
	TotalPages int              `json:"total_pages" yaml:"total_pages"`
	Documents  []documentEntry  `json:"documents" yaml:"documents"`
	Warnings   []bundle.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type documentEntry struct {
	Name      string `json:"name" yaml:"name"`
	StartPage int    `json:"start_page" yaml:"start_page"`
	PageCount int    `json:"page_count" yaml:"page_count"`
}

var bundleCmd = &cobra.Command{
	Use:   "bundle <file> [file...]",
	Short: "Merge files into one PDF without a server",
	Long: `Merge the given PDF and image files, in argument order, into a
single PDF bundle.

Examples:
  binder bundle a.pdf b.pdf                     # TOC + page numbers
  binder bundle --toc=false scan.png notes.pdf  # no index page
  binder bundle --out merged.pdf *.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))

		files := make([]bundle.File, 0, len(args))
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			files = append(files, bundle.File{Name: path, Data: data})
		}

		opts := bundle.Options{GenerateTOC: bundleTOC, AddPageNumbers: bundleNumbers}
		res, err := bundle.Run(cmd.Context(), files, opts, logger)
		if err != nil {
			return err
		}

		if err := os.WriteFile(bundleOut, res.PDF, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", bundleOut, err)
		}

		summary := bundleSummary{
			Output:     bundleOut,
			TotalPages: res.TotalPages,
			Warnings:   res.Warnings,
		}
		for _, off := range res.Offsets {
			summary.Documents = append(summary.Documents, documentEntry{
				Name:      off.Name,
				StartPage: off.StartPage,
				PageCount: off.PageCount,
			})
		}
		return api.Output(summary)
	},
}

func init() {
	bundleCmd.Flags().BoolVar(&bundleTOC, "toc", true, "generate a table of contents page")
	bundleCmd.Flags().BoolVar(&bundleNumbers, "page-numbers", true, "stamp 'Page X of Y' footers")
	bundleCmd.Flags().StringVar(&bundleOut, "out", "professional_bundle.pdf", "output file path")
}
