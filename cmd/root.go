// Package cmd implements the magazine command line: serving the content
// API, exporting client bundles and checking content files.
package cmd

import (
	"fmt"

	"magazine-cms/pkg/config"
	"magazine-cms/pkg/logger"
	"magazine-cms/pkg/services"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "magazine",
	Short:        "Static magazine content service",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Init()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, exportCmd, checkCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// stores holds the content stores built from the configured manifest.
type stores struct {
	log     logger.Logger
	content *services.ContentStore
	authors *services.AuthorStore
}

func newStores(opts ...services.Option) (*stores, error) {
	log, err := logger.New(logger.Config{
		Level:       config.LogLevel,
		Development: config.LogDevelopment,
		OutputPaths: config.LogOutputs,
	})
	if err != nil {
		return nil, err
	}

	manifest, err := config.LoadManifest(config.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}

	authors := services.NewAuthorStore(manifest.Authors, log)
	return &stores{
		log:     log,
		content: services.NewContentStore(manifest, authors, log, opts...),
		authors: authors,
	}, nil
}
