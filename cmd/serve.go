package cmd

import (
	"magazine-cms/pkg/config"
	"magazine-cms/pkg/handlers"
	"magazine-cms/pkg/logger"
	"magazine-cms/pkg/services"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the content API",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStores(services.WithEnrichment())
		if err != nil {
			return err
		}
		defer s.log.Sync()

		// Warm the caches so the first request does not pay for parsing.
		s.authors.Load()
		s.content.GetAllArticles()

		r := handlers.NewRouter(&handlers.API{Content: s.content, Authors: s.authors, Log: s.log})
		s.log.Info("Starting content API",
			logger.String("addr", config.ServerAddr),
			logger.Bool("admin", config.AdminEnabled),
		)
		return r.Run(config.ServerAddr)
	},
}
