package cmd

import (
	"fmt"

	"magazine-cms/pkg/logger"
	"magazine-cms/pkg/services"

	"github.com/spf13/cobra"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the client JSON bundle (articles, authors, recent)",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStores()
		if err != nil {
			return err
		}
		defer s.log.Sync()

		if err := services.ExportBundle(exportDir, s.content, s.authors); err != nil {
			return fmt.Errorf("export bundle: %w", err)
		}
		s.log.Info("Bundle exported", logger.String("dir", exportDir))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "./public/data", "output directory")
}
