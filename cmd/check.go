package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"magazine-cms/pkg/config"
	"magazine-cms/pkg/services"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Parse every configured content file and report what was loaded",
	RunE: func(cmd *cobra.Command, args []string) error {
		manifest, err := config.LoadManifest(config.ManifestPath)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Source", "Path", "Records", "Dropped", "Error"})

		check := func(name, path string) {
			if path == "" {
				return
			}
			if strings.EqualFold(filepath.Ext(path), ".csv") {
				res, err := services.ParseCSVFile(path)
				t.AppendRow(table.Row{name, path, len(res.Rows), res.Dropped, errString(err)})
				return
			}
			articles, err := services.LoadSection(path)
			t.AppendRow(table.Row{name, path, len(articles), "-", errString(err)})
		}

		for _, sec := range manifest.Sections {
			check(sec.Name, sec.Path)
		}
		check("archive", manifest.Archive)
		check("authors", manifest.Authors)
		t.Render()

		s, err := newStores()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "aggregate articles: %d, authors: %d\n",
			len(s.content.GetAllArticles()), len(s.authors.All()))
		return nil
	},
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
