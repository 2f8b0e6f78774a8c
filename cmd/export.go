package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/site"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes the public pages as static HTML",
	Long: `The export command renders the home, projects, about and contact pages
into index.html files under the output directory. Interactive fragments
(filters, the detail modal, the contact POST) still need the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Default()
		if err != nil {
			return err
		}
		srv, err := site.New(site.Options{Catalog: c, Log: logger})
		if err != nil {
			return err
		}
		files, err := srv.Export(exportDir)
		if err != nil {
			return err
		}
		logger.Info("export complete", zap.String("dir", exportDir), zap.Int("pages", len(files)))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "public", "output directory")
	rootCmd.AddCommand(exportCmd)
}
