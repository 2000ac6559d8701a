package main

import (
	"github.com/spf13/cobra"

	"betu_homestay/internal/adapters/web"
	"betu_homestay/internal/content"
)

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write index.html and the client bundle to a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			site := content.Site()
			if err := content.Validate(content.Rooms, site.Slides, site.Navigation); err != nil {
				return err
			}
			return web.Export(out, site, content.Rooms)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	return cmd
}
