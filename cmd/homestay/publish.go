package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"betu_homestay/internal/app"
	"betu_homestay/internal/content"
	mysqlrepo "betu_homestay/internal/storage/mysql"
)

func publishCmd() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Mirror the compiled-in room catalog into MySQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if workers <= 0 {
				workers = cfg.PublishWorkers
			}
			log.Info().Int("workers", workers).Int("rooms", len(content.Rooms)).Msg("publish starting")

			db, err := openMySQL(ctx, cfg.MySQLDSN)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := mysqlrepo.Migrate(ctx, db); err != nil {
				return err
			}

			cache, closeCache := openCache(ctx)
			defer closeCache()

			rep, err := app.NewPublishService(mysqlrepo.New(db), cache, workers).Publish(ctx, content.Rooms)
			if err != nil {
				return err
			}
			log.Info().Int("rooms", rep.Rooms).Msg("publish completed")
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent upserts (default PUBLISH_WORKERS)")
	return cmd
}
