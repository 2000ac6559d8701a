package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"betu_homestay/internal/adapters/observability"
	redisad "betu_homestay/internal/adapters/redis"
	"betu_homestay/internal/domain"
	"betu_homestay/internal/shared"
)

var cfg shared.Config

var rootCmd = &cobra.Command{
	Use:   "homestay",
	Short: "BeTu Homestay site server and catalog tools",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = shared.Load()
		// set global logger (console in dev, JSON otherwise)
		log.Logger = observability.NewLogger(cfg.AppEnv)
	},
	SilenceUsage: true,
}

func Execute() {
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(publishCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func openMySQL(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.Ping: %w", err)
	}
	log.Info().Msg("database connection ok")
	return db, nil
}

// openCache returns nil when Redis is unreachable; callers run uncached.
// The returned close func is always safe to call.
func openCache(ctx context.Context) (domain.Cache, func()) {
	c := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := c.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable; caching disabled")
		_ = c.Close()
		return nil, func() {}
	}
	return c, func() { _ = c.Close() }
}
