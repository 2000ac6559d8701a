package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	server "betu_homestay/internal/adapters/http_server"
	"betu_homestay/internal/adapters/observability"
	"betu_homestay/internal/app"
	"betu_homestay/internal/clock"
	"betu_homestay/internal/content"
	"betu_homestay/internal/domain"
	"betu_homestay/internal/session"
	"betu_homestay/internal/shared"
	mysqlrepo "betu_homestay/internal/storage/mysql"
)

const reapEvery = time.Minute

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page, catalog API and view sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				cfg.HTTPAddr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}

func serve(ctx context.Context) error {
	site := content.Site()

	var repo domain.CatalogRepository = content.Static{}
	rooms := content.Rooms
	if cfg.ContentSource == shared.SourceMySQL {
		db, err := openMySQL(ctx, cfg.MySQLDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		mr := mysqlrepo.New(db)
		if rooms, err = mr.ListRooms(ctx); err != nil {
			return err
		}
		repo = mr
	}
	// a broken catalog is fatal at startup
	if err := content.Validate(rooms, site.Slides, site.Navigation); err != nil {
		return err
	}

	reg := observability.InitRegistry()
	if err := observability.Serve(cfg.MetricsAddr, reg); err != nil {
		return err
	}

	cache, closeCache := openCache(ctx)
	defer closeCache()
	q := app.NewQueryService(repo, cache, cfg.CacheTTL, site)

	store := session.NewStore(clock.Real(), cfg.SessionTTL, site, rooms, session.Config{
		SlideInterval: cfg.SlideInterval,
		ResumeDelay:   cfg.AutoplayResume,
		SettleDelay:   cfg.NavSettle,
		HeaderOffset:  cfg.NavOffset,
		MaxSessions:   cfg.MaxSessions,
	})
	go store.Run(ctx, reapEvery)

	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Q:        q,
		Sessions: store,
		Assets:   http.FileServer(http.Dir(cfg.AssetsDir)),
	})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		// sessions close first so open streams end with a "closed" event
		store.Shutdown()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Str("source", cfg.ContentSource).
		Int("rooms", len(rooms)).
		Msg("homestay listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
