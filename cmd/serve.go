package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"stylist/internal/advisor"
	"stylist/internal/api"
	"stylist/internal/api/handler/v1handler"
	"stylist/internal/auth"
	"stylist/internal/config"
	"stylist/internal/worker"
	"stylist/pkg/embedder/encoder"
	"stylist/pkg/logger"
	"stylist/pkg/storage/minio"
	"stylist/pkg/tagger/gemini"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"riverqueue.com/riverui"
)

// getImageStore connects to the object store and makes sure the images
// bucket exists before the server starts accepting uploads.
func getImageStore(ctx context.Context, cfg *config.Config) *minio.Store {
	images, err := minio.New(minio.Options{
		Endpoint:  cfg.ObjectStore.Endpoint,
		AccessKey: cfg.ObjectStore.AccessKey,
		SecretKey: cfg.ObjectStore.SecretKey,
		Bucket:    cfg.ObjectStore.Bucket,
		UseSSL:    cfg.ObjectStore.UseSSL,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create object store client", zap.Error(err))
	}
	if err := images.EnsureBucket(ctx); err != nil {
		logger.Fatal(ctx, "could not ensure images bucket", zap.Error(err))
	}

	return images
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			images := getImageStore(ctx, cfg)

			verifier, err := auth.New(auth.Options{
				IssuerURL: cfg.Auth.IssuerURL,
				JWKSURL:   cfg.Auth.JWKSURL,
				CacheTTL:  cfg.Auth.JWKSCacheTTL,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create token verifier", zap.Error(err))
			}

			tgr, err := gemini.New(&http.Client{Timeout: cfg.Tagger.Timeout},
				cfg.Tagger.BaseURL,
				cfg.Tagger.Model,
				cfg.Tagger.APIKey)
			if err != nil {
				logger.Fatal(ctx, "could not create tagger client", zap.Error(err))
			}

			adv := advisor.New(strg,
				images,
				tgr,
				encoder.New(&http.Client{Timeout: cfg.Embedder.Timeout},
					cfg.Embedder.BaseURL,
					cfg.Embedder.Dimension),
				advisor.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, images)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			jobsUI, err := riverui.NewServer(&riverui.ServerOpts{
				Client: riverClient,
				DB:     strg.Pool,
				Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
				Prefix: "/riverui",
			})
			if err != nil {
				logger.Fatal(ctx, "could not create job queue dashboard", zap.Error(err))
			}
			if err := jobsUI.Start(ctx); err != nil {
				logger.Fatal(ctx, "could not start job queue dashboard", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps:     v1handler.Deps{Advisor: adv},
				Verifier: verifier,
				JobsUI:   jobsUI,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
