package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/postforge/postforge/internal/api"
	"github.com/postforge/postforge/internal/competitor"
	"github.com/postforge/postforge/internal/config"
	"github.com/postforge/postforge/internal/hashtag"
	"github.com/postforge/postforge/internal/hooks"
	"github.com/postforge/postforge/internal/image"
	"github.com/postforge/postforge/internal/orchestrator"
	"github.com/postforge/postforge/internal/post"
	"github.com/postforge/postforge/internal/profile"
	"github.com/postforge/postforge/internal/provider"
	"github.com/postforge/postforge/internal/simdata"
	"github.com/postforge/postforge/internal/trend"
	"github.com/postforge/postforge/internal/video"
	"github.com/postforge/postforge/internal/viral"
)

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogging(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gen := provider.NewClient(cfg.Provider)
	sim := simdata.NewSource()

	posts := post.New(gen)
	trends := trend.New(gen, sim)
	virals := viral.New(gen)
	images := image.New(gen)
	hookSvc := hooks.New(gen)
	hashtags := hashtag.New(gen)
	profiles := profile.New(gen)
	competitors := competitor.New(gen)
	videos := video.New(gen, hashtags)

	workflows := orchestrator.New(orchestrator.Deps{
		Gen:        gen,
		Viral:      virals,
		Hooks:      hookSvc,
		Posts:      posts,
		Hashtags:   hashtags,
		Images:     images,
		Profiles:   profiles,
		Competitor: competitors,
		Trends:     trends,
	})

	handler := api.NewHandler(api.Deps{
		Server:     cfg.Server,
		Posts:      posts,
		Trends:     trends,
		Viral:      virals,
		Images:     images,
		Hooks:      hookSvc,
		Hashtags:   hashtags,
		Profiles:   profiles,
		Competitor: competitors,
		Videos:     videos,
		Workflows:  workflows,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("postforge listening", "addr", addr, "env", cfg.Server.Env, "model", cfg.Provider.Model)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
