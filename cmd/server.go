package cmd

import (
	"context"
	"errors"
	"log"
	httpNet "net/http"
	"os"
	"os/signal"
	"syscall"

	"stockwise/internal/delivery/http"
	"stockwise/internal/repository"
	"stockwise/internal/risk"
	"stockwise/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the stockwise HTTP API",
	Run:   Start,
}

func Start(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		log.Fatalf("Failed to create app dependency: %v", err)
	}

	repo, err := repository.NewRepository(appDep.cfg, appDep.cache, appDep.log)
	if err != nil {
		log.Fatalf("Failed to create repository: %v", err)
	}

	services := service.NewService(appDep.log, repo, func(sessionID string, result risk.Result) {
		appDep.log.Debug("risk profile ready for chat",
			zap.String("session_id", sessionID),
			zap.String("profile", string(result.Profile)))
	})
	httpHandler := http.NewHttpAPIHandler(ctx, appDep.echo, appDep.log, appDep.validator, services)
	apiServer := NewHTTPServer(ctx, appDep, httpHandler)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := apiServer.Start(); err != nil && !errors.Is(err, httpNet.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		appDep.log.Info("Shutting down gracefully...")
		return apiServer.Stop()
	})

	if err := g.Wait(); err != nil {
		appDep.log.Error("HTTP server exited with error", zap.Error(err))
	}

	if err := appDep.Close(); err != nil {
		log.Fatalf("Failed to close app dependency: %v", err)
	}
}
