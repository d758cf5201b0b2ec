package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rohits-web03/filehub/internal/api"
	"github.com/rohits-web03/filehub/internal/api/handlers"
	"github.com/rohits-web03/filehub/internal/api/services"
	"github.com/rohits-web03/filehub/internal/auth"
	"github.com/rohits-web03/filehub/internal/config"
	"github.com/rohits-web03/filehub/internal/repositories"
	"github.com/rohits-web03/filehub/internal/utils"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd)
		},
	}
}

func serve(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	proxies, err := utils.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		return err
	}

	db, err := repositories.ConnectDatabase(cfg.DB, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := repositories.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	presigner, err := repositories.NewPresigner(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to set up object storage: %w", err)
	}

	h := newHandler(cfg, db, presigner)
	h.Proxies = proxies

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.NewRouter(h),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting FileHub server", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("could not listen on port %s: %w", cfg.Port, err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func newHandler(cfg *config.Config, db *gorm.DB, presigner repositories.ObjectPresigner) *handlers.Handler {
	return &handlers.Handler{
		Files:       services.NewFileService(db, cfg.StrictOwnership),
		Tags:        services.NewTagService(db),
		Uploads:     services.NewUploadService(presigner, cfg.Storage.UploadURLTTL, cfg.Storage.DefaultDir),
		Users:       services.NewUserService(db),
		Tokens:      auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL),
		OAuth:       services.NewGoogleOAuthConfig(cfg.Google),
		Cfg:         cfg,
		UserInfoURL: services.GoogleUserInfoURL,
	}
}
