package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpadp "donation-inventory/internal/adapter/http"
	"donation-inventory/internal/adapter/repository/relational"
	"donation-inventory/internal/config"
	"donation-inventory/internal/infrastructure/cache"
	"donation-inventory/internal/infrastructure/db"
	"donation-inventory/internal/infrastructure/logging"
	"donation-inventory/internal/usecase/donation"

	"github.com/spf13/cobra"
)

func NewServeCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the donation HTTP API.

The donations table is created if missing. Idempotent replay is enabled
when REDIS_ADDR is set.

Example:
  donations serve --port 9000
  donations serve --db-driver mysql`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.Port, "port", "", "listen port, overrides APP_PORT")
	return cmd
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	cfg := config.Load()
	if opts.Port != "" {
		cfg.AppPort = opts.Port
	}
	if opts.DBDriver != "" {
		cfg.DBDriver = opts.DBDriver
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(ctx context.Context, opts *RootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	log := logging.New(cfg.Development())

	gdb, err := db.OpenGorm(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("db connect")
		return err
	}
	if sqlDB, err := gdb.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := db.Migrate(gdb); err != nil {
		log.Error().Err(err).Msg("db migrate")
		return err
	}

	rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Error().Err(err).Str("addr", cfg.RedisAddr).Msg("redis connect")
		return err
	}
	if rdb != nil {
		defer rdb.Close()
		log.Info().Str("addr", cfg.RedisAddr).Msg("idempotent replay enabled")
	}

	uc := donation.NewUsecase(relational.NewDonationRepository(gdb), relational.NewGormUoW(gdb))
	e := httpadp.NewRouter(httpadp.NewHandler(), httpadp.NewDonationHandler(uc, log), httpadp.RouterConfig{
		Logger:           log,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		Redis:            rdb,
		IdempotencyTTL:   time.Duration(cfg.IdempTTLSecs) * time.Second,
	})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.AppPort
		log.Info().Str("addr", addr).Str("driver", cfg.DBDriver).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
