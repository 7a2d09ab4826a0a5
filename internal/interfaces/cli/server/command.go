package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/orris-inc/helpdesk/internal/application/user/usecases"
	"github.com/orris-inc/helpdesk/internal/infrastructure/auth"
	"github.com/orris-inc/helpdesk/internal/infrastructure/migration"
	"github.com/orris-inc/helpdesk/internal/infrastructure/repository"
	"github.com/orris-inc/helpdesk/internal/interfaces/cli/cmdutil"
	httpRouter "github.com/orris-inc/helpdesk/internal/interfaces/http"
	"github.com/orris-inc/helpdesk/internal/shared/version"
)

var (
	env                string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the helpdesk HTTP API with the configuration for the given environment.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply pending database migrations on startup")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("HELPDESK_ENV"); envVar != "" {
		env = envVar
	}

	e, err := cmdutil.LoadWithDatabase(env)
	if err != nil {
		return err
	}
	defer e.Close()

	cfg, log := e.Config, e.Log
	log.Infow("starting server",
		"environment", env,
		"version", version.String(),
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := handleMigrations(e); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	if err := bootstrapAdmin(cmd.Context(), e); err != nil {
		return fmt.Errorf("failed to bootstrap admin account: %w", err)
	}

	router, err := httpRouter.NewRouter(e.DB, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	defer router.Shutdown()

	srv := router.NewServer()
	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server starting", "address", srv.Addr, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(e *cmdutil.Env) error {
	if skipMigrationCheck {
		e.Log.Infow("skipping migration check")
		return nil
	}

	manager, err := migration.NewManager(&e.Config.Database, e.Log)
	if err != nil {
		return err
	}

	if autoMigrate {
		if env == "production" {
			e.Log.Warnw("auto-migration is enabled in production environment")
		}
		e.Log.Infow("running migrations", "strategy", manager.GetStrategy().GetName())
		return manager.Migrate(e.DB)
	}

	v, err := manager.Version(e.DB)
	if err != nil {
		e.Log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	e.Log.Infow("current migration version", "version", v)
	return nil
}

// bootstrapAdmin creates or promotes the configured admin account. It is a
// no-op unless both email and password are configured.
func bootstrapAdmin(ctx context.Context, e *cmdutil.Env) error {
	admin := e.Config.Auth.BootstrapAdmin
	if !admin.Enabled() {
		return nil
	}

	uc := usecases.NewEnsureAdminUseCase(
		repository.NewUserRepository(e.DB, e.Log),
		auth.NewBcryptPasswordHasher(e.Config.Auth.Password.BcryptCost),
		e.Log,
	)
	result, err := uc.Execute(ctx, usecases.EnsureAdminCommand{Email: admin.Email, Password: admin.Password})
	if err != nil {
		return err
	}

	e.Log.Infow("bootstrap admin ready",
		"user_id", result.User.ID,
		"created", result.Created,
		"promoted", result.Promoted)
	return nil
}
