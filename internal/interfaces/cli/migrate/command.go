package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orris-inc/helpdesk/internal/infrastructure/migration"
	"github.com/orris-inc/helpdesk/internal/interfaces/cli/cmdutil"
)

var (
	env     string
	name    string
	dir     string
	steps   int
	version int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
		newForceCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new sequential goose SQL migration for the configured driver.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Target directory (default: scripts directory of the configured driver)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newForceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "force",
		Short: "Force the recorded migration version",
		Long:  `Set the recorded version and clear the dirty flag. Only available with the golang_migrate strategy.`,
		RunE:  runForce,
	}

	cmd.Flags().IntVarP(&version, "version", "v", 0, "Version to record (required)")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

func setup() (*cmdutil.Env, *migration.Manager, error) {
	e, err := cmdutil.LoadWithDatabase(env)
	if err != nil {
		return nil, nil, err
	}

	manager, err := migration.NewManager(&e.Config.Database, e.Log)
	if err != nil {
		e.Close()
		return nil, nil, err
	}
	return e, manager, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	e, manager, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	e.Log.Infow("running up migrations", "environment", env, "strategy", manager.GetStrategy().GetName())

	if err := manager.Migrate(e.DB); err != nil {
		e.Log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	e.Log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	e, manager, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	e.Log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := manager.Down(e.DB, steps); err != nil {
		e.Log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	e.Log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	e, manager, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	v, err := manager.Version(e.DB)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Strategy:        %s\n", manager.GetStrategy().GetName())
	fmt.Fprintf(out, "  Current Version: %d\n\n", v)

	if err := manager.Status(e.DB); err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	e, err := cmdutil.Load(env)
	if err != nil {
		return err
	}

	manager, err := migration.NewManager(&e.Config.Database, e.Log)
	if err != nil {
		return err
	}

	target := dir
	if target == "" {
		target = migration.DefaultScriptsDir + "/" + e.Config.Database.Driver
	}

	if err := manager.Create(target, name); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	e.Log.Infow("migration created", "dir", target, "name", name)
	return nil
}

func runForce(cmd *cobra.Command, args []string) error {
	e, manager, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	strategy, ok := manager.GetStrategy().(*migration.GolangMigrateStrategy)
	if !ok {
		return fmt.Errorf("force is only supported with the golang_migrate strategy")
	}

	if err := strategy.Force(e.DB, version); err != nil {
		return fmt.Errorf("failed to force version: %w", err)
	}

	e.Log.Infow("migration version forced", "version", version)
	return nil
}
