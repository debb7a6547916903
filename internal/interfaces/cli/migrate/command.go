package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/infrastructure/config"
	"github.com/orris-inc/helpdesk/internal/infrastructure/database"
	"github.com/orris-inc/helpdesk/internal/infrastructure/migration"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

const scriptsRoot = "./internal/infrastructure/migration/scripts"

var (
	env        string
	configPath string
	name       string
	steps      int
	strategy   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", migration.StrategyGoose, "Migration strategy (goose, auto)")

	return cmd
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
		Long:  `Create a new SQL migration file for the configured database driver.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

type migrateEnv struct {
	cfg *config.Config
	db  *gorm.DB
	log logger.Interface
}

func (e *migrateEnv) close() {
	if e.db != nil {
		_ = database.Close(e.db, e.log)
	}
}

func initEnv(openDB bool) (*migrateEnv, error) {
	cfg, err := config.LoadFrom(viper.New(), env, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	e := &migrateEnv{cfg: cfg, log: logger.NewLogger()}
	if !openDB {
		return e, nil
	}

	e.db, err = database.Open(&cfg.Database, e.log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return e, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	e, err := initEnv(true)
	if err != nil {
		return err
	}
	defer e.close()

	e.log.Infow("running up migrations", "environment", env, "strategy", strategy)

	manager, err := migration.NewManager(strategy, e.cfg.Database.Driver, e.log)
	if err != nil {
		return err
	}
	if err := manager.Migrate(e.db); err != nil {
		return err
	}

	e.log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	e, err := initEnv(true)
	if err != nil {
		return err
	}
	defer e.close()

	e.log.Infow("running down migrations", "environment", env, "steps", steps)

	goose, err := migration.NewGooseStrategy(e.cfg.Database.Driver, e.log)
	if err != nil {
		return err
	}
	if err := goose.MigrateDown(e.db, steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	e.log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	e, err := initEnv(true)
	if err != nil {
		return err
	}
	defer e.close()

	goose, err := migration.NewGooseStrategy(e.cfg.Database.Driver, e.log)
	if err != nil {
		return err
	}

	version, err := goose.GetVersion(e.db)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Driver:          %s\n", e.cfg.Database.Driver)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := goose.Status(e.db); err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	e, err := initEnv(false)
	if err != nil {
		return err
	}

	goose, err := migration.NewGooseStrategy(e.cfg.Database.Driver, e.log)
	if err != nil {
		return err
	}

	dir := filepath.Join(scriptsRoot, goose.Dir())
	if err := goose.Create(dir, name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created in %s\n", name, dir)
	return nil
}
