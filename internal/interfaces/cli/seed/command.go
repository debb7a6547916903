package seed

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/infrastructure/auth"
	"github.com/orris-inc/helpdesk/internal/infrastructure/config"
	"github.com/orris-inc/helpdesk/internal/infrastructure/database"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/seeds"
	"github.com/orris-inc/helpdesk/internal/infrastructure/repository"
	"github.com/orris-inc/helpdesk/internal/shared/db"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

var (
	env        string
	configPath string
	seedFile   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the bootstrap admin and lookup values",
		Long:  `Create the admin account and the statuses, products, services and roles listed in a YAML seed file. Existing rows are left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&seedFile, "file", "f", "configs/seed.yaml", "Path to the seed file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFrom(viper.New(), env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	f, err := seeds.LoadFile(seedFile)
	if err != nil {
		return err
	}

	gdb, err := database.Open(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close(gdb, log)

	seeder := seeds.NewSeeder(
		repository.NewUserRepository(gdb, log),
		repository.NewLookupRepository(gdb, log),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		db.NewTransactionManager(gdb),
		cfg.Auth.AdminServices,
		log,
	)

	result, err := seeder.Run(cmd.Context(), f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.AdminCreated {
		fmt.Fprintf(out, "Created admin %s (id %d)\n", f.Admin.Email, result.AdminID)
	} else {
		fmt.Fprintf(out, "Admin %s already exists (id %d)\n", f.Admin.Email, result.AdminID)
	}
	for _, kind := range catalog.Kinds {
		if n := result.Created[kind]; n > 0 {
			fmt.Fprintf(out, "Created %d %s\n", n, kind)
		}
	}
	fmt.Fprintf(out, "Skipped %d existing entries\n", result.Skipped)
	return nil
}
