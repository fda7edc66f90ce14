package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"atende/internal/infrastructure/auth"
	"atende/internal/infrastructure/config"
	"atende/internal/infrastructure/database"
	"atende/internal/infrastructure/migration"
	"atende/internal/infrastructure/persistence/seeds"
	"atende/internal/shared/biztime"
	"atende/internal/shared/logger"
)

var (
	env      string
	steps    int
	seedFile string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(func(m *migration.Manager) error {
				return m.Up()
			})
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(func(m *migration.Manager) error {
				return m.Down(steps)
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(func(m *migration.Manager) error {
				return m.Status()
			})
		},
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(func(m *migration.Manager) error {
				v, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Println(v)
				return nil
			})
		},
	}

	seed := &cobra.Command{
		Use:   "seed",
		Short: "Install the default workspace and initial owner admin",
		RunE:  runSeed,
	}
	seed.Flags().StringVar(&seedFile, "file", "configs/seeds.yaml", "Path to the seed fixture")

	cmd.AddCommand(up, down, status, version, seed)
	return cmd
}

func setup() (*config.Config, logger.Interface, error) {
	if envVar := os.Getenv("ATENDE_ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Business.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

func withManager(fn func(*migration.Manager) error) error {
	_, log, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(migration.NewManager(database.Get(), log))
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	seeder := seeds.NewSeeder(database.Get(), hasher, log)

	if err := seeder.Run(seedFile); err != nil {
		return fmt.Errorf("failed to apply seeds: %w", err)
	}

	log.Infow("seeds applied", "file", seedFile)
	return nil
}
