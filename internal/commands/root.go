package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/ledger_engine/internal/cache"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/platform/config"
	"github.com/SscSPs/ledger_engine/internal/repositories/database/pgsql"
	"github.com/SscSPs/ledger_engine/internal/repositories/memory"
	"github.com/SscSPs/ledger_engine/migrations"
	"github.com/SscSPs/ledger_engine/pkg/database"
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	serveCmd := newServeCommand()

	rootCmd := &cobra.Command{
		Use:     "ledgerd",
		Short:   "Double-entry ledger engine",
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         serveCmd.RunE, // serve is the default command
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
			slog.SetDefault(logger)
		},
	}

	rootCmd.AddCommand(
		serveCmd,
		newMigrateCommand(),
		newCreateCommand(),
		newTemplatesCommand(),
		newTokenCommand(),
	)

	return rootCmd
}

// openStore connects the configured backend. Postgres is migrated first
// when RUN_MIGRATIONS is set.
func openStore(ctx context.Context, cfg *config.Config) (portsrepo.Store, error) {
	if cfg.Store == config.StoreMemory {
		slog.Warn("Using the in-memory store, data is lost on exit.")
		return memory.NewStore(), nil
	}

	if cfg.RunMigrations {
		slog.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, migrations.FS, database.MigrateUp); err != nil {
			return nil, fmt.Errorf("running migrations: %w", err)
		}
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	slog.Info("Database connection pool established.")
	return pgsql.NewStore(pool), nil
}

// openRulesCache shares the rules through redis when REDIS_URL is set. The
// returned close func is never nil.
func openRulesCache(ctx context.Context, cfg *config.Config) (portsrepo.RulesCache, func(), error) {
	if cfg.RedisURL == "" {
		return cache.NewMemoryRulesCache(cfg.RulesCacheTTL), func() {}, nil
	}
	client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("Rules cache backed by redis.")
	closeFn := func() {
		if err := client.Close(); err != nil {
			slog.Error("Error closing redis client", slog.String("error", err.Error()))
		}
	}
	return cache.NewRedisRulesCache(client, cache.DefaultRulesKey, cfg.RulesCacheTTL), closeFn, nil
}
