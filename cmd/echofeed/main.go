// Command echofeed runs the terminal feed client and its maintenance tasks.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"echofeed/app"
	"echofeed/config"
	"echofeed/seed"
	"echofeed/storage"
	"echofeed/store"
	"echofeed/tui"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "echofeed",
	Short: "A social feed that lives in your terminal",
	Long: `echofeed is a single-process social feed: register, post, comment,
like, and browse your activity history. State persists to a local Redis
as JSON blobs, one key per collection.

Run without arguments to start the interactive UI.`,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := buildRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.close()

		if rt.cfg.Seed {
			if err := seed.Run(ctx, rt.store, logger); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
		}

		state := app.NewState(logger)
		return tui.Run(rt.store, state, logger)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the store with sample users and posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := buildRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()
		return seed.Run(cmd.Context(), rt.store, logger)
	},
}

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every persisted collection and the session slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("refusing to delete data without --yes")
		}
		rt, err := buildRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()
		if err := rt.adapter.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		logger.Info("store reset", zap.Strings("keys", storage.Keys))
		return nil
	},
}

// runtime bundles the dependencies shared by every command.
type runtime struct {
	cfg     *config.Config
	kv      *storage.RedisKV
	adapter *storage.Adapter
	store   *store.Store
}

func (rt *runtime) close() {
	if err := rt.kv.Close(); err != nil {
		logger.Warn("close kv", zap.Error(err))
	}
}

func buildRuntime(ctx context.Context) (*runtime, error) {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	kv := storage.NewRedisKV(storage.NewRedisClient(cfg.RedisURL))
	adapter := storage.NewAdapter(kv, logger)
	st := store.New(adapter, logger)
	st.Load(ctx)

	return &runtime{cfg: cfg, kv: kv, adapter: adapter, store: st}, nil
}

func init() {
	// Assigned here rather than in the composite literal so the closure's
	// reference to rootCmd does not form an initialization cycle.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// The interactive UI owns the terminal; keep logs out of it.
		if cmd == rootCmd {
			logger = zap.NewNop()
			return nil
		}
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm deletion")
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(resetCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
