package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Tiliavir/studylog/internal/clock"
	"github.com/Tiliavir/studylog/internal/config"
	"github.com/Tiliavir/studylog/internal/repository"
	"github.com/Tiliavir/studylog/internal/storage"
)

var (
	configPath string
	verbose    bool
)

// app carries what every command needs once configuration is loaded.
type app struct {
	cfg   config.Config
	log   *zap.Logger
	store storage.Store
	repo  *repository.Repository
	clock clock.Clock
}

var env *app

var rootCmd = &cobra.Command{
	Use:   "studylog",
	Short: "studylog – log study sessions and track your streak",
	Long: `studylog records dated study sessions (problems solved, hours, topic,
category, notes) and summarises the last seven days and your daily streak.
Entries are stored locally in ~/.studylog/ unless configured otherwise.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Finalizers run even when RunE fails, unlike PersistentPostRun.
	cobra.OnFinalize(teardown)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.studylog/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
}

// setup loads configuration, builds the logger and opens the entry store.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel, verbose)
	if err != nil {
		return err
	}

	store, err := storage.Open(storage.Options{Backend: cfg.Backend, Dir: cfg.DataDir}, logger)
	if err != nil {
		return err
	}
	logger.Debug("store opened",
		zap.String("backend", cfg.Backend),
		zap.String("dir", cfg.DataDir))

	env = &app{
		cfg:   cfg,
		log:   logger,
		store: store,
		repo:  repository.New(store, logger),
		clock: clock.System{},
	}
	return nil
}

// teardown closes the store opened by setup and flushes the logger.
func teardown() {
	if env == nil {
		return
	}
	if err := env.store.Close(); err != nil {
		env.log.Warn("closing store", zap.Error(err))
	}
	_ = env.log.Sync()
	env = nil
}

// newLogger builds a console logger on stderr at the given level.
func newLogger(level string, debug bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if debug {
		lvl = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
