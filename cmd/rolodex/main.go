// Command rolodex starts the interactive contact assistant. It wires
// configuration, logging, storage, and the REPL; every rule about contacts
// lives in the internal packages.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rolodex/internal/platform/config"
	"rolodex/internal/platform/logger"
	"rolodex/internal/storage"
	"rolodex/internal/transport/cli"
)

var (
	flagData     string
	flagStorage  string
	flagLogLevel string
	flagNoColor  bool
)

var rootCmd = &cobra.Command{
	Use:          "rolodex",
	Short:        "Personal contact assistant",
	Long:         "rolodex keeps your contacts and their birthdays in a local address book.\nRun it without arguments and type `help` at the prompt for the command list.",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagData, "data", "", "snapshot path (overrides ROLODEX_DATA_FILE)")
	rootCmd.Flags().StringVar(&flagStorage, "storage", "", "storage backend: file or sqlite (overrides ROLODEX_STORAGE)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level (overrides ROLODEX_LOG_LEVEL)")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colored output (overrides ROLODEX_NO_COLOR)")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("data") {
		cfg.DataFile = flagData
	}
	if cmd.Flags().Changed("storage") {
		cfg.Storage = flagStorage
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = flagNoColor
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	store, closeStore, err := newStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	book, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load address book: %w", err)
	}
	log.Info("address book loaded",
		zap.String("backend", cfg.Storage),
		zap.String("path", cfg.DataFile),
		zap.Int("contacts", book.Len()))

	console := cli.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.NoColor)
	handler := cli.NewHandler(book, console, log)
	if err := handler.Run(ctx); err != nil {
		return err
	}

	// The loop is done; save against a fresh context so an interrupt that
	// ended the session does not also cancel the write.
	if err := store.Save(context.Background(), book); err != nil {
		return fmt.Errorf("save address book: %w", err)
	}
	log.Info("address book saved", zap.Int("contacts", book.Len()))
	return nil
}

func newStore(cfg config.Config) (storage.Store, func(), error) {
	switch cfg.Storage {
	case config.BackendSQLite:
		db, err := storage.OpenSQLite(cfg.DataFile)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return db, func() { _ = db.Close() }, nil
	default:
		return storage.NewFile(cfg.DataFile), func() {}, nil
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
