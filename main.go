package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"vscode2helix/config"
	"vscode2helix/converter"
	converrors "vscode2helix/errors"
	"vscode2helix/logger"
	"vscode2helix/storage"
	"vscode2helix/watch"
)

var appVersion = "0.2.0"

type rootFlags struct {
	configPath string
	logLevel   string
}

type convertFlags struct {
	input  string
	output string
	watch  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	conv := &convertFlags{}

	cmd := &cobra.Command{
		Use:           "vscode2helix",
		Short:         "vscode2helix – convert VS Code color themes to Helix themes",
		Long:          "Convert a VS Code theme JSON file (comments allowed) into a Helix theme TOML file, or serve conversions over HTTP.",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			return runConvert(cmd, cfg, log, conv)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default: ./"+config.DefaultPath+" if present)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")

	cmd.Flags().StringVarP(&conv.input, "input", "i", "", "The VS Code theme input JSON file path (- for stdin)")
	cmd.Flags().StringVarP(&conv.output, "output", "o", "", "The Helix theme output TOML file path (- for stdout; default: input with .toml extension)")
	cmd.Flags().BoolVarP(&conv.watch, "watch", "w", false, "Keep running and convert again whenever the input changes")
	_ = cmd.MarkFlagRequired("input")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vscode2helix %s\n", appVersion)
		},
	}
}

// setup loads configuration and builds the logger shared by every command.
func setup(cmd *cobra.Command, flags *rootFlags) (config.Config, *logger.Logger, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.LogLevel,
		HumanReadable: cfg.LogHuman,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("create logger: %w", err)
	}
	return cfg, log, nil
}

func runConvert(cmd *cobra.Command, cfg config.Config, log *logger.Logger, conv *convertFlags) error {
	output := conv.output
	if output == "" {
		output = storage.OutputPath(conv.input)
	}
	store := storage.New(cmd.InOrStdin(), cmd.OutOrStdout())

	convertOnce := func(context.Context) error {
		return convertFile(store, conv.input, output, log)
	}

	if !conv.watch {
		return convertOnce(cmd.Context())
	}
	if conv.input == storage.Stdio {
		return fmt.Errorf("--watch needs a file, not stdin")
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return watch.New(conv.input, cfg.WatchInterval, convertOnce, log).Run(ctx)
}

// convertFile reads input, converts it, and writes output. Nothing is written
// when reading or conversion fails.
func convertFile(store *storage.Store, input, output string, log *logger.Logger) error {
	data, err := store.Read(input)
	if err != nil {
		return err
	}

	res, err := converter.Document(data)
	if err != nil {
		return err
	}

	if err := store.Write(output, res.TOML); err != nil {
		return err
	}

	log.WithFields(map[string]any{
		"input":  input,
		"output": output,
		"theme":  res.Name,
		"keys":   res.Keys,
		"size":   humanize.Bytes(uint64(len(res.TOML))),
	}).Info("converted theme")
	return nil
}

func main() {
	ctx := context.Background()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(converrors.ExitCode(err))
	}
}
