package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samzong/burrow/internal/config"
	"github.com/samzong/burrow/internal/create"
	"github.com/samzong/burrow/internal/logging"
	"github.com/samzong/burrow/internal/shell"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	debug      bool
	verbose    bool
	knownFiles bool
	changeDir  bool
	configErr  error
	rootCtx    = context.Background()
	rootCmd    = &cobra.Command{
		Use:   "burrow [flags] PATH...",
		Short: "burrow - create files and directories in one go",
		Long: `burrow creates every path it is given. A path whose last segment has an
extension (file.txt, .env.local) becomes an empty file, anything else becomes a
directory. Missing parent directories are created along the way.

Use "burrow -- PATH" to create a path that collides with a subcommand name.`,
		Version: fmt.Sprintf("%s (built at %s)", Version, BuildTime),
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configErr != nil {
				return fmt.Errorf("configuration error: %w", configErr)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runCreate(cmd, args)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

// SetContext sets the context used for command execution.
func SetContext(ctx context.Context) {
	rootCtx = ctx
}

func Execute() error {
	return rootCmd.ExecuteContext(rootCtx)
}

// RootCmd returns the root command, used by the man page generator.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Configuration file path (default is $XDG_CONFIG_HOME/burrow/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log diagnostics to stderr")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Describe each created path instead of printing a blank line")
	rootCmd.Flags().BoolVar(&knownFiles, "known-files", false,
		"Create well-known extensionless names (Makefile, Dockerfile, ...) as files")
	rootCmd.Flags().BoolVar(&changeDir, "cd", false,
		"Change into the last directory when run through the shell integration")
}

func initConfig() {
	configErr = config.InitConfig(cfgFile)
	logging.SetDebug(debug || logging.DebugFromEnv())
}

func runCreate(cmd *cobra.Command, paths []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	var lastDir string
	opts := createOptions(cmd, cfg)
	opts.OnResult = func(r create.Result) {
		if isDirectoryResult(r) {
			lastDir = r.Path
		}
	}

	if err := create.NewCreator(opts).Create(cmd.Context(), paths); err != nil {
		return err
	}

	if !changeDir || lastDir == "" {
		return nil
	}
	abs, err := filepath.Abs(lastDir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", lastDir, err)
	}
	logging.Logger.WithField("dir", abs).Debug("writing cd directive")
	return shell.ChangeDirectory(abs)
}

// createOptions merges command-line flags over the loaded configuration.
func createOptions(cmd *cobra.Command, cfg *config.Config) create.Options {
	opts := create.Options{
		Stdout:  outWriter(),
		Stderr:  errWriter(),
		Verbose: cfg.Verbose,
		Logger:  logging.Logger,
	}
	if cmd.Flags().Changed("verbose") {
		opts.Verbose = verbose
	}

	useKnown := cfg.KnownFiles
	if cmd.Flags().Changed("known-files") {
		useKnown = knownFiles
	}
	if useKnown {
		opts.KnownFiles = append(opts.KnownFiles, create.WellKnownFiles...)
	}
	opts.KnownFiles = append(opts.KnownFiles, cfg.ExtraFiles...)
	return opts
}

func isDirectoryResult(r create.Result) bool {
	switch r.Outcome {
	case create.CreatedDirectory:
		return true
	case create.AlreadyExists:
		info, err := os.Stat(r.Path)
		return err == nil && info.IsDir()
	default:
		return false
	}
}
