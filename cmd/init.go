package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/samzong/burrow/internal/config"
	"github.com/samzong/burrow/internal/shell"
	"github.com/samzong/burrow/internal/streams"
	"github.com/spf13/cobra"
)

var (
	initCmdName string
	initHook    string
	initEcho    bool
	newOut      = streams.NewOut
	initCmd     = &cobra.Command{
		Use:   "init <bash|zsh>",
		Short: "Print the shell integration script",
		Long: `Print a script that binds burrow to a shell alias and, optionally, runs a
hook on every prompt or directory change.

Add the following to your shell's rc file:

  # Bash (~/.bashrc)
  eval "$(burrow init bash)"

  # Zsh (~/.zshrc)
  eval "$(burrow init zsh)"`,
		ValidArgs:             shell.Names(),
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetConfig()
			if err != nil {
				return err
			}
			opts, err := initOptions(cmd, cfg)
			if err != nil {
				return err
			}
			return runInit(outWriter(), errWriter(), args[0], opts, cfg.TemplatesDir)
		},
	}
)

func init() {
	initCmd.Flags().StringVar(&initCmdName, "cmd", "", "Alias name bound to burrow (default \"burrow\")")
	initCmd.Flags().StringVar(&initHook, "hook", config.DefaultHook,
		"When the hook runs: "+strings.Join(shell.HookNames(), ", "))
	initCmd.Flags().BoolVar(&initEcho, "echo", false, "Echo the working directory from the hook")

	_ = initCmd.RegisterFlagCompletionFunc("hook",
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return shell.HookNames(), cobra.ShellCompDirectiveNoFileComp
		})

	rootCmd.AddCommand(initCmd)
}

// initOptions merges command-line flags over the init section of the config.
func initOptions(cmd *cobra.Command, cfg *config.Config) (shell.Options, error) {
	name, hookName, echo := cfg.Init.Cmd, cfg.Init.Hook, cfg.Init.Echo
	if cmd.Flags().Changed("cmd") {
		name = initCmdName
	}
	if cmd.Flags().Changed("hook") {
		hookName = initHook
	}
	if cmd.Flags().Changed("echo") {
		echo = initEcho
	}

	hook, err := shell.ParseHook(hookName)
	if err != nil {
		return shell.Options{}, err
	}
	return shell.Options{Cmd: strings.TrimSpace(name), Hook: hook, Echo: echo}, nil
}

func runInit(out, errOut io.Writer, shellName string, opts shell.Options, templatesDir string) error {
	script, err := shell.RenderFrom(shellName, opts, templatesDir)
	if err != nil {
		return err
	}

	stdout := newOut(out)
	if _, err := io.WriteString(stdout, script); err != nil {
		return fmt.Errorf("failed to write init script: %w", err)
	}
	if stdout.IsTerminal() {
		fmt.Fprintf(errOut, "# To enable burrow, add this to your shell config:\n#   eval \"$(burrow init %s)\"\n", shellName)
	}
	return nil
}
