package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/samzong/burrow/internal/shell"
	"github.com/samzong/burrow/internal/streams"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DefaultScripts(t *testing.T) {
	for _, sh := range shell.Names() {
		t.Run(sh, func(t *testing.T) {
			out, errOut, err := execute(t, "init", sh)
			require.NoError(t, err)
			assert.Contains(t, out, "alias burrow=__burrow_run")
			assert.NotContains(t, out, "__burrow_hook")
			assert.Empty(t, errOut, "no hint when stdout is not a terminal")
		})
	}
}

func TestInit_Flags(t *testing.T) {
	out, _, err := execute(t, "init", "bash", "--cmd", "j", "--hook", "pwd", "--echo")
	require.NoError(t, err)
	assert.Contains(t, out, "alias j=__burrow_run")
	assert.Contains(t, out, "PROMPT_COMMAND")
	assert.Contains(t, out, `\builtin echo "j: ${PWD}"`)
}

func TestInit_ConfigDefaultsAndFlagOverride(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("init:\n  cmd: mk\n  hook: prompt\n"), 0o644))

	out, _, err := execute(t, "--config", cfg, "init", "zsh")
	require.NoError(t, err)
	assert.Contains(t, out, "alias mk=__burrow_run")
	assert.Contains(t, out, "precmd_functions+=(__burrow_hook)")

	out, _, err = execute(t, "--config", cfg, "init", "zsh", "--hook", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "alias mk=__burrow_run")
	assert.NotContains(t, out, "precmd_functions")
}

func TestInit_UnsupportedShell(t *testing.T) {
	out, _, err := execute(t, "init", "fish")
	var unsupported *shell.UnsupportedShellError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "fish", unsupported.Shell)
	assert.Empty(t, out)
}

func TestInit_InvalidHook(t *testing.T) {
	out, _, err := execute(t, "init", "bash", "--hook", "sometimes")
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestInit_InvalidCommandName(t *testing.T) {
	out, _, err := execute(t, "init", "bash", "--cmd", "rm -rf")
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestInit_RequiresShell(t *testing.T) {
	_, _, err := execute(t, "init")
	assert.Error(t, err)
}

func TestRunInit_TemplatesDir(t *testing.T) {
	dir := t.TempDir()
	override := "template: |\n  alias {{ Default .Cmd .Bin }}=mine\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bash.yaml"), []byte(override), 0o644))

	var out, errOut bytes.Buffer
	err := runInit(&out, &errOut, "bash", shell.Options{Cmd: "j"}, dir)
	require.NoError(t, err)
	assert.Equal(t, "alias j=mine\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRunInit_WriteFailure(t *testing.T) {
	var errOut bytes.Buffer
	err := runInit(failWriter{}, &errOut, "zsh", shell.Options{}, "")
	assert.Error(t, err)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestRunInit_HintOnlyOnTerminal(t *testing.T) {
	orig := newOut
	defer func() { newOut = orig }()

	tests := []struct {
		name     string
		terminal bool
	}{
		{"terminal", true},
		{"pipe", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newOut = func(w io.Writer) *streams.Out {
				o := streams.NewOut(w)
				o.SetIsTerminal(tt.terminal)
				return o
			}

			var out, errOut bytes.Buffer
			require.NoError(t, runInit(&out, &errOut, "zsh", shell.Options{}, ""))
			assert.Contains(t, out.String(), "alias burrow=__burrow_run")
			assert.NotContains(t, out.String(), "To enable burrow, add this")
			if tt.terminal {
				assert.Contains(t, errOut.String(), `eval "$(burrow init zsh)"`)
			} else {
				assert.Empty(t, errOut.String())
			}
		})
	}
}
