package shell

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hookRegistrations = []string{"__burrow_hook", "PROMPT_COMMAND", "precmd_functions", "chpwd_functions"}

func TestParseShell(t *testing.T) {
	tests := []struct {
		name    string
		want    Shell
		wantErr bool
	}{
		{"bash", Bash, false},
		{"zsh", Zsh, false},
		{"fish", 0, true},
		{"Bash", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseShell(tt.name)
			if tt.wantErr {
				var unsupported *UnsupportedShellError
				require.True(t, errors.As(err, &unsupported))
				assert.Equal(t, tt.name, unsupported.Shell)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.String())
		})
	}
}

func TestParseHook(t *testing.T) {
	tests := []struct {
		input   string
		want    Hook
		wantErr bool
	}{
		{"", HookNone, false},
		{"none", HookNone, false},
		{"prompt", HookPrompt, false},
		{"PWD", HookPwd, false},
		{" pwd ", HookPwd, false},
		{"chdir", HookNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHook(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHookString(t *testing.T) {
	assert.Equal(t, []string{"none", "prompt", "pwd"}, HookNames())
	assert.Equal(t, "unknown", Hook(9).String())
	assert.Equal(t, "unknown", Shell(9).String())
	assert.Equal(t, []string{"bash", "zsh"}, Names())
}

func TestRender_DefaultsWithoutHook(t *testing.T) {
	bash, err := Render("bash", Options{})
	require.NoError(t, err)
	zsh, err := Render("zsh", Options{})
	require.NoError(t, err)

	assert.NotEmpty(t, bash)
	assert.NotEmpty(t, zsh)
	assert.NotEqual(t, bash, zsh)

	for name, script := range map[string]string{"bash": bash, "zsh": zsh} {
		assert.Contains(t, script, "alias burrow=__burrow_run", name)
		assert.Contains(t, script, DirectiveFileEnv, name)
		for _, reg := range hookRegistrations {
			assert.NotContains(t, script, reg, name)
		}
	}
}

func TestRender_BashPwdHookWithEcho(t *testing.T) {
	script, err := Render("bash", Options{Cmd: "j", Hook: HookPwd, Echo: true})
	require.NoError(t, err)

	assert.Contains(t, script, "alias j=__burrow_run")
	assert.Contains(t, script, "function __burrow_hook()")
	assert.Contains(t, script, `"${__burrow_oldpwd:-}" == "${PWD}"`)
	assert.Contains(t, script, "PROMPT_COMMAND=\"__burrow_hook;")
	assert.Contains(t, script, `\builtin echo "j: ${PWD}"`)
	assert.NotContains(t, script, "alias burrow=")
}

func TestRender_BashPromptHook(t *testing.T) {
	script, err := Render("bash", Options{Hook: HookPrompt})
	require.NoError(t, err)

	assert.Contains(t, script, "PROMPT_COMMAND")
	assert.NotContains(t, script, "__burrow_oldpwd:-")
	assert.NotContains(t, script, "echo")
}

func TestRender_ZshHooks(t *testing.T) {
	prompt, err := Render("zsh", Options{Hook: HookPrompt})
	require.NoError(t, err)
	assert.Contains(t, prompt, "precmd_functions+=(__burrow_hook)")
	assert.NotContains(t, prompt, "chpwd_functions")

	pwd, err := Render("zsh", Options{Cmd: "mk", Hook: HookPwd, Echo: true})
	require.NoError(t, err)
	assert.Contains(t, pwd, "chpwd_functions+=(__burrow_hook)")
	assert.NotContains(t, pwd, "precmd_functions")
	assert.Contains(t, pwd, "alias mk=__burrow_run")
	assert.Contains(t, pwd, `\builtin echo "mk: ${PWD}"`)
}

func TestRender_UnsupportedShell(t *testing.T) {
	script, err := Render("fish", Options{Cmd: "j", Hook: HookPwd, Echo: true})

	assert.Empty(t, script)
	var unsupported *UnsupportedShellError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "fish", unsupported.Shell)
	assert.Contains(t, err.Error(), "unsupported shell: fish")
}

func TestRenderFrom_Overrides(t *testing.T) {
	dir := t.TempDir()
	yamlOverride := "name: custom\ndescription: test\ntemplate: |\n  alias {{ Default .Cmd .Bin }}=custom\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bash.yaml"), []byte(yamlOverride), 0o644))

	script, err := RenderFrom("bash", Options{Cmd: "j"}, dir)
	require.NoError(t, err)
	assert.Equal(t, "alias j=custom\n", script)

	// No zsh override in dir: the built-in template is used.
	zsh, err := RenderFrom("zsh", Options{}, dir)
	require.NoError(t, err)
	builtin, err := Render("zsh", Options{})
	require.NoError(t, err)
	assert.Equal(t, builtin, zsh)
}

func TestRenderFrom_VerbatimOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zsh.yaml"), []byte("echo {{ .Hook }}"), 0o644))

	script, err := RenderFrom("zsh", Options{Hook: HookPrompt}, dir)
	require.NoError(t, err)
	assert.Equal(t, "echo prompt", script)
}

func TestRenderFrom_BrokenTemplate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bash.yaml"), []byte("template: \"{{ .Nope \"\n"), 0o644))

	script, err := RenderFrom("bash", Options{}, dir)
	assert.Error(t, err)
	assert.Empty(t, script)
}

func TestTemplateRenderer_ExecutionError(t *testing.T) {
	r, err := NewTemplateRenderer(Bash, "{{ .Missing }}")
	require.NoError(t, err)

	out, err := r.Render(Options{})
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestValidateCommandName(t *testing.T) {
	for _, name := range []string{"", "j", "mk_dir", "bw-2", "_b"} {
		assert.NoError(t, ValidateCommandName(name), name)
	}
	for _, name := range []string{"rm -rf", "2x", "a;b", "$(x)", "-x"} {
		assert.Error(t, ValidateCommandName(name), name)
	}
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "burrow", Default("", "burrow"))
	assert.Equal(t, "burrow", Default("   ", "burrow"))
	assert.Equal(t, "j", Default("j", "burrow"))
}

func TestRender_RejectsInvalidCommandName(t *testing.T) {
	for _, sh := range Names() {
		t.Run(sh, func(t *testing.T) {
			script, err := Render(sh, Options{Cmd: "x; touch /tmp/owned #", Hook: HookPwd})
			assert.Error(t, err)
			assert.Empty(t, script)
		})
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bash.yaml"), []byte("echo {{ .Cmd }}"), 0o644))
	script, err := RenderFrom("bash", Options{Cmd: "$(id)"}, dir)
	assert.Error(t, err)
	assert.Empty(t, script)
}

func TestTemplateRenderer_HookFlags(t *testing.T) {
	r, err := NewTemplateRenderer(Zsh, "{{ .OnPrompt }} {{ .OnPwd }}")
	require.NoError(t, err)

	tests := []struct {
		hook     Hook
		expected string
	}{
		{HookNone, "false false"},
		{HookPrompt, "true false"},
		{HookPwd, "false true"},
	}
	for _, tt := range tests {
		t.Run(tt.hook.String(), func(t *testing.T) {
			out, err := r.Render(Options{Hook: tt.hook})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	out, err := r.Render(Options{Hook: Hook(9)})
	assert.Error(t, err)
	assert.Empty(t, out)
}
