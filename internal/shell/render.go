package shell

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Renderer produces an init script from Options.
type Renderer interface {
	Render(opts Options) (string, error)
}

// TemplateRenderer renders a text/template for one shell.
type TemplateRenderer struct {
	shell Shell
	tmpl  *template.Template
}

type scriptData struct {
	Options
	Bin          string
	DirectiveEnv string
	// Exactly one of the hook flags is set, or none for HookNone.
	OnPrompt bool
	OnPwd    bool
}

// Default returns fallback when val is blank.
func Default(val, fallback string) string {
	if strings.TrimSpace(val) == "" {
		return fallback
	}
	return val
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"Default": Default,
		"Replace": strings.ReplaceAll,
	}
}

// NewTemplateRenderer parses text as the init template for sh.
func NewTemplateRenderer(sh Shell, text string) (*TemplateRenderer, error) {
	tmpl, err := template.New(sh.String()).Funcs(funcMap()).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", sh, err)
	}
	return &TemplateRenderer{shell: sh, tmpl: tmpl}, nil
}

// Render executes the template. Options are validated first, and nothing
// is returned on failure.
func (r *TemplateRenderer) Render(opts Options) (string, error) {
	if err := ValidateCommandName(opts.Cmd); err != nil {
		return "", err
	}
	data := scriptData{
		Options:      opts,
		Bin:          DefaultCmd,
		DirectiveEnv: DirectiveFileEnv,
	}
	switch opts.Hook {
	case HookNone:
	case HookPrompt:
		data.OnPrompt = true
	case HookPwd:
		data.OnPwd = true
	default:
		return "", fmt.Errorf("invalid hook %d", int(opts.Hook))
	}
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", r.shell, err)
	}
	return buf.String(), nil
}

// RendererFor returns the renderer for sh, preferring an override from
// templatesDir when one exists.
func RendererFor(sh Shell, templatesDir string) (Renderer, error) {
	text, err := LoadTemplate(sh, templatesDir)
	if err != nil {
		return nil, err
	}
	return NewTemplateRenderer(sh, text)
}

// Render renders the built-in init script for the named shell.
func Render(name string, opts Options) (string, error) {
	return RenderFrom(name, opts, "")
}

// RenderFrom is Render with template overrides looked up in templatesDir.
func RenderFrom(name string, opts Options, templatesDir string) (string, error) {
	sh, err := ParseShell(name)
	if err != nil {
		return "", err
	}
	r, err := RendererFor(sh, templatesDir)
	if err != nil {
		return "", err
	}
	return r.Render(opts)
}
