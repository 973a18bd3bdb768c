package shell

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	//go:embed templates/bash.txt
	bashTemplate string
	//go:embed templates/zsh.txt
	zshTemplate string
)

// TemplateFile is the on-disk format of a template override.
type TemplateFile struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Template    string `yaml:"template"`
}

// BuiltinTemplate returns the embedded template for sh.
func BuiltinTemplate(sh Shell) (string, error) {
	switch sh {
	case Bash:
		return bashTemplate, nil
	case Zsh:
		return zshTemplate, nil
	default:
		return "", &UnsupportedShellError{Shell: sh.String()}
	}
}

// LoadTemplate returns the template text for sh. When templatesDir holds a
// "<shell>.yaml" file its template replaces the built-in one. A file that
// is not a YAML document with a template field is used verbatim.
func LoadTemplate(sh Shell, templatesDir string) (string, error) {
	if templatesDir == "" {
		return BuiltinTemplate(sh)
	}

	path := filepath.Join(templatesDir, sh.String()+".yaml")
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return BuiltinTemplate(sh)
		}
		return "", fmt.Errorf("unable to read template file %s: %w", path, err)
	}

	var tpl TemplateFile
	if err := yaml.Unmarshal(content, &tpl); err != nil || tpl.Template == "" {
		return string(content), nil
	}
	return tpl.Template, nil
}
