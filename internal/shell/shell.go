// Package shell renders the init scripts that wire burrow into an
// interactive shell, and implements the directive-file pattern the scripts
// use to let burrow change the parent shell's working directory.
package shell

import (
	"fmt"
	"regexp"
	"strings"
)

// Shell identifies a supported shell.
type Shell int

const (
	Bash Shell = iota + 1
	Zsh
)

func (s Shell) String() string {
	switch s {
	case Bash:
		return "bash"
	case Zsh:
		return "zsh"
	default:
		return "unknown"
	}
}

// Shells lists every supported shell.
func Shells() []Shell {
	return []Shell{Bash, Zsh}
}

// Names returns the identifiers accepted by ParseShell.
func Names() []string {
	shells := Shells()
	names := make([]string, 0, len(shells))
	for _, s := range shells {
		names = append(names, s.String())
	}
	return names
}

// ParseShell maps a shell identifier to a Shell.
func ParseShell(name string) (Shell, error) {
	switch name {
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	default:
		return 0, &UnsupportedShellError{Shell: name}
	}
}

// UnsupportedShellError is returned for a shell identifier outside the
// supported set.
type UnsupportedShellError struct {
	Shell string
}

func (e *UnsupportedShellError) Error() string {
	return fmt.Sprintf("unsupported shell: %s (supported: %s)", e.Shell, strings.Join(Names(), ", "))
}

// Hook selects the shell event the generated hook is bound to.
type Hook int

const (
	HookNone Hook = iota
	HookPrompt
	HookPwd
)

func (h Hook) String() string {
	switch h {
	case HookNone:
		return "none"
	case HookPrompt:
		return "prompt"
	case HookPwd:
		return "pwd"
	default:
		return "unknown"
	}
}

// HookNames returns the values accepted by ParseHook.
func HookNames() []string {
	return []string{HookNone.String(), HookPrompt.String(), HookPwd.String()}
}

// ParseHook maps a hook name to a Hook. The empty string means HookNone.
func ParseHook(name string) (Hook, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return HookNone, nil
	case "prompt":
		return HookPrompt, nil
	case "pwd":
		return HookPwd, nil
	default:
		return HookNone, fmt.Errorf("invalid hook %q (expected one of: %s)", name, strings.Join(HookNames(), ", "))
	}
}

// DefaultCmd is the command name used when Options.Cmd is empty.
const DefaultCmd = "burrow"

// Options controls what an init script contains.
type Options struct {
	// Cmd is the name the script binds burrow to. Empty means DefaultCmd.
	Cmd  string
	Hook Hook
	// Echo makes the hook print the new directory when it fires.
	Echo bool
}

var cmdNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// ValidateCommandName rejects names that cannot be used as a shell alias.
// The empty name is valid and selects DefaultCmd.
func ValidateCommandName(name string) error {
	if name == "" || cmdNamePattern.MatchString(name) {
		return nil
	}
	return fmt.Errorf("invalid command name %q: use letters, digits, '_' or '-'", name)
}
