// Package create materializes files and directories from a list of paths.
// A path whose final segment carries an extension becomes an empty file,
// anything else becomes a directory. Missing ancestors are created first.
package create

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	filePerm os.FileMode = 0o666
	dirPerm  os.FileMode = 0o777
)

// ErrReport marks a failure to write a status line. It is the only error
// Create returns for a path; everything else is reported and skipped.
var ErrReport = errors.New("failed to write status")

// Outcome is the result of processing a single path.
type Outcome int

const (
	AlreadyExists Outcome = iota
	CreatedFile
	CreatedDirectory
	ParentCreationFailed
	CreationFailed
)

func (o Outcome) String() string {
	switch o {
	case AlreadyExists:
		return "already exists"
	case CreatedFile:
		return "created file"
	case CreatedDirectory:
		return "created directory"
	case ParentCreationFailed:
		return "parent creation failed"
	case CreationFailed:
		return "creation failed"
	default:
		return "unknown"
	}
}

// Failed reports whether the outcome is a per-path failure.
func (o Outcome) Failed() bool {
	return o == ParentCreationFailed || o == CreationFailed
}

// Result describes what happened to one path.
type Result struct {
	Path    string
	Parent  string
	IsDir   bool
	Outcome Outcome
	Err     error
}

// Options configures a Creator.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// Verbose replaces the blank success line with a descriptive one.
	Verbose bool
	// KnownFiles lists extensionless base names that are created as files.
	KnownFiles []string
	// OnResult is called after each result has been reported.
	OnResult func(Result)
	Logger   logrus.FieldLogger
}

// Creator processes path batches. It holds no per-batch state.
type Creator struct {
	stdout     io.Writer
	stderr     io.Writer
	verbose    bool
	knownFiles map[string]struct{}
	onResult   func(Result)
	log        logrus.FieldLogger
}

// NewCreator builds a Creator. Nil writers default to the process streams.
func NewCreator(opts Options) *Creator {
	c := &Creator{
		stdout:     opts.Stdout,
		stderr:     opts.Stderr,
		verbose:    opts.Verbose,
		knownFiles: make(map[string]struct{}, len(opts.KnownFiles)),
		onResult:   opts.OnResult,
		log:        opts.Logger,
	}
	if c.stdout == nil {
		c.stdout = os.Stdout
	}
	if c.stderr == nil {
		c.stderr = os.Stderr
	}
	if c.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.log = l
	}
	for _, name := range opts.KnownFiles {
		c.knownFiles[strings.ToLower(name)] = struct{}{}
	}
	return c
}

// Create processes paths in order. A failure on one path is written to
// stderr and never stops the batch. The returned error is non-nil only when
// a status line cannot be written or ctx is cancelled between two paths.
func (c *Creator) Create(ctx context.Context, paths []string) error {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		res := c.createOne(path)
		if err := c.report(res); err != nil {
			return err
		}
		if c.onResult != nil {
			c.onResult(res)
		}
	}
	return nil
}

func (c *Creator) createOne(path string) Result {
	log := c.log.WithField("path", path)

	if _, err := os.Stat(path); err == nil {
		log.Debug("path already exists")
		return Result{Path: path, Outcome: AlreadyExists}
	}

	isDir := !c.IsFile(path)
	if parent := parentDir(path); parent != "" {
		if _, err := os.Stat(parent); err != nil {
			log.WithField("parent", parent).Debug("creating missing ancestors")
			if err := os.MkdirAll(parent, dirPerm); err != nil {
				return Result{Path: path, Parent: parent, IsDir: isDir, Outcome: ParentCreationFailed, Err: err}
			}
		}
	}

	if isDir {
		if err := os.Mkdir(path, dirPerm); err != nil {
			return Result{Path: path, IsDir: true, Outcome: CreationFailed, Err: err}
		}
		log.Debug("created directory")
		return Result{Path: path, IsDir: true, Outcome: CreatedDirectory}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return Result{Path: path, Outcome: CreationFailed, Err: err}
	}
	if err := f.Close(); err != nil {
		return Result{Path: path, Outcome: CreationFailed, Err: err}
	}
	log.Debug("created file")
	return Result{Path: path, Outcome: CreatedFile}
}

func (c *Creator) report(r Result) error {
	var err error
	switch r.Outcome {
	case AlreadyExists:
		_, err = fmt.Fprintf(c.stdout, "Path already exists: %s\n", r.Path)
	case CreatedFile, CreatedDirectory:
		if c.verbose {
			_, err = fmt.Fprintf(c.stdout, "Created %s %s\n", kind(r.IsDir), r.Path)
		} else {
			_, err = fmt.Fprintln(c.stdout)
		}
	case ParentCreationFailed:
		_, err = fmt.Fprintf(c.stderr, "Error creating directory %s: %v\n", r.Parent, r.Err)
	case CreationFailed:
		_, err = fmt.Fprintf(c.stderr, "Error creating %s %s: %v\n", kind(r.IsDir), r.Path, r.Err)
	}
	if err != nil {
		return fmt.Errorf("%w for %s: %w", ErrReport, r.Path, err)
	}
	return nil
}

func kind(isDir bool) string {
	if isDir {
		return "directory"
	}
	return "file"
}

// parentDir returns the parent of path, or "" when the parent is the
// working directory or the filesystem root.
func parentDir(path string) string {
	trimmed := trimTrailingSeparators(path)
	parent := filepath.Dir(trimmed)
	if parent == "." || parent == trimmed {
		return ""
	}
	return parent
}
