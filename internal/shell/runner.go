// Package shell executes terminal-pane commands through /bin/sh, keeping the
// working directory inside the workspace.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTimeout bounds a single command when the caller does not configure
// one.
const DefaultTimeout = 10 * time.Second

// ErrOutsideRoot is returned when a cd would escape the workspace.
var ErrOutsideRoot = errors.New("path is outside the workspace")

// Result is what one command produced.
type Result struct {
	Command  string
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
	Duration time.Duration
}

// Runner keeps the cwd between commands, like an interactive shell would.
type Runner struct {
	root    string
	cwd     string
	timeout time.Duration
}

// NewRunner starts in root and refuses to leave its subtree.
func NewRunner(root string, timeout time.Duration) (*Runner, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{root: abs, cwd: abs, timeout: timeout}, nil
}

// Cwd returns the current directory, relative to the workspace root when
// possible.
func (r *Runner) Cwd() string {
	rel, err := filepath.Rel(r.root, r.cwd)
	if err != nil || rel == "." {
		return filepath.Base(r.root)
	}
	return filepath.Join(filepath.Base(r.root), rel)
}

// CwdAbs returns the absolute current directory.
func (r *Runner) CwdAbs() string { return r.cwd }

// SetCwd moves the runner to an absolute directory, with the same
// confinement checks as cd. Used when restoring a saved session.
func (r *Runner) SetCwd(path string) error {
	if !filepath.IsAbs(path) {
		return fmt.Errorf("cwd must be absolute, got %q", path)
	}
	return r.chdir(path)
}

// Run executes one command line. cd is handled internally so the directory
// persists; everything else goes through `sh -c`.
func (r *Runner) Run(ctx context.Context, line string) Result {
	line = strings.TrimSpace(line)
	res := Result{Command: line}
	if line == "" {
		return res
	}

	if target, ok := parseCd(line); ok {
		if err := r.chdir(target); err != nil {
			res.Stderr = err.Error()
			res.ExitCode = 1
		}
		return res
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", line)
	cmd.Dir = r.cwd

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res.Duration = time.Since(start)
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()

	if ctx.Err() == context.DeadlineExceeded {
		res.TimedOut = true
		res.ExitCode = -1
		res.Stderr = strings.TrimRight(res.Stderr+"\ncommand timed out after "+r.timeout.String(), "\n")
		return res
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.ExitCode = 0
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		res.ExitCode = 127
		if res.Stderr == "" {
			res.Stderr = err.Error()
		}
	}
	return res
}

// parseCd recognizes "cd" and "cd <dir>"; anything with shell metacharacters
// after the target falls through to sh.
func parseCd(line string) (string, bool) {
	if line == "cd" {
		return "", true
	}
	if !strings.HasPrefix(line, "cd ") {
		return "", false
	}
	target := strings.TrimSpace(line[len("cd "):])
	if target == "" || strings.ContainsAny(target, "|&;<>$`") {
		return "", false
	}
	return target, true
}

func (r *Runner) chdir(target string) error {
	next := r.root
	if target != "" && target != "~" {
		if filepath.IsAbs(target) {
			next = filepath.Clean(target)
		} else {
			next = filepath.Clean(filepath.Join(r.cwd, target))
		}
	}
	if next != r.root && !strings.HasPrefix(next, r.root+string(filepath.Separator)) {
		return ErrOutsideRoot
	}
	info, err := os.Stat(next)
	if err != nil {
		return fmt.Errorf("cd: %s: no such directory", target)
	}
	if !info.IsDir() {
		return fmt.Errorf("cd: %s: not a directory", target)
	}
	r.cwd = next
	return nil
}

// mutatingVerbs lists commands whose success should refresh the explorer.
var mutatingVerbs = map[string]bool{
	"mkdir": true, "rmdir": true, "rm": true, "mv": true, "cp": true,
	"touch": true, "git": true, "tee": true, "ln": true,
}

// MayMutateTree reports whether line likely changed the filesystem.
func MayMutateTree(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	if mutatingVerbs[fields[0]] {
		return true
	}
	return strings.ContainsAny(line, "><")
}
