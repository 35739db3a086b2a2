// Package sfx runs self-extracting packages and other child processes.
package sfx

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// ExtractArgs returns the unattended switches for a RAR SFX:
// yes to all prompts, overwrite existing files, no informational output, and
// the destination directory.
func ExtractArgs(destDir string) []string {
	return []string{"-y", "-o+", "-inul", "-d" + destDir}
}

// ExecRunner starts real processes.
type ExecRunner struct {
	// Stdout and Stderr receive the child's output for Run. Nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

// Run waits for path to exit and returns its exit code. err is only set when
// the process could not be started or waited on.
func (r ExecRunner) Run(ctx context.Context, path string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// Output returns the combined output of path. A non-zero exit is not an
// error here: UnRAR prints its banner and usage and exits non-zero when
// called without a command.
func (r ExecRunner) Output(ctx context.Context, path string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, path, args...).CombinedOutput()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return out, err
	}
	return out, nil
}
