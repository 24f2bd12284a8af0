// Package git shells out to the git binary for the repository context the
// generator needs: staged diffs, staged file lists, and branch operations.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Repository exposes the git queries and mutations used by the generator.
type Repository interface {
	StagedDiff(ctx context.Context) (string, error)
	StagedFiles(ctx context.Context) ([]string, error)
	CurrentBranch(ctx context.Context) (string, error)
	Commit(ctx context.Context, message string) error
	Checkout(ctx context.Context, branch string) error
}

// Runner implements Repository by executing the git binary.
type Runner struct {
	workDir string
}

// NewRunner creates a runner operating in workDir (empty means the current
// directory).
func NewRunner(workDir string) *Runner {
	return &Runner{workDir: workDir}
}

func (r *Runner) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workDir != "" {
		cmd.Dir = r.workDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", args[0], msg)
	}
	return stdout.String(), nil
}

// StagedDiff returns the diff of the staged changes.
func (r *Runner) StagedDiff(ctx context.Context) (string, error) {
	return r.run(ctx, "diff", "--cached")
}

// StagedFiles returns the paths of the staged files.
func (r *Runner) StagedFiles(ctx context.Context) ([]string, error) {
	out, err := r.run(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return nil, err
	}
	var files []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// CurrentBranch returns the checked-out branch name.
func (r *Runner) CurrentBranch(ctx context.Context) (string, error) {
	out, err := r.run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Commit records the staged changes with the given message.
func (r *Runner) Commit(ctx context.Context, message string) error {
	_, err := r.run(ctx, "commit", "-m", message)
	return err
}

// Checkout creates and switches to a new branch.
func (r *Runner) Checkout(ctx context.Context, branch string) error {
	_, err := r.run(ctx, "checkout", "-b", branch)
	return err
}
