// Package services holds application services composing the configuration
// core with the git and LLM infrastructure.
package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"commitkit.dev/cli/internal/infrastructure/git"
	"commitkit.dev/cli/internal/infrastructure/llm"
)

// ConfigReader is the read surface the generator consumes. It is an ordinary
// reader of the effective configuration; the configuration core knows
// nothing about this consumer.
type ConfigReader interface {
	Get(path string) (any, bool, error)
}

// Generator produces commit messages and branch names from staged changes.
type Generator struct {
	config ConfigReader
	repo   git.Repository
	client llm.Client
}

// NewGenerator creates a generator.
func NewGenerator(config ConfigReader, repo git.Repository, client llm.Client) *Generator {
	return &Generator{config: config, repo: repo, client: client}
}

// ErrNothingStaged is returned when the index has no staged changes.
var ErrNothingStaged = fmt.Errorf("nothing staged; use git add first")

// CommitMessage generates a commit message for the staged changes.
func (g *Generator) CommitMessage(ctx context.Context) (string, error) {
	diff, err := g.repo.StagedDiff(ctx)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(diff) == "" {
		return "", ErrNothingStaged
	}
	files, err := g.repo.StagedFiles(ctx)
	if err != nil {
		return "", err
	}

	style := g.stringValue("commit.style")
	language := g.stringValue("language")
	maxSubject := g.intValue("commit.max_subject_length")
	includeBody := g.boolValue("commit.include_body")

	var sb strings.Builder
	fmt.Fprintf(&sb, "Write a git commit message in %s for the staged changes below.\n", language)
	if style == "conventional" {
		sb.WriteString("Use the Conventional Commits format (type(scope): subject).\n")
	}
	fmt.Fprintf(&sb, "Keep the subject line under %d characters.\n", maxSubject)
	if includeBody {
		sb.WriteString("After a blank line, add a short body explaining what changed and why.\n")
	} else {
		sb.WriteString("Reply with the subject line only.\n")
	}
	fmt.Fprintf(&sb, "\nStaged files:\n%s\n\nDiff:\n%s", strings.Join(files, "\n"), diff)

	reply, err := g.client.Complete(ctx, []llm.Message{
		{Role: "system", Content: "You are a commit message generator. Reply with the commit message only, no code fences or commentary."},
		{Role: "user", Content: sb.String()},
	})
	if err != nil {
		return "", err
	}
	return clampSubject(cleanReply(reply), maxSubject), nil
}

// BranchName generates a branch name from a short description of the work.
func (g *Generator) BranchName(ctx context.Context, hint string) (string, error) {
	prefix := g.stringValue("branch.prefix")
	separator := g.stringValue("branch.separator")
	maxLength := g.intValue("branch.max_length")

	prompt := fmt.Sprintf(
		"Suggest a short, lowercase, hyphen-separated git branch name (3-6 words, no prefix) for this work: %s",
		hint)

	reply, err := g.client.Complete(ctx, []llm.Message{
		{Role: "system", Content: "You are a branch name generator. Reply with the branch name only."},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return "", err
	}

	name := sanitizeBranch(cleanReply(reply))
	if name == "" {
		name = sanitizeBranch(hint)
	}
	if name == "" {
		return "", fmt.Errorf("could not derive a branch name from %q", hint)
	}

	full := name
	if prefix != "" {
		full = prefix + separator + name
	}
	if maxLength > 0 && len(full) > maxLength {
		full = strings.TrimRight(full[:maxLength], "-"+separator)
	}
	return full, nil
}

func (g *Generator) stringValue(path string) string {
	if val, found, err := g.config.Get(path); err == nil && found {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return ""
}

func (g *Generator) intValue(path string) int {
	if val, found, err := g.config.Get(path); err == nil && found {
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

func (g *Generator) boolValue(path string) bool {
	if val, found, err := g.config.Get(path); err == nil && found {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

// cleanReply strips code fences and surrounding quotes that models tend to
// wrap answers in.
func cleanReply(reply string) string {
	s := strings.TrimSpace(reply)
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.Trim(s, "\"'`")
	return strings.TrimSpace(s)
}

// clampSubject truncates the subject line to max characters, leaving any
// body untouched.
func clampSubject(message string, max int) string {
	if max <= 0 {
		return message
	}
	lines := strings.SplitN(message, "\n", 2)
	if len(lines[0]) > max {
		lines[0] = strings.TrimSpace(lines[0][:max])
	}
	return strings.Join(lines, "\n")
}

var branchUnsafe = regexp.MustCompile(`[^a-z0-9-]+`)

// sanitizeBranch lowercases and strips anything git would reject in a
// branch name.
func sanitizeBranch(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = branchUnsafe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}
