package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"commitkit.dev/cli/internal/application/services"
	"commitkit.dev/cli/internal/infrastructure/git"
	"commitkit.dev/cli/internal/infrastructure/llm"
)

// NewCommitCommand creates the commit command.
func NewCommitCommand(container *CLIContainer) *cobra.Command {
	var (
		dryRun bool
		yes    bool
	)
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Generate a commit message for the staged changes",
		Long: `Generate a commit message for the staged changes and commit with it.

The message style, language, and model come from the effective
configuration. With --dry-run the message is printed without
committing; with --yes the confirmation prompt is skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newChatClient(container)
			if err != nil {
				return err
			}
			repo := git.NewRunner(container.ProjectDir)
			generator := services.NewGenerator(container.Config, repo, client)

			for {
				container.Logger.Debug("generating commit message")
				message, err := generator.CommitMessage(cmd.Context())
				if err != nil {
					return err
				}

				if dryRun {
					fmt.Fprintln(cmd.OutOrStdout(), message)
					return nil
				}

				decision := decisionAccept
				if !yes {
					decision, err = confirmMessage(message)
					if err != nil {
						return err
					}
				}

				switch decision {
				case decisionAccept:
					if err := repo.Commit(cmd.Context(), message); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), "Committed.")
					return nil
				case decisionRegenerate:
					continue
				default:
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the message without committing")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Commit without confirmation")
	return cmd
}

// newChatClient builds the LLM client from the effective configuration.
func newChatClient(container *CLIContainer) (llm.Client, error) {
	// Surface load failures here; a broken scope must never be papered
	// over with defaults.
	if _, err := container.Config.Effective(); err != nil {
		return nil, err
	}

	baseURL := configString(container, "api_base")
	model := configString(container, "model")
	keyEnv := configString(container, "api_key_env")

	apiKey := ""
	if keyEnv != "" {
		apiKey = os.Getenv(keyEnv)
	}

	timeout := time.Duration(configInt(container, "request.timeout_seconds")) * time.Second
	opts := llm.Options{
		BaseURL:     baseURL,
		APIKey:      apiKey,
		Model:       model,
		MaxTokens:   configInt(container, "request.max_tokens"),
		Temperature: configFloat(container, "request.temperature"),
		Timeout:     timeout,
	}

	container.Logger.Debug("chat client configured", "base_url", baseURL, "model", model)
	return llm.NewChatClient(opts), nil
}

func configString(container *CLIContainer, path string) string {
	if val, found, err := container.Config.Get(path); err == nil && found {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return ""
}

func configInt(container *CLIContainer, path string) int {
	if val, found, err := container.Config.Get(path); err == nil && found {
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

func configFloat(container *CLIContainer, path string) float64 {
	if val, found, err := container.Config.Get(path); err == nil && found {
		if f, ok := val.(float64); ok {
			return f
		}
	}
	return 0
}
