package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"commitkit.dev/cli/internal/application/services"
	"commitkit.dev/cli/internal/infrastructure/git"
)

// NewBranchCommand creates the branch command.
func NewBranchCommand(container *CLIContainer) *cobra.Command {
	var checkout bool
	cmd := &cobra.Command{
		Use:   "branch <description...>",
		Short: "Generate a branch name from a description",
		Long: `Generate a branch name from a short description of the work.

The prefix, separator, and length limit come from the "branch" section
of the effective configuration. With --checkout the branch is created
and checked out immediately.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newChatClient(container)
			if err != nil {
				return err
			}
			repo := git.NewRunner(container.ProjectDir)
			generator := services.NewGenerator(container.Config, repo, client)

			name, err := generator.BranchName(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			if checkout {
				if err := repo.Checkout(cmd.Context(), name); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Switched to new branch %s\n", name)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
	cmd.Flags().BoolVar(&checkout, "checkout", false, "Create and check out the branch")
	return cmd
}
