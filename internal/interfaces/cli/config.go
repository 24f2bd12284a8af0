package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	coreconfig "commitkit.dev/cli/internal/core/config"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand(container *CLIContainer) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit layered configuration",
		Long: `Inspect and edit CommitKit configuration.

Values are addressed by dotted path (e.g. commit.style). Reads resolve
against the effective configuration, the merge of the global and project
scopes; writes target exactly one scope.`,
	}

	configCmd.AddCommand(NewConfigGetCommand(container))
	configCmd.AddCommand(NewConfigSetCommand(container))
	configCmd.AddCommand(NewConfigUnsetCommand(container))
	configCmd.AddCommand(NewConfigListCommand(container))
	configCmd.AddCommand(NewConfigPathCommand(container))

	return configCmd
}

// NewConfigGetCommand creates the get subcommand.
func NewConfigGetCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "get <path>",
		Short: "Read a value from the effective configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			val, found, err := container.Config.Get(args[0])
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("no value set for %q", args[0])
			}
			encoded, err := json.Marshal(val)
			if err != nil {
				return fmt.Errorf("failed to encode value: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}
}

// NewConfigSetCommand creates the set subcommand.
func NewConfigSetCommand(container *CLIContainer) *cobra.Command {
	var global bool
	cmd := &cobra.Command{
		Use:   "set <path> <value>",
		Short: "Write a value into one scope",
		Long: `Write a value into one scope's configuration file.

The value is parsed as JSON when possible (numbers, booleans, objects,
arrays) and stored as a string otherwise. By default the project scope
is written; use --global for the global scope.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := targetScope(global)
			value := parseValue(args[1])
			if err := container.Config.Set(scope, args[0], value); err != nil {
				return err
			}
			container.Logger.Debug("configuration updated",
				"scope", scope, "path", args[0], "file", container.Config.Path(scope))
			return nil
		},
	}
	cmd.Flags().BoolVar(&global, "global", false, "Write to the global scope instead of the project scope")
	return cmd
}

// NewConfigUnsetCommand creates the unset subcommand.
func NewConfigUnsetCommand(container *CLIContainer) *cobra.Command {
	var global bool
	cmd := &cobra.Command{
		Use:   "unset <path>",
		Short: "Remove a value from one scope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := targetScope(global)
			if err := container.Config.Remove(scope, args[0]); err != nil {
				return err
			}
			container.Logger.Debug("configuration key removed", "scope", scope, "path", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&global, "global", false, "Remove from the global scope instead of the project scope")
	return cmd
}

// NewConfigListCommand creates the list subcommand.
func NewConfigListCommand(container *CLIContainer) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			effective, err := container.Config.Effective()
			if err != nil {
				return err
			}
			if asJSON {
				encoded, err := json.MarshalIndent(effective, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode configuration: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderEffective(effective))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON instead of the styled view")
	return cmd
}

// NewConfigPathCommand creates the path subcommand.
func NewConfigPathCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show per-scope configuration file locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, scope := range coreconfig.Scopes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", scope, container.Config.Path(scope))
			}
			return nil
		},
	}
}

func targetScope(global bool) coreconfig.Scope {
	if global {
		return coreconfig.ScopeGlobal
	}
	return coreconfig.ScopeProject
}

// parseValue interprets CLI input as JSON, falling back to a plain string.
func parseValue(input string) any {
	var parsed any
	if err := json.Unmarshal([]byte(input), &parsed); err == nil {
		return parsed
	}
	return input
}

var (
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	leafStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderEffective renders the merged configuration as an indented tree.
func renderEffective(effective map[string]any) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Effective configuration (project over global over defaults)"))
	sb.WriteString("\n")
	renderObject(&sb, effective, 0)
	return strings.TrimRight(sb.String(), "\n")
}

func renderObject(sb *strings.Builder, obj map[string]any, depth int) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	indent := strings.Repeat("  ", depth)
	for _, key := range keys {
		switch val := obj[key].(type) {
		case map[string]any:
			fmt.Fprintf(sb, "%s%s\n", indent, keyStyle.Render(key))
			renderObject(sb, val, depth+1)
		default:
			encoded, _ := json.Marshal(val)
			fmt.Fprintf(sb, "%s%s %s\n", indent, keyStyle.Render(key+":"), leafStyle.Render(string(encoded)))
		}
	}
}
