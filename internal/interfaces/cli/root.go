package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// NewRootCommand builds the base command when called without subcommands.
func NewRootCommand(container *CLIContainer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ck",
		Short: "CommitKit - AI-assisted commits with layered configuration",
		Long: `CommitKit generates commit messages and branch names with a language
model, driven by a layered configuration store.

Configuration merges two scopes by precedence: a global file under your
user config directory and a project file (.commitkit.json) in the working
directory. Project values override global ones; the "extensions" key
accepts arbitrary third-party sub-configuration.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if dir, _ := cmd.Flags().GetString("project-dir"); dir != "" {
				container.SetProjectDir(dir)
			}
			if flagDebug, _ := cmd.Flags().GetBool("debug"); flagDebug || container.DebugEnabled() {
				container.Logger.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().String("project-dir", "", "Project directory for the project scope (default: working directory)")

	rootCmd.AddCommand(NewConfigCommand(container))
	rootCmd.AddCommand(NewCommitCommand(container))
	rootCmd.AddCommand(NewBranchCommand(container))

	return rootCmd
}

// goVersion returns the Go version used to build the binary.
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}
