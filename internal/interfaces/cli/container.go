package cli

import (
	"os"

	"github.com/charmbracelet/log"

	coreconfig "commitkit.dev/cli/internal/core/config"
	infraconfig "commitkit.dev/cli/internal/infrastructure/config"
	"commitkit.dev/cli/internal/logging"
)

// CLIContainer holds the dependencies shared by CLI commands.
type CLIContainer struct {
	Registry   *coreconfig.Registry
	Config     *infraconfig.Manager
	Logger     *log.Logger
	ProjectDir string
}

// NewCLIContainer wires the configuration core for one invocation.
func NewCLIContainer(projectDir string, debug bool) *CLIContainer {
	if projectDir == "" {
		if wd, err := os.Getwd(); err == nil {
			projectDir = wd
		} else {
			projectDir = "."
		}
	}

	registry := coreconfig.NewRegistry()
	store := infraconfig.DefaultStore(projectDir)

	return &CLIContainer{
		Registry:   registry,
		Config:     infraconfig.NewManager(registry, store),
		Logger:     logging.NewLogger(debug),
		ProjectDir: projectDir,
	}
}

// SetProjectDir repoints the project scope at another directory. Used by
// the --project-dir flag before any command runs.
func (c *CLIContainer) SetProjectDir(dir string) {
	c.ProjectDir = dir
	c.Config = infraconfig.NewManager(c.Registry, infraconfig.DefaultStore(dir))
}

// DebugEnabled reports whether debug output is requested via the config
// file (the --debug flag is handled before the container exists).
func (c *CLIContainer) DebugEnabled() bool {
	val, found, err := c.Config.Get("debug")
	if err != nil || !found {
		return false
	}
	enabled, ok := val.(bool)
	return ok && enabled
}
