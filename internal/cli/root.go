// Package cli wires the cobra command tree for the installer binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/picocms/composer-installer/internal/branding"
	"github.com/picocms/composer-installer/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` resolves install paths and entry-point class names for
plugin and theme packages and maintains the generated plugin manifest the
host application loads at runtime.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
