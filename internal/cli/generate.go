package cli

import (
	"github.com/gookit/event"
	"github.com/spf13/cobra"

	"github.com/picocms/composer-installer/internal/branding"
	"github.com/picocms/composer-installer/internal/composer"
	"github.com/picocms/composer-installer/internal/plugin"
)

var generateForce bool

var generateCmd = &cobra.Command{
	Use:   "generate [project-dir]",
	Short: "Regenerate or remove the plugin manifest for a project",
	Long: `Load the project's root configuration and installed packages, decide the
manifest precondition, and either rewrite the manifest file in full or
delete it. The file is never patched incrementally.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "Generate even when the root config does not opt in")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	proj, err := loadProject(arg)
	if err != nil {
		return err
	}

	inst := plugin.New(proj.Root, proj.Repo, proj.VendorDir, plugin.Options{
		ForceManifest: generateForce,
		Out:           cmd.OutOrStdout(),
	})

	bus := event.NewManager(branding.CLIName())
	reg := composer.NewInstallerRegistry()
	inst.Activate(bus, reg)

	return plugin.FireDump(bus)
}
