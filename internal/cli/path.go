package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/picocms/composer-installer/internal/resolver"
)

var pathProjectDir string

var pathCmd = &cobra.Command{
	Use:   "path <package>",
	Short: "Print the resolved install path for an installed package",
	Long: `Resolve the install path for a package: the per-type base directory joined
with the resolved install name. The base directory is created if missing.`,
	Args: cobra.ExactArgs(1),
	RunE: runPath,
}

func init() {
	pathCmd.Flags().StringVar(&pathProjectDir, "project", "", "Project directory (default: configured or current directory)")
	rootCmd.AddCommand(pathCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	proj, err := loadProject(pathProjectDir)
	if err != nil {
		return err
	}

	pkg, err := proj.findPackage(args[0])
	if err != nil {
		return err
	}

	paths := resolver.NewPathResolver(proj.Root, proj.VendorDir, nil)
	installPath, err := paths.InstallPath(pkg)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), installPath)
	return nil
}
