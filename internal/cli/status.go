package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/picocms/composer-installer/internal/branding"
	"github.com/picocms/composer-installer/internal/config"
	"github.com/picocms/composer-installer/internal/manifest"
)

var statusCmd = &cobra.Command{
	Use:   "status [project-dir]",
	Short: "Show the entries of a project's generated manifest",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	dir := config.ProjectDir(arg)
	path := filepath.Join(config.VendorDir(dir), branding.ManifestFile())

	if _, err := os.Lstat(path); os.IsNotExist(err) {
		fmt.Fprintf(cmd.OutOrStdout(), "No manifest at %s\n", path)
		return nil
	}

	entries, err := manifest.ParseFile(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d packages\n", path, len(entries))
	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s -> %s", e.PackageName, e.InstallerName)
		if len(e.ClassNames) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), " (%s)", strings.Join(e.ClassNames, ", "))
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}
