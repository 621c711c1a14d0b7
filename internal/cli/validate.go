package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/picocms/composer-installer/internal/composer"
	"github.com/picocms/composer-installer/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate [project-dir]",
	Short: "Validate a project's root config and installed package records",
	Long: `Check the root config against the configuration schema and lint installed
package records for malformed names and versions. Findings are advisory for
loading but predict what a manifest write would reject.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	dir := config.ProjectDir(arg)
	out := cmd.OutOrStdout()

	result, err := composer.ValidateRootConfigFile(composer.RootConfigPath(dir))
	if err != nil {
		return err
	}

	failed := false
	if result.Valid {
		fmt.Fprintf(out, "%s: OK\n", composer.RootConfigPath(dir))
	} else {
		failed = true
		fmt.Fprintf(out, "%s:\n", composer.RootConfigPath(dir))
		for _, issue := range result.Issues {
			loc := issue.Path
			if loc == "" {
				loc = "/"
			}
			fmt.Fprintf(out, "  %s: %s\n", loc, issue.Message)
		}
	}

	repoPath := composer.RepositoryPath(config.VendorDir(dir))
	if _, statErr := os.Stat(repoPath); statErr == nil {
		repo, err := composer.LoadRepository(repoPath)
		if err != nil {
			return err
		}
		issues := composer.LintRepository(repo)
		if len(issues) == 0 {
			fmt.Fprintf(out, "%s: OK (%d packages)\n", repoPath, repo.Len())
		} else {
			failed = true
			fmt.Fprintf(out, "%s:\n", repoPath)
			for _, issue := range issues {
				fmt.Fprintf(out, "  %s: %s\n", issue.Package, issue.Message)
			}
		}
	}

	if failed {
		return fmt.Errorf("validation failed")
	}
	return nil
}
