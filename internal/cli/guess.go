package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/picocms/composer-installer/internal/resolver"
)

var guessCmd = &cobra.Command{
	Use:   "guess <package-name>",
	Short: "Print the install name guessed from a package name",
	Long: `Apply the name-guessing heuristic to a raw package name: drop the vendor
prefix, strip a trailing "plugin" or "theme" suffix, and StudlyCase the rest.
Useful for checking what a package resolves to without any overrides.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), resolver.Guess(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guessCmd)
}
