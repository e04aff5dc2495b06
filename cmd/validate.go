package cmd

import (
	"fmt"
	"io/fs"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardcatalog/data"
	"github.com/arcanaland/cardcatalog/internal/config"
	"github.com/arcanaland/cardcatalog/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a card data directory",
	Long: `Validate checks every card file and the power file in a data directory.
It reports files that fail to decode, unknown enum names, duplicate ids, power
entries for unknown cards and classes missing their hero or hero power.

Without a path the --data directory, the configured library or the built-in
cards are checked, in that order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		explicit := dataFlag
		if len(args) == 1 {
			explicit = args[0]
		}

		dir, err := config.ResolveDataDir(explicit)
		if err != nil {
			return err
		}

		var fsys fs.FS = data.FS
		label := "built-in cards"
		if dir != "" {
			fsys = os.DirFS(dir)
			label = dir
		}

		results, err := validator.NewValidator(fsys).Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "%s '%s' is valid.\n", colorize.GreenString("✅"), label)
		} else {
			fmt.Fprintf(out, "%s '%s' has %d validation errors:\n", colorize.RedString("❌"), label, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, colorize.YellowString("\nWarnings:"))
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
