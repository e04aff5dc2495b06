package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardcatalog/internal/config"
)

// libraryCmd represents the library command group
var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the card data library",
	Long: `Commands for managing where card data is read from. By default the built-in
cards are used; a library directory replaces them once set.`,
}

// libraryInitCmd represents the library init command
var libraryInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the card library and config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating card library: %w", err)
		}

		fmt.Fprintln(out, "Card library initialized at:", libraryPath)
		fmt.Fprintln(out, "Add card files there and run 'cardcatalog library set", libraryPath+"'.")

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// libraryPathCmd represents the library path command
var libraryPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the data directory in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.ResolveDataDir(dataFlag)
		if err != nil {
			return err
		}

		if dir == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "(built-in)")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), dir)
		}
		return nil
	},
}

// librarySetCmd represents the library set command
var librarySetCmd = &cobra.Command{
	Use:   "set [dir]",
	Short: "Use dir as the card library, or the built-in cards when dir is empty",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		if dir != "" {
			if _, err := config.ResolveDataDir(dir); err != nil {
				return err
			}
		}

		if err := config.SetDataDir(dir); err != nil {
			return fmt.Errorf("error setting card library: %w", err)
		}

		if dir == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "Using the built-in cards")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Card library set to:", dir)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(libraryInitCmd)
	libraryCmd.AddCommand(libraryPathCmd)
	libraryCmd.AddCommand(librarySetCmd)
}
