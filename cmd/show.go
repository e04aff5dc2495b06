package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardcatalog/internal/card"
	"github.com/arcanaland/cardcatalog/internal/config"
	"github.com/arcanaland/cardcatalog/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display a card with ANSI art",
	Long: `Show displays detailed information about a card. When the data directory
has an image at art/<id>.png (or .jpg, .jpeg, .gif) it is converted to ANSI
art, cached under XDG_CACHE_HOME/cardcatalog, and drawn beside the card.

Examples:
  cardcatalog show CS2_029
  cardcatalog show --name "Fiery War Axe"
  cardcatalog show --data ./my-cards EX1_066`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		noArt, _ := cmd.Flags().GetBool("no-art")
		if (name == "") == (len(args) == 0) {
			return fmt.Errorf("give either a card id or --name")
		}

		c, dataDir, err := openCatalog(cmd)
		if err != nil {
			return err
		}

		var found card.Card
		if name != "" {
			found = c.FindByName(name)
			if found.IsEmpty() {
				return fmt.Errorf("no card named %q", name)
			}
		} else {
			var ok bool
			if found, ok = c.Lookup(args[0]); !ok {
				return fmt.Errorf("no card with id %s", args[0])
			}
		}

		art := ""
		if !noArt {
			art = loadArt(cmd, dataDir, found.ID)
		}

		render.CardPanel(cmd.OutOrStdout(), found, art, render.TerminalWidth())
		return nil
	},
}

// loadArt returns the cached ANSI art for id, or "" when there is none.
// Missing art is normal so it's only reported with --verbose.
func loadArt(cmd *cobra.Command, dataDir, id string) string {
	imagePath, err := render.FindArt(dataDir, id)
	if err != nil {
		if verboseFlag {
			fmt.Fprintf(cmd.ErrOrStderr(), "art: %v\n", err)
		}
		return ""
	}

	art, err := render.CachedAnsiArt(imagePath, config.GetCacheDir())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		return ""
	}
	return art
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("name", "n", "", "Look the card up by name instead of id")
	showCmd.Flags().Bool("no-art", false, "Don't draw card art")
}
