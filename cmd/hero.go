package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardcatalog/internal/card"
	"github.com/arcanaland/cardcatalog/internal/catalog"
	"github.com/arcanaland/cardcatalog/internal/render"
)

func playableClassNames() []string {
	var names []string
	for _, class := range card.PlayableClasses() {
		names = append(names, class.String())
	}
	return names
}

// heroLookupCmd builds a command that resolves a class to one of its fixed
// cards through lookup.
func heroLookupCmd(use, short, what string, lookup func(*catalog.Catalog, card.Class) card.Card) *cobra.Command {
	return &cobra.Command{
		Use:       use + " [class]",
		Short:     short,
		Args:      cobra.ExactArgs(1),
		ValidArgs: playableClassNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := card.ParseClass(args[0])
			if err != nil {
				return err
			}

			c, _, err := openCatalog(cmd)
			if err != nil {
				return err
			}

			found := lookup(c, class)
			if found.IsEmpty() {
				return fmt.Errorf("no %s for class %s", what, class)
			}
			render.CardPanel(cmd.OutOrStdout(), found, "", render.TerminalWidth())
			return nil
		},
	}
}

var heroCmd = heroLookupCmd("hero", "Show the hero card of a class", "hero card",
	(*catalog.Catalog).HeroCard)

var heroPowerCmd = heroLookupCmd("hero-power", "Show the default hero power of a class", "hero power",
	(*catalog.Catalog).DefaultHeroPower)

func init() {
	RootCmd.AddCommand(heroCmd)
	RootCmd.AddCommand(heroPowerCmd)
}
