package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardcatalog/internal/card"
	"github.com/arcanaland/cardcatalog/internal/catalog"
	"github.com/arcanaland/cardcatalog/internal/render"
)

// findCmd represents the find command group
var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Search the card catalog",
	Long: `Find cards by a single attribute. Enum values are matched case-insensitively
and accept dashes or spaces for underscores, so 'hero-power' matches HERO_POWER.

Examples:
  cardcatalog find id CS2_029
  cardcatalog find name "Kobold Geomancer"
  cardcatalog find class mage
  cardcatalog find cost 1 3
  cardcatalog find mechanics --all TAUNT DIVINE_SHIELD`,
}

var findIDCmd = &cobra.Command{
	Use:   "id [card_id]",
	Short: "Show the card with the given id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := openCatalog(cmd)
		if err != nil {
			return err
		}

		found, ok := c.Lookup(args[0])
		if !ok {
			return fmt.Errorf("no card with id %s", args[0])
		}
		render.CardPanel(cmd.OutOrStdout(), found, "", render.TerminalWidth())
		return nil
	},
}

var findNameCmd = &cobra.Command{
	Use:   "name [card_name]",
	Short: "Show the first card with the given name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := openCatalog(cmd)
		if err != nil {
			return err
		}

		found := c.FindByName(args[0])
		if found.IsEmpty() {
			return fmt.Errorf("no card named %q", args[0])
		}
		render.CardPanel(cmd.OutOrStdout(), found, "", render.TerminalWidth())
		return nil
	},
}

// enumFindCmd builds a subcommand that parses one enum value and lists the
// cards query returns for it.
func enumFindCmd[T fmt.Stringer](use, short string, parse func(string) (T, error), values func() []T, query func(*catalog.Catalog, T) []card.Card) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			var names []string
			for _, v := range values()[1:] {
				names = append(names, v.String())
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parse(args[0])
			if err != nil {
				return err
			}

			c, _, err := openCatalog(cmd)
			if err != nil {
				return err
			}
			render.CardList(cmd.OutOrStdout(), query(c, v))
			return nil
		},
	}
}

// rangeFindCmd builds a subcommand taking an inclusive min and max.
func rangeFindCmd(use, short string, query func(*catalog.Catalog, int, int) []card.Card) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [min] [max]",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			min, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid min %q: %w", args[0], err)
			}
			max, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid max %q: %w", args[1], err)
			}

			c, _, err := openCatalog(cmd)
			if err != nil {
				return err
			}
			render.CardList(cmd.OutOrStdout(), query(c, min, max))
			return nil
		},
	}
}

var findMechanicsCmd = &cobra.Command{
	Use:   "mechanics [tag...]",
	Short: "List cards with any of the given mechanics",
	Long: `List cards carrying at least one of the given mechanics. Each card is listed
once even when it matches several tags. With --all only cards carrying every
tag are listed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tags := make([]card.GameTag, 0, len(args))
		for _, arg := range args {
			tag, err := card.ParseGameTag(arg)
			if err != nil {
				return err
			}
			tags = append(tags, tag)
		}

		c, _, err := openCatalog(cmd)
		if err != nil {
			return err
		}

		all, _ := cmd.Flags().GetBool("all")
		if all {
			render.CardList(cmd.OutOrStdout(), c.FindByAllMechanics(tags...))
		} else {
			render.CardList(cmd.OutOrStdout(), c.FindByMechanics(tags...))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(findCmd)

	findCmd.AddCommand(findIDCmd)
	findCmd.AddCommand(findNameCmd)

	findCmd.AddCommand(enumFindCmd("rarity [rarity]", "List cards of a rarity",
		card.ParseRarity, card.Rarities, (*catalog.Catalog).FindByRarity))
	findCmd.AddCommand(enumFindCmd("class [class]", "List cards of a class",
		card.ParseClass, card.Classes, (*catalog.Catalog).FindByClass))
	findCmd.AddCommand(enumFindCmd("set [set]", "List cards from a set",
		card.ParseSet, card.Sets, (*catalog.Catalog).FindBySet))
	findCmd.AddCommand(enumFindCmd("type [type]", "List cards of a type",
		card.ParseType, card.Types, (*catalog.Catalog).FindByType))
	findCmd.AddCommand(enumFindCmd("race [race]", "List minions of a race",
		card.ParseRace, card.Races, (*catalog.Catalog).FindByRace))

	findCmd.AddCommand(rangeFindCmd("cost", "List cards whose cost is within a range",
		(*catalog.Catalog).FindByCost))
	findCmd.AddCommand(rangeFindCmd("attack", "List cards whose attack is within a range",
		(*catalog.Catalog).FindByAttack))
	findCmd.AddCommand(rangeFindCmd("health", "List cards whose health is within a range",
		(*catalog.Catalog).FindByHealth))
	findCmd.AddCommand(rangeFindCmd("spell-damage", "List cards whose spell damage is within a range",
		(*catalog.Catalog).FindBySpellDamage))

	findCmd.AddCommand(findMechanicsCmd)
	findMechanicsCmd.Flags().Bool("all", false, "Only list cards that have every tag")
}
