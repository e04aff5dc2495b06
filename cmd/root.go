package cmd

import (
	"io"
	"log/slog"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardcatalog/internal/catalog"
	"github.com/arcanaland/cardcatalog/internal/config"
	"github.com/arcanaland/cardcatalog/internal/loader"
)

var (
	dataFlag    string
	verboseFlag bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardcatalog",
	Short: "Query a collectible card game catalog",
	Long: `Cardcatalog looks up cards by id, name, rarity, class, set, type, race,
stat ranges and mechanics, and resolves each class to its hero and hero power.

Cards come from the built-in set unless a data directory is given with --data
or stored with 'cardcatalog library set'.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if cfg.NoColor {
			colorize.NoColor = true
		}
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dataFlag, "data", "D", "", "Card data directory (defaults to the configured library or the built-in cards)")
	RootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log catalog loading to stderr")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// openCatalog builds a catalog over the resolved data directory and loads it.
// The returned directory is empty when the built-in cards are used.
func openCatalog(cmd *cobra.Command) (*catalog.Catalog, string, error) {
	dir, err := config.ResolveDataDir(dataFlag)
	if err != nil {
		return nil, "", err
	}

	loaders := loader.Embedded()
	if dir != "" {
		loaders = loader.FromFS(os.DirFS(dir))
	}

	var out io.Writer = io.Discard
	if verboseFlag {
		out = cmd.ErrOrStderr()
	}
	logger := slog.New(slog.NewTextHandler(out, nil))
	if dir != "" {
		logger = logger.With("dir", dir)
	}

	c := catalog.New(catalog.WithLoaders(loaders...), catalog.WithLogger(logger))
	if err := c.Load(); err != nil {
		return nil, dir, err
	}
	return c, dir, nil
}
