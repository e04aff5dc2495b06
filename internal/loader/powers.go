package loader

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/arcanaland/cardcatalog/internal/card"
)

// PowerLoader attaches behaviour references and extra mechanics to cards
// that are already loaded. It must run after CardLoader.
type PowerLoader struct {
	FS fs.FS
}

type powerRecord struct {
	ID        string   `toml:"id" yaml:"id" json:"id"`
	Power     string   `toml:"power" yaml:"power" json:"power"`
	Mechanics []string `toml:"mechanics" yaml:"mechanics" json:"mechanics"`
}

type powerFile struct {
	Powers []powerRecord `toml:"power" yaml:"power" json:"power"`
}

// Load implements catalog.Loader. A data directory without a power file is fine.
func (l PowerLoader) Load(cards *[]card.Card) error {
	name, ok, err := PowerFile(l.FS)
	if err != nil || !ok {
		return err
	}

	raw, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", name, err)
	}
	var file powerFile
	if err := decode(name, raw, &file); err != nil {
		return err
	}

	index := make(map[string]int, len(*cards))
	for i := range *cards {
		if _, ok := index[(*cards)[i].ID]; !ok {
			index[(*cards)[i].ID] = i
		}
	}

	for _, rec := range file.Powers {
		i, ok := index[rec.ID]
		if !ok {
			return fmt.Errorf("%s: %w: %s", name, ErrUnknownCard, rec.ID)
		}
		tags, err := parseTags(rec.Mechanics)
		if err != nil {
			return fmt.Errorf("%s: card %s: %w", name, rec.ID, err)
		}

		c := &(*cards)[i]
		if rec.Power != "" {
			c.Power = rec.Power
		}
		c.AddMechanics(tags...)
	}

	return nil
}

// PowerFile returns the name of the power file at the root of fsys, if any.
func PowerFile(fsys fs.FS) (string, bool, error) {
	for _, ext := range Extensions {
		name := powerFileBase + ext
		_, err := fs.Stat(fsys, name)
		if err == nil {
			return name, true, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", false, fmt.Errorf("error checking %s: %w", name, err)
		}
	}
	return "", false, nil
}
