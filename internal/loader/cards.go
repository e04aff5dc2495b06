package loader

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/arcanaland/cardcatalog/internal/card"
)

// CardLoader appends every card found in the data files at the root of FS.
// Files are read in lexical order, so load order is file order then entry order.
type CardLoader struct {
	FS fs.FS
}

// cardRecord is the on-disk shape of a card. Optional stats are pointers so
// a missing key stays distinguishable from 0.
type cardRecord struct {
	ID          string   `toml:"id" yaml:"id" json:"id"`
	Name        string   `toml:"name" yaml:"name" json:"name"`
	Rarity      string   `toml:"rarity" yaml:"rarity" json:"rarity"`
	Class       string   `toml:"class" yaml:"class" json:"class"`
	Set         string   `toml:"set" yaml:"set" json:"set"`
	Type        string   `toml:"type" yaml:"type" json:"type"`
	Race        string   `toml:"race" yaml:"race" json:"race"`
	Cost        int      `toml:"cost" yaml:"cost" json:"cost"`
	Attack      *int     `toml:"attack" yaml:"attack" json:"attack"`
	Health      *int     `toml:"health" yaml:"health" json:"health"`
	SpellDamage *int     `toml:"spell_damage" yaml:"spell_damage" json:"spell_damage"`
	Mechanics   []string `toml:"mechanics" yaml:"mechanics" json:"mechanics"`
	Text        string   `toml:"text" yaml:"text" json:"text"`
}

type cardFile struct {
	Cards []cardRecord `toml:"card" yaml:"card" json:"card"`
}

// Load implements catalog.Loader.
func (l CardLoader) Load(cards *[]card.Card) error {
	files, err := CardFiles(l.FS)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(*cards))
	for _, c := range *cards {
		seen[c.ID] = true
	}

	for _, name := range files {
		loaded, err := ReadCards(l.FS, name)
		if err != nil {
			return err
		}

		for _, c := range loaded {
			if seen[c.ID] {
				return fmt.Errorf("%s: %w: %s", name, ErrDuplicateID, c.ID)
			}
			seen[c.ID] = true
			*cards = append(*cards, c)
		}
	}

	return nil
}

// ReadCards decodes a single card file.
func ReadCards(fsys fs.FS, name string) ([]card.Card, error) {
	records, err := readCardFile(fsys, name)
	if err != nil {
		return nil, err
	}

	cards := make([]card.Card, 0, len(records))
	for _, rec := range records {
		c, err := rec.toCard()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// CardFiles lists the card data files at the root of fsys in lexical order.
func CardFiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("error reading card data directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !isDataFile(entry.Name()) || isPowerFile(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

func readCardFile(fsys fs.FS, name string) ([]cardRecord, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", name, err)
	}

	// JSON exports are commonly a bare array of cards.
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' && strings.EqualFold(path.Ext(name), ".json") {
		var records []cardRecord
		if err := decode(name, raw, &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var file cardFile
	if err := decode(name, raw, &file); err != nil {
		return nil, err
	}
	return file.Cards, nil
}

func (r cardRecord) toCard() (card.Card, error) {
	if r.ID == "" {
		return card.Card{}, fmt.Errorf("%w (name %q)", ErrMissingID, r.Name)
	}

	c := card.Card{
		ID:   r.ID,
		Name: r.Name,
		Cost: r.Cost,
		Text: r.Text,
	}
	wrap := func(err error) error {
		return fmt.Errorf("card %s: %w", r.ID, err)
	}

	var err error
	if c.Rarity, err = parseOptional(r.Rarity, card.ParseRarity); err != nil {
		return card.Card{}, wrap(err)
	}
	if c.Class, err = parseOptional(r.Class, card.ParseClass); err != nil {
		return card.Card{}, wrap(err)
	}
	if c.Set, err = parseOptional(r.Set, card.ParseSet); err != nil {
		return card.Card{}, wrap(err)
	}
	if c.Type, err = parseOptional(r.Type, card.ParseType); err != nil {
		return card.Card{}, wrap(err)
	}
	if c.Race, err = parseOptional(r.Race, card.ParseRace); err != nil {
		return card.Card{}, wrap(err)
	}

	if r.Cost < 0 {
		return card.Card{}, wrap(fmt.Errorf("cost: %w", ErrNegative))
	}
	if c.Attack, err = toStat("attack", r.Attack); err != nil {
		return card.Card{}, wrap(err)
	}
	if c.Health, err = toStat("health", r.Health); err != nil {
		return card.Card{}, wrap(err)
	}
	if c.SpellDamage, err = toStat("spell_damage", r.SpellDamage); err != nil {
		return card.Card{}, wrap(err)
	}

	tags, err := parseTags(r.Mechanics)
	if err != nil {
		return card.Card{}, wrap(err)
	}
	c.AddMechanics(tags...)

	return c, nil
}

// parseOptional maps an empty name to the enum's zero ("invalid") value.
func parseOptional[T ~int](s string, parse func(string) (T, error)) (T, error) {
	if s == "" {
		return 0, nil
	}
	return parse(s)
}

func toStat(field string, v *int) (card.Stat, error) {
	if v == nil {
		return card.Stat{}, nil
	}
	if *v < 0 {
		return card.Stat{}, fmt.Errorf("%s: %w", field, ErrNegative)
	}
	return card.StatOf(*v), nil
}

func parseTags(names []string) ([]card.GameTag, error) {
	tags := make([]card.GameTag, 0, len(names))
	for _, name := range names {
		tag, err := card.ParseGameTag(name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
