package catalog

import "github.com/arcanaland/cardcatalog/internal/card"

// FindByID returns the card with the given id, or the empty card if there is none.
func (c *Catalog) FindByID(id string) card.Card {
	found, _ := c.Lookup(id)
	return found
}

// Lookup is FindByID with an explicit found flag.
func (c *Catalog) Lookup(id string) (card.Card, bool) {
	cards := c.collection()
	i, ok := c.byID[id]
	if !ok || id == "" {
		return card.Card{}, false
	}
	return cards[i].Clone(), true
}

// FindByName returns the first card named name, or the empty card.
func (c *Catalog) FindByName(name string) card.Card {
	cards := c.collection()
	for i := range cards {
		if cards[i].Name == name {
			return cards[i].Clone()
		}
	}
	return card.Card{}
}

func (c *Catalog) FindByRarity(rarity card.Rarity) []card.Card {
	return c.filter(func(cd *card.Card) bool { return cd.Rarity == rarity })
}

func (c *Catalog) FindByClass(class card.Class) []card.Card {
	return c.filter(func(cd *card.Card) bool { return cd.Class == class })
}

func (c *Catalog) FindBySet(set card.Set) []card.Card {
	return c.filter(func(cd *card.Card) bool { return cd.Set == set })
}

func (c *Catalog) FindByType(cardType card.Type) []card.Card {
	return c.filter(func(cd *card.Card) bool { return cd.Type == cardType })
}

func (c *Catalog) FindByRace(race card.Race) []card.Card {
	return c.filter(func(cd *card.Card) bool { return cd.Race == race })
}

// FindByCost returns cards with min <= cost <= max.
func (c *Catalog) FindByCost(min, max int) []card.Card {
	return c.filter(func(cd *card.Card) bool { return min <= cd.Cost && cd.Cost <= max })
}

// FindByAttack returns cards that have an attack value in [min, max].
// Cards without attack never match.
func (c *Catalog) FindByAttack(min, max int) []card.Card {
	return c.filter(func(cd *card.Card) bool { return cd.Attack.Within(min, max) })
}

// FindByHealth returns cards that have a health value in [min, max].
// Cards without health never match.
func (c *Catalog) FindByHealth(min, max int) []card.Card {
	return c.filter(func(cd *card.Card) bool { return cd.Health.Within(min, max) })
}

// FindBySpellDamage returns cards that have a spell damage value in [min, max].
// Cards without spell damage never match.
func (c *Catalog) FindBySpellDamage(min, max int) []card.Card {
	return c.filter(func(cd *card.Card) bool { return cd.SpellDamage.Within(min, max) })
}

// FindByMechanics returns cards carrying at least one of tags. A card that
// matches several tags is returned once.
func (c *Catalog) FindByMechanics(tags ...card.GameTag) []card.Card {
	return c.filter(func(cd *card.Card) bool {
		for _, tag := range tags {
			if cd.HasMechanic(tag) {
				return true
			}
		}
		return false
	})
}

// FindByAllMechanics returns cards carrying every one of tags.
// An empty tag list matches nothing.
func (c *Catalog) FindByAllMechanics(tags ...card.GameTag) []card.Card {
	if len(tags) == 0 {
		return []card.Card{}
	}
	return c.filter(func(cd *card.Card) bool {
		for _, tag := range tags {
			if !cd.HasMechanic(tag) {
				return false
			}
		}
		return true
	})
}
