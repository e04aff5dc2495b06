package catalog

import "github.com/arcanaland/cardcatalog/internal/card"

var heroCardIDs = map[card.Class]string{
	card.ClassDruid:   "HERO_06",
	card.ClassHunter:  "HERO_05",
	card.ClassMage:    "HERO_08",
	card.ClassPaladin: "HERO_04",
	card.ClassPriest:  "HERO_09",
	card.ClassRogue:   "HERO_03",
	card.ClassShaman:  "HERO_02",
	card.ClassWarlock: "HERO_07",
	card.ClassWarrior: "HERO_01",
}

var heroPowerIDs = map[card.Class]string{
	card.ClassDruid:   "CS2_017",
	card.ClassHunter:  "DS1h_292",
	card.ClassMage:    "CS2_034",
	card.ClassPaladin: "CS2_101",
	card.ClassPriest:  "CS1h_001",
	card.ClassRogue:   "CS2_083b",
	card.ClassShaman:  "CS2_049",
	card.ClassWarlock: "CS2_056",
	card.ClassWarrior: "CS2_102",
}

// HeroCardID returns the id of the hero card for class.
func HeroCardID(class card.Class) (string, bool) {
	id, ok := heroCardIDs[class]
	return id, ok
}

// HeroPowerID returns the id of the default hero power for class.
func HeroPowerID(class card.Class) (string, bool) {
	id, ok := heroPowerIDs[class]
	return id, ok
}

// HeroCard returns the hero card for class, or the empty card when the
// class has no hero or the hero isn't loaded.
func (c *Catalog) HeroCard(class card.Class) card.Card {
	id, ok := HeroCardID(class)
	if !ok {
		return card.Card{}
	}
	return c.FindByID(id)
}

// DefaultHeroPower returns the basic hero power for class, or the empty card.
func (c *Catalog) DefaultHeroPower(class card.Class) card.Card {
	id, ok := HeroPowerID(class)
	if !ok {
		return card.Card{}
	}
	return c.FindByID(id)
}
