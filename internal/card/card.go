package card

// Card represents one card record as loaded into the catalog.
// The zero value is the "not found" sentinel returned by single-result lookups.
type Card struct {
	ID          string    // Canonical ID (e.g., CS2_034, HERO_01)
	Name        string    // Display name, not guaranteed unique
	Rarity      Rarity    // Invalid when the card has no rarity
	Class       Class     // Invalid when unset, Neutral for class-less cards
	Set         Set       // Card set the record ships in
	Type        Type      // Minion, Spell, Weapon, Hero, HeroPower, ...
	Race        Race      // Creature race, Invalid for most cards
	Cost        int       // Mana cost, always present
	Attack      Stat      // Minions, weapons and heroes only
	Health      Stat      // Minions and heroes only
	SpellDamage Stat      // Cards granting spell damage only
	Mechanics   []GameTag // Keyword tags, no duplicates
	Text        string    // Rules text
	Power       string    // Behaviour reference attached by the power loader
}

// Empty returns the sentinel card used to signal that nothing matched.
func Empty() Card {
	return Card{}
}

// IsEmpty reports whether c is the "not found" sentinel.
func (c Card) IsEmpty() bool {
	return c.ID == ""
}

// Clone returns a deep copy of c so callers can't reach shared state.
func (c Card) Clone() Card {
	if c.Mechanics != nil {
		c.Mechanics = append(make([]GameTag, 0, len(c.Mechanics)), c.Mechanics...)
	}
	return c
}

// HasMechanic reports whether the card carries tag.
func (c Card) HasMechanic(tag GameTag) bool {
	for _, m := range c.Mechanics {
		if m == tag {
			return true
		}
	}
	return false
}

// AddMechanics merges tags into the card's mechanics, skipping ones it already has.
func (c *Card) AddMechanics(tags ...GameTag) {
	for _, tag := range tags {
		if !c.HasMechanic(tag) {
			c.Mechanics = append(c.Mechanics, tag)
		}
	}
}

// String returns "Name (ID)" or "<none>" for the sentinel.
func (c Card) String() string {
	if c.IsEmpty() {
		return "<none>"
	}
	return c.Name + " (" + c.ID + ")"
}
