package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardcatalog/internal/card"
)

func TestHeroMapping(t *testing.T) {
	var cards []card.Card
	for _, class := range card.PlayableClasses() {
		heroID, ok := HeroCardID(class)
		require.True(t, ok, class.String())
		powerID, ok := HeroPowerID(class)
		require.True(t, ok, class.String())

		cards = append(cards,
			card.Card{ID: heroID, Class: class, Type: card.TypeHero},
			card.Card{ID: powerID, Class: class, Type: card.TypeHeroPower, Cost: 2},
		)
	}
	c := New(WithLoaders(loadCards(cards...)))

	assert.Equal(t, "HERO_01", c.HeroCard(card.ClassWarrior).ID)
	assert.Equal(t, "HERO_08", c.HeroCard(card.ClassMage).ID)
	assert.Equal(t, "CS2_034", c.DefaultHeroPower(card.ClassMage).ID)
	assert.Equal(t, "CS2_102", c.DefaultHeroPower(card.ClassWarrior).ID)

	for _, class := range []card.Class{card.ClassInvalid, card.ClassNeutral, card.ClassDeathKnight, card.ClassDream, card.Class(42)} {
		assert.True(t, c.HeroCard(class).IsEmpty(), class.String())
		assert.True(t, c.DefaultHeroPower(class).IsEmpty(), class.String())
	}
}

func TestHeroMissingFromCatalog(t *testing.T) {
	c := New()

	assert.True(t, c.HeroCard(card.ClassWarrior).IsEmpty())
	assert.True(t, c.DefaultHeroPower(card.ClassWarrior).IsEmpty())
}
