package card

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyCard(t *testing.T) {
	c := Empty()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, "", c.ID)
	assert.Equal(t, RarityInvalid, c.Rarity)
	assert.Equal(t, ClassInvalid, c.Class)
	assert.Equal(t, SetInvalid, c.Set)
	assert.Equal(t, TypeInvalid, c.Type)
	assert.Equal(t, RaceInvalid, c.Race)
	assert.Equal(t, 0, c.Cost)
	assert.False(t, c.Attack.IsSet())
	assert.False(t, c.Health.IsSet())
	assert.False(t, c.SpellDamage.IsSet())
	assert.Equal(t, "<none>", c.String())
}

func TestStat(t *testing.T) {
	t.Run("absent differs from zero", func(t *testing.T) {
		var absent Stat
		zero := StatOf(0)

		_, ok := absent.Get()
		assert.False(t, ok)
		v, ok := zero.Get()
		assert.True(t, ok)
		assert.Equal(t, 0, v)
		assert.NotEqual(t, absent, zero)
	})

	t.Run("within is inclusive and never matches absent", func(t *testing.T) {
		assert.True(t, StatOf(3).Within(3, 5))
		assert.True(t, StatOf(5).Within(3, 5))
		assert.False(t, StatOf(6).Within(3, 5))
		assert.False(t, Stat{}.Within(0, 100))
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "-", Stat{}.String())
		assert.Equal(t, "7", StatOf(7).String())
	})
}

func TestCloneIsIndependent(t *testing.T) {
	orig := Card{ID: "EX1_001", Mechanics: []GameTag{TagTaunt, TagDivineShield}}

	cp := orig.Clone()
	cp.Mechanics[0] = TagCharge
	cp.Mechanics = append(cp.Mechanics, TagWindfury)

	assert.Equal(t, []GameTag{TagTaunt, TagDivineShield}, orig.Mechanics)
	assert.Nil(t, Card{}.Clone().Mechanics)
}

func TestAddMechanicsCollapsesDuplicates(t *testing.T) {
	var c Card
	c.AddMechanics(TagTaunt, TagBattlecry, TagTaunt)
	c.AddMechanics(TagBattlecry, TagDeathrattle)

	assert.Equal(t, []GameTag{TagTaunt, TagBattlecry, TagDeathrattle}, c.Mechanics)
	assert.True(t, c.HasMechanic(TagDeathrattle))
	assert.False(t, c.HasMechanic(TagCharge))
}

func TestParseEnums(t *testing.T) {
	t.Run("names round trip", func(t *testing.T) {
		for _, r := range Rarities() {
			got, err := ParseRarity(r.String())
			require.NoError(t, err)
			assert.Equal(t, r, got)
		}
		for _, c := range Classes() {
			got, err := ParseClass(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, got)
		}
		for _, s := range Sets() {
			got, err := ParseSet(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, got)
		}
		for _, ty := range Types() {
			got, err := ParseType(ty.String())
			require.NoError(t, err)
			assert.Equal(t, ty, got)
		}
		for _, r := range Races() {
			got, err := ParseRace(r.String())
			require.NoError(t, err)
			assert.Equal(t, r, got)
		}
		for _, tag := range GameTags() {
			got, err := ParseGameTag(tag.String())
			require.NoError(t, err)
			assert.Equal(t, tag, got)
		}
	})

	t.Run("case and separators are forgiving", func(t *testing.T) {
		ty, err := ParseType("hero-power")
		require.NoError(t, err)
		assert.Equal(t, TypeHeroPower, ty)

		tag, err := ParseGameTag(" divine shield ")
		require.NoError(t, err)
		assert.Equal(t, TagDivineShield, tag)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParseClass("BARD")
		require.Error(t, err)

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "class", perr.Kind)
		assert.Equal(t, "BARD", perr.Value)
	})

	t.Run("out of range value prints as number", func(t *testing.T) {
		assert.Equal(t, "99", Class(99).String())
	})
}

func TestPlayableClasses(t *testing.T) {
	classes := PlayableClasses()

	assert.Len(t, classes, 9)
	assert.NotContains(t, classes, ClassNeutral)
	assert.NotContains(t, classes, ClassDeathKnight)
}
