package card

import (
	"fmt"
	"strings"
)

// ParseError is returned when a name doesn't match any value of an enum.
type ParseError struct {
	Kind  string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.Value)
}

func enumName[T ~int](names []string, v T) string {
	if int(v) < 0 || int(v) >= len(names) {
		return fmt.Sprintf("%d", int(v))
	}
	return names[v]
}

// parseEnum matches s against names case-insensitively. Dashes and spaces are
// accepted in place of underscores so "hero-power" parses like "HERO_POWER".
func parseEnum[T ~int](kind string, names []string, s string) (T, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	for i, name := range names {
		if name == key {
			return T(i), nil
		}
	}
	return 0, &ParseError{Kind: kind, Value: s}
}

func enumValues[T ~int](names []string) []T {
	values := make([]T, len(names))
	for i := range names {
		values[i] = T(i)
	}
	return values
}

// Rarity of a card.
type Rarity int

const (
	RarityInvalid Rarity = iota
	RarityCommon
	RarityFree
	RarityRare
	RarityEpic
	RarityLegendary
)

var rarityNames = []string{"INVALID", "COMMON", "FREE", "RARE", "EPIC", "LEGENDARY"}

func (r Rarity) String() string { return enumName(rarityNames, r) }

// ParseRarity parses a rarity name such as "LEGENDARY".
func ParseRarity(s string) (Rarity, error) { return parseEnum[Rarity]("rarity", rarityNames, s) }

// Rarities returns every rarity, Invalid included.
func Rarities() []Rarity { return enumValues[Rarity](rarityNames) }

// Class is the hero class a card belongs to.
type Class int

const (
	ClassInvalid Class = iota
	ClassDeathKnight
	ClassDruid
	ClassHunter
	ClassMage
	ClassPaladin
	ClassPriest
	ClassRogue
	ClassShaman
	ClassWarlock
	ClassWarrior
	ClassDream
	ClassNeutral
)

var classNames = []string{
	"INVALID", "DEATHKNIGHT", "DRUID", "HUNTER", "MAGE", "PALADIN", "PRIEST",
	"ROGUE", "SHAMAN", "WARLOCK", "WARRIOR", "DREAM", "NEUTRAL",
}

func (c Class) String() string { return enumName(classNames, c) }

// ParseClass parses a class name such as "MAGE".
func ParseClass(s string) (Class, error) { return parseEnum[Class]("class", classNames, s) }

// Classes returns every class, Invalid included.
func Classes() []Class { return enumValues[Class](classNames) }

// PlayableClasses returns the nine classes that have a hero and a default hero power.
func PlayableClasses() []Class {
	return []Class{
		ClassDruid, ClassHunter, ClassMage, ClassPaladin, ClassPriest,
		ClassRogue, ClassShaman, ClassWarlock, ClassWarrior,
	}
}

// Set is the card set (expansion) a card was released in.
type Set int

const (
	SetInvalid Set = iota
	SetCore
	SetExpert1
	SetHOF
	SetMissions
	SetDemo
	SetNone
	SetCheat
	SetBlank
	SetDebugSP
	SetPromo
	SetNaxx
	SetGVG
	SetBRM
	SetTGT
	SetCredits
	SetHeroSkins
	SetTB
	SetSlush
	SetLOE
	SetOG
	SetOGReserve
	SetKara
	SetKaraReserve
	SetGangs
	SetGangsReserve
	SetUngoro
	SetIcecrown
	SetLootapalooza
)

var setNames = []string{
	"INVALID", "CORE", "EXPERT1", "HOF", "MISSIONS", "DEMO", "NONE", "CHEAT",
	"BLANK", "DEBUG_SP", "PROMO", "NAXX", "GVG", "BRM", "TGT", "CREDITS",
	"HERO_SKINS", "TB", "SLUSH", "LOE", "OG", "OG_RESERVE", "KARA",
	"KARA_RESERVE", "GANGS", "GANGS_RESERVE", "UNGORO", "ICECROWN", "LOOTAPALOOZA",
}

func (s Set) String() string { return enumName(setNames, s) }

// ParseSet parses a set name such as "EXPERT1".
func ParseSet(s string) (Set, error) { return parseEnum[Set]("card set", setNames, s) }

// Sets returns every set, Invalid included.
func Sets() []Set { return enumValues[Set](setNames) }

// Type is the card type.
type Type int

const (
	TypeInvalid Type = iota
	TypeGame
	TypePlayer
	TypeHero
	TypeMinion
	TypeSpell
	TypeEnchantment
	TypeWeapon
	TypeItem
	TypeToken
	TypeHeroPower
)

var typeNames = []string{
	"INVALID", "GAME", "PLAYER", "HERO", "MINION", "SPELL", "ENCHANTMENT",
	"WEAPON", "ITEM", "TOKEN", "HERO_POWER",
}

func (t Type) String() string { return enumName(typeNames, t) }

// ParseType parses a card type name such as "MINION".
func ParseType(s string) (Type, error) { return parseEnum[Type]("card type", typeNames, s) }

// Types returns every card type, Invalid included.
func Types() []Type { return enumValues[Type](typeNames) }

// Race is a minion's creature race.
type Race int

const (
	RaceInvalid Race = iota
	RaceBloodElf
	RaceDraenei
	RaceDwarf
	RaceGnome
	RaceGoblin
	RaceHuman
	RaceNightElf
	RaceOrc
	RaceTauren
	RaceTroll
	RaceUndead
	RaceWorgen
	RaceGoblin2
	RaceMurloc
	RaceDemon
	RaceScourge
	RaceMechanical
	RaceElemental
	RaceOgre
	RaceBeast
	RaceTotem
	RaceNerubian
	RacePirate
	RaceDragon
	RaceBlank
	RaceAll
)

var raceNames = []string{
	"INVALID", "BLOODELF", "DRAENEI", "DWARF", "GNOME", "GOBLIN", "HUMAN",
	"NIGHTELF", "ORC", "TAUREN", "TROLL", "UNDEAD", "WORGEN", "GOBLIN2",
	"MURLOC", "DEMON", "SCOURGE", "MECHANICAL", "ELEMENTAL", "OGRE", "BEAST",
	"TOTEM", "NERUBIAN", "PIRATE", "DRAGON", "BLANK", "ALL",
}

func (r Race) String() string { return enumName(raceNames, r) }

// ParseRace parses a race name such as "MURLOC".
func ParseRace(s string) (Race, error) { return parseEnum[Race]("race", raceNames, s) }

// Races returns every race, Invalid included.
func Races() []Race { return enumValues[Race](raceNames) }

// GameTag is a gameplay keyword attached to a card.
type GameTag int

const (
	TagInvalid GameTag = iota
	TagAdjacentBuff
	TagAIMustPlay
	TagAura
	TagBattlecry
	TagCharge
	TagChooseOne
	TagCombo
	TagCounter
	TagDeathrattle
	TagDiscover
	TagDivineShield
	TagEnraged
	TagEvilGlow
	TagForgetful
	TagFreeze
	TagImmune
	TagInspire
	TagJadeGolem
	TagMorph
	TagPoisonous
	TagQuest
	TagReceivesDoubleSpellDamageBonus
	TagRitual
	TagSecret
	TagSilence
	TagStealth
	TagTagOneTurnEffect
	TagTaunt
	TagTopdeck
	TagUntouchable
	TagWindfury
	TagImmuneToSpellpower
	TagInvisibleDeathrattle
	TagLifesteal
	TagAdapt
	TagRecruit
	TagEcho
	TagRush
	TagOverkill
	TagSpellpower
	TagOverload
)

var tagNames = []string{
	"INVALID", "ADJACENT_BUFF", "AI_MUST_PLAY", "AURA", "BATTLECRY", "CHARGE",
	"CHOOSE_ONE", "COMBO", "COUNTER", "DEATHRATTLE", "DISCOVER", "DIVINE_SHIELD",
	"ENRAGED", "EVIL_GLOW", "FORGETFUL", "FREEZE", "IMMUNE", "INSPIRE",
	"JADE_GOLEM", "MORPH", "POISONOUS", "QUEST", "RECEIVES_DOUBLE_SPELLDAMAGE_BONUS",
	"RITUAL", "SECRET", "SILENCE", "STEALTH", "TAG_ONE_TURN_EFFECT", "TAUNT",
	"TOPDECK", "UNTOUCHABLE", "WINDFURY", "IMMUNETOSPELLPOWER",
	"INVISIBLEDEATHRATTLE", "LIFESTEAL", "ADAPT", "RECRUIT", "ECHO", "RUSH",
	"OVERKILL", "SPELLPOWER", "OVERLOAD",
}

func (t GameTag) String() string { return enumName(tagNames, t) }

// ParseGameTag parses a mechanic name such as "TAUNT".
func ParseGameTag(s string) (GameTag, error) { return parseEnum[GameTag]("mechanic", tagNames, s) }

// GameTags returns every game tag, Invalid included.
func GameTags() []GameTag { return enumValues[GameTag](tagNames) }
