package validator

import (
	"fmt"
	"io/fs"

	"github.com/arcanaland/cardcatalog/internal/card"
	"github.com/arcanaland/cardcatalog/internal/catalog"
	"github.com/arcanaland/cardcatalog/internal/loader"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	FS      fs.FS
	Results ValidationResults

	cards []card.Card
}

func NewValidator(fsys fs.FS) *Validator {
	return &Validator{
		FS:      fsys,
		Results: ValidationResults{},
	}
}

// Validate checks a card data directory. The returned error is only set when
// the directory can't be read at all; problems with the data are reported in
// the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateCardFiles(); err != nil {
		return v.Results, err
	}

	v.validatePowers()
	v.validateStats()
	v.validateNames()
	v.validateHeroes()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateCardFiles decodes every card file on its own so that one broken
// file doesn't hide problems in the others.
func (v *Validator) validateCardFiles() error {
	files, err := loader.CardFiles(v.FS)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		v.errorf("no card files found (expecting *.toml, *.yaml, *.yml or *.json)")
		return nil
	}

	origin := make(map[string]string)
	for _, name := range files {
		cards, err := loader.ReadCards(v.FS, name)
		if err != nil {
			v.errorf("%v", err)
			continue
		}

		if len(cards) == 0 {
			v.warnf("%s contains no cards", name)
		}

		for _, c := range cards {
			if first, ok := origin[c.ID]; ok {
				v.errorf("duplicate card id %s in %s (first defined in %s)", c.ID, name, first)
				continue
			}
			origin[c.ID] = name
			v.cards = append(v.cards, c)
		}
	}

	return nil
}

// validatePowers runs the power loader against the cards that loaded cleanly
func (v *Validator) validatePowers() {
	if _, ok, err := loader.PowerFile(v.FS); err != nil {
		v.errorf("%v", err)
		return
	} else if !ok {
		v.warnf("no power file found (powers.toml)")
		return
	}

	if err := (loader.PowerLoader{FS: v.FS}).Load(&v.cards); err != nil {
		v.errorf("%v", err)
	}
}

// validateStats checks that optional stats match the card type
func (v *Validator) validateStats() {
	for _, c := range v.cards {
		switch c.Type {
		case card.TypeMinion:
			if !c.Attack.IsSet() {
				v.warnf("minion %s has no attack", c.ID)
			}
			if !c.Health.IsSet() {
				v.warnf("minion %s has no health", c.ID)
			}
		case card.TypeWeapon:
			if !c.Attack.IsSet() {
				v.warnf("weapon %s has no attack", c.ID)
			}
		case card.TypeHero:
			if !c.Health.IsSet() {
				v.warnf("hero %s has no health", c.ID)
			}
		case card.TypeSpell, card.TypeHeroPower:
			if c.Attack.IsSet() || c.Health.IsSet() {
				v.warnf("%s %s has attack or health set", typeLabel(c.Type), c.ID)
			}
		case card.TypeInvalid:
			v.warnf("card %s has no type", c.ID)
		}
	}
}

func (v *Validator) validateNames() {
	for _, c := range v.cards {
		if c.Name == "" {
			v.warnf("card %s has no name", c.ID)
		}
	}
}

// validateHeroes checks that every playable class has its hero and hero power
func (v *Validator) validateHeroes() {
	byID := make(map[string]card.Card, len(v.cards))
	for _, c := range v.cards {
		byID[c.ID] = c
	}

	for _, class := range card.PlayableClasses() {
		heroID, _ := catalog.HeroCardID(class)
		if hero, ok := byID[heroID]; !ok {
			v.warnf("missing hero card %s for %s", heroID, class)
		} else if hero.Type != card.TypeHero {
			v.errorf("hero card %s for %s has type %s", heroID, class, hero.Type)
		}

		powerID, _ := catalog.HeroPowerID(class)
		if power, ok := byID[powerID]; !ok {
			v.warnf("missing hero power %s for %s", powerID, class)
		} else if power.Type != card.TypeHeroPower {
			v.errorf("hero power %s for %s has type %s", powerID, class, power.Type)
		}
	}
}

func typeLabel(t card.Type) string {
	switch t {
	case card.TypeHeroPower:
		return "hero power"
	default:
		return "spell"
	}
}
