package validator

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardcatalog/data"
)

func TestValidateEmbeddedData(t *testing.T) {
	results, err := NewValidator(data.FS).Validate()
	require.NoError(t, err)

	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidateReportsEveryBrokenFile(t *testing.T) {
	fsys := fstest.MapFS{
		"a.toml": {Data: []byte("[[card]]\nid = \"X\"\nclass = \"BARD\"\n")},
		"b.json": {Data: []byte(`{"card": [`)},
		"c.yaml": {Data: []byte("card:\n  - id: HERO_01\n    name: Garrosh\n    type: SPELL\n")},
		"d.yaml": {Data: []byte("card:\n  - id: HERO_01\n    name: Garrosh again\n")},
	}

	results, err := NewValidator(fsys).Validate()
	require.NoError(t, err)

	require.Len(t, results.Errors, 4)
	assert.Contains(t, results.Errors[0], "a.toml")
	assert.Contains(t, results.Errors[1], "b.json")
	assert.Contains(t, results.Errors[2], "duplicate card id HERO_01 in d.yaml")
	assert.Contains(t, results.Errors[3], "hero card HERO_01 for WARRIOR has type SPELL")
}

func TestValidateWarnings(t *testing.T) {
	fsys := fstest.MapFS{
		"cards.toml": {Data: []byte(`
[[card]]
id = "M1"
name = "Half Minion"
type = "MINION"
attack = 1

[[card]]
id = "S1"
type = "SPELL"
attack = 2

[[card]]
id = "W1"
name = "Bare Weapon"
type = "WEAPON"
`)},
	}

	results, err := NewValidator(fsys).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)

	assert.Contains(t, results.Warnings, "no power file found (powers.toml)")
	assert.Contains(t, results.Warnings, "minion M1 has no health")
	assert.Contains(t, results.Warnings, "spell S1 has attack or health set")
	assert.Contains(t, results.Warnings, "weapon W1 has no attack")
	assert.Contains(t, results.Warnings, "card S1 has no name")
	assert.Contains(t, results.Warnings, "missing hero card HERO_08 for MAGE")
	assert.Contains(t, results.Warnings, "missing hero power CS2_034 for MAGE")
}

func TestValidateNoCardFiles(t *testing.T) {
	results, err := NewValidator(fstest.MapFS{"notes.txt": {}}).Validate()
	require.NoError(t, err)
	assert.Equal(t, []string{"no card files found (expecting *.toml, *.yaml, *.yml or *.json)"}, results.Errors)
}

func TestValidatePowerErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"cards.toml":  {Data: []byte("[[card]]\nid = \"A\"\nname = \"A\"\ntype = \"SPELL\"\n")},
		"powers.toml": {Data: []byte("[[power]]\nid = \"B\"\n")},
	}

	results, err := NewValidator(fsys).Validate()
	require.NoError(t, err)
	require.Len(t, results.Errors, 1)
	assert.Contains(t, results.Errors[0], "unknown card id: B")
}
