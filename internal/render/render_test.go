package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardcatalog/internal/card"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := colorize.NoColor
	colorize.NoColor = true
	t.Cleanup(func() { colorize.NoColor = prev })
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{""}, wrapText("   ", 20))
	assert.Equal(t,
		[]string{"Deal 3 damage to a", "character and Freeze", "it."},
		wrapText("Deal 3 damage to a character and Freeze it.", 20))
}

func TestStripAnsi(t *testing.T) {
	s := "\x1b[38;2;1;2;3m\x1b[48;2;4;5;6m▀\x1b[0mabc"
	assert.Equal(t, "▀abc", stripAnsi(s))
	assert.Equal(t, 4, visibleWidth(s))
}

func TestStats(t *testing.T) {
	assert.Equal(t, "", Stats(card.Card{}))
	assert.Equal(t, "3/2", Stats(card.Card{Attack: card.StatOf(3), Health: card.StatOf(2)}))
	assert.Equal(t, "3/-", Stats(card.Card{Attack: card.StatOf(3)}))
	assert.Equal(t, "0/7", Stats(card.Card{Attack: card.StatOf(0), Health: card.StatOf(7)}))
}

func TestImageToAnsi(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{G: 255, A: 255})
		}
	}

	art := ImageToAnsi(img, 3, 2)
	lines := strings.Split(strings.TrimRight(art, "\n"), "\n")

	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 3, visibleWidth(line))
	}
	assert.Contains(t, art, "\x1b[38;2;")
}

func TestFindArt(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "art", "CS2_034.png"))

	path, err := FindArt(dir, "CS2_034")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "art", "CS2_034.png"), path)

	_, err = FindArt(dir, "CS2_029")
	assert.Error(t, err)

	_, err = FindArt("", "CS2_034")
	assert.Error(t, err)
}

func TestCachedAnsiArt(t *testing.T) {
	dir := t.TempDir()
	cache := t.TempDir()
	img := filepath.Join(dir, "art", "CS2_034.png")
	writePNG(t, img)

	first, err := CachedAnsiArt(img, cache)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(first, "\n"), "\n"), ArtHeight)

	entries, err := os.ReadDir(filepath.Join(cache, "ansi_cache"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	second, err := CachedAnsiArt(img, cache)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = CachedAnsiArt(filepath.Join(dir, "missing.png"), cache)
	assert.Error(t, err)
}

func TestCardList(t *testing.T) {
	noColor(t)

	var buf bytes.Buffer
	CardList(&buf, []card.Card{
		{ID: "CS2_106", Name: "Fiery War Axe", Cost: 3, Attack: card.StatOf(3), Class: card.ClassWarrior, Type: card.TypeWeapon},
		{ID: "CS2_029", Name: "Fireball", Cost: 4, Class: card.ClassMage, Type: card.TypeSpell},
	})

	out := buf.String()
	assert.Contains(t, out, "CS2_106")
	assert.Contains(t, out, "3/-")
	assert.Contains(t, out, "WARRIOR  WEAPON")
	assert.Contains(t, out, "2 card(s)")

	buf.Reset()
	CardList(&buf, nil)
	assert.Equal(t, "No matching cards.\n", buf.String())
}

func TestCardPanel(t *testing.T) {
	noColor(t)

	c := card.Card{
		ID: "CS2_142", Name: "Kobold Geomancer", Rarity: card.RarityFree, Class: card.ClassNeutral,
		Set: card.SetCore, Type: card.TypeMinion, Cost: 2,
		Attack: card.StatOf(2), Health: card.StatOf(2), SpellDamage: card.StatOf(1),
		Mechanics: []card.GameTag{card.TagSpellpower},
		Text:      "Spell Damage +1",
	}

	t.Run("without art", func(t *testing.T) {
		var buf bytes.Buffer
		CardPanel(&buf, c, "", 80)
		out := buf.String()

		assert.Contains(t, out, "Kobold Geomancer")
		assert.Contains(t, out, "Spell Damage: +1")
		assert.Contains(t, out, "Mechanics:    SPELLPOWER")
		assert.NotContains(t, out, "Race:")
		assert.NotContains(t, out, "Power:")
	})

	t.Run("with art", func(t *testing.T) {
		var buf bytes.Buffer
		CardPanel(&buf, c, "▀▀\n▀▀\n", 80)
		lines := strings.Split(buf.String(), "\n")

		// blank line, then art and info side by side
		assert.Equal(t, "  ▀▀    Card:         Kobold Geomancer", lines[1])
		assert.True(t, strings.HasPrefix(lines[3], "        Class:"))
	})
}
