// Package render draws cards for the terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/cardcatalog/internal/card"
)

// TerminalWidth returns the width of stdout, or 80 when it isn't a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func rarityColor(r card.Rarity) *colorize.Color {
	switch r {
	case card.RarityLegendary:
		return colorize.New(colorize.FgHiYellow, colorize.Bold)
	case card.RarityEpic:
		return colorize.New(colorize.FgHiMagenta)
	case card.RarityRare:
		return colorize.New(colorize.FgHiBlue)
	default:
		return colorize.New(colorize.FgHiWhite)
	}
}

// Stats returns "attack/health" with "-" for absent values, or "" when the
// card has neither.
func Stats(c card.Card) string {
	if !c.Attack.IsSet() && !c.Health.IsSet() {
		return ""
	}
	return c.Attack.String() + "/" + c.Health.String()
}

func mechanicNames(tags []card.GameTag) string {
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.String()
	}
	return strings.Join(names, ", ")
}

// CardList writes one summary line per card.
func CardList(w io.Writer, cards []card.Card) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "No matching cards.")
		return
	}

	for _, c := range cards {
		name := rarityColor(c.Rarity).Sprintf("%-28s", c.Name)
		fmt.Fprintf(w, "%-10s %s %3d  %-7s %-8s %s\n",
			c.ID, name, c.Cost, Stats(c), c.Class, c.Type)
	}
	fmt.Fprintf(w, "\n%d card(s)\n", len(cards))
}

// CardPanel writes the card details, with art on the left when art isn't
// empty. width is the terminal width used for wrapping the card text.
func CardPanel(w io.Writer, c card.Card, art string, width int) {
	label := func(s string) string { return colorize.CyanString("%-14s", s) }
	value := colorize.HiWhiteString

	infoLines := []string{
		label("Card:") + rarityColor(c.Rarity).Sprint(c.Name),
		label("ID:") + value(c.ID),
		label("Class:") + value(c.Class.String()),
		label("Type:") + value(c.Type.String()),
		label("Rarity:") + value(c.Rarity.String()),
		label("Set:") + value(c.Set.String()),
	}
	if c.Race != card.RaceInvalid {
		infoLines = append(infoLines, label("Race:")+value(c.Race.String()))
	}
	infoLines = append(infoLines, label("Cost:")+value("%d", c.Cost))
	if c.Attack.IsSet() {
		infoLines = append(infoLines, label("Attack:")+value(c.Attack.String()))
	}
	if c.Health.IsSet() {
		infoLines = append(infoLines, label("Health:")+value(c.Health.String()))
	}
	if c.SpellDamage.IsSet() {
		infoLines = append(infoLines, label("Spell Damage:")+value("+%s", c.SpellDamage))
	}
	if len(c.Mechanics) > 0 {
		infoLines = append(infoLines, label("Mechanics:")+value(mechanicNames(c.Mechanics)))
	}
	if c.Power != "" {
		infoLines = append(infoLines, label("Power:")+value(c.Power))
	}

	var artLines []string
	maxArtWidth := 0
	if art != "" {
		artLines = strings.Split(strings.TrimRight(art, "\n"), "\n")
		for _, line := range artLines {
			if n := visibleWidth(line); n > maxArtWidth {
				maxArtWidth = n
			}
		}
	}

	// Art on the left, info on the right
	spacing := 4
	infoStartCol := 0
	if maxArtWidth > 0 {
		infoStartCol = maxArtWidth + spacing
	}

	infoWidth := width - infoStartCol - 2
	if infoWidth < 20 {
		infoWidth = 20
	}

	if c.Text != "" {
		infoLines = append(infoLines, "", colorize.CyanString("Text:"))
		infoLines = append(infoLines, wrapText(c.Text, infoWidth)...)
	}

	fmt.Fprintln(w)

	maxLines := max(len(artLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Fprint(w, "  ")
		if i < len(artLines) {
			fmt.Fprint(w, artLines[i])
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol-visibleWidth(artLines[i])))
		} else {
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Fprint(w, infoLines[i])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var result []string
	var currentLine string
	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

func visibleWidth(s string) int {
	return utf8.RuneCountInString(stripAnsi(s))
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
