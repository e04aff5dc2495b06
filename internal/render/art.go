package render

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// Art dimensions in terminal cells.
const (
	ArtWidth  = 40
	ArtHeight = 32
)

var artExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// FindArt returns the image for card id under dataDir/art, trying each
// supported extension in turn.
func FindArt(dataDir, id string) (string, error) {
	if dataDir == "" {
		return "", fmt.Errorf("no art for built-in cards")
	}

	artDir := filepath.Join(dataDir, "art")
	for _, ext := range artExtensions {
		path := filepath.Join(artDir, id+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no image found for card %s", id)
}

// CachedAnsiArt returns the ANSI rendering of imagePath, generating it into
// cacheDir on first use. The cache key covers the path and modification time.
func CachedAnsiArt(imagePath, cacheDir string) (string, error) {
	info, err := os.Stat(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to stat image: %w", err)
	}

	ansiDir := filepath.Join(cacheDir, "ansi_cache")
	if err := os.MkdirAll(ansiDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create ANSI cache directory: %w", err)
	}

	key := fmt.Sprintf("%s@%d", imagePath, info.ModTime().UnixNano())
	cachePath := filepath.Join(ansiDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key))))

	if data, err := os.ReadFile(cachePath); err == nil {
		return string(data), nil
	}

	if err := generateAnsiArt(imagePath, cachePath); err != nil {
		return "", fmt.Errorf("failed to generate ANSI art: %w", err)
	}

	data, err := os.ReadFile(cachePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// generateAnsiArt converts an image file to ANSI art and saves it to outputPath
func generateAnsiArt(imagePath, outputPath string) error {
	file, err := os.Open(imagePath)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	ansiArt := ImageToAnsi(img, ArtWidth, ArtHeight)

	if err := os.WriteFile(outputPath, []byte(ansiArt), 0644); err != nil {
		return fmt.Errorf("failed to write ANSI art to file: %w", err)
	}

	return nil
}

// ImageToAnsi renders img as width x height cells of upper half blocks in
// 24-bit colour. Each cell covers a 2x2 pixel block of the resized image.
func ImageToAnsi(img image.Image, width, height int) string {
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			col1, _ := colorful.MakeColor(getColorAt(resized, x, y))
			col2, _ := colorful.MakeColor(getColorAt(resized, x+1, y))
			col3, _ := colorful.MakeColor(getColorAt(resized, x, y+1))
			col4, _ := colorful.MakeColor(getColorAt(resized, x+1, y+1))

			// Top pixels as foreground, bottom pixels as background
			fg := colorfulToColor(averageColor(col1, col2))
			bg := colorfulToColor(averageColor(col3, col4))

			buffer.WriteString(ansiColorString('▀', fg, bg))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// getColorAt returns the color at a specific coordinate, black when out of bounds
func getColorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255}
}

func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

func colorfulToColor(c colorful.Color) color.Color {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ansiColorString formats a character with 24-bit ANSI colour codes
func ansiColorString(char rune, fg, bg color.Color) string {
	r1, g1, b1, _ := fg.RGBA()
	r2, g2, b2, _ := bg.RGBA()

	// RGBA() returns values in range 0-65535
	r1, g1, b1 = r1>>8, g1>>8, b1>>8
	r2, g2, b2 = r2>>8, g2>>8, b2>>8

	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}
