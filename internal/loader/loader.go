// Package loader reads card data files into a catalog collection.
//
// A data directory holds any number of card files and an optional power file
// named powers.<ext>. TOML, YAML and JSON are accepted, picked by extension.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/arcanaland/cardcatalog/data"
	"github.com/arcanaland/cardcatalog/internal/catalog"
)

var (
	ErrUnknownFormat = errors.New("unknown data file format")
	ErrMissingID     = errors.New("card has no id")
	ErrDuplicateID   = errors.New("duplicate card id")
	ErrUnknownCard   = errors.New("unknown card id")
	ErrNegative      = errors.New("value must not be negative")
)

const powerFileBase = "powers"

// Extensions lists the data file extensions the loaders understand.
var Extensions = []string{".toml", ".yaml", ".yml", ".json"}

// FromFS returns the card loader followed by the power loader for fsys.
func FromFS(fsys fs.FS) []catalog.Loader {
	return []catalog.Loader{CardLoader{FS: fsys}, PowerLoader{FS: fsys}}
}

// Embedded returns loaders for the card data compiled into the binary.
func Embedded() []catalog.Loader {
	return FromFS(data.FS)
}

func isDataFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func isPowerFile(name string) bool {
	return strings.TrimSuffix(name, path.Ext(name)) == powerFileBase
}

// decode unmarshals raw into v using the format implied by name's extension.
func decode(name string, raw []byte, v any) error {
	var err error
	switch strings.ToLower(path.Ext(name)) {
	case ".toml":
		_, err = toml.Decode(string(raw), v)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, v)
	case ".json":
		err = json.Unmarshal(raw, v)
	default:
		return fmt.Errorf("%s: %w", name, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", name, err)
	}
	return nil
}
