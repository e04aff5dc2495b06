// Package catalog holds the in-memory card collection and answers queries
// against it. A Catalog is filled exactly once by its loaders and is
// read-only afterwards, so concurrent readers need no locking.
package catalog

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/arcanaland/cardcatalog/internal/card"
)

// Loader fills or augments the card collection in place.
// Loaders run in the order they were given to the catalog.
type Loader interface {
	Load(cards *[]card.Card) error
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(cards *[]card.Card) error

// Load calls f(cards).
func (f LoaderFunc) Load(cards *[]card.Card) error {
	return f(cards)
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLoaders appends loaders to the load chain.
func WithLoaders(loaders ...Loader) Option {
	return func(c *Catalog) {
		c.loaders = append(c.loaders, loaders...)
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Catalog is a load-once collection of cards.
type Catalog struct {
	loaders []Loader
	logger  *slog.Logger

	once  sync.Once
	err   error
	cards []card.Card
	byID  map[string]int
}

// New creates a catalog. Nothing is loaded until Load or the first query.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load runs the loaders once. Later calls, including the implicit ones made
// by queries, return the result of that first run without loading again.
// When a loader fails the catalog stays empty.
func (c *Catalog) Load() error {
	c.once.Do(c.load)
	return c.err
}

func (c *Catalog) load() {
	var cards []card.Card
	for i, l := range c.loaders {
		if err := l.Load(&cards); err != nil {
			c.err = fmt.Errorf("loader %d: %w", i, err)
			c.logger.Error("catalog load failed", "loader", i, "err", err)
			return
		}
	}

	byID := make(map[string]int, len(cards))
	for i := range cards {
		if _, ok := byID[cards[i].ID]; !ok {
			byID[cards[i].ID] = i
		}
	}

	c.cards = cards
	c.byID = byID
	c.logger.Info("loaded card catalog", "count", len(cards), "loaders", len(c.loaders))
}

// collection returns the loaded cards. Callers must not modify the result.
func (c *Catalog) collection() []card.Card {
	_ = c.Load()
	return c.cards
}

// Len returns the number of loaded cards.
func (c *Catalog) Len() int {
	return len(c.collection())
}

// All returns a copy of every card in load order.
func (c *Catalog) All() []card.Card {
	return c.filter(func(*card.Card) bool { return true })
}

// filter returns copies of the cards that satisfy match, in load order.
// The result is never nil.
func (c *Catalog) filter(match func(*card.Card) bool) []card.Card {
	cards := c.collection()
	result := make([]card.Card, 0)
	for i := range cards {
		if match(&cards[i]) {
			result = append(result, cards[i].Clone())
		}
	}
	return result
}
