package demodb

import (
	"sync"

	"github.com/vendaspro/demodb/pkg/dataset"
	"github.com/vendaspro/demodb/pkg/logger"
	"github.com/vendaspro/demodb/pkg/relation"
)

// Config carries the client's construction-time knobs. Zero values are
// usable: a nil Dataset gets the built-in demo fixtures, a nil Resolver
// the default relation descriptors, and a nil Logger discards everything.
type Config struct {
	Dataset  *dataset.Store
	Resolver *relation.Resolver
	Logger   logger.Logger
}

// Client is the demo backend. One instance stands in for the hosted
// client object the dashboard modules import.
type Client struct {
	store    *dataset.Store
	resolver *relation.Resolver
	logger   logger.Logger

	// Auth is the always-succeeding demo authentication surface.
	Auth *Auth

	channelsLock sync.Mutex
	channels     map[string]*Channel
}

// New creates a Client. The dataset is injected here rather than swapped
// through a global, so fixture overrides carry no initialization-order
// hazard.
func New(cfg Config) *Client {
	store := cfg.Dataset
	if store == nil {
		store = dataset.New()
	}
	resolver := cfg.Resolver
	if resolver == nil {
		resolver = relation.Default()
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		store:    store,
		resolver: resolver,
		logger:   log,
		Auth:     newAuth(log),
		channels: make(map[string]*Channel),
	}
}

// From starts a query against a table. Table names are case-sensitive
// strings; a name with no matching table reads as zero rows.
func (c *Client) From(table string) *Query {
	return &Query{client: c, table: table}
}

// Store exposes the underlying dataset, mainly for test setup and
// fixture inspection.
func (c *Client) Store() *dataset.Store {
	return c.store
}
