package wrike

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// Client is a Wrike API v4 client with a per-instance reference data cache.
//
// Contacts, custom fields, custom statuses, folders and workflows are cached
// the first time they are requested and served from memory afterwards. The
// cache never expires on its own: changes made on the server are invisible
// until Reset is called. All other queries go straight to the Transport.
//
// A Client is meant for sequential use. It does no locking: concurrent
// cache misses for the same kind may each fetch and overwrite the slot
// (last write wins), and Reset racing a population may leave either result.
// Neither corrupts the cache, but callers that share a Client across
// goroutines must synchronize if they need exactly-once fetching.
type Client struct {
	transport Transport
	logger    hclog.Logger

	// Cache slots. nil means unpopulated; a non-nil empty Dictionary is a
	// populated slot for a kind with no records.
	contacts       Dictionary
	customFields   Dictionary
	customStatuses Dictionary
	folders        Dictionary
	workflows      Dictionary
}

// ClientConfig holds the collaborators of a Client.
type ClientConfig struct {
	Transport Transport    // required
	Logger    hclog.Logger // optional
}

// NewClient creates a client over an existing Transport.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.Transport == nil {
		return nil, fmt.Errorf("transport is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	c := &Client{
		transport: cfg.Transport,
		logger:    cfg.Logger.Named("wrike-client"),
	}
	return c, nil
}

// New creates a client that talks to the API described by cfg over HTTPS.
func New(cfg *Config, logger hclog.Logger, opts ...TransportOption) (*Client, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	transport, err := NewHTTPTransport(cfg, append([]TransportOption{WithLogger(logger)}, opts...)...)
	if err != nil {
		return nil, err
	}

	return NewClient(ClientConfig{
		Transport: transport,
		Logger:    logger,
	})
}

// Reset clears all five cache slots. The next accessor call for each kind
// fetches again.
func (c *Client) Reset() {
	c.contacts = nil
	c.customFields = nil
	c.customStatuses = nil
	c.folders = nil
	c.workflows = nil

	c.logger.Info("reference data cache reset")
}

// Get fetches an arbitrary API path.
func (c *Client) Get(ctx context.Context, path string, params map[string]string) (*Response, error) {
	return c.transport.Get(ctx, path, params)
}

// Post submits body to an arbitrary API path.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.transport.Post(ctx, path, body)
}
