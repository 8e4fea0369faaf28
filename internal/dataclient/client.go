package dataclient

import (
	"context"
	"sync"
	"time"

	"github.com/natnael-haile/hireflow/internal/domain/contract"
)

// Logger is the subset of the application logger the client needs.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Metrics receives one observation per executed query or dispatched
// procedure. Injected optionally, like the cache on the blog path.
type Metrics interface {
	ObserveQuery(table, op string, failed bool)
	ObserveRPC(name string, failed bool)
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}

// Options configures a Client. Zero-value fields fall back to safe defaults;
// TokenService, TokenStore, Hasher, UUIDGen and Validator are required for
// the auth surface.
type Options struct {
	TokenService        contract.ITokenService
	TokenStore          contract.ITokenStore
	Hasher              contract.IHasher
	UUIDGen             contract.IUUIDGenerator
	Validator           contract.IValidator
	Logger              Logger
	AuthPollInterval    time.Duration
	ChannelPollInterval time.Duration
}

// Client is the data-access compatibility layer: a relational-style,
// subscription-capable API emulated on top of a schema-less document store.
// One Client is constructed in main and passed to every call site.
type Client struct {
	store    contract.IDatastore
	registry *Registry
	uuidGen  contract.IUUIDGenerator
	logger   Logger

	Auth *Auth
	rpc  *Dispatcher

	channelInterval time.Duration
	chanMu          sync.Mutex
	channels        map[string]*Channel

	metricsMu sync.RWMutex
	metrics   Metrics
}

// New wires a Client over the given store and registry.
func New(store contract.IDatastore, registry *Registry, opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = nopLogger{}
	}
	authPoll := opts.AuthPollInterval
	if authPoll <= 0 {
		authPoll = 10 * time.Second
	}
	chanPoll := opts.ChannelPollInterval
	if chanPoll <= 0 {
		chanPoll = 5 * time.Second
	}
	c := &Client{
		store:           store,
		registry:        registry,
		uuidGen:         opts.UUIDGen,
		logger:          logger,
		channelInterval: chanPoll,
		channels:        make(map[string]*Channel),
	}
	c.Auth = newAuth(c, authOptions{
		tokens:       opts.TokenService,
		tokenStore:   opts.TokenStore,
		hasher:       opts.Hasher,
		validator:    opts.Validator,
		pollInterval: authPoll,
	})
	c.rpc = newDispatcher(c)
	return c
}

// SetMetrics injects the optional metrics sink.
func (c *Client) SetMetrics(m Metrics) {
	c.metricsMu.Lock()
	c.metrics = m
	c.metricsMu.Unlock()
}

func (c *Client) observeQuery(table, op string, qerr *Error) {
	c.metricsMu.RLock()
	m := c.metrics
	c.metricsMu.RUnlock()
	if m != nil {
		m.ObserveQuery(table, op, qerr != nil)
	}
}

func (c *Client) observeRPC(name string, rerr *Error) {
	c.metricsMu.RLock()
	m := c.metrics
	c.metricsMu.RUnlock()
	if m != nil {
		m.ObserveRPC(name, rerr != nil)
	}
}

// Close stops the auth poller and every live channel.
func (c *Client) Close() {
	c.Auth.close()
	c.chanMu.Lock()
	channels := make([]*Channel, 0, len(c.channels))
	for _, ch := range c.channels {
		channels = append(channels, ch)
	}
	c.channels = make(map[string]*Channel)
	c.chanMu.Unlock()
	for _, ch := range channels {
		ch.Unsubscribe()
	}
}

type ctxKey int

const tokenCtxKey ctxKey = iota

// WithToken attaches a bearer token to the context for the transport
// boundary.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey, token)
}

// TokenFromContext returns the bearer token attached to the context, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenCtxKey).(string)
	return token, ok && token != ""
}

// withToken attaches the current session token, if one is held. The token is
// opaque here; the store boundary decides what to do with it.
func (c *Client) withToken(ctx context.Context) context.Context {
	if token := c.Auth.currentToken(); token != "" {
		return WithToken(ctx, token)
	}
	return ctx
}
