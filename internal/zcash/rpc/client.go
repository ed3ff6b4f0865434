// Package rpc implements a JSON-RPC client for zcashd.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

type (
	// Metrics records metrics for RPC calls.
	Metrics interface {
		Observe(method string, err error, started time.Time)
	}
)

// Config holds connection parameters for the node.
type Config struct {
	URL      string
	User     string
	Password string
	// CookiePath points at the node's auth cookie file ("user:password").
	// The file is re-read on every call; an unreadable cookie degrades to an
	// unauthenticated call with a warning.
	CookiePath string
	Timeout    time.Duration
	// RequestsPerSecond caps outbound call rate. Zero disables the limiter.
	RequestsPerSecond int
}

// Client issues JSON-RPC calls to a zcashd node.
// Thread-safe, can be shared across goroutines.
type Client struct {
	url        string
	user       string
	password   string
	cookiePath string
	httpClient *http.Client
	rl         ratelimit.Limiter
	metrics    Metrics
	logger     *zap.Logger
	id         atomic.Uint64
}

// New constructs an instrumented RPC client.
func New(cfg Config, metrics Metrics, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	rl := ratelimit.NewUnlimited()
	if cfg.RequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.RequestsPerSecond)
	}

	return &Client{
		url:        cfg.URL,
		user:       cfg.User,
		password:   cfg.Password,
		cookiePath: cfg.CookiePath,
		httpClient: &http.Client{Timeout: timeout},
		rl:         rl,
		metrics:    metrics,
		logger:     logger,
	}
}

type rpcRequest struct {
	ID     uint64 `json:"id"`
	Method string `json:"method"`
	Params []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	ID     uint64           `json:"id"`
	Result *json.RawMessage `json:"result"`
	Error  *rpcError        `json:"error"`
}

// Call issues one JSON-RPC request and decodes the result into result.
// Failures are either *TransportError (unreachable/timeout/garbled) or
// *ProtocolError (node returned an error envelope).
func (c *Client) Call(ctx context.Context, method string, params []any, result any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(method, err, started)
	}()

	c.rl.Take()

	if params == nil {
		params = []any{}
	}
	body := rpcRequest{
		ID:     c.id.Add(1),
		Method: method,
		Params: params,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if user, pass, ok := c.credentials(); ok {
		req.SetBasicAuth(user, pass)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Method: method, Err: err}
	}
	// The body must be fully drained so the connection can be re-used.
	defer res.Body.Close()
	resBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return &TransportError{Method: method, Err: err}
	}

	var envelope rpcResponse
	if err := json.Unmarshal(resBytes, &envelope); err != nil {
		return &TransportError{Method: method, Err: fmt.Errorf("status %s: %w", res.Status, err)}
	}
	if envelope.Error != nil {
		return &ProtocolError{Method: method, Code: envelope.Error.Code, Message: envelope.Error.Message}
	}
	if envelope.Result == nil {
		return &TransportError{Method: method, Err: fmt.Errorf("missing result, status %s", res.Status)}
	}
	if err := json.Unmarshal(*envelope.Result, result); err != nil {
		return &TransportError{Method: method, Err: fmt.Errorf("unmarshal result: %w", err)}
	}
	return nil
}

// credentials returns the basic-auth pair for the next call. Explicit
// user/password configuration wins; otherwise the cookie file is read fresh
// on every call so a node restart that rotates the cookie is picked up.
func (c *Client) credentials() (string, string, bool) {
	if c.user != "" {
		return c.user, c.password, true
	}
	if c.cookiePath == "" {
		return "", "", false
	}

	raw, err := os.ReadFile(c.cookiePath)
	if err != nil {
		c.logger.Warn("rpc cookie unreadable, calling unauthenticated",
			zap.String("path", c.cookiePath),
			zap.Error(err))
		return "", "", false
	}
	user, pass, found := strings.Cut(strings.TrimSpace(string(raw)), ":")
	if !found {
		c.logger.Warn("rpc cookie malformed, calling unauthenticated",
			zap.String("path", c.cookiePath))
		return "", "", false
	}
	return user, pass, true
}

// BlockCount returns the node's current chain height.
func (c *Client) BlockCount(ctx context.Context) (uint64, error) {
	var height uint64
	if err := c.Call(ctx, "getblockcount", nil, &height); err != nil {
		return 0, err
	}
	return height, nil
}

// BlockHash returns the block hash at the given height.
func (c *Client) BlockHash(ctx context.Context, height uint64) (string, error) {
	var hash string
	if err := c.Call(ctx, "getblockhash", []any{height}, &hash); err != nil {
		return "", err
	}
	return hash, nil
}

// Block returns the block payload for a hash with its ordered txid list.
func (c *Client) Block(ctx context.Context, hash string) (*RawBlock, error) {
	block := &RawBlock{}
	if err := c.Call(ctx, "getblock", []any{hash, 1}, block); err != nil {
		return nil, err
	}
	return block, nil
}

// RawTransactionVerbose returns the full decoded transaction payload.
func (c *Client) RawTransactionVerbose(ctx context.Context, txid string) (*RawTransaction, error) {
	tx := &RawTransaction{}
	if err := c.Call(ctx, "getrawtransaction", []any{txid, 1}, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// BlockchainInfo returns aggregate chain state including shielded pool sizes.
func (c *Client) BlockchainInfo(ctx context.Context) (*BlockchainInfo, error) {
	info := &BlockchainInfo{}
	if err := c.Call(ctx, "getblockchaininfo", nil, info); err != nil {
		return nil, err
	}
	return info, nil
}
