package iri

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/obsidianstack/iri-exporter/internal/config"
)

// Client issues commands to one IRI node. It is safe for concurrent use; the
// underlying *http.Client is built once and shared by every scrape.
type Client struct {
	address string
	http    *http.Client
}

// NewClient builds a Client for cfg.IRIAddress using the configured timeout,
// TLS options and authentication mode.
func NewClient(cfg *config.Config) (*Client, error) {
	hc, err := buildHTTPClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("iri: build http client: %w", err)
	}
	return &Client{address: cfg.IRIAddress, http: hc}, nil
}

// Call sends command to the node and returns the raw response body.
// Any failure before a complete 2xx body is read is a *TransportError.
func (c *Client) Call(ctx context.Context, command Command) ([]byte, error) {
	req, err := NewRequest(ctx, c.address, command)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Command: command, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, &TransportError{
			Command:    command,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Command: command, Err: fmt.Errorf("read body: %w", err)}
	}
	slog.Debug("iri: received response", "command", command, "body", string(body))
	return body, nil
}

// NodeInfo calls getNodeInfo and decodes the result.
func (c *Client) NodeInfo(ctx context.Context) (NodeInfo, error) {
	body, err := c.Call(ctx, CommandGetNodeInfo)
	if err != nil {
		return NodeInfo{}, err
	}
	ni, err := DecodeNodeInfo(body)
	if err != nil {
		return NodeInfo{}, err
	}
	slog.Debug("iri: decoded node info", "record", ni)
	return ni, nil
}

// Neighbors calls getNeighbors and decodes the result.
func (c *Client) Neighbors(ctx context.Context) (Neighbors, error) {
	body, err := c.Call(ctx, CommandGetNeighbors)
	if err != nil {
		return Neighbors{}, err
	}
	n, err := DecodeNeighbors(body)
	if err != nil {
		return Neighbors{}, err
	}
	slog.Debug("iri: decoded neighbors", "count", len(n.Neighbors))
	return n, nil
}

// authRoundTripper injects authentication headers into every outgoing request.
type authRoundTripper struct {
	base http.RoundTripper
	auth config.AuthConfig
}

func (t *authRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	switch t.auth.Mode {
	case "apikey":
		req = req.Clone(req.Context())
		req.Header.Set(t.auth.Header, t.auth.Key())
	case "bearer":
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+t.auth.Token())
	case "basic":
		req = req.Clone(req.Context())
		req.SetBasicAuth(t.auth.Username, t.auth.Password())
	}
	return t.base.RoundTrip(req)
}

// buildHTTPClient constructs an http.Client for the node's auth and TLS settings.
func buildHTTPClient(cfg *config.Config) (*http.Client, error) {
	tlsCfg := &tls.Config{
		InsecureSkipVerify: cfg.TLS.InsecureSkipVerify, //nolint:gosec // user-configured
	}

	if cfg.Auth.Mode == "mtls" {
		cert, err := tls.LoadX509KeyPair(cfg.Auth.CertFile, cfg.Auth.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("load client cert: %w", err)
		}
		tlsCfg.Certificates = []tls.Certificate{cert}

		if cfg.Auth.CAFile != "" {
			caPEM, err := os.ReadFile(cfg.Auth.CAFile)
			if err != nil {
				return nil, fmt.Errorf("read ca file: %w", err)
			}
			pool := x509.NewCertPool()
			if !pool.AppendCertsFromPEM(caPEM) {
				return nil, fmt.Errorf("no valid certs found in ca file %q", cfg.Auth.CAFile)
			}
			tlsCfg.RootCAs = pool
		}
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsCfg

	return &http.Client{
		Transport: &authRoundTripper{base: transport, auth: cfg.Auth},
		Timeout:   cfg.UpstreamTimeout,
	}, nil
}
