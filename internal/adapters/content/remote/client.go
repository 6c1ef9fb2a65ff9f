// Package remote trae el contenido desde un servidor HTTP (CMS / bucket público)
// y cae al loader local cuando no está configurado o falla.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"colonoscopy-prep/internal/platform/httpclient"
	ports "colonoscopy-prep/internal/ports/content"
)

var (
	ErrNotConfigured = errors.New("content server not configured")
	ErrUnauthorized  = errors.New("content server unauthorized")
	ErrUpstream      = errors.New("content server upstream error")
)

type Config struct {
	BaseURL string
	APIKey  string

	APIKeyHeader string
	Timeout      time.Duration
}

type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return &Client{}, nil
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	hc, err := httpclient.NewWithBaseURL(base, timeout)
	if err != nil {
		return nil, err
	}

	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		h := strings.TrimSpace(cfg.APIKeyHeader)
		if h == "" {
			h = "X-Api-Key"
		}
		hc.Headers[h] = key
	}
	return &Client{http: hc}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != ""
}

// Load pide <base>/content.<lang>.json (mismo layout que los ficheros publicados).
func (c *Client) Load(ctx context.Context, lang string) (ports.Document, error) {
	if !c.IsConfigured() {
		return ports.Document{}, ErrNotConfigured
	}
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return ports.Document{}, errors.New("lang required")
	}

	var doc ports.Document
	err := c.http.GetJSON(ctx, "/content."+url.PathEscape(lang)+".json", &doc)
	if err == nil {
		return doc, nil
	}

	switch httpclient.StatusCode(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ports.Document{}, ErrUnauthorized
	case http.StatusNotFound:
		return ports.Document{}, fmt.Errorf("remote %s: %w", lang, ports.ErrUnavailable)
	default:
		return ports.Document{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}
