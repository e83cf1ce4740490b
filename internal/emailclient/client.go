// Package emailclient sends transactional email through the Postmark HTTP API.
package emailclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ignite/newsletter/internal/domain"
	"github.com/ignite/newsletter/internal/pkg/logger"
	"github.com/ignite/newsletter/internal/pkg/secret"
)

// DefaultTimeout bounds every send when no WithTimeout option is given.
const DefaultTimeout = 10 * time.Second

const serverTokenHeader = "X-Postmark-Server-Token"

// Option configures a Client at construction.
type Option func(*Client)

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithTransport swaps the underlying RoundTripper, keeping the timeout.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		if rt != nil {
			c.httpClient.Transport = rt
		}
	}
}

// Client dispatches email to the provider. It holds no per-call state and is
// safe for concurrent use.
type Client struct {
	httpClient         *http.Client
	baseURL            string
	sender             domain.SubscriberEmail
	authorizationToken secret.String
}

// New builds a Client. baseURL is not validated here; a malformed URL surfaces
// from SendEmail as a KindRequest error.
func New(baseURL string, sender domain.SubscriberEmail, authorizationToken secret.String, opts ...Option) *Client {
	c := &Client{
		httpClient:         &http.Client{Timeout: DefaultTimeout},
		baseURL:            baseURL,
		sender:             sender,
		authorizationToken: authorizationToken,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// SendEmailRequest is the provider wire payload. Field names are fixed by the
// Postmark API.
type SendEmailRequest struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HtmlBody string `json:"HtmlBody"`
	TextBody string `json:"TextBody"`
}

// SendEmail issues exactly one POST {baseURL}/email. Besides the server token
// it sends Content-Type and Accept headers of application/json. Any non-2xx
// response, transport failure or timeout is returned as a *DispatchError;
// nothing is retried.
func (c *Client) SendEmail(ctx context.Context, recipient domain.SubscriberEmail, subject, htmlContent, textContent string) error {
	start := time.Now()
	url := c.baseURL + "/email"

	body, err := json.Marshal(SendEmailRequest{
		From:     c.sender.String(),
		To:       recipient.String(),
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: textContent,
	})
	if err != nil {
		return &DispatchError{Kind: KindRequest, Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &DispatchError{Kind: KindRequest, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(serverTokenHeader, c.authorizationToken.Expose())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		kind := classifyTransportError(err)
		logger.Warn("email dispatch failed",
			"recipient", recipient.String(),
			"kind", kind,
			"duration_ms", time.Since(start).Milliseconds())
		return &DispatchError{Kind: kind, Err: err}
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused; the body is not part of the contract.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("email dispatch rejected",
			"recipient", recipient.String(),
			"kind", KindStatus,
			"status", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds())
		return &DispatchError{
			Kind:       KindStatus,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("POST %s: %s", url, resp.Status),
		}
	}

	logger.Info("email dispatched",
		"recipient", recipient.String(),
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}
