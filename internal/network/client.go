package network

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	fhttpcookiejar "github.com/bogdanfinn/fhttp/cookiejar"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrRequestFailed covers every failed call: non-2xx status, transport
// faults and undecodable bodies. The cause is only written to the log.
var ErrRequestFailed = errors.New("request failed")

const (
	reasonEncode    = "encode"
	reasonTransport = "transport"
	reasonStatus    = "status"
	reasonDecode    = "decode"
)

// Doer sends a single request. tls_client.HttpClient satisfies it.
type Doer interface {
	Do(req *fhttp.Request) (*fhttp.Response, error)
}

type Options struct {
	BaseURL string
	Timeout time.Duration
	Proxy   string
	Logger  zerolog.Logger
}

type Client struct {
	http    Doer
	baseURL string
	logger  zerolog.Logger
}

func NewClient(opts Options) (*Client, error) {
	jar, _ := fhttpcookiejar.New(nil)

	timeout := int(opts.Timeout / time.Second)
	if timeout <= 0 {
		timeout = 30
	}
	clientOptions := []tls_client.HttpClientOption{
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithTimeoutSeconds(timeout),
		tls_client.WithCookieJar(jar),
	}
	if proxy := strings.TrimSpace(opts.Proxy); proxy != "" {
		clientOptions = append(clientOptions, tls_client.WithProxyUrl(proxy))
	}

	client, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), clientOptions...)
	if err != nil {
		return nil, err
	}
	return NewClientWithDoer(opts.BaseURL, client, opts.Logger)
}

func NewClientWithDoer(baseURL string, doer Doer, logger zerolog.Logger) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	return &Client{
		http:    doer,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.With().Str("component", "network").Logger(),
	}, nil
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, fhttp.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	if body == nil {
		body = struct{}{}
	}
	return c.do(ctx, fhttp.MethodPost, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, fhttp.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method string, path string, body any, out any) error {
	requestID := uuid.NewString()
	log := c.logger.With().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Logger()
	requestsTotal.WithLabelValues(method).Inc()

	fail := func(reason string, cause error) error {
		failuresTotal.WithLabelValues(method, reason).Inc()
		log.Error().Err(cause).Str("reason", reason).Msg("request failed")
		return fmt.Errorf("%w: %s %s", ErrRequestFailed, method, path)
	}

	target, err := c.resolve(path)
	if err != nil {
		return fail(reasonEncode, err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fail(reasonEncode, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := fhttp.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fail(reasonEncode, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fail(reasonTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fail(reasonStatus, fmt.Errorf("http %d", resp.StatusCode))
	}

	var raw json.RawMessage
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&raw); err != nil {
		return fail(reasonDecode, err)
	}
	// The body must hold exactly one JSON value.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fail(reasonDecode, fmt.Errorf("trailing data after JSON body"))
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fail(reasonDecode, err)
		}
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")
	return nil
}

func (c *Client) resolve(path string) (string, error) {
	if !strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("path %q is not server-relative", path)
	}
	target := c.baseURL + path
	if _, err := url.Parse(target); err != nil {
		return "", err
	}
	return target, nil
}
