package facts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Fetcher defines the interface for fetching a display-ready random fact.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	RandomData(ctx context.Context) (string, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the cat fact and advice endpoints.
type Client struct {
	catFactURL *url.URL
	adviceURL  *url.URL
	http       *http.Client
	userAgent  string
}

const (
	DefaultCatFactURL = "https://catfact.ninja/fact"
	DefaultAdviceURL  = "https://api.adviceslip.com/advice"
	defaultUserAgent  = "tally/0.1"
)

// errDecode marks failures that happened after a response was received.
var errDecode = errors.New("decode response")

// FetchError is returned by RandomData when both endpoints failed. Its message
// describes the advice failure only.
type FetchError struct {
	Op  string // "fetch" or "parse"
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("Failed to %s advice: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// NewClient builds a Client for the given endpoints. Empty values use the
// public defaults.
func NewClient(catFactURL, adviceURL string) (*Client, error) {
	catFact, err := parseEndpoint(catFactURL, DefaultCatFactURL)
	if err != nil {
		return nil, err
	}
	advice, err := parseEndpoint(adviceURL, DefaultAdviceURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		catFactURL: catFact,
		adviceURL:  advice,
		http:       &http.Client{},
		userAgent:  defaultUserAgent,
	}, nil
}

// FetchCatFact retrieves a single cat fact.
func (c *Client) FetchCatFact(ctx context.Context) (CatFact, error) {
	if c == nil {
		return CatFact{}, fmt.Errorf("client is nil")
	}
	var payload catFactWire
	if err := c.get(ctx, c.catFactURL, &payload); err != nil {
		return CatFact{}, err
	}
	if payload.Fact == nil {
		return CatFact{}, fmt.Errorf("%w: missing field fact", errDecode)
	}
	return CatFact{Fact: *payload.Fact, Length: payload.Length}, nil
}

// FetchAdvice retrieves a single advice slip.
func (c *Client) FetchAdvice(ctx context.Context) (AdviceSlip, error) {
	if c == nil {
		return AdviceSlip{}, fmt.Errorf("client is nil")
	}
	var payload adviceWire
	if err := c.get(ctx, c.adviceURL, &payload); err != nil {
		return AdviceSlip{}, err
	}
	if payload.Slip == nil {
		return AdviceSlip{}, fmt.Errorf("%w: missing field slip", errDecode)
	}
	if payload.Slip.Advice == nil {
		return AdviceSlip{}, fmt.Errorf("%w: missing field slip.advice", errDecode)
	}
	return AdviceSlip{ID: payload.Slip.ID, Advice: *payload.Slip.Advice}, nil
}

// RandomData tries the cat fact endpoint and falls back to the advice
// endpoint on any failure. The two attempts are sequential and never retried.
func (c *Client) RandomData(ctx context.Context) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	id := uuid.NewString()

	fact, err := c.FetchCatFact(ctx)
	if err == nil {
		log.Printf("fetch %s: cat fact ok", id)
		return catFactPrefix + fact.Fact, nil
	}
	// Only the advice failure reaches the caller; keep the first one in the log.
	log.Printf("fetch %s: cat fact failed, trying advice: %v", id, err)

	slip, err := c.FetchAdvice(ctx)
	if err != nil {
		op := "fetch"
		if errors.Is(err, errDecode) {
			op = "parse"
		}
		log.Printf("fetch %s: advice failed: %v", id, err)
		return "", &FetchError{Op: op, Err: err}
	}
	log.Printf("fetch %s: advice ok", id)
	return advicePrefix + slip.Advice, nil
}

func (c *Client) get(ctx context.Context, endpoint *url.URL, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", endpoint.Path, resp.StatusCode)
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("%w: %v", errDecode, err)
	}
	return nil
}

func parseEndpoint(raw, fallback string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = fallback
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", raw)
	}
	u.Fragment = ""
	return u, nil
}
