package forkify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/glabrego/forkify-cli/internal/recipe"
)

const DefaultBaseURL = "https://forkify-api.herokuapp.com/api/v2/recipes"

const maxResponseBytes = 4 << 20

// FetchError reports a failed remote call: transport failure, a non-2xx
// status, an API "fail" envelope or an undecodable body.
type FetchError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsFetchError reports whether err carries a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

type Client struct {
	baseURL string
	key     string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient builds an API client. A nil limiter means no client-side rate
// limiting.
func NewClient(baseURL, key string, httpClient *http.Client, limiter *rate.Limiter) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		http:    httpClient,
		limiter: limiter,
	}
}

// NewLimiter allows perSecond requests per second; zero or less disables
// limiting.
func NewLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(perSecond), 1)
}

func (c *Client) GetRecipe(ctx context.Context, id string) (recipe.Recipe, error) {
	const op = "get recipe"
	if strings.TrimSpace(id) == "" {
		return recipe.Recipe{}, &FetchError{Op: op, Message: "empty recipe id"}
	}
	env, err := c.do(ctx, op, http.MethodGet, "/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return recipe.Recipe{}, err
	}
	if env.Data.Recipe == nil {
		return recipe.Recipe{}, &FetchError{Op: op, Message: "response has no recipe"}
	}
	return env.Data.Recipe.toRecipe(), nil
}

func (c *Client) SearchRecipes(ctx context.Context, query string) ([]recipe.Summary, error) {
	const op = "search recipes"
	q := make(url.Values)
	q.Set("search", query)
	env, err := c.do(ctx, op, http.MethodGet, "", q, nil)
	if err != nil {
		return nil, err
	}
	out := make([]recipe.Summary, 0, len(env.Data.Recipes))
	for _, r := range env.Data.Recipes {
		out = append(out, recipe.Summary{
			ID:        r.ID,
			Title:     r.Title,
			Publisher: r.Publisher,
			Image:     r.ImageURL,
			Key:       r.Key,
		})
	}
	return out, nil
}

// UploadRecipe posts a new recipe and returns the server's echo, which
// carries the assigned id and key.
func (c *Client) UploadRecipe(ctx context.Context, rec recipe.Recipe) (recipe.Recipe, error) {
	const op = "upload recipe"
	body, err := json.Marshal(fromRecipe(rec))
	if err != nil {
		return recipe.Recipe{}, &FetchError{Op: op, Message: "encode recipe", Err: err}
	}
	env, err := c.do(ctx, op, http.MethodPost, "", nil, body)
	if err != nil {
		return recipe.Recipe{}, err
	}
	if env.Data.Recipe == nil {
		return recipe.Recipe{}, &FetchError{Op: op, Message: "response has no recipe"}
	}
	return env.Data.Recipe.toRecipe(), nil
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body []byte) (envelope, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return envelope{}, &FetchError{Op: op, Message: "rate limiter", Err: err}
	}

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return envelope{}, &FetchError{Op: op, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return envelope{}, &FetchError{Op: op, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return envelope{}, &FetchError{Op: op, StatusCode: resp.StatusCode, Message: "read response", Err: err}
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(env.Message)
		if decodeErr != nil || msg == "" {
			msg = strings.TrimSpace(string(raw))
			if len(msg) > 256 {
				msg = msg[:256]
			}
		}
		return envelope{}, &FetchError{Op: op, StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return envelope{}, &FetchError{Op: op, StatusCode: resp.StatusCode, Message: "decode response", Err: decodeErr}
	}
	if env.Status == "fail" || env.Status == "error" {
		return envelope{}, &FetchError{Op: op, StatusCode: resp.StatusCode, Message: env.Message}
	}
	return env, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body []byte) (*http.Request, error) {
	if query == nil {
		query = make(url.Values)
	}
	if c.key != "" {
		query.Set("key", c.key)
	}
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
