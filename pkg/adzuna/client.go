package adzuna

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL  = "https://api.adzuna.com/v1/api/jobs"
	defaultCountry  = "in"
	defaultPage     = 1
	defaultPageSize = 20
	defaultTimeout  = 30 * time.Second
)

// NewClient instantiates an Adzuna API client. Credentials are passed through
// as-is: missing app_id/app_key is not an error here, the upstream rejects
// such requests and the caller degrades accordingly.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		appID:      cfg.AppID,
		appKey:     cfg.AppKey,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Search issues a single-page search against {base}/{country}/search/{page}.
func (c *Client) Search(ctx context.Context, q Query) (SearchResponse, error) {
	if c == nil {
		return SearchResponse{}, fmt.Errorf("adzuna: client is nil")
	}

	u, err := c.buildSearchURL(q)
	if err != nil {
		return SearchResponse{}, err
	}

	var payload SearchResponse
	if err := c.getJSON(ctx, u, &payload); err != nil {
		return SearchResponse{}, err
	}

	return payload, nil
}

// Categories fetches the category list for a country.
func (c *Client) Categories(ctx context.Context, country string) ([]Category, error) {
	if c == nil {
		return nil, fmt.Errorf("adzuna: client is nil")
	}
	if country == "" {
		country = defaultCountry
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("adzuna: parse base url: %w", err)
	}
	u.Path = path.Join(u.Path, country, "categories")

	values := url.Values{}
	values.Set("app_id", c.appID)
	values.Set("app_key", c.appKey)
	u.RawQuery = values.Encode()

	var payload categoriesResponse
	if err := c.getJSON(ctx, u.String(), &payload); err != nil {
		return nil, err
	}

	return payload.Results, nil
}

// Shutdown releases the long-lived connection resource. It satisfies the
// process shutdown hook; the client must not be used afterwards.
func (c *Client) Shutdown(_ context.Context) error {
	if c != nil && c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
	}
	return nil
}

func (c *Client) buildSearchURL(q Query) (string, error) {
	country := q.Country
	if country == "" {
		country = defaultCountry
	}
	page := q.Page
	if page <= 0 {
		page = defaultPage
	}
	pageSize := q.ResultsPerPage
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("adzuna: parse base url: %w", err)
	}
	u.Path = path.Join(u.Path, country, "search", strconv.Itoa(page))

	values := url.Values{}
	values.Set("app_id", c.appID)
	values.Set("app_key", c.appKey)
	values.Set("results_per_page", strconv.Itoa(pageSize))
	values.Set("what", q.What)
	if q.Where != "" {
		values.Set("where", q.Where)
	}

	u.RawQuery = values.Encode()
	return u.String(), nil
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("adzuna: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("adzuna: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("adzuna: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("adzuna: decode response: %w", err)
	}

	return nil
}
