package charts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Datawrapper defaults.
const (
	DefaultAPIURL    = "https://api.datawrapper.de/v3"
	DefaultEmbedHost = "datawrapper.dwcdn.net"
	DefaultChartType = "tables"
	DefaultTimeout   = 30 * time.Second
)

// maxErrorBody limits how much of an error response is quoted.
const maxErrorBody = 512

// DatawrapperClient talks to the Datawrapper v3 REST API.
type DatawrapperClient struct {
	baseURL   string
	token     string
	chartType string
	http      *http.Client
}

// Compile-time interface check.
var _ Client = (*DatawrapperClient)(nil)

// ClientOption configures a DatawrapperClient.
type ClientOption func(*DatawrapperClient)

// WithAPIURL overrides the API base URL (tests, proxies).
func WithAPIURL(u string) ClientOption {
	return func(c *DatawrapperClient) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *DatawrapperClient) {
		c.http = hc
	}
}

// WithRequestTimeout bounds each API call.
func WithRequestTimeout(d time.Duration) ClientOption {
	return func(c *DatawrapperClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithChartType sets the visualization type used on create.
func WithChartType(t string) ClientOption {
	return func(c *DatawrapperClient) {
		if t != "" {
			c.chartType = t
		}
	}
}

// NewDatawrapperClient creates a client authenticated with token.
func NewDatawrapperClient(token string, opts ...ClientOption) (*DatawrapperClient, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}
	c := &DatawrapperClient{
		baseURL:   DefaultAPIURL,
		token:     token,
		chartType: DefaultChartType,
		http:      &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if _, err := url.ParseRequestURI(c.baseURL); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.baseURL)
	}
	return c, nil
}

type createRequest struct {
	Title string `json:"title"`
	Type  string `json:"type"`
}

type createResponse struct {
	ID string `json:"id"`
}

type publishResponse struct {
	Data struct {
		Metadata struct {
			Publish map[string]any `json:"publish"`
		} `json:"metadata"`
	} `json:"data"`
}

// Create implements Client.
func (c *DatawrapperClient) Create(ctx context.Context, title string) (string, error) {
	body, err := json.Marshal(createRequest{Title: title, Type: c.chartType})
	if err != nil {
		return "", fmt.Errorf("encoding create request: %w", err)
	}

	respBody, err := c.do(ctx, "create", http.MethodPost, "/charts", "application/json", body)
	if err != nil {
		return "", err
	}

	var resp createResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("%w: create: %v", ErrChartResponse, err)
	}
	if resp.ID == "" {
		return "", ErrEmptyChartID
	}
	return resp.ID, nil
}

// Upload implements Client.
func (c *DatawrapperClient) Upload(ctx context.Context, chartID string, csv []byte) error {
	_, err := c.do(ctx, "upload", http.MethodPut, "/charts/"+url.PathEscape(chartID)+"/data", "text/csv", csv)
	return err
}

// Publish implements Client. The embed URL is read from
// data.metadata.publish["embed-url"]; other response shapes yield "".
func (c *DatawrapperClient) Publish(ctx context.Context, chartID string) (string, error) {
	respBody, err := c.do(ctx, "publish", http.MethodPost, "/charts/"+url.PathEscape(chartID)+"/publish", "", nil)
	if err != nil {
		return "", err
	}

	var resp publishResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", nil
	}
	embedURL, _ := resp.Data.Metadata.Publish["embed-url"].(string)
	return embedURL, nil
}

// do sends one authenticated request and returns the response body.
// Non-2xx statuses are reported as ErrChartRequest.
func (c *DatawrapperClient) do(ctx context.Context, op, method, path, contentType string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrChartRequest, op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrChartRequest, op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: reading response: %v", ErrChartRequest, op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := strings.TrimSpace(string(respBody))
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return nil, fmt.Errorf("%w: %s: %s %s: status %d: %s",
			ErrChartRequest, op, method, path, resp.StatusCode, snippet)
	}
	return respBody, nil
}
