// Package api provides the wire types of the fuel calculator server and a
// client to call its tools over HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	HealthOK       = "ok"
	DefaultTimeout = 30 * time.Second
)

// Tool names, as served under /tools/{name}.
const (
	ToolRecommendFuel        = "recommend-fuel"
	ToolCompareVolumeSavings = "compare-volume-savings"
	ToolCompareTripCost      = "compare-trip-cost"
	ToolFuelSavingTips       = "fuel-saving-tips"
)

// Error is returned when the server answers with a non-2xx status.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Client calls a fuel calculator server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the server at baseURL with default settings.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Health fetches the server's health descriptor.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Tools lists the tools the server offers.
func (c *Client) Tools(ctx context.Context) ([]ToolInfo, error) {
	var tools []ToolInfo
	if err := c.do(ctx, http.MethodGet, "/tools", nil, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

// Call runs a tool with args encoded as the JSON request body.
func (c *Client) Call(ctx context.Context, tool string, args any) (*ToolResult, error) {
	var body io.Reader = http.NoBody
	if args != nil {
		data, err := json.Marshal(args)
		if err != nil {
			return nil, fmt.Errorf("error encoding arguments: %w", err)
		}
		body = bytes.NewReader(data)
	}

	var result ToolResult
	if err := c.do(ctx, http.MethodPost, "/tools/"+tool, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RecommendFuel calls the recommend-fuel tool.
func (c *Client) RecommendFuel(ctx context.Context, req RecommendRequest) (*ToolResult, error) {
	return c.Call(ctx, ToolRecommendFuel, req)
}

// CompareVolumeSavings calls the compare-volume-savings tool.
func (c *Client) CompareVolumeSavings(ctx context.Context, req VolumeRequest) (*ToolResult, error) {
	return c.Call(ctx, ToolCompareVolumeSavings, req)
}

// CompareTripCost calls the compare-trip-cost tool.
func (c *Client) CompareTripCost(ctx context.Context, req TripRequest) (*ToolResult, error) {
	return c.Call(ctx, ToolCompareTripCost, req)
}

// FuelSavingTips calls the fuel-saving-tips tool.
func (c *Client) FuelSavingTips(ctx context.Context) (*ToolResult, error) {
	return c.Call(ctx, ToolFuelSavingTips, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	if body == nil {
		body = http.NoBody
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling server: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.Unmarshal(data, &errResp); err != nil || errResp.Message == "" {
			return &Error{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(data))}
		}
		return &Error{StatusCode: resp.StatusCode, Message: errResp.Message}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("error unmarshaling JSON: %w", err)
	}
	return nil
}
