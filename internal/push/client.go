package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"rental-chat-service/internal/config"
)

const (
	sendPath     = "/push/send"
	receiptsPath = "/push/getReceipts"
)

// Client talks to the Expo push HTTP API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

func NewClient(cfg *config.PushConfig) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

type sendResponse struct {
	Data   []Ticket   `json:"data"`
	Errors []apiError `json:"errors"`
}

type receiptsResponse struct {
	Data   map[string]Receipt `json:"data"`
	Errors []apiError         `json:"errors"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SendChunk posts one batch of messages; tickets come back in request order.
func (c *Client) SendChunk(ctx context.Context, messages []Message) ([]Ticket, error) {
	var resp sendResponse
	if err := c.post(ctx, sendPath, messages, &resp); err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("expo send rejected: %s: %s", resp.Errors[0].Code, resp.Errors[0].Message)
	}
	if len(resp.Data) != len(messages) {
		return nil, fmt.Errorf("expo send returned %d tickets for %d messages", len(resp.Data), len(messages))
	}
	return resp.Data, nil
}

// GetReceipts fetches delivery receipts keyed by ticket id.
func (c *Client) GetReceipts(ctx context.Context, ticketIDs []string) (map[string]Receipt, error) {
	var resp receiptsResponse
	if err := c.post(ctx, receiptsPath, map[string][]string{"ids": ticketIDs}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("expo receipts rejected: %s: %s", resp.Errors[0].Code, resp.Errors[0].Message)
	}
	return resp.Data, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("expo responded %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
