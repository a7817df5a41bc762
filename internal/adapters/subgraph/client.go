package subgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/trebuchet-org/nounsgov/internal/config"
	"github.com/trebuchet-org/nounsgov/internal/domain"
)

// DefaultTimeout bounds a single subgraph request
const DefaultTimeout = 30 * time.Second

// Client queries a Nouns DAO subgraph over GraphQL
type Client struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a subgraph client for the given endpoint
func NewClient(url string, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		url:        url,
		httpClient: httpClient,
		log:        log.With("component", "subgraph"),
	}
}

// NewClientFromConfig creates a subgraph client for the selected network
func NewClientFromConfig(cfg *config.RuntimeConfig, log *slog.Logger) *Client {
	timeout := DefaultTimeout
	if cfg.Timeout > 0 && cfg.Timeout < timeout {
		timeout = cfg.Timeout
	}
	return NewClient(cfg.Network.SubgraphURL, &http.Client{Timeout: timeout}, log)
}

// query posts a GraphQL query and decodes its data into out
func (c *Client) query(ctx context.Context, name, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to encode %s query: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute %s query: %w", name, err)
	}
	defer resp.Body.Close()
	c.log.Debug("subgraph query", "query", name, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody))
	}

	var envelope graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", name, err)
	}
	if len(envelope.Errors) > 0 {
		gqlErr := domain.GraphQLErr{Query: name}
		for _, e := range envelope.Errors {
			gqlErr.Messages = append(gqlErr.Messages, e.Message)
		}
		return gqlErr
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return domain.GraphQLErr{Query: name, Messages: []string{"empty data"}}
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode %s data: %w", name, err)
	}
	return nil
}
