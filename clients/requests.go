package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type Client struct {
	url        string
	httpClient *http.Client
}

// StatusError is returned when the server answers with a non 2xx status.
type StatusError struct {
	URL    string
	Status string
	Code   int
}

func (e *StatusError) Error() string {
	return "response status " + e.Status + " from " + e.URL
}

func (l *Client) get(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create GET request for %s: %w", url, err)
	}
	return l.do(req, v)
}

func (l *Client) post(ctx context.Context, url string, payload any, v any) error {
	marshalledPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(marshalledPayload))
	if err != nil {
		return fmt.Errorf("create POST request for %s: %w", url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return l.do(req, v)
}

func (l *Client) do(req *http.Request, v any) error {
	url := req.URL.String()
	resp, err := l.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: url, Status: resp.Status, Code: resp.StatusCode}
	}
	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response from %s: %w", url, err)
	}
	return nil
}
