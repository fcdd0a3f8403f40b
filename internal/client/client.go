// Package client is the data-access layer consumed by presentation code.
// Each set mirrors one server collection into local state: Refresh replaces
// the mirror wholesale, and mutations apply only the server's confirmed
// response. A failed request leaves the mirror unchanged.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type Client struct {
	baseURL string
	token   string
	httpc   *http.Client

	Tasks *TaskSet
	Goals *GoalSet
}

// New builds a client for the given API base URL and bearer token.
func New(baseURL, token string) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   http.DefaultClient,
	}
	c.Tasks = &TaskSet{client: c}
	c.Goals = &GoalSet{client: c}
	return c
}

// APIError is a non-2xx response decoded from the {"message": ...} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var errBody struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Summary holds the dashboard aggregates derived from the mirrors.
// Goal completion is derived: currentValue >= targetValue.
type Summary struct {
	TotalTasks     int
	CompletedTasks int
	TotalGoals     int
	CompletedGoals int
}

func (c *Client) Summary() Summary {
	var s Summary
	for _, t := range c.Tasks.All() {
		s.TotalTasks++
		if t.Completed {
			s.CompletedTasks++
		}
	}
	for _, g := range c.Goals.All() {
		s.TotalGoals++
		if g.IsCompleted() {
			s.CompletedGoals++
		}
	}
	return s
}
