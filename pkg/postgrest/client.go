// Package postgrest is a minimal read-only client for a Supabase PostgREST endpoint.
package postgrest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const restPath = "/rest/v1/"

// Error describes a non-2xx PostgREST response.
type Error struct {
	Status  int
	Code    string
	Message string
	Hint    string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}
	return e.Message
}

// Client issues PostgREST reads using the project anon key.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New constructs a client. A nil httpClient gets a client with the given timeout.
func New(baseURL, apiKey string, timeout time.Duration, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpClient,
	}
}

// Query accumulates PostgREST query parameters for one table.
type Query struct {
	table  string
	params url.Values
}

// From starts a query against table.
func (c *Client) From(table string) *Query {
	return &Query{table: table, params: url.Values{}}
}

// Select sets the projected columns.
func (q *Query) Select(columns ...string) *Query {
	q.params.Set("select", strings.Join(columns, ","))
	return q
}

// Gte adds a column >= value filter.
func (q *Query) Gte(column, value string) *Query {
	q.params.Add(column, "gte."+value)
	return q
}

// Lt adds a column < value filter.
func (q *Query) Lt(column, value string) *Query {
	q.params.Add(column, "lt."+value)
	return q
}

// Order appends an ordering term.
func (q *Query) Order(column string, ascending bool) *Query {
	dir := "desc"
	if ascending {
		dir = "asc"
	}
	term := column + "." + dir
	if existing := q.params.Get("order"); existing != "" {
		term = existing + "," + term
	}
	q.params.Set("order", term)
	return q
}

// Limit caps the number of rows returned.
func (q *Query) Limit(n int) *Query {
	q.params.Set("limit", strconv.Itoa(n))
	return q
}

// Path renders the request path and query string relative to the project URL.
func (q *Query) Path() string {
	return restPath + q.table + "?" + q.params.Encode()
}

// Fetch runs the query and returns the JSON array of rows.
func (c *Client) Fetch(ctx context.Context, q *Query) (gjson.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+q.Path(), nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("build %s request: %w", q.table, err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("read %s response: %w", q.table, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return gjson.Result{}, parseError(resp.StatusCode, body)
	}

	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("%s response is not valid JSON", q.table)
	}
	result := gjson.ParseBytes(body)
	if !result.IsArray() {
		return gjson.Result{}, fmt.Errorf("%s response is not a JSON array", q.table)
	}
	return result, nil
}

// Ping reads at most one id from table to prove the endpoint and key work.
func (c *Client) Ping(ctx context.Context, table string) error {
	_, err := c.Fetch(ctx, c.From(table).Select("id").Limit(1))
	return err
}

func parseError(status int, body []byte) *Error {
	e := &Error{Status: status}
	if gjson.ValidBytes(body) {
		parsed := gjson.ParseBytes(body)
		e.Code = parsed.Get("code").String()
		e.Message = parsed.Get("message").String()
		e.Hint = parsed.Get("hint").String()
	}
	if e.Message == "" {
		e.Message = strings.TrimSpace(string(body))
	}
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}
