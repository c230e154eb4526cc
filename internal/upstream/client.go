package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"adminpanel/internal/metrics"
	"adminpanel/internal/models"

	"github.com/google/uuid"
)

const (
	OpPostDetail = "post_detail"
	OpPostExport = "post_export"
	OpPostDelete = "post_delete"
	OpUserDetail = "user_detail"
	OpUserDelete = "user_delete"
)

const (
	pathPostDetail   = "/post/detail"
	pathPostDownload = "/post/list/download"
	pathPostDelete   = "/post/delete"
	pathUserDetail   = "/user/detail"
	pathUserDelete   = "/user/delete"
)

// Headers copied from the operator's request onto every upstream call, so
// the admin server sees its own session.
var forwardedHeaders = []string{"Cookie", "X-CSRFToken", "Authorization"}

type forwardKey struct{}

// WithForwardedHeaders attaches the operator's request headers to ctx.
func WithForwardedHeaders(ctx context.Context, h http.Header) context.Context {
	fwd := make(http.Header)
	for _, name := range forwardedHeaders {
		for _, v := range h.Values(name) {
			fwd.Add(name, v)
		}
	}
	return context.WithValue(ctx, forwardKey{}, fwd)
}

// Client talks to the admin API. Every call is a single GET, never retried.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	metrics metrics.Provider
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithMetrics(m metrics.Provider) Option {
	return func(c *Client) { c.metrics = m }
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid upstream url %q", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		metrics: metrics.Nop{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) PostDetail(ctx context.Context, postID string) (*models.PostRecord, error) {
	body, err := c.get(ctx, OpPostDetail, pathPostDetail, url.Values{"post_id": {postID}})
	if err != nil {
		return nil, err
	}
	var post models.PostRecord
	if err := decodeDetail(body, &post); err != nil {
		return nil, &RequestError{Op: OpPostDetail, StatusCode: http.StatusOK, Message: "invalid response: " + err.Error(), Err: err}
	}
	return &post, nil
}

// PostListCSV returns the server's export of the full post list as is.
func (c *Client) PostListCSV(ctx context.Context) ([]byte, error) {
	return c.get(ctx, OpPostExport, pathPostDownload, nil)
}

func (c *Client) DeletePost(ctx context.Context, postID string) error {
	_, err := c.get(ctx, OpPostDelete, pathPostDelete, url.Values{"post_id": {postID}})
	return err
}

func (c *Client) UserDetail(ctx context.Context, userID string) (*models.UserRecord, error) {
	body, err := c.get(ctx, OpUserDetail, pathUserDetail, url.Values{"user_id": {userID}})
	if err != nil {
		return nil, err
	}
	var user models.UserRecord
	if err := decodeDetail(body, &user); err != nil {
		return nil, &RequestError{Op: OpUserDetail, StatusCode: http.StatusOK, Message: "invalid response: " + err.Error(), Err: err}
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	_, err := c.get(ctx, OpUserDelete, pathUserDelete, url.Values{"user_id": {userID}})
	return err
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	u := c.baseURL.JoinPath(path)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &RequestError{Op: op, Message: err.Error(), Err: err}
	}
	if fwd, ok := ctx.Value(forwardKey{}).(http.Header); ok {
		for name, values := range fwd {
			for _, v := range values {
				req.Header.Add(name, v)
			}
		}
	}
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.RecordUpstreamRequest(op, "error", time.Since(start))
		return nil, &RequestError{Op: op, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	c.metrics.RecordUpstreamRequest(op, strconv.Itoa(resp.StatusCode), time.Since(start))
	if err != nil {
		return nil, &RequestError{Op: op, StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(op, resp.StatusCode, body)
	}
	return body, nil
}

// decodeDetail undoes the detail endpoints' encoding: the body is a JSON
// string whose content is the record's JSON. A body that already is the
// object is decoded once.
func decodeDetail(body []byte, v interface{}) error {
	b := bytes.TrimSpace(body)
	if len(b) > 0 && b[0] == '"' {
		var inner string
		if err := json.Unmarshal(b, &inner); err != nil {
			return err
		}
		b = []byte(inner)
	}
	return json.Unmarshal(b, v)
}
