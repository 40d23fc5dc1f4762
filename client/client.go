// Package client provides a typed HTTP client for the comment API.
//
// The transport is always supplied by the caller: any value with a
// Do(*http.Request) method, such as *http.Client, can be used. The client
// adds no timeout, retry or authentication of its own; a Doer that needs
// them must provide them.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/evcraddock/comment-client/comment"
)

// DefaultBaseURL is the origin used when WithBaseURL is not given.
const DefaultBaseURL = "http://example.com"

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// API is the set of comment operations offered by Client.
type API interface {
	ListComments(ctx context.Context) (ListCommentsResult, error)
	CreateComment(ctx context.Context, req CreateCommentRequest) (CommentResult, error)
	UpdateComment(ctx context.Context, req UpdateCommentRequest) (CommentResult, error)
}

var _ API = (*Client)(nil)

// Client is an HTTP client for the comment API. It holds no per-call state
// and is safe for concurrent use if its Doer is.
type Client struct {
	baseURL *url.URL
	doer    Doer
	codec   Codec
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*options)

type options struct {
	baseURL string
	codec   Codec
	logger  *slog.Logger
}

// WithBaseURL sets the origin requests are sent to.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithCodec replaces the JSON codec.
func WithCodec(c Codec) Option {
	return func(o *options) { o.codec = c }
}

// WithLogger enables debug-level tracing of each request.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a client that sends requests through doer.
func New(doer Doer, opts ...Option) (*Client, error) {
	if doer == nil {
		return nil, errors.New("comment api: doer is required")
	}

	o := options{baseURL: DefaultBaseURL, codec: JSONCodec{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.codec == nil {
		return nil, errors.New("comment api: codec is required")
	}

	base, err := url.Parse(o.baseURL)
	if err != nil {
		return nil, fmt.Errorf("comment api: parsing base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("comment api: base url %q must be absolute", o.baseURL)
	}

	return &Client{
		baseURL: base,
		doer:    doer,
		codec:   o.codec,
		logger:  o.logger,
	}, nil
}

// ListComments returns all comments from GET /comments.
func (c *Client) ListComments(ctx context.Context) (ListCommentsResult, error) {
	data, err := c.execute(ctx, http.MethodGet, "/comments", nil)
	if err != nil {
		return ListCommentsResult{}, err
	}

	items, ok := data.([]any)
	if !ok {
		return ListCommentsResult{}, malformedResponse(fmt.Errorf("expected array, got %s", jsonType(data)))
	}

	comments := make([]comment.Comment, 0, len(items))
	for i, item := range items {
		cm, err := toComment(item)
		if err != nil {
			return ListCommentsResult{}, malformedResponse(fmt.Errorf("comment %d: %w", i, err))
		}
		comments = append(comments, cm)
	}

	return ListCommentsResult{Comments: comments}, nil
}

// CreateComment creates a comment with POST /comment.
func (c *Client) CreateComment(ctx context.Context, req CreateCommentRequest) (CommentResult, error) {
	body := commentPayload{Name: req.Name, Text: req.Text}
	return c.single(ctx, http.MethodPost, "/comment", body)
}

// UpdateComment replaces a comment with PUT /comment/{id}.
// The id is placed in the path as given.
func (c *Client) UpdateComment(ctx context.Context, req UpdateCommentRequest) (CommentResult, error) {
	body := commentPayload{Name: req.Name, Text: req.Text}
	return c.single(ctx, http.MethodPut, "/comment/"+req.ID, body)
}

// single runs a request whose response is one comment object.
func (c *Client) single(ctx context.Context, method, path string, payload any) (CommentResult, error) {
	data, err := c.execute(ctx, method, path, payload)
	if err != nil {
		return CommentResult{}, err
	}

	cm, err := toComment(data)
	if err != nil {
		return CommentResult{}, malformedResponse(err)
	}
	return CommentResult{Comment: cm}, nil
}

// execute builds, sends and decodes one request. Every failure is an *Error.
func (c *Client) execute(ctx context.Context, method, path string, payload any) (any, error) {
	target := c.endpoint(path)

	var body io.Reader
	var encoded []byte
	if payload != nil {
		data, err := c.codec.Marshal(payload)
		if err != nil {
			return nil, malformedRequest(fmt.Errorf("encoding payload: %w", err))
		}
		encoded = data
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, malformedRequest(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if encoded != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, transportFailure(err)
	}
	if resp.Body == nil {
		resp.Body = http.NoBody
	}
	defer c.closeBody(resp.Body)

	c.debug(ctx, "comment api response",
		"method", method,
		"url", target.String(),
		"status", resp.StatusCode,
	)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		e := httpError(resp.StatusCode)
		if reason := reasonPhrase(resp); reason != "" {
			e.Message = reason
		}
		return nil, e
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportFailure(fmt.Errorf("reading response: %w", err))
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return nil, malformedResponse(errors.New("decoding response: empty body"))
	}

	var data any
	if err := c.codec.Unmarshal(respBody, &data); err != nil {
		return nil, malformedResponse(fmt.Errorf("decoding response: %w", err))
	}

	return data, nil
}

// endpoint appends path to the base URL's path. Reserved characters that
// are not valid in a path are escaped when the URL is rendered; "/" is not.
func (c *Client) endpoint(path string) *url.URL {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	u.RawPath = ""
	return &u
}

// closeBody drains and closes a response body.
func (c *Client) closeBody(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	if err := body.Close(); err != nil {
		c.debug(context.Background(), "closing response body", "error", err)
	}
}

func (c *Client) debug(ctx context.Context, msg string, args ...any) {
	if c.logger == nil {
		return
	}
	c.logger.DebugContext(ctx, msg, args...)
}

// toComment maps one decoded JSON value to a Comment.
func toComment(v any) (comment.Comment, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return comment.Comment{}, fmt.Errorf("expected object, got %s", jsonType(v))
	}
	return comment.FromMap(m)
}

// reasonPhrase returns the text after the code in resp.Status, if any.
func reasonPhrase(resp *http.Response) string {
	s := strings.TrimSpace(resp.Status)
	s = strings.TrimPrefix(s, strconv.Itoa(resp.StatusCode))
	return strings.TrimSpace(s)
}

func statusText(code int) string {
	if s := http.StatusText(code); s != "" {
		return s
	}
	return "unhandled http response code"
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return "number"
	}
}
