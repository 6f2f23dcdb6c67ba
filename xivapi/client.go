package xivapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultBaseURL = "https://xivapi.com"
	DefaultTimeout = 10 * time.Second

	maxErrorBody = 512
)

// Endpoint names, also used as metric labels.
const (
	EndpointCharacterSearch   = "character_search"
	EndpointCharacter         = "character"
	EndpointFreeCompanySearch = "freecompany_search"
	EndpointFreeCompany       = "freecompany"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Client issues queries against XIVAPI. It holds no per-call state and is
// safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	privateKey string
	language   string
	logger     *slog.Logger
}

type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the default *http.Client. Timeouts and transport
// instrumentation are configured there.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithPrivateKey sends the key as the private_key parameter on every request.
func WithPrivateKey(key string) Option {
	return func(c *Client) {
		c.privateKey = key
	}
}

// WithLanguage sets the language parameter (en, ja, de, fr).
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = lang
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchQuery holds the parameters of a name search. An empty Server and a
// nil Page are left out of the request.
type SearchQuery struct {
	Name   string `validate:"required"`
	Server string `validate:"omitempty,printascii"`
	Page   *uint8
}

// Page returns a pointer to n for SearchQuery.Page.
func Page(n uint8) *uint8 {
	return &n
}

// SearchCharacters searches characters by name.
func (c *Client) SearchCharacters(ctx context.Context, q SearchQuery) (*SearchResults[CharacterSearch], error) {
	query, err := searchParams(q)
	if err != nil {
		return nil, err
	}

	var data SearchResults[CharacterSearch]
	if err := c.getAndDecode(ctx, EndpointCharacterSearch, "/character/search", query, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetCharacter looks up a character by Lodestone id. extended resolves ids of
// related objects into full objects; data requests optional sections.
func (c *Client) GetCharacter(ctx context.Context, id uint32, extended bool, data ...DataSelector) (*CharacterResult, error) {
	query, err := lookupParams(extended, data)
	if err != nil {
		return nil, err
	}

	path := "/character/" + strconv.FormatUint(uint64(id), 10)

	var result CharacterResult
	if err := c.getAndDecode(ctx, EndpointCharacter, path, query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchFreeCompanies searches Free Companies by name.
func (c *Client) SearchFreeCompanies(ctx context.Context, q SearchQuery) (*SearchResults[FreeCompanySearch], error) {
	query, err := searchParams(q)
	if err != nil {
		return nil, err
	}

	var data SearchResults[FreeCompanySearch]
	if err := c.getAndDecode(ctx, EndpointFreeCompanySearch, "/freecompany/search", query, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetFreeCompany looks up a Free Company by its Lodestone id.
func (c *Client) GetFreeCompany(ctx context.Context, id string, extended bool, data ...DataSelector) (*FreeCompanyResult, error) {
	if err := validate.Var(id, "required,numeric"); err != nil {
		return nil, queryError("ID", err)
	}

	query, err := lookupParams(extended, data)
	if err != nil {
		return nil, err
	}

	var result FreeCompanyResult
	if err := c.getAndDecode(ctx, EndpointFreeCompany, "/freecompany/"+url.PathEscape(id), query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// JoinName collapses whitespace runs in a name into the "+" delimiter the
// search endpoints expect. Each word is query-escaped.
func JoinName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = url.QueryEscape(w)
	}
	return strings.Join(words, "+")
}

// searchParams returns the encoded parameters in the order name, server, page.
func searchParams(q SearchQuery) ([]string, error) {
	q.Name = JoinName(q.Name)
	q.Server = strings.TrimSpace(q.Server)
	if err := validate.Struct(q); err != nil {
		return nil, queryError("", err)
	}

	params := []string{"name=" + q.Name}
	if q.Server != "" {
		params = append(params, "server="+url.QueryEscape(q.Server))
	}
	if q.Page != nil {
		params = append(params, "page="+strconv.Itoa(int(*q.Page)))
	}
	return params, nil
}

func lookupParams(extended bool, data []DataSelector) ([]string, error) {
	var params []string
	if extended {
		params = append(params, "extended=1")
	}
	if len(data) > 0 {
		joined, err := joinSelectors(data)
		if err != nil {
			return nil, err
		}
		params = append(params, "data="+joined)
	}
	return params, nil
}

func (c *Client) buildURL(path string, params []string) string {
	if c.language != "" {
		params = append(params, "language="+url.QueryEscape(c.language))
	}
	if c.privateKey != "" {
		params = append(params, "private_key="+url.QueryEscape(c.privateKey))
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + strings.Join(params, "&")
	}
	return u
}

func (c *Client) getAndDecode(ctx context.Context, endpoint, path string, params []string, dest any) error {
	u := c.buildURL(path, params)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &TransportError{Op: "build request", URL: c.baseURL + path, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	c.logger.DebugContext(ctx, "Sending XIVAPI request", "endpoint", endpoint, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: "GET", URL: c.baseURL + path, Err: unwrapURLError(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.DebugContext(ctx, "XIVAPI request failed", "endpoint", endpoint, "status", resp.StatusCode)
		return &HTTPStatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: "read body", URL: c.baseURL + path, Err: err}
	}

	return Decode(body, dest)
}

// unwrapURLError strips the *url.Error wrapper, which repeats the full URL
// including the private key.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

func queryError(field string, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		name := fe.Field()
		if field != "" {
			name = field
		}
		return &QueryError{Field: name, Reason: fmt.Sprintf("failed %q validation", fe.Tag())}
	}
	return &QueryError{Field: field, Reason: err.Error()}
}
