package gitlab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hooksync/pkg/domain/interfaces"
	"github.com/secmon-lab/hooksync/pkg/domain/model"
	"github.com/secmon-lab/hooksync/pkg/domain/types"
	"github.com/secmon-lab/hooksync/pkg/utils/safe"
)

// DefaultBaseURL is the public GitLab API endpoint.
const DefaultBaseURL = "https://gitlab.com/api/v4"

// maxErrorBodySize limits how much of an error response body is carried
// into error values.
const maxErrorBodySize = 1024

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the GitLab REST API. It implements both the catalog
// and webhook capability interfaces.
type Client struct {
	baseURL    string
	token      types.AccessToken
	httpClient HTTPClient
}

var (
	_ interfaces.Catalog        = (*Client)(nil)
	_ interfaces.WebhookService = (*Client)(nil)
)

type Option func(*Client)

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = httpClient
	}
}

func New(baseURL string, token types.AccessToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitLab access token is empty")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

func (x *Client) do(ctx context.Context, method, apiPath string, query url.Values, body, out any) error {
	endpoint := x.baseURL + apiPath
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to marshal request body", goerr.V("path", apiPath))
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return goerr.Wrap(err, "failed to build request", goerr.V("method", method), goerr.V("url", endpoint))
	}
	req.Header.Set("PRIVATE-TOKEN", string(x.token))
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to send request", goerr.V("method", method), goerr.V("url", endpoint))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return goerr.Wrap(types.ErrAPIRequest, "unexpected status code",
			goerr.V("method", method),
			goerr.V("url", endpoint),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(raw)),
		)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return goerr.Wrap(err, "failed to decode response body",
				goerr.V("method", method),
				goerr.V("url", endpoint),
			)
		}
	}

	return nil
}

// ListGroupProjects returns one page of the projects under the group,
// including nested subgroups. Page size is fixed; the caller keeps
// requesting pages until a short page is returned.
func (x *Client) ListGroupProjects(ctx context.Context, group types.GroupPath, page int) ([]*model.Project, error) {
	query := url.Values{
		"include_subgroups": []string{"true"},
		"per_page":          []string{strconv.Itoa(interfaces.CatalogPageSize)},
		"page":              []string{strconv.Itoa(page)},
	}

	var projects []*model.Project
	apiPath := "/groups/" + url.PathEscape(string(group)) + "/projects"
	if err := x.do(ctx, http.MethodGet, apiPath, query, nil, &projects); err != nil {
		return nil, goerr.Wrap(err, "failed to list group projects",
			goerr.V("group", group),
			goerr.V("page", page),
		)
	}

	return projects, nil
}

func (x *Client) ListWebhooks(ctx context.Context, ref model.RepositoryRef) ([]*model.Webhook, error) {
	var hooks []*model.Webhook
	apiPath := "/projects/" + url.PathEscape(ref.FullPath()) + "/hooks"
	if err := x.do(ctx, http.MethodGet, apiPath, nil, nil, &hooks); err != nil {
		return nil, goerr.Wrap(err, "failed to list webhooks", goerr.V("repo", ref.FullPath()))
	}

	return hooks, nil
}

func (x *Client) CreateWebhook(ctx context.Context, ref model.RepositoryRef, spec *model.WebhookSpec) (*model.Webhook, error) {
	var created model.Webhook
	apiPath := "/projects/" + url.PathEscape(ref.FullPath()) + "/hooks"
	if err := x.do(ctx, http.MethodPost, apiPath, nil, spec, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create webhook", goerr.V("repo", ref.FullPath()))
	}

	return &created, nil
}

func (x *Client) DeleteWebhook(ctx context.Context, ref model.RepositoryRef, id types.HookID) error {
	apiPath := "/projects/" + url.PathEscape(ref.FullPath()) + "/hooks/" + fmt.Sprintf("%d", id)
	if err := x.do(ctx, http.MethodDelete, apiPath, nil, nil, nil); err != nil {
		return goerr.Wrap(err, "failed to delete webhook",
			goerr.V("repo", ref.FullPath()),
			goerr.V("hook_id", id),
		)
	}

	return nil
}
