package vso

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/m-zajac/vsometrics/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client queries vso rest api.
// This struct is an adapter for app.VSOClient.
type Client struct {
	doer       HTTPDoer
	address    string
	username   string
	password   string
	apiVersion string

	responseMaxSize int64
}

var _ app.VSOClient = &Client{}

// NewClient creates new vso client.
// address is the collection url, e.g. https://account.visualstudio.com/DefaultCollection.
func NewClient(doer HTTPDoer, address string, username string, password string, apiVersion string) *Client {
	return &Client{
		doer:       doer,
		address:    strings.TrimSuffix(address, "/"),
		username:   username,
		password:   password,
		apiVersion: apiVersion,

		responseMaxSize: 1024 * 1024 * 30,
	}
}

// Fetch makes authenticated GET request for given resource path and decodes json response into dst.
//
// Returns *app.TransportError when request fails or status is not successful,
// and *app.MalformedResponseError when response can't be decoded.
func (c *Client) Fetch(ctx context.Context, resourcePath string, dst interface{}) error {
	u, err := url.Parse(c.address + "/" + resourcePath)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	v := u.Query()
	v.Set("api-version", c.apiVersion)
	u.RawQuery = v.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("creating http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.doer.Do(req)
	if err != nil {
		return &app.TransportError{Path: resourcePath, Err: err}
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		return &app.TransportError{
			Path:       resourcePath,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("got invalid http status code: %d", resp.StatusCode),
		}
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, c.responseMaxSize+1))
	if err != nil {
		return &app.TransportError{Path: resourcePath, Err: fmt.Errorf("reading http response body: %w", err)}
	}
	if int64(len(b)) > c.responseMaxSize {
		return &app.MalformedResponseError{Path: resourcePath, Reason: "response body too large"}
	}

	if err := json.Unmarshal(b, dst); err != nil {
		return &app.MalformedResponseError{Path: resourcePath, Reason: fmt.Sprintf("unmarshalling json: %v", err)}
	}

	return nil
}

// Projects returns names of all team projects.
func (c *Client) Projects(ctx context.Context) ([]string, error) {
	path := "_apis/projects"

	var resp namedListResponse
	if err := c.Fetch(ctx, path, &resp); err != nil {
		return nil, err
	}
	names, err := resp.ToNames()
	return names, withPath(err, path)
}

// Teams returns names of project's teams.
func (c *Client) Teams(ctx context.Context, project string) ([]string, error) {
	path := fmt.Sprintf("_apis/projects/%s/teams", url.PathEscape(project))

	var resp namedListResponse
	if err := c.Fetch(ctx, path, &resp); err != nil {
		return nil, err
	}
	names, err := resp.ToNames()
	return names, withPath(err, path)
}

// TeamMembers returns members of project's team.
func (c *Client) TeamMembers(ctx context.Context, project string, team string) ([]app.Member, error) {
	path := fmt.Sprintf(
		"_apis/projects/%s/teams/%s/members",
		url.PathEscape(project),
		url.PathEscape(team),
	)

	var resp membersResponse
	if err := c.Fetch(ctx, path, &resp); err != nil {
		return nil, err
	}
	members, err := resp.ToMembers()
	return members, withPath(err, path)
}

// BuildCount returns number of project's builds.
// Server keeps builds for a limited retention period only, so this is not a historical count.
func (c *Client) BuildCount(ctx context.Context, project string) (int, error) {
	path := fmt.Sprintf("%s/_apis/build/builds", url.PathEscape(project))

	var resp buildsResponse
	if err := c.Fetch(ctx, path, &resp); err != nil {
		return 0, err
	}
	count, err := resp.ToCount()
	return count, withPath(err, path)
}

// Repositories returns all git repositories, tagged with owning project's name.
func (c *Client) Repositories(ctx context.Context) ([]app.Repository, error) {
	path := "_apis/git/repositories"

	var resp repositoriesResponse
	if err := c.Fetch(ctx, path, &resp); err != nil {
		return nil, err
	}
	repos, err := resp.ToRepositories()
	return repos, withPath(err, path)
}

// CommitIDs returns ids of repository's commits.
// Only the first page is returned, which is capped at api's default page size.
func (c *Client) CommitIDs(ctx context.Context, repositoryID string) ([]string, error) {
	path := fmt.Sprintf("_apis/git/repositories/%s/commits", url.PathEscape(repositoryID))

	var resp commitsResponse
	if err := c.Fetch(ctx, path, &resp); err != nil {
		return nil, err
	}
	ids, err := resp.ToCommitIDs()
	return ids, withPath(err, path)
}

// CommitAuthor returns member that pushed given commit.
// Pusher's id matches team member ids, unlike commit's git author.
func (c *Client) CommitAuthor(ctx context.Context, repositoryID string, commitID string) (app.Member, error) {
	path := fmt.Sprintf(
		"_apis/git/repositories/%s/commits/%s",
		url.PathEscape(repositoryID),
		url.PathEscape(commitID),
	)

	var resp commitResponse
	if err := c.Fetch(ctx, path, &resp); err != nil {
		return app.Member{}, err
	}
	author, err := resp.ToAuthor()
	return author, withPath(err, path)
}

// withPath fills path of malformed response errors returned by response mappers.
func withPath(err error, path string) error {
	if me, ok := err.(*app.MalformedResponseError); ok {
		me.Path = path
	}
	return err
}
