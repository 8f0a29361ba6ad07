package github

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"

	gogithub "github.com/google/go-github/v51/github"
)

// testServer emulates GitHub API v3 responses for consistent testing
// Refer to https://github.com/google/go-github/blob/master/github/github_test.go#L37
type testServer struct {
	server *httptest.Server
	mux    *http.ServeMux
}

func newTestServer() *testServer {
	m := http.NewServeMux()
	return &testServer{
		server: httptest.NewServer(m),
		mux:    m,
	}
}

func (t *testServer) cleanup() {
	t.server.Close()
}

// url formats the testServer's URL and returns the equivalent url.URL object
func (t *testServer) url() (*url.URL, error) {
	// NOTE: go-github requires that the testServer's URL ends with a '/'
	return url.Parse(fmt.Sprintf("%s/", t.server.URL))
}

// addFetchLatestReleaseHandler adds a handler function for go-github's RepositoriesService.GetLatestRelease() function
func (t *testServer) addFetchLatestReleaseHandler(owner string, repo string, handler http.HandlerFunc) {
	t.mux.HandleFunc(fmt.Sprintf("/repos/%s/%s/releases/latest", owner, repo), handler)
}

// TestSource directs a normal Source object's requests to an httptest server for more predictable
// and consistent testing
type TestSource struct {
	*Source
	server *testServer
}

// NewTestSource constructs a TestSource. Both API calls and release asset links
// resolve against the internal server.
func NewTestSource(owner, repo string) (*TestSource, error) {
	server := newTestServer()
	serverURL, err := server.url()
	if err != nil {
		return &TestSource{}, fmt.Errorf("failed to parse server URL: %w", err)
	}
	src := NewSource(owner, repo)
	src.client = gogithub.NewClient(nil)
	src.client.BaseURL = serverURL
	src.DownloadURL = server.server.URL
	ts := &TestSource{
		Source: src,
		server: server,
	}
	return ts, nil
}

// Cleanup handles all post-test actions required to clean up a TestSource
func (t *TestSource) Cleanup() {
	t.server.cleanup()
}

// AddFetchLatestReleaseResponse allows tests to specify the response they expect from the TestSource
// when calling FetchLatestRelease()
func (t *TestSource) AddFetchLatestReleaseResponse(resp gogithub.RepositoryRelease) error {
	respBytes, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	t.server.addFetchLatestReleaseHandler(t.Owner, t.Repo, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, string(respBytes))
	})
	return nil
}

// AddResponse allows tests to specify the handler for an arbitrary path
func (t *TestSource) AddResponse(path string, handler http.HandlerFunc) {
	t.server.mux.HandleFunc(path, handler)
}
