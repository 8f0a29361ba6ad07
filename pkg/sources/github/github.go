package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/cli/go-gh/v2/pkg/auth"
	"github.com/google/go-github/v51/github"
	"golang.org/x/oauth2"
)

// DefaultDownloadURL is the host release assets are served from
const DefaultDownloadURL = "https://github.com"

type Source struct {
	// Owner specifies the organization or user the release belongs to
	Owner string

	// Repo specifies the repository publishing the releases
	Repo string

	// DownloadURL is the base URL release asset links are built from
	DownloadURL string

	// client is used to interact with the GitHub API
	client *github.Client
}

func NewSource(owner, repo string) *Source {
	token, _ := auth.TokenForHost("")
	var tc *http.Client
	if token != "" {
		ctx := context.Background()
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		tc = oauth2.NewClient(ctx, ts)
	}
	return &Source{
		Owner:       owner,
		Repo:        repo,
		DownloadURL: DefaultDownloadURL,
		client:      github.NewClient(tc),
	}
}

// FetchLatestRelease returns the latest published release from GitHub
func (s Source) FetchLatestRelease(ctx context.Context) (*github.RepositoryRelease, error) {
	release, response, err := s.client.Repositories.GetLatestRelease(ctx, s.Owner, s.Repo)
	if err != nil {
		return &github.RepositoryRelease{}, err
	}
	err = github.CheckResponse(response.Response)
	if err != nil {
		return &github.RepositoryRelease{}, err
	}
	return release, nil
}

// LatestVersion returns the tag of the latest release with any leading 'v' removed
func (s Source) LatestVersion(ctx context.Context) (string, error) {
	release, err := s.FetchLatestRelease(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch latest release of %s/%s: %w", s.Owner, s.Repo, err)
	}
	tag := release.GetTagName()
	if tag == "" {
		return "", fmt.Errorf("latest release of %s/%s has no tag", s.Owner, s.Repo)
	}
	return strings.TrimPrefix(tag, "v"), nil
}

// ReleaseAssetURL builds the browser download link for an asset attached to the
// release tagged 'v<version>'. The version is inserted verbatim.
func (s Source) ReleaseAssetURL(version, asset string) string {
	return fmt.Sprintf("%s/%s/%s/releases/download/v%s/%s", strings.TrimSuffix(s.DownloadURL, "/"), s.Owner, s.Repo, version, asset)
}
