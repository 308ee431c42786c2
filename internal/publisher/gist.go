package publisher

import (
	"context"
	"fmt"

	"league-tracker-backend/internal/config"
	apperrors "league-tracker-backend/internal/errors"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// gistEditor is the slice of the GitHub Gists API the publisher needs.
// Declared as an interface so tests can stub the network away.
type gistEditor interface {
	Edit(ctx context.Context, id string, gist *github.Gist) (*github.Gist, *github.Response, error)
}

// GistPublisher updates a fixed GitHub gist in place, so the raw URL stays
// stable across publishes.
type GistPublisher struct {
	gists    gistEditor
	gistID   string
	filename string
}

// NewGistPublisher creates a gist publisher from configuration
func NewGistPublisher(cfg *config.Config) (*GistPublisher, error) {
	if cfg.GitHubToken == "" {
		return nil, apperrors.ErrGistTokenMissing
	}
	if cfg.GistID == "" {
		return nil, apperrors.ErrGistIDMissing
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: cfg.GitHubToken},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	client := github.NewClient(tc)

	filename := cfg.GistFilename
	if filename == "" {
		filename = "snapshot.json"
	}

	return &GistPublisher{
		gists:    client.Gists,
		gistID:   cfg.GistID,
		filename: filename,
	}, nil
}

// Mode returns the publisher identifier
func (p *GistPublisher) Mode() string { return "gist" }

// Publish replaces the gist file's content and returns its raw URL.
func (p *GistPublisher) Publish(ctx context.Context, document []byte) (string, error) {
	content := string(document)
	gist := &github.Gist{
		Files: map[github.GistFilename]github.GistFile{
			github.GistFilename(p.filename): {Content: &content},
		},
	}

	updated, _, err := p.gists.Edit(ctx, p.gistID, gist)
	if err != nil {
		return "", fmt.Errorf("failed to update gist: %w", err)
	}

	file, ok := updated.Files[github.GistFilename(p.filename)]
	if !ok || file.RawURL == nil {
		return "", fmt.Errorf("gist response missing file %s", p.filename)
	}
	return *file.RawURL, nil
}
