package github

import (
	"context"
	"net/http"

	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	apperrors "github.com/descmate/descmate/internal/errors"
	"github.com/descmate/descmate/internal/models"
	"github.com/descmate/descmate/internal/ports"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

const filesPerPage = 100

// PullRequestsService is the slice of go-github's pull request API this
// client depends on, narrowed so tests can inject their own.
type PullRequestsService interface {
	ListFiles(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.CommitFile, *github.Response, error)
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
	Edit(ctx context.Context, owner, repo string, number int, pr *github.PullRequest) (*github.PullRequest, *github.Response, error)
}

type GitHubClient struct {
	prService PullRequestsService
	owner     string
	repo      string
}

func NewGitHubClient(owner, repo, token string) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		prService: client.PullRequests,
		owner:     owner,
		repo:      repo,
	}
}

func NewGitHubClientWithServices(prService PullRequestsService, owner, repo string) *GitHubClient {
	return &GitHubClient{
		prService: prService,
		owner:     owner,
		repo:      repo,
	}
}

// ListChangedFiles relays the host's per-file diff records, paginated,
// keeping the host's order.
func (ghc *GitHubClient) ListChangedFiles(ctx context.Context, prNumber int) (models.ChangeSet, error) {
	opts := &github.ListOptions{PerPage: filesPerPage}

	var changes models.ChangeSet
	for {
		files, resp, err := ghc.prService.ListFiles(ctx, ghc.owner, ghc.repo, prNumber, opts)
		if err != nil {
			return nil, apperrors.ErrListFiles.WithError(err)
		}

		for _, file := range files {
			changes = append(changes, models.FileChange{
				Filename:  file.GetFilename(),
				Status:    models.FileChangeStatus(file.GetStatus()),
				Additions: file.GetAdditions(),
				Deletions: file.GetDeletions(),
				Patch:     file.GetPatch(),
			})
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return changes, nil
}

func (ghc *GitHubClient) GetPullRequest(ctx context.Context, prNumber int) (models.PullRequest, error) {
	pr, _, err := ghc.prService.Get(ctx, ghc.owner, ghc.repo, prNumber)
	if err != nil {
		return models.PullRequest{}, apperrors.ErrGetPR.WithError(err)
	}

	return models.PullRequest{
		Number: prNumber,
		Title:  pr.GetTitle(),
		Body:   pr.GetBody(),
	}, nil
}

// UpdateDescription writes the new body and reports the host's verdict.
// A non-2xx status with a nil error is left to the caller to treat as a
// warning; only transport failures are errors here.
func (ghc *GitHubClient) UpdateDescription(ctx context.Context, prNumber int, body string) (models.UpdateResult, error) {
	pr := &github.PullRequest{
		Body: github.String(body),
	}

	updated, resp, err := ghc.prService.Edit(ctx, ghc.owner, ghc.repo, prNumber, pr)
	if err != nil {
		return models.UpdateResult{}, apperrors.ErrUpdatePR.WithError(err)
	}

	result := models.UpdateResult{BodyLength: len(body)}
	if updated != nil && updated.Body != nil {
		result.BodyLength = len(updated.GetBody())
	}
	if resp != nil && resp.Response != nil {
		result.StatusCode = resp.StatusCode
	}

	return result, nil
}
