package ports

import (
	"context"

	"github.com/descmate/descmate/internal/models"
)

// VCSClient abstracts the source-control host surface the pipeline needs:
// the change list, the current description, and the final write.
type VCSClient interface {
	ListChangedFiles(ctx context.Context, prNumber int) (models.ChangeSet, error)
	GetPullRequest(ctx context.Context, prNumber int) (models.PullRequest, error)
	UpdateDescription(ctx context.Context, prNumber int, body string) (models.UpdateResult, error)
}
