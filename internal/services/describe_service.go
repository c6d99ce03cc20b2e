package services

import (
	"context"

	"github.com/descmate/descmate/internal/ai"
	"github.com/descmate/descmate/internal/logger"
	"github.com/descmate/descmate/internal/markdown"
	"github.com/descmate/descmate/internal/models"
	"github.com/descmate/descmate/internal/ports"
)

// DescribeService runs the whole pipeline for one pull request: collect
// changes, generate a summary, merge it into the description, commit it
// back. Strictly sequential, one call per stage.
type DescribeService struct {
	vcs       ports.VCSClient
	generator ports.SummaryGenerator
}

func NewDescribeService(vcs ports.VCSClient, generator ports.SummaryGenerator) *DescribeService {
	return &DescribeService{
		vcs:       vcs,
		generator: generator,
	}
}

// DescribePR generates and publishes the AI section of the description.
// With dryRun the merged body is returned in the result instead of being
// written back.
func (s *DescribeService) DescribePR(ctx context.Context, prNumber int, hint string, dryRun bool) (models.DescribeResult, error) {
	changes, err := s.vcs.ListChangedFiles(ctx, prNumber)
	if err != nil {
		return models.DescribeResult{}, err
	}
	logger.Debug(ctx, "collected change set", "pr_number", prNumber, "count", len(changes))

	prompt := ai.BuildPrompt(changes, hint)

	summary, err := s.generator.GenerateSummary(ctx, prompt)
	if err != nil {
		return models.DescribeResult{}, err
	}
	logger.Debug(ctx, "summary generated", "provider", s.generator.Name(), "size", len(summary))

	pr, err := s.vcs.GetPullRequest(ctx, prNumber)
	if err != nil {
		return models.DescribeResult{}, err
	}

	result := models.DescribeResult{
		Provider:        s.generator.Name(),
		HadPriorSection: markdown.HasSection(pr.Body),
		StatusOK:        true,
	}

	merged := markdown.Merge(pr.Body, summary)
	result.BodyLength = len(merged)

	if dryRun {
		result.Body = merged
		return result, nil
	}

	update, err := s.vcs.UpdateDescription(ctx, prNumber, merged)
	if err != nil {
		return models.DescribeResult{}, err
	}

	result.StatusCode = update.StatusCode
	result.BodyLength = update.BodyLength
	if !update.Accepted() {
		// The write may still have landed; report, don't abort.
		logger.Warn(ctx, "host did not confirm the description update",
			"pr_number", prNumber, "status", update.StatusCode)
		result.StatusOK = false
	}

	return result, nil
}
