package github

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	apperrors "github.com/descmate/descmate/internal/errors"
)

// EventContext is the pull request the CI platform invoked us for.
type EventContext struct {
	Owner    string
	Repo     string
	PRNumber int
}

// eventPayload is the part of the Actions webhook payload we read. Some
// event shapes carry the number at the top level, others nest it under
// pull_request.
type eventPayload struct {
	Number      int `json:"number"`
	PullRequest struct {
		Number int `json:"number"`
	} `json:"pull_request"`
}

// ResolveEventContext reads the pull request reference from the GitHub
// Actions environment. Anything other than a pull_request trigger is a
// missing-context failure, raised before any network call.
func ResolveEventContext() (EventContext, error) {
	eventName := os.Getenv("GITHUB_EVENT_NAME")
	if eventName != "pull_request" && eventName != "pull_request_target" {
		return EventContext{}, apperrors.ErrMissingPRContext.WithError(
			fmt.Errorf("event %q is not a pull request event", eventName))
	}

	owner, repo, err := splitRepository(os.Getenv("GITHUB_REPOSITORY"))
	if err != nil {
		return EventContext{}, apperrors.ErrMissingPRContext.WithError(err)
	}

	number, err := prNumberFromEventFile(os.Getenv("GITHUB_EVENT_PATH"))
	if err != nil {
		return EventContext{}, apperrors.ErrMissingPRContext.WithError(err)
	}

	return EventContext{
		Owner:    owner,
		Repo:     repo,
		PRNumber: number,
	}, nil
}

func splitRepository(slug string) (string, string, error) {
	parts := strings.SplitN(slug, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("GITHUB_REPOSITORY %q is not in owner/repo form", slug)
	}
	return parts[0], parts[1], nil
}

func prNumberFromEventFile(path string) (int, error) {
	if path == "" {
		return 0, fmt.Errorf("GITHUB_EVENT_PATH is not set")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("could not read event payload: %w", err)
	}

	var payload eventPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return 0, fmt.Errorf("could not parse event payload: %w", err)
	}

	if payload.PullRequest.Number > 0 {
		return payload.PullRequest.Number, nil
	}
	if payload.Number > 0 {
		return payload.Number, nil
	}

	return 0, fmt.Errorf("event payload carries no pull request number")
}
