package models

type (
	// PullRequest is the subset of the host's pull request entity this
	// tool reads and mutates.
	PullRequest struct {
		Number int
		Title  string
		Body   string
	}

	// UpdateResult records what the host reported back after a
	// description update.
	UpdateResult struct {
		StatusCode int
		BodyLength int
	}

	// DescribeResult is the outcome of one describe invocation, used for
	// the final status output.
	DescribeResult struct {
		Provider        string
		HadPriorSection bool
		BodyLength      int
		StatusCode      int
		// StatusOK is false when the host answered with a non-2xx status
		// on the final write. The update may still have partially landed,
		// so this is reported as a warning rather than a failure.
		StatusOK bool
		// Body holds the merged description. Only printed in dry-run mode.
		Body string
	}
)

// Accepted reports whether the host explicitly confirmed the update.
func (r UpdateResult) Accepted() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
