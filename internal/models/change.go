package models

// FileChangeStatus is the host-reported status of a changed file.
type FileChangeStatus string

const (
	StatusAdded    FileChangeStatus = "added"
	StatusModified FileChangeStatus = "modified"
	StatusRemoved  FileChangeStatus = "removed"
	StatusRenamed  FileChangeStatus = "renamed"
)

type (
	// FileChange is one per-file diff record of a pull request, taken
	// verbatim from the host platform.
	FileChange struct {
		Filename  string
		Status    FileChangeStatus
		Additions int
		Deletions int
		// Patch is the unified diff hunk for the file. The host omits it
		// for binary or very large files.
		Patch string
	}

	// ChangeSet is the ordered list of file changes for one pull request,
	// in the order the host returned them.
	ChangeSet []FileChange
)

// TotalAdditions sums the added lines across the change set.
func (cs ChangeSet) TotalAdditions() int {
	total := 0
	for _, fc := range cs {
		total += fc.Additions
	}
	return total
}

// TotalDeletions sums the deleted lines across the change set.
func (cs ChangeSet) TotalDeletions() int {
	total := 0
	for _, fc := range cs {
		total += fc.Deletions
	}
	return total
}
