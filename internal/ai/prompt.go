// Package ai holds the prompt construction shared by every provider
// backend.
package ai

import (
	"fmt"
	"strings"

	"github.com/descmate/descmate/internal/models"
)

// promptInstructions pins the output format so the merge step can assume
// list-style prose: an unordered list, no introductory paragraph.
const promptInstructions = `Write a summary of this pull request for its description.

Instructions:
1. Respond with an unordered markdown list, one bullet per meaningful change.
2. Do not write an introductory paragraph or a closing remark.
3. Group related file changes into a single bullet when they serve one purpose.
4. Mention user-visible behavior before internal refactors.`

// BuildPrompt serializes a change set into the generation request.
// It is deterministic: the same changes in the same order always produce
// the same text.
func BuildPrompt(changes models.ChangeSet, hint string) string {
	var b strings.Builder

	b.WriteString(promptInstructions)
	b.WriteString("\n\n")

	if hint != "" {
		fmt.Fprintf(&b, "Additional context from the author: %s\n\n", hint)
	}

	fmt.Fprintf(&b, "Changed files (%d, +%d -%d):\n",
		len(changes), changes.TotalAdditions(), changes.TotalDeletions())

	for _, fc := range changes {
		fmt.Fprintf(&b, "\n- %s (%s, +%d -%d)\n", fc.Filename, fc.Status, fc.Additions, fc.Deletions)
		if fc.Patch != "" {
			b.WriteString("```diff\n")
			b.WriteString(fc.Patch)
			if !strings.HasSuffix(fc.Patch, "\n") {
				b.WriteString("\n")
			}
			b.WriteString("```\n")
		}
	}

	return b.String()
}
