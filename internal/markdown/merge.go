// Package markdown implements the idempotent merge of a generated
// summary into a pull request description. The generated text lives in a
// single marked section; everything outside it belongs to the PR author
// and is never touched.
package markdown

import "strings"

// SectionHeader is the literal marker that opens the AI-owned section.
// The section runs from this header up to the next top-level heading, or
// to the end of the description.
const SectionHeader = "## 🤖 AI Summary"

// Merge splices summary into existingBody under the marked-section
// protocol: replace the current section if one exists, append a new one
// otherwise. Applying Merge repeatedly never duplicates the section.
func Merge(existingBody, summary string) string {
	section := SectionHeader + "\n\n" + sanitizeSummary(strings.TrimSpace(summary)) + "\n"

	start, end, ok := sectionBounds(existingBody)
	if !ok {
		if existingBody == "" {
			return section
		}
		// The author's text is kept byte for byte; only the separator
		// needed to put the marker at the start of its own paragraph is
		// inserted.
		switch {
		case strings.HasSuffix(existingBody, "\n\n"):
			return existingBody + section
		case strings.HasSuffix(existingBody, "\n"):
			return existingBody + "\n" + section
		default:
			return existingBody + "\n\n" + section
		}
	}

	head := existingBody[:start]
	tail := existingBody[end:]

	// A malformed body may carry more than one marked section; drop the
	// extras so the result always holds exactly one.
	for {
		s, e, found := sectionBounds(tail)
		if !found {
			break
		}
		tail = tail[:s] + tail[e:]
	}

	return head + section + tail
}

// HasSection reports whether body already contains a marked section.
func HasSection(body string) bool {
	_, _, ok := sectionBounds(body)
	return ok
}

// sectionBounds locates the marked section: the marker at a line start,
// through the byte before the next top-level heading, or end of text.
func sectionBounds(body string) (start, end int, ok bool) {
	idx := 0
	for {
		i := strings.Index(body[idx:], SectionHeader)
		if i < 0 {
			return 0, 0, false
		}
		i += idx
		if i == 0 || body[i-1] == '\n' {
			start = i
			rest := body[start+len(SectionHeader):]
			if j := nextHeadingIndex(rest); j >= 0 {
				return start, start + len(SectionHeader) + j, true
			}
			return start, len(body), true
		}
		idx = i + len(SectionHeader)
	}
}

// nextHeadingIndex returns the offset of the first top-level heading
// ("## " at a line start) in s, or -1. Deeper headings ("###") do not
// close the section.
func nextHeadingIndex(s string) int {
	i := strings.Index(s, "\n## ")
	if i < 0 {
		return -1
	}
	return i + 1
}

// sanitizeSummary demotes any heading of level one or two inside the
// generated text to level three, so a summary can never terminate its
// own section.
func sanitizeSummary(summary string) string {
	lines := strings.Split(summary, "\n")
	for i, line := range lines {
		level := 0
		for level < len(line) && line[level] == '#' {
			level++
		}
		if level == 0 || level >= 3 {
			continue
		}
		if level < len(line) && line[level] != ' ' {
			continue
		}
		lines[i] = strings.Repeat("#", 3-level) + line
	}
	return strings.Join(lines, "\n")
}
