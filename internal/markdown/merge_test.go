package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_Append(t *testing.T) {
	t.Run("should produce only the section for an empty body", func(t *testing.T) {
		got := Merge("", "- added the thing")

		assert.Equal(t, SectionHeader+"\n\n- added the thing\n", got)
	})

	t.Run("should append after existing content without touching it", func(t *testing.T) {
		body := "## Notes\nFoo"

		got := Merge(body, "- change one")

		assert.True(t, strings.HasPrefix(got, "## Notes\nFoo\n\n"))
		assert.Equal(t, "## Notes\nFoo\n\n"+SectionHeader+"\n\n- change one\n", got)
	})

	t.Run("should reuse an existing trailing blank line as the separator", func(t *testing.T) {
		body := "Intro text\n\n"

		got := Merge(body, "- a")

		assert.Equal(t, "Intro text\n\n"+SectionHeader+"\n\n- a\n", got)
	})

	t.Run("should complete a single trailing newline into a blank line", func(t *testing.T) {
		body := "Intro text\n"

		got := Merge(body, "- a")

		assert.Equal(t, "Intro text\n\n"+SectionHeader+"\n\n- a\n", got)
	})

	t.Run("should preserve extra trailing newlines byte for byte", func(t *testing.T) {
		body := "Intro text\n\n\n"

		got := Merge(body, "- a")

		assert.Equal(t, "Intro text\n\n\n"+SectionHeader+"\n\n- a\n", got)
		assert.True(t, strings.HasPrefix(got, body))
	})
}

func TestMerge_Replace(t *testing.T) {
	t.Run("should replace the section and keep trailing headings", func(t *testing.T) {
		body := SectionHeader + "\n\nold text\n\n## Notes\nBar"

		got := Merge(body, "new text")

		assert.Equal(t, SectionHeader+"\n\nnew text\n## Notes\nBar", got)
		assert.NotContains(t, got, "old text")
	})

	t.Run("should keep content before the marker untouched", func(t *testing.T) {
		body := "Hand-written intro.\n\n" + SectionHeader + "\n\nold\n"

		got := Merge(body, "- fresh")

		assert.True(t, strings.HasPrefix(got, "Hand-written intro.\n\n"))
		assert.Equal(t, "Hand-written intro.\n\n"+SectionHeader+"\n\n- fresh\n", got)
	})

	t.Run("should handle a marker immediately followed by another heading", func(t *testing.T) {
		body := SectionHeader + "\n## Notes\nBar"

		got := Merge(body, "- filled in")

		assert.Equal(t, SectionHeader+"\n\n- filled in\n## Notes\nBar", got)
	})

	t.Run("should handle a marker at the end of the body", func(t *testing.T) {
		body := "Intro\n\n" + SectionHeader + "\n\nstale"

		got := Merge(body, "- fresh")

		assert.Equal(t, "Intro\n\n"+SectionHeader+"\n\n- fresh\n", got)
	})

	t.Run("should ignore a marker that is not at a line start", func(t *testing.T) {
		body := "Quoting the " + SectionHeader + " header inline"

		got := Merge(body, "- s")

		assert.True(t, strings.HasPrefix(got, body+"\n\n"))
	})

	t.Run("should collapse duplicated sections from a malformed body", func(t *testing.T) {
		body := SectionHeader + "\n\none\n" + SectionHeader + "\n\ntwo\n\n## Keep\nme"

		got := Merge(body, "- only")

		assert.Equal(t, 1, strings.Count(got, SectionHeader))
		assert.Contains(t, got, "## Keep\nme")
		assert.NotContains(t, got, "one")
		assert.NotContains(t, got, "two")
	})
}

func TestMerge_Idempotence(t *testing.T) {
	bodies := []string{
		"",
		"## Notes\nFoo",
		"Intro\n\n" + SectionHeader + "\n\nold\n\n## Notes\nBar",
		SectionHeader + "\n\nold",
	}

	for _, body := range bodies {
		once := Merge(body, "s1")
		twice := Merge(once, "s2")
		thrice := Merge(twice, "s2")

		assert.Equal(t, 1, strings.Count(twice, SectionHeader), "body %q", body)
		assert.Contains(t, twice, "s2")
		assert.NotContains(t, twice, "s1")
		assert.Equal(t, twice, thrice, "merge must be stable under the same summary, body %q", body)
	}
}

func TestMerge_SanitizesSummaryHeadings(t *testing.T) {
	t.Run("should demote top-level headings inside the summary", func(t *testing.T) {
		summary := "## Breaking changes\n- renamed API\n# Note\nplain"

		got := Merge("", summary)

		assert.Contains(t, got, "### Breaking changes")
		assert.Contains(t, got, "### Note")
		assert.Equal(t, 1, strings.Count(got, SectionHeader))

		// The sanitized summary can no longer close its own section.
		again := Merge(got+"\n## Real heading\ntail", "- replaced")
		assert.Contains(t, again, "## Real heading\ntail")
		assert.NotContains(t, again, "Breaking changes")
	})

	t.Run("should leave non-heading hash lines alone", func(t *testing.T) {
		got := Merge("", "#!/bin/sh\n#no space")

		assert.Contains(t, got, "#!/bin/sh")
		assert.Contains(t, got, "#no space")
	})
}

func TestHasSection(t *testing.T) {
	assert.False(t, HasSection(""))
	assert.False(t, HasSection("## Notes\nFoo"))
	assert.True(t, HasSection(SectionHeader+"\n\ntext"))
	assert.True(t, HasSection("Intro\n"+SectionHeader))
}
