package pretty_test

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goxmldom/internal/ui/pretty"
	"github.com/yaklabco/goxmldom/pkg/runner"
	"github.com/yaklabco/goxmldom/pkg/xmldom"
	"github.com/yaklabco/goxmldom/pkg/xmlparse"
)

func plainStyles() *pretty.Styles {
	return pretty.NewStyles(false)
}

func TestIsColorEnabled(t *testing.T) {
	t.Run("always", func(t *testing.T) {
		assert.True(t, pretty.IsColorEnabled("always", &bytes.Buffer{}))
	})
	t.Run("never", func(t *testing.T) {
		assert.False(t, pretty.IsColorEnabled("never", &bytes.Buffer{}))
	})
	t.Run("auto with non-tty writer", func(t *testing.T) {
		assert.False(t, pretty.IsColorEnabled("auto", &bytes.Buffer{}))
	})
	t.Run("auto honors NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.False(t, pretty.IsColorEnabled("auto", &bytes.Buffer{}))
	})
}

func TestFormatParseError(t *testing.T) {
	styles := plainStyles()

	t.Run("parse error with source context", func(t *testing.T) {
		source := []byte("<a>\n  <b></c>\n</a>")
		_, err := xmldom.Parse(source)
		require.Error(t, err)

		out := styles.FormatParseError("doc.xml", err, source)
		assert.Contains(t, out, "doc.xml:2:")
		assert.Contains(t, out, "error")
		assert.Contains(t, out, "(closing tag mismatch)")
		assert.Contains(t, out, "  <b></c>")
		assert.Contains(t, out, "^")
	})

	t.Run("non-parse error renders path and message", func(t *testing.T) {
		out := styles.FormatParseError("missing.xml", assert.AnError, nil)
		assert.Contains(t, out, "missing.xml")
		assert.Contains(t, out, assert.AnError.Error())
		assert.NotContains(t, out, ":0:")
	})
}

func TestFormatParseErrorExpandsTabs(t *testing.T) {
	styles := plainStyles()

	source := []byte("<a>\n\t<b></c>\n</a>")
	_, err := xmldom.Parse(source)
	require.Error(t, err)

	out := styles.FormatParseError("doc.xml", err, source)
	assert.NotContains(t, out, "\t")
	assert.Contains(t, out, "            <b></c>\n")
	// The tab shifts the caret by its full expansion width.
	assert.Contains(t, out, "\n"+strings.Repeat(" ", 19)+"^\n")
}

func TestFormatSourceContext(t *testing.T) {
	styles := plainStyles()

	out := styles.FormatSourceContext("<a></b>", 5)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "        <a></b>", lines[0])
	assert.Equal(t, "             ^", lines[1])
}

func TestFormatTree(t *testing.T) {
	styles := plainStyles()

	root, err := xmldom.Parse([]byte(`<a><b id="1">hi</b><!-- note --><c /></a>`))
	require.NoError(t, err)

	out := styles.FormatTree(root, 80)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "document", lines[0])
	assert.Equal(t, "└─ a", lines[1])
	assert.Equal(t, `   ├─ b id="1" "hi"`, lines[2])
	assert.Equal(t, "   ├─ <!-- note -->", lines[3])
	assert.Equal(t, "   └─ c", lines[4])
}

func TestFormatTreeTruncatesOnRuneBoundary(t *testing.T) {
	text := strings.Repeat("é", 60)
	root, err := xmldom.Parse([]byte("<a>" + text + "</a>"))
	require.NoError(t, err)

	out := plainStyles().FormatTree(root, 40)
	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, "...")
}

func TestFormatTreeNil(t *testing.T) {
	assert.Equal(t, "", plainStyles().FormatTree(nil, 80))
}

func TestFormatSummaryOneLine(t *testing.T) {
	styles := plainStyles()

	t.Run("clean run", func(t *testing.T) {
		out := styles.FormatSummaryOneLine(runner.Stats{
			FilesDiscovered: 3, FilesParsed: 3, TagsTotal: 12,
		})
		assert.Equal(t, "All files well-formed (3 files, 12 tags)\n", out)
	})

	t.Run("failures", func(t *testing.T) {
		out := styles.FormatSummaryOneLine(runner.Stats{
			FilesDiscovered: 3, FilesParsed: 2, FilesFailed: 1,
		})
		assert.Equal(t, "1 file failed to parse (3 checked)\n", out)
	})
}

func TestFormatSummary(t *testing.T) {
	styles := plainStyles()

	out := styles.FormatSummary(runner.Stats{
		FilesDiscovered: 2, FilesParsed: 1, FilesFailed: 1, TagsTotal: 4,
	})
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Files checked:  2")
	assert.Contains(t, out, "Failed:         1")
	assert.Contains(t, out, "Check failed")

	clean := styles.FormatSummary(runner.Stats{FilesDiscovered: 1, FilesParsed: 1})
	assert.Contains(t, clean, "Check passed")
}

func TestFormatFileHeader(t *testing.T) {
	styles := plainStyles()
	assert.Equal(t, "a.xml (3 tags)", styles.FormatFileHeader("a.xml", 3))
	assert.Equal(t, "a.xml", styles.FormatFileHeader("a.xml", 0))
}

// Kind strings surface in diagnostics, so pin them.
func TestErrorKindInDiagnostic(t *testing.T) {
	_, err := xmldom.Parse([]byte("text"))
	require.True(t, xmlparse.IsKind(err, xmlparse.ErrExpectedTag))

	out := plainStyles().FormatParseError("t.xml", err, []byte("text"))
	assert.Contains(t, out, "(expected tag)")
}
