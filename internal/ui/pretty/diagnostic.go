package pretty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/goxmldom/pkg/xmlparse"
)

// FormatParseError formats a single file failure for terminal output.
// Parse errors render as location, message, and kind; other errors (read
// failures, permission problems) render as path and message.
func (s *Styles) FormatParseError(path string, err error, source []byte) string {
	var parseErr *xmlparse.ParseError
	if !errors.As(err, &parseErr) {
		return fmt.Sprintf("  %s  %s  %s\n",
			s.FilePath.Render(path),
			s.Error.Render("error"),
			s.Message.Render(err.Error()),
		)
	}

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(path),
		parseErr.Line,
		parseErr.Column,
	)

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.Error.Render("error"),
		s.Message.Render(parseErrorMessage(parseErr)),
		s.ErrorKind.Render("("+parseErr.Kind.String()+")"),
	))

	if line, ok := sourceLine(source, parseErr.Line); ok {
		builder.WriteString(s.FormatSourceContext(expandTabs(line), displayColumn(line, parseErr.Column)))
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret marker under
// the zero-based column.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with diagnostic output
	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column >= 0 && column <= len(line) {
		padding := indent + strings.Repeat(" ", column)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// parseErrorMessage produces the human-readable part of a parse error,
// without the location prefix the main line already carries.
func parseErrorMessage(parseErr *xmlparse.ParseError) string {
	switch parseErr.Kind {
	case xmlparse.ErrUnexpectedCharacter:
		return fmt.Sprintf("expected %q, found %q", parseErr.Expected, parseErr.Found)
	case xmlparse.ErrClosingTagMismatch:
		return fmt.Sprintf("expected </%s>, found </%s>", parseErr.Expected, parseErr.Found)
	default:
		if parseErr.Msg != "" {
			return parseErr.Msg
		}
		return parseErr.Kind.String()
	}
}

// tabWidth is the number of spaces a tab expands to in rendered source
// context.
const tabWidth = 4

// expandTabs renders tabs as spaces so the caret line, which has no tabs,
// aligns with the source line regardless of terminal tab stops.
func expandTabs(line string) string {
	return strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
}

// displayColumn converts a byte offset in line to a caret column in the
// tab-expanded rendering. Runes count as one column each.
func displayColumn(line string, byteCol int) int {
	col := 0
	for i, r := range line {
		if i >= byteCol {
			break
		}
		if r == '\t' {
			col += tabWidth
		} else {
			col++
		}
	}
	return col
}

// sourceLine extracts the 1-based line from source.
func sourceLine(source []byte, line int) (string, bool) {
	if line < 1 || len(source) == 0 {
		return "", false
	}
	lines := strings.Split(string(source), "\n")
	if line > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[line-1], "\r"), true
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, tags int) string {
	header := s.FilePath.Render(path)
	if tags > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d tags)", tags))
	}
	return header
}
