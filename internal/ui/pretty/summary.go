package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/goxmldom/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "2 files failed to parse (7 checked)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesFailed == 0 {
		checked := fmt.Sprintf(" (%d %s, %d tags)", stats.FilesParsed, pluralFiles(stats.FilesParsed), stats.TagsTotal)
		return s.Success.Render("All files well-formed") + s.Dim.Render(checked) + "\n"
	}

	failed := fmt.Sprintf("%d %s failed to parse", stats.FilesFailed, pluralFiles(stats.FilesFailed))
	checked := fmt.Sprintf(" (%d checked)", stats.FilesDiscovered)
	return s.Failure.Render(failed) + s.Dim.Render(checked) + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Parsed:         " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesParsed)) + "\n")

	if stats.FilesFailed > 0 {
		builder.WriteString("  Failed:         " +
			s.Failure.Render(strconv.Itoa(stats.FilesFailed)) + "\n")
	}

	builder.WriteString("  Tags:           " +
		s.SummaryValue.Render(strconv.Itoa(stats.TagsTotal)) + "\n")

	builder.WriteString("\n")
	if stats.FilesFailed > 0 {
		builder.WriteString(s.Failure.Render("Check failed"))
	} else {
		builder.WriteString(s.Success.Render("Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}

func pluralFiles(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}
