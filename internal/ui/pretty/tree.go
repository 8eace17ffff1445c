package pretty

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/yaklabco/goxmldom/pkg/xmldom"
)

const (
	treeDefaultWidth = 80
	treeMinWidth     = 40
)

// TerminalWidth returns the width of the terminal behind writer, or the
// default when writer is not a terminal.
func TerminalWidth(writer any) int {
	f, ok := writer.(*os.File)
	if !ok {
		return treeDefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < treeMinWidth {
		return treeDefaultWidth
	}
	return width
}

// FormatTree renders an entity tree with branch glyphs, one entity per
// line. Attributes render inline on their owning tag; text values render
// quoted after the tag name. Lines are truncated to width.
func (s *Styles) FormatTree(root *xmldom.Entity, width int) string {
	if root == nil {
		return ""
	}
	if width < treeMinWidth {
		width = treeDefaultWidth
	}

	var builder strings.Builder
	builder.WriteString(s.formatEntityLine(root, width))
	builder.WriteString("\n")
	s.formatChildren(&builder, root, "", width)
	return builder.String()
}

func (s *Styles) formatChildren(builder *strings.Builder, entity *xmldom.Entity, prefix string, width int) {
	children := renderableChildren(entity)
	for i, child := range children {
		last := i == len(children)-1

		branch, childPrefix := "├─ ", prefix+"│  "
		if last {
			branch, childPrefix = "└─ ", prefix+"   "
		}

		builder.WriteString(prefix)
		builder.WriteString(s.TreeBranch.Render(branch))
		builder.WriteString(s.formatEntityLine(child, width-len(prefix)-3))
		builder.WriteString("\n")

		s.formatChildren(builder, child, childPrefix, width)
	}
}

// renderableChildren returns the children that get their own tree line.
// Attributes are folded into the owning tag's line instead.
func renderableChildren(entity *xmldom.Entity) []*xmldom.Entity {
	var out []*xmldom.Entity
	for _, child := range entity.Children() {
		if child.Kind() != xmldom.KindAttribute {
			out = append(out, child)
		}
	}
	return out
}

func (s *Styles) formatEntityLine(entity *xmldom.Entity, width int) string {
	var line string
	switch entity.Kind() {
	case xmldom.KindDocument:
		line = s.Dim.Render("document")
	case xmldom.KindTag:
		line = s.TagName.Render(entity.Name())
		for _, child := range entity.Children() {
			if child.Kind() != xmldom.KindAttribute {
				continue
			}
			line += " " + s.AttrName.Render(child.Name()) + s.Dim.Render("=") +
				s.AttrValue.Render(`"`+child.Value()+`"`)
		}
		if text := strings.TrimSpace(entity.Value()); text != "" {
			line += " " + s.TextValue.Render(fmt.Sprintf("%q", truncate(text, width/2)))
		}
	case xmldom.KindComment:
		line = s.CommentText.Render("<!-- " + truncate(strings.TrimSpace(entity.Value()), width/2) + " -->")
	case xmldom.KindAttribute:
		line = s.AttrName.Render(entity.Name()) + s.Dim.Render("=") +
			s.AttrValue.Render(`"`+entity.Value()+`"`)
	}
	return line
}

// truncate shortens s to at most max runes; cutting on a byte boundary
// would split multi-byte characters.
func truncate(s string, max int) string {
	if max < 8 {
		max = 8
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max-3]) + "..."
}
