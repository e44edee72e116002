package documents

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New()

// RenderChangeNote renders a Markdown change note to HTML. Raw HTML in the
// note is not passed through.
func RenderChangeNote(note string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(note), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ChangeNoteSummary returns the plain text of the first block of a change
// note, for one-line listings.
func ChangeNoteSummary(note string) string {
	source := []byte(note)
	doc := markdown.Parser().Parse(text.NewReader(source))

	first := doc.FirstChild()
	if first == nil {
		return ""
	}
	var buf bytes.Buffer
	_ = ast.Walk(first, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.CodeSpan:
			for c := t.FirstChild(); c != nil; c = c.NextSibling() {
				if s, ok := c.(*ast.Text); ok {
					buf.Write(s.Segment.Value(source))
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}
