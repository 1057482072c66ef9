package summary

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Format renders the executive summary and key points into the note markdown
func Format(abstract string, points []string) string {
	var b strings.Builder
	b.WriteString("### Executive Summary\n")
	b.WriteString(abstract)
	b.WriteString("\n\n### Key Concepts\n")
	for _, p := range points {
		b.WriteString("- ")
		b.WriteString(p)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderHTML converts summary markdown to HTML
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
