package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var headingColor = color.New(color.FgCyan, color.Bold)

// Builder helps construct a block of console text.
type Builder struct {
	title string
	lines []string
}

// NewBuilder creates a new text builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithTitle sets the heading printed above the lines.
func (b *Builder) WithTitle(title string) *Builder {
	b.title = title
	return b
}

// WithLine appends one formatted line.
func (b *Builder) WithLine(format string, args ...any) *Builder {
	b.lines = append(b.lines, fmt.Sprintf(format, args...))
	return b
}

// WithNumberedOptions appends "1. label" style lines, in order.
func (b *Builder) WithNumberedOptions(choices []string, labels map[string]string) *Builder {
	for _, choice := range choices {
		b.lines = append(b.lines, fmt.Sprintf("%s. %s", choice, labels[choice]))
	}
	return b
}

// Build returns the final text, ending with a newline.
func (b *Builder) Build() string {
	var sb strings.Builder
	if b.title != "" {
		sb.WriteString("\n")
		sb.WriteString(headingColor.Sprint(b.title))
		sb.WriteString("\n")
	}
	for _, line := range b.lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
