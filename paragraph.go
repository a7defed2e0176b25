package escp

import "strings"

// Paragraph renders word-wrapped text. Words longer than the region width
// are split mid-word; lines past the region's bottom are truncated.
type Paragraph struct {
	text  string
	style StyleFlags
}

var _ RegionWidget = (*Paragraph)(nil)

// NewParagraph creates a Paragraph with no styling.
func NewParagraph(text string) *Paragraph {
	return &Paragraph{text: text}
}

// WithStyle sets the paragraph's style.
func (p *Paragraph) WithStyle(style StyleFlags) *Paragraph {
	p.style = style
	return p
}

// Render wraps the text to the region width and writes the lines.
func (p *Paragraph) Render(b *PageBuilder, region Region) {
	lines := wrapText(p.text, region.Width())
	for i, line := range lines {
		if i >= region.Height() {
			break
		}
		b.WriteString(region.X(), region.Y()+i, line, p.style)
	}
}

// wrapText greedily wraps text at word boundaries to maxWidth columns.
// Words wider than maxWidth are split into maxWidth-sized chunks.
func wrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}

	var lines []string
	var current string

	for _, word := range strings.Fields(text) {
		if len(word) > maxWidth {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			for len(word) > maxWidth {
				lines = append(lines, word[:maxWidth])
				word = word[maxWidth:]
			}
			if word != "" {
				lines = append(lines, word)
			}
			continue
		}

		if current != "" && len(current)+1+len(word) > maxWidth {
			lines = append(lines, current)
			current = ""
		}
		if current != "" {
			current += " "
		}
		current += word
	}

	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
