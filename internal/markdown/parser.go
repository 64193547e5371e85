// Package markdown converts the loosely markdown-flavored text produced
// by narrative generation into typed content blocks ready for layout.
package markdown

import (
	"regexp"
	"strings"

	"github.com/dar-ai/darai-docs/internal/core/domain"
)

var (
	numberedItem = regexp.MustCompile(`^\d+\.\s+`)
	boldSpan     = regexp.MustCompile(`\*\*(.*?)\*\*`)
)

// ParseBlocks splits narrative text into an ordered block sequence.
// Processing is strictly line-oriented: every line is classified on its
// own with no cross-line lookahead, and blank lines produce nothing.
// Block order preserves the line order of the source text.
func ParseBlocks(text string) []domain.Block {
	var blocks []domain.Block
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "###"):
			// header marker: strip every leading '#' and surrounding space
			blocks = append(blocks, domain.PlainBlock(domain.BlockSubHeader,
				strings.TrimSpace(strings.TrimLeft(line, "#"))))

		case strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && len(line) > 4:
			blocks = append(blocks, domain.PlainBlock(domain.BlockBold, line[2:len(line)-2]))

		case numberedItem.MatchString(line):
			blocks = append(blocks, bulletBlock(numberedItem.ReplaceAllString(line, "")))

		case strings.HasPrefix(line, "- "):
			blocks = append(blocks, bulletBlock(line[2:]))

		default:
			blocks = append(blocks, domain.Block{Kind: domain.BlockParagraph, Spans: inlineSpans(line)})
		}
	}
	return blocks
}

// bulletBlock prefixes the item text with a bullet glyph and converts
// any inline bold markers inside it.
func bulletBlock(text string) domain.Block {
	spans := append([]domain.Span{{Text: "• "}}, inlineSpans(text)...)
	return domain.Block{Kind: domain.BlockBullet, Spans: spans}
}

// inlineSpans splits a line into styled runs, turning each paired
// **marker** occurrence into a bold run. Unpaired or malformed markers
// pass through literally.
func inlineSpans(text string) []domain.Span {
	var spans []domain.Span
	rest := text
	for {
		loc := boldSpan.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		if pre := rest[:loc[0]]; pre != "" {
			spans = append(spans, domain.Span{Text: pre})
		}
		spans = append(spans, domain.Span{Text: rest[loc[2]:loc[3]], Bold: true})
		rest = rest[loc[1]:]
	}
	if rest != "" || len(spans) == 0 {
		spans = append(spans, domain.Span{Text: rest})
	}
	return spans
}
