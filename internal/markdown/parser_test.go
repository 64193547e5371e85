package markdown

import (
	"testing"

	"github.com/dar-ai/darai-docs/internal/core/domain"
)

func TestParseBlocks_SingleLineClassification(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind domain.BlockKind
		text string
	}{
		{"header marker", "### Header", domain.BlockSubHeader, "Header"},
		{"header marker extra hashes", "#### Deep Header", domain.BlockSubHeader, "Deep Header"},
		{"whole-line bold", "**Bold**", domain.BlockBold, "Bold"},
		{"numbered item", "1. Buy now", domain.BlockBullet, "• Buy now"},
		{"numbered item two digits", "12. Later", domain.BlockBullet, "• Later"},
		{"dashed item", "- Buy now", domain.BlockBullet, "• Buy now"},
		{"paragraph", "Just a sentence.", domain.BlockParagraph, "Just a sentence."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := ParseBlocks(tt.line)
			if len(blocks) != 1 {
				t.Fatalf("expected 1 block, got %d", len(blocks))
			}
			if blocks[0].Kind != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, blocks[0].Kind)
			}
			if got := blocks[0].Text(); got != tt.text {
				t.Errorf("expected text %q, got %q", tt.text, got)
			}
		})
	}
}

func TestParseBlocks_BlankLinesDropped(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\n", " \t \n  \n"} {
		if blocks := ParseBlocks(text); len(blocks) != 0 {
			t.Errorf("expected no blocks for %q, got %d", text, len(blocks))
		}
	}
}

func TestParseBlocks_InlineBoldSpans(t *testing.T) {
	blocks := ParseBlocks("Price is **high** today")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	b := blocks[0]
	if b.Kind != domain.BlockParagraph {
		t.Fatalf("expected paragraph, got %s", b.Kind)
	}
	want := []domain.Span{
		{Text: "Price is "},
		{Text: "high", Bold: true},
		{Text: " today"},
	}
	if len(b.Spans) != len(want) {
		t.Fatalf("expected %d spans, got %d: %+v", len(want), len(b.Spans), b.Spans)
	}
	for i, s := range want {
		if b.Spans[i] != s {
			t.Errorf("span %d: expected %+v, got %+v", i, s, b.Spans[i])
		}
	}
	if b.Text() != "Price is high today" {
		t.Errorf("marker characters leaked into text: %q", b.Text())
	}
}

func TestParseBlocks_InlineBoldInsideBullets(t *testing.T) {
	blocks := ParseBlocks("1. A **great** deal\n- Also **good**")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	for i, want := range []string{"• A great deal", "• Also good"} {
		if blocks[i].Kind != domain.BlockBullet {
			t.Errorf("block %d: expected bullet, got %s", i, blocks[i].Kind)
		}
		if got := blocks[i].Text(); got != want {
			t.Errorf("block %d: expected %q, got %q", i, want, got)
		}
		var sawBold bool
		for _, s := range blocks[i].Spans {
			if s.Bold {
				sawBold = true
			}
		}
		if !sawBold {
			t.Errorf("block %d: expected an inline bold span", i)
		}
	}
}

func TestParseBlocks_UnpairedMarkersPassThrough(t *testing.T) {
	blocks := ParseBlocks("A lone ** marker stays")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if got := blocks[0].Text(); got != "A lone ** marker stays" {
		t.Errorf("expected literal pass-through, got %q", got)
	}
	for _, s := range blocks[0].Spans {
		if s.Bold {
			t.Errorf("unpaired marker produced a bold span: %+v", s)
		}
	}
}

func TestParseBlocks_ShortBoldLineIsNotABoldBlock(t *testing.T) {
	// "****" is four marker characters with nothing between them
	blocks := ParseBlocks("****")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Kind == domain.BlockBold {
		t.Errorf("empty marker pair must not become a Bold block")
	}
}

func TestParseBlocks_PreservesLineOrder(t *testing.T) {
	text := "### Overview\n\nParagraph one.\n1. First\n2. Second\n**Verdict**\n"
	blocks := ParseBlocks(text)
	wantKinds := []domain.BlockKind{
		domain.BlockSubHeader,
		domain.BlockParagraph,
		domain.BlockBullet,
		domain.BlockBullet,
		domain.BlockBold,
	}
	if len(blocks) != len(wantKinds) {
		t.Fatalf("expected %d blocks, got %d", len(wantKinds), len(blocks))
	}
	for i, k := range wantKinds {
		if blocks[i].Kind != k {
			t.Errorf("block %d: expected %s, got %s", i, k, blocks[i].Kind)
		}
	}
}

func TestParseBlocks_HeaderTakesPriorityOverBold(t *testing.T) {
	// a header line wrapped in bold markers is still a header
	blocks := ParseBlocks("### **Emphasis**")
	if len(blocks) != 1 || blocks[0].Kind != domain.BlockSubHeader {
		t.Fatalf("expected a single SubHeader, got %+v", blocks)
	}
}
