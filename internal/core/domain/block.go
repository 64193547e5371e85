package domain

// BlockKind identifies the type of a content block
type BlockKind string

const (
	// BlockSubHeader is a bold section sub-heading
	BlockSubHeader BlockKind = "subheader"

	// BlockBold is a standalone bold line
	BlockBold BlockKind = "bold"

	// BlockBullet is a bulleted list item
	BlockBullet BlockKind = "bullet"

	// BlockParagraph is a regular body paragraph
	BlockParagraph BlockKind = "paragraph"
)

// Span is a run of text with a single style. Lines with inline bold
// markers are split into multiple spans.
type Span struct {
	Text string
	Bold bool
}

// Block is one typed unit of parsed narrative text, ready for layout.
// Blocks are produced transiently per document generation and carry no
// identity beyond document scope.
type Block struct {
	Kind  BlockKind
	Spans []Span
}

// PlainBlock builds a block carrying a single unstyled span
func PlainBlock(kind BlockKind, text string) Block {
	return Block{Kind: kind, Spans: []Span{{Text: text}}}
}

// Text returns the block's content with all span styling flattened out
func (b Block) Text() string {
	var out string
	for _, s := range b.Spans {
		out += s.Text
	}
	return out
}
