package domain

// DocumentKind determines the fixed section sequence of a document
type DocumentKind string

const (
	DocComparison     DocumentKind = "comparison"
	DocQuote          DocumentKind = "quote"
	DocRecommendation DocumentKind = "recommendation"
)

// ElementKind identifies the type of a document element
type ElementKind string

const (
	// ElementTitle is the top-level document title
	ElementTitle ElementKind = "title"

	// ElementSectionHeader introduces a document section
	ElementSectionHeader ElementKind = "section_header"

	// ElementTable is a tabular section built from live records
	ElementTable ElementKind = "table"

	// ElementBlock is one parsed content block of narrative text
	ElementBlock ElementKind = "block"

	// ElementLetterhead is the brand/title band at the top of a quote
	ElementLetterhead ElementKind = "letterhead"

	// ElementFooter is the closing line at the bottom of a document
	ElementFooter ElementKind = "footer"
)

// TableStyle selects how a table is drawn
type TableStyle string

const (
	// TableGrid draws a full grid with a colored header row
	TableGrid TableStyle = "grid"

	// TablePlain draws rows without borders or fills
	TablePlain TableStyle = "plain"

	// TablePricing draws a grid with a highlighted total row
	TablePricing TableStyle = "pricing"
)

// Cell is one table cell
type Cell struct {
	Text string
	Bold bool
}

// Table is a tabular document section. Widths are relative column
// widths; when set, the slice length matches the column count.
type Table struct {
	Header []string
	Rows   [][]Cell
	Widths []float64
	Style  TableStyle
}

// Element is one unit of an assembled document. The Kind tag selects
// which of the payload fields is meaningful; the renderer handles the
// set exhaustively.
type Element struct {
	Kind ElementKind

	// Text carries the content for Title, SectionHeader and Footer
	Text string

	// Brand and Tagline fill the left side of a Letterhead; Text is
	// the right-aligned document title
	Brand   string
	Tagline string

	Block Block
	Table *Table
}

// Document is an assembled, not-yet-rendered document
type Document struct {
	Kind     DocumentKind
	Filename string
	Elements []Element
}

// RenderedDocument is the final binary output for one generation call
type RenderedDocument struct {
	Filename string
	Data     []byte
}
