// Package pdf renders assembled documents into paginated PDF streams.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/dar-ai/darai-docs/internal/core/domain"
	"github.com/dar-ai/darai-docs/internal/core/ports/driven"
)

// Ensure Renderer implements DocumentRenderer
var _ driven.DocumentRenderer = (*Renderer)(nil)

// brand palette shared by all document kinds
var (
	brandColor = rgb{0x00, 0xAE, 0xEF}
	darkText   = rgb{0x2C, 0x3E, 0x50}
	lightText  = rgb{0xFF, 0xFF, 0xFF}
	gridColor  = rgb{0xBD, 0xC3, 0xC7}
	bodyFill   = rgb{0xF5, 0xF5, 0xF5}
	totalFill  = rgb{0xD3, 0xD3, 0xD3}
)

type rgb struct{ r, g, b int }

const (
	pageMargin = 72 // 1 inch, letter layout
	bodySize   = 10
	lineHeight = 13
	cellPad    = 4
)

// Renderer draws documents on US Letter pages with fpdf's automatic
// page breaking.
type Renderer struct{}

// NewRenderer creates a new PDF renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws the document's elements in order and returns the PDF
// bytes. The element variant set is handled exhaustively; an unknown
// kind is a programming error reported as an error return.
func (r *Renderer) Render(doc *domain.Document) ([]byte, error) {
	p := fpdf.New("P", "pt", "Letter", "")
	p.SetMargins(pageMargin, pageMargin, pageMargin)
	p.SetAutoPageBreak(true, pageMargin)
	p.AddPage()
	// core fonts are cp1252; translate glyphs like the bullet and m²
	tr := p.UnicodeTranslatorFromDescriptor("")

	for _, el := range doc.Elements {
		switch el.Kind {
		case domain.ElementTitle:
			r.title(p, tr, el.Text)
		case domain.ElementSectionHeader:
			r.sectionHeader(p, tr, el.Text)
		case domain.ElementLetterhead:
			r.letterhead(p, tr, el)
		case domain.ElementTable:
			r.table(p, tr, el.Table)
		case domain.ElementBlock:
			r.block(p, tr, el.Block)
		case domain.ElementFooter:
			r.footer(p, tr, el.Text)
		default:
			return nil, fmt.Errorf("pdf: unknown element kind %q", el.Kind)
		}
		if p.Err() {
			break
		}
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func setText(p *fpdf.Fpdf, c rgb) { p.SetTextColor(c.r, c.g, c.b) }

func (r *Renderer) title(p *fpdf.Fpdf, tr func(string) string, text string) {
	p.SetFont("Helvetica", "B", 18)
	setText(p, darkText)
	p.MultiCell(0, 22, tr(text), "", "L", false)
	p.Ln(12)
}

func (r *Renderer) sectionHeader(p *fpdf.Fpdf, tr func(string) string, text string) {
	p.Ln(10)
	p.SetFont("Helvetica", "B", 14)
	setText(p, darkText)
	p.MultiCell(0, 18, tr(text), "", "L", false)
	p.Ln(4)
}

func (r *Renderer) letterhead(p *fpdf.Fpdf, tr func(string) string, el domain.Element) {
	pageW, _ := p.GetPageSize()
	half := (pageW - 2*pageMargin) / 2

	y := p.GetY()
	p.SetFont("Helvetica", "B", 12)
	setText(p, darkText)
	p.CellFormat(half, 16, tr(el.Brand), "0", 2, "L", false, 0, "")
	p.SetFont("Helvetica", "", bodySize)
	p.CellFormat(half, lineHeight, tr(el.Tagline), "0", 0, "L", false, 0, "")

	p.SetXY(pageMargin+half, y)
	p.SetFont("Helvetica", "B", 18)
	p.CellFormat(half, 22, tr(el.Text), "0", 0, "R", false, 0, "")
	p.SetXY(pageMargin, y+40)
}

func (r *Renderer) footer(p *fpdf.Fpdf, tr func(string) string, text string) {
	p.Ln(24)
	p.SetFont("Helvetica", "", 8)
	setText(p, darkText)
	p.MultiCell(0, 11, tr(text), "", "L", false)
}

// block draws one parsed content block. Inline bold runs within bullets
// and paragraphs switch fonts span by span; fpdf's Write wraps them at
// the right margin.
func (r *Renderer) block(p *fpdf.Fpdf, tr func(string) string, b domain.Block) {
	setText(p, darkText)
	switch b.Kind {
	case domain.BlockSubHeader:
		p.SetFont("Helvetica", "B", 12)
		p.MultiCell(0, 16, tr(b.Text()), "", "L", false)
		p.Ln(5)
	case domain.BlockBold:
		p.SetFont("Helvetica", "B", bodySize)
		p.MultiCell(0, lineHeight, tr(b.Text()), "", "L", false)
		p.Ln(4)
	case domain.BlockBullet:
		p.SetLeftMargin(pageMargin + 14)
		p.SetX(pageMargin + 14)
		r.spans(p, tr, b.Spans)
		p.SetLeftMargin(pageMargin)
		p.Ln(3)
	default: // BlockParagraph
		r.spans(p, tr, b.Spans)
		p.Ln(4)
	}
}

func (r *Renderer) spans(p *fpdf.Fpdf, tr func(string) string, spans []domain.Span) {
	for _, s := range spans {
		style := ""
		if s.Bold {
			style = "B"
		}
		p.SetFont("Helvetica", style, bodySize)
		p.Write(lineHeight, tr(s.Text))
	}
	p.Ln(lineHeight)
}

func (r *Renderer) table(p *fpdf.Fpdf, tr func(string) string, t *domain.Table) {
	if t == nil {
		return
	}
	widths := r.columnWidths(p, t)

	p.SetDrawColor(gridColor.r, gridColor.g, gridColor.b)
	if len(t.Header) > 0 {
		p.SetFont("Helvetica", "B", bodySize)
		p.SetFillColor(brandColor.r, brandColor.g, brandColor.b)
		setText(p, lightText)
		for i, h := range t.Header {
			p.CellFormat(widths[i], lineHeight+2*cellPad, tr(h), "1", 0, "L", true, 0, "")
		}
		p.Ln(-1)
	}

	for rowIdx, row := range t.Rows {
		fill := rgb{}
		hasFill := false
		switch t.Style {
		case domain.TableGrid:
			fill, hasFill = bodyFill, true
		case domain.TablePricing:
			if rowIdx == len(t.Rows)-1 {
				fill, hasFill = totalFill, true
			}
		}
		r.tableRow(p, tr, row, widths, t.Style, fill, hasFill)
	}
	p.Ln(10)
}

// tableRow measures the wrapped height of every cell first so all cells
// in the row share one height, then draws box and text per cell.
func (r *Renderer) tableRow(p *fpdf.Fpdf, tr func(string) string, row []domain.Cell, widths []float64, style domain.TableStyle, fill rgb, hasFill bool) {
	lines := make([][]string, len(row))
	rowHt := float64(lineHeight + 2*cellPad)
	for i, c := range row {
		r.cellFont(p, c)
		lines[i] = p.SplitText(tr(c.Text), widths[i]-2*cellPad)
		if h := float64(len(lines[i]))*lineHeight + 2*cellPad; h > rowHt {
			rowHt = h
		}
	}

	_, pageH := p.GetPageSize()
	if p.GetY()+rowHt > pageH-pageMargin {
		p.AddPage()
	}

	x0, y := p.GetXY()
	x := x0
	setText(p, darkText)
	for i, c := range row {
		boxStyle := ""
		if hasFill {
			p.SetFillColor(fill.r, fill.g, fill.b)
			boxStyle = "F"
		}
		if style != domain.TablePlain {
			boxStyle += "D"
		}
		if boxStyle != "" {
			p.Rect(x, y, widths[i], rowHt, boxStyle)
		}

		r.cellFont(p, c)
		p.SetXY(x+cellPad, y+cellPad)
		for _, ln := range lines[i] {
			p.CellFormat(widths[i]-2*cellPad, lineHeight, ln, "0", 2, "L", false, 0, "")
		}
		x += widths[i]
	}
	p.SetXY(x0, y+rowHt)
}

func (r *Renderer) cellFont(p *fpdf.Fpdf, c domain.Cell) {
	style := ""
	if c.Bold {
		style = "B"
	}
	p.SetFont("Helvetica", style, bodySize)
}

// columnWidths scales the table's relative widths to the printable
// width; tables without widths get equal columns.
func (r *Renderer) columnWidths(p *fpdf.Fpdf, t *domain.Table) []float64 {
	cols := len(t.Header)
	if cols == 0 && len(t.Rows) > 0 {
		cols = len(t.Rows[0])
	}
	pageW, _ := p.GetPageSize()
	printable := pageW - 2*pageMargin

	widths := make([]float64, cols)
	if len(t.Widths) == cols {
		var total float64
		for _, w := range t.Widths {
			total += w
		}
		for i, w := range t.Widths {
			widths[i] = printable * w / total
		}
		return widths
	}
	for i := range widths {
		widths[i] = printable / float64(cols)
	}
	return widths
}
