package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dar-ai/darai-docs/internal/core/domain"
	"github.com/dar-ai/darai-docs/internal/core/ports/driven"
	"github.com/dar-ai/darai-docs/internal/core/ports/driving"
	"github.com/dar-ai/darai-docs/internal/markdown"
)

const (
	brandName    = "Dar.ai Real Estate"
	brandTagline = "Your Trusted Partner in Real Estate"

	// narrativeUnavailable replaces the analysis section when no usable
	// narrative text comes back
	narrativeUnavailable = "AI analysis temporarily unavailable. Please consult with " +
		"your agent for detailed analysis."

	quoteValidity = 30 * 24 * time.Hour
)

// Ensure documentService implements DocumentService
var _ driving.DocumentService = (*documentService)(nil)

// documentService assembles element sequences for the three document
// kinds and hands them to the renderer.
type documentService struct {
	narrative   driving.NarrativeService
	renderer    driven.DocumentRenderer
	logger      *slog.Logger
	quoteFooter bool
	now         func() time.Time
}

// DocumentOption customizes document assembly
type DocumentOption func(*documentService)

// WithQuoteFooter toggles the closing section of quote documents
func WithQuoteFooter(enabled bool) DocumentOption {
	return func(s *documentService) { s.quoteFooter = enabled }
}

// WithClock overrides the time source, used by tests for stable
// timestamps and quote validity dates
func WithClock(now func() time.Time) DocumentOption {
	return func(s *documentService) { s.now = now }
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	narrative driving.NarrativeService,
	renderer driven.DocumentRenderer,
	logger *slog.Logger,
	opts ...DocumentOption,
) driving.DocumentService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &documentService{
		narrative: narrative,
		renderer:  renderer,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Comparison renders a side-by-side comparison of two listings
func (s *documentService) Comparison(ctx context.Context, a, b *domain.Property) (*domain.RenderedDocument, error) {
	doc := &domain.Document{
		Kind:     domain.DocComparison,
		Filename: fmt.Sprintf("comparison_%d_vs_%d.pdf", a.ID, b.ID),
	}
	doc.Elements = append(doc.Elements,
		domain.Element{Kind: domain.ElementTitle, Text: "Property Comparison"},
		domain.Element{Kind: domain.ElementTable, Table: comparisonTable(a, b)},
		domain.Element{Kind: domain.ElementSectionHeader, Text: "AI Analysis & Recommendation"},
	)

	narrative := s.narrative.SummarizeComparison(ctx, a, b)
	if err := ctx.Err(); err != nil {
		// caller went away mid-generation; no partial document
		return nil, err
	}
	doc.Elements = append(doc.Elements, narrativeElements(narrative)...)
	doc.Elements = append(doc.Elements, s.footer())

	return s.render(ctx, doc)
}

// Quote renders a formal price quote for one listing and contact
func (s *documentService) Quote(ctx context.Context, property *domain.Property, contact *domain.Contact) (*domain.RenderedDocument, error) {
	issued := s.now()
	doc := &domain.Document{
		Kind:     domain.DocQuote,
		Filename: fmt.Sprintf("quote_%d_for_%d.pdf", property.ID, contact.ID),
	}
	doc.Elements = append(doc.Elements,
		domain.Element{Kind: domain.ElementLetterhead, Brand: brandName, Tagline: brandTagline, Text: "QUOTE"},
		domain.Element{Kind: domain.ElementTable, Table: quoteInfoTable(contact, issued)},
		domain.Element{Kind: domain.ElementSectionHeader, Text: "Property Details"},
		domain.Element{Kind: domain.ElementTable, Table: propertyDetailsTable(property)},
		domain.Element{Kind: domain.ElementSectionHeader, Text: "Pricing"},
		domain.Element{Kind: domain.ElementTable, Table: pricingTable(property)},
	)
	if s.quoteFooter {
		doc.Elements = append(doc.Elements,
			domain.Element{Kind: domain.ElementBlock, Block: domain.PlainBlock(domain.BlockSubHeader, "Thank you for your business!")},
			domain.Element{Kind: domain.ElementBlock, Block: domain.PlainBlock(domain.BlockParagraph,
				"If you have any questions concerning this quote, please contact us at Dar.ai.")},
			s.footer(),
		)
	}

	return s.render(ctx, doc)
}

// Recommendation renders a preference-matched recommendation document
func (s *documentService) Recommendation(ctx context.Context, properties []*domain.Property, contact *domain.Contact) (*domain.RenderedDocument, error) {
	if len(properties) < 2 || len(properties) > 3 {
		return nil, fmt.Errorf("%w: recommendation needs 2-3 properties, got %d",
			domain.ErrInvalidInput, len(properties))
	}

	ids := make([]string, len(properties))
	for i, p := range properties {
		ids[i] = strconv.Itoa(p.ID)
	}
	doc := &domain.Document{
		Kind: domain.DocRecommendation,
		Filename: fmt.Sprintf("recommendation_%s_%s.pdf",
			strings.ReplaceAll(contact.Name, " ", "_"), strings.Join(ids, "_")),
	}
	doc.Elements = append(doc.Elements,
		domain.Element{Kind: domain.ElementTitle, Text: fmt.Sprintf("Personalized Property Recommendation for %s", contact.Name)},
		domain.Element{Kind: domain.ElementSectionHeader, Text: "Client Profile & Preferences"},
		domain.Element{Kind: domain.ElementTable, Table: preferencesTable(contact)},
		domain.Element{Kind: domain.ElementSectionHeader, Text: "Properties Under Consideration"},
		domain.Element{Kind: domain.ElementTable, Table: matchOverviewTable(properties, contact)},
		domain.Element{Kind: domain.ElementBlock, Block: domain.PlainBlock(domain.BlockParagraph,
			"✓ = Matches preference | ✗ = Does not match preference")},
		domain.Element{Kind: domain.ElementSectionHeader, Text: "AI-Powered Personalized Analysis"},
	)

	narrative := s.narrative.RecommendProperties(ctx, properties, contact)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc.Elements = append(doc.Elements, narrativeElements(narrative)...)
	doc.Elements = append(doc.Elements, s.footer())

	return s.render(ctx, doc)
}

func (s *documentService) render(ctx context.Context, doc *domain.Document) (*domain.RenderedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.renderer.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("rendering %s document: %w", doc.Kind, err)
	}
	s.logger.Info("document rendered",
		"kind", doc.Kind, "filename", doc.Filename, "bytes", len(data))
	return &domain.RenderedDocument{Filename: doc.Filename, Data: data}, nil
}

func (s *documentService) footer() domain.Element {
	return domain.Element{
		Kind: domain.ElementFooter,
		Text: fmt.Sprintf("Generated on: %s by Dar.ai", s.now().Format("2006-01-02 15:04:05")),
	}
}

// narrativeElements parses narrative text into block elements. Text
// that parses to nothing degrades to a single static paragraph so the
// document always carries an analysis section.
func narrativeElements(n domain.Narrative) []domain.Element {
	blocks := markdown.ParseBlocks(n.Text)
	if len(blocks) == 0 {
		blocks = []domain.Block{domain.PlainBlock(domain.BlockParagraph, narrativeUnavailable)}
	}
	elements := make([]domain.Element, len(blocks))
	for i, b := range blocks {
		elements[i] = domain.Element{Kind: domain.ElementBlock, Block: b}
	}
	return elements
}

func comparisonTable(a, b *domain.Property) *domain.Table {
	row := func(feature, va, vb string) []domain.Cell {
		return []domain.Cell{{Text: feature, Bold: true}, {Text: va}, {Text: vb}}
	}
	return &domain.Table{
		Style:  domain.TableGrid,
		Header: []string{"Feature", fmt.Sprintf("Property #%d", a.ID), fmt.Sprintf("Property #%d", b.ID)},
		Widths: []float64{1.5, 3, 3},
		Rows: [][]domain.Cell{
			row("Address", a.Address, b.Address),
			row("Price", domain.FormatPriceDZD(a.Price), domain.FormatPriceDZD(b.Price)),
			row("Area (sqm)", domain.FormatArea(a.AreaSqm), domain.FormatArea(b.AreaSqm)),
			row("Rooms", strconv.Itoa(a.NumberOfRooms), strconv.Itoa(b.NumberOfRooms)),
			row("Type", domain.FormatPropertyType(a.PropertyType), domain.FormatPropertyType(b.PropertyType)),
			row("Description", a.DisplayDescription(), b.DisplayDescription()),
		},
	}
}

func quoteInfoTable(contact *domain.Contact, issued time.Time) *domain.Table {
	return &domain.Table{
		Style:  domain.TablePlain,
		Widths: []float64{1.5, 6},
		Rows: [][]domain.Cell{
			{{Text: "Quote For:", Bold: true}, {Text: contact.Name}},
			{{Text: "Date:", Bold: true}, {Text: issued.Format("2006-01-02")}},
			{{Text: "Valid Until:", Bold: true}, {Text: issued.Add(quoteValidity).Format("2006-01-02")}},
		},
	}
}

func propertyDetailsTable(p *domain.Property) *domain.Table {
	row := func(label, value string) []domain.Cell {
		return []domain.Cell{{Text: label, Bold: true}, {Text: value}}
	}
	return &domain.Table{
		Style:  domain.TableGrid,
		Header: []string{"Property Information", "Details"},
		Widths: []float64{2, 5.5},
		Rows: [][]domain.Cell{
			row("Address:", p.Address),
			row("Property Type:", domain.FormatPropertyType(p.PropertyType)),
			row("Area:", domain.FormatArea(p.AreaSqm)),
			row("Rooms:", strconv.Itoa(p.NumberOfRooms)),
			row("Description:", p.DisplayDescription()),
		},
	}
}

func pricingTable(p *domain.Property) *domain.Table {
	price := domain.FormatPrice(p.Price)
	return &domain.Table{
		Style:  domain.TablePricing,
		Header: []string{"Item Description", "Price (DZD)"},
		Widths: []float64{5.5, 2},
		Rows: [][]domain.Cell{
			{{Text: fmt.Sprintf("Real estate property located at: %s", p.Address)}, {Text: price}},
			{{Text: ""}, {Text: ""}},
			{{Text: "Total Amount", Bold: true}, {Text: price, Bold: true}},
		},
	}
}

func preferencesTable(c *domain.Contact) *domain.Table {
	return &domain.Table{
		Style:  domain.TableGrid,
		Header: []string{"Preference", "Details"},
		Widths: []float64{2, 5.5},
		Rows: [][]domain.Cell{
			{{Text: "Budget Range"}, {Text: fmt.Sprintf("%s - %s",
				domain.FormatPrice(c.MinBudget), domain.FormatPriceDZD(c.MaxBudget))}},
			{{Text: "Preferred Area"}, {Text: fmt.Sprintf("%d - %s", c.MinAreaSqm, domain.FormatArea(c.MaxAreaSqm))}},
			{{Text: "Minimum Rooms"}, {Text: strconv.Itoa(c.MinRooms)}},
			{{Text: "Property Types"}, {Text: strings.Join(c.PropertyTypes, ", ")}},
			{{Text: "Preferred Locations"}, {Text: strings.Join(c.PreferredLocationNames(), ", ")}},
		},
	}
}

// matchOverviewTable carries one row per listing with a match mark per
// preference column. Every column uses its own predicate.
func matchOverviewTable(properties []*domain.Property, c *domain.Contact) *domain.Table {
	t := &domain.Table{
		Style:  domain.TableGrid,
		Header: []string{"Property", "Address", "Price (DZD)", "Area (m²)", "Rooms", "Type"},
		Widths: []float64{1, 2.5, 1.5, 1, 0.8, 1.2},
	}
	for i, p := range properties {
		t.Rows = append(t.Rows, []domain.Cell{
			{Text: fmt.Sprintf("Property %d", i+1)},
			{Text: p.Address},
			{Text: domain.FormatPrice(p.Price) + " " + matchMark(c.MatchesBudget(*p))},
			{Text: strconv.Itoa(p.AreaSqm) + " " + matchMark(c.MatchesArea(*p))},
			{Text: strconv.Itoa(p.NumberOfRooms) + " " + matchMark(c.MatchesRooms(*p))},
			{Text: domain.FormatPropertyType(p.PropertyType) + " " + matchMark(c.MatchesType(*p))},
		})
	}
	return t
}
