package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/dar-ai/darai-docs/internal/core/domain"
	"github.com/dar-ai/darai-docs/internal/core/ports/driven"
	"github.com/dar-ai/darai-docs/internal/core/ports/driving"
)

const (
	comparisonSystemPrompt = "You are a professional real estate agent with expertise in " +
		"property analysis and client advisory."

	recommendationSystemPrompt = "You are a professional real estate agent with expertise in " +
		"matching client preferences to suitable properties. You provide data-driven, " +
		"personalized recommendations."
)

// Ensure narrativeService implements NarrativeService
var _ driving.NarrativeService = (*narrativeService)(nil)

// narrativeService produces advisory text by delegating to an external
// text completer, with deterministic local fallbacks. The completer may
// be nil (no credentials configured); every call then falls back.
type narrativeService struct {
	completer driven.TextCompleter
	logger    *slog.Logger
}

// NewNarrativeService creates a new NarrativeService
func NewNarrativeService(completer driven.TextCompleter, logger *slog.Logger) driving.NarrativeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &narrativeService{
		completer: completer,
		logger:    logger,
	}
}

// SummarizeComparison produces a structured comparison of two listings
func (s *narrativeService) SummarizeComparison(ctx context.Context, a, b *domain.Property) domain.Narrative {
	text, err := s.complete(ctx, comparisonSystemPrompt, comparisonPrompt(a, b))
	if err != nil {
		s.logger.Warn("comparison summary failed, using fallback",
			"property_1", a.ID, "property_2", b.ID, "error", err)
		return domain.Narrative{Text: comparisonFallback(a, b), Source: domain.NarrativeFallback}
	}
	return domain.Narrative{Text: text, Source: domain.NarrativeGenerated}
}

// RecommendProperties produces a preference-matched recommendation
func (s *narrativeService) RecommendProperties(ctx context.Context, properties []*domain.Property, contact *domain.Contact) domain.Narrative {
	text, err := s.complete(ctx, recommendationSystemPrompt, recommendationPrompt(properties, contact))
	if err != nil {
		s.logger.Warn("personalized recommendation failed, using fallback",
			"contact", contact.ID, "error", err)
		return domain.Narrative{Text: recommendationFallback(properties, contact), Source: domain.NarrativeFallback}
	}
	return domain.Narrative{Text: text, Source: domain.NarrativeGenerated}
}

// Ping verifies the narrative provider is reachable
func (s *narrativeService) Ping(ctx context.Context) error {
	if s.completer == nil {
		return domain.ErrServiceUnavailable
	}
	return s.completer.Ping(ctx)
}

// complete makes a single attempt against the completer, no retries.
// An empty result counts as a failure so callers never format nothing.
func (s *narrativeService) complete(ctx context.Context, system, prompt string) (string, error) {
	if s.completer == nil {
		return "", domain.ErrServiceUnavailable
	}
	text, err := s.completer.Complete(ctx, system, prompt)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("completer returned empty text")
	}
	return text, nil
}

func describeProperty(label string, p *domain.Property) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (ID: %d):\n", label, p.ID)
	fmt.Fprintf(&sb, "- Address: %s\n", p.Address)
	fmt.Fprintf(&sb, "- Price: %s\n", domain.FormatPriceDZD(p.Price))
	fmt.Fprintf(&sb, "- Area: %s\n", domain.FormatArea(p.AreaSqm))
	fmt.Fprintf(&sb, "- Type: %s\n", p.PropertyType)
	fmt.Fprintf(&sb, "- Rooms: %d\n", p.NumberOfRooms)
	fmt.Fprintf(&sb, "- Description: %s\n", p.DisplayDescription())
	return sb.String()
}

func comparisonPrompt(a, b *domain.Property) string {
	var sb strings.Builder
	sb.WriteString("You are a professional real estate agent helping clients compare properties.\n")
	sb.WriteString("Analyze these two properties and provide a comprehensive comparison summary.\n\n")
	sb.WriteString(describeProperty("Property 1", a))
	sb.WriteString("\n")
	sb.WriteString(describeProperty("Property 2", b))
	sb.WriteString("\nPlease provide:\n")
	sb.WriteString("1. A brief overview highlighting the key differences\n")
	sb.WriteString("2. Value analysis (price per square meter comparison)\n")
	sb.WriteString("3. Pros and cons of each property\n")
	sb.WriteString("4. A recommendation based on different buyer profiles (e.g., families, investors, first-time buyers)\n\n")
	sb.WriteString("Keep the summary professional, concise, and helpful for decision-making. Limit to 300-400 words.\n")
	return sb.String()
}

func recommendationPrompt(properties []*domain.Property, contact *domain.Contact) string {
	var sb strings.Builder
	sb.WriteString("You are a professional real estate agent helping a client choose between multiple properties.\n")
	sb.WriteString("Analyze these properties against the client's specific preferences and provide a personalized recommendation.\n\n")

	locations := make([]string, len(contact.PreferredLocations))
	for i, loc := range contact.PreferredLocations {
		locations[i] = fmt.Sprintf("%s (%g, %g)", loc.Name, loc.Lat, loc.Lon)
	}

	sb.WriteString("CLIENT PROFILE:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", contact.Name)
	fmt.Fprintf(&sb, "- Budget Range: %s - %s\n",
		domain.FormatPrice(contact.MinBudget), domain.FormatPriceDZD(contact.MaxBudget))
	fmt.Fprintf(&sb, "- Preferred Area: %d - %s\n", contact.MinAreaSqm, domain.FormatArea(contact.MaxAreaSqm))
	fmt.Fprintf(&sb, "- Minimum Rooms: %d\n", contact.MinRooms)
	fmt.Fprintf(&sb, "- Preferred Property Types: %s\n", strings.Join(contact.PropertyTypes, ", "))
	fmt.Fprintf(&sb, "- Preferred Locations: %s\n", strings.Join(locations, ", "))

	sb.WriteString("\nPROPERTIES TO COMPARE:\n")
	for i, p := range properties {
		sb.WriteString(describeProperty(fmt.Sprintf("Property %d", i+1), p))
		sb.WriteString("\n")
	}

	sb.WriteString("Please provide:\n")
	sb.WriteString("1. **Preference Match Analysis**: How well each property matches the client's stated preferences (budget, area, rooms, type, location)\n")
	sb.WriteString("2. **Ranking & Recommendation**: Rank the properties from best to worst match with clear reasoning\n")
	sb.WriteString("3. **Pros and Cons**: For each property, highlight what the client would love and what might be concerns\n")
	sb.WriteString("4. **Final Recommendation**: Your top recommendation with specific reasons why it's the best fit for this client\n")
	sb.WriteString("5. **Alternative Considerations**: If the top choice has limitations, suggest what the client should consider\n\n")
	sb.WriteString("Keep the analysis professional, data-driven, and focused on the client's specific needs. Limit to 400-500 words.\n")
	return sb.String()
}

// comparisonFallback is the deterministic substitute used when the
// provider is unavailable: price/area deltas plus unit prices.
func comparisonFallback(a, b *domain.Property) string {
	priceDiff := math.Abs(a.Price - b.Price)
	areaDiff := int(math.Abs(float64(a.AreaSqm - b.AreaSqm)))

	var sb strings.Builder
	sb.WriteString("**Comparison Summary**\n\n")
	fmt.Fprintf(&sb, "Property #%d vs Property #%d:\n\n", a.ID, b.ID)
	fmt.Fprintf(&sb, "**Price Difference:** %s\n", domain.FormatPriceDZD(priceDiff))
	fmt.Fprintf(&sb, "**Area Difference:** %s\n\n", domain.FormatArea(areaDiff))
	for _, p := range []*domain.Property{a, b} {
		unit, err := p.PricePerSqm()
		if err != nil {
			continue
		}
		fmt.Fprintf(&sb, "Property #%d offers %s at %s DZD/m².\n",
			p.ID, domain.FormatArea(p.AreaSqm), domain.FormatPrice(unit))
	}
	sb.WriteString("\nBoth properties are located in different areas and offer unique advantages. ")
	sb.WriteString("Consider your budget, space requirements, and location preferences when making your decision.\n\n")
	sb.WriteString("*Note: AI summary temporarily unavailable. Please consult with your agent for detailed analysis.*")
	return sb.String()
}

// recommendationFallback emits per-property match flags against the
// contact's preferences. Each column is driven by its own predicate.
func recommendationFallback(properties []*domain.Property, contact *domain.Contact) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Personalized Property Recommendation for %s**\n\n", contact.Name)
	sb.WriteString("**Budget Analysis:**\n")
	for i, p := range properties {
		fmt.Fprintf(&sb, "\nProperty %d: Budget %s | Area %s | Rooms %s | Type %s\n", i+1,
			matchMark(contact.MatchesBudget(*p)),
			matchMark(contact.MatchesArea(*p)),
			matchMark(contact.MatchesRooms(*p)),
			matchMark(contact.MatchesType(*p)))
		fmt.Fprintf(&sb, "- Price: %s (Budget: %s - %s)\n",
			domain.FormatPriceDZD(p.Price),
			domain.FormatPrice(contact.MinBudget), domain.FormatPriceDZD(contact.MaxBudget))
		fmt.Fprintf(&sb, "- Area: %s (Preferred: %d - %s)\n",
			domain.FormatArea(p.AreaSqm), contact.MinAreaSqm, domain.FormatArea(contact.MaxAreaSqm))
	}
	sb.WriteString("\n*Note: AI analysis temporarily unavailable. Please consult with your agent for detailed personalized recommendations.*")
	return sb.String()
}

func matchMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
