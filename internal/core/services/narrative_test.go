package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dar-ai/darai-docs/internal/core/domain"
	"github.com/dar-ai/darai-docs/internal/core/ports/driven/mocks"
)

// fixture listings used across fallback tests
var (
	fixtureApartment = &domain.Property{
		ID:            1,
		Address:       "12 Rue Didouche Mourad, Algiers-Center",
		Price:         15_000_000,
		AreaSqm:       100,
		PropertyType:  "apartment",
		NumberOfRooms: 3,
	}
	fixtureVilla = &domain.Property{
		ID:            2,
		Address:       "5 Chemin des Crêtes, Hydra",
		Price:         48_000_000,
		AreaSqm:       300,
		PropertyType:  "villa",
		NumberOfRooms: 7,
		Description:   "Quiet garden villa with sea view",
	}
)

func TestSummarizeComparison_UsesGeneratedText(t *testing.T) {
	completer := mocks.NewMockTextCompleter()
	completer.CompleteFn = func(ctx context.Context, system, prompt string) (string, error) {
		return "### Overview\nBoth are solid choices.", nil
	}
	svc := NewNarrativeService(completer, nil)

	n := svc.SummarizeComparison(context.Background(), fixtureApartment, fixtureVilla)
	if n.Source != domain.NarrativeGenerated {
		t.Fatalf("expected generated source, got %s", n.Source)
	}
	if !strings.Contains(n.Text, "Both are solid choices.") {
		t.Errorf("generated text lost: %q", n.Text)
	}
	if len(completer.Calls) != 1 {
		t.Fatalf("expected a single attempt, got %d", len(completer.Calls))
	}
	// the prompt embeds both properties' attributes
	for _, want := range []string{"12 Rue Didouche Mourad", "5 Chemin des Crêtes", "15,000,000 DZD", "300 m²"} {
		if !strings.Contains(completer.Calls[0], want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestSummarizeComparison_FallbackIsDeterministic(t *testing.T) {
	completer := mocks.NewMockTextCompleter() // fails every call
	svc := NewNarrativeService(completer, nil)

	n := svc.SummarizeComparison(context.Background(), fixtureApartment, fixtureVilla)
	if n.Source != domain.NarrativeFallback {
		t.Fatalf("expected fallback source, got %s", n.Source)
	}
	// |15,000,000 - 48,000,000| and |100 - 300|
	if !strings.Contains(n.Text, "33,000,000 DZD") {
		t.Errorf("fallback missing price difference: %q", n.Text)
	}
	if !strings.Contains(n.Text, "200 m²") {
		t.Errorf("fallback missing area difference: %q", n.Text)
	}
	// unit prices: 15,000,000/100 and 48,000,000/300
	if !strings.Contains(n.Text, "150,000 DZD/m²") {
		t.Errorf("fallback missing first unit price: %q", n.Text)
	}
	if !strings.Contains(n.Text, "160,000 DZD/m²") {
		t.Errorf("fallback missing second unit price: %q", n.Text)
	}

	again := svc.SummarizeComparison(context.Background(), fixtureApartment, fixtureVilla)
	if again.Text != n.Text {
		t.Errorf("fallback text is not deterministic")
	}
}

func TestSummarizeComparison_ZeroAreaSkipsUnitPrice(t *testing.T) {
	bad := &domain.Property{ID: 9, Address: "Unknown plot", Price: 1_000_000, AreaSqm: 0, PropertyType: "land"}
	svc := NewNarrativeService(mocks.NewMockTextCompleter(), nil)

	n := svc.SummarizeComparison(context.Background(), bad, fixtureVilla)
	if n.Source != domain.NarrativeFallback {
		t.Fatalf("expected fallback source, got %s", n.Source)
	}
	if strings.Contains(n.Text, "Property #9 offers") {
		t.Errorf("zero-area listing must not get a unit-price line: %q", n.Text)
	}
	if !strings.Contains(n.Text, "Property #2 offers 300 m²") {
		t.Errorf("valid listing's unit-price line missing: %q", n.Text)
	}
}

func TestSummarizeComparison_EmptyCompletionFallsBack(t *testing.T) {
	completer := mocks.NewMockTextCompleter()
	completer.CompleteFn = func(ctx context.Context, system, prompt string) (string, error) {
		return "   \n ", nil
	}
	svc := NewNarrativeService(completer, nil)

	n := svc.SummarizeComparison(context.Background(), fixtureApartment, fixtureVilla)
	if n.Source != domain.NarrativeFallback {
		t.Errorf("blank completion should fall back, got %s", n.Source)
	}
}

func TestRecommendProperties_FallbackMatchFlags(t *testing.T) {
	contact := &domain.Contact{
		ID:   7,
		Name: "Amina Benali",
		PreferredLocations: []domain.PreferredLocation{
			{Location: domain.Location{Lat: 36.75, Lon: 3.04}, Name: "Around Hydra"},
		},
		MinBudget:     10_000_000,
		MaxBudget:     20_000_000,
		MinAreaSqm:    80,
		MaxAreaSqm:    150,
		PropertyTypes: []string{"apartment"},
		MinRooms:      2,
	}
	svc := NewNarrativeService(mocks.NewMockTextCompleter(), nil)

	n := svc.RecommendProperties(context.Background(), []*domain.Property{fixtureApartment, fixtureVilla}, contact)
	if n.Source != domain.NarrativeFallback {
		t.Fatalf("expected fallback source, got %s", n.Source)
	}
	// apartment matches everything; villa matches nothing but rooms
	if !strings.Contains(n.Text, "Property 1: Budget ✓ | Area ✓ | Rooms ✓ | Type ✓") {
		t.Errorf("property 1 flags wrong: %q", n.Text)
	}
	if !strings.Contains(n.Text, "Property 2: Budget ✗ | Area ✗ | Rooms ✓ | Type ✗") {
		t.Errorf("property 2 flags wrong: %q", n.Text)
	}
	if !strings.Contains(n.Text, "Amina Benali") {
		t.Errorf("fallback must name the contact: %q", n.Text)
	}
}

// The original implementation drove the area column with the budget
// flag. This pins the corrected behavior: a listing inside budget but
// outside the area range shows Budget ✓ with Area ✗.
func TestRecommendationFallback_AreaUsesOwnPredicate(t *testing.T) {
	contact := &domain.Contact{
		ID:            8,
		Name:          "Karim Ziani",
		MinBudget:     40_000_000,
		MaxBudget:     50_000_000,
		MinAreaSqm:    80,
		MaxAreaSqm:    150,
		PropertyTypes: []string{"villa"},
		MinRooms:      2,
	}
	svc := NewNarrativeService(mocks.NewMockTextCompleter(), nil)

	n := svc.RecommendProperties(context.Background(), []*domain.Property{fixtureVilla, fixtureApartment}, contact)
	if !strings.Contains(n.Text, "Property 1: Budget ✓ | Area ✗ | Rooms ✓ | Type ✓") {
		t.Errorf("area flag must diverge from budget flag: %q", n.Text)
	}
}

func TestPing(t *testing.T) {
	completer := mocks.NewMockTextCompleter()
	svc := NewNarrativeService(completer, nil)
	if err := svc.Ping(context.Background()); err != nil {
		t.Errorf("unexpected ping error: %v", err)
	}

	completer.PingFn = func(ctx context.Context) error { return errors.New("down") }
	if err := svc.Ping(context.Background()); err == nil {
		t.Errorf("expected ping error")
	}

	// no completer configured at all
	svc = NewNarrativeService(nil, nil)
	if err := svc.Ping(context.Background()); !errors.Is(err, domain.ErrServiceUnavailable) {
		t.Errorf("expected ErrServiceUnavailable, got %v", err)
	}
}
