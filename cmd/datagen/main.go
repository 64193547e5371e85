// Command datagen writes synthetic properties.json and contacts.json
// datasets. Contacts are derived from an "inspiration" property so that
// preference ranges stay realistic relative to the listing pool.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/dar-ai/darai-docs/internal/core/domain"
)

// zone is a geographic hotspot; the multiplier scales the archetype
// base price for that area
type zone struct {
	name       string
	lat, lon   float64
	multiplier float64
}

// archetype holds per-type pricing and sizing ranges
type archetype struct {
	name      string
	basePrice float64
	minArea   int
	maxArea   int
}

var zones = []zone{
	{"Hydra (High-End)", 36.75, 3.04, 1.8},
	{"Algiers-Center (Urban)", 36.77, 3.06, 1.5},
	{"Oran (Coastal City)", 35.69, -0.63, 1.1},
	{"Constantine (Historic)", 36.36, 6.61, 1.0},
	{"Bab Ezzouar (Business)", 36.72, 3.18, 1.3},
}

var archetypes = []archetype{
	{"apartment", 12_000_000, 60, 150},
	{"villa", 45_000_000, 200, 600},
	{"office", 18_000_000, 50, 350},
	{"land", 25_000_000, 300, 1000},
}

var streets = []string{
	"Rue Didouche Mourad",
	"Boulevard Zighoud Youcef",
	"Rue Larbi Ben M'hidi",
	"Avenue de l'ALN",
	"Rue Hassiba Ben Bouali",
	"Boulevard Colonel Amirouche",
	"Rue Abane Ramdane",
	"Chemin des Crêtes",
	"Rue des Frères Bouadou",
	"Avenue Souidani Boudjemaa",
}

var firstNames = []string{
	"Amina", "Yacine", "Lina", "Karim", "Sofia", "Mehdi", "Nour",
	"Rachid", "Salima", "Omar", "Imane", "Farid", "Leila", "Sami",
}

var lastNames = []string{
	"Benali", "Haddad", "Cherif", "Bouazza", "Mansouri", "Zeroual",
	"Belkacem", "Hamidi", "Saadi", "Merabet", "Taleb", "Bouchareb",
}

func main() {
	numProperties := flag.Int("properties", 1000, "number of properties to generate")
	numContacts := flag.Int("contacts", 10000, "number of contacts to generate")
	outDir := flag.String("out", "data", "output directory")
	seed := flag.Int64("seed", 0, "random seed (0 uses a random seed)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	if *seed == 0 {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	properties := generateProperties(rng, *numProperties)
	if err := writeJSON(filepath.Join(*outDir, "properties.json"), properties); err != nil {
		log.Fatalf("Failed to write properties: %v", err)
	}
	log.Printf("Wrote %d properties to %s", len(properties), filepath.Join(*outDir, "properties.json"))

	contacts := generateContacts(rng, *numContacts, properties)
	if err := writeJSON(filepath.Join(*outDir, "contacts.json"), contacts); err != nil {
		log.Fatalf("Failed to write contacts: %v", err)
	}
	log.Printf("Wrote %d contacts to %s", len(contacts), filepath.Join(*outDir, "contacts.json"))
}

func generateProperties(rng *rand.Rand, n int) []domain.Property {
	properties := make([]domain.Property, 0, n)
	for i := 1; i <= n; i++ {
		z := zones[rng.Intn(len(zones))]
		a := archetypes[rng.Intn(len(archetypes))]

		// Lognormal skew keeps most prices mid-range with a long
		// right tail, rounded to the nearest 10,000
		price := roundTo(a.basePrice*z.multiplier*math.Exp(rng.NormFloat64()*0.25), 10_000)

		area := a.minArea + rng.Intn(a.maxArea-a.minArea+1)
		rooms := 0
		if a.name != "land" {
			rooms = max(1, area/(35+rng.Intn(16)))
		}

		properties = append(properties, domain.Property{
			ID:      i,
			Address: fmt.Sprintf("%d %s, %s", 1+rng.Intn(120), streets[rng.Intn(len(streets))], zoneShortName(z)),
			Location: domain.Location{
				Lat: roundCoord(z.lat + rng.NormFloat64()*0.02),
				Lon: roundCoord(z.lon + rng.NormFloat64()*0.02),
			},
			Price:         price,
			AreaSqm:       area,
			PropertyType:  a.name,
			NumberOfRooms: rooms,
		})
	}
	return properties
}

func generateContacts(rng *rand.Rand, n int, properties []domain.Property) []domain.Contact {
	contacts := make([]domain.Contact, 0, n)
	for i := 1; i <= n; i++ {
		inspiration := properties[rng.Intn(len(properties))]

		preferred := []domain.PreferredLocation{preferredNear(rng, inspiration)}
		// 30% chance of a second, unrelated preferred location
		if rng.Float64() < 0.3 {
			preferred = append(preferred, preferredNear(rng, properties[rng.Intn(len(properties))]))
		}

		types := []string{inspiration.PropertyType}
		// 25% chance of a second property type of interest
		if rng.Float64() < 0.25 {
			other := archetypes[rng.Intn(len(archetypes))].name
			if other != types[0] {
				types = append(types, other)
			}
		}

		contacts = append(contacts, domain.Contact{
			ID:                 i,
			Name:               firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
			PreferredLocations: preferred,
			MinBudget:          roundTo(inspiration.Price*uniform(rng, 0.75, 0.98), 10_000),
			MaxBudget:          roundTo(inspiration.Price*uniform(rng, 1.02, 1.40), 10_000),
			MinAreaSqm:         int(float64(inspiration.AreaSqm) * uniform(rng, 0.8, 1.0)),
			MaxAreaSqm:         int(float64(inspiration.AreaSqm) * uniform(rng, 1.0, 1.5)),
			PropertyTypes:      types,
			MinRooms:           max(0, inspiration.NumberOfRooms-(1+rng.Intn(2))),
		})
	}
	return contacts
}

func preferredNear(rng *rand.Rand, p domain.Property) domain.PreferredLocation {
	area := p.Address
	if idx := strings.LastIndex(p.Address, ","); idx >= 0 {
		area = strings.TrimSpace(p.Address[idx+1:])
	}
	return domain.PreferredLocation{
		Name: "Around " + area,
		Location: domain.Location{
			Lat: roundCoord(p.Location.Lat + rng.NormFloat64()*0.01),
			Lon: roundCoord(p.Location.Lon + rng.NormFloat64()*0.01),
		},
	}
}

// zoneShortName drops the parenthesised descriptor, keeping the
// district name used in addresses
func zoneShortName(z zone) string {
	name, _, _ := strings.Cut(z.name, " (")
	return name
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func roundTo(v, step float64) float64 {
	return math.Round(v/step) * step
}

func roundCoord(v float64) float64 {
	return math.Round(v*1e5) / 1e5
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
