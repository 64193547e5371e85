package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dar-ai/darai-docs/internal/core/domain"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPropertyStore_Load(t *testing.T) {
	path := writeFixture(t, "properties.json", `[
		{"id": 1, "address": "1 Rue A, Algiers", "location": {"lat": 36.7, "lon": 3.0},
		 "price": 12000000, "area_sqm": 85, "property_type": "apartment", "number_of_rooms": 3},
		{"id": 2, "address": "2 Rue B, Oran", "location": {"lat": 35.6, "lon": -0.6},
		 "price": 45000000, "area_sqm": 400, "property_type": "villa", "number_of_rooms": 8,
		 "description": "Large family villa"}
	]`)

	store := NewPropertyStore(path)
	require.Equal(t, 2, store.Count())

	p, err := store.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "1 Rue A, Algiers", p.Address)
	assert.Equal(t, 85, p.AreaSqm)
	assert.Equal(t, "apartment", p.PropertyType)
	assert.Empty(t, p.Description)

	p, err = store.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Large family villa", p.Description)

	list, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, 1, list[0].ID)
}

func TestPropertyStore_NotFoundIsStable(t *testing.T) {
	path := writeFixture(t, "properties.json", `[{"id": 1, "address": "x", "price": 1, "area_sqm": 1, "property_type": "land", "number_of_rooms": 0}]`)
	store := NewPropertyStore(path)

	for i := 0; i < 5; i++ {
		_, err := store.Get(context.Background(), 999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	}
	assert.Equal(t, 1, store.Count(), "lookups must not mutate the store")
}

func TestPropertyStore_ColdFailure(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		store := NewPropertyStore(filepath.Join(t.TempDir(), "nope.json"))
		assert.Equal(t, 0, store.Count())
		_, err := store.Get(context.Background(), 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("malformed file", func(t *testing.T) {
		store := NewPropertyStore(writeFixture(t, "bad.json", `{"not": "an array"`))
		assert.Equal(t, 0, store.Count())
		list, err := store.List(context.Background(), 10)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestPropertyStore_DeduplicatesByID(t *testing.T) {
	path := writeFixture(t, "properties.json", `[
		{"id": 1, "address": "first", "price": 1, "area_sqm": 1, "property_type": "land", "number_of_rooms": 0},
		{"id": 1, "address": "second", "price": 2, "area_sqm": 2, "property_type": "land", "number_of_rooms": 0}
	]`)
	store := NewPropertyStore(path)
	require.Equal(t, 1, store.Count())

	p, err := store.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "first", p.Address)
}

func TestContactStore_Load(t *testing.T) {
	path := writeFixture(t, "contacts.json", `[
		{"id": 7, "name": "Amina Benali",
		 "preferred_locations": [{"name": "Around Hydra", "lat": 36.75, "lon": 3.04}],
		 "min_budget": 10000000, "max_budget": 20000000,
		 "min_area_sqm": 80, "max_area_sqm": 150,
		 "property_types": ["apartment"], "min_rooms": 2}
	]`)

	store := NewContactStore(path)
	require.Equal(t, 1, store.Count())

	c, err := store.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Amina Benali", c.Name)
	require.Len(t, c.PreferredLocations, 1)
	assert.Equal(t, "Around Hydra", c.PreferredLocations[0].Name)
	assert.InDelta(t, 36.75, c.PreferredLocations[0].Lat, 1e-9)
	assert.Equal(t, []string{"apartment"}, c.PropertyTypes)

	_, err = store.Get(context.Background(), 8)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContactStore_ColdFailure(t *testing.T) {
	store := NewContactStore(filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, 0, store.Count())
	_, err := store.Get(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
