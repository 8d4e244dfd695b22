package services

import (
	"context"
	"testing"

	"swipess_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listingIDs(listings []models.Listing) []string {
	ids := make([]string, len(listings))
	for i, l := range listings {
		ids[i] = l.ID
	}
	return ids
}

func TestMergeListings(t *testing.T) {
	seeds := []models.Listing{{ID: "p1"}, {ID: "p2"}}

	tests := []struct {
		name     string
		external []models.Listing
		expected []string
	}{
		{name: "no external items", external: nil, expected: []string{"p1", "p2"}},
		{
			name:     "seed wins on id collision",
			external: []models.Listing{{ID: "p2"}, {ID: "p3"}},
			expected: []string{"p3", "p1", "p2"},
		},
		{
			name:     "external items keep arrival order",
			external: []models.Listing{{ID: "x2"}, {ID: "x1"}},
			expected: []string{"x2", "x1", "p1", "p2"},
		},
		{
			name:     "external duplicates keep first occurrence",
			external: []models.Listing{{ID: "x1"}, {ID: "x1"}, {ID: "x2"}},
			expected: []string{"x1", "x2", "p1", "p2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := MergeListings(tt.external, seeds)
			assert.Equal(t, tt.expected, listingIDs(merged))
		})
	}
}

func TestCatalogBaseScopesByCategory(t *testing.T) {
	catalog := NewCatalogService(nil, models.ListingsTable)

	catalog.PrependExternal(models.Listing{ID: "x-prop", Category: models.CategoryProperty})
	catalog.PrependExternal(models.Listing{ID: "x-moto", Category: models.CategoryMoto})

	props := catalog.Base(models.CategoryProperty)
	require.NotEmpty(t, props)
	assert.Equal(t, "x-prop", props[0].ID)
	for _, l := range props {
		assert.Equal(t, models.CategoryProperty, l.Category)
	}

	motos := catalog.Base(models.CategoryMoto)
	assert.Equal(t, "x-moto", motos[0].ID)
	assert.NotContains(t, listingIDs(motos), "x-prop")
}

func TestCatalogPublishSeedOnly(t *testing.T) {
	catalog := NewCatalogService(nil, models.ListingsTable)

	published, err := catalog.Publish(context.Background(), models.Listing{
		Title:    "Downtown Loft",
		Category: models.CategoryProperty,
		Price:    "€1.100/mo",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, published.ID)

	_, err = catalog.Publish(context.Background(), models.Listing{Title: "Nowhere", Category: "castle"})
	assert.Error(t, err)
}

func TestCatalogFetchStoredSeedOnly(t *testing.T) {
	catalog := NewCatalogService(nil, models.ListingsTable)
	stored, err := catalog.FetchStored(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}
