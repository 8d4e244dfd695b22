package services

import (
	"testing"

	"swipess_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceMagnitude(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		ok       bool
	}{
		{name: "plain monthly rent", input: "€950/mo", expected: 950, ok: true},
		{name: "thousands separator", input: "€1.200/mo", expected: 1200, ok: true},
		{name: "larger thousands", input: "€2.400/mo", expected: 2400, ok: true},
		{name: "sale price", input: "€92.000", expected: 92000, ok: true},
		{name: "hourly rate", input: "€85/hr", expected: 85, ok: true},
		{name: "decimal fraction", input: "€45.50", expected: 45.5, ok: true},
		{name: "suffixed shorthand", input: "€2.5k+", expected: 2.5, ok: true},
		{name: "no digits", input: "price on request", ok: false},
		{name: "empty string", input: "", ok: false},
		{name: "lone currency symbol", input: "€", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PriceMagnitude(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func maxPrice(v float64) *float64 { return &v }

func TestMatchesFilters(t *testing.T) {
	listing := models.Listing{
		ID:       "p3",
		Title:    "Cozy Studio Loft",
		Category: models.CategoryProperty,
		Price:    "€950/mo",
		Location: "Madrid, Salamanca",
		Tags:     []string{"loft", "industrial", "wifi"},
	}

	tests := []struct {
		name    string
		listing models.Listing
		filters *models.AIFilters
		want    bool
	}{
		{name: "nil filters pass everything", listing: listing, filters: nil, want: true},
		{name: "empty filters pass everything", listing: listing, filters: &models.AIFilters{}, want: true},
		{name: "price within budget", listing: listing, filters: &models.AIFilters{MaxPrice: maxPrice(1000)}, want: true},
		{name: "price over budget", listing: listing, filters: &models.AIFilters{MaxPrice: maxPrice(900)}, want: false},
		{
			name:    "thousands-separated price over budget",
			listing: models.Listing{Price: "€1.200/mo", Location: "Sevilla"},
			filters: &models.AIFilters{MaxPrice: maxPrice(1000)},
			want:    false,
		},
		{
			name:    "unparseable price passes price clause",
			listing: models.Listing{Title: "Open Offer", Price: "price on request", Location: "Madrid"},
			filters: &models.AIFilters{MaxPrice: maxPrice(100)},
			want:    true,
		},
		{name: "location substring, case-insensitive", listing: listing, filters: &models.AIFilters{Location: "madrid"}, want: true},
		{name: "location mismatch", listing: listing, filters: &models.AIFilters{Location: "Barcelona"}, want: false},
		{name: "tag matches own tag", listing: listing, filters: &models.AIFilters{Tags: []string{"LOFT"}}, want: true},
		{name: "tag matches title", listing: listing, filters: &models.AIFilters{Tags: []string{"studio"}}, want: true},
		{name: "tag substring of own tag", listing: listing, filters: &models.AIFilters{Tags: []string{"indus"}}, want: true},
		{name: "no tag overlap", listing: listing, filters: &models.AIFilters{Tags: []string{"pool", "garden"}}, want: false},
		{
			name:    "conjunction requires every clause",
			listing: listing,
			filters: &models.AIFilters{MaxPrice: maxPrice(1000), Location: "Madrid", Tags: []string{"loft"}},
			want:    true,
		},
		{
			name:    "one failing clause excludes",
			listing: listing,
			filters: &models.AIFilters{MaxPrice: maxPrice(1000), Location: "Barcelona", Tags: []string{"loft"}},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesFilters(tt.listing, tt.filters))
		})
	}
}

func TestFilterListings(t *testing.T) {
	base := []models.Listing{
		{ID: "a", Price: "€950/mo", Location: "Madrid, Salamanca"},
		{ID: "b", Price: "€1.200/mo", Location: "Madrid, Centro"},
		{ID: "c", Price: "€800/mo", Location: "Valencia"},
	}

	got := FilterListings(base, &models.AIFilters{MaxPrice: maxPrice(1000), Location: "Madrid"})
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	// Nil filters return the base untouched.
	assert.Equal(t, base, FilterListings(base, nil))
}
