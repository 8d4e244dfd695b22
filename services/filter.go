package services

import (
	"regexp"
	"strconv"
	"strings"

	"swipess_server/models"
)

// Dots grouping digits in threes are thousands separators, as in
// "€1.200/mo".
var thousandsPattern = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)

// PriceMagnitude extracts the numeric magnitude from a formatted price
// string such as "€2.400/mo", "€85/hr" or "€45.50". The second return
// value is false when the string contains no parseable number.
func PriceMagnitude(price string) (float64, bool) {
	var b strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	s := b.String()
	if thousandsPattern.MatchString(s) {
		s = strings.ReplaceAll(s, ".", "")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// MatchesFilters reports whether a listing passes every non-absent
// clause of the filter set. A nil filter set passes everything.
//
// A listing whose price string carries no parseable magnitude passes
// the price clause: budget filters only exclude listings with a known
// higher price.
func MatchesFilters(l models.Listing, f *models.AIFilters) bool {
	if f == nil {
		return true
	}

	if f.MaxPrice != nil {
		if price, ok := PriceMagnitude(l.Price); ok && price > *f.MaxPrice {
			return false
		}
	}

	if f.Location != "" && !strings.Contains(strings.ToLower(l.Location), strings.ToLower(f.Location)) {
		return false
	}

	if len(f.Tags) > 0 && !matchesAnyTag(l, f.Tags) {
		return false
	}

	return true
}

// FilterListings returns the subset of base passing the filter set,
// preserving order.
func FilterListings(base []models.Listing, f *models.AIFilters) []models.Listing {
	if f == nil {
		return base
	}
	out := make([]models.Listing, 0, len(base))
	for _, l := range base {
		if MatchesFilters(l, f) {
			out = append(out, l)
		}
	}
	return out
}

// matchesAnyTag reports whether at least one requested tag is a
// case-insensitive substring of any of the listing's tags or of its
// title.
func matchesAnyTag(l models.Listing, tags []string) bool {
	title := strings.ToLower(l.Title)
	for _, requested := range tags {
		needle := strings.ToLower(requested)
		if needle == "" {
			continue
		}
		if strings.Contains(title, needle) {
			return true
		}
		for _, own := range l.Tags {
			if strings.Contains(strings.ToLower(own), needle) {
				return true
			}
		}
	}
	return false
}
