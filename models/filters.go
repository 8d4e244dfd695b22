package models

// AIFilters is the structured search predicate extracted from a
// free-text query. Every field is optional; a zero value means the
// corresponding clause is skipped.
type AIFilters struct {
	MaxPrice        *float64        `json:"maxPrice,omitempty"`
	Category        ListingCategory `json:"category,omitempty"`
	Location        string          `json:"location,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
	SearchQuery     string          `json:"searchQuery,omitempty"`
	TransactionType TransactionType `json:"transactionType,omitempty"`
}
