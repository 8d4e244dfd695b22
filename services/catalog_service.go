package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"swipess_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/google/uuid"
)

// CatalogService owns the candidate sequence for every category: an
// immutable per-category seed set plus the externally-supplied sequence
// maintained by the realtime ingestion bridge. When Dynamo is nil the
// backend is not configured and the catalog runs on seed data only.
type CatalogService struct {
	Dynamo        *DynamoService
	ListingsTable string

	mu       sync.RWMutex
	external []models.Listing
}

// NewCatalogService builds a catalog backed by the given DynamoDB
// wrapper. A nil dynamo is valid and means seed-only mode.
func NewCatalogService(dynamo *DynamoService, listingsTable string) *CatalogService {
	return &CatalogService{Dynamo: dynamo, ListingsTable: listingsTable}
}

// Configured reports whether a persistence backend is attached.
func (cs *CatalogService) Configured() bool {
	return cs.Dynamo != nil
}

// MergeListings produces the authoritative candidate sequence: distinct
// externally-supplied items in their sequence order, followed by the
// seed items in seed order. An external item colliding with a seed id
// is dropped (the seed wins); external duplicates keep their first
// occurrence.
func MergeListings(external, seeds []models.Listing) []models.Listing {
	seen := make(map[string]struct{}, len(seeds))
	for _, s := range seeds {
		seen[s.ID] = struct{}{}
	}

	out := make([]models.Listing, 0, len(external)+len(seeds))
	for _, l := range external {
		if _, dup := seen[l.ID]; dup {
			continue
		}
		seen[l.ID] = struct{}{}
		out = append(out, l)
	}
	return append(out, seeds...)
}

// Base returns the merged candidate sequence for a category.
func (cs *CatalogService) Base(category models.ListingCategory) []models.Listing {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	var external []models.Listing
	for _, l := range cs.external {
		if l.Category == category {
			external = append(external, l)
		}
	}
	return MergeListings(external, SeedListings(category))
}

// All returns the merged sequences of every category, external items
// first.
func (cs *CatalogService) All() []models.Listing {
	var out []models.Listing
	for _, c := range models.AllCategories {
		out = append(out, cs.Base(c)...)
	}
	return out
}

// External returns a snapshot of the externally-supplied sequence.
func (cs *CatalogService) External() []models.Listing {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make([]models.Listing, len(cs.external))
	copy(out, cs.external)
	return out
}

// PrependExternal puts a newly arrived listing at the head of the
// externally-supplied sequence. Identity dedup is the ingestion
// bridge's job; the catalog stores what it is given.
func (cs *CatalogService) PrependExternal(l models.Listing) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.external = append([]models.Listing{l}, cs.external...)
}

// AppendExternal adds a fetched listing at the tail, preserving fetch
// order during bootstrap.
func (cs *CatalogService) AppendExternal(l models.Listing) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.external = append(cs.external, l)
}

// FetchStored reads the full persisted listing sequence. Returns an
// empty slice in seed-only mode.
func (cs *CatalogService) FetchStored(ctx context.Context) ([]models.Listing, error) {
	if cs.Dynamo == nil {
		return nil, nil
	}

	items, err := cs.Dynamo.ScanItems(ctx, cs.ListingsTable)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}

	listings := make([]models.Listing, 0, len(items))
	for _, item := range items {
		var l models.Listing
		if err := attributevalue.UnmarshalMap(item, &l); err != nil {
			log.Printf("Skipping unreadable listing row: %v", err)
			continue
		}
		listings = append(listings, l)
	}
	return listings, nil
}

// Publish persists a new listing and returns the stored record. The
// caller decides whether to feed the result to the ingestion bridge for
// the optimistic local merge.
func (cs *CatalogService) Publish(ctx context.Context, l models.Listing) (models.Listing, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if !l.Category.Valid() {
		return models.Listing{}, fmt.Errorf("invalid category %q", l.Category)
	}

	if cs.Dynamo != nil {
		if err := cs.Dynamo.PutItem(ctx, cs.ListingsTable, l); err != nil {
			return models.Listing{}, fmt.Errorf("failed to publish listing: %w", err)
		}
	}

	log.Printf("Published listing %s (%s) in %s", l.ID, l.Title, l.Category)
	return l, nil
}
