package models

// ListingsTable is the DynamoDB table name for the listing catalog.
const ListingsTable = "Listings"

// FeedInteractionsTable is the DynamoDB table name for persisted swipe
// interactions.
const FeedInteractionsTable = "FeedInteractions"
