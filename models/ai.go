package models

// ListingDraft is the structured output of the listing generation
// helper: a ready-to-edit listing produced from a short free-text
// description.
type ListingDraft struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Features       []string `json:"features"`
	Tags           []string `json:"tags"`
	SuggestedPrice string   `json:"suggestedPrice"`
}

// ChatTurn is one entry of a concierge chat transcript.
type ChatTurn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}
