package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"swipess_server/models"
)

// AIService is the adapter over the generative collaborator (a
// Gemini-style generateContent endpoint). Its responses are opaque
// JSON; every failure degrades to a neutral result instead of breaking
// the feed.
type AIService struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

// NewAIService builds an adapter for the given endpoint. An empty API
// key means the collaborator is not configured.
func NewAIService(baseURL, apiKey, model string) *AIService {
	return &AIService{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		Model:      model,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether the collaborator can be called.
func (ai *AIService) Configured() bool {
	return ai.APIKey != ""
}

const filterExtractionPrompt = `Analyze the user's marketplace search query and extract structured filters.
Categories mapping:
- "property", "apartment", "house", "loft", "villa", "penthouse" -> property
- "car", "motorcycle", "moto", "vehicle", "porsche", "ducati" -> moto
- "bicycle", "bike", "cycle", "road bike", "mountain bike" -> bicycle
- "job", "worker", "tasker", "developer", "designer", "hire" -> tasker

Return a JSON object:
{"maxPrice": number|null, "category": "property"|"moto"|"bicycle"|"tasker"|null, "location": string|null, "tags": [string]|null, "searchQuery": string|null}

Examples:
"penthouse under 2500 in madrid" -> {"category": "property", "maxPrice": 2500, "location": "Madrid", "tags": ["penthouse"]}
"developer for 50 an hour" -> {"category": "tasker", "maxPrice": 50, "tags": ["developer"]}`

// ExtractFilters turns a free-text search query into structured
// filters. A malformed response degrades to an empty filter set; only
// transport-level failures surface as errors.
func (ai *AIService) ExtractFilters(ctx context.Context, query string) (*models.AIFilters, error) {
	text, err := ai.generateContent(ctx, filterExtractionPrompt, query, true)
	if err != nil {
		return nil, err
	}

	var filters models.AIFilters
	if err := json.Unmarshal([]byte(text), &filters); err != nil {
		log.Printf("Failed to parse AI filters, degrading to none: %v", err)
		return &models.AIFilters{}, nil
	}
	if filters.Category != "" && !filters.Category.Valid() {
		filters.Category = ""
	}
	return &filters, nil
}

const rankingPrompt = `You are a recommendation engine for a tinder-style marketplace. Analyze behavior patterns (likes, dislikes, long views) to rank candidates. Return a JSON array of candidate IDs ordered by predicted interest, highest first.`

// RankCandidates asks the collaborator to reorder the remaining
// candidates given the session's interaction history. It returns the
// ordered identity sequence; any failure is an error and the caller
// keeps its previous ranking.
func (ai *AIService) RankCandidates(ctx context.Context, history []models.InteractionRecord, candidates []models.Listing) ([]string, error) {
	byID := make(map[string]models.Listing, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}

	var hb strings.Builder
	for _, h := range history {
		title, tags := h.ListingID, "N/A"
		if l, ok := byID[h.ListingID]; ok {
			title = l.Title
			tags = strings.Join(l.Tags, ", ")
		}
		fmt.Fprintf(&hb, "Listing: %s, Action: %s, Duration: %dms, Tags: %s\n", title, h.Action, h.Duration, tags)
	}

	var cb strings.Builder
	for _, c := range candidates {
		fmt.Fprintf(&cb, "ID: %s, Title: %s, Tags: %s\n", c.ID, c.Title, strings.Join(c.Tags, ", "))
	}

	user := fmt.Sprintf("Rank these candidate listing IDs by predicted interest (highest first). Return only a JSON array of strings.\n\nUser History:\n%s\nCandidates:\n%s", hb.String(), cb.String())

	text, err := ai.generateContent(ctx, rankingPrompt, user, true)
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(text), &ids); err != nil {
		return nil, fmt.Errorf("failed to parse ranking response: %w", err)
	}
	return ids, nil
}

const draftPrompt = `You are the Swipess Magic Marketplace Agent. Transform raw user notes into professional, high-converting marketplace listings.
Guidelines:
- Generate a catchy, SEO-optimized title.
- Write a persuasive, professional description (approx 150 words).
- Create 5 bulleted key features.
- Suggest 6-8 relevant tags.
- Suggest a market-competitive price (e.g., "€1.200/mo" for property or "€45/hr" for tasker).
Rules:
- For 'property' rentals: apply a 3-month minimum / 1-year maximum rule in the description.
- For 'tasker': focus on specific deliverables and professional reliability.
Return JSON: {"title": string, "description": string, "features": [string], "tags": [string], "suggestedPrice": string}`

// GenerateListingDraft turns a short description into a ready-to-edit
// listing draft.
func (ai *AIService) GenerateListingDraft(ctx context.Context, description string, category models.ListingCategory) (models.ListingDraft, error) {
	user := fmt.Sprintf("Create a professional and high-converting %s listing for: %s", category, description)
	text, err := ai.generateContent(ctx, draftPrompt, user, true)
	if err != nil {
		return models.ListingDraft{}, err
	}

	var draft models.ListingDraft
	if err := json.Unmarshal([]byte(text), &draft); err != nil {
		return models.ListingDraft{}, fmt.Errorf("failed to parse listing draft: %w", err)
	}
	return draft, nil
}

const chatPrompt = "You are a helpful AI assistant for Swipess, a Tinder-style marketplace. Provide concise, relevant, and friendly answers. Help users find matches or owners build great listings."

// Chat sends one concierge message with its transcript and returns the
// model reply.
func (ai *AIService) Chat(ctx context.Context, message string, history []models.ChatTurn) (string, error) {
	contents := make([]geminiContent, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, geminiContent{Role: turn.Role, Parts: []geminiPart{{Text: turn.Text}}})
	}
	contents = append(contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: message}}})
	return ai.call(ctx, chatPrompt, contents, false)
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent    `json:"system_instruction,omitempty"`
	Contents          []geminiContent   `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	ResponseMimeType string `json:"response_mime_type,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (ai *AIService) generateContent(ctx context.Context, system, user string, wantJSON bool) (string, error) {
	contents := []geminiContent{{Role: "user", Parts: []geminiPart{{Text: user}}}}
	return ai.call(ctx, system, contents, wantJSON)
}

func (ai *AIService) call(ctx context.Context, system string, contents []geminiContent, wantJSON bool) (string, error) {
	if !ai.Configured() {
		return "", fmt.Errorf("AI collaborator is not configured")
	}

	reqBody := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: system}}},
		Contents:          contents,
	}
	if wantJSON {
		reqBody.GenerationConfig = &generationConfig{ResponseMimeType: "application/json"}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", ai.BaseURL, ai.Model, ai.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ai.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("AI request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read AI response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI request returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode AI response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty AI response")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
